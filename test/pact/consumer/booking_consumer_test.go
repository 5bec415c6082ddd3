//go:build pact
// +build pact

package consumer_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"testing"
	"time"

	pacttest "github.com/Apurer/afterschool-api/test/pact"

	pactconsumer "github.com/pact-foundation/pact-go/v2/consumer"
	pactlog "github.com/pact-foundation/pact-go/v2/log"
	"github.com/pact-foundation/pact-go/v2/matchers"
	"github.com/stretchr/testify/require"
)

type lessonPayload struct {
	ID       string  `json:"_id"`
	Subject  string  `json:"subject"`
	Location string  `json:"location"`
	Price    float64 `json:"price"`
	Spaces   int     `json:"spaces"`
	Icon     string  `json:"icon"`
}

type apiError struct {
	status  int
	message string
}

func (e apiError) Error() string {
	return fmt.Sprintf("%s (status %d)", e.message, e.status)
}

func TestBookingAppContract(t *testing.T) {
	pactlog.SetLogLevel("INFO")

	pact, err := pactconsumer.NewV2Pact(pactconsumer.MockHTTPProviderConfig{
		Consumer: pacttest.ConsumerName,
		Provider: pacttest.ProviderName,
		PactDir:  pacttest.PactDir(t),
		LogDir:   pacttest.LogDir(t),
	})
	require.NoError(t, err)

	example := pacttest.ExampleLessonPayload()
	lessonMatcher := matchers.Map{
		"_id":      matchers.Like(example["_id"]),
		"subject":  matchers.Like(example["subject"]),
		"location": matchers.Like(example["location"]),
		"price":    matchers.Like(example["price"]),
		"spaces":   matchers.Like(example["spaces"]),
		"icon":     matchers.Like(example["icon"]),
	}
	jsonContentType := matchers.Regex("application/json; charset=utf-8", "application\\/json(?:;\\s?charset=utf-8)?")

	pact.AddInteraction().
		Given(pacttest.StateCatalogSeeded).
		UponReceiving("a request to list lessons").
		WithRequest("GET", "/lessons").
		WillRespondWith(http.StatusOK, func(b *pactconsumer.V2ResponseBuilder) {
			b.Header("Content-Type", jsonContentType)
			b.JSONBody(matchers.EachLike(lessonMatcher, 1))
		})

	pact.AddInteraction().
		Given(pacttest.StateCatalogSeeded).
		UponReceiving("a search for math lessons").
		WithRequest("GET", "/search", func(b *pactconsumer.V2RequestBuilder) {
			b.Query("q", matchers.S("math"))
		}).
		WillRespondWith(http.StatusOK, func(b *pactconsumer.V2ResponseBuilder) {
			b.Header("Content-Type", jsonContentType)
			b.JSONBody(matchers.EachLike(lessonMatcher, 1))
		})

	pact.AddInteraction().
		Given(pacttest.StateLessonExists).
		UponReceiving("an order for an existing lesson").
		WithRequest("POST", "/order", func(b *pactconsumer.V2RequestBuilder) {
			b.Header("Content-Type", matchers.S("application/json"))
			b.JSONBody(pacttest.ExampleOrderPayload())
		}).
		WillRespondWith(http.StatusOK, func(b *pactconsumer.V2ResponseBuilder) {
			b.Header("Content-Type", jsonContentType)
			b.JSONBody(matchers.Map{
				"success": matchers.Like(true),
				"message": matchers.S("Order placed successfully"),
			})
		})

	pact.AddInteraction().
		Given(pacttest.StateLessonExists).
		UponReceiving("a request to update the spaces of an existing lesson").
		WithRequest("PUT", "/update/"+pacttest.ExistingLessonID, func(b *pactconsumer.V2RequestBuilder) {
			b.Header("Content-Type", matchers.S("application/json"))
			b.JSONBody(map[string]any{"spaces": 4})
		}).
		WillRespondWith(http.StatusOK, func(b *pactconsumer.V2ResponseBuilder) {
			b.Header("Content-Type", jsonContentType)
			b.JSONBody(matchers.Map{"success": matchers.Like(true)})
		})

	pact.AddInteraction().
		Given(pacttest.StateCatalogSeeded).
		UponReceiving("a request to update a lesson with a malformed id").
		WithRequest("PUT", "/update/"+pacttest.MalformedLessonID, func(b *pactconsumer.V2RequestBuilder) {
			b.Header("Content-Type", matchers.S("application/json"))
			b.JSONBody(map[string]any{"spaces": 4})
		}).
		WillRespondWith(http.StatusInternalServerError, func(b *pactconsumer.V2ResponseBuilder) {
			b.Header("Content-Type", jsonContentType)
			b.JSONBody(matchers.Map{"error": matchers.S("Failed to update lesson")})
		})

	err = pact.ExecuteTest(t, func(config pactconsumer.MockServerConfig) error {
		client := newBookingClient(config)
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		lessons, err := client.ListLessons(ctx)
		if err != nil {
			return fmt.Errorf("list lessons: %w", err)
		}
		if len(lessons) == 0 || lessons[0].ID == "" {
			return fmt.Errorf("expected lessons with identifiers, got %+v", lessons)
		}

		found, err := client.Search(ctx, "math")
		if err != nil {
			return fmt.Errorf("search lessons: %w", err)
		}
		if len(found) == 0 {
			return fmt.Errorf("expected search results")
		}

		if err := client.PlaceOrder(ctx, pacttest.ExampleOrderPayload()); err != nil {
			return fmt.Errorf("place order: %w", err)
		}

		if err := client.UpdateSpaces(ctx, pacttest.ExistingLessonID, 4); err != nil {
			return fmt.Errorf("update spaces: %w", err)
		}

		err = client.UpdateSpaces(ctx, pacttest.MalformedLessonID, 4)
		if apiErr, ok := err.(apiError); !ok || apiErr.status != http.StatusInternalServerError {
			return fmt.Errorf("expected 500 for malformed id, got %v", err)
		}
		return nil
	})
	require.NoError(t, err)
}

type bookingClient struct {
	baseURL    string
	httpClient *http.Client
}

func newBookingClient(config pactconsumer.MockServerConfig) *bookingClient {
	host := config.Host
	if host == "" {
		host = "localhost"
	}
	transport := &http.Transport{TLSClientConfig: config.TLSConfig}
	return &bookingClient{
		baseURL:    fmt.Sprintf("http://%s:%d", host, config.Port),
		httpClient: &http.Client{Transport: transport, Timeout: 10 * time.Second},
	}
}

func (c *bookingClient) ListLessons(ctx context.Context) ([]lessonPayload, error) {
	var lessons []lessonPayload
	return lessons, c.do(ctx, http.MethodGet, "/lessons", nil, &lessons)
}

func (c *bookingClient) Search(ctx context.Context, query string) ([]lessonPayload, error) {
	var lessons []lessonPayload
	return lessons, c.do(ctx, http.MethodGet, "/search?q="+url.QueryEscape(query), nil, &lessons)
}

func (c *bookingClient) PlaceOrder(ctx context.Context, order map[string]any) error {
	return c.do(ctx, http.MethodPost, "/order", order, nil)
}

func (c *bookingClient) UpdateSpaces(ctx context.Context, id string, spaces int) error {
	return c.do(ctx, http.MethodPut, "/update/"+id, map[string]any{"spaces": spaces}, nil)
}

func (c *bookingClient) do(ctx context.Context, method, path string, body, out any) error {
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	res, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode >= http.StatusBadRequest {
		var failure struct {
			Error string `json:"error"`
		}
		_ = json.NewDecoder(res.Body).Decode(&failure)
		return apiError{status: res.StatusCode, message: failure.Error}
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(res.Body).Decode(out)
}
