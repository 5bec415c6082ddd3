// Package errors provides the uniform JSON failure responses of the HTTP API.
package errors

import "net/http"

// Body is the wire shape of every error response.
type Body struct {
	Error string `json:"error"`
}

// Failure is a fixed, caller-safe message paired with the HTTP status it is sent with.
// The underlying cause is logged, never returned.
type Failure struct {
	Status  int
	Message string
}

// Error implements the error interface.
func (f Failure) Error() string {
	return f.Message
}

// Body returns the response payload for the failure.
func (f Failure) Body() Body {
	return Body{Error: f.Message}
}

// Route failures. Every handler error, including a malformed identifier, maps to 500.
var (
	ErrFetchLessons = Failure{Status: http.StatusInternalServerError, Message: "Failed to fetch lessons"}
	ErrSearch       = Failure{Status: http.StatusInternalServerError, Message: "Search failed"}
	ErrPlaceOrder   = Failure{Status: http.StatusInternalServerError, Message: "Order failed"}
	ErrUpdateLesson = Failure{Status: http.StatusInternalServerError, Message: "Failed to update lesson"}
)
