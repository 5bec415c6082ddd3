//go:build pact
// +build pact

package pacttest

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

const (
	ProviderName = "afterschool-api"
	ConsumerName = "class-booking-app"

	StateCatalogSeeded = "lesson catalog seeded"
	StateLessonExists  = "lesson 6b0f3f5e-8a43-4a55-9b0e-0c7f7c1d2a10 exists"
)

const (
	ExistingLessonID  = "6b0f3f5e-8a43-4a55-9b0e-0c7f7c1d2a10"
	MalformedLessonID = "not-a-lesson-id"
)

// PactDir returns the workspace-level directory for generated pact files.
func PactDir(t testing.TB) string {
	t.Helper()
	dir := filepath.Join(projectRoot(t), "pacts")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("create pact dir: %v", err)
	}
	return dir
}

// PactFile returns the canonical pact file path for the booking app consumer.
func PactFile(t testing.TB) string {
	t.Helper()
	return filepath.Join(PactDir(t), ConsumerName+"-"+ProviderName+".json")
}

// LogDir returns the log output directory for pact-go.
func LogDir(t testing.TB) string {
	t.Helper()
	dir := filepath.Join(projectRoot(t), "bin", "pact-logs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("create pact log dir: %v", err)
	}
	return dir
}

// ExampleLessonPayload mirrors the first catalog entry as served on the wire.
func ExampleLessonPayload() map[string]any {
	return map[string]any{
		"_id":      ExistingLessonID,
		"subject":  "Math",
		"location": "London",
		"price":    100,
		"spaces":   5,
		"icon":     "math.png",
	}
}

// ExampleOrderPayload is what the booking app submits at checkout.
func ExampleOrderPayload() map[string]any {
	return map[string]any{
		"name":      "Pact Parent",
		"phone":     "07123456789",
		"lessonIds": []string{ExistingLessonID},
		"spaces":    1,
	}
}

// projectRoot walks up from this file to the workspace root.
func projectRoot(t testing.TB) string {
	t.Helper()
	_, file, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("cannot determine caller for pact paths")
	}
	return filepath.Clean(filepath.Join(filepath.Dir(file), "..", ".."))
}
