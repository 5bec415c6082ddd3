package api

import (
	"fmt"
	"os"
	"strings"

	"go.temporal.io/sdk/client"
)

// Config carries environment-driven settings for the API process.
type Config struct {
	Port              string
	PostgresDSN       string
	UploadsDir        string
	SeedLessons       bool
	TemporalAddress   string
	TemporalNamespace string
	TemporalDisabled  bool
	Environment       string
	LogLevel          string
	TraceExporter     string
	OTLPEndpoint      string
	OTLPInsecure      bool
}

// LoadConfig reads environment variables, applies defaults, and validates basic constraints.
func LoadConfig() (Config, error) {
	cfg := Config{
		Port:              envDefault("PORT", "5500"),
		PostgresDSN:       envDefault("POSTGRES_DSN", strings.TrimSpace(os.Getenv("MONGO_URI"))),
		UploadsDir:        envDefault("UPLOADS_DIR", "uploads"),
		TemporalAddress:   envDefault("TEMPORAL_ADDRESS", client.DefaultHostPort),
		TemporalNamespace: envDefault("TEMPORAL_NAMESPACE", client.DefaultNamespace),
		Environment:       envDefault("ENVIRONMENT", "local"),
		LogLevel:          envDefault("LOG_LEVEL", "info"),
		TraceExporter:     envDefault("OTEL_TRACES_EXPORTER", "otlp"),
		OTLPEndpoint:      strings.TrimSpace(os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT")),
	}
	var err error
	if cfg.SeedLessons, err = envBool("SEED_LESSONS", true); err != nil {
		return Config{}, err
	}
	if cfg.TemporalDisabled, err = envBool("TEMPORAL_DISABLED", false); err != nil {
		return Config{}, err
	}
	if cfg.OTLPInsecure, err = envBool("OTEL_EXPORTER_OTLP_INSECURE", false); err != nil {
		return Config{}, err
	}
	switch cfg.TraceExporter {
	case "otlp", "stdout", "none":
	default:
		return Config{}, fmt.Errorf("OTEL_TRACES_EXPORTER must be one of otlp, stdout or none, got %q", cfg.TraceExporter)
	}
	return cfg, nil
}

// Addr is the listen address for the HTTP server.
func (c Config) Addr() string {
	return ":" + c.Port
}

func envDefault(key, fallback string) string {
	if val := strings.TrimSpace(os.Getenv(key)); val != "" {
		return val
	}
	return fallback
}

func envBool(key string, fallback bool) (bool, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback, nil
	}
	if isTruthy(raw) {
		return true, nil
	}
	if isFalsy(raw) {
		return false, nil
	}
	return false, fmt.Errorf("%s must be a boolean, got %q", key, raw)
}

func isTruthy(value string) bool {
	value = strings.TrimSpace(strings.ToLower(value))
	return value == "1" || value == "true" || value == "yes"
}

func isFalsy(value string) bool {
	value = strings.TrimSpace(strings.ToLower(value))
	return value == "0" || value == "false" || value == "no"
}
