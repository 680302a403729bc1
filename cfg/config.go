package cfg

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	AppEnv        string
	HTTPAddr      string
	NodeID        int64
	Session       SessionConfig
	Observability ObservabilityConfig
}

type SessionConfig struct {
	// TTL is how long an idle builder session is retained before the
	// sweeper discards it.
	TTL           time.Duration
	SweepInterval time.Duration
}

type ObservabilityConfig struct {
	Enabled      bool
	OTLPEndpoint string
	ServiceName  string
}

// Load reads configuration from the environment, with a local .env file
// as an optional source for development.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		AppEnv:   envOr("APP_ENV", "development"),
		HTTPAddr: envOr("HTTP_ADDR", ":8080"),
		NodeID:   envInt64Or("NODE_ID", 1),
		Session: SessionConfig{
			TTL:           envDurationOr("SESSION_TTL", 2*time.Hour),
			SweepInterval: envDurationOr("SESSION_SWEEP_INTERVAL", 5*time.Minute),
		},
		Observability: ObservabilityConfig{
			Enabled:      envBoolOr("OTEL_ENABLED", false),
			OTLPEndpoint: envOr("OTEL_EXPORTER_OTLP_ENDPOINT", "localhost:4317"),
			ServiceName:  envOr("OTEL_SERVICE_NAME", "athlex"),
		},
	}
	return cfg, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt64Or(key string, fallback int64) int64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return fallback
	}
	return n
}

func envBoolOr(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}

func envDurationOr(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}
