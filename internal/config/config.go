package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Config holds process-wide settings. It is loaded once at startup and
// treated as immutable afterwards; components receive it explicitly
// instead of reading the environment themselves.
type Config struct {
	// JWTSecret signs session tokens. The process refuses to start
	// without it.
	JWTSecret string

	// DBPath is the SQLite database file.
	DBPath string

	// Port the HTTP server listens on.
	Port string

	// GinMode is gin's run mode (debug, release, test).
	GinMode string

	// OTLPEndpoint is the trace collector address. Empty disables the
	// exporter entirely so local runs need no collector.
	OTLPEndpoint string
}

// Load reads configuration from the environment. A .env file in the
// working directory is loaded first when present.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		JWTSecret:    getEnv("JWTSECRET", ""),
		DBPath:       getEnv("DB_PATH", "./parkpost.db"),
		Port:         getEnv("PORT", "3000"),
		GinMode:      getEnv("GIN_MODE", "debug"),
		OTLPEndpoint: getEnv("OTLP_ENDPOINT", ""),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the settings the process cannot run without.
func (c *Config) Validate() error {
	if c.JWTSecret == "" {
		return fmt.Errorf("JWTSECRET is required")
	}
	return nil
}

// getEnv returns the environment variable or the default when unset.
func getEnv(key string, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
