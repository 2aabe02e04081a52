package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Environment names
const (
	EnvDev  = "dev"
	EnvProd = "prod"
)

// Defaults for environment configuration
const (
	DefaultAPIBaseURL  = "http://localhost:8000"
	DefaultHTTPTimeout = 10 * time.Second
)

// Config holds process-level configuration read from the environment
type Config struct {
	// Backend configuration
	APIBaseURL  string
	HTTPTimeout time.Duration

	// Observability configuration
	MetricsAddr string

	// Runtime environment
	Env string
}

// LoadConfig loads the configuration from environment variables.
// A .env file in the working directory is honored when present.
func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}

	return &Config{
		APIBaseURL:  getEnvOrDefault("CINEBASE_API_URL", DefaultAPIBaseURL),
		HTTPTimeout: getDurationOrDefault("CINEBASE_HTTP_TIMEOUT", DefaultHTTPTimeout),
		MetricsAddr: getEnvOrDefault("CINEBASE_METRICS_ADDR", ""),
		Env:         getEnvOrDefault("CINEBASE_ENV", EnvDev),
	}
}

// IsProduction reports whether the app runs with production logging
func (c *Config) IsProduction() bool {
	return c.Env == EnvProd
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil || d <= 0 {
		log.Printf("Invalid %s value %q, using %s", key, value, defaultValue)
		return defaultValue
	}
	return d
}
