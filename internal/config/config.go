// Package config loads the service configuration from the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Defaults applied when the corresponding variable is unset.
const (
	DefaultPort           = 8080
	DefaultRequestTimeout = 30 * time.Second
)

// ServerConfig holds the settings the API server needs at startup.
type ServerConfig struct {
	Port               int
	DatabaseURL        string
	GeminiAPIKey       string   // optional; the coach answers with fallback replies when empty
	CORSAllowedOrigins []string // "*" allows any origin
	RequestTimeout     time.Duration
}

// LoadServerConfig reads PORT, DATABASE_URL (required), GEMINI_API_KEY,
// CORS_ALLOWED_ORIGINS and REQUEST_TIMEOUT.
func LoadServerConfig() (*ServerConfig, error) {
	cfg := &ServerConfig{
		Port:               DefaultPort,
		DatabaseURL:        strings.TrimSpace(os.Getenv("DATABASE_URL")),
		GeminiAPIKey:       strings.TrimSpace(os.Getenv("GEMINI_API_KEY")),
		CORSAllowedOrigins: splitList(os.Getenv("CORS_ALLOWED_ORIGINS")),
		RequestTimeout:     DefaultRequestTimeout,
	}

	if v := os.Getenv("PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid PORT: %v", err)
		}
		cfg.Port = port
	}

	if v := os.Getenv("REQUEST_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("invalid REQUEST_TIMEOUT: %v", err)
		}
		cfg.RequestTimeout = d
	}

	if len(cfg.CORSAllowedOrigins) == 0 {
		cfg.CORSAllowedOrigins = []string{"*"}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks required fields and ranges.
func (c *ServerConfig) Validate() error {
	if c.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL is required but not set")
	}
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("PORT out of range: %d", c.Port)
	}
	if c.RequestTimeout <= 0 {
		return fmt.Errorf("REQUEST_TIMEOUT must be positive, got: %s", c.RequestTimeout)
	}
	return nil
}

// Addr is the listen address for the configured port.
func (c *ServerConfig) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
