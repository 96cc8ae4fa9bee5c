// Package config resolves process-level configuration from the
// environment. Everything is read once at startup; nothing here is
// re-read at runtime.
package config

import (
	"fmt"
	"os"
	"strconv"
)

// Defaults applied when the corresponding variable is unset.
const (
	defaultPort         = 8080
	defaultMonthlyLimit = 5.0
	defaultUsageFile    = "data/usage.json"
)

// Config holds the gateway's process configuration. Provider selection
// itself lives in internal/llm and is resolved separately.
type Config struct {
	// Port is the HTTP listen port (PORT).
	Port int
	// MonthlyLimit is the spend cap for quota-limited providers, in
	// monetary units (AI_MONTHLY_LIMIT).
	MonthlyLimit float64
	// UsageFile is the path of the file-backed usage ledger
	// (AI_USAGE_FILE). Ignored when DatabaseURL is set.
	UsageFile string
	// DatabaseURL selects the Postgres-backed usage ledger when non-empty
	// (DATABASE_URL).
	DatabaseURL string
}

// Load reads and validates the configuration from the environment.
func Load() (*Config, error) {
	cfg := &Config{
		Port:         defaultPort,
		MonthlyLimit: defaultMonthlyLimit,
		UsageFile:    defaultUsageFile,
		DatabaseURL:  os.Getenv("DATABASE_URL"),
	}

	if v := os.Getenv("PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid PORT %q: %w", v, err)
		}
		cfg.Port = port
	}

	if v := os.Getenv("AI_MONTHLY_LIMIT"); v != "" {
		limit, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid AI_MONTHLY_LIMIT %q: %w", v, err)
		}
		cfg.MonthlyLimit = limit
	}

	if v := os.Getenv("AI_USAGE_FILE"); v != "" {
		cfg.UsageFile = v
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that the configuration has usable values.
func (c *Config) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("config error: port %d out of range", c.Port)
	}
	if c.MonthlyLimit < 0 {
		return fmt.Errorf("config error: monthly limit must be non-negative")
	}
	if c.UsageFile == "" && c.DatabaseURL == "" {
		return fmt.Errorf("config error: either AI_USAGE_FILE or DATABASE_URL must be set")
	}
	return nil
}
