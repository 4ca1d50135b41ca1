package config

import (
	"os"
	"strconv"
	"time"
)

// Config is the full server configuration. Values come from the
// environment with sensible development defaults; production fills the
// environment from SSM before this is read.
type Config struct {
	Port        string
	Env         string
	DatabaseURL string
	SQLitePath  string
	FrontendURL string
	BodyLimit   string

	// Rate limiting, expressed the same way the public API documents
	// it: at most RateRequests per RateWindow per client IP.
	RateRequests int
	RateWindow   time.Duration
}

func (c *Config) LoadDefaults() {
	c.Port = "5000"
	c.Env = "development"
	c.DatabaseURL = ""
	c.SQLitePath = "sachify.db"
	c.FrontendURL = "http://localhost:3000"
	c.BodyLimit = "10M"
	c.RateRequests = 100
	c.RateWindow = 15 * time.Minute
}

// Load builds the configuration from defaults overlaid with
// environment variables.
func Load() *Config {
	c := &Config{}
	c.LoadDefaults()

	if v := os.Getenv("PORT"); v != "" {
		c.Port = v
	}
	if v := os.Getenv("GO_ENV"); v != "" {
		c.Env = v
	}
	if v := os.Getenv("DATABASE_URL"); v != "" {
		c.DatabaseURL = v
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		c.SQLitePath = v
	}
	if v := os.Getenv("FRONTEND_URL"); v != "" {
		c.FrontendURL = v
	}
	if v := os.Getenv("BODY_LIMIT"); v != "" {
		c.BodyLimit = v
	}
	if v := os.Getenv("RATE_LIMIT_MAX"); v != "" {
		if max, err := strconv.Atoi(v); err == nil && max > 0 {
			c.RateRequests = max
		}
	}
	if v := os.Getenv("RATE_LIMIT_WINDOW"); v != "" {
		if window, err := time.ParseDuration(v); err == nil && window > 0 {
			c.RateWindow = window
		}
	}
	return c
}
