package config

import (
	"fmt"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1..65535 (got %d)", c.Server.Port)
	}

	if len(c.CORS.Origins()) == 0 {
		return fmt.Errorf("cors.allowed_origins must not be empty")
	}

	if err := c.Log.validate(); err != nil {
		return fmt.Errorf("log: %w", err)
	}

	if c.Metrics.Enabled {
		if !strings.HasPrefix(c.Metrics.Path, "/") {
			return fmt.Errorf("metrics.path must start with / (got %q)", c.Metrics.Path)
		}
		if reservedPath(c.Metrics.Path) {
			return fmt.Errorf("metrics.path %q collides with an API route", c.Metrics.Path)
		}
	}

	return nil
}

// reservedPath reports whether p is already served by the API or the web
// client.
func reservedPath(p string) bool {
	switch p {
	case "/", "/health", "/todos", "/about":
		return true
	}
	return strings.HasPrefix(p, "/api/") || strings.HasPrefix(p, "/static/")
}

func (l LogConfig) validate() error {
	switch strings.ToLower(strings.TrimSpace(l.Level)) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("level must be one of debug, info, warn, error (got %q)", l.Level)
	}
	switch strings.ToLower(strings.TrimSpace(l.Format)) {
	case "json", "text":
	default:
		return fmt.Errorf("format must be json or text (got %q)", l.Format)
	}
	return nil
}
