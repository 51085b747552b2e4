package config

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// Validate checks every field; the CLI calls it again after applying overrides.
func (c *Config) Validate() error {
	if err := c.validateInput(); err != nil {
		return err
	}

	if err := c.validateLogging(); err != nil {
		return err
	}

	if err := c.validateNetwork(); err != nil {
		return err
	}

	if err := c.validateCORS(); err != nil {
		return err
	}

	return nil
}

func (c *Config) validateInput() error {
	if strings.TrimSpace(c.DataFile) == "" {
		return fmt.Errorf("DATA_FILE is required")
	}

	if c.IDColumn < 0 {
		return fmt.Errorf("ID_COLUMN must be >= 0, got %d", c.IDColumn)
	}

	if c.FriendsColumn < 0 {
		return fmt.Errorf("FRIENDS_COLUMN must be >= 0, got %d", c.FriendsColumn)
	}

	if c.IDColumn == c.FriendsColumn {
		return fmt.Errorf("ID_COLUMN and FRIENDS_COLUMN must differ")
	}

	return nil
}

func (c *Config) validateLogging() error {
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("LOG_LEVEL must be one of debug, info, warn, error (got %q)", c.LogLevel)
	}

	if c.LogFormat != "text" && c.LogFormat != "json" {
		return fmt.Errorf("LOG_FORMAT must be 'text' or 'json', got %q", c.LogFormat)
	}

	return nil
}

func (c *Config) validateNetwork() error {
	port, err := strconv.Atoi(c.Port)
	if err != nil {
		return fmt.Errorf("PORT must be a valid integer: %w", err)
	}

	if port < 1 || port > 65535 {
		return fmt.Errorf("PORT must be between 1 and 65535")
	}

	// Loopback for local use, 0.0.0.0/:: for containers.
	validHosts := map[string]bool{
		"127.0.0.1": true,
		"::1":       true,
		"localhost": true,
		"0.0.0.0":   true,
		"::":        true,
	}
	if !validHosts[c.ListenHost] {
		return fmt.Errorf("LISTEN_HOST must be a loopback address or 0.0.0.0/:: for containers (got %q)", c.ListenHost)
	}

	return nil
}

func (c *Config) validateCORS() error {
	for _, origin := range c.CORSOrigins {
		if origin == "*" {
			return fmt.Errorf("CORS_ORIGINS must not contain wildcard '*'")
		}
		if strings.ContainsAny(origin, "*?[]") {
			return fmt.Errorf("CORS_ORIGINS must not contain glob characters (*?[]), got %q", origin)
		}
		u, err := url.Parse(origin)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("CORS_ORIGINS contains invalid origin %q (must have scheme and host)", origin)
		}
	}

	return nil
}
