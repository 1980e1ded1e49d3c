// Package config provides configuration loading for the CLI and
// server. Values come from an optional JSON file, overlaid by
// environment variables.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// Config holds the runtime configuration. All fields are optional;
// missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Server
	Port int `json:"port,omitempty"` // HTTP port (default 8080)

	// Storage
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL connection URL

	// Generation
	APIKey   string `json:"api_key,omitempty"`  // provider API key; the prefix decides the provider
	Language string `json:"language,omitempty"` // output language (default english)

	// Candidate info for CLI runs without a database
	Profile string `json:"profile,omitempty"` // path to a profile snapshot JSON file

	// Behavior
	Verbose bool `json:"verbose,omitempty"` // debug logging
}

// DefaultPort is used when no port is configured.
const DefaultPort = 8080

// Load reads configuration from an optional JSON file and applies
// environment overrides. An empty path skips the file entirely.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	if path != "" {
		if !filepath.IsAbs(path) {
			cwd, err := os.Getwd()
			if err != nil {
				return nil, fmt.Errorf("failed to get current directory: %w", err)
			}
			path = filepath.Join(cwd, path)
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config JSON: %w", err)
		}
	}

	cfg.applyEnv()
	if cfg.Port == 0 {
		cfg.Port = DefaultPort
	}
	return cfg, nil
}

// applyEnv overlays environment variables. Environment wins over the
// file so deployments can override a checked-in config.
func (c *Config) applyEnv() {
	if v := os.Getenv("CAREERTRACK_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			c.Port = port
		}
	}
	if v := os.Getenv("DATABASE_URL"); v != "" {
		c.DatabaseURL = v
	}
	if v := os.Getenv("CAREERTRACK_API_KEY"); v != "" {
		c.APIKey = v
	}
	if v := os.Getenv("CAREERTRACK_LANGUAGE"); v != "" {
		c.Language = v
	}
	if v := os.Getenv("CAREERTRACK_PROFILE"); v != "" {
		c.Profile = v
	}
}

// Validate checks that the configuration has usable values.
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' out of range: %d", c.Port)
	}
	if c.Profile != "" {
		if _, err := os.Stat(c.Profile); os.IsNotExist(err) {
			return fmt.Errorf("config error: profile file not found: %s", c.Profile)
		}
	}
	return nil
}
