// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Environment variables read by FromEnv.
const (
	EnvAPIBaseURL  = "PORTFOLIO_API_URL"
	EnvSessionDir  = "PORTFOLIO_SESSION_DIR"
	EnvHTTPTimeout = "PORTFOLIO_HTTP_TIMEOUT"
	EnvVerbose     = "PORTFOLIO_VERBOSE"
)

// DefaultAPIBaseURL points at a local development backend.
const DefaultAPIBaseURL = "http://localhost:8080/api"

// Config is the CLI configuration. It can be loaded from a JSON file; all
// fields are optional and missing values fall back to defaults.
type Config struct {
	APIBaseURL  string `json:"api_base_url,omitempty"` // Base URL of the portfolio backend
	SessionDir  string `json:"session_dir,omitempty"`  // Directory holding the persisted session
	HTTPTimeout int    `json:"http_timeout,omitempty"` // Request timeout in seconds
	Verbose     bool   `json:"verbose,omitempty"`      // Debug logging
}

// Load reads configuration from a JSON file.
func Load(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

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

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// FromEnv builds a Config from environment variables, leaving unset fields
// empty so defaults apply at merge time.
func FromEnv() Config {
	cfg := Config{
		APIBaseURL: os.Getenv(EnvAPIBaseURL),
		SessionDir: os.Getenv(EnvSessionDir),
	}
	if raw := os.Getenv(EnvHTTPTimeout); raw != "" {
		if seconds, err := strconv.Atoi(raw); err == nil {
			cfg.HTTPTimeout = seconds
		}
	}
	if raw := os.Getenv(EnvVerbose); raw != "" {
		verbose, err := strconv.ParseBool(raw)
		cfg.Verbose = err == nil && verbose
	}
	return cfg
}

// Defaults returns the built-in fallback configuration. The session
// directory lives under the user's home; when the home directory cannot be
// resolved it falls back to the working directory.
func Defaults() Config {
	dir := ".portfolio-console"
	if home, err := os.UserHomeDir(); err == nil {
		dir = filepath.Join(home, ".portfolio-console")
	}
	return Config{
		APIBaseURL:  DefaultAPIBaseURL,
		SessionDir:  dir,
		HTTPTimeout: 30,
	}
}

// MergeWithDefaults returns a new Config with empty fields filled from
// defaults. CLI flags are applied on top by the command layer.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.APIBaseURL == "" {
		result.APIBaseURL = defaults.APIBaseURL
	}
	if result.SessionDir == "" {
		result.SessionDir = defaults.SessionDir
	}
	if result.HTTPTimeout == 0 {
		result.HTTPTimeout = defaults.HTTPTimeout
	}
	// Bool fields: cannot distinguish unset from false, so flags win.

	return result
}

// Validate checks that the configuration has usable values.
func (c *Config) Validate() error {
	if c.APIBaseURL == "" {
		return fmt.Errorf("config error: api_base_url is empty")
	}
	if c.HTTPTimeout < 0 {
		return fmt.Errorf("config error: http_timeout must be non-negative")
	}
	return nil
}

// Timeout converts the configured timeout to a duration.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.HTTPTimeout) * time.Second
}
