// Package config holds the shopfront client configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all shopfront settings.
type Config struct {
	// API configures the storefront backend connection.
	API APIConfig `yaml:"api"`

	// Theme selects the color scheme: "light", "dark" or "auto".
	Theme string `yaml:"theme"`

	// Logging controls the file-based debug logs.
	Logging LoggingConfig `yaml:"logging"`
}

// APIConfig configures the REST backend connection.
type APIConfig struct {
	BaseURL string `yaml:"base_url"`
	Timeout string `yaml:"timeout"`
}

// LoggingConfig controls the categorized file logger.
type LoggingConfig struct {
	DebugMode bool   `yaml:"debug_mode"`
	Level     string `yaml:"level"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		API: APIConfig{
			BaseURL: "http://localhost:8080/api",
			Timeout: "15s",
		},
		Theme: "auto",
		Logging: LoggingConfig{
			DebugMode: false,
			Level:     "info",
		},
	}
}

// Dir returns the directory where config and logs are stored.
func Dir() (string, error) {
	if dir := os.Getenv("SHOPFRONT_HOME"); dir != "" {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".shopfront"), nil
}

// File returns the full path to the config file.
func File() (string, error) {
	if path := os.Getenv("SHOPFRONT_CONFIG"); path != "" {
		return path, nil
	}
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// Load reads the configuration from path, falling back to defaults when the
// file does not exist, then applies environment overrides.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg.applyEnvOverrides()
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.applyEnvOverrides()
	return cfg, nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() {
	if url := os.Getenv("SHOPFRONT_API_URL"); url != "" {
		c.API.BaseURL = url
	}
	if theme := os.Getenv("SHOPFRONT_THEME"); theme != "" {
		c.Theme = theme
	}
	if os.Getenv("SHOPFRONT_DEBUG") == "1" {
		c.Logging.DebugMode = true
	}
}

// Validate checks the configuration for obvious mistakes.
func (c *Config) Validate() error {
	if c.API.BaseURL == "" {
		return fmt.Errorf("api.base_url must not be empty")
	}
	if _, err := c.APITimeout(); err != nil {
		return fmt.Errorf("api.timeout: %w", err)
	}
	switch c.Theme {
	case "light", "dark", "auto":
	default:
		return fmt.Errorf("theme must be light, dark or auto, got %q", c.Theme)
	}
	return nil
}

// APITimeout parses the configured request timeout.
func (c *Config) APITimeout() (time.Duration, error) {
	if c.API.Timeout == "" {
		return 15 * time.Second, nil
	}
	return time.ParseDuration(c.API.Timeout)
}

// Save writes the configuration to path, creating the directory as needed.
func Save(cfg *Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}
