// Package config persists editor preferences between invocations.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

const (
	// DefaultConfigDir is the default configuration directory
	DefaultConfigDir = ".config/ebsedit"
	// ConfigFileName is the name of the configuration file
	ConfigFileName = "config.json"
)

// Config holds the editor preferences
type Config struct {
	// DefaultTemplate is the output template prefilled when generating
	// intervals interactively
	DefaultTemplate string `json:"default_template"`
	// DefaultStep is the step prefilled when generating intervals
	// interactively
	DefaultStep int `json:"default_step"`
	// NoColor disables styled terminal output
	NoColor bool `json:"no_color,omitempty"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() Config {
	return Config{
		DefaultTemplate: "out{i%5}.png",
		DefaultStep:     10,
	}
}

// GetConfigDir returns the configuration directory path
func GetConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return DefaultConfigDir
	}
	return filepath.Join(home, DefaultConfigDir)
}

// Load loads the configuration from disk
func Load() (*Config, error) {
	configPath := filepath.Join(GetConfigDir(), ConfigFileName)

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			// Return default config if file doesn't exist
			cfg := DefaultConfig()
			return &cfg, nil
		}
		return nil, err
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Save saves the configuration to disk
func Save(cfg *Config) error {
	if err := os.MkdirAll(GetConfigDir(), 0755); err != nil {
		return err
	}

	configPath := filepath.Join(GetConfigDir(), ConfigFileName)

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0644)
}
