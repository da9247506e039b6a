package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultPath is where commands look for configuration when no file argument
// is given.
const DefaultPath = "wealthpulse.yaml"

// Config represents the top-level wealthpulse.yaml configuration.
type Config struct {
	PriceDB         string `yaml:"price_db"`
	Journal         string `yaml:"journal,omitempty"`
	DefaultCurrency string `yaml:"default_currency,omitempty"`
}

// Load reads a wealthpulse.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config with sensible defaults for a new books directory.
func Default() *Config {
	return &Config{
		PriceDB:         "prices.db",
		Journal:         "journal.dat",
		DefaultCurrency: "$",
	}
}
