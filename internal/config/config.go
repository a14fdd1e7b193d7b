package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the flat cardforge configuration.
type Config struct {
	Seed        int64  `json:"seed,omitempty"`         // default RNG seed
	LogLevel    string `json:"log_level,omitempty"`    // debug, info, warn, error
	StoragePath string `json:"storage_path,omitempty"` // sqlite file; empty means in-memory
	CatalogPath string `json:"catalog_path,omitempty"` // default card catalog YAML
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		Seed:     1,
		LogLevel: "info",
	}
}

// Load reads .cardforge/config.json from the specified directory.
// Resolution order: dir only (no home fallback). A missing file returns the
// default configuration, not an error.
func Load(dir string) (*Config, error) {
	path := filepath.Join(dir, ".cardforge", "config.json")
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := Default()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}

// Save writes config.json to the directory.
func Save(dir string, cfg *Config) error {
	confDir := filepath.Join(dir, ".cardforge")
	if err := os.MkdirAll(confDir, 0755); err != nil {
		return fmt.Errorf("failed to create .cardforge dir: %w", err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	path := filepath.Join(confDir, "config.json")
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}
