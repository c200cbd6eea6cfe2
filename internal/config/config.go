// Package config loads importer configuration: YAML file, then
// environment overrides (a .env file is honored when present).
package config

import (
	"fmt"
	"os"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Store backends.
const (
	BackendDir    = "dir"
	BackendSQLite = "sqlite"
)

// Environment variable names recognized as overrides.
const (
	EnvSourceURL    = "KJVSOURCE_URL"
	EnvCacheDir     = "KJVSOURCE_CACHE_DIR"
	EnvStoreBackend = "KJVSOURCE_STORE_BACKEND"
	EnvStorePath    = "KJVSOURCE_STORE_PATH"
)

// Config represents the application configuration.
type Config struct {
	Source SourceConfig `yaml:"source"`
	Cache  CacheConfig  `yaml:"cache"`
	Store  StoreConfig  `yaml:"store"`
}

// SourceConfig holds the upstream OSIS document location.
type SourceConfig struct {
	URL string `yaml:"url"`
}

// Validate validates the source configuration.
func (c *SourceConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.URL, validation.Required),
	)
}

// CacheConfig holds the download cache directory.
type CacheConfig struct {
	Dir string `yaml:"dir"`
}

// Validate validates the cache configuration.
func (c *CacheConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Dir, validation.Required),
	)
}

// StoreConfig holds the verse store backend selection.
type StoreConfig struct {
	Backend string `yaml:"backend"`
	Path    string `yaml:"path"`
}

// Validate validates the store configuration.
func (c *StoreConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Backend, validation.Required, validation.In(BackendDir, BackendSQLite)),
		validation.Field(&c.Path, validation.Required),
	)
}

// Validate validates the whole configuration.
func (c *Config) Validate() error {
	if err := c.Source.Validate(); err != nil {
		return fmt.Errorf("source: %w", err)
	}
	if err := c.Cache.Validate(); err != nil {
		return fmt.Errorf("cache: %w", err)
	}
	if err := c.Store.Validate(); err != nil {
		return fmt.Errorf("store: %w", err)
	}
	return nil
}

// Default returns the configuration used when no file or overrides are
// present.
func Default() Config {
	return Config{
		Source: SourceConfig{
			URL: "https://raw.githubusercontent.com/seven1m/open-bibles/master/eng-kjv.osis.xml",
		},
		Cache: CacheConfig{Dir: ".cache"},
		Store: StoreConfig{Backend: BackendDir, Path: "books"},
	}
}

// Load builds the effective configuration: defaults, overlaid by the
// YAML file at path (when non-empty), overlaid by environment
// variables. A .env file in the working directory is loaded first if
// present.
func Load(path string) (*Config, error) {
	// Missing .env is the normal case, not an error.
	_ = godotenv.Load()

	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parsing config: %w", err)
		}
	}

	applyEnv(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv(EnvSourceURL); v != "" {
		cfg.Source.URL = v
	}
	if v := os.Getenv(EnvCacheDir); v != "" {
		cfg.Cache.Dir = v
	}
	if v := os.Getenv(EnvStoreBackend); v != "" {
		cfg.Store.Backend = v
	}
	if v := os.Getenv(EnvStorePath); v != "" {
		cfg.Store.Path = v
	}
}
