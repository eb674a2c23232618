// Package config loads server configuration from an optional YAML file with
// environment variable overrides. Defaults are usable without any file.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Environment variables recognized by FromEnv.
const (
	EnvConfigPath = "PKGDOCS_CONFIG"
	EnvDBPath     = "PKGDOCS_DB_PATH"
	EnvCacheTTL   = "PKGDOCS_CACHE_TTL"
	EnvCacheSize  = "PKGDOCS_CACHE_SIZE"
)

// Registries holds per-ecosystem base URLs. Empty fields fall back to the
// public registries; tests point them at local servers.
type Registries struct {
	Npm     string `yaml:"npm"`
	PyPI    string `yaml:"pypi"`
	Crates  string `yaml:"crates"`
	GoProxy string `yaml:"goproxy"`
}

// Config is the full server configuration.
type Config struct {
	// CacheTTL bounds how long a computed result stays in the in-memory
	// cache.
	CacheTTL time.Duration `yaml:"cache_ttl"`

	// CacheSize caps the number of in-memory cache entries.
	CacheSize int `yaml:"cache_size"`

	// StorePath is the directory holding the persistent document store.
	StorePath string `yaml:"store_path"`

	// StoreTTL is how long a fetched document stays fresh in the persistent
	// store before it is refetched.
	StoreTTL time.Duration `yaml:"store_ttl"`

	// RateLimit is the per-registry request rate in requests per second.
	RateLimit float64 `yaml:"rate_limit"`

	Registries Registries `yaml:"registries"`
}

// Default returns the configuration used when no file or env overrides
// exist.
func Default() Config {
	home, _ := os.UserHomeDir()
	return Config{
		CacheTTL:  time.Hour,
		CacheSize: 1000,
		StorePath: filepath.Join(home, ".pkgdocs"),
		StoreTTL:  24 * time.Hour,
		RateLimit: 5,
	}
}

// Load reads configuration from the YAML file at path, layered on top of
// defaults. An empty path returns the defaults unchanged.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config file: %w", err)
	}
	return cfg, nil
}

// FromEnv applies environment variable overrides to cfg. Unset or malformed
// variables leave the existing value in place.
func FromEnv(cfg Config) Config {
	if v := os.Getenv(EnvDBPath); v != "" {
		cfg.StorePath = v
	}
	if v := os.Getenv(EnvCacheTTL); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.CacheTTL = d
		}
	}
	if v := os.Getenv(EnvCacheSize); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.CacheSize = n
		}
	}
	return cfg
}
