// Package config loads gateway configuration from an optional YAML file and
// the process environment. Environment variables always win over file values.
package config

import (
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

type Config struct {
	Port         int    `koanf:"port"`
	APIKey       string `koanf:"api_key"`
	DatabaseURL  string `koanf:"database_url"`
	ActiveClient string `koanf:"active_client"`
	Environment  string `koanf:"environment"`
}

// Load reads the optional config file (if path is non-empty and the file
// exists) and layers the environment on top. Unset values fall back to
// defaults.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
				return nil, err
			}
		}
	}

	// The environment surface uses flat, unprefixed names (PORT, API_KEY,
	// DATABASE_URL, ...), so keys map 1:1 after lowercasing.
	if err := k.Load(env.Provider("", ".", strings.ToLower), nil); err != nil {
		return nil, err
	}

	if !k.Exists("port") {
		k.Set("port", 3000)
	}
	if !k.Exists("environment") {
		k.Set("environment", "production")
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// IsProduction reports whether error responses should omit stack traces.
func (c *Config) IsProduction() bool {
	return !strings.EqualFold(c.Environment, "development")
}

// EnvLookup returns an environment lookup that overlays the configured
// active client. The resolver reads ACTIVE_CLIENT through this lookup, so a
// value set in the config file carries the same weight as the env variable.
func (c *Config) EnvLookup() func(string) string {
	return func(key string) string {
		if key == "ACTIVE_CLIENT" && c.ActiveClient != "" {
			return c.ActiveClient
		}
		return os.Getenv(key)
	}
}
