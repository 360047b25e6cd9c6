package config

import (
	"os"
	"testing"
)

func TestLoad(t *testing.T) {
	origPort := os.Getenv("PORT")
	defer func() {
		if origPort != "" {
			os.Setenv("PORT", origPort)
		} else {
			os.Unsetenv("PORT")
		}
	}()

	t.Run("default port", func(t *testing.T) {
		os.Unsetenv("PORT")

		cfg, err := Load("")
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}

		if cfg.Port != 3000 {
			t.Errorf("Load() port = %v, want 3000", cfg.Port)
		}
	})

	t.Run("env var port override", func(t *testing.T) {
		os.Setenv("PORT", "9000")

		cfg, err := Load("")
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}

		if cfg.Port != 9000 {
			t.Errorf("Load() port = %v, want 9000", cfg.Port)
		}
	})

	t.Run("api key from env", func(t *testing.T) {
		os.Setenv("API_KEY", "secret-key")
		defer os.Unsetenv("API_KEY")

		cfg, err := Load("")
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}

		if cfg.APIKey != "secret-key" {
			t.Errorf("Load() api key = %q, want %q", cfg.APIKey, "secret-key")
		}
	})
}

func TestEnvLookup(t *testing.T) {
	t.Run("config value overlays ACTIVE_CLIENT", func(t *testing.T) {
		cfg := &Config{ActiveClient: "client7"}
		if got := cfg.EnvLookup()("ACTIVE_CLIENT"); got != "client7" {
			t.Errorf("EnvLookup()(ACTIVE_CLIENT) = %q, want %q", got, "client7")
		}
	})

	t.Run("other keys fall through to the environment", func(t *testing.T) {
		os.Setenv("WP_API_URL", "https://main.example.com")
		defer os.Unsetenv("WP_API_URL")

		cfg := &Config{ActiveClient: "client7"}
		if got := cfg.EnvLookup()("WP_API_URL"); got != "https://main.example.com" {
			t.Errorf("EnvLookup()(WP_API_URL) = %q", got)
		}
	})

	t.Run("unset config defers to the environment", func(t *testing.T) {
		os.Setenv("ACTIVE_CLIENT", "client2")
		defer os.Unsetenv("ACTIVE_CLIENT")

		cfg := &Config{}
		if got := cfg.EnvLookup()("ACTIVE_CLIENT"); got != "client2" {
			t.Errorf("EnvLookup()(ACTIVE_CLIENT) = %q, want %q", got, "client2")
		}
	})
}

func TestIsProduction(t *testing.T) {
	tests := []struct {
		environment string
		want        bool
	}{
		{"production", true},
		{"", true},
		{"staging", true},
		{"development", false},
		{"Development", false},
	}

	for _, tt := range tests {
		cfg := &Config{Environment: tt.environment}
		if got := cfg.IsProduction(); got != tt.want {
			t.Errorf("IsProduction() with %q = %v, want %v", tt.environment, got, tt.want)
		}
	}
}
