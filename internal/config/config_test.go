package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestApplyDefaults(t *testing.T) {
	var cfg Config
	cfg.ApplyDefaults()

	if cfg.Base.Name != "yt-transcript-service" {
		t.Errorf("unexpected default name: %q", cfg.Base.Name)
	}
	if cfg.Base.Environment != "development" {
		t.Errorf("unexpected default environment: %q", cfg.Base.Environment)
	}
	if cfg.Server.Port != 8001 {
		t.Errorf("expected default port 8001, got %d", cfg.Server.Port)
	}
	if cfg.YouTube.TimeoutSeconds != 30 {
		t.Errorf("expected default timeout 30, got %d", cfg.YouTube.TimeoutSeconds)
	}
	if cfg.Log.Level != "info" {
		t.Errorf("expected default log level info, got %q", cfg.Log.Level)
	}
	if cfg.Tracing.Enabled {
		t.Error("tracing should be disabled by default")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"valid", func(c *Config) {}, ""},
		{"bad environment", func(c *Config) { c.Base.Environment = "testing" }, "base.environment"},
		{"bad port", func(c *Config) { c.Server.Port = 70000 }, "server.port"},
		{"negative timeout", func(c *Config) { c.YouTube.TimeoutSeconds = -1 }, "youtube.timeout_seconds"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var cfg Config
			cfg.ApplyDefaults()
			tc.mutate(&cfg)

			err := cfg.Validate()
			if tc.wantErr == "" {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("expected error containing %q, got %q", tc.wantErr, err.Error())
			}
		})
	}
}

func TestLoadFromYAML(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.yml")

	yamlContent := `
base:
  environment: staging
server:
  port: 9000
youtube:
  timeout_seconds: 10
`
	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(WithConfigFile(configPath), WithEnvFile(filepath.Join(dir, "missing.env")))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Base.Environment != "staging" {
		t.Errorf("expected staging, got %q", cfg.Base.Environment)
	}
	if cfg.Server.Port != 9000 {
		t.Errorf("expected port 9000, got %d", cfg.Server.Port)
	}
	if cfg.YouTube.TimeoutSeconds != 10 {
		t.Errorf("expected timeout 10, got %d", cfg.YouTube.TimeoutSeconds)
	}
	// Defaults still fill in unspecified sections.
	if cfg.Log.Level != "info" {
		t.Errorf("expected default log level, got %q", cfg.Log.Level)
	}
}

func TestLoadEnvironmentOverridesFile(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.yml")
	if err := os.WriteFile(configPath, []byte("server:\n  port: 9000\n"), 0644); err != nil {
		t.Fatal(err)
	}

	t.Setenv("PORT", "9100")
	t.Setenv("PROXY_USERNAME", "user")
	t.Setenv("PROXY_PASSWORD", "pass")

	cfg, err := Load(WithConfigFile(configPath), WithEnvFile(filepath.Join(dir, "missing.env")))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.Port != 9100 {
		t.Errorf("expected env PORT to win, got %d", cfg.Server.Port)
	}
	if p := cfg.YouTube.Proxy(); p == nil || p.Username != "user" || p.Password != "pass" {
		t.Errorf("expected proxy credentials from env, got %+v", p)
	}
}

func TestLoadDotEnvFile(t *testing.T) {
	dir := t.TempDir()
	envPath := filepath.Join(dir, ".env")
	if err := os.WriteFile(envPath, []byte("PORT=9200\nLOG_LEVEL=debug\n"), 0644); err != nil {
		t.Fatal(err)
	}
	// godotenv does not override variables already present in the process
	// environment, so clear PORT for this test.
	t.Setenv("PORT", "")
	os.Unsetenv("PORT")
	t.Setenv("LOG_LEVEL", "")
	os.Unsetenv("LOG_LEVEL")

	cfg, err := Load(WithEnvFile(envPath), WithConfigFile(filepath.Join(dir, "missing.yml")))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.Port != 9200 {
		t.Errorf("expected port from .env, got %d", cfg.Server.Port)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("expected log level from .env, got %q", cfg.Log.Level)
	}
}

func TestLoadNoFilesUsesDefaults(t *testing.T) {
	dir := t.TempDir()
	cfg, err := Load(
		WithConfigFile(filepath.Join(dir, "missing.yml")),
		WithEnvFile(filepath.Join(dir, "missing.env")),
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.Port != 8001 {
		t.Errorf("expected default port, got %d", cfg.Server.Port)
	}
	if cfg.YouTube.Proxy() != nil {
		t.Error("expected direct mode with no proxy credentials")
	}
}
