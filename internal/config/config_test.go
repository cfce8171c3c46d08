package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaultsWhenFileMissing(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Port != "8080" {
		t.Fatalf("expected default port 8080, got %q", cfg.Port)
	}
	if cfg.LogLevel != "info" {
		t.Fatalf("expected default log level info, got %q", cfg.LogLevel)
	}
	if cfg.CORSOrigins != "http://localhost:5173" {
		t.Fatalf("expected default cors origin, got %q", cfg.CORSOrigins)
	}
}

func TestLoadReadsYAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "port: \"9090\"\nsecret_key: file_secret\nlog_pretty: true\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config file: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Port != "9090" {
		t.Fatalf("expected port 9090, got %q", cfg.Port)
	}
	if cfg.SecretKey != "file_secret" {
		t.Fatalf("expected secret from file, got %q", cfg.SecretKey)
	}
	if !cfg.LogPretty {
		t.Fatal("expected log_pretty true from file")
	}
	if cfg.DBPath != filepath.Join("data", "coffeejournal.db") {
		t.Fatalf("expected default db path to survive partial file, got %q", cfg.DBPath)
	}
}

func TestLoadEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("port: \"9090\"\n"), 0o600); err != nil {
		t.Fatalf("write config file: %v", err)
	}
	t.Setenv("PORT", "7070")
	t.Setenv("COOKIE_SECURE", "true")
	t.Setenv("CORS_ORIGINS", "https://journal.example.com")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Port != "7070" {
		t.Fatalf("expected env to override file port, got %q", cfg.Port)
	}
	if !cfg.CookieSecure {
		t.Fatal("expected COOKIE_SECURE=true to apply")
	}
	if cfg.CORSOrigins != "https://journal.example.com" {
		t.Fatalf("expected CORS_ORIGINS override, got %q", cfg.CORSOrigins)
	}
}

func TestLoadRejectsMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("port: [broken\n"), 0o600); err != nil {
		t.Fatalf("write config file: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected error for malformed YAML")
	}
}
