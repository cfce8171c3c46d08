package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds all runtime settings. Values come from an optional YAML file
// and may be overridden by environment variables.
type Config struct {
	Port         string `yaml:"port"`
	SecretKey    string `yaml:"secret_key"`
	DBPath       string `yaml:"db_path"`
	UploadsDir   string `yaml:"uploads_dir"`
	CORSOrigins  string `yaml:"cors_origins"`
	CookieSecure bool   `yaml:"cookie_secure"`
	LogLevel     string `yaml:"log_level"`
	LogPretty    bool   `yaml:"log_pretty"`
}

func defaults() Config {
	return Config{
		Port:         "8080",
		SecretKey:    "change_me_in_production",
		DBPath:       filepath.Join("data", "coffeejournal.db"),
		UploadsDir:   filepath.Join("data", "uploads"),
		CORSOrigins:  "http://localhost:5173",
		CookieSecure: false,
		LogLevel:     "info",
		LogPretty:    false,
	}
}

// Load reads configuration from the YAML file at path, if it exists, and then
// applies environment overrides. A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := defaults()

	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
		if err == nil {
			if err := yaml.Unmarshal(raw, &cfg); err != nil {
				return Config{}, fmt.Errorf("parse config file %s: %w", path, err)
			}
		}
	}

	cfg.Port = getEnv("PORT", cfg.Port)
	cfg.SecretKey = getEnv("SECRET_KEY", cfg.SecretKey)
	cfg.DBPath = getEnv("DB_PATH", cfg.DBPath)
	cfg.UploadsDir = getEnv("UPLOADS_DIR", cfg.UploadsDir)
	cfg.CORSOrigins = getEnv("CORS_ORIGINS", cfg.CORSOrigins)
	cfg.CookieSecure = getEnvBool("COOKIE_SECURE", cfg.CookieSecure)
	cfg.LogLevel = getEnv("LOG_LEVEL", cfg.LogLevel)
	cfg.LogPretty = getEnvBool("LOG_PRETTY", cfg.LogPretty)

	return cfg, nil
}

func getEnv(key string, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}

func getEnvBool(key string, fallback bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return fallback
	}
	return parsed
}
