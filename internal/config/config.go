// Package config loads server configuration from an optional YAML file with
// environment-variable overrides.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds everything the server needs to start.
type Config struct {
	Port          string `yaml:"port"`
	DBPath        string `yaml:"db_path"`
	AdminPassword string `yaml:"admin_password"`
	TemplateDir   string `yaml:"template_dir"`
	StaticDir     string `yaml:"static_dir"`
}

// Default returns the configuration used when nothing else is specified.
func Default() Config {
	return Config{
		Port:          "8080",
		DBPath:        "family.db",
		AdminPassword: "admin123",
		TemplateDir:   "web/templates",
		StaticDir:     "web/static",
	}
}

// Load builds the configuration: defaults, then the YAML file at path (if
// it exists), then environment variables. An empty path skips the file.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("reading config file: %w", err)
		}
		if err == nil {
			if err := yaml.Unmarshal(raw, &cfg); err != nil {
				return Config{}, fmt.Errorf("parsing config file: %w", err)
			}
		}
	}

	applyEnv(&cfg)
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("PORT"); v != "" {
		cfg.Port = v
	}
	if v := os.Getenv("DB_PATH"); v != "" {
		cfg.DBPath = v
	}
	if v := os.Getenv("ADMIN_PASSWORD"); v != "" {
		cfg.AdminPassword = v
	}
	if v := os.Getenv("TEMPLATE_DIR"); v != "" {
		cfg.TemplateDir = v
	}
	if v := os.Getenv("STATIC_DIR"); v != "" {
		cfg.StaticDir = v
	}
}
