package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration.
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Refresh RefreshConfig `yaml:"refresh"`
	Logging LoggingConfig `yaml:"logging"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port int `yaml:"port"`
}

// Addr returns the listen address for the HTTP server.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf(":%d", s.Port)
}

// RefreshConfig holds snapshot poller settings.
type RefreshConfig struct {
	IntervalSeconds int      `yaml:"interval_seconds"`
	Rounds          []string `yaml:"rounds"`
}

// Interval returns the poll interval as a duration.
func (r RefreshConfig) Interval() time.Duration {
	return time.Duration(r.IntervalSeconds) * time.Second
}

// LoggingConfig holds logger settings.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// Default returns the configuration used when no file is supplied.
func Default() *Config {
	return &Config{
		Server:  ServerConfig{Port: 8080},
		Refresh: RefreshConfig{IntervalSeconds: 10},
		Logging: LoggingConfig{Level: "info"},
	}
}

// Load reads a YAML configuration file from the given path, applying
// defaults for anything the file does not set.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	if cfg.Server.Port <= 0 || cfg.Server.Port > 65535 {
		return nil, fmt.Errorf("invalid server port %d", cfg.Server.Port)
	}
	if cfg.Refresh.IntervalSeconds <= 0 {
		return nil, fmt.Errorf("invalid refresh interval %ds", cfg.Refresh.IntervalSeconds)
	}

	return cfg, nil
}
