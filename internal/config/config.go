package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the application. Values come from an
// optional YAML file, overridden by environment variables.
//
// Environment overrides and defaults:
//
//	HOST         listen host            (default "")
//	PORT         listen port            (default 4000)
//	DATABASE_URL postgres DSN           (default "", runs on the in-memory store)
//	JWT_SECRET   token signing secret   (default "dev-secret")
//	TOKEN_TTL    session token lifetime (default "168h")
//	LOG_LEVEL    zerolog level          (default "info")
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	JWT      JWTConfig      `yaml:"jwt"`
	Log      LogConfig      `yaml:"log"`
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port int    `yaml:"port"`
	Host string `yaml:"host"`
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	URL string `yaml:"url"`
}

// JWTConfig holds session token configuration
type JWTConfig struct {
	Secret string `yaml:"secret"`
	TTL    string `yaml:"ttl"`
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level string `yaml:"level"`
}

// Load reads configuration from a YAML file (if it exists) and applies
// environment overrides on top
func Load(path string) (*Config, error) {
	cfg := Config{
		Server: ServerConfig{Port: 4000},
		JWT:    JWTConfig{Secret: "dev-secret", TTL: "168h"},
		Log:    LogConfig{Level: "info"},
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	} else if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	applyEnv(&cfg)

	if _, err := time.ParseDuration(cfg.JWT.TTL); err != nil {
		return nil, fmt.Errorf("invalid token ttl %q: %w", cfg.JWT.TTL, err)
	}
	return &cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("HOST"); v != "" {
		cfg.Server.Host = v
	}
	if v := os.Getenv("PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Server.Port = port
		}
	}
	if v := os.Getenv("DATABASE_URL"); v != "" {
		cfg.Database.URL = v
	}
	if v := os.Getenv("JWT_SECRET"); v != "" {
		cfg.JWT.Secret = v
	}
	if v := os.Getenv("TOKEN_TTL"); v != "" {
		cfg.JWT.TTL = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
}

// TokenTTL returns the parsed session token lifetime
func (c *JWTConfig) TokenTTL() time.Duration {
	d, err := time.ParseDuration(c.TTL)
	if err != nil {
		return 168 * time.Hour
	}
	return d
}
