package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is read from an optional YAML file, then overridden by
// environment variables.
type Config struct {
	Port        string `yaml:"port"`
	DataDir     string `yaml:"data_dir"`
	DatabaseURL string `yaml:"database_url"`

	TokenTTLMinutes  int `yaml:"token_ttl_minutes"`
	MaxLoginAttempts int `yaml:"max_login_attempts"`
	LoginLimitPerMin int `yaml:"login_limit_per_min"`

	MetricsEnabled bool   `yaml:"metrics_enabled"`
	MetricsToken   string `yaml:"metrics_token"`
}

func Default() Config {
	return Config{
		Port:             "3001",
		DataDir:          "initial-data",
		TokenTTLMinutes:  5,
		MaxLoginAttempts: 3,
		LoginLimitPerMin: 5,
	}
}

// Load reads path when non-empty, then applies env overrides. A missing
// file with an empty path is not an error; an unreadable named file is.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return Config{}, err
	}

	if cfg.TokenTTLMinutes <= 0 || cfg.MaxLoginAttempts <= 0 {
		return Config{}, fmt.Errorf("token ttl and max login attempts must be positive")
	}

	return cfg, nil
}

func (c *Config) TokenTTL() time.Duration {
	return time.Duration(c.TokenTTLMinutes) * time.Minute
}

func (c *Config) applyEnv() error {
	setString(&c.Port, "PORT")
	setString(&c.DataDir, "DATA_DIR")
	setString(&c.DatabaseURL, "DATABASE_URL")
	setString(&c.MetricsToken, "METRICS_TOKEN")

	if err := setInt(&c.TokenTTLMinutes, "TOKEN_TTL_MINUTES"); err != nil {
		return err
	}
	if err := setInt(&c.MaxLoginAttempts, "MAX_LOGIN_ATTEMPTS"); err != nil {
		return err
	}
	if err := setInt(&c.LoginLimitPerMin, "LOGIN_LIMIT_PER_MIN"); err != nil {
		return err
	}
	return setBool(&c.MetricsEnabled, "METRICS_ENABLED")
}

func setString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func setInt(dst *int, key string) error {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("invalid %s: %w", key, err)
	}
	*dst = n
	return nil
}

func setBool(dst *bool, key string) error {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fmt.Errorf("invalid %s: %w", key, err)
	}
	*dst = b
	return nil
}
