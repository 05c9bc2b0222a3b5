// Package config loads the service configuration from TODO_-prefixed
// environment variables (and an optional .env file).
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

const envPrefix = "TODO_"

// Config is the runtime configuration of the service. Each field is read from
// the TODO_ variable matching its koanf key, e.g. TODO_MAX_CONNS.
type Config struct {
	Env             string `koanf:"env" validate:"required,oneof=production development"`
	Port            string `koanf:"port" validate:"required,numeric"`
	DatabaseURL     string `koanf:"database_url" validate:"required"`
	SSLMode         string `koanf:"ssl_mode" validate:"required,oneof=disable allow prefer require verify-ca verify-full"`
	ConnMaxLifetime int    `koanf:"conn_max_lifetime" validate:"gt=0"`
	MaxConns        int    `koanf:"max_conns" validate:"gt=0"`

	// TestDatabaseURL points integration tests at an already running
	// database instead of a container. The service itself ignores it.
	TestDatabaseURL string `koanf:"test_database_url"`
}

// ConnRecycle is the interval after which pooled connections are closed and
// replaced.
func (c Config) ConnRecycle() time.Duration {
	return time.Duration(c.ConnMaxLifetime) * time.Second
}

func defaults() Config {
	return Config{
		Env:             "production",
		Port:            "8000",
		SSLMode:         "require",
		ConnMaxLifetime: 300,
		MaxConns:        10,
	}
}

// Load reads TODO_* variables on top of the defaults and validates the result.
// TODO_DATABASE_URL=postgres://... becomes Config.DatabaseURL.
func Load() (Config, error) {
	cfg, err := fromEnv()
	if err != nil {
		return Config{}, err
	}

	if err := validator.New().Struct(cfg); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// TestDatabaseURL returns TODO_TEST_DATABASE_URL, or "" when it is unset.
// The rest of the configuration is not validated, so tests do not need
// TODO_DATABASE_URL.
func TestDatabaseURL() (string, error) {
	cfg, err := fromEnv()
	if err != nil {
		return "", err
	}
	return cfg.TestDatabaseURL, nil
}

func fromEnv() (Config, error) {
	k := koanf.New(".")

	err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, envPrefix))
	}), nil)
	if err != nil {
		return Config{}, fmt.Errorf("load env: %w", err)
	}

	cfg := defaults()
	if err := k.Unmarshal("", &cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return cfg, nil
}
