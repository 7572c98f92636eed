// Package config loads service settings from the environment.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

const (
	StoreMemory = "memory"
	StoreSQLite = "sqlite"
)

// DefaultAPIKeys is the credential allow-list used when API_KEYS is unset.
var DefaultAPIKeys = []string{"your-secret-api-key-123", "admin-key-456"}

// Config holds all runtime settings.
type Config struct {
	Port        string
	Development bool
	LogLevel    string
	StoreDriver string
	DatabaseDSN string
	RabbitMQURL string
	APIKeys     []string
}

// Addr is the listen address for Port.
func (c Config) Addr() string {
	return ":" + c.Port
}

// Load reads settings from environment variables, falling back to defaults.
func Load() (Config, error) {
	return load(viper.New())
}

func load(v *viper.Viper) (Config, error) {
	v.SetDefault("PORT", "3000")
	v.SetDefault("APP_ENV", "production")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("STORE_DRIVER", StoreMemory)
	v.SetDefault("DATABASE_DSN", "file::memory:?cache=shared")
	v.SetDefault("RABBITMQ_URL", "")
	v.SetDefault("API_KEYS", strings.Join(DefaultAPIKeys, " "))
	v.AutomaticEnv()

	cfg := Config{
		Port:        strings.TrimPrefix(v.GetString("PORT"), ":"),
		Development: strings.EqualFold(v.GetString("APP_ENV"), "development"),
		LogLevel:    v.GetString("LOG_LEVEL"),
		StoreDriver: strings.ToLower(v.GetString("STORE_DRIVER")),
		DatabaseDSN: v.GetString("DATABASE_DSN"),
		RabbitMQURL: v.GetString("RABBITMQ_URL"),
		APIKeys:     strings.Fields(v.GetString("API_KEYS")),
	}

	switch cfg.StoreDriver {
	case StoreMemory, StoreSQLite:
	default:
		return Config{}, fmt.Errorf("unsupported STORE_DRIVER %q", cfg.StoreDriver)
	}
	if len(cfg.APIKeys) == 0 {
		return Config{}, fmt.Errorf("API_KEYS must list at least one key")
	}
	return cfg, nil
}
