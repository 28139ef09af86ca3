package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable name, e.g.
// COURSE_AUTH_ADMIN_JWT_SECRET for auth.admin_jwt_secret.
const EnvPrefix = "COURSE"

// Defaults applied before any file or environment source.
const (
	DefaultPort       = 8080
	DefaultLogLevel   = "info"
	DefaultDriver     = DriverMongo
	DefaultDBName     = "course_api"
	DefaultBcryptCost = 5
)

// keys lists every configuration key so AutomaticEnv can resolve them
// during Unmarshal even when no file provides a value.
var keys = []string{
	"server.port",
	"server.log_level",
	"server.cors_allowed_origins",
	"database.driver",
	"database.url",
	"database.name",
	"auth.admin_jwt_secret",
	"auth.user_jwt_secret",
	"auth.bcrypt_cost",
}

// Load configuration from environment variables and optionally config files.
// Environment variables take precedence over values from config files.
// Returns a populated Config struct or an error if loading/validation fails.
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("server.port", DefaultPort)
	v.SetDefault("server.log_level", DefaultLogLevel)
	v.SetDefault("server.cors_allowed_origins", []string{})
	v.SetDefault("database.driver", DefaultDriver)
	v.SetDefault("database.name", DefaultDBName)
	v.SetDefault("auth.bcrypt_cost", DefaultBcryptCost)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for _, key := range keys {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("failed to bind env for %s: %w", key, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks cfg against its struct tags.
func Validate(cfg *Config) error {
	if err := validator.New().Struct(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}
	return nil
}
