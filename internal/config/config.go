// Package config loads the service configuration from the environment.
//
// Responsibilities:
//   - Load environment variables (optionally from a `.env` file).
//   - Map env vars into structured Go types.
//   - Validate required values so the service fails fast on bad config.
//   - Provide defaults for everything, so an empty environment still boots
//     a development server on port 4000.
package config

import (
	"strings"

	"github.com/go-playground/validator/v10"
	// Loads `.env` into the process environment before anything reads it.
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

const (
	// EnvPrefix scopes every service variable. Nested keys are separated by a
	// double underscore: CUSTOMERS_SERVER__READ_TIMEOUT -> server.read_timeout.
	EnvPrefix = "CUSTOMERS_"

	// PortEnv is the bare port variable honoured for compatibility with
	// common hosting platforms.
	PortEnv = "PORT"

	// DefaultPort is used when neither PORT nor CUSTOMERS_SERVER__PORT is set.
	DefaultPort = "4000"

	serviceName = "customers"
)

// Config is the root configuration object for the service.
//
// Observability is a pointer because it is optional; defaults are injected
// when it is missing.
type Config struct {
	Primary       Primary              `koanf:"primary" validate:"required"`
	Server        ServerConfig         `koanf:"server" validate:"required"`
	Store         StoreConfig          `koanf:"store"`
	Observability *ObservabilityConfig `koanf:"observability"`
}

// Primary holds top-level information about the runtime environment.
type Primary struct {
	Env string `koanf:"env" validate:"required"`
}

// ServerConfig groups settings for the HTTP server runtime.
// Timeouts are in seconds.
type ServerConfig struct {
	Port               string   `koanf:"port" validate:"required,numeric"`
	ReadTimeout        int      `koanf:"read_timeout" validate:"required,min=1"`
	WriteTimeout       int      `koanf:"write_timeout" validate:"required,min=1"`
	IdleTimeout        int      `koanf:"idle_timeout" validate:"required,min=1"`
	CORSAllowedOrigins []string `koanf:"cors_allowed_origins" validate:"required"`

	// RateLimit is the sustained number of requests per second allowed per
	// client IP. Zero disables rate limiting.
	RateLimit float64 `koanf:"rate_limit" validate:"min=0"`
}

// StoreConfig configures the in-memory customer store.
type StoreConfig struct {
	// SeedFile optionally names a JSON array of customers loaded at startup.
	SeedFile string `koanf:"seed_file"`
}

// DefaultConfig returns the configuration used when no variables are set.
func DefaultConfig() *Config {
	return &Config{
		Primary: Primary{Env: "development"},
		Server: ServerConfig{
			Port:               DefaultPort,
			ReadTimeout:        30,
			WriteTimeout:       30,
			IdleTimeout:        60,
			CORSAllowedOrigins: []string{"*"},
		},
		Observability: DefaultObservabilityConfig(),
	}
}

// LoadConfig layers PORT and CUSTOMERS_* variables over DefaultConfig,
// validates the result and returns it.
func LoadConfig() (*Config, error) {
	k := koanf.New(".")

	// PORT first, so an explicit CUSTOMERS_SERVER__PORT wins over it.
	err := k.Load(env.ProviderWithValue(PortEnv, ".", func(key, value string) (string, interface{}) {
		if key != PortEnv || value == "" {
			return "", nil
		}
		return "server.port", value
	}), nil)
	if err != nil {
		return nil, errors.Wrap(err, "could not load PORT variable")
	}

	err = k.Load(env.Provider(EnvPrefix, ".", envKey), nil)
	if err != nil {
		return nil, errors.Wrap(err, "could not load env variables")
	}

	mainConfig := DefaultConfig()

	if err := k.Unmarshal("", mainConfig); err != nil {
		return nil, errors.Wrap(err, "could not unmarshal main config")
	}

	if mainConfig.Observability == nil {
		mainConfig.Observability = DefaultObservabilityConfig()
	}

	// Service name is fixed; environment always follows primary.env.
	mainConfig.Observability.ServiceName = serviceName
	mainConfig.Observability.Environment = mainConfig.Primary.Env

	if err := mainConfig.Validate(); err != nil {
		return nil, err
	}

	return mainConfig, nil
}

// Validate checks struct tags and the observability block.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return errors.Wrap(err, "config validation failed")
	}

	if err := c.Observability.Validate(); err != nil {
		return errors.Wrap(err, "invalid observability config")
	}

	return nil
}

// envKey maps CUSTOMERS_SERVER__READ_TIMEOUT to server.read_timeout.
func envKey(s string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "__", ".")
}
