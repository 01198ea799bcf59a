// Package config manages environment variables.
//
// It reads variables from the process environment (optionally seeded from a
// `.env` file), loads them into structured Go types, applies defaults for
// anything optional, and validates the result so the app fails fast on bad
// values.
//
// Naming convention: env vars carry the CALCULATOR_ prefix and use "." for
// nesting, e.g. CALCULATOR_SERVER.PORT -> server.port -> Config.Server.Port.
package config

import (
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	// Side-effect import: loads a `.env` file into the process environment
	// before any env var is read. No explicit call needed.
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
	"github.com/rs/zerolog"
)

// Config is the root configuration object for the application.
//
// The `koanf:"..."` tags specify where koanf maps values from; the
// `validate:"..."` tags are enforced by go-playground/validator after
// defaults have been applied.
//
// Observability is a pointer because it is optional: nil means "use
// defaults".
type Config struct {
	Primary       Primary              `koanf:"primary"`
	Server        ServerConfig         `koanf:"server" validate:"required"`
	Observability *ObservabilityConfig `koanf:"observability"`
}

// Primary holds top-level information about the runtime environment,
// used to tag logs and to pick environment-dependent defaults.
type Primary struct {
	Env string `koanf:"env" validate:"required,oneof=development staging production"`
}

// ServerConfig groups settings for the HTTP server runtime.
// Timeout values are interpreted as seconds.
type ServerConfig struct {
	Port               string   `koanf:"port" validate:"required"`
	ReadTimeout        int      `koanf:"read_timeout" validate:"required,min=1"`
	WriteTimeout       int      `koanf:"write_timeout" validate:"required,min=1"`
	IdleTimeout        int      `koanf:"idle_timeout" validate:"required,min=1"`
	CORSAllowedOrigins []string `koanf:"cors_allowed_origins" validate:"required"`
}

// Load reads configuration from the environment, applies defaults,
// validates the result, and returns it.
//
// It logs fatally (and exits) on malformed input: a service with a broken
// config should not come up at all.
func Load() (*Config, error) {
	// Bootstrap logger for config errors only; the real application logger
	// is built later, from the loaded config.
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	k := koanf.New(".")

	// Only env vars with the CALCULATOR_ prefix are read; the prefix is
	// stripped and the rest lowercased to form the koanf key path.
	err := k.Load(env.Provider("CALCULATOR_", ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, "CALCULATOR_"))
	}), nil)
	if err != nil {
		logger.Fatal().Err(err).Msg("Could not load initial env variables.")
	}

	mainConfig := &Config{}

	if err = k.Unmarshal("", mainConfig); err != nil {
		logger.Fatal().Err(err).Msg("Could not unmarshal main config.")
	}

	applyDefaults(mainConfig)

	validate := validator.New()
	if err = validate.Struct(mainConfig); err != nil {
		logger.Fatal().Err(err).Msg("Config validation failed.")
	}

	// Service name and environment are forced here so logging always sees
	// consistent values regardless of what was set in the environment.
	mainConfig.Observability.ServiceName = "calculator-service"
	mainConfig.Observability.Environment = mainConfig.Primary.Env

	if err := mainConfig.Observability.Validate(); err != nil {
		logger.Fatal().Err(err).Msg("invalid observability config")
	}

	return mainConfig, nil
}

// applyDefaults fills in every optional value that was not provided via the
// environment. The service has no required external dependencies, so it can
// start with an entirely empty environment.
func applyDefaults(cfg *Config) {
	if cfg.Primary.Env == "" {
		cfg.Primary.Env = "development"
	}

	if cfg.Server.Port == "" {
		cfg.Server.Port = "8080"
	}
	if cfg.Server.ReadTimeout == 0 {
		cfg.Server.ReadTimeout = 10
	}
	if cfg.Server.WriteTimeout == 0 {
		cfg.Server.WriteTimeout = 10
	}
	if cfg.Server.IdleTimeout == 0 {
		cfg.Server.IdleTimeout = 60
	}
	if len(cfg.Server.CORSAllowedOrigins) == 0 {
		cfg.Server.CORSAllowedOrigins = []string{"*"}
	}

	if cfg.Observability == nil {
		cfg.Observability = DefaultObservabilityConfig()
	}
}
