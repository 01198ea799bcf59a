package config

import (
	"fmt"
)

// ObservabilityConfig groups configuration related to runtime visibility.
// For this service that means structured logging; it is optional at the
// root level and defaulted when omitted.
type ObservabilityConfig struct {
	// ServiceName identifies this service in logs. Forced in Load() so it
	// cannot be "configured" into inconsistency.
	ServiceName string `koanf:"service_name" validate:"required"`

	// Environment labels telemetry by environment (production, staging,
	// development). Derived from Primary.Env.
	Environment string `koanf:"environment" validate:"required"`

	// Logging controls structured logger behavior.
	Logging LoggingConfig `koanf:"logging"`
}

// LoggingConfig holds application logging configuration.
type LoggingConfig struct {
	// Level is the verbosity threshold (debug/info/warn/error). Empty means
	// "pick by environment"; see GetLogLevel.
	Level string `koanf:"level"`

	// Format selects the output format: "json" for log pipelines,
	// "console" for humans.
	Format string `koanf:"format"`
}

// DefaultObservabilityConfig provides the defaults used when no
// observability block is configured.
func DefaultObservabilityConfig() *ObservabilityConfig {
	return &ObservabilityConfig{
		// ServiceName/Environment are overwritten in Load().
		ServiceName: "calculator-service",
		Environment: "development",

		Logging: LoggingConfig{
			Level:  "",
			Format: "json",
		},
	}
}

// Validate applies rules that go beyond struct tags: enum membership for
// the log level and format.
func (c *ObservabilityConfig) Validate() error {
	if c.ServiceName == "" {
		return fmt.Errorf("service_name is required")
	}

	validLevels := map[string]bool{
		"":      true, // empty defers to GetLogLevel's per-environment default
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[c.Logging.Level] {
		return fmt.Errorf("invalid logging level: %s (must be one of: debug, info, warn, error)", c.Logging.Level)
	}

	switch c.Logging.Format {
	case "", "json", "console":
	default:
		return fmt.Errorf("invalid logging format: %s (must be json or console)", c.Logging.Format)
	}

	return nil
}

// GetLogLevel returns the effective log level to use at runtime.
//
// When no level is configured, production defaults to "info" and every
// other environment to "debug".
func (c *ObservabilityConfig) GetLogLevel() string {
	if c.Logging.Level == "" {
		if c.IsProduction() {
			return "info"
		}
		return "debug"
	}
	return c.Logging.Level
}

// IsProduction reports whether the application is running in production mode.
func (c *ObservabilityConfig) IsProduction() bool {
	return c.Environment == "production"
}
