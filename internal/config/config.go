package config

import "time"

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server ServerConfig `mapstructure:"server" validate:"required"`
	Sweep  SweepConfig  `mapstructure:"sweep" validate:"required"`
	Store  StoreConfig  `mapstructure:"store"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port" validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
	// ShutdownTimeoutSeconds bounds graceful shutdown of in-flight requests.
	ShutdownTimeoutSeconds int `mapstructure:"shutdown_timeout_seconds" validate:"gt=0"`
	// AllowedOrigins feeds the CORS middleware.
	AllowedOrigins []string `mapstructure:"allowed_origins" validate:"min=1,dive,required"`
}

// ShutdownTimeout returns ShutdownTimeoutSeconds as a time.Duration.
func (c ServerConfig) ShutdownTimeout() time.Duration {
	return time.Duration(c.ShutdownTimeoutSeconds) * time.Second
}

// SweepConfig controls the periodic timeout sweep.
type SweepConfig struct {
	IntervalSeconds int `mapstructure:"interval_seconds" validate:"gt=0"`
}

// Interval returns IntervalSeconds as a time.Duration.
func (c SweepConfig) Interval() time.Duration {
	return time.Duration(c.IntervalSeconds) * time.Second
}

// StoreConfig contains task store settings.
type StoreConfig struct {
	// SeedSampleTasks loads the demo tasks at startup.
	SeedSampleTasks bool `mapstructure:"seed_sample_tasks"`
}
