// Package config loads runtime settings from CALFLOW_-prefixed environment
// variables. Flags still win over the environment where both exist.
package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	// StorePath overrides the default location of the state database.
	StorePath string `envconfig:"STORE_PATH" default:""`

	// LogLevel is a zerolog level name (disabled, error, info, debug, ...).
	LogLevel string `envconfig:"LOG_LEVEL" default:"error"`
}

func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process("calflow", &cfg); err != nil {
		return Config{}, fmt.Errorf("process environment config: %w", err)
	}
	return cfg, nil
}
