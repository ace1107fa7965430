package main

import (
	"fmt"

	"github.com/phrazzld/taskboard/internal/config"
)

// loadAppConfig loads the application configuration from defaults, the
// optional config file, and environment variables.
func loadAppConfig(configFile string) (*config.Config, error) {
	cfg, err := config.Load(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return cfg, nil
}
