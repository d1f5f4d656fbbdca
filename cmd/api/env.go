package main

import (
	"fmt"

	"go-chi-calculator/internal/config"
)

// loadConfig seeds the environment from .env when present and reads the
// service configuration. Existing process environment variables win.
func loadConfig() (config.Config, error) {
	if err := config.LoadDotEnv(); err != nil {
		return config.Config{}, err
	}

	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}
