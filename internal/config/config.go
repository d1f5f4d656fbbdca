// Package config reads the process configuration from the environment,
// optionally seeded from a .env file.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"go-chi-calculator/internal/keypad"
)

const (
	DefaultAddr            = ":8080"
	DefaultShutdownTimeout = 5 * time.Second
	DefaultServiceName     = "pocket-calculator"
)

type Config struct {
	Addr            string
	Locale          keypad.Locale
	ShutdownTimeout time.Duration
	// OTelLogs tees the zap logger into the OTLP log exporter.
	OTelLogs    bool
	LogFile     string
	ServiceName string
}

// LoadDotEnv loads variables from the given files (".env" when none are
// named). Missing files are ignored and existing variables are not
// overridden.
func LoadDotEnv(filenames ...string) error {
	if len(filenames) == 0 {
		filenames = []string{".env"}
	}

	for _, name := range filenames {
		err := godotenv.Load(name)
		if err == nil || errors.Is(err, os.ErrNotExist) {
			continue
		}
		return fmt.Errorf("load %s: %w", name, err)
	}
	return nil
}

// Load reads the configuration from the process environment.
func Load() (Config, error) {
	return FromEnv(os.Getenv)
}

// FromEnv builds a Config from getenv, applying defaults for unset keys.
func FromEnv(getenv func(string) string) (Config, error) {
	cfg := Config{
		Addr:            DefaultAddr,
		Locale:          keypad.LocaleRU,
		ShutdownTimeout: DefaultShutdownTimeout,
		LogFile:         getenv("CALC_LOG_FILE"),
		ServiceName:     DefaultServiceName,
	}

	if v := getenv("CALC_ADDR"); v != "" {
		cfg.Addr = v
	}

	if v := getenv("CALC_LOCALE"); v != "" {
		locale, err := keypad.ParseLocale(v)
		if err != nil {
			return Config{}, fmt.Errorf("CALC_LOCALE: %w", err)
		}
		cfg.Locale = locale
	}

	if v := getenv("CALC_SHUTDOWN_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("CALC_SHUTDOWN_TIMEOUT: %w", err)
		}
		if d <= 0 {
			return Config{}, fmt.Errorf("CALC_SHUTDOWN_TIMEOUT: must be positive, got %s", d)
		}
		cfg.ShutdownTimeout = d
	}

	if v := getenv("CALC_OTEL_LOGS"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return Config{}, fmt.Errorf("CALC_OTEL_LOGS: %w", err)
		}
		cfg.OTelLogs = b
	}

	if v := getenv("OTEL_SERVICE_NAME"); v != "" {
		cfg.ServiceName = v
	}

	return cfg, nil
}
