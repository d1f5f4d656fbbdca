package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"go-chi-calculator/internal/config"
	"go-chi-calculator/internal/keypad"
	"go-chi-calculator/internal/observability"
	"go-chi-calculator/internal/tui"
)

func runKeypad(cmd *cobra.Command, args []string) error {
	if err := config.LoadDotEnv(); err != nil {
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if lang != "" {
		locale, err := keypad.ParseLocale(lang)
		if err != nil {
			return err
		}
		cfg.Locale = locale
	}
	if logFile != "" {
		cfg.LogFile = logFile
	}

	if err := observability.InitFileLogger(cfg.LogFile, true); err != nil {
		return err
	}
	defer observability.SyncLogger()

	observability.Logger.Info("keypad started")
	return tui.Run(cfg.Locale)
}
