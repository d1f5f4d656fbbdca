package main

import (
	"context"

	"go-chi-calculator/internal/calculator"
	"go-chi-calculator/internal/config"
	"go-chi-calculator/internal/observability"
)

// initTelemetry installs the OTel providers and the calculator's metric
// instruments. Add new domain InitMetrics calls here as the project grows.
func initTelemetry(ctx context.Context, cfg config.Config) (func(context.Context) error, error) {
	shutdown, err := observability.Setup(ctx, observability.TelemetryOptions{
		ServiceName: cfg.ServiceName,
		Logs:        cfg.OTelLogs,
	})
	if err != nil {
		return nil, err
	}

	if err := calculator.InitMetrics(); err != nil {
		_ = shutdown(ctx)
		return nil, err
	}

	return shutdown, nil
}
