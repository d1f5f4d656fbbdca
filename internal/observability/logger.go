package observability

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// Logger is the process-wide logger. It discards everything until one of the
// Init functions runs.
var Logger = zap.NewNop()

// InitLogger installs a production JSON logger on stdout/stderr.
func InitLogger() error {
	l, err := zap.NewProduction()
	if err != nil {
		return err
	}
	Logger = l
	return nil
}

// InitFileLogger sends JSON logs to path instead of the terminal, which the
// keypad UI owns. An empty path keeps logging disabled.
func InitFileLogger(path string, debug bool) error {
	if path == "" {
		Logger = zap.NewNop()
		return nil
	}

	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{path}
	cfg.ErrorOutputPaths = []string{path}
	if debug {
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}

	l, err := cfg.Build()
	if err != nil {
		return fmt.Errorf("opening log file %s: %w", path, err)
	}
	Logger = l
	return nil
}

func SyncLogger() {
	_ = Logger.Sync()
}

// LoggerWithTrace returns Logger enriched with the trace and span ids of the
// active span in ctx.
//
// ctx itself is attached as a zap.Any field: the otelzap bridge recognises a
// context.Context field value and emits the record with it, which fills the
// native OTLP TraceID/SpanID. The string ids keep stdout JSON greppable.
func LoggerWithTrace(ctx context.Context) *zap.Logger {
	span := trace.SpanContextFromContext(ctx)

	if !span.IsValid() {
		return Logger
	}

	return Logger.With(
		zap.Any("context", ctx),
		zap.String("trace_id", span.TraceID().String()),
		zap.String("span_id", span.SpanID().String()),
	)
}
