package observability

import (
	"context"
	"net/http"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"go-chi-calculator/internal/handlers"
)

// RecordError centralises request failures: it marks the span, bumps the
// error counter with the operation and reason, logs with trace context, and
// writes the JSON error response.
func RecordError(ctx context.Context, span trace.Span, counter metric.Int64Counter, opName, msg string, err error, status int, w http.ResponseWriter) {
	span.RecordError(err)
	span.SetStatus(codes.Error, msg)

	counter.Add(ctx, 1, metric.WithAttributes(
		attribute.String("operation", opName),
		attribute.String("reason", "bad_request"),
	))

	LoggerWithTrace(ctx).Error(msg,
		zap.String("operation", opName),
		zap.Error(err),
		zap.Int("status", status),
		zap.String("request_id", RequestIDFromContext(ctx)),
		zap.String("session_id", SessionIDFromContext(ctx)),
	)

	handlers.WriteError(w, status, msg)
}
