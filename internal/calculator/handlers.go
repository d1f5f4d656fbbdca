package calculator

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"go-chi-calculator/internal/engine"
	"go-chi-calculator/internal/handlers"
	"go-chi-calculator/internal/keypad"
	"go-chi-calculator/internal/numfmt"
	"go-chi-calculator/internal/observability"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// tracer is the calculator's dedicated OpenTelemetry tracer.
var tracer = otel.Tracer("calculator")

// Handler serves the keypad of one Session over HTTP.
type Handler struct {
	session *Session
}

func NewHandler(session *Session) *Handler {
	return &Handler{session: session}
}

// ---------------------------------------------------------------------------
// Handlers: session commands
// ---------------------------------------------------------------------------

// State handles GET /calculator/state.
func (h *Handler) State(w http.ResponseWriter, r *http.Request) {
	if err := handlers.WriteJSON(w, http.StatusOK, newStateResponse(h.session.ID(), h.session.Snapshot())); err != nil {
		observability.LoggerWithTrace(r.Context()).Error("writing calculator state", zap.Error(err))
	}
}

// Digit handles POST /calculator/digit. Anything but a single digit leaves
// the state untouched.
func (h *Handler) Digit(w http.ResponseWriter, r *http.Request) {
	var req DigitRequest
	h.handleCommand(w, r, "digit", &req, func() []keypad.Command {
		return []keypad.Command{{Action: keypad.ActionDigit, Digit: req.Digit}}
	})
}

// Dot handles POST /calculator/dot.
func (h *Handler) Dot(w http.ResponseWriter, r *http.Request) {
	h.handleAction(w, r, keypad.ActionDot)
}

// Sign handles POST /calculator/sign.
func (h *Handler) Sign(w http.ResponseWriter, r *http.Request) {
	h.handleAction(w, r, keypad.ActionSign)
}

// Percent handles POST /calculator/percent.
func (h *Handler) Percent(w http.ResponseWriter, r *http.Request) {
	h.handleAction(w, r, keypad.ActionPercent)
}

// Operator handles POST /calculator/operator.
func (h *Handler) Operator(w http.ResponseWriter, r *http.Request) {
	var req OperatorRequest
	h.handleCommand(w, r, "operator", &req, func() []keypad.Command {
		op, ok := engine.ParseOperator(req.Operator)
		if !ok {
			return nil
		}
		return []keypad.Command{{Action: keypad.ActionOperator, Operator: op}}
	})
}

// Evaluate handles POST /calculator/evaluate.
func (h *Handler) Evaluate(w http.ResponseWriter, r *http.Request) {
	h.handleAction(w, r, keypad.ActionEvaluate)
}

// Clear handles POST /calculator/clear, the dual-purpose C/AC key.
func (h *Handler) Clear(w http.ResponseWriter, r *http.Request) {
	h.handleAction(w, r, keypad.ActionClear)
}

// ClearAll handles POST /calculator/clear-all.
func (h *Handler) ClearAll(w http.ResponseWriter, r *http.Request) {
	h.handleAction(w, r, keypad.ActionClearAll)
}

// ClearEntry handles POST /calculator/clear-entry.
func (h *Handler) ClearEntry(w http.ResponseWriter, r *http.Request) {
	h.handleAction(w, r, keypad.ActionClearEntry)
}

// Keys handles POST /calculator/keys: each key goes through the keyboard
// table in order and unbound keys are skipped.
func (h *Handler) Keys(w http.ResponseWriter, r *http.Request) {
	var req KeysRequest
	h.handleCommand(w, r, "keys", &req, func() []keypad.Command {
		cmds := make([]keypad.Command, 0, len(req.Keys))
		for _, key := range req.Keys {
			if cmd, ok := keypad.FromKey(key); ok {
				cmds = append(cmds, cmd)
			}
		}
		return cmds
	})
}

// Keypad handles GET /calculator/keypad?lang=ru|en.
func (h *Handler) Keypad(w http.ResponseWriter, r *http.Request) {
	locale := h.session.Locale()
	if lang := r.URL.Query().Get("lang"); lang != "" {
		parsed, err := keypad.ParseLocale(lang)
		if err != nil {
			ctx, span := tracer.Start(r.Context(), "calculator.keypad")
			defer span.End()
			observability.RecordError(ctx, span, errorCounter, "keypad", "unsupported locale", err, http.StatusBadRequest, w)
			return
		}
		locale = parsed
	}

	handlers.WriteJSON(w, http.StatusOK, KeypadResponse{
		Locale: locale,
		Rows:   keypad.Layout(locale, h.session.Snapshot()),
	})
}

func (h *Handler) handleAction(w http.ResponseWriter, r *http.Request, action keypad.Action) {
	h.handleCommand(w, r, action.String(), nil, func() []keypad.Command {
		return []keypad.Command{{Action: action}}
	})
}

// handleCommand is the shared implementation for every state-changing
// endpoint. body, when non-nil, is decoded from the request before commands
// builds the keypad commands to apply.
func (h *Handler) handleCommand(w http.ResponseWriter, r *http.Request, opName string, body any, commands func() []keypad.Command) {
	ctx := r.Context()
	logger := observability.LoggerWithTrace(ctx)
	requestID := observability.RequestIDFromContext(ctx)

	ctx, span := tracer.Start(ctx, fmt.Sprintf("calculator.%s", opName),
		trace.WithAttributes(
			attribute.String("calculator.operation", opName),
			attribute.String("calculator.session.id", h.session.ID()),
			attribute.String("request.id", requestID),
		),
	)
	defer span.End()

	if body != nil {
		if err := json.NewDecoder(r.Body).Decode(body); err != nil {
			observability.RecordError(ctx, span, errorCounter, opName, "invalid request body", err, http.StatusBadRequest, w)
			return
		}
	}

	cmds := commands()

	start := time.Now()
	var before engine.Phase
	st := h.session.Do(func(c *engine.Calculator) {
		before = c.State().Phase
		for _, cmd := range cmds {
			cmd.Apply(c)
		}
	})
	elapsed := float64(time.Since(start).Microseconds()) / 1000.0

	attrs := metric.WithAttributes(attribute.String("operation", opName))
	opsCounter.Add(ctx, 1, attrs)
	opsHistogram.Record(ctx, elapsed, attrs)
	for _, cmd := range cmds {
		keystrokes.WithLabelValues(cmd.Action.String()).Inc()
	}

	entry := st.Entry.String()
	span.SetAttributes(
		attribute.Int("calculator.commands", len(cmds)),
		attribute.String("calculator.phase", st.Phase.String()),
		attribute.String("calculator.entry", entry),
	)

	switch {
	case st.Phase == engine.PhaseError && before != engine.PhaseError:
		errorCounter.Add(ctx, 1, metric.WithAttributes(
			attribute.String("operation", opName),
			attribute.String("reason", "non_finite"),
		))
		span.AddEvent("calculator.error", trace.WithAttributes(attribute.String("entry", entry)))
	case st.JustEvaluated():
		resultGauge.Record(ctx, st.Entry.Value(), attrs)
		span.AddEvent("computation.complete", trace.WithAttributes(attribute.String("result", entry)))
	}
	span.SetStatus(codes.Ok, "")

	logger.Info("calculator command applied",
		zap.String("operation", opName),
		zap.Int("commands", len(cmds)),
		zap.String("entry", entry),
		zap.String("phase", st.Phase.String()),
		zap.String("request_id", requestID),
		zap.String("session_id", h.session.ID()),
		zap.Float64("duration_ms", elapsed),
	)

	if err := handlers.WriteJSON(w, http.StatusOK, newStateResponse(h.session.ID(), st)); err != nil {
		span.RecordError(err)
		logger.Error("writing calculator state",
			zap.String("operation", opName),
			zap.String("request_id", requestID),
			zap.Error(err),
		)
	}
}

// ---------------------------------------------------------------------------
// Handler: chained operations (nested spans)
// ---------------------------------------------------------------------------

// Chain handles POST /calculator/chain. It folds the steps left to right from
// the initial value, exactly as typing them on a fresh keypad would, and
// creates a child span for every step. A step that produces a non-finite
// value stops the chain with the error token.
func Chain(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := observability.LoggerWithTrace(ctx)
	requestID := observability.RequestIDFromContext(ctx)

	ctx, span := tracer.Start(ctx, "calculator.chain",
		trace.WithAttributes(
			attribute.String("request.id", requestID),
		),
	)
	defer span.End()

	var req ChainRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		observability.RecordError(ctx, span, errorCounter, "chain", "invalid request body", err, http.StatusBadRequest, w)
		return
	}

	if len(req.Steps) == 0 {
		observability.RecordError(ctx, span, errorCounter, "chain", "no steps provided", fmt.Errorf("steps array is empty"), http.StatusBadRequest, w)
		return
	}

	ops := make([]engine.Operator, len(req.Steps))
	for i, step := range req.Steps {
		op, ok := engine.ParseOperator(step.Op)
		if !ok {
			observability.RecordError(ctx, span, errorCounter, "chain", "unknown operation",
				fmt.Errorf("unknown operation %q at step %d", step.Op, i), http.StatusBadRequest, w)
			return
		}
		ops[i] = op
	}

	span.SetAttributes(
		attribute.Float64("chain.initial", req.Initial),
		attribute.Int("chain.steps_count", len(req.Steps)),
	)

	logger.Info("starting chained calculation",
		zap.Float64("initial", req.Initial),
		zap.Int("steps", len(req.Steps)),
		zap.String("request_id", requestID),
	)

	running := reparse(numfmt.Format(req.Initial))
	display := numfmt.Format(running)
	results := make([]ChainResult, 0, len(req.Steps))

	for i, step := range req.Steps {
		op := ops[i]
		_, stepSpan := tracer.Start(ctx, fmt.Sprintf("calculator.chain.step.%d.%s", i, op),
			trace.WithAttributes(
				attribute.Int("chain.step.index", i),
				attribute.String("chain.step.operation", op.String()),
				attribute.Float64("chain.step.input", running),
				attribute.Float64("chain.step.value", step.Value),
			),
		)

		stepStart := time.Now()
		result := engine.Compute(running, step.Value, op)
		display = numfmt.Format(result)
		stepElapsed := float64(time.Since(stepStart).Microseconds()) / 1000.0

		results = append(results, ChainResult{
			Op:      op.String(),
			Value:   numfmt.Format(step.Value),
			Display: display,
		})

		if numfmt.IsError(display) {
			err := fmt.Errorf("non-finite result at step %d", i)
			stepSpan.RecordError(err)
			stepSpan.SetStatus(codes.Error, err.Error())
			stepSpan.End()

			span.AddEvent("chain.error", trace.WithAttributes(attribute.Int("step", i)))
			errorCounter.Add(ctx, 1, metric.WithAttributes(
				attribute.String("operation", op.String()),
				attribute.String("reason", "non_finite"),
			))

			logger.Warn("chain step produced an error result",
				zap.Int("step", i),
				zap.String("operation", op.String()),
				zap.Float64("input", running),
				zap.Float64("value", step.Value),
				zap.String("request_id", requestID),
			)
			break
		}

		prev := running
		running = reparse(display)

		attrs := metric.WithAttributes(attribute.String("operation", op.String()))
		opsCounter.Add(ctx, 1, attrs)
		opsHistogram.Record(ctx, stepElapsed, attrs)

		stepSpan.AddEvent("step.complete", trace.WithAttributes(
			attribute.Float64("input", prev),
			attribute.String("result", display),
		))
		stepSpan.SetAttributes(attribute.String("chain.step.result", display))
		stepSpan.SetStatus(codes.Ok, "")
		stepSpan.End()

		logger.Info("chain step completed",
			zap.Int("step", i),
			zap.String("operation", op.String()),
			zap.Float64("input", prev),
			zap.Float64("value", step.Value),
			zap.String("result", display),
			zap.Float64("duration_ms", stepElapsed),
		)
	}

	failed := numfmt.IsError(display)
	if !failed {
		resultGauge.Record(ctx, running, metric.WithAttributes(attribute.String("operation", "chain")))
	}

	span.AddEvent("chain.complete", trace.WithAttributes(
		attribute.String("final_result", display),
		attribute.Int("executed_steps", len(results)),
	))
	span.SetAttributes(attribute.String("chain.result", display))
	span.SetStatus(codes.Ok, "")

	logger.Info("chained calculation completed",
		zap.Float64("initial", req.Initial),
		zap.String("result", display),
		zap.Int("steps", len(results)),
		zap.String("request_id", requestID),
	)

	handlers.WriteJSON(w, http.StatusOK, ChainResponse{
		Initial: numfmt.Format(req.Initial),
		Steps:   results,
		Result:  display,
		Error:   failed,
	})
}

// reparse reads a formatted number back. The running total of a chain is
// always what the display would show. Callers never pass the error token, so
// the only possible error is a range error for a mantissa rounded past
// MaxFloat64, for which ParseFloat already returns ±Inf.
func reparse(s string) float64 {
	v, _ := strconv.ParseFloat(s, 64)
	return v
}
