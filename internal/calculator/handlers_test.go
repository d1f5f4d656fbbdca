package calculator

import (
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	promtestutil "github.com/prometheus/client_golang/prometheus/testutil"

	"go-chi-calculator/internal/keypad"
	"go-chi-calculator/internal/numfmt"
	"go-chi-calculator/internal/testutil"
)

func newTestRouter(t *testing.T, locale keypad.Locale) (http.Handler, *Session) {
	t.Helper()
	if err := InitMetrics(); err != nil {
		t.Fatalf("initializing calculator metrics: %v", err)
	}

	session := NewSession(locale)
	r := chi.NewRouter()
	RegisterRoutes(r, NewHandler(session))
	return r, session
}

func post(t *testing.T, h http.Handler, path string, body any) StateResponse {
	t.Helper()

	w := testutil.ServeJSON(t, h, http.MethodPost, path, body)
	testutil.CheckResponseCode(t, http.StatusOK, w.Code)

	var resp StateResponse
	testutil.DecodeJSONBody(t, w.Body, &resp)
	return resp
}

func TestStateStartsAtZero(t *testing.T) {
	h, session := newTestRouter(t, keypad.LocaleRU)

	w := testutil.ServeJSON(t, h, http.MethodGet, "/calculator/state", nil)
	testutil.CheckResponseCode(t, http.StatusOK, w.Code)

	var resp StateResponse
	testutil.DecodeJSONBody(t, w.Body, &resp)

	if resp.SessionID != session.ID() {
		t.Fatalf("expected session id %q, got %q", session.ID(), resp.SessionID)
	}
	if resp.Entry != "0" || resp.Phase != "idle" {
		t.Fatalf("expected idle 0, got %q in %q", resp.Entry, resp.Phase)
	}
	if resp.PendingOperand != nil || resp.Operator != nil {
		t.Fatalf("expected nothing pending, got %v %v", resp.PendingOperand, resp.Operator)
	}
	if resp.ClearLabel != "AC" || resp.CanClearEntry {
		t.Fatalf("expected AC clear key, got %q (can clear entry %t)", resp.ClearLabel, resp.CanClearEntry)
	}
	if resp.DisplaySize != 64 {
		t.Fatalf("expected display size 64, got %d", resp.DisplaySize)
	}
}

func TestCommandEndpointsDriveTheSession(t *testing.T) {
	h, _ := newTestRouter(t, keypad.LocaleRU)

	post(t, h, "/calculator/digit", DigitRequest{Digit: "2"})
	resp := post(t, h, "/calculator/operator", OperatorRequest{Operator: "+"})

	if resp.PendingOperand == nil || *resp.PendingOperand != "2" {
		t.Fatalf("expected pending operand 2, got %v", resp.PendingOperand)
	}
	if resp.Operator == nil || *resp.Operator != "+" {
		t.Fatalf("expected pending operator +, got %v", resp.Operator)
	}
	if resp.Hint != "2 +" {
		t.Fatalf("expected hint %q, got %q", "2 +", resp.Hint)
	}
	if resp.Phase != "operator_selected" {
		t.Fatalf("expected phase operator_selected, got %q", resp.Phase)
	}

	post(t, h, "/calculator/digit", DigitRequest{Digit: "3"})
	resp = post(t, h, "/calculator/evaluate", nil)

	if resp.Entry != "5" {
		t.Fatalf("expected entry 5, got %q", resp.Entry)
	}
	if !resp.JustEvaluated || resp.IsTyping {
		t.Fatalf("expected just evaluated and not typing, got %+v", resp)
	}
	if resp.PendingOperand != nil || resp.Operator != nil {
		t.Fatal("expected pending operation to be cleared")
	}
}

func TestFunctionEndpoints(t *testing.T) {
	h, _ := newTestRouter(t, keypad.LocaleRU)

	post(t, h, "/calculator/digit", DigitRequest{Digit: "5"})
	post(t, h, "/calculator/dot", nil)
	post(t, h, "/calculator/digit", DigitRequest{Digit: "5"})

	resp := post(t, h, "/calculator/sign", nil)
	if resp.Entry != "-5.5" {
		t.Fatalf("expected -5.5, got %q", resp.Entry)
	}

	resp = post(t, h, "/calculator/percent", nil)
	if resp.Entry != "-0.055" {
		t.Fatalf("expected -0.055, got %q", resp.Entry)
	}

	resp = post(t, h, "/calculator/clear", nil)
	if resp.Entry != "0" || resp.ClearLabel != "AC" {
		t.Fatalf("expected clear entry to leave 0 with AC, got %q %q", resp.Entry, resp.ClearLabel)
	}

	post(t, h, "/calculator/digit", DigitRequest{Digit: "7"})
	post(t, h, "/calculator/operator", OperatorRequest{Operator: "×"})
	post(t, h, "/calculator/digit", DigitRequest{Digit: "4"})

	resp = post(t, h, "/calculator/clear-entry", nil)
	if resp.Entry != "0" || resp.Operator == nil || *resp.Operator != "×" {
		t.Fatalf("expected clear entry to keep the pending ×, got %+v", resp)
	}

	resp = post(t, h, "/calculator/clear-all", nil)
	if resp.Entry != "0" || resp.Phase != "idle" || resp.Operator != nil {
		t.Fatalf("expected initial state, got %+v", resp)
	}
}

func TestKeysEndpointFollowsKeyboardTable(t *testing.T) {
	tests := []struct {
		name  string
		keys  []string
		entry string
		phase string
	}{
		{name: "addition", keys: []string{"2", "+", "3", "Enter"}, entry: "5", phase: "just_evaluated"},
		{name: "division by zero", keys: []string{"1", "0", "/", "0", "="}, entry: numfmt.ErrorToken, phase: "error"},
		{name: "recovery after error", keys: []string{"1", "/", "0", "=", "7"}, entry: "7", phase: "typing_first"},
		{name: "chained fold", keys: []string{"2", "+", "3", "*", "4", "="}, entry: "20", phase: "just_evaluated"},
		{name: "unbound keys skipped", keys: []string{"9", "x", "F5", "Backspace", "4"}, entry: "4", phase: "typing_first"},
		{name: "escape clears", keys: []string{"8", "-", "Escape"}, entry: "0", phase: "idle"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			h, _ := newTestRouter(t, keypad.LocaleRU)

			resp := post(t, h, "/calculator/keys", KeysRequest{Keys: tc.keys})
			if resp.Entry != tc.entry {
				t.Fatalf("expected entry %q, got %q", tc.entry, resp.Entry)
			}
			if resp.Phase != tc.phase {
				t.Fatalf("expected phase %q, got %q", tc.phase, resp.Phase)
			}
		})
	}
}

// overflowingOperandKeys types an exponent-form entry, extends its exponent
// past the float64 range and then presses "+", leaving an infinite operand
// pending.
func overflowingOperandKeys() []string {
	var keys []string
	for range 23 {
		keys = append(keys, strings.Split("10000000000000*", "")...)
	}
	return append(keys, strings.Split("100000000=%9+", "")...)
}

func TestOverflowingOperandStillRenders(t *testing.T) {
	h, _ := newTestRouter(t, keypad.LocaleRU)

	resp := post(t, h, "/calculator/keys", KeysRequest{Keys: overflowingOperandKeys()})
	if resp.Entry != "1e+3059" || resp.Phase != "operator_selected" {
		t.Fatalf("expected 1e+3059 with an operator selected, got %q in %q", resp.Entry, resp.Phase)
	}
	if resp.PendingOperand != nil {
		t.Fatalf("expected a null pending operand, got %q", *resp.PendingOperand)
	}
	if resp.Operator == nil || *resp.Operator != "+" {
		t.Fatalf("expected pending operator +, got %v", resp.Operator)
	}

	w := testutil.ServeJSON(t, h, http.MethodGet, "/calculator/state", nil)
	testutil.CheckResponseCode(t, http.StatusOK, w.Code)

	var state StateResponse
	testutil.DecodeJSONBody(t, w.Body, &state)
	if state.Entry != resp.Entry || state.Operator == nil {
		t.Fatalf("expected the state endpoint to show the pending +, got %+v", state)
	}

	resp = post(t, h, "/calculator/keys", KeysRequest{Keys: []string{"1", "="}})
	if resp.Entry != numfmt.ErrorToken || resp.Phase != "error" || !resp.JustEvaluated {
		t.Fatalf("expected evaluated error, got %q in %q (evaluated %t)", resp.Entry, resp.Phase, resp.JustEvaluated)
	}
}

func TestOperatorAfterErrorStartsOver(t *testing.T) {
	for _, op := range []string{"+", "-", "*", "/"} {
		t.Run(op, func(t *testing.T) {
			h, _ := newTestRouter(t, keypad.LocaleRU)

			post(t, h, "/calculator/keys", KeysRequest{Keys: []string{"7", "/", "0", "="}})
			resp := post(t, h, "/calculator/operator", OperatorRequest{Operator: op})
			if resp.Entry != "0" || resp.Operator != nil || resp.PendingOperand != nil {
				t.Fatalf("expected a fresh 0 with nothing pending, got %+v", resp)
			}

			resp = post(t, h, "/calculator/keys", KeysRequest{Keys: []string{"5", "="}})
			if resp.Entry != "5" || !resp.JustEvaluated {
				t.Fatalf("expected evaluated 5, got %q (evaluated %t)", resp.Entry, resp.JustEvaluated)
			}
		})
	}
}

func TestInvalidInputLeavesStateUnchanged(t *testing.T) {
	h, _ := newTestRouter(t, keypad.LocaleRU)

	post(t, h, "/calculator/digit", DigitRequest{Digit: "4"})

	if resp := post(t, h, "/calculator/digit", DigitRequest{Digit: "42"}); resp.Entry != "4" {
		t.Fatalf("expected entry 4 after invalid digit, got %q", resp.Entry)
	}
	if resp := post(t, h, "/calculator/operator", OperatorRequest{Operator: "^"}); resp.Operator != nil || resp.Phase != "typing_first" {
		t.Fatalf("expected unsupported operator to be ignored, got %+v", resp)
	}
}

func TestMalformedBodyIsRejected(t *testing.T) {
	h, _ := newTestRouter(t, keypad.LocaleRU)

	for _, path := range []string{"/calculator/digit", "/calculator/operator", "/calculator/keys", "/calculator/chain"} {
		t.Run(path, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, path, strings.NewReader("{not json"))

			w := testutil.ExecuteRequest(req, h)
			testutil.CheckResponseCode(t, http.StatusBadRequest, w.Code)

			var body map[string]string
			testutil.DecodeJSONBody(t, w.Body, &body)
			if body["error"] != "invalid request body" {
				t.Fatalf("expected invalid request body error, got %#v", body)
			}
		})
	}
}

func TestKeystrokesAreCounted(t *testing.T) {
	h, _ := newTestRouter(t, keypad.LocaleRU)

	before := promtestutil.ToFloat64(keystrokes.WithLabelValues("digit"))
	post(t, h, "/calculator/keys", KeysRequest{Keys: []string{"1", "2", "+", "3"}})
	after := promtestutil.ToFloat64(keystrokes.WithLabelValues("digit"))

	if after-before != 3 {
		t.Fatalf("expected 3 digit keystrokes, got %v", after-before)
	}
}

func TestKeypadLayout(t *testing.T) {
	h, _ := newTestRouter(t, keypad.LocaleRU)

	t.Run("session locale by default", func(t *testing.T) {
		w := testutil.ServeJSON(t, h, http.MethodGet, "/calculator/keypad", nil)
		testutil.CheckResponseCode(t, http.StatusOK, w.Code)

		var resp KeypadResponse
		testutil.DecodeJSONBody(t, w.Body, &resp)
		if resp.Locale != keypad.LocaleRU {
			t.Fatalf("expected locale ru, got %q", resp.Locale)
		}
		if len(resp.Rows) != 5 {
			t.Fatalf("expected 5 rows, got %d", len(resp.Rows))
		}
		if got := resp.Rows[0][0].Aria; got != "Сбросить всё" {
			t.Fatalf("expected russian clear-all name, got %q", got)
		}
	})

	t.Run("english labels", func(t *testing.T) {
		w := testutil.ServeJSON(t, h, http.MethodGet, "/calculator/keypad?lang=en", nil)
		testutil.CheckResponseCode(t, http.StatusOK, w.Code)

		var resp KeypadResponse
		testutil.DecodeJSONBody(t, w.Body, &resp)
		if got := resp.Rows[0][0]; got.Label != "AC" || got.Aria != "All clear" {
			t.Fatalf("expected AC / All clear, got %q / %q", got.Label, got.Aria)
		}
	})

	t.Run("unsupported locale", func(t *testing.T) {
		w := testutil.ServeJSON(t, h, http.MethodGet, "/calculator/keypad?lang=de", nil)
		testutil.CheckResponseCode(t, http.StatusBadRequest, w.Code)
	})
}

func TestReparseReadsDisplayText(t *testing.T) {
	tests := []struct {
		text string
		want float64
	}{
		{text: "0", want: 0},
		{text: "-12.5", want: -12.5},
		{text: "1.5e+12", want: 1.5e12},
		{text: "2e-10", want: 2e-10},
	}
	for _, tc := range tests {
		if got := reparse(tc.text); got != tc.want {
			t.Fatalf("reparse(%q): expected %v, got %v", tc.text, tc.want, got)
		}
	}

	if got := reparse(numfmt.Format(math.MaxFloat64)); !math.IsInf(got, 1) {
		t.Fatalf("expected a mantissa rounded past the float64 range to read as +Inf, got %v", got)
	}
}

func TestChain(t *testing.T) {
	h, session := newTestRouter(t, keypad.LocaleRU)

	t.Run("folds left to right", func(t *testing.T) {
		w := testutil.ServeJSON(t, h, http.MethodPost, "/calculator/chain", ChainRequest{
			Initial: 2,
			Steps: []ChainStep{
				{Op: "add", Value: 3},
				{Op: "*", Value: 4},
				{Op: "÷", Value: 8},
			},
		})
		testutil.CheckResponseCode(t, http.StatusOK, w.Code)

		var resp ChainResponse
		testutil.DecodeJSONBody(t, w.Body, &resp)
		if resp.Result != "2.5" || resp.Error {
			t.Fatalf("expected 2.5, got %+v", resp)
		}
		if len(resp.Steps) != 3 || resp.Steps[1].Display != "20" || resp.Steps[1].Op != "multiply" {
			t.Fatalf("unexpected steps %+v", resp.Steps)
		}
	})

	t.Run("formatted intermediate values", func(t *testing.T) {
		w := testutil.ServeJSON(t, h, http.MethodPost, "/calculator/chain", ChainRequest{
			Initial: 0.1,
			Steps:   []ChainStep{{Op: "add", Value: 0.2}},
		})

		var resp ChainResponse
		testutil.DecodeJSONBody(t, w.Body, &resp)
		if resp.Result != "0.3" {
			t.Fatalf("expected 0.3, got %q", resp.Result)
		}
	})

	t.Run("division by zero stops with error token", func(t *testing.T) {
		w := testutil.ServeJSON(t, h, http.MethodPost, "/calculator/chain", ChainRequest{
			Initial: 10,
			Steps: []ChainStep{
				{Op: "divide", Value: 0},
				{Op: "add", Value: 1},
			},
		})
		testutil.CheckResponseCode(t, http.StatusOK, w.Code)

		var resp ChainResponse
		testutil.DecodeJSONBody(t, w.Body, &resp)
		if resp.Result != numfmt.ErrorToken || !resp.Error {
			t.Fatalf("expected error token, got %+v", resp)
		}
		if len(resp.Steps) != 1 {
			t.Fatalf("expected chain to stop after the failing step, got %d steps", len(resp.Steps))
		}
	})

	t.Run("unknown operation", func(t *testing.T) {
		w := testutil.ServeJSON(t, h, http.MethodPost, "/calculator/chain", ChainRequest{
			Initial: 1,
			Steps:   []ChainStep{{Op: "pow", Value: 2}},
		})
		testutil.CheckResponseCode(t, http.StatusBadRequest, w.Code)
	})

	t.Run("no steps", func(t *testing.T) {
		w := testutil.ServeJSON(t, h, http.MethodPost, "/calculator/chain", ChainRequest{Initial: 1})
		testutil.CheckResponseCode(t, http.StatusBadRequest, w.Code)
	})

	if st := session.Snapshot(); st.Entry.String() != "0" {
		t.Fatalf("expected chain to leave the session untouched, got %q", st.Entry.String())
	}
}
