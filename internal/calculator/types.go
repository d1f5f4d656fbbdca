package calculator

import (
	"go-chi-calculator/internal/engine"
	"go-chi-calculator/internal/keypad"
	"go-chi-calculator/internal/numfmt"
)

// DigitRequest is the JSON body for POST /calculator/digit.
type DigitRequest struct {
	Digit string `json:"digit"`
}

// OperatorRequest is the JSON body for POST /calculator/operator.
type OperatorRequest struct {
	Operator string `json:"operator"` // "+", "-", "*", "/" or the display glyphs
}

// KeysRequest is the JSON body for POST /calculator/keys.
type KeysRequest struct {
	Keys []string `json:"keys"`
}

// StateResponse is returned by every session endpoint.
type StateResponse struct {
	SessionID      string   `json:"session_id"`
	Entry          string   `json:"entry"`
	PendingOperand *string  `json:"pending_operand"`
	Operator       *string  `json:"operator"`
	Phase          string   `json:"phase"`
	IsTyping       bool     `json:"is_typing"`
	JustEvaluated  bool     `json:"just_evaluated"`
	CanClearEntry  bool     `json:"can_clear_entry"`
	ClearLabel     string   `json:"clear_label"`
	Hint           string   `json:"hint"`
	DisplaySize    int      `json:"display_size"`
}

func newStateResponse(sessionID string, st engine.State) StateResponse {
	entry := st.Entry.String()
	resp := StateResponse{
		SessionID:     sessionID,
		Entry:         entry,
		Phase:         st.Phase.String(),
		IsTyping:      st.IsTyping(),
		JustEvaluated: st.JustEvaluated(),
		CanClearEntry: st.CanClearEntry(),
		ClearLabel:    keypad.ClearLabel(st),
		Hint:          keypad.Hint(st),
		DisplaySize:   keypad.DisplaySize(entry).Pixels(),
	}

	// The operand is rendered like the display. An operand typed past the
	// float64 range stays null rather than breaking the encoding.
	if operand, ok := st.PendingOperand(); ok {
		symbol := st.Operator.Symbol()
		resp.Operator = &symbol
		if text := numfmt.Format(operand); !numfmt.IsError(text) {
			resp.PendingOperand = &text
		}
	}

	return resp
}

// KeypadResponse is the JSON response for GET /calculator/keypad.
type KeypadResponse struct {
	Locale keypad.Locale     `json:"locale"`
	Rows   [][]keypad.Button `json:"rows"`
}

// ChainStep describes a single step in a chained calculation.
type ChainStep struct {
	Op    string  `json:"op"`    // "add", "subtract", "multiply", "divide" or a symbol
	Value float64 `json:"value"` // right-hand operand applied to the running total
}

// ChainRequest is the JSON body for POST /calculator/chain.
type ChainRequest struct {
	Initial float64     `json:"initial"`
	Steps   []ChainStep `json:"steps"`
}

// ChainResult records one executed step. Display is the formatted running
// total, which is the error token once a step divides by zero.
type ChainResult struct {
	Op      string `json:"op"`
	Value   string `json:"value"`
	Display string `json:"display"`
}

// ChainResponse is the JSON response for POST /calculator/chain.
type ChainResponse struct {
	Initial string        `json:"initial"`
	Steps   []ChainResult `json:"steps"`
	Result  string        `json:"result"`
	Error   bool          `json:"error"`
}
