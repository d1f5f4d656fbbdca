package engine

// Phase is where the calculator is in the entry/operator/evaluate cycle.
type Phase int

const (
	// PhaseIdle is the initial "0" with nothing pending.
	PhaseIdle Phase = iota
	// PhaseTypingFirst means the left-hand operand is being typed.
	PhaseTypingFirst
	// PhaseOperatorSelected means an operator was chosen and the display still
	// shows the left-hand operand; the next digit starts a new entry.
	PhaseOperatorSelected
	// PhaseTypingSecond means the right-hand operand is being typed.
	PhaseTypingSecond
	// PhaseJustEvaluated follows "="; the next digit starts over.
	PhaseJustEvaluated
	// PhaseError shows the error token after a non-finite result.
	PhaseError
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseTypingFirst:
		return "typing_first"
	case PhaseOperatorSelected:
		return "operator_selected"
	case PhaseTypingSecond:
		return "typing_second"
	case PhaseJustEvaluated:
		return "just_evaluated"
	case PhaseError:
		return "error"
	default:
		return "unknown"
	}
}

// State is a read-only snapshot of a Calculator.
type State struct {
	Entry    Entry
	Operand  float64
	Operator Operator
	Phase    Phase

	// evaluated marks an error entry that "=" was pressed on.
	evaluated bool
}

// Pending reports whether an operator and its left operand are waiting.
func (s State) Pending() bool {
	return s.Operator != OpNone
}

// PendingOperand returns the left operand when an operation is pending.
func (s State) PendingOperand() (float64, bool) {
	if !s.Pending() {
		return 0, false
	}
	return s.Operand, true
}

// IsTyping reports whether the entry is being edited.
func (s State) IsTyping() bool {
	return s.Phase == PhaseTypingFirst || s.Phase == PhaseTypingSecond
}

// JustEvaluated reports whether the last command was "=". That includes an
// error entry that "=" produced or was pressed on.
func (s State) JustEvaluated() bool {
	return s.Phase == PhaseJustEvaluated || (s.Phase == PhaseError && s.evaluated)
}

// CanClearEntry reports whether the clear key should clear the entry ("C")
// rather than everything ("AC").
func (s State) CanClearEntry() bool {
	return s.IsTyping() || !s.Entry.IsZero()
}
