// Package engine is the input and evaluation state machine of a four-function
// pocket calculator.
//
// A Calculator is owned by a single caller and is not safe for concurrent use.
// Every method is total: invalid input is ignored and non-finite results turn
// the entry into the error token.
package engine

// Calculator holds one calculator session.
type Calculator struct {
	state State
}

// New returns a calculator showing "0" with nothing pending.
func New() *Calculator {
	return &Calculator{state: State{Entry: zeroEntry}}
}

// State returns a snapshot of the current state.
func (c *Calculator) State() State {
	return c.state
}

// Entry returns the display text.
func (c *Calculator) Entry() string {
	return c.state.Entry.String()
}

// InputDigit types d, which must be a single ASCII digit.
func (c *Calculator) InputDigit(d string) {
	if len(d) != 1 || d[0] < '0' || d[0] > '9' {
		return
	}

	s := &c.state
	switch s.Phase {
	case PhaseJustEvaluated, PhaseError:
		s.clearPending()
		s.Entry = Entry{text: d}
		s.Phase = PhaseTypingFirst
	case PhaseOperatorSelected:
		s.Entry = Entry{text: d}
		s.Phase = PhaseTypingSecond
	case PhaseIdle:
		s.Entry = s.Entry.withDigit(d[0])
		s.Phase = PhaseTypingFirst
	default:
		s.Entry = s.Entry.withDigit(d[0])
	}
}

// InputDot types a decimal point.
func (c *Calculator) InputDot() {
	s := &c.state
	switch s.Phase {
	case PhaseJustEvaluated, PhaseError:
		s.clearPending()
		s.Entry = Entry{text: "0."}
		s.Phase = PhaseTypingFirst
	case PhaseOperatorSelected:
		s.Entry = Entry{text: "0."}
		s.Phase = PhaseTypingSecond
	case PhaseIdle:
		s.Entry = s.Entry.withPoint()
		s.Phase = PhaseTypingFirst
	default:
		s.Entry = s.Entry.withPoint()
	}
}

// ToggleSign flips the sign of the entry.
func (c *Calculator) ToggleSign() {
	if c.state.Phase == PhaseError {
		return
	}
	c.state.Entry = c.state.Entry.negated()
}

// Percent replaces the entry with entry/100, or with operand*entry/100 while
// an operation is pending. The pending operation is kept, even when the
// result is not finite.
func (c *Calculator) Percent() {
	s := &c.state
	if s.Phase == PhaseError {
		return
	}

	v := s.Entry.Value() / 100
	if s.Pending() {
		v = s.Operand * s.Entry.Value() / 100
	}
	if !finite(v) {
		s.Entry = errorEntry
		s.Phase = PhaseError
		s.evaluated = false
		return
	}

	s.Entry = entryOf(v)
	if s.Pending() {
		s.Phase = PhaseTypingSecond
	} else {
		s.Phase = PhaseTypingFirst
	}
}

// SetOperator selects op, folding a pending operation first when a new
// operand has been typed. Unsupported operators are ignored.
//
// An operator pressed on the error entry has no left operand to bind to: the
// entry resets to "0" and nothing is left pending.
func (c *Calculator) SetOperator(op Operator) {
	if !op.Valid() {
		return
	}

	s := &c.state
	switch {
	case s.Phase == PhaseError:
		s.clearPending()
		s.Entry = zeroEntry
		s.Phase = PhaseIdle
		return
	case s.Pending() && s.IsTyping():
		result := Compute(s.Operand, s.Entry.Value(), s.Operator)
		if !finite(result) {
			s.fail()
			return
		}
		s.Entry = entryOf(result)
		s.Operand = s.Entry.Value()
	case s.Pending():
		// Operator substitution: the left operand stays as it is.
	default:
		s.Operand = s.Entry.Value()
	}

	s.Operator = op
	s.Phase = PhaseOperatorSelected
}

// Evaluate applies the pending operation to the entry. With nothing pending
// it only marks the entry as evaluated.
func (c *Calculator) Evaluate() {
	s := &c.state
	if !s.Pending() {
		if s.Phase == PhaseError {
			s.evaluated = true
		} else {
			s.Phase = PhaseJustEvaluated
		}
		return
	}

	result := Compute(s.Operand, s.Entry.Value(), s.Operator)
	s.clearPending()
	if !finite(result) {
		s.fail()
		s.evaluated = true
		return
	}

	s.Entry = entryOf(result)
	s.Phase = PhaseJustEvaluated
}

// ClearAll returns to the initial state.
func (c *Calculator) ClearAll() {
	c.state = State{Entry: zeroEntry}
}

// ClearEntry resets the entry to "0" and keeps any pending operation.
func (c *Calculator) ClearEntry() {
	s := &c.state
	s.Entry = zeroEntry
	if s.Pending() {
		s.Phase = PhaseOperatorSelected
	} else {
		s.Phase = PhaseIdle
	}
}

// Clear is the dual-purpose clear key: it clears the entry while there is one
// to clear and everything otherwise.
func (c *Calculator) Clear() {
	if c.state.CanClearEntry() {
		c.ClearEntry()
		return
	}
	c.ClearAll()
}

func (s *State) clearPending() {
	s.Operand = 0
	s.Operator = OpNone
}

func (s *State) fail() {
	s.clearPending()
	s.Entry = errorEntry
	s.Phase = PhaseError
	s.evaluated = false
}
