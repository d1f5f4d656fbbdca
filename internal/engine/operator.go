package engine

import "math"

// Operator is a binary operation waiting for its right-hand operand.
type Operator int

const (
	OpNone Operator = iota
	OpAdd
	OpSubtract
	OpMultiply
	OpDivide
)

// Operators lists the supported operators in keypad order.
var Operators = []Operator{OpDivide, OpMultiply, OpSubtract, OpAdd}

// Valid reports whether o is one of the four supported operators.
func (o Operator) Valid() bool {
	return o >= OpAdd && o <= OpDivide
}

// Symbol returns the display glyph for o.
func (o Operator) Symbol() string {
	switch o {
	case OpAdd:
		return "+"
	case OpSubtract:
		return "−"
	case OpMultiply:
		return "×"
	case OpDivide:
		return "÷"
	default:
		return ""
	}
}

// String returns the lower-case operation name used in logs and metrics.
func (o Operator) String() string {
	switch o {
	case OpAdd:
		return "add"
	case OpSubtract:
		return "subtract"
	case OpMultiply:
		return "multiply"
	case OpDivide:
		return "divide"
	default:
		return "none"
	}
}

// ParseOperator accepts a display glyph, its ASCII keyboard equivalent, or an
// operation name.
func ParseOperator(s string) (Operator, bool) {
	switch s {
	case "+", "add":
		return OpAdd, true
	case "−", "-", "subtract":
		return OpSubtract, true
	case "×", "*", "multiply":
		return OpMultiply, true
	case "÷", "/", "divide":
		return OpDivide, true
	default:
		return OpNone, false
	}
}

// Compute applies op to a and b with float64 arithmetic. Division by zero
// returns an infinity carrying the dividend's sign instead of failing.
// An invalid operator yields b.
func Compute(a, b float64, op Operator) float64 {
	switch op {
	case OpAdd:
		return a + b
	case OpSubtract:
		return a - b
	case OpMultiply:
		return a * b
	case OpDivide:
		if b == 0 {
			if math.Signbit(a) {
				return math.Inf(-1)
			}
			return math.Inf(1)
		}
		return a / b
	default:
		return b
	}
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
