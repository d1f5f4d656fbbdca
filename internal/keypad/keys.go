// Package keypad is the presentation contract shared by the calculator front
// ends: how key presses map onto engine commands, how the keys are laid out
// and labelled, and how the display is sized.
package keypad

import (
	"strings"

	"go-chi-calculator/internal/engine"
)

// Action is a keypad command.
type Action int

const (
	ActionNone Action = iota
	ActionDigit
	ActionDot
	ActionSign
	ActionPercent
	ActionOperator
	ActionEvaluate
	ActionClear
	ActionClearAll
	ActionClearEntry
)

func (a Action) String() string {
	switch a {
	case ActionDigit:
		return "digit"
	case ActionDot:
		return "dot"
	case ActionSign:
		return "sign"
	case ActionPercent:
		return "percent"
	case ActionOperator:
		return "operator"
	case ActionEvaluate:
		return "evaluate"
	case ActionClear:
		return "clear"
	case ActionClearAll:
		return "clear_all"
	case ActionClearEntry:
		return "clear_entry"
	default:
		return "none"
	}
}

// Command is one keypad press.
type Command struct {
	Action   Action
	Digit    string
	Operator engine.Operator
}

// Apply runs the command against c.
func (cmd Command) Apply(c *engine.Calculator) {
	switch cmd.Action {
	case ActionDigit:
		c.InputDigit(cmd.Digit)
	case ActionDot:
		c.InputDot()
	case ActionSign:
		c.ToggleSign()
	case ActionPercent:
		c.Percent()
	case ActionOperator:
		c.SetOperator(cmd.Operator)
	case ActionEvaluate:
		c.Evaluate()
	case ActionClear:
		c.Clear()
	case ActionClearAll:
		c.ClearAll()
	case ActionClearEntry:
		c.ClearEntry()
	}
}

// FromKey maps a keyboard key to a command. Key names follow the DOM
// (Enter, Escape, Backspace) with the terminal spellings (enter, esc,
// backspace) accepted as well.
func FromKey(key string) (Command, bool) {
	if len(key) == 1 && key[0] >= '0' && key[0] <= '9' {
		return Command{Action: ActionDigit, Digit: key}, true
	}

	switch key {
	case ".":
		return Command{Action: ActionDot}, true
	case "+", "-", "*", "/":
		op, _ := engine.ParseOperator(key)
		return Command{Action: ActionOperator, Operator: op}, true
	case "=":
		return Command{Action: ActionEvaluate}, true
	case "%":
		return Command{Action: ActionPercent}, true
	}

	switch strings.ToLower(key) {
	case "enter":
		return Command{Action: ActionEvaluate}, true
	case "escape", "esc":
		return Command{Action: ActionClearAll}, true
	case "backspace":
		return Command{Action: ActionClearEntry}, true
	}

	return Command{}, false
}

// Press maps key and applies it. It reports whether the key is bound.
func Press(c *engine.Calculator, key string) bool {
	cmd, ok := FromKey(key)
	if !ok {
		return false
	}
	cmd.Apply(c)
	return true
}

// Binding documents one row of the keyboard table.
type Binding struct {
	Keys        []string
	Description string
}

// Bindings returns the keyboard table in display order.
func Bindings() []Binding {
	return []Binding{
		{Keys: []string{"0", "…", "9"}, Description: "type a digit"},
		{Keys: []string{"."}, Description: "decimal point"},
		{Keys: []string{"+", "-"}, Description: "add, subtract"},
		{Keys: []string{"*", "/"}, Description: "multiply, divide"},
		{Keys: []string{"=", "Enter"}, Description: "evaluate"},
		{Keys: []string{"%"}, Description: "percent"},
		{Keys: []string{"Backspace"}, Description: "clear entry"},
		{Keys: []string{"Escape"}, Description: "clear all"},
	}
}
