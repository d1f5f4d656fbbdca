package keypad

import (
	"fmt"
	"strings"

	"go-chi-calculator/internal/engine"
	"go-chi-calculator/internal/numfmt"
)

// Locale selects the language of the accessible key names.
type Locale string

const (
	LocaleRU Locale = "ru"
	LocaleEN Locale = "en"
)

// ParseLocale accepts "ru" or "en" in any case.
func ParseLocale(s string) (Locale, error) {
	switch Locale(strings.ToLower(strings.TrimSpace(s))) {
	case LocaleRU:
		return LocaleRU, nil
	case LocaleEN:
		return LocaleEN, nil
	default:
		return "", fmt.Errorf("unsupported locale %q", s)
	}
}

// Variant is the visual role of a key.
type Variant string

const (
	VariantDigit    Variant = "digit"
	VariantFunction Variant = "func"
	VariantOperator Variant = "op"
	VariantEquals   Variant = "eq"
)

// Button is one rendered key.
type Button struct {
	ID      string  `json:"id"`
	Label   string  `json:"label"`
	Aria    string  `json:"aria"`
	Variant Variant `json:"variant"`
	Wide    bool    `json:"wide,omitempty"`
	Active  bool    `json:"active,omitempty"`
	Command Command `json:"-"`
}

var ariaNames = map[Locale]map[string]string{
	LocaleRU: {
		"clear_entry": "Стереть ввод",
		"clear_all":   "Сбросить всё",
		"sign":        "Поменять знак",
		"percent":     "Процент",
		"divide":      "Деление",
		"multiply":    "Умножение",
		"subtract":    "Вычитание",
		"add":         "Сложение",
		"dot":         "Десятичная точка",
		"evaluate":    "Равно",
		"0":           "Ноль",
		"1":           "Один",
		"2":           "Два",
		"3":           "Три",
		"4":           "Четыре",
		"5":           "Пять",
		"6":           "Шесть",
		"7":           "Семь",
		"8":           "Восемь",
		"9":           "Девять",
	},
	LocaleEN: {
		"clear_entry": "Clear entry",
		"clear_all":   "All clear",
		"sign":        "Change sign",
		"percent":     "Percent",
		"divide":      "Divide",
		"multiply":    "Multiply",
		"subtract":    "Subtract",
		"add":         "Add",
		"dot":         "Decimal point",
		"evaluate":    "Equals",
		"0":           "Zero",
		"1":           "One",
		"2":           "Two",
		"3":           "Three",
		"4":           "Four",
		"5":           "Five",
		"6":           "Six",
		"7":           "Seven",
		"8":           "Eight",
		"9":           "Nine",
	},
}

func aria(locale Locale, id string) string {
	names, ok := ariaNames[locale]
	if !ok {
		names = ariaNames[LocaleRU]
	}
	return names[id]
}

// Layout returns the 5-row keypad for st. The clear key reads "C" while
// there is an entry to clear and "AC" otherwise; an operator key is active
// while it is selected and no new operand has been typed.
func Layout(locale Locale, st engine.State) [][]Button {
	clearID := "clear_all"
	if st.CanClearEntry() {
		clearID = "clear_entry"
	}

	op := func(o engine.Operator) Button {
		return Button{
			ID:      o.String(),
			Label:   o.Symbol(),
			Aria:    aria(locale, o.String()),
			Variant: VariantOperator,
			Active:  st.Operator == o && !st.IsTyping(),
			Command: Command{Action: ActionOperator, Operator: o},
		}
	}
	digit := func(d string) Button {
		return Button{
			ID:      d,
			Label:   d,
			Aria:    aria(locale, d),
			Variant: VariantDigit,
			Command: Command{Action: ActionDigit, Digit: d},
		}
	}

	zero := digit("0")
	zero.Wide = true

	return [][]Button{
		{
			{ID: "clear", Label: ClearLabel(st), Aria: aria(locale, clearID), Variant: VariantFunction, Command: Command{Action: ActionClear}},
			{ID: "sign", Label: "±", Aria: aria(locale, "sign"), Variant: VariantFunction, Command: Command{Action: ActionSign}},
			{ID: "percent", Label: "%", Aria: aria(locale, "percent"), Variant: VariantFunction, Command: Command{Action: ActionPercent}},
			op(engine.OpDivide),
		},
		{digit("7"), digit("8"), digit("9"), op(engine.OpMultiply)},
		{digit("4"), digit("5"), digit("6"), op(engine.OpSubtract)},
		{digit("1"), digit("2"), digit("3"), op(engine.OpAdd)},
		{
			zero,
			{ID: "dot", Label: ",", Aria: aria(locale, "dot"), Variant: VariantDigit, Command: Command{Action: ActionDot}},
			{ID: "evaluate", Label: "=", Aria: aria(locale, "evaluate"), Variant: VariantEquals, Command: Command{Action: ActionEvaluate}},
		},
	}
}

// ClearLabel is the caption of the dual-purpose clear key.
func ClearLabel(st engine.State) string {
	if st.CanClearEntry() {
		return "C"
	}
	return "AC"
}

// Hint is the line above the entry: the pending operand and operator, or
// empty when nothing is pending.
func Hint(st engine.State) string {
	operand, ok := st.PendingOperand()
	if !ok {
		return ""
	}
	return numfmt.Format(operand) + " " + st.Operator.Symbol()
}
