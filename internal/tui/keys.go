package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap is the legend shown by the help view. Calculator keys themselves are
// dispatched through keypad.FromKey; these bindings only describe them.
type keyMap struct {
	Digits     key.Binding
	Dot        key.Binding
	Operators  key.Binding
	Evaluate   key.Binding
	Percent    key.Binding
	ClearEntry key.Binding
	ClearAll   key.Binding
	Copy       key.Binding
	Help       key.Binding
	Quit       key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Digits: key.NewBinding(
			key.WithKeys("0", "1", "2", "3", "4", "5", "6", "7", "8", "9"),
			key.WithHelp("0-9", "digit"),
		),
		Dot: key.NewBinding(
			key.WithKeys(".", ","),
			key.WithHelp(".", "point"),
		),
		Operators: key.NewBinding(
			key.WithKeys("+", "-", "*", "/"),
			key.WithHelp("+ - * /", "operator"),
		),
		Evaluate: key.NewBinding(
			key.WithKeys("=", "enter"),
			key.WithHelp("= ⏎", "evaluate"),
		),
		Percent: key.NewBinding(
			key.WithKeys("%"),
			key.WithHelp("%", "percent"),
		),
		ClearEntry: key.NewBinding(
			key.WithKeys("backspace"),
			key.WithHelp("⌫", "clear entry"),
		),
		ClearAll: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "clear all"),
		),
		Copy: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "copy"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Evaluate, k.ClearAll, k.Copy, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Digits, k.Dot, k.Operators, k.Evaluate},
		{k.Percent, k.ClearEntry, k.ClearAll},
		{k.Copy, k.Help, k.Quit},
	}
}
