// Package tui is the terminal keypad: a bubbletea program that drives one
// calculator from the keyboard and the mouse.
package tui

import (
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"go-chi-calculator/internal/engine"
	"go-chi-calculator/internal/keypad"
	"go-chi-calculator/internal/observability"
)

var copiedText = map[keypad.Locale]string{
	keypad.LocaleRU: "Скопировано",
	keypad.LocaleEN: "Copied",
}

// copiedMsg reports the outcome of a clipboard write.
type copiedMsg struct {
	text string
	err  error
}

// Model is the bubbletea model of the keypad.
type Model struct {
	calc   *engine.Calculator
	locale keypad.Locale
	styles *Styles
	keys   keyMap
	help   help.Model

	// writeClipboard is swapped out in tests.
	writeClipboard func(string) error

	status    string
	statusErr bool
}

// New returns a keypad showing "0".
func New(locale keypad.Locale) *Model {
	return &Model{
		calc:           engine.New(),
		locale:         locale,
		styles:         DefaultStyles(),
		keys:           defaultKeyMap(),
		help:           help.New(),
		writeClipboard: clipboard.WriteAll,
	}
}

// Run starts the keypad in the alternate screen with mouse support and
// blocks until the user quits.
func Run(locale keypad.Locale) error {
	p := tea.NewProgram(New(locale), tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := p.Run()
	return err
}

// Entry returns the displayed entry.
func (m *Model) Entry() string {
	return m.calc.Entry()
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		case key.Matches(msg, m.keys.Copy):
			return m, m.copyEntry()
		default:
			m.pressKey(msg.String())
		}

	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			if b, ok := m.buttonAt(msg.X, msg.Y); ok {
				m.pressButton(b)
			}
		}

	case tea.WindowSizeMsg:
		m.help.Width = msg.Width

	case copiedMsg:
		if msg.err != nil {
			observability.Logger.Warn("clipboard write failed", zap.Error(msg.err))
			m.status, m.statusErr = msg.err.Error(), true
			break
		}
		m.status, m.statusErr = copiedText[m.locale]+": "+msg.text, false
	}

	return m, nil
}

func (m *Model) pressKey(k string) {
	// The keypad shows a decimal comma.
	if k == "," {
		k = "."
	}

	cmd, ok := keypad.FromKey(k)
	if !ok {
		return
	}
	cmd.Apply(m.calc)
	m.status = ""

	observability.Logger.Debug("key pressed",
		zap.String("key", k),
		zap.String("action", cmd.Action.String()),
		zap.String("entry", m.calc.Entry()),
	)
}

func (m *Model) pressButton(b keypad.Button) {
	b.Command.Apply(m.calc)
	m.status, m.statusErr = b.Aria, false

	observability.Logger.Debug("key clicked",
		zap.String("key", b.ID),
		zap.String("action", b.Command.Action.String()),
		zap.String("entry", m.calc.Entry()),
	)
}

func (m *Model) copyEntry() tea.Cmd {
	text := m.calc.Entry()
	write := m.writeClipboard
	return func() tea.Msg {
		return copiedMsg{text: text, err: write(text)}
	}
}

// buttonAt returns the key under the terminal cell (x, y).
func (m *Model) buttonAt(x, y int) (keypad.Button, bool) {
	if x < 0 || y < displayLines {
		return keypad.Button{}, false
	}

	rows := keypad.Layout(m.locale, m.calc.State())
	row := (y - displayLines) / keyHeight
	if row >= len(rows) {
		return keypad.Button{}, false
	}

	left := 0
	for _, b := range rows[row] {
		w := buttonWidth(b)
		if x >= left && x < left+w {
			return b, true
		}
		left += w + keyGap
	}
	return keypad.Button{}, false
}

func buttonWidth(b keypad.Button) int {
	if b.Wide {
		return 2*keyWidth + keyGap
	}
	return keyWidth
}

func (m *Model) View() string {
	st := m.calc.State()
	entry := st.Entry.String()

	entryStyle := m.styles.Entry[keypad.DisplaySize(entry)]
	if st.Phase == engine.PhaseError {
		entryStyle = m.styles.ErrorEntry
	}

	var b strings.Builder

	b.WriteString(m.styles.Display.Render(lipgloss.JoinVertical(lipgloss.Right,
		m.styles.Hint.Render(keypad.Hint(st)),
		entryStyle.Render(entry),
	)))
	b.WriteString("\n\n")

	rows := keypad.Layout(m.locale, st)
	rendered := make([]string, 0, len(rows))
	gap := strings.Repeat(" ", keyGap)
	for _, row := range rows {
		cells := make([]string, 0, 2*len(row))
		for i, btn := range row {
			if i > 0 {
				cells = append(cells, gap)
			}
			cells = append(cells, m.renderButton(btn))
		}
		rendered = append(rendered, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	b.WriteString(lipgloss.JoinVertical(lipgloss.Left, rendered...))
	b.WriteString("\n\n")

	status := m.styles.Status
	if m.statusErr {
		status = m.styles.StatusError
	}
	b.WriteString(status.Render(m.status))
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))

	return b.String()
}

func (m *Model) renderButton(btn keypad.Button) string {
	style := m.styles.Keys[btn.Variant]
	if btn.Active {
		style = m.styles.ActiveKey
	}
	return style.Width(buttonWidth(btn)).Render(btn.Label)
}
