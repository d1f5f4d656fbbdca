package tui

import (
	"github.com/charmbracelet/lipgloss"

	"go-chi-calculator/internal/keypad"
)

// Palette
var (
	ColorPrimary   = lipgloss.Color("#A78BFA") // Lavender 400
	ColorSecondary = lipgloss.Color("#22D3EE") // Cyan 400
	ColorError     = lipgloss.Color("#DC2626") // Red 600
	ColorMuted     = lipgloss.Color("#9CA3AF") // Gray 400
	ColorText      = lipgloss.Color("#F1F5F9") // Slate 100
	ColorBorder    = lipgloss.Color("#334155") // Slate 700
	ColorKey       = lipgloss.Color("#1E293B") // Slate 800
	ColorFunc      = lipgloss.Color("#475569") // Slate 600
	ColorOperator  = lipgloss.Color("#D97706") // Amber 600
	ColorActive    = lipgloss.Color("#FCD34D") // Amber 300
	ColorEquals    = lipgloss.Color("#059669") // Emerald 600
	ColorDark      = lipgloss.Color("#0F172A") // Slate 900
)

// Key geometry in terminal cells. Mouse hit testing relies on these.
const (
	keyWidth  = 7
	keyHeight = 3
	keyGap    = 1
	columns   = 4

	gridWidth = columns*keyWidth + (columns-1)*keyGap

	// displayLines is the bordered display plus the blank line under it.
	displayLines = 5
)

// Styles holds the rendered look of the keypad.
type Styles struct {
	Display     lipgloss.Style
	Hint        lipgloss.Style
	Entry       map[keypad.Size]lipgloss.Style
	ErrorEntry  lipgloss.Style
	Keys        map[keypad.Variant]lipgloss.Style
	ActiveKey   lipgloss.Style
	Status      lipgloss.Style
	StatusError lipgloss.Style
}

// DefaultStyles returns the dark theme.
func DefaultStyles() *Styles {
	key := lipgloss.NewStyle().
		Width(keyWidth).
		Height(keyHeight).
		Align(lipgloss.Center, lipgloss.Center).
		Foreground(ColorText)

	entry := lipgloss.NewStyle().
		Width(gridWidth - 4).
		Align(lipgloss.Right).
		Foreground(ColorText)

	return &Styles{
		Display: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 1).
			Width(gridWidth - 2),
		Hint: lipgloss.NewStyle().
			Width(gridWidth - 4).
			Align(lipgloss.Right).
			Foreground(ColorMuted),
		// A terminal has one font size, so the tiers step down in weight.
		Entry: map[keypad.Size]lipgloss.Style{
			keypad.SizeHuge:    entry.Bold(true).Foreground(ColorPrimary),
			keypad.SizeLarge:   entry.Bold(true).Foreground(ColorPrimary),
			keypad.SizeMedium:  entry.Bold(true),
			keypad.SizeSmall:   entry,
			keypad.SizeTiny:    entry.Foreground(ColorMuted),
			keypad.SizeMinimal: entry.Faint(true),
		},
		ErrorEntry: entry.Bold(true).Foreground(ColorError),
		Keys: map[keypad.Variant]lipgloss.Style{
			keypad.VariantDigit:    key.Background(ColorKey),
			keypad.VariantFunction: key.Background(ColorFunc),
			keypad.VariantOperator: key.Background(ColorOperator).Bold(true),
			keypad.VariantEquals:   key.Background(ColorEquals).Bold(true),
		},
		ActiveKey: key.Background(ColorActive).Foreground(ColorDark).Bold(true),
		Status: lipgloss.NewStyle().
			Foreground(ColorSecondary).
			Width(gridWidth),
		StatusError: lipgloss.NewStyle().
			Foreground(ColorError).
			Width(gridWidth),
	}
}
