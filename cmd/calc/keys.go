package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"go-chi-calculator/internal/keypad"
)

func newKeysCommand() *cobra.Command {
	var raw bool

	cmd := &cobra.Command{
		Use:   "keys",
		Short: "Print the keyboard table",
		RunE: func(cmd *cobra.Command, args []string) error {
			md := keysMarkdown()
			if raw {
				fmt.Fprint(cmd.OutOrStdout(), md)
				return nil
			}

			renderer, err := glamour.NewTermRenderer(
				glamour.WithStandardStyle("dark"),
				glamour.WithWordWrap(80),
			)
			if err != nil {
				return fmt.Errorf("creating renderer: %w", err)
			}
			out, err := renderer.Render(md)
			if err != nil {
				return fmt.Errorf("rendering keys: %w", err)
			}
			fmt.Fprint(cmd.OutOrStdout(), out)
			return nil
		},
	}

	cmd.Flags().BoolVar(&raw, "raw", false, "print Markdown without terminal styling")
	return cmd
}

func keysMarkdown() string {
	var b strings.Builder
	b.WriteString("# Keyboard\n\n")
	b.WriteString("| Keys | Action |\n")
	b.WriteString("|---|---|\n")
	for _, binding := range keypad.Bindings() {
		keys := make([]string, len(binding.Keys))
		for i, k := range binding.Keys {
			keys[i] = "`" + k + "`"
		}
		fmt.Fprintf(&b, "| %s | %s |\n", strings.Join(keys, " "), binding.Description)
	}
	b.WriteString("\nIn the keypad: `y` copies the display, `?` toggles help, `q` quits.\n")
	return b.String()
}
