package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"go-chi-calculator/internal/engine"
	"go-chi-calculator/internal/keypad"
)

func newEvalCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "eval KEY...",
		Short: "Press keys on a fresh calculator and print the display",
		Long: `eval feeds each argument through the keyboard table (0-9 . + - * / = %
Enter Escape Backspace) and prints what the display shows afterwards.
Arguments that are not key names, such as 12.5, are typed one character
at a time. Quote * so the shell leaves it alone.`,
		Example: `  calc eval 12 + 3 =
  calc eval 1 / 0 Enter`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), evalKeys(args))
			return nil
		},
	}
}

// evalKeys presses args on a new calculator and returns the entry.
func evalKeys(args []string) string {
	c := engine.New()
	for _, arg := range args {
		if keypad.Press(c, arg) {
			continue
		}
		for _, r := range arg {
			keypad.Press(c, string(r))
		}
	}
	return c.Entry()
}
