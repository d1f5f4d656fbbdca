package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	version = "0.1.0"
	lang    string
	logFile string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "calc",
		Short: "Four-function pocket calculator",
		Long: `calc is a pocket calculator for the terminal. Type on the keyboard or
click the keys with the mouse; y copies the display, ? shows all keys.`,
		SilenceUsage: true,
		RunE:         runKeypad,
	}

	rootCmd.PersistentFlags().StringVar(&lang, "lang", "", "key names language: ru or en (default from CALC_LOCALE, else ru)")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "write debug logs to this file (default from CALC_LOG_FILE)")

	rootCmd.AddCommand(newEvalCommand(), newKeysCommand())

	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "calc version %s\n", version)
		},
	})

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
