package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var rootCmd = &cobra.Command{
	Use:   "optics-laws",
	Short: "Verify the laws of the stock optics",
	Long: `optics-laws draws deterministic samples for every stock optic and
checks the equations of its kind, reporting each violation with the seed
that reproduces it.`,
	SilenceUsage: true,
}

// main registers the subcommands and exits with status 1 when a command fails.
func main() {
	rootCmd.AddCommand(verifyCmd)
	rootCmd.AddCommand(listCmd)

	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
