package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"dmldiag/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "dmldiag",
	Short: "DML compiler diagnostics aggregation and export",
	Long:  `dmldiag classifies raw DML compiler diagnostics and exports one structured, AI-friendly report per compilation run`,
}

// main registers subcommands and persistent flags, then executes the root
// command. The process exits with status 1 when a command fails.
func main() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(summaryCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// isTerminal reports whether f is attached to a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// useColor resolves the persistent --color flag against the output terminal.
func useColor(cmd *cobra.Command) (bool, error) {
	colorFlag, err := cmd.Root().PersistentFlags().GetString("color")
	if err != nil {
		return false, err
	}
	return colorFlag == "on" || (colorFlag == "auto" && isTerminal(os.Stdout)), nil
}
