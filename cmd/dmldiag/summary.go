package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"dmldiag/internal/diagfmt"
)

func init() {
	summaryCmd.Flags().String("input-file", "", "compiled input file recorded in the summary context")
	summaryCmd.Flags().String("dml-version", "", "explicit DML language version (major.minor)")
}

var summaryCmd = &cobra.Command{
	Use:   "summary <stream.jsonl|stream.mp>",
	Short: "Print only the compilation summary for a raw diagnostic stream",
	Args:  cobra.ExactArgs(1),
	RunE:  runSummary,
}

func runSummary(cmd *cobra.Command, args []string) error {
	settings, err := resolveExportSettings(cmd)
	if err != nil {
		return err
	}

	sess, err := buildSession(args[0], settings)
	if err != nil {
		return err
	}

	report := diagfmt.BuildReport(sess)
	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(report.CompilationSummary); err != nil {
		return fmt.Errorf("failed to encode summary: %w", err)
	}
	return nil
}
