package main

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"dmldiag/internal/diag"
	"dmldiag/internal/diagfmt"
	"dmldiag/internal/ingest"
)

var exportCmd = &cobra.Command{
	Use:   "export [flags] <stream.jsonl|stream.mp>...",
	Short: "Classify raw compiler diagnostics and export structured reports",
	Long: `Read one or more raw diagnostic streams emitted by a DML compiler
frontend, classify every diagnostic, and export one report per stream in the
dmlc-ai-diagnostics format`,
	Args: cobra.MinimumNArgs(1),
	RunE: runExport,
}

// init registers CLI flags for the export command. Defaults come from an
// optional dmldiag.toml manifest; flags override it.
func init() {
	exportCmd.Flags().String("format", "", "output format (json|msgpack|pretty)")
	exportCmd.Flags().StringP("output", "o", "", "report file, or directory when multiple streams are given (default stdout)")
	exportCmd.Flags().String("input-file", "", "compiled input file recorded in the report context")
	exportCmd.Flags().String("dml-version", "", "explicit DML language version (major.minor)")
	exportCmd.Flags().Int("jobs", 0, "max parallel workers for multiple streams (0=auto)")
	exportCmd.Flags().Bool("suggest", false, "include fix suggestions in pretty output")
	exportCmd.Flags().Int("max", 0, "cap diagnostics listed in pretty output (0=all)")
	exportCmd.Flags().Int("width", 0, "maximum pretty line width (0=unlimited)")
}

// exportSettings are the resolved export parameters: manifest defaults with
// flag overrides applied.
type exportSettings struct {
	format    string
	output    string
	inputFile *string
	version   *diag.Version
	jobs      int
	suggest   bool
	max       int
	width     int
}

func resolveExportSettings(cmd *cobra.Command) (exportSettings, error) {
	settings := exportSettings{format: "json"}

	man, found, err := loadManifest("")
	if err != nil {
		return settings, err
	}
	if found {
		cfg := man.Config
		if cfg.Export.Format != "" {
			settings.format = cfg.Export.Format
		}
		settings.output = cfg.Export.Output
		settings.jobs = cfg.Export.Jobs
		if cfg.Context.InputFile != "" {
			file := cfg.Context.InputFile
			settings.inputFile = &file
		}
		if cfg.Context.DMLVersion != "" {
			// Validated when the manifest was loaded.
			v, _ := diag.ParseVersion(cfg.Context.DMLVersion)
			settings.version = &v
		}
	}

	flags := cmd.Flags()
	if flags.Changed("format") {
		settings.format, _ = flags.GetString("format")
	}
	if flags.Changed("output") {
		settings.output, _ = flags.GetString("output")
	}
	if flags.Changed("jobs") {
		settings.jobs, _ = flags.GetInt("jobs")
	}
	if flags.Changed("input-file") {
		file, _ := flags.GetString("input-file")
		settings.inputFile = &file
	}
	if flags.Changed("dml-version") {
		raw, _ := flags.GetString("dml-version")
		v, err := diag.ParseVersion(raw)
		if err != nil {
			return settings, fmt.Errorf("failed to parse dml-version flag: %w", err)
		}
		settings.version = &v
	}
	settings.suggest, _ = flags.GetBool("suggest")
	settings.max, _ = flags.GetInt("max")
	settings.width, _ = flags.GetInt("width")

	switch settings.format {
	case "json", "msgpack", "pretty":
	default:
		return settings, fmt.Errorf("unknown format: %s", settings.format)
	}
	return settings, nil
}

// buildSession ingests one stream into a fresh session.
func buildSession(path string, settings exportSettings) (*diag.Session, error) {
	raws, err := ingest.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	var lc diag.Lifecycle
	sess := lc.Enable()
	if settings.inputFile != nil || settings.version != nil {
		sess.SetContext(settings.inputFile, settings.version)
	}
	for _, raw := range raws {
		sess.Record(raw)
	}
	return sess, nil
}

func runExport(cmd *cobra.Command, args []string) error {
	settings, err := resolveExportSettings(cmd)
	if err != nil {
		return err
	}

	colorOn, err := useColor(cmd)
	if err != nil {
		return err
	}
	prettyOpts := diagfmt.PrettyOpts{
		Color:     colorOn,
		Width:     settings.width,
		ShowFixes: settings.suggest,
		Max:       settings.max,
	}

	sessions := make([]*diag.Session, len(args))
	jobs := settings.jobs
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}

	// Each stream gets its own session, so the per-session single-writer
	// contract holds even with parallel ingestion. Ingestion is plain file
	// reads with no cancellation points, so a bare group suffices.
	var g errgroup.Group
	g.SetLimit(min(jobs, len(args)))
	for i, path := range args {
		i, path := i, path
		g.Go(func() error {
			sess, err := buildSession(path, settings)
			if err != nil {
				return err
			}
			sessions[i] = sess
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	if len(args) == 1 {
		err = exportOne(cmd, args[0], sessions[0], settings, prettyOpts)
	} else {
		err = exportMany(cmd, args, sessions, settings, prettyOpts)
	}
	if err != nil {
		return err
	}

	for _, sess := range sessions {
		if sess.HasErrors() {
			// Suppress cobra usage output: the report already carries the
			// diagnostics, the exit code just mirrors compilation failure.
			cmd.SilenceUsage = true
			cmd.SilenceErrors = true
			return fmt.Errorf("")
		}
	}
	return nil
}

func exportOne(cmd *cobra.Command, path string, sess *diag.Session, settings exportSettings, prettyOpts diagfmt.PrettyOpts) error {
	if settings.output == "" {
		return renderReport(cmd, sess, settings.format, prettyOpts)
	}
	return writeReport(settings.output, sess, settings.format, prettyOpts)
}

func exportMany(cmd *cobra.Command, paths []string, sessions []*diag.Session, settings exportSettings, prettyOpts diagfmt.PrettyOpts) error {
	if settings.output == "" {
		// Text headers between binary documents would corrupt the stream.
		if settings.format == "msgpack" {
			return fmt.Errorf("msgpack output for multiple streams requires --output")
		}
		for i, path := range paths {
			fmt.Fprintf(cmd.OutOrStdout(), "== %s ==\n", path)
			if err := renderReport(cmd, sessions[i], settings.format, prettyOpts); err != nil {
				return err
			}
		}
		return nil
	}

	if err := os.MkdirAll(settings.output, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	for i, path := range paths {
		target := filepath.Join(settings.output, reportName(path, settings.format))
		if err := writeReport(target, sessions[i], settings.format, prettyOpts); err != nil {
			return err
		}
	}
	return nil
}

func renderReport(cmd *cobra.Command, sess *diag.Session, format string, prettyOpts diagfmt.PrettyOpts) error {
	out := cmd.OutOrStdout()
	switch format {
	case "json":
		if err := diagfmt.JSON(out, sess); err != nil {
			return fmt.Errorf("failed to format report: %w", err)
		}
	case "msgpack":
		if err := diagfmt.Msgpack(out, sess); err != nil {
			return fmt.Errorf("failed to format report: %w", err)
		}
	case "pretty":
		diagfmt.Pretty(out, sess, prettyOpts)
	}
	return nil
}

func writeReport(path string, sess *diag.Session, format string, prettyOpts diagfmt.PrettyOpts) error {
	switch format {
	case "json":
		return diagfmt.WriteFile(path, sess)
	case "msgpack":
		return diagfmt.WriteMsgpackFile(path, sess)
	case "pretty":
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("failed to create report file: %w", err)
		}
		prettyOpts.Color = false
		diagfmt.Pretty(f, sess, prettyOpts)
		return f.Close()
	}
	return nil
}

// reportName derives the per-stream report filename inside an output
// directory, e.g. run1.jsonl -> run1.report.json.
func reportName(streamPath, format string) string {
	base := filepath.Base(streamPath)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	switch format {
	case "msgpack":
		return stem + ".report.mp"
	case "pretty":
		return stem + ".report.txt"
	default:
		return stem + ".report.json"
	}
}
