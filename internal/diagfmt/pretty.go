package diagfmt

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"dmldiag/internal/diag"
)

// Pretty renders a terminal-friendly view of the report: a summary header
// followed by one block per diagnostic in record order. This is a review aid
// for humans; the machine contract is the JSON form.
func Pretty(w io.Writer, sess *diag.Session, opts PrettyOpts) {
	report := BuildReport(sess)
	sum := report.CompilationSummary

	okColor := color.New(color.FgGreen, color.Bold)
	failColor := color.New(color.FgRed, color.Bold)
	fatalColor := color.New(color.FgRed, color.Bold)
	errColor := color.New(color.FgRed)
	warnColor := color.New(color.FgYellow)
	infoColor := color.New(color.FgCyan)
	dimColor := color.New(color.Faint)
	if !opts.Color {
		for _, c := range []*color.Color{okColor, failColor, fatalColor, errColor, warnColor, infoColor, dimColor} {
			c.DisableColor()
		}
	}

	input := "<stdin>"
	if sum.InputFile != nil {
		input = *sum.InputFile
	}
	status := okColor.Sprint("ok")
	if !sum.Success {
		status = failColor.Sprint("FAILED")
	}
	if sum.DMLVersion != nil {
		fmt.Fprintf(w, "%s (DML %s): %s\n", input, *sum.DMLVersion, status)
	} else {
		fmt.Fprintf(w, "%s: %s\n", input, status)
	}
	fmt.Fprintf(w, "%d diagnostics, %d errors, %d warnings\n",
		sum.TotalDiagnostics, sum.TotalErrors, sum.TotalWarnings)

	shown := len(report.Diagnostics)
	if opts.Max > 0 && opts.Max < shown {
		shown = opts.Max
	}

	for i := 0; i < shown; i++ {
		d := report.Diagnostics[i]

		var sevColor *color.Color
		switch d.Severity {
		case "fatal":
			sevColor = fatalColor
		case "error":
			sevColor = errColor
		case "warning":
			sevColor = warnColor
		default:
			sevColor = infoColor
		}

		line := fmt.Sprintf("%s %s [%s]: %s", d.Severity, d.Code, d.Category, d.Message)
		if d.Location != nil && d.Location.LocationString != "" {
			line += " (" + d.Location.LocationString + ")"
		}
		fmt.Fprintln(w, sevColor.Sprint(truncate(line, opts.Width)))

		if opts.ShowFixes {
			for _, fix := range d.FixSuggestions {
				fmt.Fprintln(w, dimColor.Sprint(truncate("  fix: "+fix, opts.Width)))
			}
		}
	}

	if hidden := len(report.Diagnostics) - shown; hidden > 0 {
		fmt.Fprintf(w, "... and %d more\n", hidden)
	}
}

// truncate clips a line to width terminal cells, rune-width aware.
func truncate(s string, width int) string {
	if width <= 0 {
		return s
	}
	return runewidth.Truncate(s, width, "...")
}
