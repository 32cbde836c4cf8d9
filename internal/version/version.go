// Package version carries the build fingerprints of the dmldiag CLI.
package version

import "github.com/fatih/color"

// These variables can be overridden at build time via -ldflags.
var (
	// Version is the semantic version of the CLI.
	Version = "0.1.0"

	// GitCommit is an optional git commit hash.
	GitCommit = ""

	// BuildDate is an optional build date in ISO-8601.
	BuildDate = ""
)

var (
	toolColor   = color.New(color.FgCyan, color.Bold)
	semverColor = color.New(color.FgGreen, color.Bold)
)

// Colored renders the "dmldiag <version>" banner for terminal output.
// Colors are suppressed automatically when stdout is not a terminal.
func Colored() string {
	return toolColor.Sprint("dmldiag") + " " + semverColor.Sprint(Version)
}
