package diagfmt

// PrettyOpts configures the human-readable report rendering.
type PrettyOpts struct {
	// Color enables ANSI colors.
	Color bool
	// Width is the maximum line width, 0 for unlimited.
	Width int
	// ShowFixes includes fix suggestions under each diagnostic.
	ShowFixes bool
	// Max caps how many diagnostics are listed, 0 for all. The summary
	// always reflects the full session.
	Max int
}
