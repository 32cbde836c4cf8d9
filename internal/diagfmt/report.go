package diagfmt

import (
	"dmldiag/internal/diag"
)

// The report schema is the compatibility surface for downstream tooling:
// field names, nesting and omission rules must not change without bumping
// FormatVersion.
const (
	// FormatVersion identifies the report schema.
	FormatVersion = "1.0"
	// Generator identifies the producing tool.
	Generator = "dmlc-ai-diagnostics"
)

// LocationJSON is a primary source location in the report.
type LocationJSON struct {
	File           *string `json:"file" msgpack:"file"`
	Line           *int    `json:"line" msgpack:"line"`
	LocationString string  `json:"location_string" msgpack:"location_string"`
}

// RelatedLocationJSON is one auxiliary location in the report.
type RelatedLocationJSON struct {
	File    *string `json:"file" msgpack:"file"`
	Line    *int    `json:"line" msgpack:"line"`
	Message string  `json:"message" msgpack:"message"`
}

// ContextJSON carries error-specific context. Present only when non-empty.
type ContextJSON struct {
	Method string `json:"method" msgpack:"method"`
}

// DiagnosticJSON is one classified diagnostic in the report.
// documentation_url and context are omitted entirely when absent; all other
// optional fields serialize as explicit null, and array fields are always
// present, possibly empty.
type DiagnosticJSON struct {
	Type             string                `json:"type" msgpack:"type"`
	Severity         string                `json:"severity" msgpack:"severity"`
	Code             string                `json:"code" msgpack:"code"`
	Message          string                `json:"message" msgpack:"message"`
	Category         string                `json:"category" msgpack:"category"`
	Location         *LocationJSON         `json:"location" msgpack:"location"`
	FixSuggestions   []string              `json:"fix_suggestions" msgpack:"fix_suggestions"`
	RelatedLocations []RelatedLocationJSON `json:"related_locations" msgpack:"related_locations"`
	DocumentationURL string                `json:"documentation_url,omitempty" msgpack:"documentation_url,omitempty"`
	Context          *ContextJSON          `json:"context,omitempty" msgpack:"context,omitempty"`
}

// SummaryJSON is the compilation_summary block.
type SummaryJSON struct {
	InputFile        *string        `json:"input_file" msgpack:"input_file"`
	DMLVersion       *string        `json:"dml_version" msgpack:"dml_version"`
	TotalDiagnostics int            `json:"total_diagnostics" msgpack:"total_diagnostics"`
	TotalErrors      int            `json:"total_errors" msgpack:"total_errors"`
	TotalWarnings    int            `json:"total_warnings" msgpack:"total_warnings"`
	ErrorCategories  map[string]int `json:"error_categories" msgpack:"error_categories"`
	Success          bool           `json:"success" msgpack:"success"`
}

// Report is the root of the exported document.
type Report struct {
	FormatVersion      string           `json:"format_version" msgpack:"format_version"`
	Generator          string           `json:"generator" msgpack:"generator"`
	CompilationSummary SummaryJSON      `json:"compilation_summary" msgpack:"compilation_summary"`
	Diagnostics        []DiagnosticJSON `json:"diagnostics" msgpack:"diagnostics"`
}

// BuildReport snapshots the session into the versioned report structure.
// Diagnostics appear in exactly the order they were recorded. Pure read:
// the session is not mutated.
func BuildReport(sess *diag.Session) Report {
	sum := sess.Summary()

	categories := make(map[string]int, len(sum.ErrorCategories))
	for cat, n := range sum.ErrorCategories {
		categories[cat.String()] = n
	}

	items := sess.Diagnostics()
	diagnostics := make([]DiagnosticJSON, 0, len(items))
	for i := range items {
		diagnostics = append(diagnostics, makeDiagnostic(&items[i]))
	}

	return Report{
		FormatVersion: FormatVersion,
		Generator:     Generator,
		CompilationSummary: SummaryJSON{
			InputFile:        sum.InputFile,
			DMLVersion:       sum.DMLVersion,
			TotalDiagnostics: sum.TotalDiagnostics,
			TotalErrors:      sum.TotalErrors,
			TotalWarnings:    sum.TotalWarnings,
			ErrorCategories:  categories,
			Success:          sum.Success,
		},
		Diagnostics: diagnostics,
	}
}

func makeDiagnostic(d *diag.ClassifiedDiagnostic) DiagnosticJSON {
	out := DiagnosticJSON{
		Type:             d.Kind.String(),
		Severity:         d.Severity.String(),
		Code:             d.Tag,
		Message:          d.Message,
		Category:         d.Category.String(),
		FixSuggestions:   d.FixSuggestions,
		DocumentationURL: d.DocumentationURL,
	}
	if out.FixSuggestions == nil {
		out.FixSuggestions = []string{}
	}

	if d.Location != nil {
		out.Location = &LocationJSON{
			File:           d.Location.File,
			Line:           d.Location.Line,
			LocationString: d.Location.LocString,
		}
	}

	out.RelatedLocations = make([]RelatedLocationJSON, 0, len(d.RelatedLocations))
	for _, rel := range d.RelatedLocations {
		out.RelatedLocations = append(out.RelatedLocations, RelatedLocationJSON{
			File:    rel.File,
			Line:    rel.Line,
			Message: rel.Message,
		})
	}

	if d.Method != nil {
		out.Context = &ContextJSON{Method: *d.Method}
	}
	return out
}
