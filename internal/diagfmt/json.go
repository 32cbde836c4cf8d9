package diagfmt

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"dmldiag/internal/diag"
)

// JSON renders the session's full report as indented JSON.
func JSON(w io.Writer, sess *diag.Session) error {
	report := BuildReport(sess)

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	encoder.SetEscapeHTML(false)
	return encoder.Encode(report)
}

// WriteFile writes the report to path as one whole-document overwrite.
// I/O failures are propagated: there is no fallback destination.
func WriteFile(path string, sess *diag.Session) error {
	var buf bytes.Buffer
	if err := JSON(&buf, sess); err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}
