package diagfmt

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/vmihailenco/msgpack/v5"

	"dmldiag/internal/diag"
)

// Msgpack renders the session's report in msgpack for compact transport.
// The document layout is identical to the JSON form.
func Msgpack(w io.Writer, sess *diag.Session) error {
	report := BuildReport(sess)

	return msgpack.NewEncoder(w).Encode(report)
}

// WriteMsgpackFile writes the msgpack report to path, overwriting it.
func WriteMsgpackFile(path string, sess *diag.Session) error {
	var buf bytes.Buffer
	if err := Msgpack(&buf, sess); err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}
