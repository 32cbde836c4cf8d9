package ingest

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"dmldiag/internal/diag"
)

// maxRecordSize bounds a single JSONL record; frontends emit one diagnostic
// per line and even pathological messages stay far below this.
const maxRecordSize = 1 << 20

// ReadJSONL decodes a JSON Lines stream of raw diagnostics. Blank lines are
// skipped; an undecodable line is an error carrying its line number.
func ReadJSONL(r io.Reader) ([]diag.RawDiagnostic, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxRecordSize)

	var out []diag.RawDiagnostic
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		var rec rawRecord
		if err := json.Unmarshal([]byte(line), &rec); err != nil {
			return nil, fmt.Errorf("line %d: failed to decode record: %w", lineNo, err)
		}
		out = append(out, rec.toDiagnostic())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read stream: %w", err)
	}
	return out, nil
}
