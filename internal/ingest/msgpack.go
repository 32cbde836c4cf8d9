package ingest

import (
	"errors"
	"fmt"
	"io"

	"github.com/vmihailenco/msgpack/v5"

	"dmldiag/internal/diag"
)

// ReadMsgpack decodes a stream of msgpack-encoded raw diagnostic records,
// reading until EOF.
func ReadMsgpack(r io.Reader) ([]diag.RawDiagnostic, error) {
	dec := msgpack.NewDecoder(r)

	var out []diag.RawDiagnostic
	for i := 0; ; i++ {
		var rec rawRecord
		if err := dec.Decode(&rec); err != nil {
			if errors.Is(err, io.EOF) {
				return out, nil
			}
			return nil, fmt.Errorf("record %d: failed to decode: %w", i, err)
		}
		out = append(out, rec.toDiagnostic())
	}
}
