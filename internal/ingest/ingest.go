// Package ingest reads raw diagnostic streams written by a DML compiler
// frontend. Two encodings are supported: JSON Lines (one record per line)
// and a msgpack record stream. Records decode into diag.RawDiagnostic with
// the same degradation rules the classifier applies: optional fields that
// are missing or out of range become nil, never an error. Only a record
// that cannot be decoded at all fails the ingest, since the stream is
// machine-produced.
package ingest

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"fortio.org/safecast"
	"golang.org/x/text/unicode/norm"

	"dmldiag/internal/diag"
)

// rawRecord mirrors one frontend-emitted diagnostic on the wire.
type rawRecord struct {
	Tag          string          `json:"tag" msgpack:"tag"`
	Message      string          `json:"message" msgpack:"message"`
	Kind         string          `json:"kind" msgpack:"kind"`
	Site         *siteRecord     `json:"site" msgpack:"site"`
	RelatedSites []relatedRecord `json:"related_sites" msgpack:"related_sites"`
	Method       *string         `json:"method" msgpack:"method"`
}

type siteRecord struct {
	File           *string `json:"file" msgpack:"file"`
	Line           *int64  `json:"line" msgpack:"line"`
	LocationString string  `json:"location_string" msgpack:"location_string"`
	DMLVersion     *string `json:"dml_version" msgpack:"dml_version"`
}

type relatedRecord struct {
	File *string `json:"file" msgpack:"file"`
	Line *int64  `json:"line" msgpack:"line"`
	Role string  `json:"role" msgpack:"role"`
}

func hintOf(kind string) diag.KindHint {
	switch kind {
	case "error":
		return diag.HintError
	case "warning":
		return diag.HintWarning
	case "internal_error", "internal-error":
		return diag.HintInternalError
	}
	return diag.HintUnknown
}

func roleOf(role string) diag.SiteRole {
	if role == "default-candidate" {
		return diag.RoleDefaultCandidate
	}
	return diag.RoleOther
}

// lineOf narrows a wire line number to int, degrading to nil on overflow.
func lineOf(line *int64) *int {
	if line == nil {
		return nil
	}
	n, err := safecast.Conv[int](*line)
	if err != nil {
		return nil
	}
	return &n
}

func (r rawRecord) toDiagnostic() diag.RawDiagnostic {
	raw := diag.RawDiagnostic{
		Tag: r.Tag,
		// Normalize to NFC so reports are byte-stable across frontends.
		Message:  norm.NFC.String(r.Message),
		KindHint: hintOf(r.Kind),
	}
	if r.Method != nil {
		method := *r.Method
		raw.Method = &method
	}
	if r.Site != nil {
		site := &diag.Site{
			File:      r.Site.File,
			Line:      lineOf(r.Site.Line),
			LocString: r.Site.LocationString,
		}
		if r.Site.DMLVersion != nil {
			if v, err := diag.ParseVersion(*r.Site.DMLVersion); err == nil {
				site.Version = &v
			}
		}
		raw.Site = site
	}
	for _, rel := range r.RelatedSites {
		raw.RelatedSites = append(raw.RelatedSites, diag.RelatedSite{
			File: rel.File,
			Line: lineOf(rel.Line),
			Role: roleOf(rel.Role),
		})
	}
	return raw
}

// ReadFile loads a raw diagnostic stream, picking the decoder from the file
// extension: .mp and .msgpack are msgpack streams, everything else JSONL.
func ReadFile(path string) ([]diag.RawDiagnostic, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open stream: %w", err)
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".mp", ".msgpack":
		return ReadMsgpack(f)
	default:
		return ReadJSONL(f)
	}
}
