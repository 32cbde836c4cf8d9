// Package diag defines the diagnostic classification model shared by the
// collector, the report serializer and the CLI.
//
// # Purpose
//
//   - Provide deterministic, serialisable data structures for diagnostics
//     emitted by a DML compiler frontend during one compilation run.
//   - Classify each raw diagnostic into a stable taxonomy (kind, severity,
//     category) and enrich it with fix suggestions, related locations and
//     documentation links.
//   - Accumulate classified diagnostics per run (Session) and project them
//     into run-level statistics (Summary).
//
// # Scope
//
// Package diag does not perform any formatting, IO or CLI integration.
// Rendering responsibilities live in internal/diagfmt, stream ingestion in
// internal/ingest, and orchestration in cmd/dmldiag.
//
// # Data model
//
// RawDiagnostic is what the frontend hands over: an opaque tag, a message,
// a kind hint, an optional site and optional related sites. Classify turns
// it into a ClassifiedDiagnostic. Classification is total and pure — it
// never fails, category and suggestions are functions of tag and kind only,
// and malformed input degrades to the "other" category with empty
// suggestions rather than aborting a compilation run.
//
// The categorization and fix-suggestion tables in rules.go are ordered:
// the first matching rule wins, and the order is part of the contract
// because tags can match more than one rule.
//
// # Sessions
//
// Session is an append-only collector for one run. All of its methods are
// nil-safe, so a nil session doubles as a disabled recorder; Lifecycle holds
// the optional active session and is the only writer of that slot. Sessions
// are single-threaded: one frontend emits diagnostics sequentially.
package diag
