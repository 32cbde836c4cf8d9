package diag

import "testing"

func TestSummaryEmptySession(t *testing.T) {
	s := NewSession()
	sum := s.Summary()

	if sum.TotalDiagnostics != 0 || sum.TotalErrors != 0 || sum.TotalWarnings != 0 {
		t.Errorf("counts = %d/%d/%d, want zeros", sum.TotalDiagnostics, sum.TotalErrors, sum.TotalWarnings)
	}
	if !sum.Success {
		t.Errorf("empty session must be successful")
	}
	if len(sum.ErrorCategories) != 0 {
		t.Errorf("ErrorCategories = %v, want empty", sum.ErrorCategories)
	}
	if sum.ErrorCategories == nil {
		t.Errorf("ErrorCategories must be a non-nil map")
	}
	if sum.InputFile != nil || sum.DMLVersion != nil {
		t.Errorf("context should be nil on a fresh session")
	}
}

func TestSummaryCounts(t *testing.T) {
	s := NewSession()
	s.Record(RawDiagnostic{Tag: "ESYNTAX001", KindHint: HintError})
	s.Record(RawDiagnostic{Tag: "WDEPRECATED_FOO", KindHint: HintWarning})

	sum := s.Summary()
	if sum.TotalDiagnostics != 2 {
		t.Errorf("TotalDiagnostics = %d, want 2", sum.TotalDiagnostics)
	}
	if sum.TotalErrors != 1 || sum.TotalWarnings != 1 {
		t.Errorf("errors/warnings = %d/%d, want 1/1", sum.TotalErrors, sum.TotalWarnings)
	}
	if sum.Success {
		t.Errorf("Success must be false when errors exist")
	}
	if sum.ErrorCategories[CategorySyntax] != 1 || sum.ErrorCategories[CategoryDeprecation] != 1 {
		t.Errorf("ErrorCategories = %v", sum.ErrorCategories)
	}
}

// Category counts cover all diagnostics, not only errors.
func TestSummaryCategoriesIncludeNonErrors(t *testing.T) {
	s := NewSession()
	s.Record(RawDiagnostic{Tag: "WDEPRECATED", KindHint: HintWarning})
	s.Record(RawDiagnostic{Tag: "WDEPRECATED", KindHint: HintWarning})
	s.Record(RawDiagnostic{Tag: "INOTE", KindHint: HintUnknown})

	sum := s.Summary()
	if sum.ErrorCategories[CategoryDeprecation] != 2 {
		t.Errorf("deprecation count = %d, want 2", sum.ErrorCategories[CategoryDeprecation])
	}
	if sum.ErrorCategories[CategoryOther] != 1 {
		t.Errorf("other count = %d, want 1", sum.ErrorCategories[CategoryOther])
	}
	if !sum.Success {
		t.Errorf("warnings alone must not break success")
	}
}

func TestSummaryConsistency(t *testing.T) {
	s := NewSession()
	s.Record(RawDiagnostic{Tag: "EUNDEF", KindHint: HintError})
	s.Record(RawDiagnostic{Tag: "ICE", KindHint: HintInternalError})
	s.Record(RawDiagnostic{Tag: "WODD", KindHint: HintWarning})

	sum := s.Summary()
	if sum.TotalErrors+sum.TotalWarnings > sum.TotalDiagnostics {
		t.Errorf("errors+warnings exceeds total: %d+%d > %d", sum.TotalErrors, sum.TotalWarnings, sum.TotalDiagnostics)
	}
	if sum.Success != (sum.TotalErrors == 0) {
		t.Errorf("Success = %v with %d errors", sum.Success, sum.TotalErrors)
	}
}

func TestSummaryVersionInference(t *testing.T) {
	// No version anywhere.
	s := NewSession()
	s.Record(RawDiagnostic{Tag: "EUNDEF", KindHint: HintError})
	if got := s.Summary(); got.DMLVersion != nil {
		t.Errorf("DMLVersion = %v, want nil", got.DMLVersion)
	}

	// Inferred from the first diagnostic whose site resolves a version.
	s.Record(RawDiagnostic{
		Tag:      "ECAST",
		KindHint: HintError,
		Site:     &Site{Version: &Version{Major: 1, Minor: 2}},
	})
	s.Record(RawDiagnostic{
		Tag:      "ECAST",
		KindHint: HintError,
		Site:     &Site{Version: &Version{Major: 1, Minor: 4}},
	})
	if got := s.Summary(); got.DMLVersion == nil || *got.DMLVersion != "1.2" {
		t.Errorf("DMLVersion = %v, want 1.2 from the first versioned site", got.DMLVersion)
	}

	// Explicit context wins over inference.
	s.SetContext(strp("device.dml"), &Version{Major: 1, Minor: 4})
	if got := s.Summary(); got.DMLVersion == nil || *got.DMLVersion != "1.4" {
		t.Errorf("DMLVersion = %v, want explicit 1.4", got.DMLVersion)
	}
}

// Summary is a projection: calling it mid-run reflects only what was
// recorded so far.
func TestSummaryMidRun(t *testing.T) {
	s := NewSession()
	s.Record(RawDiagnostic{Tag: "EUNDEF", KindHint: HintError})
	before := s.Summary()

	s.Record(RawDiagnostic{Tag: "EUNDEF", KindHint: HintError})
	after := s.Summary()

	if before.TotalDiagnostics != 1 || after.TotalDiagnostics != 2 {
		t.Errorf("totals = %d then %d, want 1 then 2", before.TotalDiagnostics, after.TotalDiagnostics)
	}
}
