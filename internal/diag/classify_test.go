package diag

import (
	"reflect"
	"testing"
)

func strp(s string) *string { return &s }
func intp(n int) *int       { return &n }

func TestClassifyCategoryPrecedence(t *testing.T) {
	tests := []struct {
		tag  string
		hint KindHint
		want Category
	}{
		{"ESYNTAX001", HintError, CategorySyntax},
		{"EPARSEFAIL", HintError, CategorySyntax},
		{"ECAST", HintError, CategoryTypeMismatch},
		{"EBITSLICE", HintError, CategoryTypeMismatch},
		{"ECYCLICTEMPLATE", HintError, CategoryTemplateResolution},
		{"ETMETH", HintError, CategoryTemplateResolution},
		{"EUNDEF", HintError, CategoryUndefinedSymbol},
		{"ENVAR", HintError, CategoryUndefinedSymbol},
		{"EREDEF", HintError, CategoryDuplicateDefinition},
		{"EAMBIG", HintError, CategoryDuplicateDefinition},
		{"ECYCLICIMP", HintError, CategoryImportError},
		{"EIMPORT", HintError, CategoryImportError},
		{"ECOMPAT", HintError, CategoryCompatibility},
		{"EDML12", HintError, CategoryCompatibility},
		{"WDEPRECATED_FOO", HintWarning, CategoryDeprecation},
		{"WEXPERIMENTAL", HintWarning, CategoryDeprecation},
		// No rule matches: errors become semantic, the rest other.
		{"EWEIRD", HintError, CategorySemantic},
		{"WODD", HintWarning, CategoryOther},
		{"", HintUnknown, CategoryOther},
		// A tag matching both the type and template rules resolves to the
		// earlier rule: type_mismatch is checked before template_resolution.
		{"ETYPETEMPLATE", HintError, CategoryTypeMismatch},
		// ESYNTAX must win as a prefix even when later substrings match too.
		{"ESYNTAXTYPE", HintError, CategorySyntax},
		// Prefix rule means a mid-tag ESYNTAX without PARSE is not syntax.
		{"XESYNTAX", HintWarning, CategoryOther},
	}

	for _, tt := range tests {
		t.Run(tt.tag, func(t *testing.T) {
			got := Classify(RawDiagnostic{Tag: tt.tag, KindHint: tt.hint})
			if got.Category != tt.want {
				t.Errorf("Classify(%q).Category = %s, want %s", tt.tag, got.Category, tt.want)
			}
		})
	}
}

func TestClassifyKindAndSeverity(t *testing.T) {
	tests := []struct {
		name string
		hint KindHint
		kind Kind
		sev  Severity
	}{
		{"error", HintError, KindError, SevError},
		{"warning", HintWarning, KindWarning, SevWarning},
		{"internal", HintInternalError, KindInternalError, SevFatal},
		{"unknown", HintUnknown, KindInfo, SevInfo},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(RawDiagnostic{Tag: "EANY", KindHint: tt.hint})
			if got.Kind != tt.kind {
				t.Errorf("Kind = %s, want %s", got.Kind, tt.kind)
			}
			if got.Severity != tt.sev {
				t.Errorf("Severity = %s, want %s", got.Severity, tt.sev)
			}
		})
	}
}

func TestClassifyInternalErrorIsFatalRegardlessOfTag(t *testing.T) {
	got := Classify(RawDiagnostic{Tag: "ICE_INTERNAL", KindHint: HintInternalError})
	if got.Severity != SevFatal {
		t.Errorf("Severity = %s, want fatal", got.Severity)
	}
	if got.Kind != KindInternalError {
		t.Errorf("Kind = %s, want internal_error", got.Kind)
	}
}

func TestClassifyUndefinedSymbolScenario(t *testing.T) {
	got := Classify(RawDiagnostic{Tag: "EUNDEF", Message: "undefined symbol 'regs'", KindHint: HintError})

	if got.Category != CategoryUndefinedSymbol {
		t.Errorf("Category = %s, want undefined_symbol", got.Category)
	}
	if got.Severity != SevError {
		t.Errorf("Severity = %s, want error", got.Severity)
	}
	if got.Location != nil {
		t.Errorf("Location = %+v, want nil", got.Location)
	}
	found := false
	for _, s := range got.FixSuggestions {
		if s == "Verify the symbol name spelling" {
			found = true
		}
	}
	if !found {
		t.Errorf("FixSuggestions = %v, missing spelling advice", got.FixSuggestions)
	}
}

func TestClassifyFixSuggestionDispatch(t *testing.T) {
	tests := []struct {
		tag   string
		count int
		first string
	}{
		{"EAMBINH", 2, "Add an 'is <template>' statement to specify template precedence"},
		{"ENOSYM", 3, "Check if the symbol is defined in imported files"},
		{"ETYPE", 3, "Check if type conversion is needed"},
		{"ECYCLICIMP", 2, "Review import chain to break circular dependency"},
		{"EREDEF", 2, "Remove or rename one of the duplicate definitions"},
		{"ESYNTAX", 2, "Check for missing semicolons, braces, or parentheses"},
		{"EUNKNOWN", 0, ""},
	}

	for _, tt := range tests {
		t.Run(tt.tag, func(t *testing.T) {
			got := Classify(RawDiagnostic{Tag: tt.tag, KindHint: HintError})
			if got.FixSuggestions == nil {
				t.Fatalf("FixSuggestions is nil, want non-nil slice")
			}
			if len(got.FixSuggestions) != tt.count {
				t.Fatalf("len(FixSuggestions) = %d, want %d (%v)", len(got.FixSuggestions), tt.count, got.FixSuggestions)
			}
			if tt.count > 0 && got.FixSuggestions[0] != tt.first {
				t.Errorf("FixSuggestions[0] = %q, want %q", got.FixSuggestions[0], tt.first)
			}
		})
	}
}

// EAMBINH is dispatched by exact match: a tag merely containing it gets the
// template suggestions only via other rules, not the EAMBINH pair.
func TestClassifyFixSuggestionExactMatch(t *testing.T) {
	got := Classify(RawDiagnostic{Tag: "EAMBINHX", KindHint: HintError})
	if len(got.FixSuggestions) != 0 {
		t.Errorf("FixSuggestions = %v, want empty", got.FixSuggestions)
	}
	if got.Category != CategoryTemplateResolution {
		t.Errorf("Category = %s, want template_resolution", got.Category)
	}
}

func TestClassifyDocumentationURL(t *testing.T) {
	tests := []struct {
		tag  string
		want string
	}{
		{"ESYNTAX", "https://intel.github.io/device-modeling-language/language.html#syntax"},
		{"ECAST", "https://intel.github.io/device-modeling-language/language.html#types"},
		{"ETMETH", "https://intel.github.io/device-modeling-language/language.html#templates"},
		{"EIMPORT", "https://intel.github.io/device-modeling-language/language.html#modules-and-imports"},
		{"EUNDEF", ""},
		{"EREDEF", ""},
		{"EOTHER", ""},
	}

	for _, tt := range tests {
		got := Classify(RawDiagnostic{Tag: tt.tag, KindHint: HintError})
		if got.DocumentationURL != tt.want {
			t.Errorf("Classify(%q).DocumentationURL = %q, want %q", tt.tag, got.DocumentationURL, tt.want)
		}
	}
}

func TestClassifyLocationAndRelated(t *testing.T) {
	raw := RawDiagnostic{
		Tag:      "EDUP",
		Message:  "duplicate definition of bank 'b'",
		KindHint: HintError,
		Site: &Site{
			File:      strp("device.dml"),
			Line:      intp(42),
			LocString: "device.dml:42",
		},
		RelatedSites: []RelatedSite{
			{File: strp("common.dml"), Line: intp(7), Role: RoleOther},
			{Role: RoleDefaultCandidate},
		},
		Method: strp("write"),
	}

	got := Classify(raw)
	if got.Location == nil {
		t.Fatalf("Location is nil")
	}
	if got.Location.File == nil || *got.Location.File != "device.dml" {
		t.Errorf("Location.File = %v, want device.dml", got.Location.File)
	}
	if got.Location.Line == nil || *got.Location.Line != 42 {
		t.Errorf("Location.Line = %v, want 42", got.Location.Line)
	}
	if got.Location.LocString != "device.dml:42" {
		t.Errorf("Location.LocString = %q", got.Location.LocString)
	}

	if len(got.RelatedLocations) != 2 {
		t.Fatalf("len(RelatedLocations) = %d, want 2", len(got.RelatedLocations))
	}
	first := got.RelatedLocations[0]
	if first.Message != "related location" {
		t.Errorf("RelatedLocations[0].Message = %q", first.Message)
	}
	if first.File == nil || *first.File != "common.dml" || first.Line == nil || *first.Line != 7 {
		t.Errorf("RelatedLocations[0] = %+v", first)
	}
	second := got.RelatedLocations[1]
	if second.Message != "default method candidate" {
		t.Errorf("RelatedLocations[1].Message = %q", second.Message)
	}
	if second.File != nil || second.Line != nil {
		t.Errorf("RelatedLocations[1] should degrade missing fields to nil, got %+v", second)
	}

	if got.Method == nil || *got.Method != "write" {
		t.Errorf("Method = %v, want write", got.Method)
	}
}

func TestClassifySiteRenderFallback(t *testing.T) {
	got := Classify(RawDiagnostic{
		Tag:      "EREF",
		KindHint: HintError,
		Site:     &Site{File: strp("dev.dml"), Line: intp(3)},
	})
	if got.Location == nil || got.Location.LocString != "dev.dml:3" {
		t.Fatalf("Location = %+v, want rendered dev.dml:3", got.Location)
	}
}

// Classify is a pure function: the same input yields the same output.
func TestClassifyIdempotent(t *testing.T) {
	raw := RawDiagnostic{
		Tag:      "EAMBINH",
		Message:  "ambiguous inheritance",
		KindHint: HintError,
		Site:     &Site{File: strp("a.dml"), Line: intp(1), LocString: "a.dml:1"},
		RelatedSites: []RelatedSite{
			{File: strp("b.dml"), Line: intp(2), Role: RoleDefaultCandidate},
		},
	}
	first := Classify(raw)
	second := Classify(raw)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("Classify not deterministic:\n%+v\n%+v", first, second)
	}
}
