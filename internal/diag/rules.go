package diag

import "strings"

// categoryRule matches a tag by prefix or substring. Rules are evaluated in
// order and the first match wins, so the precedence below is load-bearing:
// a tag containing both "TYPE" and "TEMPLATE" is a type_mismatch because the
// type rule is checked first.
type categoryRule struct {
	prefixes   []string
	substrings []string
	category   Category
}

var categoryRules = []categoryRule{
	{prefixes: []string{"ESYNTAX"}, substrings: []string{"PARSE"}, category: CategorySyntax},
	{substrings: []string{"TYPE", "ECAST", "EBITSLICE", "EINT"}, category: CategoryTypeMismatch},
	{substrings: []string{"TEMPLATE", "EAMBINH", "ECYCLICTEMPLATE", "EABSTEMPLATE", "ETMETH"}, category: CategoryTemplateResolution},
	{substrings: []string{"EUNDEF", "EREF", "ENVAR", "ENOSYM"}, category: CategoryUndefinedSymbol},
	{substrings: []string{"EDUP", "EREDEF", "EAMBIG"}, category: CategoryDuplicateDefinition},
	{substrings: []string{"IMPORT", "ECYCLICIMP"}, category: CategoryImportError},
	{substrings: []string{"ECOMPAT", "EDML12"}, category: CategoryCompatibility},
	{substrings: []string{"WDEPRECATED", "WEXPERIMENTAL"}, category: CategoryDeprecation},
}

func (r categoryRule) matches(tag string) bool {
	for _, p := range r.prefixes {
		if strings.HasPrefix(tag, p) {
			return true
		}
	}
	for _, s := range r.substrings {
		if strings.Contains(tag, s) {
			return true
		}
	}
	return false
}

// categorize resolves the taxonomy bucket for a tag. Tags matching no rule
// fall back to semantic for errors and other for everything else.
func categorize(tag string, kind Kind) Category {
	for _, rule := range categoryRules {
		if rule.matches(tag) {
			return rule.category
		}
	}
	if kind == KindError {
		return CategorySemantic
	}
	return CategoryOther
}

// fixRule maps a tag pattern to fixed advisory text. Dispatch is mutually
// exclusive: the first matching rule supplies all suggestions.
type fixRule struct {
	exact       string
	substrings  []string
	suggestions []string
}

var fixRules = []fixRule{
	{
		exact: "EAMBINH",
		suggestions: []string{
			"Add an 'is <template>' statement to specify template precedence",
			"Check template inheritance order in the object hierarchy",
		},
	},
	{
		substrings: []string{"EUNDEF", "ENOSYM"},
		suggestions: []string{
			"Check if the symbol is defined in imported files",
			"Verify the symbol name spelling",
			"Add necessary import statements if missing",
		},
	},
	{
		substrings: []string{"TYPE", "ECAST"},
		suggestions: []string{
			"Check if type conversion is needed",
			"Verify the types of all operands match expected types",
			"Consider explicit type casting if appropriate",
		},
	},
	{
		substrings: []string{"CYCLIC"},
		suggestions: []string{
			"Review import chain to break circular dependency",
			"Consider refactoring shared code into a separate file",
		},
	},
	{
		substrings: []string{"EDUP", "EREDEF"},
		suggestions: []string{
			"Remove or rename one of the duplicate definitions",
			"Check if definitions are unintentionally duplicated across templates",
		},
	},
	{
		substrings: []string{"SYNTAX"},
		suggestions: []string{
			"Check for missing semicolons, braces, or parentheses",
			"Verify DML syntax matches the version specified (1.2 vs 1.4)",
		},
	},
}

func (r fixRule) matches(tag string) bool {
	if r.exact != "" {
		return tag == r.exact
	}
	for _, s := range r.substrings {
		if strings.Contains(tag, s) {
			return true
		}
	}
	return false
}

// suggestFixes returns the advisory strings for a tag. The result is always
// non-nil so the report serializes an empty array rather than null.
func suggestFixes(tag string) []string {
	for _, rule := range fixRules {
		if rule.matches(tag) {
			out := make([]string, len(rule.suggestions))
			copy(out, rule.suggestions)
			return out
		}
	}
	return []string{}
}

const docBaseURL = "https://intel.github.io/device-modeling-language"

// docURLs maps categories to reference documentation. Categories absent from
// the table have no URL and the report omits the field.
var docURLs = map[Category]string{
	CategorySyntax:             docBaseURL + "/language.html#syntax",
	CategoryTypeMismatch:       docBaseURL + "/language.html#types",
	CategoryTemplateResolution: docBaseURL + "/language.html#templates",
	CategoryImportError:        docBaseURL + "/language.html#modules-and-imports",
}
