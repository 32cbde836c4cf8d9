package diag

// Category is one taxonomy bucket a diagnostic is classified into.
// The string forms are part of the report schema and must stay stable.
type Category uint8

const (
	CategoryOther Category = iota
	CategorySyntax
	CategoryTypeMismatch
	CategoryTemplateResolution
	CategoryUndefinedSymbol
	CategoryDuplicateDefinition
	CategoryImportError
	CategoryCompatibility
	CategoryDeprecation
	CategorySemantic
)

func (c Category) String() string {
	switch c {
	case CategorySyntax:
		return "syntax"
	case CategoryTypeMismatch:
		return "type_mismatch"
	case CategoryTemplateResolution:
		return "template_resolution"
	case CategoryUndefinedSymbol:
		return "undefined_symbol"
	case CategoryDuplicateDefinition:
		return "duplicate_definition"
	case CategoryImportError:
		return "import_error"
	case CategoryCompatibility:
		return "compatibility"
	case CategoryDeprecation:
		return "deprecation"
	case CategorySemantic:
		return "semantic"
	}
	return "other"
}
