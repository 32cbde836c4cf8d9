package diag

// Kind is the normalized class of a diagnostic.
type Kind uint8

const (
	// KindError is for ordinary compile errors.
	KindError Kind = iota
	// KindWarning is for warnings.
	KindWarning
	// KindInternalError is for internal compiler errors.
	KindInternalError
	// KindInfo is for everything the frontend did not label.
	KindInfo
)

func (k Kind) String() string {
	switch k {
	case KindError:
		return "error"
	case KindWarning:
		return "warning"
	case KindInternalError:
		return "internal_error"
	case KindInfo:
		return "info"
	}
	return "info"
}

// Severity defines the importance of a diagnostic.
type Severity uint8

const (
	// SevInfo is for informational diagnostics.
	SevInfo Severity = iota
	// SevWarning is for warning diagnostics.
	SevWarning
	SevError
	// SevFatal is reserved for internal compiler errors.
	SevFatal
)

func (s Severity) String() string {
	switch s {
	case SevInfo:
		return "info"
	case SevWarning:
		return "warning"
	case SevError:
		return "error"
	case SevFatal:
		return "fatal"
	}
	return "info"
}

// KindHint names the concrete message class the frontend emitted.
// HintUnknown covers anything that is neither an error, a warning,
// nor an internal compiler error.
type KindHint uint8

const (
	HintUnknown KindHint = iota
	HintError
	HintWarning
	HintInternalError
)

// kindOf normalizes a frontend hint. Internal errors dominate.
func kindOf(h KindHint) Kind {
	switch h {
	case HintInternalError:
		return KindInternalError
	case HintError:
		return KindError
	case HintWarning:
		return KindWarning
	}
	return KindInfo
}

// severityOf maps a normalized kind to its severity level.
// KindInternalError is always fatal, regardless of the tag.
func severityOf(k Kind) Severity {
	switch k {
	case KindInternalError:
		return SevFatal
	case KindError:
		return SevError
	case KindWarning:
		return SevWarning
	}
	return SevInfo
}
