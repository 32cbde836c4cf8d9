package diag

import (
	"fmt"
	"strconv"
	"strings"
)

// Version is a DML language version pair, e.g. 1.4.
type Version struct {
	Major int
	Minor int
}

func (v Version) String() string {
	return fmt.Sprintf("%d.%d", v.Major, v.Minor)
}

// ParseVersion parses a "major.minor" string.
func ParseVersion(s string) (Version, error) {
	major, minor, ok := strings.Cut(strings.TrimSpace(s), ".")
	if !ok {
		return Version{}, fmt.Errorf("invalid version %q: expected major.minor", s)
	}
	maj, err := strconv.Atoi(major)
	if err != nil {
		return Version{}, fmt.Errorf("invalid version %q: %w", s, err)
	}
	min, err := strconv.Atoi(minor)
	if err != nil {
		return Version{}, fmt.Errorf("invalid version %q: %w", s, err)
	}
	return Version{Major: maj, Minor: min}, nil
}

// Site is a source location handle as reported by the frontend.
// Every field the classifier may need is declared up front; absence is a
// nil pointer, never a probed attribute.
type Site struct {
	File      *string
	Line      *int
	LocString string
	// Version is the language version the site's file resolved to, when the
	// frontend knows it.
	Version *Version
}

// Render returns the best renderable form of the site.
func (s *Site) Render() string {
	if s == nil {
		return ""
	}
	if s.LocString != "" {
		return s.LocString
	}
	if s.File != nil {
		if s.Line != nil {
			return fmt.Sprintf("%s:%d", *s.File, *s.Line)
		}
		return *s.File
	}
	return ""
}

// SiteRole tags why an auxiliary site is attached to a diagnostic.
type SiteRole uint8

const (
	// RoleOther is a generic related location.
	RoleOther SiteRole = iota
	// RoleDefaultCandidate marks a default method candidate site.
	RoleDefaultCandidate
)

// Message returns the role's wording in the exported report.
func (r SiteRole) Message() string {
	if r == RoleDefaultCandidate {
		return "default method candidate"
	}
	return "related location"
}

// RelatedSite is an auxiliary location attached to a raw diagnostic.
type RelatedSite struct {
	File *string
	Line *int
	Role SiteRole
}

// RawDiagnostic is one message as emitted by the compiler frontend.
// The frontend owns it; this package only reads it.
type RawDiagnostic struct {
	// Tag is the opaque code of the rule that fired, e.g. "EUNDEF".
	Tag string
	// Message is the human-readable description.
	Message string
	// KindHint says which concrete message class produced the diagnostic.
	KindHint KindHint
	// Site is the primary source location, if any.
	Site *Site
	// RelatedSites are auxiliary locations, in frontend order.
	RelatedSites []RelatedSite
	// Method is the associated method name, if any.
	Method *string
}
