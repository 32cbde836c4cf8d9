package diag

// Location is the serialized form of a primary source location.
type Location struct {
	File      *string
	Line      *int
	LocString string
}

// RelatedLocation is one auxiliary location in classified form.
type RelatedLocation struct {
	File    *string
	Line    *int
	Message string
}

// ClassifiedDiagnostic is one diagnostic after classification. It is
// immutable once created; the session owns it.
type ClassifiedDiagnostic struct {
	Kind             Kind
	Severity         Severity
	Category         Category
	Tag              string
	Message          string
	Location         *Location
	FixSuggestions   []string
	RelatedLocations []RelatedLocation
	// DocumentationURL is empty when the category has no reference docs.
	DocumentationURL string
	// Method is the associated method name, if any.
	Method *string

	// siteVersion is kept for language-version inference in the summary;
	// it is not part of the exported record.
	siteVersion *Version
}

// Classify derives the classified form of a raw diagnostic. It is pure and
// total: category and suggestions depend only on tag and kind, and malformed
// input degrades to the other category, empty suggestions and nil location.
func Classify(raw RawDiagnostic) ClassifiedDiagnostic {
	kind := kindOf(raw.KindHint)
	category := categorize(raw.Tag, kind)

	d := ClassifiedDiagnostic{
		Kind:             kind,
		Severity:         severityOf(kind),
		Category:         category,
		Tag:              raw.Tag,
		Message:          raw.Message,
		Location:         locationOf(raw.Site),
		FixSuggestions:   suggestFixes(raw.Tag),
		RelatedLocations: relatedLocations(raw.RelatedSites),
		DocumentationURL: docURLs[category],
	}
	if raw.Method != nil {
		method := *raw.Method
		d.Method = &method
	}
	if raw.Site != nil && raw.Site.Version != nil {
		v := *raw.Site.Version
		d.siteVersion = &v
	}
	return d
}

func locationOf(site *Site) *Location {
	if site == nil {
		return nil
	}
	loc := &Location{LocString: site.Render()}
	if site.File != nil {
		file := *site.File
		loc.File = &file
	}
	if site.Line != nil {
		line := *site.Line
		loc.Line = &line
	}
	return loc
}

// relatedLocations preserves frontend order and degrades missing fields to
// nil. The result is always non-nil for stable serialization.
func relatedLocations(sites []RelatedSite) []RelatedLocation {
	related := make([]RelatedLocation, 0, len(sites))
	for _, site := range sites {
		rel := RelatedLocation{Message: site.Role.Message()}
		if site.File != nil {
			file := *site.File
			rel.File = &file
		}
		if site.Line != nil {
			line := *site.Line
			rel.Line = &line
		}
		related = append(related, rel)
	}
	return related
}
