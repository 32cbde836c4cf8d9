package diag

// Summary is the run-level projection of a session. It reflects only the
// diagnostics recorded so far and is safe to build at any point.
type Summary struct {
	InputFile *string
	// DMLVersion is the rendered "major.minor" language version, or nil when
	// neither the context nor any diagnostic site resolved one.
	DMLVersion       *string
	TotalDiagnostics int
	TotalErrors      int
	TotalWarnings    int
	// ErrorCategories counts every recorded diagnostic by category, not just
	// errors.
	ErrorCategories map[Category]int
	Success         bool
}

// Summary builds the current run summary. Pure read: the session is not
// mutated and the result holds no references into it.
func (s *Session) Summary() Summary {
	sum := Summary{
		ErrorCategories: make(map[Category]int),
		Success:         true,
	}
	if s == nil {
		return sum
	}

	if s.inputFile != nil {
		file := *s.inputFile
		sum.InputFile = &file
	}
	sum.TotalDiagnostics = len(s.diags)

	for i := range s.diags {
		d := &s.diags[i]
		switch d.Kind {
		case KindError:
			sum.TotalErrors++
		case KindWarning:
			sum.TotalWarnings++
		}
		sum.ErrorCategories[d.Category]++
	}
	sum.Success = sum.TotalErrors == 0
	sum.DMLVersion = s.versionString()
	return sum
}

// versionString renders the explicit context version when set, otherwise the
// first recorded diagnostic carrying a resolvable site version.
func (s *Session) versionString() *string {
	if s.version != nil {
		v := s.version.String()
		return &v
	}
	for i := range s.diags {
		if s.diags[i].siteVersion != nil {
			v := s.diags[i].siteVersion.String()
			return &v
		}
	}
	return nil
}
