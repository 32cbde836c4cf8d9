package diag

// Session accumulates classified diagnostics for one compilation run.
//
// A nil *Session is a valid disabled recorder: every method is a no-op or
// returns a zero value, so the frontend can report unconditionally without
// checking whether collection is active. The session is not safe for
// concurrent use; the intended caller is a single compilation thread.
type Session struct {
	inputFile *string
	version   *Version
	diags     []ClassifiedDiagnostic
}

// NewSession returns an empty session.
func NewSession() *Session {
	return &Session{}
}

// Record classifies a raw diagnostic and appends it. Diagnostics are never
// dropped, deduplicated or reordered.
func (s *Session) Record(raw RawDiagnostic) {
	if s == nil {
		return
	}
	s.diags = append(s.diags, Classify(raw))
}

// SetContext overwrites the run-level compilation context. Last write wins;
// nil fields clear the corresponding value.
func (s *Session) SetContext(inputFile *string, version *Version) {
	if s == nil {
		return
	}
	if inputFile != nil {
		file := *inputFile
		s.inputFile = &file
	} else {
		s.inputFile = nil
	}
	if version != nil {
		v := *version
		s.version = &v
	} else {
		s.version = nil
	}
}

// Clear resets diagnostics and context, so the session can serve another run.
func (s *Session) Clear() {
	if s == nil {
		return
	}
	s.inputFile = nil
	s.version = nil
	s.diags = nil
}

// Diagnostics returns the recorded diagnostics in record order.
// The returned slice points at the session's internal array; do not modify it.
func (s *Session) Diagnostics() []ClassifiedDiagnostic {
	if s == nil {
		return nil
	}
	return s.diags
}

// Len returns the number of recorded diagnostics.
func (s *Session) Len() int {
	if s == nil {
		return 0
	}
	return len(s.diags)
}

// HasErrors returns true if any recorded diagnostic is an error.
func (s *Session) HasErrors() bool {
	if s == nil {
		return false
	}
	for i := range s.diags {
		if s.diags[i].Kind == KindError {
			return true
		}
	}
	return false
}

// Lifecycle owns the optional active session for one frontend instance.
// It replaces a process-wide singleton: the caller holds the handle and
// passes Current() to whatever records diagnostics. Only Enable and Disable
// mutate the slot, and only from the compilation thread.
type Lifecycle struct {
	active *Session
}

// Enable installs a fresh session, discarding any prior one.
func (l *Lifecycle) Enable() *Session {
	s := NewSession()
	l.active = s
	return s
}

// Disable uninstalls the active session. Recording becomes a no-op.
func (l *Lifecycle) Disable() {
	l.active = nil
}

// Enabled reports whether a session is installed.
func (l *Lifecycle) Enabled() bool {
	return l != nil && l.active != nil
}

// Current returns the active session, or nil when collection is disabled.
func (l *Lifecycle) Current() *Session {
	if l == nil {
		return nil
	}
	return l.active
}
