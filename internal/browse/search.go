package browse

import "strings"

type Scope int

const (
	ScopeFolder Scope = iota
	ScopeGlobal
)

func (s Scope) String() string {
	if s == ScopeGlobal {
		return "global"
	}
	return "folder"
}

// Search tracks the filter query, its debounce generation and the zero-match notice.
// It is owned by a single event loop and is not safe for concurrent use.
type Search struct {
	Mode  MatchMode
	Field Field

	active     string
	pending    string
	generation uint64
	scope      Scope
	notified   bool
}

type Outcome struct {
	Entries   []Entry
	Query     string
	ZeroMatch bool
	// Notify is set on the first zero-match result since matches were last seen.
	Notify bool
	Err    error
}

func NewSearch(mode MatchMode, field Field) *Search {
	return &Search{Mode: mode, Field: field}
}

// SetQuery records q as the pending query and returns its debounce token.
func (s *Search) SetQuery(q string) uint64 {
	s.pending = strings.ToLower(q)
	s.generation++
	return s.generation
}

// Due reports whether token still belongs to the latest query.
func (s *Search) Due(token uint64) bool {
	return token == s.generation
}

// Commit makes the pending query active if token is current.
func (s *Search) Commit(token uint64) bool {
	if !s.Due(token) {
		return false
	}
	if s.pending == "" {
		s.notified = false
	}
	s.active = s.pending
	return true
}

func (s *Search) Query() string {
	return s.active
}

func (s *Search) Scope() Scope {
	return s.scope
}

// SetScope switches scope and reports whether the entry set must be enumerated again.
func (s *Search) SetScope(scope Scope) bool {
	if s.scope == scope {
		return false
	}
	s.scope = scope
	s.notified = false
	return true
}

// Reset clears the query and invalidates any scheduled debounce tick.
func (s *Search) Reset() {
	s.active = ""
	s.pending = ""
	s.generation++
	s.notified = false
}

// Apply filters entries with the active query.
func (s *Search) Apply(entries []Entry) Outcome {
	out := Outcome{Query: s.active}
	m, err := NewMatcher(s.active, s.Mode)
	if err != nil {
		out.Entries = entries
		out.Err = err
		return out
	}
	out.Entries = FilterWith(entries, m, s.Field)
	if s.active == "" || len(out.Entries) > 0 {
		s.notified = false
		return out
	}
	out.ZeroMatch = true
	if !s.notified {
		out.Notify = true
		s.notified = true
	}
	return out
}
