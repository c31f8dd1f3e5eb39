package browse

import (
	"fmt"
	"strings"

	"github.com/gobwas/glob"
)

// Field selects the text a query is matched against.
type Field int

const (
	FieldName Field = iota
	FieldPath
)

func ParseField(raw string) (Field, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "name":
		return FieldName, nil
	case "path":
		return FieldPath, nil
	default:
		return FieldName, fmt.Errorf("unknown match field %q (want name or path)", raw)
	}
}

type MatchMode string

const (
	MatchSubstring MatchMode = "substring"
	MatchGlob      MatchMode = "glob"
)

func ParseMatchMode(raw string) (MatchMode, error) {
	switch MatchMode(strings.ToLower(strings.TrimSpace(raw))) {
	case "", MatchSubstring:
		return MatchSubstring, nil
	case MatchGlob:
		return MatchGlob, nil
	default:
		return "", fmt.Errorf("unknown match mode %q (want substring or glob)", raw)
	}
}

type Matcher interface {
	Match(text string) bool
}

type substringMatcher string

func (s substringMatcher) Match(text string) bool {
	return strings.Contains(strings.ToLower(text), string(s))
}

type globMatcher struct {
	g glob.Glob
}

func (m globMatcher) Match(text string) bool {
	return m.g.Match(strings.ToLower(text))
}

// NewMatcher compiles a case-insensitive matcher. An empty query yields nil, which
// matches everything.
func NewMatcher(query string, mode MatchMode) (Matcher, error) {
	folded := strings.ToLower(query)
	if folded == "" {
		return nil, nil
	}
	if mode != MatchGlob {
		return substringMatcher(folded), nil
	}
	g, err := glob.Compile(folded)
	if err != nil {
		return nil, fmt.Errorf("compile pattern %q: %w", query, err)
	}
	return globMatcher{g: g}, nil
}

// ApplyFilter keeps the entries whose name (or relative path) contains query, ignoring case.
// An empty query returns entries unchanged.
func ApplyFilter(entries []Entry, query string, field Field) []Entry {
	m, _ := NewMatcher(query, MatchSubstring)
	return FilterWith(entries, m, field)
}

func FilterWith(entries []Entry, m Matcher, field Field) []Entry {
	if m == nil {
		return entries
	}
	out := make([]Entry, 0, len(entries))
	for _, entry := range entries {
		if m.Match(entryText(entry, field)) {
			out = append(out, entry)
		}
	}
	return out
}

func entryText(entry Entry, field Field) string {
	if field == FieldName {
		return entry.Name
	}
	return entry.RelPath
}
