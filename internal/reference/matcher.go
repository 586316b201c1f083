// Package reference finds %name% parameter references in configuration
// values.
//
// A reference is the text between two '%' characters. Spans are taken left
// to right and never overlap: once a span is closed the scan looks for a new
// opening '%'. A '%' without a closing partner starts no reference.
package reference

import "strings"

const delimiter = '%'

// Matcher selects the references whose name contains a search term.
// A Matcher holds no mutable state and is safe for concurrent use.
type Matcher struct {
	term string
}

// NewMatcher returns a Matcher for term. The match is a case-sensitive
// substring test, so "param" matches "my.param", "parameter" and "x.param.y".
func NewMatcher(term string) *Matcher {
	return &Matcher{term: term}
}

// Term returns the search term.
func (m *Matcher) Term() string { return m.term }

// MatchingNames returns, in order of appearance, the referenced names in
// value that contain the term. A name referenced twice is returned twice.
func (m *Matcher) MatchingNames(value string) []string {
	var names []string
	scan(value, func(name string) {
		if strings.Contains(name, m.term) {
			names = append(names, name)
		}
	})
	return names
}

// MatchingNames is a shorthand for NewMatcher(term).MatchingNames(value).
func MatchingNames(term, value string) []string {
	return NewMatcher(term).MatchingNames(value)
}

// Names returns every referenced name in value, in order of appearance.
func Names(value string) []string {
	var names []string
	scan(value, func(name string) {
		names = append(names, name)
	})
	return names
}

func scan(value string, fn func(name string)) {
	rest := value
	for {
		open := strings.IndexByte(rest, delimiter)
		if open < 0 {
			return
		}
		rest = rest[open+1:]
		end := strings.IndexByte(rest, delimiter)
		if end < 0 {
			return
		}
		fn(rest[:end])
		rest = rest[end+1:]
	}
}
