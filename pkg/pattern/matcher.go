package pattern

import (
	"regexp"
)

// Matcher tests single names against include and exclude globs.
// Matching is case-insensitive and anchored to the whole name.
type Matcher struct {
	include *regexp.Regexp
	exclude *regexp.Regexp
}

// Compile builds a Matcher from name patterns. Patterns must not contain
// separators; use Set.Local to obtain them from a Set.
func Compile(includes, excludes []string) (*Matcher, error) {
	for _, p := range append(append([]string(nil), includes...), excludes...) {
		if err := Validate(p); err != nil {
			return nil, err
		}
	}

	inc, err := compileAlternation(anchored(includes))
	if err != nil {
		return nil, err
	}
	exc, err := compileAlternation(anchored(excludes))
	if err != nil {
		return nil, err
	}
	return &Matcher{include: inc, exclude: exc}, nil
}

func anchored(patterns []string) []string {
	bodies := make([]string, len(patterns))
	for i, p := range patterns {
		bodies[i] = "^" + Translate(p, false) + "$"
	}
	return bodies
}

// Included reports whether name matches any include pattern
func (m *Matcher) Included(name string) bool {
	return m.include != nil && m.include.MatchString(name)
}

// Excluded reports whether name matches any exclude pattern
func (m *Matcher) Excluded(name string) bool {
	return m.exclude != nil && m.exclude.MatchString(name)
}

// Match reports whether name is included and not excluded
func (m *Matcher) Match(name string) bool {
	return !m.Excluded(name) && m.Included(name)
}
