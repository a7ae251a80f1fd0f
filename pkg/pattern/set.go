package pattern

import (
	"regexp"
	"strings"

	"github.com/arthur-debert/ngofile/pkg/errors"
)

// DefaultInclude is used when a Set is built without includes
const DefaultInclude = "*"

// Set holds include and exclude patterns for one directory level.
// A Set is immutable; derived sets share nothing mutable with their parent.
type Set struct {
	includes []string
	excludes []string

	includeRoutes []route
	excludeRoutes []route
}

// route is the routing part of a segment-split pattern: names matching
// prefix receive rest.
type route struct {
	prefix string
	rest   string
	re     *regexp.Regexp
	any    bool
}

func (r route) matches(name string) bool {
	switch {
	case r.any:
		return true
	case r.re != nil:
		return r.re.MatchString(name)
	default:
		return strings.EqualFold(r.prefix, name)
	}
}

// NewSet validates and normalizes the given patterns. Empty includes
// default to "*". Exact duplicates are dropped keeping the first occurrence.
func NewSet(includes, excludes []string) (Set, error) {
	inc, err := normalizeAll(includes)
	if err != nil {
		return Set{}, err
	}
	exc, err := normalizeAll(excludes)
	if err != nil {
		return Set{}, err
	}
	if len(inc) == 0 {
		inc = []string{DefaultInclude}
	}
	return build(inc, exc)
}

// MustNewSet is like NewSet but panics on invalid patterns
func MustNewSet(includes, excludes []string) Set {
	s, err := NewSet(includes, excludes)
	if err != nil {
		panic(err)
	}
	return s
}

func normalizeAll(patterns []string) ([]string, error) {
	out := make([]string, 0, len(patterns))
	for _, p := range patterns {
		n := Normalize(p)
		if err := Validate(n); err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return dedupe(out), nil
}

func build(includes, excludes []string) (Set, error) {
	s := Set{includes: includes, excludes: excludes}
	var err error
	if s.includeRoutes, err = compileRoutes(includes); err != nil {
		return Set{}, err
	}
	if s.excludeRoutes, err = compileRoutes(excludes); err != nil {
		return Set{}, err
	}
	return s, nil
}

func compileRoutes(patterns []string) ([]route, error) {
	var routes []route
	for _, p := range patterns {
		for _, r := range routesOf(p) {
			if r.prefix == "**" {
				r.any = true
			} else if HasMeta(r.prefix) {
				re, err := regexp.Compile("(?i)^" + Translate(r.prefix, false) + "$")
				if err != nil {
					return nil, errors.Wrapf(err, errors.ErrInvalidPattern, "invalid pattern %q", p).
						WithDetail("pattern", p)
				}
				r.re = re
			}
			routes = append(routes, r)
		}
	}
	return routes, nil
}

// Split cuts a pattern at its first separator
func Split(p string) (prefix, rest string, ok bool) {
	return strings.Cut(p, "/")
}

// routesOf lists the routes of one pattern. `**/rest` routes itself into
// every child and, standing for zero directories, also routes as rest.
func routesOf(p string) []route {
	prefix, rest, ok := Split(p)
	if !ok {
		return nil
	}
	if prefix == "**" {
		return append([]route{{prefix: prefix, rest: p}}, routesOf(rest)...)
	}
	return []route{{prefix: prefix, rest: rest}}
}

// localsOf lists the name patterns p contributes at the current level
func localsOf(p string) []string {
	prefix, rest, ok := Split(p)
	if !ok {
		return []string{p}
	}
	if prefix == "**" {
		return localsOf(rest)
	}
	return nil
}

// Includes returns a copy of the include patterns
func (s Set) Includes() []string {
	return append([]string(nil), s.includes...)
}

// Excludes returns a copy of the exclude patterns
func (s Set) Excludes() []string {
	return append([]string(nil), s.excludes...)
}

// IsZero reports whether the set holds no include patterns
func (s Set) IsZero() bool {
	return len(s.includes) == 0
}

// WithExcludes returns a copy of s with extra exclude patterns
func (s Set) WithExcludes(patterns ...string) (Set, error) {
	extra, err := normalizeAll(patterns)
	if err != nil {
		return Set{}, err
	}
	return build(s.includes, union(s.excludes, extra))
}

// Local returns the patterns that apply to names of the current level
func (s Set) Local() (includes, excludes []string) {
	for _, p := range s.includes {
		includes = append(includes, localsOf(p)...)
	}
	for _, p := range s.excludes {
		excludes = append(excludes, localsOf(p)...)
	}
	return dedupe(includes), dedupe(excludes)
}

// Route returns the pattern remainders routed into the child directory name
func (s Set) Route(name string) (includes, excludes []string) {
	for _, r := range s.includeRoutes {
		if r.matches(name) {
			includes = append(includes, r.rest)
		}
	}
	for _, r := range s.excludeRoutes {
		if r.matches(name) {
			excludes = append(excludes, r.rest)
		}
	}
	return dedupe(includes), dedupe(excludes)
}

// Child returns the set in effect inside the child directory name and
// whether the walk descends into it. A recursive walk carries the full set
// down; otherwise only routed includes cause a descent. Excludes are always
// carried and routed excludes never cause a descent on their own.
func (s Set) Child(name string, recursive bool) (Set, bool) {
	ri, re := s.Route(name)
	if !recursive && len(ri) == 0 {
		return Set{}, false
	}

	includes := ri
	if recursive {
		includes = union(s.includes, ri)
	}

	child, err := build(includes, union(s.excludes, re))
	if err != nil {
		// remainders of validated patterns always compile
		return Set{}, false
	}
	return child, true
}

// Matcher compiles the local patterns of s
func (s Set) Matcher() (*Matcher, error) {
	inc, exc := s.Local()
	return Compile(inc, exc)
}

func union(a, b []string) []string {
	out := make([]string, 0, len(a)+len(b))
	out = append(out, a...)
	out = append(out, b...)
	return dedupe(out)
}

func dedupe(patterns []string) []string {
	if len(patterns) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(patterns))
	out := patterns[:0:0]
	for _, p := range patterns {
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		out = append(out, p)
	}
	return out
}
