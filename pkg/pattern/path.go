package pattern

import (
	"regexp"

	"github.com/arthur-debert/ngofile/pkg/errors"
)

// PathMatcher tests full forward-slash entry names, as stored in archives
type PathMatcher struct {
	include *regexp.Regexp
	exclude *regexp.Regexp
}

// CompilePaths builds a PathMatcher for archive listings.
//
// Recursive includes match at any depth, non-recursive ones at the top
// level only. An include that matches one of dirs is widened to the
// directory contents: the whole subtree when recursive, direct children
// otherwise. Excludes match a whole path segment run anywhere and remove
// everything below it.
func CompilePaths(includes, excludes, dirs []string, recursive bool) (*PathMatcher, error) {
	var incBodies []string
	for _, p := range includes {
		p = Normalize(p)
		if err := Validate(p); err != nil {
			return nil, err
		}
		body, err := includeBody(Translate(p, true), dirs, recursive)
		if err != nil {
			return nil, err
		}
		incBodies = append(incBodies, body)
	}

	var excBodies []string
	for _, p := range excludes {
		p = Normalize(p)
		if err := Validate(p); err != nil {
			return nil, err
		}
		excBodies = append(excBodies, `(?:^|/)`+Translate(p, true)+`(?:/|$)`)
	}

	inc, err := compileAlternation(incBodies)
	if err != nil {
		return nil, err
	}
	exc, err := compileAlternation(excBodies)
	if err != nil {
		return nil, err
	}
	return &PathMatcher{include: inc, exclude: exc}, nil
}

func includeBody(glob string, dirs []string, recursive bool) (string, error) {
	lead := "^"
	if recursive {
		lead = `^(?:.*/)?`
	}

	base, err := regexp.Compile("(?i)" + lead + glob + "/?$")
	if err != nil {
		return "", errors.Wrap(err, errors.ErrInvalidPattern, "failed to compile pattern")
	}
	for _, d := range dirs {
		if base.MatchString(d) {
			if recursive {
				return lead + glob + `(?:/.*)?$`, nil
			}
			return lead + glob + `(?:/[^/]+)?/?$`, nil
		}
	}
	return lead + glob + "/?$", nil
}

// Match reports whether name is included and not excluded
func (m *PathMatcher) Match(name string) bool {
	if m.exclude != nil && m.exclude.MatchString(name) {
		return false
	}
	return m.include != nil && m.include.MatchString(name)
}
