package pattern

import (
	"path/filepath"
	"regexp"
	"strings"

	"github.com/arthur-debert/ngofile/pkg/errors"
	"github.com/bmatcuk/doublestar/v4"
)

const metaChars = `*?[{\`

// HasMeta reports whether p contains glob metacharacters
func HasMeta(p string) bool {
	return strings.ContainsAny(p, metaChars)
}

// Escape quotes every glob metacharacter of name so the result matches
// name literally.
func Escape(name string) string {
	var b strings.Builder
	for i := 0; i < len(name); i++ {
		switch name[i] {
		case '*', '?', '[', ']', '{', '}', ',', '\\':
			b.WriteByte('\\')
		}
		b.WriteByte(name[i])
	}
	return b.String()
}

// Normalize converts OS separators to `/`, drops leading "./" and "/" and
// trailing "/" and collapses repeated separators.
func Normalize(p string) string {
	p = filepath.ToSlash(p)
	for strings.Contains(p, "//") {
		p = strings.ReplaceAll(p, "//", "/")
	}
	for strings.HasPrefix(p, "./") {
		p = p[2:]
	}
	p = strings.TrimPrefix(p, "/")
	p = strings.TrimSuffix(p, "/")
	return p
}

// Validate checks that p is a well formed glob
func Validate(p string) error {
	if p == "" {
		return errors.New(errors.ErrInvalidPattern, "empty pattern")
	}
	if !doublestar.ValidatePattern(p) {
		return errors.Newf(errors.ErrInvalidPattern, "malformed pattern %q", p).
			WithDetail("pattern", p)
	}
	return nil
}

// Translate converts a glob to a regular expression body without anchors.
// `*` never crosses a `/`; in path mode `**` does (`**/` matches zero or
// more leading directories).
func Translate(pat string, pathMode bool) string {
	var b strings.Builder
	depth := 0

	for i := 0; i < len(pat); i++ {
		c := pat[i]
		switch c {
		case '\\':
			if i+1 < len(pat) {
				i++
				b.WriteString(regexp.QuoteMeta(pat[i : i+1]))
			} else {
				b.WriteString(`\\`)
			}
		case '*':
			j := i
			for j+1 < len(pat) && pat[j+1] == '*' {
				j++
			}
			double := j > i
			i = j
			if !pathMode || !double {
				b.WriteString(`[^/]*`)
				continue
			}
			if i+1 < len(pat) && pat[i+1] == '/' {
				b.WriteString(`(?:.*/)?`)
				i++
			} else {
				b.WriteString(`.*`)
			}
		case '?':
			b.WriteString(`[^/]`)
		case '[':
			if next, ok := appendClass(pat, i, &b); ok {
				i = next
			} else {
				b.WriteString(`\[`)
			}
		case '{':
			depth++
			b.WriteString(`(?:`)
		case '}':
			if depth > 0 {
				depth--
				b.WriteString(`)`)
			} else {
				b.WriteString(`\}`)
			}
		case ',':
			if depth > 0 {
				b.WriteString(`|`)
			} else {
				b.WriteByte(',')
			}
		default:
			b.WriteString(regexp.QuoteMeta(string(c)))
		}
	}

	for ; depth > 0; depth-- {
		b.WriteString(`)`)
	}

	return b.String()
}

// appendClass writes the character class starting at pat[start] and returns
// the index of its closing bracket.
func appendClass(pat string, start int, b *strings.Builder) (int, bool) {
	end := findClassEnd(pat, start)
	if end < 0 {
		return start, false
	}

	b.WriteByte('[')
	i := start + 1
	if i < end && (pat[i] == '!' || pat[i] == '^') {
		b.WriteByte('^')
		i++
	}
	if i < end && pat[i] == ']' {
		b.WriteString(`\]`)
		i++
	}

	for ; i < end; i++ {
		switch c := pat[i]; c {
		case '\\':
			if i+1 < end {
				i++
				b.WriteString(regexp.QuoteMeta(pat[i : i+1]))
			} else {
				b.WriteString(`\\`)
			}
		case '[', ']', '^':
			b.WriteByte('\\')
			b.WriteByte(c)
		default:
			b.WriteByte(c)
		}
	}

	b.WriteByte(']')
	return end, true
}

func findClassEnd(pat string, start int) int {
	i := start + 1
	if i < len(pat) && (pat[i] == '!' || pat[i] == '^') {
		i++
	}
	if i < len(pat) && pat[i] == ']' {
		i++
	}
	for i < len(pat) {
		switch pat[i] {
		case '\\':
			i += 2
			continue
		case ']':
			return i
		}
		i++
	}
	return -1
}

// compileAlternation joins regexp bodies into one case-insensitive regexp.
// It returns nil for an empty list; a nil regexp matches nothing.
func compileAlternation(bodies []string) (*regexp.Regexp, error) {
	if len(bodies) == 0 {
		return nil, nil
	}
	parts := make([]string, len(bodies))
	for i, body := range bodies {
		parts[i] = "(?:" + body + ")"
	}
	re, err := regexp.Compile("(?i)" + strings.Join(parts, "|"))
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInvalidPattern, "failed to compile patterns")
	}
	return re, nil
}
