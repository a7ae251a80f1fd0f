package pattern

import (
	"regexp"
	"testing"

	"github.com/arthur-debert/ngofile/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTranslateComponent(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		matches []string
		misses  []string
	}{
		{
			name:    "star",
			pattern: "*.py",
			matches: []string{"a.py", ".py", "A.PY"},
			misses:  []string{"a.pyc", "dir/a.py"},
		},
		{
			name:    "question mark",
			pattern: "?.txt",
			matches: []string{"a.txt", "é.txt"},
			misses:  []string{"ab.txt", ".txt"},
		},
		{
			name:    "class",
			pattern: "file[0-9]",
			matches: []string{"file1", "FILE9"},
			misses:  []string{"filea", "file10"},
		},
		{
			name:    "negated class",
			pattern: "[!a]*",
			matches: []string{"bcd", "z"},
			misses:  []string{"abc", "Abc"},
		},
		{
			name:    "leading bracket in class",
			pattern: "[]x]",
			matches: []string{"]", "x"},
			misses:  []string{"y"},
		},
		{
			name:    "unterminated class is literal",
			pattern: "a[b",
			matches: []string{"a[b"},
			misses:  []string{"ab"},
		},
		{
			name:    "alternatives",
			pattern: "*.{go,mod}",
			matches: []string{"main.go", "go.mod"},
			misses:  []string{"go.sum"},
		},
		{
			name:    "escape",
			pattern: `a\*b`,
			matches: []string{"a*b"},
			misses:  []string{"axb"},
		},
		{
			name:    "regexp metacharacters are literal",
			pattern: "a+b(1).txt",
			matches: []string{"a+b(1).txt"},
			misses:  []string{"aab1.txt"},
		},
		{
			name:    "double star in component mode stays in segment",
			pattern: "**",
			matches: []string{"anything"},
			misses:  []string{"a/b"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			re := regexp.MustCompile("(?i)^" + Translate(tt.pattern, false) + "$")
			for _, m := range tt.matches {
				assert.True(t, re.MatchString(m), "%q should match %q", tt.pattern, m)
			}
			for _, m := range tt.misses {
				assert.False(t, re.MatchString(m), "%q should not match %q", tt.pattern, m)
			}
		})
	}
}

func TestTranslatePath(t *testing.T) {
	re := regexp.MustCompile("^" + Translate("**/*.go", true) + "$")
	assert.True(t, re.MatchString("main.go"))
	assert.True(t, re.MatchString("a/b/main.go"))
	assert.False(t, re.MatchString("a/b/main.c"))

	re = regexp.MustCompile("^" + Translate("a/**", true) + "$")
	assert.True(t, re.MatchString("a/b/c"))
	assert.False(t, re.MatchString("b/c"))
}

func TestEscape(t *testing.T) {
	names := []string{"plain", "weird*name", "q?", "[x]", "{a,b}", `back\slash`}
	for _, name := range names {
		t.Run(name, func(t *testing.T) {
			escaped := Escape(name)
			require.NoError(t, Validate(escaped))
			m, err := Compile([]string{escaped}, nil)
			require.NoError(t, err)
			assert.True(t, m.Match(name))
		})
	}

	m, err := Compile([]string{Escape("a*")}, nil)
	require.NoError(t, err)
	assert.False(t, m.Match("abc"))
}

func TestHasMeta(t *testing.T) {
	assert.True(t, HasMeta("*.go"))
	assert.True(t, HasMeta("a?"))
	assert.True(t, HasMeta("[ab]"))
	assert.True(t, HasMeta("{a,b}"))
	assert.False(t, HasMeta("plain.txt"))
}

func TestNormalize(t *testing.T) {
	tests := map[string]string{
		"*.go":       "*.go",
		"./*.go":     "*.go",
		"././a/b":    "a/b",
		"/abs/x":     "abs/x",
		"dir/":       "dir",
		"a//b///c":   "a/b/c",
		"**/build/":  "**/build",
		"sub/*.data": "sub/*.data",
	}
	for in, want := range tests {
		assert.Equal(t, want, Normalize(in), in)
	}
}

func TestValidate(t *testing.T) {
	assert.NoError(t, Validate("*.go"))
	assert.NoError(t, Validate("**/x/[a-z]?"))

	err := Validate("")
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidPattern))

	err = Validate("{a,b")
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidPattern))
	assert.Equal(t, "{a,b", errors.GetErrorDetails(err)["pattern"])
}
