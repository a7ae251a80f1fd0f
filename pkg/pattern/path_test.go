package pattern

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompilePaths(t *testing.T) {
	dirs := []string{"a", "a/b", "docs"}

	tests := []struct {
		name      string
		includes  []string
		excludes  []string
		recursive bool
		matches   []string
		misses    []string
	}{
		{
			name:      "recursive name glob at any depth",
			includes:  []string{"*.py"},
			recursive: true,
			matches:   []string{"x.py", "a/x.py", "a/b/y.py"},
			misses:    []string{"a/z.txt"},
		},
		{
			name:     "non-recursive stays at top level",
			includes: []string{"*.py"},
			matches:  []string{"x.py"},
			misses:   []string{"a/x.py"},
		},
		{
			name:     "non-recursive directory widens to children",
			includes: []string{"a"},
			matches:  []string{"a", "a/", "a/x.py", "a/b/"},
			misses:   []string{"a/b/y.py", "ab"},
		},
		{
			name:      "recursive directory widens to subtree",
			includes:  []string{"b"},
			recursive: true,
			matches:   []string{"a/b/", "a/b/y.py", "a/b/c/d"},
			misses:    []string{"a/x.py"},
		},
		{
			name:      "exclude removes subtree",
			includes:  []string{"*"},
			excludes:  []string{"b"},
			recursive: true,
			matches:   []string{"a/x.py", "a/"},
			misses:    []string{"a/b/", "a/b/y.py"},
		},
		{
			name:      "exclude name glob",
			includes:  []string{"*"},
			excludes:  []string{"*.txt"},
			recursive: true,
			matches:   []string{"a/x.py"},
			misses:    []string{"a/z.txt", "Z.TXT"},
		},
		{
			name:     "include with separator",
			includes: []string{"a/*.py"},
			matches:  []string{"a/x.py"},
			misses:   []string{"a/b/y.py", "x.py"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := CompilePaths(tt.includes, tt.excludes, dirs, tt.recursive)
			require.NoError(t, err)
			for _, name := range tt.matches {
				assert.True(t, m.Match(name), "expected %q to match", name)
			}
			for _, name := range tt.misses {
				assert.False(t, m.Match(name), "expected %q not to match", name)
			}
		})
	}
}

func TestCompilePathsEmptyIncludes(t *testing.T) {
	m, err := CompilePaths(nil, nil, nil, true)
	require.NoError(t, err)
	assert.False(t, m.Match("x"))
}
