package pattern

import (
	"testing"

	"github.com/arthur-debert/ngofile/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSet(t *testing.T) {
	t.Run("defaults include to star", func(t *testing.T) {
		s, err := NewSet(nil, nil)
		require.NoError(t, err)
		assert.Equal(t, []string{"*"}, s.Includes())
		assert.Empty(t, s.Excludes())
	})

	t.Run("dedupes keeping order", func(t *testing.T) {
		s, err := NewSet([]string{"*.b", "*.a", "*.b", "./*.a"}, []string{"x", "x"})
		require.NoError(t, err)
		assert.Equal(t, []string{"*.b", "*.a"}, s.Includes())
		assert.Equal(t, []string{"x"}, s.Excludes())
	})

	t.Run("rejects malformed patterns", func(t *testing.T) {
		_, err := NewSet([]string{"{a"}, nil)
		assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidPattern))

		_, err = NewSet(nil, []string{""})
		assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidPattern))
	})

	t.Run("accessors return copies", func(t *testing.T) {
		s := MustNewSet([]string{"*.a"}, nil)
		inc := s.Includes()
		inc[0] = "changed"
		assert.Equal(t, []string{"*.a"}, s.Includes())
	})
}

func TestSetLocal(t *testing.T) {
	s := MustNewSet(
		[]string{"*.txt", "sub/*.data", "**/*.md"},
		[]string{"tmp", "sub/skip", "**/cache"},
	)

	inc, exc := s.Local()
	assert.Equal(t, []string{"*.txt", "*.md"}, inc)
	assert.Equal(t, []string{"tmp", "cache"}, exc)
}

func TestSetRoute(t *testing.T) {
	s := MustNewSet(
		[]string{"*.txt", "sub/*.data", "s*/x/*.bin", "**/*.md"},
		[]string{"sub/skip"},
	)

	t.Run("literal prefix is case-insensitive", func(t *testing.T) {
		inc, exc := s.Route("SUB")
		assert.Equal(t, []string{"*.data", "x/*.bin", "**/*.md"}, inc)
		assert.Equal(t, []string{"skip"}, exc)
	})

	t.Run("glob prefix", func(t *testing.T) {
		inc, exc := s.Route("src")
		assert.Equal(t, []string{"x/*.bin", "**/*.md"}, inc)
		assert.Empty(t, exc)
	})

	t.Run("double star routes everywhere", func(t *testing.T) {
		inc, _ := s.Route("other")
		assert.Equal(t, []string{"**/*.md"}, inc)
	})
}

func TestSetChild(t *testing.T) {
	t.Run("non-recursive without routes does not descend", func(t *testing.T) {
		s := MustNewSet([]string{"*.txt"}, []string{"sub/skip"})
		_, ok := s.Child("sub", false)
		assert.False(t, ok)
	})

	t.Run("non-recursive routed include", func(t *testing.T) {
		s := MustNewSet([]string{"*.txt", "sub/*.data"}, []string{"*.tmp"})
		child, ok := s.Child("sub", false)
		require.True(t, ok)
		assert.Equal(t, []string{"*.data"}, child.Includes())
		assert.Equal(t, []string{"*.tmp"}, child.Excludes())

		_, ok = s.Child("other", false)
		assert.False(t, ok)
	})

	t.Run("recursive carries the full set", func(t *testing.T) {
		s := MustNewSet([]string{"*.txt", "sub/*.data"}, []string{"sub/skip"})
		child, ok := s.Child("sub", true)
		require.True(t, ok)
		assert.Equal(t, []string{"*.txt", "sub/*.data", "*.data"}, child.Includes())
		assert.Equal(t, []string{"sub/skip", "skip"}, child.Excludes())

		inc, exc := child.Local()
		assert.Equal(t, []string{"*.txt", "*.data"}, inc)
		assert.Equal(t, []string{"skip"}, exc)
	})

	t.Run("double star descends without recursion", func(t *testing.T) {
		s := MustNewSet([]string{"**/*.md"}, nil)
		child, ok := s.Child("deep", false)
		require.True(t, ok)
		grandchild, ok := child.Child("deeper", false)
		require.True(t, ok)
		inc, _ := grandchild.Local()
		assert.Equal(t, []string{"*.md"}, inc)
	})
}

func TestSetWithExcludes(t *testing.T) {
	s := MustNewSet(nil, []string{"a"})
	s2, err := s.WithExcludes(Escape("b*"))
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, s.Excludes())
	assert.Equal(t, []string{"a", `b\*`}, s2.Excludes())

	m, err := s2.Matcher()
	require.NoError(t, err)
	assert.True(t, m.Excluded("b*"))
	assert.False(t, m.Excluded("bc"))
}
