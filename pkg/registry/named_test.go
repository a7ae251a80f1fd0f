package registry

import (
	"fmt"
	"sync"
	"testing"

	"github.com/arthur-debert/ngofile/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type searchPath struct {
	Name  string
	Roots []string
}

func TestNamedRegister(t *testing.T) {
	n := NewNamed[searchPath]()

	require.NoError(t, n.Register("docs", searchPath{Name: "docs"}))
	assert.Equal(t, 1, n.Count())

	err := n.Register("", searchPath{})
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))

	err = n.Register("docs", searchPath{Name: "again"})
	assert.True(t, errors.IsErrorCode(err, errors.ErrAlreadyExists))
	assert.Equal(t, "docs", errors.GetErrorDetails(err)["name"])
}

func TestNamedPut(t *testing.T) {
	n := NewNamed[searchPath]()
	require.NoError(t, n.Put("docs", searchPath{Name: "first"}))
	require.NoError(t, n.Put("docs", searchPath{Name: "second"}))

	got, err := n.Get("docs")
	require.NoError(t, err)
	assert.Equal(t, "second", got.Name)

	assert.True(t, errors.IsErrorCode(n.Put("", searchPath{}), errors.ErrInvalidInput))
}

func TestNamedGetRemove(t *testing.T) {
	n := NewNamed[searchPath]()
	require.NoError(t, n.Register("docs", searchPath{Name: "docs", Roots: []string{"/a"}}))

	got, err := n.Get("docs")
	require.NoError(t, err)
	assert.Equal(t, []string{"/a"}, got.Roots)

	_, err = n.Get("missing")
	assert.True(t, errors.IsErrorCode(err, errors.ErrNotFound))

	require.NoError(t, n.Remove("docs"))
	assert.False(t, n.Has("docs"))
	assert.True(t, errors.IsErrorCode(n.Remove("docs"), errors.ErrNotFound))
}

func TestNamedNamesAndClear(t *testing.T) {
	n := NewNamed[int]()
	for i, name := range []string{"zeta", "alpha", "mid"} {
		require.NoError(t, n.Register(name, i))
	}
	assert.Equal(t, []string{"alpha", "mid", "zeta"}, n.Names())

	n.Clear()
	assert.Equal(t, 0, n.Count())
	assert.Empty(t, n.Names())
}

func TestNamedConcurrency(t *testing.T) {
	n := NewNamed[int]()
	const goroutines = 10
	const perGoroutine = 100

	var wg sync.WaitGroup
	wg.Add(goroutines)
	for g := 0; g < goroutines; g++ {
		go func(id int) {
			defer wg.Done()
			for i := 0; i < perGoroutine; i++ {
				assert.NoError(t, n.Register(fmt.Sprintf("g%d_%d", id, i), i))
			}
		}(g)
	}
	wg.Wait()
	assert.Equal(t, goroutines*perGoroutine, n.Count())

	wg.Add(goroutines)
	for g := 0; g < goroutines; g++ {
		go func(id int) {
			defer wg.Done()
			for i := 0; i < perGoroutine; i++ {
				got, err := n.Get(fmt.Sprintf("g%d_%d", id, i))
				assert.NoError(t, err)
				assert.Equal(t, i, got)
			}
		}(g)
	}
	wg.Wait()
}

func TestMustHelpers(t *testing.T) {
	n := NewNamed[string]()
	MustRegister(n, "a", "value")
	assert.Equal(t, "value", MustGet(n, "a"))

	assert.Panics(t, func() { MustRegister(n, "a", "again") })
	assert.Panics(t, func() { MustGet(n, "missing") })
}

func BenchmarkNamedGet(b *testing.B) {
	n := NewNamed[int]()
	for i := 0; i < 1000; i++ {
		_ = n.Register(fmt.Sprintf("item%d", i), i)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = n.Get(fmt.Sprintf("item%d", i%1000))
	}
}

func ExampleNamed() {
	n := NewNamed[[]string]()
	_ = n.Register("docs", []string{"/usr/share/doc"})
	_ = n.Register("config", []string{"/etc"})

	fmt.Println(n.Names())
	roots, _ := n.Get("docs")
	fmt.Println(roots)

	// Output:
	// [config docs]
	// [/usr/share/doc]
}
