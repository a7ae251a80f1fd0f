package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/arthur-debert/ngofile/pkg/errors"
)

// Named is a thread-safe set of items addressed by name
type Named[T any] interface {
	// Register adds an item under a new name
	Register(name string, item T) error

	// Put adds or replaces an item
	Put(name string, item T) error

	// Get retrieves an item
	Get(name string) (T, error)

	// Remove deletes an item
	Remove(name string) error

	// Names returns all names, sorted
	Names() []string

	// Has reports whether name is taken
	Has(name string) bool

	// Clear removes all items
	Clear()

	// Count returns the number of items
	Count() int
}

type named[T any] struct {
	mu    sync.RWMutex
	items map[string]T
}

// NewNamed creates an empty Named collection
func NewNamed[T any]() Named[T] {
	return &named[T]{
		items: make(map[string]T),
	}
}

func (n *named[T]) Register(name string, item T) error {
	if name == "" {
		return errors.New(errors.ErrInvalidInput, "name cannot be empty")
	}

	n.mu.Lock()
	defer n.mu.Unlock()

	if _, exists := n.items[name]; exists {
		return errors.Newf(errors.ErrAlreadyExists, "'%s' is already registered", name).
			WithDetail("name", name)
	}

	n.items[name] = item
	return nil
}

func (n *named[T]) Put(name string, item T) error {
	if name == "" {
		return errors.New(errors.ErrInvalidInput, "name cannot be empty")
	}

	n.mu.Lock()
	defer n.mu.Unlock()

	n.items[name] = item
	return nil
}

func (n *named[T]) Get(name string) (T, error) {
	n.mu.RLock()
	defer n.mu.RUnlock()

	item, exists := n.items[name]
	if !exists {
		var zero T
		return zero, errors.Newf(errors.ErrNotFound, "'%s' is not registered", name).
			WithDetail("name", name)
	}
	return item, nil
}

func (n *named[T]) Remove(name string) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	if _, exists := n.items[name]; !exists {
		return errors.Newf(errors.ErrNotFound, "'%s' is not registered", name).
			WithDetail("name", name)
	}
	delete(n.items, name)
	return nil
}

func (n *named[T]) Names() []string {
	n.mu.RLock()
	defer n.mu.RUnlock()

	names := make([]string, 0, len(n.items))
	for name := range n.items {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (n *named[T]) Has(name string) bool {
	n.mu.RLock()
	defer n.mu.RUnlock()

	_, exists := n.items[name]
	return exists
}

func (n *named[T]) Clear() {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.items = make(map[string]T)
}

func (n *named[T]) Count() int {
	n.mu.RLock()
	defer n.mu.RUnlock()

	return len(n.items)
}

// MustRegister registers an item and panics on failure.
// Used where a clash is a programming error.
func MustRegister[T any](n Named[T], name string, item T) {
	if err := n.Register(name, item); err != nil {
		panic(fmt.Sprintf("failed to register %s: %v", name, err))
	}
}

// MustGet retrieves an item and panics when it is missing
func MustGet[T any](n Named[T], name string) T {
	item, err := n.Get(name)
	if err != nil {
		panic(fmt.Sprintf("failed to get %s: %v", name, err))
	}
	return item
}
