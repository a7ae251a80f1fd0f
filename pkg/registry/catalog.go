package registry

import (
	"github.com/arthur-debert/ngofile/pkg/types"
)

// Catalog holds named PathRegistries
type Catalog struct {
	fs         types.FS
	registries Named[*PathRegistry]
}

// NewCatalog creates an empty catalog over fs
func NewCatalog(fs types.FS) *Catalog {
	return &Catalog{
		fs:         fs,
		registries: NewNamed[*PathRegistry](),
	}
}

// Define creates a registry named name holding roots
func (c *Catalog) Define(name string, roots ...string) (*PathRegistry, error) {
	reg := New(c.fs, roots...)
	if err := c.registries.Register(name, reg); err != nil {
		return nil, err
	}
	return reg, nil
}

// DefineAll creates one registry per entry of searchPaths
func (c *Catalog) DefineAll(searchPaths map[string][]string) error {
	for name, roots := range searchPaths {
		if _, err := c.Define(name, roots...); err != nil {
			return err
		}
	}
	return nil
}

// Get returns the registry named name
func (c *Catalog) Get(name string) (*PathRegistry, error) {
	return c.registries.Get(name)
}

// Names returns the defined names, sorted
func (c *Catalog) Names() []string {
	return c.registries.Names()
}

// Remove drops the registry named name
func (c *Catalog) Remove(name string) error {
	return c.registries.Remove(name)
}
