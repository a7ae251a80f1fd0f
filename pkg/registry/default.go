package registry

import (
	"sync"

	"github.com/arthur-debert/ngofile/pkg/filesystem"
)

var (
	defaultOnce     sync.Once
	defaultRegistry *PathRegistry
)

// Default returns the process-wide registry over the real filesystem.
// It starts empty.
func Default() *PathRegistry {
	defaultOnce.Do(func() {
		defaultRegistry = New(filesystem.NewOS())
	})
	return defaultRegistry
}
