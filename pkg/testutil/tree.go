package testutil

import (
	"path/filepath"
	"sort"
	"testing"

	"github.com/arthur-debert/ngofile/pkg/filesystem"
	"github.com/arthur-debert/ngofile/pkg/types"
)

// FileTree represents a directory structure for testing
type FileTree map[string]interface{}

// WriteTree creates tree under basePath on fs
func WriteTree(t *testing.T, fs types.FS, basePath string, tree FileTree) {
	t.Helper()

	if err := fs.MkdirAll(basePath, 0755); err != nil {
		t.Fatalf("Failed to create directory %s: %v", basePath, err)
	}
	for name, content := range tree {
		fullPath := filepath.Join(basePath, name)

		switch v := content.(type) {
		case string:
			if err := fs.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
				t.Fatalf("Failed to create directory %s: %v", filepath.Dir(fullPath), err)
			}
			if err := fs.WriteFile(fullPath, []byte(v), 0644); err != nil {
				t.Fatalf("Failed to write file %s: %v", fullPath, err)
			}
		case FileTree:
			WriteTree(t, fs, fullPath, v)
		default:
			t.Fatalf("Invalid file tree content type for %s: %T", name, content)
		}
	}
}

// DiskTree writes tree into a new temp directory and returns its path
func DiskTree(t *testing.T, tree FileTree) string {
	t.Helper()

	dir := t.TempDir()
	WriteTree(t, filesystem.NewOS(), dir, tree)
	return dir
}

// MemoryTree writes tree under basePath on a fresh in-memory filesystem
func MemoryTree(t *testing.T, basePath string, tree FileTree) types.FS {
	t.Helper()

	fs := filesystem.NewMemory()
	WriteTree(t, fs, basePath, tree)
	return fs
}

// Files lists the file paths tree declares, relative and sorted
func (tree FileTree) Files() []string {
	var out []string
	var walk func(prefix string, tr FileTree)
	walk = func(prefix string, tr FileTree) {
		for name, content := range tr {
			p := filepath.ToSlash(filepath.Join(prefix, name))
			switch v := content.(type) {
			case string:
				out = append(out, p)
			case FileTree:
				walk(p, v)
			}
		}
	}
	walk("", tree)
	sort.Strings(out)
	return out
}
