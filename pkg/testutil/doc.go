// Package testutil provides helpers for tests that need a directory tree,
// either on disk under t.TempDir or on an in-memory filesystem.
//
// Trees are declared inline as nested FileTree maps: a string value is a
// file with that content, a FileTree value is a directory.
package testutil
