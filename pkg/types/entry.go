package types

import "fmt"

// FileEntry is one result of an enumeration: a resolved path and whether it
// names a directory. Entries are never mutated after being yielded.
type FileEntry struct {
	Path  string `json:"path" yaml:"path"`
	IsDir bool   `json:"is_dir" yaml:"is_dir"`
}

// String returns the entry path
func (e FileEntry) String() string {
	return e.Path
}

// FolderMode selects which include matches are yielded
type FolderMode int

const (
	// FilesOnly yields files and never directories
	FilesOnly FolderMode = 0
	// FilesAndFolders yields both files and directories
	FilesAndFolders FolderMode = 1
	// FoldersOnly yields directories and never files
	FoldersOnly FolderMode = 2
)

// Accepts reports whether an include match of the given kind is yielded.
func (m FolderMode) Accepts(isDir bool) bool {
	switch m {
	case FilesAndFolders:
		return true
	case FoldersOnly:
		return isDir
	default:
		return !isDir
	}
}

// Valid reports whether m is one of the three known modes
func (m FolderMode) Valid() bool {
	return m >= FilesOnly && m <= FoldersOnly
}

// String returns a human readable name
func (m FolderMode) String() string {
	switch m {
	case FilesOnly:
		return "files"
	case FilesAndFolders:
		return "files+folders"
	case FoldersOnly:
		return "folders"
	default:
		return fmt.Sprintf("FolderMode(%d)", int(m))
	}
}
