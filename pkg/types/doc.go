// Package types defines the core types and interfaces shared by the
// enumeration packages: the FS abstraction, the FileEntry values produced by
// walks, the folder inclusion policy and the Stream interface every lazy
// result sequence implements.
package types
