// Package filesystem provides filesystem implementations for ngofile.
//
// This package contains implementations of the types.FS interface: the
// standard OS filesystem and an afero-backed one used for in-memory trees.
package filesystem
