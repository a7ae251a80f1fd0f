// Package walker enumerates files below a root directory that match a
// pattern.Set.
//
// A walk is a lazy Iterator: it holds an explicit stack of directory
// frames, reads one directory listing per open level and yields entries as
// the caller pulls them. Stopping early costs nothing; Reset starts over.
//
// Results inside a directory follow the listing order (sorted by name).
// A directory that is itself a hit is yielded after everything found
// inside it.
//
// List is the entry point for user supplied sources: a source containing a
// wildcard ("src/*.go") is split into a root and an extra include before
// walking.
package walker
