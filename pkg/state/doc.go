// Package state persists registry roots and their hit counts between runs.
//
// The state file is TOML:
//
//	[[roots]]
//	path = "/home/me/projects"
//	hits = 12
//
// Writes are atomic (temp file + rename) and, on the real filesystem,
// serialised across processes with an advisory lock on "<path>.lock".
package state
