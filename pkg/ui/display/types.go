// Package display holds the command results the ui renderers know how to
// format. They are plain data so every format sees the same fields.
package display

import (
	"github.com/arthur-debert/ngofile/pkg/registry"
	"github.com/arthur-debert/ngofile/pkg/treecopy"
	"github.com/arthur-debert/ngofile/pkg/types"
)

// EntryList is the result of list, zip and find --all
type EntryList struct {
	Command string            `json:"command" yaml:"command"`
	Source  string            `json:"source" yaml:"source"`
	Entries []types.FileEntry `json:"entries" yaml:"entries"`
}

// RootList is the content of the path registry, best ranked first
type RootList struct {
	Roots []registry.Root `json:"roots" yaml:"roots"`
}

// FindResult answers a registry lookup
type FindResult struct {
	Query string `json:"query" yaml:"query"`
	Path  string `json:"path,omitempty" yaml:"path,omitempty"`
	Found bool   `json:"found" yaml:"found"`
}

// CopyFailure is one file a copy could not write
type CopyFailure struct {
	Source string `json:"source" yaml:"source"`
	Dest   string `json:"dest" yaml:"dest"`
	Error  string `json:"error" yaml:"error"`
}

// CopyResult summarises a copy command
type CopyResult struct {
	Source       string        `json:"source" yaml:"source"`
	Destinations []string      `json:"destinations" yaml:"destinations"`
	Copied       int           `json:"copied" yaml:"copied"`
	Updated      int           `json:"updated" yaml:"updated"`
	UpToDate     int           `json:"up_to_date" yaml:"up_to_date"`
	Failures     []CopyFailure `json:"failures,omitempty" yaml:"failures,omitempty"`
}

// NewCopyResult converts a treecopy result
func NewCopyResult(src string, dsts []string, res *treecopy.Result) *CopyResult {
	out := &CopyResult{Source: src, Destinations: dsts}
	if res == nil {
		return out
	}
	out.Copied = res.Copied
	out.Updated = res.Updated
	out.UpToDate = res.UpToDate
	for _, f := range res.Failures {
		msg := ""
		if f.Err != nil {
			msg = f.Err.Error()
		}
		out.Failures = append(out.Failures, CopyFailure{Source: f.Source, Dest: f.Dest, Error: msg})
	}
	return out
}

// Total is the number of files processed without failure
func (c *CopyResult) Total() int {
	return c.Copied + c.Updated + c.UpToDate
}
