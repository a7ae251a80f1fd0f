package walker

import (
	"io/fs"
	"path/filepath"

	"github.com/arthur-debert/ngofile/pkg/errors"
	"github.com/arthur-debert/ngofile/pkg/pattern"
	"github.com/arthur-debert/ngofile/pkg/types"
)

// level is one top-level directory of a walk: the root itself, or an
// ancestor when walking in parents.
type level struct {
	dir string
	set pattern.Set
}

// frame is an open directory on the walk stack
type frame struct {
	dir     string
	set     pattern.Set
	matcher *pattern.Matcher
	entries []fs.DirEntry
	pos     int
	hits    int
	// pending is the frame's own directory when it is a hit in its
	// parent; it is yielded once the frame is exhausted.
	pending *types.FileEntry
	parent  *frame
}

// Iterator is a lazy walk over one root. It implements types.Stream.
type Iterator struct {
	w      *Walker
	root   string
	opts   Options
	single *types.FileEntry
	levels []level

	next    int
	stack   []*frame
	current types.FileEntry
	count   int
	err     error
	done    bool
}

var _ types.Stream = (*Iterator)(nil)

// Root returns the absolute root of the walk
func (it *Iterator) Root() string {
	return it.root
}

// start opens the first level so root errors surface from Walk
func (it *Iterator) start() error {
	if it.single != nil || len(it.levels) == 0 {
		return nil
	}
	f, err := it.open(it.levels[0].dir, it.levels[0].set, nil)
	if err != nil {
		return errors.NotADirectory(it.levels[0].dir, err)
	}
	it.stack = append(it.stack, f)
	it.next = 1
	return nil
}

// Reset rewinds the iterator to the beginning of the walk
func (it *Iterator) Reset() error {
	it.stack = nil
	it.next = 0
	it.count = 0
	it.err = nil
	it.current = types.FileEntry{}
	it.done = it.single == nil && len(it.levels) == 0
	if it.done {
		return nil
	}
	if err := it.start(); err != nil {
		it.done = true
		it.err = err
		return err
	}
	return nil
}

func (it *Iterator) open(dir string, set pattern.Set, parent *frame) (*frame, error) {
	matcher, err := set.Matcher()
	if err != nil {
		return nil, err
	}
	entries, err := it.w.fs.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	it.w.logger.Trace().
		Str("dir", dir).
		Int("entries", len(entries)).
		Msg("Reading directory")
	return &frame{
		dir:     dir,
		set:     set,
		matcher: matcher,
		entries: entries,
		parent:  parent,
	}, nil
}

// Next advances to the next matching entry
func (it *Iterator) Next() bool {
	if it.done {
		return false
	}

	if it.single != nil {
		if it.count > 0 {
			it.finish()
			return false
		}
		it.current = *it.single
		it.count++
		return true
	}

	for {
		if len(it.stack) == 0 {
			if it.next >= len(it.levels) {
				it.finish()
				return false
			}
			lvl := it.levels[it.next]
			it.next++
			f, err := it.open(lvl.dir, lvl.set, nil)
			if err != nil {
				// ancestors that cannot be listed are skipped
				it.w.logger.Debug().Err(err).Str("dir", lvl.dir).Msg("Skipping unreadable parent")
				continue
			}
			it.stack = append(it.stack, f)
			continue
		}

		top := it.stack[len(it.stack)-1]
		if top.pos >= len(top.entries) {
			it.stack = it.stack[:len(it.stack)-1]
			it.w.logger.Debug().
				Str("dir", top.dir).
				Int("found", top.hits).
				Msg("Directory done")
			if top.pending != nil {
				return it.yield(top.parent, *top.pending)
			}
			continue
		}

		entry := top.entries[top.pos]
		top.pos++

		name := entry.Name()
		if top.matcher.Excluded(name) {
			continue
		}

		path := filepath.Join(top.dir, name)
		isDir := entry.IsDir()
		symlink := entry.Type()&fs.ModeSymlink != 0
		if symlink {
			if info, err := it.w.fs.Stat(path); err == nil {
				isDir = info.IsDir()
			}
		}

		hit := top.matcher.Included(name) && it.opts.FolderMode.Accepts(isDir)
		found := types.FileEntry{Path: path, IsDir: isDir}

		// symlinked directories are reported but not entered
		if isDir && !symlink {
			if childSet, ok := top.set.Child(name, it.opts.Recursive); ok {
				child, err := it.open(path, childSet, top)
				if err != nil {
					it.err = errors.Wrapf(err, errors.ErrFileAccess, "failed to read directory %s", path).
						WithDetail("path", path)
					it.finish()
					return false
				}
				if hit {
					child.pending = &found
				}
				it.stack = append(it.stack, child)
				continue
			}
		}

		if hit {
			return it.yield(top, found)
		}
	}
}

func (it *Iterator) yield(owner *frame, e types.FileEntry) bool {
	if owner != nil {
		owner.hits++
	}
	it.current = e
	it.count++
	return true
}

func (it *Iterator) finish() {
	if it.done {
		return
	}
	it.done = true
	it.stack = nil
	if it.err == nil {
		it.w.logger.Info().
			Str("root", it.root).
			Int("found", it.count).
			Msg("Walk complete")
	}
}

// Entry returns the entry produced by the last call to Next
func (it *Iterator) Entry() types.FileEntry {
	return it.current
}

// Err returns the error that stopped the walk, if any
func (it *Iterator) Err() error {
	return it.err
}

// Count returns how many entries have been yielded so far
func (it *Iterator) Count() int {
	return it.count
}

// Close abandons the walk
func (it *Iterator) Close() error {
	it.done = true
	it.stack = nil
	return nil
}
