package walker

import (
	"iter"

	"github.com/arthur-debert/ngofile/pkg/types"
)

// Collect drains s into a slice and closes it
func Collect(s types.Stream) ([]types.FileEntry, error) {
	defer func() { _ = s.Close() }()

	var entries []types.FileEntry
	for s.Next() {
		entries = append(entries, s.Entry())
	}
	return entries, s.Err()
}

// Paths drains s and returns the entry paths, nil when s is empty
func Paths(s types.Stream) ([]string, error) {
	entries, err := Collect(s)
	if err != nil {
		return nil, err
	}
	var paths []string
	for _, e := range entries {
		paths = append(paths, e.Path)
	}
	return paths, nil
}

// First returns the first entry of s, or nil when s is empty. s is closed.
func First(s types.Stream) (*types.FileEntry, error) {
	defer func() { _ = s.Close() }()

	if s.Next() {
		e := s.Entry()
		return &e, nil
	}
	return nil, s.Err()
}

// All adapts s for range-over-func. The stream is closed when the loop
// ends; a stream error is delivered as the final pair.
func All(s types.Stream) iter.Seq2[types.FileEntry, error] {
	return func(yield func(types.FileEntry, error) bool) {
		defer func() { _ = s.Close() }()
		for s.Next() {
			if !yield(s.Entry(), nil) {
				return
			}
		}
		if err := s.Err(); err != nil {
			yield(types.FileEntry{}, err)
		}
	}
}

// Empty returns a stream without entries
func Empty() types.Stream {
	return &concatStream{}
}

type concatStream struct {
	streams []types.Stream
	current types.FileEntry
	err     error
}

// Concat yields the entries of each stream in turn. The first error stops
// the whole sequence.
func Concat(streams ...types.Stream) types.Stream {
	return &concatStream{streams: streams}
}

func (c *concatStream) Next() bool {
	for len(c.streams) > 0 && c.err == nil {
		s := c.streams[0]
		if s.Next() {
			c.current = s.Entry()
			return true
		}
		c.err = s.Err()
		_ = s.Close()
		c.streams = c.streams[1:]
	}
	return false
}

func (c *concatStream) Entry() types.FileEntry { return c.current }

func (c *concatStream) Err() error { return c.err }

func (c *concatStream) Close() error {
	for _, s := range c.streams {
		_ = s.Close()
	}
	c.streams = nil
	return nil
}

type countingStream struct {
	types.Stream
	n        int
	done     func(n int)
	reported bool
}

// Counting wraps s and calls done with the number of entries produced once
// s is exhausted without error. Abandoned streams do not report.
func Counting(s types.Stream, done func(n int)) types.Stream {
	return &countingStream{Stream: s, done: done}
}

func (c *countingStream) Next() bool {
	if c.Stream.Next() {
		c.n++
		return true
	}
	if !c.reported && c.Stream.Err() == nil {
		c.reported = true
		c.done(c.n)
	}
	return false
}

type lazyStream struct {
	open   func() (types.Stream, error)
	stream types.Stream
	err    error
	closed bool
}

// Lazy defers creating a stream until its first Next
func Lazy(open func() (types.Stream, error)) types.Stream {
	return &lazyStream{open: open}
}

func (l *lazyStream) Next() bool {
	if l.closed || l.err != nil {
		return false
	}
	if l.stream == nil {
		l.stream, l.err = l.open()
		if l.err != nil {
			return false
		}
	}
	return l.stream.Next()
}

func (l *lazyStream) Entry() types.FileEntry {
	if l.stream == nil {
		return types.FileEntry{}
	}
	return l.stream.Entry()
}

func (l *lazyStream) Err() error {
	if l.err != nil {
		return l.err
	}
	if l.stream == nil {
		return nil
	}
	return l.stream.Err()
}

func (l *lazyStream) Close() error {
	l.closed = true
	if l.stream != nil {
		return l.stream.Close()
	}
	return nil
}

type sliceStream struct {
	entries []types.FileEntry
	pos     int
}

// FromSlice returns a stream over entries
func FromSlice(entries []types.FileEntry) types.Stream {
	return &sliceStream{entries: entries, pos: -1}
}

func (s *sliceStream) Next() bool {
	if s.pos+1 >= len(s.entries) {
		s.pos = len(s.entries)
		return false
	}
	s.pos++
	return true
}

func (s *sliceStream) Entry() types.FileEntry {
	if s.pos < 0 || s.pos >= len(s.entries) {
		return types.FileEntry{}
	}
	return s.entries[s.pos]
}

func (s *sliceStream) Err() error { return nil }

func (s *sliceStream) Close() error {
	s.pos = len(s.entries)
	return nil
}
