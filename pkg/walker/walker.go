package walker

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/ngofile/pkg/errors"
	"github.com/arthur-debert/ngofile/pkg/filesystem"
	"github.com/arthur-debert/ngofile/pkg/logging"
	"github.com/arthur-debert/ngofile/pkg/pattern"
	"github.com/arthur-debert/ngofile/pkg/types"
	"github.com/rs/zerolog"
)

// Options control a walk
type Options struct {
	// Recursive enters every subdirectory, not only those a
	// segment-split include routes into.
	Recursive bool
	// InParents repeats the walk on each ancestor of the root up to the
	// filesystem root, skipping the child already searched.
	InParents bool
	// FolderMode selects which kinds of include matches are yielded.
	FolderMode types.FolderMode
	// IgnoreMissing turns a missing root into an empty result.
	IgnoreMissing bool
}

// Walker enumerates directory trees on a filesystem
type Walker struct {
	fs     types.FS
	logger zerolog.Logger
}

// New creates a Walker over fs
func New(fs types.FS) *Walker {
	return &Walker{
		fs:     fs,
		logger: logging.GetLogger("walker"),
	}
}

// NewOS creates a Walker over the real filesystem
func NewOS() *Walker {
	return New(filesystem.NewOS())
}

// FS returns the filesystem the walker reads
func (w *Walker) FS() types.FS {
	return w.fs
}

// Walk starts enumerating root with the given patterns.
//
// A missing root fails with NotExistingPath unless opts.IgnoreMissing is
// set. A root that is a file yields exactly that file. The root directory
// is read before Walk returns, so an unreadable root fails here with
// NotADirectory rather than later through the stream.
func (w *Walker) Walk(root string, set pattern.Set, opts Options) (*Iterator, error) {
	if !opts.FolderMode.Valid() {
		return nil, errors.Newf(errors.ErrInvalidInput, "invalid folder mode %d", int(opts.FolderMode))
	}
	if set.IsZero() {
		set = pattern.MustNewSet(nil, nil)
	}

	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "failed to resolve %s", root).
			WithDetail("path", root)
	}

	info, err := w.fs.Stat(abs)
	if err != nil {
		if os.IsNotExist(err) {
			if opts.IgnoreMissing {
				w.logger.Debug().Str("root", abs).Msg("Ignoring missing root")
				return &Iterator{w: w, root: abs, done: true}, nil
			}
			return nil, errors.NotExistingPath(abs, err)
		}
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "failed to stat %s", abs).
			WithDetail("path", abs)
	}

	it := &Iterator{
		w:    w,
		root: abs,
		opts: opts,
	}
	if !info.IsDir() {
		it.single = &types.FileEntry{Path: abs}
	} else {
		it.levels, err = levelsFor(abs, set, opts.InParents)
		if err != nil {
			return nil, err
		}
	}

	if err := it.start(); err != nil {
		return nil, err
	}
	return it, nil
}

// levelsFor lists the directories a walk visits in order: the root, then
// with inParents every ancestor with the previously searched child
// excluded by its literal name.
func levelsFor(root string, set pattern.Set, inParents bool) ([]level, error) {
	levels := []level{{dir: root, set: set}}
	if !inParents {
		return levels, nil
	}

	current := root
	for {
		parent := filepath.Dir(current)
		if parent == current {
			break
		}
		parentSet, err := set.WithExcludes(pattern.Escape(filepath.Base(current)))
		if err != nil {
			return nil, err
		}
		levels = append(levels, level{dir: parent, set: parentSet})
		current = parent
	}
	return levels, nil
}

// Resolve splits source like SplitSource, except that a source naming an
// existing path is always literal, so "report[1].txt" on disk is the file
// and not a character class.
func (w *Walker) Resolve(source string) (root, include string, wild bool) {
	root, include, wild = SplitSource(source)
	if !wild {
		return root, include, wild
	}
	if abs, err := filepath.Abs(source); err == nil {
		if _, err := w.fs.Stat(abs); err == nil {
			return source, "", false
		}
	}
	return root, include, wild
}

// List enumerates a user supplied source. A source holding a wildcard is
// split into its directory and an include; see Resolve. Empty includes
// mean "*".
func (w *Walker) List(source string, includes, excludes []string, opts Options) (*Iterator, error) {
	root, extra, wild := w.Resolve(source)
	if wild {
		if len(includes) == 0 {
			includes = []string{extra}
		} else {
			includes = append(append([]string(nil), includes...), extra)
		}
	}

	set, err := pattern.NewSet(includes, excludes)
	if err != nil {
		return nil, err
	}

	w.logger.Debug().
		Str("source", source).
		Str("root", root).
		Strs("includes", set.Includes()).
		Strs("excludes", set.Excludes()).
		Bool("recursive", opts.Recursive).
		Msg("Listing source")

	return w.Walk(root, set, opts)
}

// ListBatch enumerates several sources one after another. Every source is
// checked before the first entry is produced.
func (w *Walker) ListBatch(sources []string, includes, excludes []string, opts Options) (types.Stream, error) {
	streams := make([]types.Stream, 0, len(sources))
	for _, source := range sources {
		it, err := w.List(source, includes, excludes, opts)
		if err != nil {
			for _, s := range streams {
				_ = s.Close()
			}
			return nil, err
		}
		streams = append(streams, it)
	}
	return Concat(streams...), nil
}

// List enumerates source on the real filesystem
func List(source string, includes, excludes []string, opts Options) (*Iterator, error) {
	return NewOS().List(source, includes, excludes, opts)
}

// ListBatch enumerates several sources on the real filesystem
func ListBatch(sources []string, includes, excludes []string, opts Options) (types.Stream, error) {
	return NewOS().ListBatch(sources, includes, excludes, opts)
}

// SplitSource separates a wildcard source into the directory to walk and
// the include pattern it implies. The split happens at the last separator
// before the first glob metacharacter; an empty directory becomes ".".
// Sources without metacharacters are returned unchanged with wild false.
func SplitSource(source string) (root, include string, wild bool) {
	s := filepath.ToSlash(source)
	idx := strings.IndexAny(s, "*?[{")
	if idx < 0 {
		return source, "", false
	}

	slash := strings.LastIndex(s[:idx], "/")
	switch {
	case slash < 0:
		return ".", s, true
	case slash == 0:
		return "/", s[1:], true
	default:
		return filepath.FromSlash(s[:slash]), s[slash+1:], true
	}
}
