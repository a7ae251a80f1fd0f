package registry

import (
	"path/filepath"
	"sort"
	"sync"

	"github.com/arthur-debert/ngofile/pkg/errors"
	"github.com/arthur-debert/ngofile/pkg/logging"
	"github.com/arthur-debert/ngofile/pkg/pattern"
	"github.com/arthur-debert/ngofile/pkg/types"
	"github.com/arthur-debert/ngofile/pkg/walker"
	"github.com/rs/zerolog"
)

// Root is a registered directory and the number of matches it produced
type Root struct {
	Path string `json:"path" yaml:"path" toml:"path"`
	Hits int    `json:"hits" yaml:"hits" toml:"hits"`
}

// RootStream is the lazy listing of one root
type RootStream struct {
	Root   string
	Stream types.Stream
}

// PathRegistry is an ordered set of existing root directories.
// All methods are safe for concurrent use; returned streams are not.
type PathRegistry struct {
	mu     sync.Mutex
	fs     types.FS
	walker *walker.Walker
	roots  []*Root
	logger zerolog.Logger
}

// New creates a registry over fs holding the given paths
func New(fs types.FS, paths ...string) *PathRegistry {
	r := &PathRegistry{
		fs:     fs,
		walker: walker.New(fs),
		logger: logging.GetLogger("registry"),
	}
	r.AddAll(paths)
	return r
}

// FS returns the filesystem the registry resolves against
func (r *PathRegistry) FS() types.FS {
	return r.fs
}

// Add registers path and returns how many roots were added. A wildcard
// path adds every directory it matches. Paths that do not exist or are not
// directories are dropped with a warning.
func (r *PathRegistry) Add(path string) int {
	added := 0
	for _, dir := range r.expand(path) {
		if r.insert(dir, 0) {
			added++
		}
	}
	return added
}

// AddAll registers each path in turn
func (r *PathRegistry) AddAll(paths []string) int {
	added := 0
	for _, p := range paths {
		added += r.Add(p)
	}
	return added
}

// SetRoots replaces all roots with paths; hit counts start over
func (r *PathRegistry) SetRoots(paths []string) {
	var dirs []string
	for _, p := range paths {
		dirs = append(dirs, r.expand(p)...)
	}

	r.mu.Lock()
	r.roots = nil
	r.mu.Unlock()

	for _, d := range dirs {
		r.insert(d, 0)
	}
}

// Restore adds roots keeping their recorded hit counts
func (r *PathRegistry) Restore(roots []Root) int {
	added := 0
	for _, root := range roots {
		for _, dir := range r.expand(root.Path) {
			if r.insert(dir, root.Hits) {
				added++
			}
		}
	}
	return added
}

// Clear removes all roots
func (r *PathRegistry) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.roots = nil
}

// Len returns the number of roots
func (r *PathRegistry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.roots)
}

// Roots returns a snapshot of the roots, most productive first. Ties keep
// insertion order.
func (r *PathRegistry) Roots() []Root {
	ranked := r.ranked()
	out := make([]Root, len(ranked))

	r.mu.Lock()
	defer r.mu.Unlock()
	for i, root := range ranked {
		out[i] = *root
	}
	return out
}

func (r *PathRegistry) ranked() []*Root {
	r.mu.Lock()
	defer r.mu.Unlock()

	ranked := append([]*Root(nil), r.roots...)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Hits > ranked[j].Hits
	})
	return ranked
}

func (r *PathRegistry) expand(path string) []string {
	if _, _, wild := r.walker.Resolve(path); wild {
		it, err := r.walker.List(path, nil, nil, walker.Options{FolderMode: types.FoldersOnly})
		if err != nil {
			r.logger.Warn().Err(err).Str("path", path).Msg("Dropping root pattern")
			return nil
		}
		dirs, err := walker.Paths(it)
		if err != nil {
			r.logger.Warn().Err(err).Str("path", path).Msg("Dropping root pattern")
			return nil
		}
		if len(dirs) == 0 {
			r.logger.Warn().Str("path", path).Msg("Root pattern matched no directories")
		}
		return dirs
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		r.logger.Warn().Err(err).Str("path", path).Msg("Dropping unresolvable root")
		return nil
	}
	info, err := r.fs.Stat(abs)
	if err != nil {
		r.logger.Warn().Str("path", abs).Msg("Dropping non-existent root")
		return nil
	}
	if !info.IsDir() {
		r.logger.Warn().Str("path", abs).Msg("Dropping root that is not a directory")
		return nil
	}
	return []string{abs}
}

func (r *PathRegistry) insert(dir string, hits int) bool {
	if hits < 0 {
		hits = 0
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, root := range r.roots {
		if root.Path == dir {
			return false
		}
	}
	r.roots = append(r.roots, &Root{Path: dir, Hits: hits})
	r.logger.Debug().Str("path", dir).Int("hits", hits).Msg("Added root")
	return true
}

func (r *PathRegistry) hit(root *Root) {
	r.mu.Lock()
	defer r.mu.Unlock()
	root.Hits++
}

func (r *PathRegistry) setHits(root *Root, n int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	root.Hits = n
}

// PickFirst resolves p to the first matching path. An existing path is
// returned as is, even without roots and even when its name holds glob
// characters. Otherwise each root is tried, most productive first: p is
// joined to the root and, when that does not exist and p holds a wildcard,
// walked from the root. The root that produced the match gains a hit.
// A nil entry means nothing matched.
func (r *PathRegistry) PickFirst(p string) (*types.FileEntry, error) {
	if info, err := r.fs.Stat(p); err == nil {
		abs, err := filepath.Abs(p)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrFileAccess, "failed to resolve %s", p)
		}
		return &types.FileEntry{Path: abs, IsDir: info.IsDir()}, nil
	}

	dir, include, wild := walker.SplitSource(p)
	if filepath.IsAbs(p) {
		if !wild {
			return nil, nil
		}
		return r.first(dir, include)
	}

	for _, root := range r.ranked() {
		target := filepath.Join(root.Path, p)
		if info, err := r.fs.Stat(target); err == nil {
			r.hit(root)
			return &types.FileEntry{Path: target, IsDir: info.IsDir()}, nil
		}
		if !wild {
			continue
		}

		e, err := r.first(filepath.Join(root.Path, dir), include)
		if err != nil {
			return nil, err
		}
		if e != nil {
			r.hit(root)
			return e, nil
		}
	}

	r.logger.Debug().Str("pattern", p).Msg("No root matched")
	return nil, nil
}

func (r *PathRegistry) first(dir, include string) (*types.FileEntry, error) {
	info, err := r.fs.Stat(dir)
	if err != nil || !info.IsDir() {
		return nil, nil
	}

	set, err := pattern.NewSet([]string{include}, nil)
	if err != nil {
		return nil, err
	}
	it, err := r.walker.Walk(dir, set, walker.Options{FolderMode: types.FilesAndFolders})
	if err != nil {
		return nil, err
	}
	return walker.First(it)
}

// Exists reports whether p resolves to anything
func (r *PathRegistry) Exists(p string) bool {
	e, err := r.PickFirst(p)
	return err == nil && e != nil
}

// ExistsAll checks each pattern in turn
func (r *PathRegistry) ExistsAll(patterns []string) []bool {
	out := make([]bool, len(patterns))
	for i, p := range patterns {
		out[i] = r.Exists(p)
	}
	return out
}

// List enumerates every root, most productive first, as one stream
func (r *PathRegistry) List(includes, excludes []string, opts walker.Options) (types.Stream, error) {
	byRoot, err := r.ListByRoot(includes, excludes, opts)
	if err != nil {
		return nil, err
	}
	streams := make([]types.Stream, len(byRoot))
	for i, rs := range byRoot {
		streams[i] = rs.Stream
	}
	return walker.Concat(streams...), nil
}

// ListByRoot returns one lazy stream per root, most productive first. Once
// a root's stream is exhausted its hit count becomes the number of entries
// it produced. Roots that vanished since registration produce nothing.
func (r *PathRegistry) ListByRoot(includes, excludes []string, opts walker.Options) ([]RootStream, error) {
	set, err := pattern.NewSet(includes, excludes)
	if err != nil {
		return nil, err
	}

	ranked := r.ranked()
	out := make([]RootStream, 0, len(ranked))
	for _, root := range ranked {
		root := root
		lazy := walker.Lazy(func() (types.Stream, error) {
			it, err := r.walker.Walk(root.Path, set, opts)
			if err != nil {
				if errors.IsErrorCode(err, errors.ErrNotExistingPath) {
					r.logger.Warn().Str("path", root.Path).Msg("Root no longer exists")
					return walker.Empty(), nil
				}
				return nil, err
			}
			return it, nil
		})
		out = append(out, RootStream{
			Root: root.Path,
			Stream: walker.Counting(lazy, func(n int) {
				r.setHits(root, n)
			}),
		})
	}
	return out, nil
}
