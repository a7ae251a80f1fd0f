package registry

import (
	"go/build"
	"os"
	"path/filepath"
	"runtime/debug"

	"github.com/arthur-debert/ngofile/pkg/errors"
	"github.com/arthur-debert/ngofile/pkg/logging"
	"github.com/arthur-debert/ngofile/pkg/types"
	"github.com/arthur-debert/ngofile/pkg/walker"
	"golang.org/x/mod/module"
)

// DirSource produces the directories a ModuleRegistry should hold
type DirSource func() ([]string, error)

// ModuleRegistry is a PathRegistry fed by a DirSource. A query that finds
// nothing refreshes the roots once and is retried if the source grew.
type ModuleRegistry struct {
	*PathRegistry
	source DirSource
}

// NewModuleRegistry creates a registry populated from source, or from
// BuildInfoDirs when source is nil.
func NewModuleRegistry(fs types.FS, source DirSource) (*ModuleRegistry, error) {
	if source == nil {
		source = BuildInfoDirs
	}
	dirs, err := source()
	if err != nil {
		return nil, err
	}

	m := &ModuleRegistry{
		PathRegistry: New(fs),
		source:       source,
	}
	m.SetRoots(dirs)
	return m, nil
}

// Refresh re-reads the source. When it names directories that exist and
// are not registered yet, the roots are replaced and Refresh returns true.
func (m *ModuleRegistry) Refresh() (bool, error) {
	defer logging.Operation(m.logger, "refresh modules")()

	dirs, err := m.source()
	if err != nil {
		return false, err
	}

	known := make(map[string]struct{})
	for _, root := range m.Roots() {
		known[root.Path] = struct{}{}
	}

	grown := false
	for _, d := range dirs {
		abs, err := filepath.Abs(d)
		if err != nil {
			continue
		}
		if _, ok := known[abs]; ok {
			continue
		}
		if info, err := m.fs.Stat(abs); err == nil && info.IsDir() {
			grown = true
			break
		}
	}

	if grown {
		m.logger.Debug().Int("dirs", len(dirs)).Msg("Module directories changed, refreshing roots")
		m.SetRoots(dirs)
	}
	return grown, nil
}

// PickFirst resolves p, refreshing once when nothing matches
func (m *ModuleRegistry) PickFirst(p string) (*types.FileEntry, error) {
	e, err := m.PathRegistry.PickFirst(p)
	if err != nil || e != nil {
		return e, err
	}
	grown, err := m.Refresh()
	if err != nil || !grown {
		return nil, err
	}
	return m.PathRegistry.PickFirst(p)
}

// Exists reports whether p resolves to anything
func (m *ModuleRegistry) Exists(p string) bool {
	e, err := m.PickFirst(p)
	return err == nil && e != nil
}

// ExistsAll checks each pattern in turn
func (m *ModuleRegistry) ExistsAll(patterns []string) []bool {
	out := make([]bool, len(patterns))
	for i, p := range patterns {
		out[i] = m.Exists(p)
	}
	return out
}

// List enumerates every root. An empty result triggers one refresh and,
// if the roots changed, a second listing.
func (m *ModuleRegistry) List(includes, excludes []string, opts walker.Options) (types.Stream, error) {
	s, err := m.PathRegistry.List(includes, excludes, opts)
	if err != nil {
		return nil, err
	}
	return &retryStream{
		Stream: s,
		retry: func() (types.Stream, error) {
			grown, err := m.Refresh()
			if err != nil || !grown {
				return nil, err
			}
			return m.PathRegistry.List(includes, excludes, opts)
		},
	}, nil
}

// ListByRoot groups the results by root like PathRegistry.ListByRoot. The
// grouping can only be retried before it is handed out, so every root is
// drained up front; an empty result triggers one refresh and, if the roots
// changed, a second listing.
func (m *ModuleRegistry) ListByRoot(includes, excludes []string, opts walker.Options) ([]RootStream, error) {
	out, found, err := m.collectByRoot(includes, excludes, opts)
	if err != nil || found > 0 {
		return out, err
	}

	grown, err := m.Refresh()
	if err != nil {
		return nil, err
	}
	if !grown {
		return out, nil
	}
	out, _, err = m.collectByRoot(includes, excludes, opts)
	return out, err
}

func (m *ModuleRegistry) collectByRoot(includes, excludes []string, opts walker.Options) ([]RootStream, int, error) {
	groups, err := m.PathRegistry.ListByRoot(includes, excludes, opts)
	if err != nil {
		return nil, 0, err
	}

	found := 0
	out := make([]RootStream, len(groups))
	for i, g := range groups {
		entries, err := walker.Collect(g.Stream)
		if err != nil {
			for _, rest := range groups[i+1:] {
				_ = rest.Stream.Close()
			}
			return nil, 0, err
		}
		found += len(entries)
		out[i] = RootStream{Root: g.Root, Stream: walker.FromSlice(entries)}
	}
	return out, found, nil
}

// retryStream replaces an empty stream with the result of retry, once
type retryStream struct {
	types.Stream
	retry   func() (types.Stream, error)
	yielded bool
	retried bool
	err     error
}

func (s *retryStream) Next() bool {
	if s.Stream.Next() {
		s.yielded = true
		return true
	}
	if s.yielded || s.retried || s.err != nil || s.Stream.Err() != nil {
		return false
	}

	s.retried = true
	next, err := s.retry()
	if err != nil {
		s.err = err
		return false
	}
	if next == nil {
		return false
	}
	_ = s.Stream.Close()
	s.Stream = next
	return s.Next()
}

func (s *retryStream) Err() error {
	if s.err != nil {
		return s.err
	}
	return s.Stream.Err()
}

// BuildInfoDirs lists the module cache directories of the modules linked
// into the running binary, plus the directory of the executable. Local
// replacements contribute their absolute directory.
func BuildInfoDirs() ([]string, error) {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return nil, errors.New(errors.ErrNotFound, "build information is not available")
	}

	var dirs []string
	if exe, err := os.Executable(); err == nil {
		dirs = append(dirs, filepath.Dir(exe))
	}

	cache := moduleCache()
	for _, dep := range info.Deps {
		mod := dep
		if dep.Replace != nil {
			mod = dep.Replace
		}
		if mod.Version == "" {
			if filepath.IsAbs(mod.Path) {
				dirs = append(dirs, mod.Path)
			}
			continue
		}
		dir, err := ModuleDir(cache, mod.Path, mod.Version)
		if err != nil {
			continue
		}
		dirs = append(dirs, dir)
	}
	return dirs, nil
}

// ModuleDir returns where the go command extracts path@version inside the
// module cache
func ModuleDir(cache, path, version string) (string, error) {
	escPath, err := module.EscapePath(path)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrInvalidInput, "invalid module path %s", path)
	}
	escVersion, err := module.EscapeVersion(version)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrInvalidInput, "invalid module version %s", version)
	}
	return filepath.Join(cache, filepath.FromSlash(escPath)+"@"+escVersion), nil
}

func moduleCache() string {
	if cache := os.Getenv("GOMODCACHE"); cache != "" {
		return cache
	}
	gopath := os.Getenv("GOPATH")
	if gopath == "" {
		gopath = build.Default.GOPATH
	}
	if list := filepath.SplitList(gopath); len(list) > 0 {
		gopath = list[0]
	}
	return filepath.Join(gopath, "pkg", "mod")
}
