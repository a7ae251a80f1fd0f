// Package archive lists the entries of zip archives that match a
// pattern.Set. Archives store a flat list of forward-slash names; the
// directories those names imply are used to widen includes that name a
// directory, but only names literally present are returned.
package archive

import (
	"archive/zip"
	"os"
	"strings"

	"github.com/arthur-debert/ngofile/pkg/errors"
	"github.com/arthur-debert/ngofile/pkg/logging"
	"github.com/arthur-debert/ngofile/pkg/pattern"
	"github.com/arthur-debert/ngofile/pkg/types"
)

// ListNames filters an archive namelist, keeping namelist order
func ListNames(names []string, set pattern.Set, recursive bool) ([]string, error) {
	logger := logging.GetLogger("archive")
	if set.IsZero() {
		set = pattern.MustNewSet(nil, nil)
	}

	m, err := pattern.CompilePaths(set.Includes(), set.Excludes(), ImpliedDirs(names), recursive)
	if err != nil {
		return nil, err
	}

	var out []string
	for _, name := range names {
		if m.Match(name) {
			out = append(out, name)
		}
	}

	logger.Debug().
		Int("entries", len(names)).
		Int("found", len(out)).
		Strs("includes", set.Includes()).
		Bool("recursive", recursive).
		Msg("Listed archive")
	return out, nil
}

// ListZip filters the entries of an open zip archive
func ListZip(r *zip.Reader, set pattern.Set, recursive bool) ([]string, error) {
	if r == nil {
		return nil, errors.New(errors.ErrInvalidArchive, "no archive reader")
	}
	names := make([]string, len(r.File))
	for i, f := range r.File {
		names[i] = f.Name
	}
	return ListNames(names, set, recursive)
}

// ListFile opens the zip archive at path through fsys and filters it
func ListFile(fsys types.FS, path string, set pattern.Set, recursive bool) ([]string, error) {
	defer logging.Operation(logging.GetLogger("archive").With().Str("path", path).Logger(), "list archive")()

	f, err := fsys.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NotExistingPath(path, err)
		}
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "failed to open %s", path).
			WithDetail("path", path)
	}
	defer func() { _ = f.Close() }()

	info, err := f.Stat()
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "failed to stat %s", path).
			WithDetail("path", path)
	}
	if info.IsDir() {
		return nil, errors.Newf(errors.ErrInvalidArchive, "%s is a directory", path).
			WithDetail("path", path)
	}

	r, err := zip.NewReader(f, info.Size())
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrInvalidArchive, "failed to read archive %s", path).
			WithDetail("path", path)
	}
	return ListZip(r, set, recursive)
}

// ImpliedDirs returns every directory implied by names, without trailing
// separators, in first-seen order. Malformed names contribute nothing.
func ImpliedDirs(names []string) []string {
	seen := make(map[string]struct{})
	var dirs []string
	add := func(d string) {
		if _, ok := seen[d]; ok {
			return
		}
		seen[d] = struct{}{}
		dirs = append(dirs, d)
	}

	for _, name := range names {
		if !wellFormed(name) {
			continue
		}
		trimmed := strings.TrimSuffix(name, "/")
		parts := strings.Split(trimmed, "/")
		for i := 1; i < len(parts); i++ {
			add(strings.Join(parts[:i], "/"))
		}
		if strings.HasSuffix(name, "/") {
			add(trimmed)
		}
	}
	return dirs
}

func wellFormed(name string) bool {
	if name == "" || name == "/" || strings.HasPrefix(name, "/") {
		return false
	}
	for _, part := range strings.Split(strings.TrimSuffix(name, "/"), "/") {
		if part == "" || part == ".." {
			return false
		}
	}
	return true
}
