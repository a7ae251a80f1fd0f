// Package treecopy mirrors the files selected by a walk into one or more
// destination directories, skipping files whose content already matches.
package treecopy

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/ngofile/pkg/errors"
	"github.com/arthur-debert/ngofile/pkg/filesystem"
	"github.com/arthur-debert/ngofile/pkg/internal/hashutil"
	"github.com/arthur-debert/ngofile/pkg/logging"
	"github.com/arthur-debert/ngofile/pkg/pattern"
	"github.com/arthur-debert/ngofile/pkg/types"
	"github.com/arthur-debert/ngofile/pkg/walker"
	"github.com/rs/zerolog"
)

// Action describes what happened to one file
type Action string

const (
	// Copied means the destination did not exist
	Copied Action = "copied"
	// Updated means the destination existed with different content
	Updated Action = "updated"
	// UpToDate means the destination already had the same content
	UpToDate Action = "up-to-date"
)

// Event reports one processed file
type Event struct {
	Source string
	Dest   string
	Action Action
}

// Failure is a file that could not be copied
type Failure struct {
	Source string
	Dest   string
	Err    error
}

// Options control a copy
type Options struct {
	Includes   []string
	Excludes   []string
	Recursive  bool
	CreateDirs bool
	// Progress, when set, is called after every file
	Progress func(Event)
}

// DefaultOptions copies recursively and creates missing destinations
func DefaultOptions() Options {
	return Options{Recursive: true, CreateDirs: true}
}

// Result counts what a copy did
type Result struct {
	Copied   int
	Updated  int
	UpToDate int
	Failures []Failure
}

func (r *Result) add(a Action) {
	switch a {
	case Copied:
		r.Copied++
	case Updated:
		r.Updated++
	case UpToDate:
		r.UpToDate++
	}
}

func (r *Result) merge(o *Result) {
	r.Copied += o.Copied
	r.Updated += o.Updated
	r.UpToDate += o.UpToDate
	r.Failures = append(r.Failures, o.Failures...)
}

// Copier copies trees on one filesystem
type Copier struct {
	fs     types.FS
	walker *walker.Walker
	logger zerolog.Logger
}

// New creates a Copier over fs
func New(fs types.FS) *Copier {
	return &Copier{
		fs:     fs,
		walker: walker.New(fs),
		logger: logging.GetLogger("treecopy"),
	}
}

// Copy copies src into the directory dst on the real filesystem
func Copy(src, dst string, opts Options) (*Result, error) {
	return New(filesystem.NewOS()).Copy(src, dst, opts)
}

// CopyAll copies src into every destination, stopping at the first
// destination that cannot be prepared.
func (c *Copier) CopyAll(src string, dsts []string, opts Options) (*Result, error) {
	total := &Result{}
	for _, dst := range dsts {
		res, err := c.Copy(src, dst, opts)
		if res != nil {
			total.merge(res)
		}
		if err != nil && !errors.IsErrorCode(err, errors.ErrCopy) {
			return total, err
		}
	}
	return total, failureError(total)
}

// Copy copies src into the directory dst. src may be a file, a directory or
// a wildcard source such as "dir/*.txt"; files keep their path relative to
// the source directory. Individual file failures are collected and
// reported together as an ErrCopy error after the walk.
func (c *Copier) Copy(src, dst string, opts Options) (*Result, error) {
	defer logging.Operation(c.logger.With().Str("source", src).Str("dest", dst).Logger(), "copy")()

	base, err := c.baseDir(src)
	if err != nil {
		return nil, err
	}
	dstAbs, err := filepath.Abs(dst)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "failed to resolve %s", dst)
	}
	if err := c.prepareDest(dstAbs, opts.CreateDirs); err != nil {
		return nil, err
	}

	excludes := opts.Excludes
	if ex, ok := destExclude(base, dstAbs); ok {
		excludes = append(append([]string(nil), excludes...), ex)
	}

	it, err := c.walker.List(src, opts.Includes, excludes, walker.Options{
		Recursive:  opts.Recursive,
		FolderMode: types.FilesOnly,
	})
	if err != nil {
		return nil, err
	}
	defer func() { _ = it.Close() }()

	res := &Result{}
	for it.Next() {
		from := it.Entry().Path
		rel, err := filepath.Rel(base, from)
		if err != nil {
			res.Failures = append(res.Failures, Failure{Source: from, Err: err})
			continue
		}
		to := filepath.Join(dstAbs, rel)

		action, err := c.copyFile(from, to)
		if err != nil {
			c.logger.Debug().Err(err).Str("source", from).Str("dest", to).Msg("Copy failed")
			res.Failures = append(res.Failures, Failure{Source: from, Dest: to, Err: err})
			continue
		}
		res.add(action)
		c.logger.Debug().Str("source", from).Str("dest", to).Str("action", string(action)).Msg("Processed file")
		if opts.Progress != nil {
			opts.Progress(Event{Source: from, Dest: to, Action: action})
		}
	}
	if err := it.Err(); err != nil {
		return res, err
	}

	c.logger.Info().
		Str("source", src).
		Str("dest", dstAbs).
		Int("copied", res.Copied).
		Int("updated", res.Updated).
		Int("up_to_date", res.UpToDate).
		Int("failed", len(res.Failures)).
		Msg("Copy complete")
	return res, failureError(res)
}

// baseDir is the directory relative paths are computed from
func (c *Copier) baseDir(src string) (string, error) {
	root, _, wild := c.walker.Resolve(src)
	if !wild {
		root = src
	}
	abs, err := filepath.Abs(root)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrFileAccess, "failed to resolve %s", src)
	}
	info, err := c.fs.Stat(abs)
	if err != nil {
		if os.IsNotExist(err) {
			return "", errors.NotExistingPath(abs, err)
		}
		return "", errors.Wrapf(err, errors.ErrFileAccess, "failed to stat %s", abs)
	}
	if !info.IsDir() {
		return filepath.Dir(abs), nil
	}
	return abs, nil
}

func (c *Copier) prepareDest(dst string, create bool) error {
	info, err := c.fs.Stat(dst)
	switch {
	case err == nil && info.IsDir():
		return nil
	case err == nil:
		return errors.NotADirectory(dst, nil)
	case !os.IsNotExist(err):
		return errors.Wrapf(err, errors.ErrFileAccess, "failed to stat %s", dst)
	case !create:
		return errors.NotADirectory(dst, err).WithDetail("hint", "enable directory creation")
	}

	c.logger.Debug().Str("path", dst).Msg("Creating destination")
	if err := c.fs.MkdirAll(dst, 0755); err != nil {
		return errors.Wrapf(err, errors.ErrFileAccess, "failed to create %s", dst)
	}
	return nil
}

func (c *Copier) copyFile(from, to string) (Action, error) {
	action := Copied
	if info, err := c.fs.Stat(to); err == nil {
		if info.IsDir() {
			return "", errors.NotADirectory(filepath.Dir(to), nil).
				WithDetail("conflict", to)
		}
		same, err := hashutil.SameContent(c.fs, from, to)
		if err != nil {
			return "", err
		}
		if same {
			return UpToDate, nil
		}
		action = Updated
	}

	srcInfo, err := c.fs.Stat(from)
	if err != nil {
		return "", err
	}
	if err := c.fs.MkdirAll(filepath.Dir(to), 0755); err != nil {
		return "", err
	}

	in, err := c.fs.Open(from)
	if err != nil {
		return "", err
	}
	defer func() { _ = in.Close() }()

	out, err := c.fs.Create(to)
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return "", err
	}
	if err := out.Close(); err != nil {
		return "", err
	}
	if err := c.fs.Chmod(to, srcInfo.Mode().Perm()); err != nil {
		return "", err
	}
	return action, nil
}

// destExclude returns the pattern that keeps a destination inside the
// source tree out of the walk
func destExclude(base, dst string) (string, bool) {
	if dst == base || !within(dst, base) {
		return "", false
	}
	rel, err := filepath.Rel(base, dst)
	if err != nil {
		return "", false
	}
	parts := strings.Split(filepath.ToSlash(rel), "/")
	for i, part := range parts {
		parts[i] = pattern.Escape(part)
	}
	return strings.Join(parts, "/"), true
}

func within(path, dir string) bool {
	return path == dir || strings.HasPrefix(path, dir+string(filepath.Separator))
}

func failureError(res *Result) error {
	if len(res.Failures) == 0 {
		return nil
	}
	paths := make([]string, len(res.Failures))
	for i, f := range res.Failures {
		paths[i] = f.Source
	}
	return errors.Newf(errors.ErrCopy, "%d file(s) could not be copied", len(res.Failures)).
		WithDetail("files", paths).
		WithDetail("first_error", res.Failures[0].Err.Error())
}
