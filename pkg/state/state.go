package state

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/arthur-debert/ngofile/pkg/errors"
	"github.com/arthur-debert/ngofile/pkg/filesystem"
	"github.com/arthur-debert/ngofile/pkg/logging"
	"github.com/arthur-debert/ngofile/pkg/registry"
	"github.com/arthur-debert/ngofile/pkg/types"
	"github.com/gofrs/flock"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/rs/zerolog"
)

// File is the persisted registry state
type File struct {
	Roots []registry.Root `toml:"roots"`
}

// Locker serialises writers of one state file
type Locker interface {
	Lock() error
	Unlock() error
}

type noLock struct{}

func (noLock) Lock() error   { return nil }
func (noLock) Unlock() error { return nil }

// Store reads and writes one state file
type Store struct {
	fs     types.FS
	path   string
	lock   Locker
	logger zerolog.Logger
}

// NewStore returns a store on the real filesystem guarded by a file lock
func NewStore(path string) *Store {
	return &Store{
		fs:     filesystem.NewOS(),
		path:   path,
		lock:   flock.New(path + ".lock"),
		logger: logging.GetLogger("state"),
	}
}

// NewStoreFS returns a store on fs without inter-process locking
func NewStoreFS(fs types.FS, path string) *Store {
	return &Store{
		fs:     fs,
		path:   path,
		lock:   noLock{},
		logger: logging.GetLogger("state"),
	}
}

// Path returns the state file location
func (s *Store) Path() string {
	return s.path
}

// Load reads the state file. A missing file is an empty state.
func (s *Store) Load() (*File, error) {
	data, err := s.fs.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			s.logger.Debug().Str("path", s.path).Msg("No state file, starting empty")
			return &File{}, nil
		}
		return nil, errors.Wrapf(err, errors.ErrStateLoad, "failed to read state file %s", s.path).
			WithDetail("path", s.path)
	}

	var f File
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, errors.Wrapf(err, errors.ErrStateLoad, "failed to parse state file %s", s.path).
			WithDetail("path", s.path)
	}
	s.logger.Debug().Str("path", s.path).Int("roots", len(f.Roots)).Msg("Loaded state")
	return &f, nil
}

// Save writes f while holding the lock
func (s *Store) Save(f *File) error {
	if err := s.acquire(); err != nil {
		return err
	}
	defer s.release()
	return s.write(f)
}

// Update loads the state, applies fn and saves the result, all under the
// lock. Nothing is written when fn fails.
func (s *Store) Update(fn func(*File) error) error {
	if err := s.acquire(); err != nil {
		return err
	}
	defer s.release()

	f, err := s.Load()
	if err != nil {
		return err
	}
	if err := fn(f); err != nil {
		return err
	}
	return s.write(f)
}

func (s *Store) acquire() error {
	if err := s.fs.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return errors.Wrapf(err, errors.ErrStateSave, "failed to create state directory for %s", s.path).
			WithDetail("path", s.path)
	}
	if err := s.lock.Lock(); err != nil {
		return errors.Wrapf(err, errors.ErrStateSave, "failed to lock state file %s", s.path).
			WithDetail("path", s.path)
	}
	return nil
}

func (s *Store) release() {
	if err := s.lock.Unlock(); err != nil {
		s.logger.Warn().Err(err).Str("path", s.path).Msg("Failed to release state lock")
	}
}

// write replaces the state file atomically
func (s *Store) write(f *File) error {
	data, err := toml.Marshal(f)
	if err != nil {
		return errors.Wrap(err, errors.ErrStateSave, "failed to encode state")
	}

	tmp := fmt.Sprintf("%s.tmp-%d", s.path, time.Now().UnixNano())
	if err := s.fs.WriteFile(tmp, data, 0644); err != nil {
		return errors.Wrapf(err, errors.ErrStateSave, "failed to write %s", tmp).
			WithDetail("path", s.path)
	}
	if err := s.fs.Rename(tmp, s.path); err != nil {
		_ = s.fs.Remove(tmp)
		return errors.Wrapf(err, errors.ErrStateSave, "failed to replace %s", s.path).
			WithDetail("path", s.path)
	}

	s.logger.Debug().Str("path", s.path).Int("roots", len(f.Roots)).Msg("Saved state")
	return nil
}

// Snapshot captures the roots of reg
func Snapshot(reg *registry.PathRegistry) *File {
	return &File{Roots: reg.Roots()}
}
