package ngofile

import (
	"strings"

	"github.com/arthur-debert/ngofile/pkg/config"
	"github.com/arthur-debert/ngofile/pkg/errors"
	"github.com/arthur-debert/ngofile/pkg/filesystem"
	"github.com/arthur-debert/ngofile/pkg/registry"
	"github.com/arthur-debert/ngofile/pkg/state"
	"github.com/arthur-debert/ngofile/pkg/types"
	"github.com/arthur-debert/ngofile/pkg/walker"
)

// finder is what find needs from a registry
type finder interface {
	PickFirst(p string) (*types.FileEntry, error)
	ExistsAll(patterns []string) []bool
	List(includes, excludes []string, opts walker.Options) (types.Stream, error)
}

// source selects the registry find searches
type source struct {
	roots      []string
	searchPath string
	modules    bool
}

// session is an open registry plus how to persist it afterwards
type session struct {
	finder finder
	save   func() error
}

func noSave() error { return nil }

// open builds the registry selected by src
func (src source) open(cfg *config.Config) (*session, error) {
	selected := 0
	if len(src.roots) > 0 {
		selected++
	}
	if src.searchPath != "" {
		selected++
	}
	if src.modules {
		selected++
	}
	if selected > 1 {
		return nil, errors.New(errors.ErrInvalidInput, MsgErrRootFlags)
	}

	fs := filesystem.NewOS()
	switch {
	case len(src.roots) > 0:
		return &session{finder: registry.New(fs, src.roots...), save: noSave}, nil

	case src.searchPath != "":
		catalog := registry.NewCatalog(fs)
		if err := catalog.DefineAll(cfg.SearchPathRoots()); err != nil {
			return nil, err
		}
		reg, err := catalog.Get(src.searchPath)
		if err != nil {
			return nil, errors.Newf(errors.ErrNotFound, MsgErrSearchPath,
				src.searchPath, strings.Join(catalog.Names(), ", ")).
				WithDetail("search_path", src.searchPath)
		}
		return &session{finder: reg, save: noSave}, nil

	case src.modules:
		reg, err := registry.NewModuleRegistry(fs, registry.BuildInfoDirs)
		if err != nil {
			return nil, err
		}
		return &session{finder: reg, save: noSave}, nil
	}

	return openPersisted(fs, cfg)
}

// openPersisted loads the default registry from the state file and the
// [registry] roots of the configuration
func openPersisted(fs types.FS, cfg *config.Config) (*session, error) {
	reg := registry.New(fs)
	if !cfg.Registry.Persist {
		reg.AddAll(cfg.Registry.Roots)
		return &session{finder: reg, save: noSave}, nil
	}

	store := state.NewStore(cfg.StateFile())
	f, err := store.Load()
	if err != nil {
		return nil, err
	}
	reg.Restore(f.Roots)
	reg.AddAll(cfg.Registry.Roots)

	return &session{
		finder: reg,
		save: func() error {
			return store.Save(state.Snapshot(reg))
		},
	}, nil
}
