package config

import (
	"sort"

	"github.com/arthur-debert/ngofile/pkg/errors"
	"github.com/arthur-debert/ngofile/pkg/paths"
	"github.com/arthur-debert/ngofile/pkg/pattern"
	"github.com/arthur-debert/ngofile/pkg/types"
)

// Config is the complete ngofile configuration
type Config struct {
	List        List                  `koanf:"list" json:"list" yaml:"list"`
	Registry    Registry              `koanf:"registry" json:"registry" yaml:"registry"`
	SearchPaths map[string]SearchPath `koanf:"search_paths" json:"search_paths" yaml:"search_paths"`
	Copy        Copy                  `koanf:"copy" json:"copy" yaml:"copy"`
	Logging     Logging               `koanf:"logging" json:"logging" yaml:"logging"`
}

// List holds the defaults of enumeration commands
type List struct {
	Includes      []string `koanf:"includes" json:"includes" yaml:"includes"`
	Excludes      []string `koanf:"excludes" json:"excludes" yaml:"excludes"`
	Recursive     bool     `koanf:"recursive" json:"recursive" yaml:"recursive"`
	InParents     bool     `koanf:"in_parents" json:"in_parents" yaml:"in_parents"`
	FolderMode    int      `koanf:"folder_mode" json:"folder_mode" yaml:"folder_mode"`
	IgnoreMissing bool     `koanf:"ignore_missing" json:"ignore_missing" yaml:"ignore_missing"`
}

// Registry configures the persistent path registry
type Registry struct {
	Roots     []string `koanf:"roots" json:"roots" yaml:"roots"`
	Persist   bool     `koanf:"persist" json:"persist" yaml:"persist"`
	StateFile string   `koanf:"state_file" json:"state_file" yaml:"state_file"`
}

// SearchPath is a named set of roots
type SearchPath struct {
	Roots []string `koanf:"roots" json:"roots" yaml:"roots"`
}

// Copy holds the defaults of the copy command
type Copy struct {
	Recursive  bool `koanf:"recursive" json:"recursive" yaml:"recursive"`
	CreateDirs bool `koanf:"create_dirs" json:"create_dirs" yaml:"create_dirs"`
}

// Logging configures log verbosity when no -v flag is given
type Logging struct {
	Verbosity int `koanf:"verbosity" json:"verbosity" yaml:"verbosity"`
}

// Validate checks values the decoder cannot
func (c *Config) Validate() error {
	mode := types.FolderMode(c.List.FolderMode)
	if !mode.Valid() {
		return errors.Newf(errors.ErrConfigParse, "list.folder_mode must be 0, 1 or 2, got %d", c.List.FolderMode).
			WithDetail("key", "list.folder_mode")
	}
	for _, p := range append(append([]string(nil), c.List.Includes...), c.List.Excludes...) {
		if err := pattern.Validate(pattern.Normalize(p)); err != nil {
			return errors.Wrapf(err, errors.ErrConfigParse, "invalid pattern %q in [list]", p).
				WithDetail("pattern", p)
		}
	}
	if c.Logging.Verbosity < 0 {
		return errors.New(errors.ErrConfigParse, "logging.verbosity cannot be negative").
			WithDetail("key", "logging.verbosity")
	}
	return nil
}

// FolderMode returns the configured list folder mode
func (c *Config) FolderMode() types.FolderMode {
	return types.FolderMode(c.List.FolderMode)
}

// StateFile returns the registry state file, falling back to the XDG
// state directory
func (c *Config) StateFile() string {
	if c.Registry.StateFile != "" {
		return paths.ExpandHome(c.Registry.StateFile)
	}
	return paths.New().StateFile()
}

// SearchPathRoots returns each search path's roots with ~ expanded
func (c *Config) SearchPathRoots() map[string][]string {
	out := make(map[string][]string, len(c.SearchPaths))
	for name, sp := range c.SearchPaths {
		roots := make([]string, len(sp.Roots))
		for i, r := range sp.Roots {
			roots[i] = paths.ExpandHome(r)
		}
		out[name] = roots
	}
	return out
}

// SearchPathNames returns the configured search path names, sorted
func (c *Config) SearchPathNames() []string {
	names := make([]string, 0, len(c.SearchPaths))
	for name := range c.SearchPaths {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
