package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

// Environment variable names
const (
	// EnvConfigDir overrides the XDG config directory
	EnvConfigDir = "NGOFILE_CONFIG_DIR"

	// EnvStateDir overrides the XDG state directory
	EnvStateDir = "NGOFILE_STATE_DIR"

	// EnvHome is the standard home directory variable
	EnvHome = "HOME"
)

// File and directory names
const (
	// AppDirName is the directory created under each XDG base
	AppDirName = "ngofile"

	// ConfigFileName is the user configuration file
	ConfigFileName = "config.toml"

	// ProjectConfigFileName is looked up in the working directory
	ProjectConfigFileName = ".ngofile.toml"

	// StateFileName holds the persisted registry roots
	StateFileName = "roots.toml"

	// LogFileName is the name of the log file
	LogFileName = "ngofile.log"
)

// Paths resolves ngofile's file locations
type Paths interface {
	ConfigDir() string
	StateDir() string
	ConfigFile() string
	StateFile() string
	LogFile() string
	ProjectConfigFile(dir string) string
}

type paths struct {
	config string
	state  string
}

// New resolves the directories from the environment
func New() Paths {
	p := &paths{}

	if dir := os.Getenv(EnvConfigDir); dir != "" {
		p.config = ExpandHome(dir)
	} else {
		p.config = filepath.Join(xdg.ConfigHome, AppDirName)
	}

	switch {
	case os.Getenv(EnvStateDir) != "":
		p.state = ExpandHome(os.Getenv(EnvStateDir))
	case os.Getenv("XDG_STATE_HOME") != "":
		p.state = filepath.Join(os.Getenv("XDG_STATE_HOME"), AppDirName)
	default:
		p.state = filepath.Join(xdg.StateHome, AppDirName)
	}

	return p
}

func (p *paths) ConfigDir() string { return p.config }

func (p *paths) StateDir() string { return p.state }

func (p *paths) ConfigFile() string {
	return filepath.Join(p.config, ConfigFileName)
}

func (p *paths) StateFile() string {
	return filepath.Join(p.state, StateFileName)
}

func (p *paths) LogFile() string {
	return filepath.Join(p.state, LogFileName)
}

func (p *paths) ProjectConfigFile(dir string) string {
	return filepath.Join(dir, ProjectConfigFileName)
}

// ExpandHome expands a leading ~ to the home directory
func ExpandHome(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = os.Getenv(EnvHome)
		if homeDir == "" {
			return path
		}
	}

	if len(path) == 1 {
		return homeDir
	}
	if path[1] == '/' || path[1] == filepath.Separator {
		return filepath.Join(homeDir, path[2:])
	}

	// ~user is not expanded
	return path
}
