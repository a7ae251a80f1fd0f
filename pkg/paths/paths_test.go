package paths

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewWithOverrides(t *testing.T) {
	t.Setenv(EnvConfigDir, "/custom/config")
	t.Setenv(EnvStateDir, "/custom/state")

	p := New()
	assert.Equal(t, "/custom/config", p.ConfigDir())
	assert.Equal(t, "/custom/config/config.toml", p.ConfigFile())
	assert.Equal(t, "/custom/state/roots.toml", p.StateFile())
	assert.Equal(t, "/custom/state/ngofile.log", p.LogFile())
	assert.Equal(t, "/work/.ngofile.toml", p.ProjectConfigFile("/work"))
}

func TestNewXDGStateHome(t *testing.T) {
	t.Setenv(EnvStateDir, "")
	t.Setenv("XDG_STATE_HOME", "/xdg/state")

	assert.Equal(t, "/xdg/state/ngofile", New().StateDir())
}

func TestNewDefaults(t *testing.T) {
	t.Setenv(EnvConfigDir, "")
	t.Setenv(EnvStateDir, "")

	p := New()
	assert.Equal(t, AppDirName, filepath.Base(p.ConfigDir()))
	assert.Equal(t, AppDirName, filepath.Base(p.StateDir()))
}

func TestExpandHome(t *testing.T) {
	t.Setenv("HOME", "/home/tester")

	tests := map[string]string{
		"":          "",
		"~":         "/home/tester",
		"~/x/y":     "/home/tester/x/y",
		"~other/x":  "~other/x",
		"/abs/path": "/abs/path",
		"rel/path":  "rel/path",
	}
	for in, want := range tests {
		assert.Equal(t, want, ExpandHome(in), in)
	}
}

func TestEnvOverrideExpandsHome(t *testing.T) {
	t.Setenv("HOME", "/home/tester")
	t.Setenv(EnvConfigDir, "~/cfg")
	assert.Equal(t, "/home/tester/cfg", New().ConfigDir())
}
