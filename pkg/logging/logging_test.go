package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func captureLogs(t *testing.T, level zerolog.Level) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev, prevLevel := log.Logger, zerolog.GlobalLevel()
	t.Cleanup(func() {
		log.Logger = prev
		zerolog.SetGlobalLevel(prevLevel)
	})
	log.Logger = zerolog.New(&buf)
	zerolog.SetGlobalLevel(level)
	return &buf
}

func TestLevel(t *testing.T) {
	tests := []struct {
		verbosity int
		want      zerolog.Level
	}{
		{-1, zerolog.WarnLevel},
		{0, zerolog.WarnLevel},
		{1, zerolog.InfoLevel},
		{2, zerolog.DebugLevel},
		{3, zerolog.TraceLevel},
		{5, zerolog.TraceLevel},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Level(tt.verbosity), "verbosity %d", tt.verbosity)
	}
}

func TestSetupLogger(t *testing.T) {
	stateDir := t.TempDir()
	t.Setenv("NGOFILE_STATE_DIR", stateDir)
	defer Setup(Options{File: NoFile})

	SetupLogger(2)

	assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())
	_, err := os.Stat(filepath.Join(stateDir, "ngofile.log"))
	assert.NoError(t, err, "log file should be created in the state directory")
}

func TestSetup(t *testing.T) {
	defer Setup(Options{File: NoFile})

	t.Run("console and explicit file", func(t *testing.T) {
		var console bytes.Buffer
		path := filepath.Join(t.TempDir(), "nested", "walk.log")

		got := Setup(Options{Verbosity: 1, Console: &console, File: path})
		assert.Equal(t, path, got)

		logger := GetLogger("walker")
		logger.Info().Msg("walk complete")

		assert.Contains(t, console.String(), "walk complete")
		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(data), `"component":"walker"`)
	})

	t.Run("file disabled", func(t *testing.T) {
		var console bytes.Buffer

		got := Setup(Options{Console: &console, File: NoFile})
		assert.Empty(t, got)
		assert.Equal(t, zerolog.WarnLevel, zerolog.GlobalLevel())

		logger := GetLogger("registry")
		logger.Info().Msg("hidden")
		logger.Warn().Msg("shown")
		assert.NotContains(t, console.String(), "hidden")
		assert.Contains(t, console.String(), "shown")
	})

	t.Run("unwritable file falls back to console", func(t *testing.T) {
		var console bytes.Buffer
		blocker := filepath.Join(t.TempDir(), "blocker")
		require.NoError(t, os.WriteFile(blocker, nil, 0644))

		got := Setup(Options{Console: &console, File: filepath.Join(blocker, "x.log")})
		assert.Empty(t, got)
		assert.Contains(t, console.String(), "logging to console only")
	})
}

func TestGetLogFilePath(t *testing.T) {
	t.Run("state dir override", func(t *testing.T) {
		t.Setenv("NGOFILE_STATE_DIR", "/custom/state")
		assert.Equal(t, filepath.Join("/custom/state", "ngofile.log"), getLogFilePath())
	})

	t.Run("XDG_STATE_HOME", func(t *testing.T) {
		t.Setenv("NGOFILE_STATE_DIR", "")
		t.Setenv("XDG_STATE_HOME", "/custom/xdg")
		assert.Equal(t, filepath.Join("/custom/xdg", "ngofile", "ngofile.log"), getLogFilePath())
	})

	t.Run("default", func(t *testing.T) {
		t.Setenv("NGOFILE_STATE_DIR", "")
		t.Setenv("XDG_STATE_HOME", "")
		got := getLogFilePath()
		assert.True(t, filepath.IsAbs(got), "expected absolute path, got %s", got)
		assert.True(t, strings.HasSuffix(filepath.ToSlash(got), "ngofile/ngofile.log"))
	})
}

func TestGetLogger(t *testing.T) {
	buf := captureLogs(t, zerolog.DebugLevel)

	logger := GetLogger("walker")
	logger.Info().Msg("test message")

	assert.Contains(t, buf.String(), `"component":"walker"`)
	assert.Contains(t, buf.String(), "test message")
}

func TestLogCommand(t *testing.T) {
	buf := captureLogs(t, zerolog.DebugLevel)

	LogCommand("ngofile list", []string{"--recursive", "src"})

	out := buf.String()
	assert.Contains(t, out, "ngofile list")
	assert.Contains(t, out, "--recursive")
	assert.Contains(t, out, "Executing command")
}

func TestOperation(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)
	captureLogs(t, zerolog.DebugLevel)

	done := Operation(logger, "copy")
	assert.Contains(t, buf.String(), "Operation started")
	assert.NotContains(t, buf.String(), "duration")

	done()
	assert.Contains(t, buf.String(), "Operation completed")
	assert.Contains(t, buf.String(), `"duration"`)
}
