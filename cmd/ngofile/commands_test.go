package ngofile

import (
	"archive/zip"
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/arthur-debert/ngofile/pkg/errors"
	"github.com/arthur-debert/ngofile/pkg/paths"
	"github.com/arthur-debert/ngofile/pkg/testutil"
	"github.com/arthur-debert/ngofile/pkg/ui/display"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var projectTree = testutil.FileTree{
	"a.txt":   "a",
	"b.md":    "b",
	"main.go": "package main",
	"sub": testutil.FileTree{
		"c.go":  "package sub",
		"d.txt": "d",
	},
	"vendor": testutil.FileTree{
		"v.go": "package v",
	},
}

// run executes ngofile with args and returns what it wrote to stdout
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := NewRootCmd()
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})
	if args == nil {
		args = []string{}
	}
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func lines(s string) []string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}

func TestListCmd(t *testing.T) {
	testutil.Isolate(t)
	dir := testutil.DiskTree(t, projectTree)

	t.Run("direct children", func(t *testing.T) {
		out, err := run(t, "list", dir)
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{
			filepath.Join(dir, "a.txt"),
			filepath.Join(dir, "b.md"),
			filepath.Join(dir, "main.go"),
		}, lines(out))
	})

	t.Run("recursive with exclude", func(t *testing.T) {
		out, err := run(t, "list", dir, "-r", "-i", "*.go", "-e", "vendor")
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{
			filepath.Join(dir, "main.go"),
			filepath.Join(dir, "sub", "c.go"),
		}, lines(out))
	})

	t.Run("wildcard source", func(t *testing.T) {
		out, err := run(t, "list", filepath.Join(dir, "*.txt"))
		require.NoError(t, err)
		assert.Equal(t, []string{filepath.Join(dir, "a.txt")}, lines(out))
	})

	t.Run("folders only", func(t *testing.T) {
		out, err := run(t, "list", dir, "--folders", "2")
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{
			filepath.Join(dir, "sub"),
			filepath.Join(dir, "vendor"),
		}, lines(out))
	})

	t.Run("json", func(t *testing.T) {
		out, err := run(t, "list", dir, "-i", "sub/*.go", "-o", "json")
		require.NoError(t, err)

		var res display.EntryList
		require.NoError(t, json.Unmarshal([]byte(out), &res))
		require.Len(t, res.Entries, 1)
		assert.Equal(t, filepath.Join(dir, "sub", "c.go"), res.Entries[0].Path)
		assert.Equal(t, "list", res.Command)
	})

	t.Run("invalid folder mode", func(t *testing.T) {
		_, err := run(t, "list", dir, "--folders", "4")
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
		assert.Contains(t, err.Error(), "--folders must be 0, 1 or 2, got 4")
	})

	t.Run("invalid folder mode from config", func(t *testing.T) {
		t.Setenv("NGOFILE_LIST_FOLDER_MODE", "5")
		_, err := run(t, "list", dir)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "list.folder_mode must be 0, 1 or 2, got 5")
	})

	t.Run("missing source", func(t *testing.T) {
		missing := filepath.Join(dir, "nope")
		_, err := run(t, "list", missing)
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrNotExistingPath))

		out, err := run(t, "list", missing, "--ignore-missing")
		require.NoError(t, err)
		assert.Empty(t, lines(out))
	})

	t.Run("config defaults", func(t *testing.T) {
		cfgFile := testutil.CreateFile(t, t.TempDir(), "ngofile.toml", "[list]\nincludes = [\"*.md\"]\n")
		out, err := run(t, "list", dir, "--config", cfgFile)
		require.NoError(t, err)
		assert.Equal(t, []string{filepath.Join(dir, "b.md")}, lines(out))
	})
}

func TestZipCmd(t *testing.T) {
	testutil.Isolate(t)

	archive := filepath.Join(t.TempDir(), "dist.zip")
	f, err := os.Create(archive)
	require.NoError(t, err)
	zw := zip.NewWriter(f)
	for _, name := range []string{"a/", "a/x.py", "a/b/y.py", "a/z.txt"} {
		_, err := zw.Create(name)
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())
	require.NoError(t, f.Close())

	out, err := run(t, "zip", archive, "-r", "-i", "*.py")
	require.NoError(t, err)
	assert.Equal(t, []string{"a/x.py", "a/b/y.py"}, lines(out))

	_, err = run(t, "zip", filepath.Join(t.TempDir(), "missing.zip"))
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrNotExistingPath))
}

func TestFindCmd(t *testing.T) {
	testutil.Isolate(t)
	dir := testutil.DiskTree(t, projectTree)
	sub := filepath.Join(dir, "sub")

	t.Run("explicit roots", func(t *testing.T) {
		out, err := run(t, "find", "c.go", "--root", sub)
		require.NoError(t, err)
		assert.Equal(t, []string{filepath.Join(sub, "c.go")}, lines(out))
	})

	t.Run("wildcard", func(t *testing.T) {
		out, err := run(t, "find", "*.txt", "--root", sub)
		require.NoError(t, err)
		assert.Equal(t, []string{filepath.Join(sub, "d.txt")}, lines(out))
	})

	t.Run("no match exits silently", func(t *testing.T) {
		out, err := run(t, "find", "nothing.here", "--root", sub)
		require.Error(t, err)
		assert.True(t, IsSilent(err))
		assert.Empty(t, out)
	})

	t.Run("exists", func(t *testing.T) {
		out, err := run(t, "find", "c.go", "d.txt", "--root", sub, "--exists")
		require.NoError(t, err)
		assert.Empty(t, out)

		_, err = run(t, "find", "c.go", "x.go", "--root", sub, "--exists")
		assert.True(t, IsSilent(err))
	})

	t.Run("all", func(t *testing.T) {
		out, err := run(t, "find", "*.go", "--root", dir, "--root", sub, "--all")
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{
			filepath.Join(dir, "main.go"),
			filepath.Join(sub, "c.go"),
		}, lines(out))
	})

	t.Run("search path", func(t *testing.T) {
		cfgFile := testutil.CreateFile(t, t.TempDir(), "ngofile.toml",
			"[search_paths.code]\nroots = [\""+filepath.ToSlash(sub)+"\"]\n")
		out, err := run(t, "find", "c.go", "--search-path", "code", "--config", cfgFile)
		require.NoError(t, err)
		assert.Equal(t, []string{filepath.Join(sub, "c.go")}, lines(out))

		_, err = run(t, "find", "c.go", "--search-path", "docs", "--config", cfgFile)
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrNotFound))
	})

	t.Run("exclusive sources", func(t *testing.T) {
		_, err := run(t, "find", "c.go", "--root", sub, "--modules")
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
	})
}

func TestRootsCmd(t *testing.T) {
	testutil.Isolate(t)
	dir := testutil.DiskTree(t, projectTree)
	sub := filepath.Join(dir, "sub")
	vendor := filepath.Join(dir, "vendor")

	out, err := run(t, "roots", "add", vendor, sub, filepath.Join(dir, "missing"))
	require.NoError(t, err)
	assert.Contains(t, out, "Added 2 root(s)")

	// a persisted find ranks sub first from now on
	out, err = run(t, "find", "c.go")
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(sub, "c.go")}, lines(out))

	out, err = run(t, "roots", "list", "-o", "json")
	require.NoError(t, err)
	var res display.RootList
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	require.Len(t, res.Roots, 2)
	assert.Equal(t, sub, res.Roots[0].Path)
	assert.Equal(t, 1, res.Roots[0].Hits)
	assert.Equal(t, vendor, res.Roots[1].Path)

	_, err = os.Stat(paths.New().StateFile())
	require.NoError(t, err)

	out, err = run(t, "roots", "clear")
	require.NoError(t, err)
	assert.Contains(t, out, "Cleared")

	out, err = run(t, "roots", "list")
	require.NoError(t, err)
	assert.Empty(t, lines(out))
}

func TestCopyCmd(t *testing.T) {
	testutil.Isolate(t)
	src := testutil.DiskTree(t, projectTree)
	dst := filepath.Join(t.TempDir(), "out")

	out, err := run(t, "copy", src, dst, "-i", "*.go", "-e", "vendor")
	require.NoError(t, err)
	assert.Equal(t, "2 copied, 0 updated, 0 up to date\n", out)
	assert.Equal(t, "package sub", testutil.ReadFile(t, filepath.Join(dst, "sub", "c.go")))
	assert.NoFileExists(t, filepath.Join(dst, "vendor", "v.go"))

	out, err = run(t, "copy", src, dst, "-i", "*.go", "-e", "vendor")
	require.NoError(t, err)
	assert.Equal(t, "0 copied, 0 updated, 2 up to date\n", out)

	_, err = run(t, "copy", src, filepath.Join(t.TempDir(), "absent"), "--no-create-dirs")
	require.Error(t, err)
}

func TestGenConfigCmd(t *testing.T) {
	dir := testutil.Isolate(t)

	out, err := run(t, "gen-config")
	require.NoError(t, err)
	assert.Contains(t, out, "[list]")
	assert.Contains(t, out, "# recursive = false")

	out, err = run(t, "gen-config", "-w")
	require.NoError(t, err)
	target := filepath.Join(dir, "config", paths.ConfigFileName)
	assert.Contains(t, out, target)
	assert.FileExists(t, target)

	_, err = run(t, "gen-config", "-w")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrAlreadyExists))
}

func TestVersionCmd(t *testing.T) {
	testutil.Isolate(t)

	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "ngofile version")
	assert.Contains(t, out, "commit:")
}

func TestCompletionCmd(t *testing.T) {
	testutil.Isolate(t)

	out, err := run(t, "completion", "bash")
	require.NoError(t, err)
	assert.Contains(t, out, "ngofile")

	_, err = run(t, "completion", "tcsh")
	assert.Error(t, err)
}

func TestManCmd(t *testing.T) {
	testutil.Isolate(t)
	dir := t.TempDir()

	_, err := run(t, "man", "--dir", dir)
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(dir, "ngofile.1"))
	assert.FileExists(t, filepath.Join(dir, "ngofile-list.1"))
}

func TestRootCmd_NoCommand(t *testing.T) {
	testutil.Isolate(t)

	_, err := run(t)
	assert.Error(t, err)
}

func TestHelpTopics(t *testing.T) {
	testutil.Isolate(t)

	out, err := run(t, "help", "topics")
	require.NoError(t, err)
	assert.Contains(t, out, "patterns")
	assert.Contains(t, out, "--in-parents")

	out, err = run(t, "help", "--folders")
	require.NoError(t, err)
	assert.Contains(t, out, "folders only")
}
