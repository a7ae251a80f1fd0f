package ui_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/arthur-debert/ngofile/pkg/errors"
	"github.com/arthur-debert/ngofile/pkg/registry"
	"github.com/arthur-debert/ngofile/pkg/types"
	"github.com/arthur-debert/ngofile/pkg/ui"
	"github.com/arthur-debert/ngofile/pkg/ui/display"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func entries() *display.EntryList {
	return &display.EntryList{
		Command: "list",
		Source:  "/data/*.txt",
		Entries: []types.FileEntry{
			{Path: "/data/a.txt"},
			{Path: "/data/sub", IsDir: true},
		},
	}
}

func TestNewRenderer(t *testing.T) {
	for _, format := range []ui.Format{ui.FormatAuto, ui.FormatTerminal, ui.FormatText, ui.FormatJSON, ui.FormatYAML} {
		t.Run(format.String(), func(t *testing.T) {
			r, err := ui.NewRenderer(format, &bytes.Buffer{})
			require.NoError(t, err)
			assert.NotNil(t, r)
		})
	}

	r, err := ui.NewRenderer(ui.Format(999), &bytes.Buffer{})
	assert.Error(t, err)
	assert.Nil(t, r)
}

func TestTextRenderer(t *testing.T) {
	buf := &bytes.Buffer{}
	r, err := ui.NewRenderer(ui.FormatText, buf)
	require.NoError(t, err)

	require.NoError(t, r.RenderResult(entries()))
	assert.Equal(t, "/data/a.txt\n/data/sub\n", buf.String())

	buf.Reset()
	require.NoError(t, r.RenderResult(&display.RootList{Roots: []registry.Root{
		{Path: "/a", Hits: 3}, {Path: "/b", Hits: 0},
	}}))
	assert.Equal(t, "3\t/a\n0\t/b\n", buf.String())

	buf.Reset()
	require.NoError(t, r.RenderResult(&display.FindResult{Query: "x", Found: false}))
	assert.Empty(t, buf.String())

	buf.Reset()
	require.NoError(t, r.RenderResult(&display.FindResult{Query: "x", Path: "/a/x", Found: true}))
	assert.Equal(t, "/a/x\n", buf.String())

	buf.Reset()
	require.NoError(t, r.RenderResult(&display.CopyResult{Copied: 1, Updated: 2, UpToDate: 3}))
	assert.Equal(t, "1 copied, 2 updated, 3 up to date\n", buf.String())
}

func TestJSONRenderer(t *testing.T) {
	buf := &bytes.Buffer{}
	r, err := ui.NewRenderer(ui.FormatJSON, buf)
	require.NoError(t, err)

	require.NoError(t, r.RenderResult(entries()))

	var got display.EntryList
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, *entries(), got)

	buf.Reset()
	require.NoError(t, r.RenderError(errors.NotADirectory("/data/a.txt", nil)))
	var errObj map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &errObj))
	assert.Equal(t, string(errors.ErrNotADirectory), errObj["code"])
}

func TestYAMLRenderer(t *testing.T) {
	buf := &bytes.Buffer{}
	r, err := ui.NewRenderer(ui.FormatYAML, buf)
	require.NoError(t, err)

	require.NoError(t, r.RenderResult(&display.RootList{Roots: []registry.Root{{Path: "/a", Hits: 2}}}))

	var got display.RootList
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	require.Len(t, got.Roots, 1)
	assert.Equal(t, "/a", got.Roots[0].Path)
	assert.Equal(t, 2, got.Roots[0].Hits)
}

func TestTerminalRenderer(t *testing.T) {
	buf := &bytes.Buffer{}
	r, err := ui.NewRenderer(ui.FormatTerminal, buf)
	require.NoError(t, err)

	require.NoError(t, r.RenderResult(entries()))
	out := buf.String()
	assert.Contains(t, out, "/data/a.txt")
	assert.Contains(t, out, "/data/sub/")

	buf.Reset()
	require.NoError(t, r.RenderResult(&display.EntryList{}))
	assert.Contains(t, buf.String(), "No matches")

	buf.Reset()
	require.NoError(t, r.RenderResult(&display.CopyResult{
		Copied:   1,
		Failures: []display.CopyFailure{{Source: "/src/x", Dest: "/dst/x", Error: "denied"}},
	}))
	assert.Contains(t, buf.String(), "/src/x")
	assert.Contains(t, buf.String(), "denied")

	buf.Reset()
	require.NoError(t, r.RenderError(errors.New(errors.ErrInvalidPattern, "bad")))
	assert.True(t, strings.Contains(buf.String(), "Error:"))
}
