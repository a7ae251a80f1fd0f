// Package terminal provides rich terminal output with colors and styling
package terminal

import (
	"fmt"
	"io"
	"strings"

	"github.com/arthur-debert/ngofile/pkg/style"
	"github.com/arthur-debert/ngofile/pkg/ui/display"
	"github.com/charmbracelet/lipgloss"
)

// Renderer provides rich terminal output using lipgloss styles
type Renderer struct {
	output io.Writer
}

// New creates a new terminal renderer
func New(w io.Writer) (*Renderer, error) {
	return &Renderer{output: w}, nil
}

// RenderResult renders any result type with rich terminal formatting
func (r *Renderer) RenderResult(result interface{}) error {
	switch v := result.(type) {
	case *display.EntryList:
		return r.renderEntries(v)
	case *display.RootList:
		return r.renderRoots(v)
	case *display.FindResult:
		if !v.Found {
			return r.println(style.WarningIndicator + " " + style.MutedStyle.Render("no match for "+v.Query))
		}
		return r.println(style.SuccessIndicator + " " + style.PathStyle.Render(v.Path))
	case *display.CopyResult:
		return r.renderCopy(v)
	default:
		_, err := fmt.Fprintf(r.output, "%+v\n", result)
		return err
	}
}

func (r *Renderer) renderEntries(v *display.EntryList) error {
	if len(v.Entries) == 0 {
		return r.println(style.MutedStyle.Render("No matches"))
	}
	var b strings.Builder
	for _, e := range v.Entries {
		b.WriteString(style.Entry(e.Path, e.IsDir))
		b.WriteString("\n")
	}
	_, err := io.WriteString(r.output, b.String())
	return err
}

func (r *Renderer) renderRoots(v *display.RootList) error {
	if len(v.Roots) == 0 {
		return r.println(style.MutedStyle.Render("No registered roots"))
	}
	width := 0
	for _, root := range v.Roots {
		if n := len(fmt.Sprint(root.Hits)); n > width {
			width = n
		}
	}
	hits := style.HitsStyle.Width(width).Align(lipgloss.Right)
	for _, root := range v.Roots {
		line := hits.Render(fmt.Sprint(root.Hits)) + "  " + style.RootStyle.Render(root.Path)
		if err := r.println(line); err != nil {
			return err
		}
	}
	return nil
}

func (r *Renderer) renderCopy(v *display.CopyResult) error {
	indicator := style.SuccessIndicator
	if len(v.Failures) > 0 {
		indicator = style.ErrorIndicator
	}
	summary := fmt.Sprintf("%s %s copied, %s updated, %s up to date",
		indicator,
		style.Bold(fmt.Sprint(v.Copied)),
		style.Bold(fmt.Sprint(v.Updated)),
		style.MutedStyle.Render(fmt.Sprint(v.UpToDate)))
	if err := r.println(summary); err != nil {
		return err
	}
	for _, f := range v.Failures {
		line := style.Indent(fmt.Sprintf("%s %s %s", style.ErrorIndicator,
			style.PathStyle.Render(f.Source), style.MutedStyle.Render(f.Error)), 1)
		if err := r.println(line); err != nil {
			return err
		}
	}
	return nil
}

// RenderError renders an error with appropriate formatting
func (r *Renderer) RenderError(err error) error {
	return r.println(style.ErrorStyle.Render("Error:") + " " + err.Error())
}

// RenderMessage renders a simple message
func (r *Renderer) RenderMessage(msg string) error {
	return r.println(style.NormalStyle.Render(msg))
}

func (r *Renderer) println(s string) error {
	_, err := fmt.Fprintln(r.output, s)
	return err
}
