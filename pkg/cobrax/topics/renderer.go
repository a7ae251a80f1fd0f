package topics

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Renderer defines the interface for rendering topic content
type Renderer interface {
	// Render takes raw content and returns formatted content for terminal display
	Render(content string, format string) string
}

// PlainRenderer is the default renderer that returns content as-is
type PlainRenderer struct{}

// Render returns the content unchanged
func (r *PlainRenderer) Render(content string, format string) string {
	return content
}

// HeadingRenderer styles markdown headings and leaves everything else
// untouched
type HeadingRenderer struct {
	Heading lipgloss.Style
}

// NewHeadingRenderer creates a renderer with bold headings
func NewHeadingRenderer() *HeadingRenderer {
	return &HeadingRenderer{Heading: lipgloss.NewStyle().Bold(true)}
}

// Render styles lines starting with "#" in markdown content
func (r *HeadingRenderer) Render(content string, format string) string {
	if format != ".md" {
		return content
	}

	lines := strings.Split(content, "\n")
	for i, line := range lines {
		if strings.HasPrefix(line, "#") {
			lines[i] = r.Heading.Render(strings.TrimSpace(strings.TrimLeft(line, "#")))
		}
	}
	return strings.Join(lines, "\n")
}
