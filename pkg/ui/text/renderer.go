// Package text provides plain text output without any styling. Entry
// lists print one path per line so the output pipes into other tools.
package text

import (
	"fmt"
	"io"

	"github.com/arthur-debert/ngofile/pkg/ui/display"
)

// Renderer provides plain text output without colors or styling
type Renderer struct {
	output io.Writer
}

// New creates a new text renderer
func New(output io.Writer) (*Renderer, error) {
	return &Renderer{output: output}, nil
}

// RenderResult renders any result type as plain text
func (r *Renderer) RenderResult(result interface{}) error {
	switch v := result.(type) {
	case *display.EntryList:
		for _, e := range v.Entries {
			if _, err := fmt.Fprintln(r.output, e.Path); err != nil {
				return err
			}
		}
		return nil
	case *display.RootList:
		for _, root := range v.Roots {
			if _, err := fmt.Fprintf(r.output, "%d\t%s\n", root.Hits, root.Path); err != nil {
				return err
			}
		}
		return nil
	case *display.FindResult:
		if !v.Found {
			return nil
		}
		_, err := fmt.Fprintln(r.output, v.Path)
		return err
	case *display.CopyResult:
		return r.renderCopy(v)
	default:
		// For unknown types, just print them
		_, err := fmt.Fprintf(r.output, "%+v\n", result)
		return err
	}
}

func (r *Renderer) renderCopy(v *display.CopyResult) error {
	if _, err := fmt.Fprintf(r.output, "%d copied, %d updated, %d up to date\n",
		v.Copied, v.Updated, v.UpToDate); err != nil {
		return err
	}
	for _, f := range v.Failures {
		if _, err := fmt.Fprintf(r.output, "failed: %s -> %s: %s\n", f.Source, f.Dest, f.Error); err != nil {
			return err
		}
	}
	return nil
}

// RenderError renders an error as plain text
func (r *Renderer) RenderError(err error) error {
	_, err2 := fmt.Fprintf(r.output, "Error: %v\n", err)
	return err2
}

// RenderMessage renders a simple message
func (r *Renderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintln(r.output, msg)
	return err
}
