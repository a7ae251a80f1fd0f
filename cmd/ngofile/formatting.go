package ngofile

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/template"

	"github.com/arthur-debert/ngofile/pkg/treecopy"
	"github.com/mattn/go-isatty"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// formatBold renders s in bold when stdout is a terminal
func formatBold(s string) string {
	if !isTerminal(os.Stdout) {
		return s
	}
	return pterm.Bold.Sprint(s)
}

// formatBoldUpper returns the string in uppercase and bold
func formatBoldUpper(s string) string {
	return formatBold(strings.ToUpper(s))
}

// initTemplateFormatting adds custom formatting functions to Cobra templates
func initTemplateFormatting() {
	cobra.AddTemplateFuncs(template.FuncMap{
		"bold":      formatBold,
		"upper":     strings.ToUpper,
		"boldUpper": formatBoldUpper,
	})
}

// copyProgress shows a spinner on stderr while a copy runs. It is a no-op
// unless stderr is a terminal.
type copyProgress struct {
	spinner *pterm.SpinnerPrinter
	count   int
}

func newCopyProgress(w io.Writer) *copyProgress {
	f, ok := w.(*os.File)
	if !ok || !isTerminal(f) {
		return &copyProgress{}
	}
	spinner, err := pterm.DefaultSpinner.WithWriter(w).WithRemoveWhenDone(true).Start("Copying")
	if err != nil {
		return &copyProgress{}
	}
	return &copyProgress{spinner: spinner}
}

func (p *copyProgress) update(e treecopy.Event) {
	p.count++
	if p.spinner != nil {
		p.spinner.UpdateText(fmt.Sprintf("Copying (%d) %s", p.count, e.Source))
	}
}

func (p *copyProgress) stop() {
	if p.spinner != nil {
		_ = p.spinner.Stop()
	}
}
