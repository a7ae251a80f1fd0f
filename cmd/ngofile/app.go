package ngofile

import (
	"github.com/arthur-debert/ngofile/pkg/config"
	"github.com/arthur-debert/ngofile/pkg/errors"
	"github.com/arthur-debert/ngofile/pkg/pattern"
	"github.com/arthur-debert/ngofile/pkg/types"
	"github.com/arthur-debert/ngofile/pkg/ui"
	"github.com/arthur-debert/ngofile/pkg/walker"
	"github.com/spf13/cobra"
)

// errSilent makes the process exit 1 without printing anything
var errSilent = errors.New(errors.ErrNotFound, "silent")

// IsSilent reports whether err should exit without a message
func IsSilent(err error) bool {
	return err == errSilent
}

// renderer builds the renderer selected by -o for cmd's output
func (g *globals) renderer(cmd *cobra.Command) (ui.Renderer, error) {
	format, err := ui.ParseFormat(g.output)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInvalidInput, "invalid --output")
	}
	return ui.NewRenderer(format, cmd.OutOrStdout())
}

// patternFlags are the include/exclude/recursive flags shared by list, zip
// and copy
type patternFlags struct {
	includes  []string
	excludes  []string
	recursive bool
}

func (p *patternFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringArrayVarP(&p.includes, "include", "i", nil, MsgFlagInclude)
	cmd.Flags().StringArrayVarP(&p.excludes, "exclude", "e", nil, MsgFlagExclude)
	cmd.Flags().BoolVarP(&p.recursive, "recursive", "r", false, MsgFlagRecursive)
}

// resolve fills unset flags from the [list] configuration. The default
// include is left implicit so a wildcard source such as dir/*.go narrows
// the listing instead of being OR'ed with "*".
func (p *patternFlags) resolve(cmd *cobra.Command, cfg *config.Config) (includes, excludes []string, recursive bool) {
	includes, excludes, recursive = p.includes, p.excludes, p.recursive
	if !cmd.Flags().Changed("include") && !isDefaultInclude(cfg.List.Includes) {
		includes = cfg.List.Includes
	}
	if !cmd.Flags().Changed("exclude") {
		excludes = cfg.List.Excludes
	}
	if !cmd.Flags().Changed("recursive") {
		recursive = cfg.List.Recursive
	}
	return includes, excludes, recursive
}

func isDefaultInclude(includes []string) bool {
	return len(includes) == 0 || (len(includes) == 1 && includes[0] == pattern.DefaultInclude)
}

// collect drains a stream, closing it
func collect(s types.Stream) ([]types.FileEntry, error) {
	entries, err := walker.Collect(s)
	if entries == nil {
		entries = []types.FileEntry{}
	}
	return entries, err
}
