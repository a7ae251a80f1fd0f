package ngofile

import (
	"github.com/arthur-debert/ngofile/pkg/config"
	"github.com/arthur-debert/ngofile/pkg/errors"
	"github.com/arthur-debert/ngofile/pkg/filesystem"
	"github.com/arthur-debert/ngofile/pkg/treecopy"
	"github.com/arthur-debert/ngofile/pkg/ui/display"
	"github.com/spf13/cobra"
)

func newCopyCmd(g *globals) *cobra.Command {
	var (
		includes     []string
		excludes     []string
		noRecursive  bool
		noCreateDirs bool
	)

	cmd := &cobra.Command{
		Use:     "copy SRC DEST...",
		Aliases: []string{"cp"},
		Short:   MsgCopyShort,
		Long:    MsgCopyLong,
		Example: MsgCopyExample,
		GroupID: "core",
		Args:    cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Get()
			src, dsts := args[0], args[1:]

			opts := treecopy.Options{
				Includes:   includes,
				Excludes:   excludes,
				Recursive:  cfg.Copy.Recursive && !noRecursive,
				CreateDirs: cfg.Copy.CreateDirs && !noCreateDirs,
			}
			progress := newCopyProgress(cmd.ErrOrStderr())
			opts.Progress = progress.update

			res, err := treecopy.New(filesystem.NewOS()).CopyAll(src, dsts, opts)
			progress.stop()
			if err != nil && !errors.IsErrorCode(err, errors.ErrCopy) {
				return err
			}

			r, rerr := g.renderer(cmd)
			if rerr != nil {
				return rerr
			}
			if rerr := r.RenderResult(display.NewCopyResult(src, dsts, res)); rerr != nil {
				return rerr
			}
			return err
		},
	}

	cmd.Flags().StringArrayVarP(&includes, "include", "i", nil, MsgFlagInclude)
	cmd.Flags().StringArrayVarP(&excludes, "exclude", "e", nil, MsgFlagExclude)
	cmd.Flags().BoolVar(&noRecursive, "no-recursive", false, MsgFlagNoRecursive)
	cmd.Flags().BoolVar(&noCreateDirs, "no-create-dirs", false, MsgFlagNoCreateDirs)

	return cmd
}
