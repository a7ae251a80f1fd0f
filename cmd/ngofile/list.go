package ngofile

import (
	"strings"

	"github.com/arthur-debert/ngofile/pkg/config"
	"github.com/arthur-debert/ngofile/pkg/errors"
	"github.com/arthur-debert/ngofile/pkg/logging"
	"github.com/arthur-debert/ngofile/pkg/types"
	"github.com/arthur-debert/ngofile/pkg/ui/display"
	"github.com/arthur-debert/ngofile/pkg/walker"
	"github.com/spf13/cobra"
)

func newListCmd(g *globals) *cobra.Command {
	var (
		patterns      patternFlags
		inParents     bool
		folders       int
		ignoreMissing bool
	)

	cmd := &cobra.Command{
		Use:     "list SOURCE...",
		Aliases: []string{"ls"},
		Short:   MsgListShort,
		Long:    MsgListLong,
		Example: MsgListExample,
		GroupID: "core",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.GetLogger("cmd.list")
			cfg := config.Get()

			includes, excludes, recursive := patterns.resolve(cmd, cfg)
			opts := walker.Options{
				Recursive:     recursive,
				InParents:     cfg.List.InParents,
				FolderMode:    cfg.FolderMode(),
				IgnoreMissing: cfg.List.IgnoreMissing,
			}
			if cmd.Flags().Changed("in-parents") {
				opts.InParents = inParents
			}
			if cmd.Flags().Changed("folders") {
				opts.FolderMode = types.FolderMode(folders)
			}
			if cmd.Flags().Changed("ignore-missing") {
				opts.IgnoreMissing = ignoreMissing
			}
			if !opts.FolderMode.Valid() {
				source := "list.folder_mode"
				if cmd.Flags().Changed("folders") {
					source = "--folders"
				}
				return errors.Newf(errors.ErrInvalidInput, "%s must be 0, 1 or 2, got %d", source, int(opts.FolderMode))
			}

			logger.Info().
				Strs("sources", args).
				Strs("includes", includes).
				Strs("excludes", excludes).
				Bool("recursive", opts.Recursive).
				Bool("in_parents", opts.InParents).
				Str("folder_mode", opts.FolderMode.String()).
				Msg("Listing")

			stream, err := walker.ListBatch(args, includes, excludes, opts)
			if err != nil {
				return err
			}
			entries, err := collect(stream)
			if err != nil {
				return err
			}

			r, err := g.renderer(cmd)
			if err != nil {
				return err
			}
			return r.RenderResult(&display.EntryList{
				Command: "list",
				Source:  strings.Join(args, " "),
				Entries: entries,
			})
		},
	}

	patterns.register(cmd)
	cmd.Flags().BoolVar(&inParents, "in-parents", false, MsgFlagInParents)
	cmd.Flags().IntVar(&folders, "folders", 0, MsgFlagFolders)
	cmd.Flags().BoolVar(&ignoreMissing, "ignore-missing", false, MsgFlagIgnoreMissing)

	return cmd
}
