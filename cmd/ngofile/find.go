package ngofile

import (
	"github.com/arthur-debert/ngofile/pkg/config"
	"github.com/arthur-debert/ngofile/pkg/logging"
	"github.com/arthur-debert/ngofile/pkg/ui/display"
	"github.com/arthur-debert/ngofile/pkg/walker"
	"github.com/spf13/cobra"
)

func newFindCmd(g *globals) *cobra.Command {
	var (
		src       source
		exists    bool
		all       bool
		recursive bool
	)

	cmd := &cobra.Command{
		Use:     "find PATTERN...",
		Short:   MsgFindShort,
		Long:    MsgFindLong,
		Example: MsgFindExample,
		GroupID: "registry",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.GetLogger("cmd.find")
			cfg := config.Get()

			sess, err := src.open(cfg)
			if err != nil {
				return err
			}

			switch {
			case exists:
				err = findExists(sess, args)
			case all:
				err = findAll(g, cmd, sess, args, walker.Options{
					Recursive:  recursive,
					FolderMode: cfg.FolderMode(),
				})
			default:
				err = findFirst(g, cmd, sess, args)
			}

			if saveErr := sess.save(); saveErr != nil {
				logger.Warn().Err(saveErr).Msg("Failed to persist registry")
			}
			return err
		},
	}

	cmd.Flags().StringArrayVar(&src.roots, "root", nil, MsgFlagRoot)
	cmd.Flags().StringVar(&src.searchPath, "search-path", "", MsgFlagSearchPath)
	cmd.Flags().BoolVar(&src.modules, "modules", false, MsgFlagModules)
	cmd.Flags().BoolVar(&exists, "exists", false, MsgFlagExists)
	cmd.Flags().BoolVar(&all, "all", false, MsgFlagAll)
	cmd.Flags().BoolVarP(&recursive, "recursive", "r", false, MsgFlagRecursive)
	cmd.MarkFlagsMutuallyExclusive("exists", "all")

	return cmd
}

func findExists(sess *session, patterns []string) error {
	for _, ok := range sess.finder.ExistsAll(patterns) {
		if !ok {
			return errSilent
		}
	}
	return nil
}

func findFirst(g *globals, cmd *cobra.Command, sess *session, patterns []string) error {
	r, err := g.renderer(cmd)
	if err != nil {
		return err
	}

	missing := false
	for _, p := range patterns {
		e, err := sess.finder.PickFirst(p)
		if err != nil {
			return err
		}
		res := &display.FindResult{Query: p, Found: e != nil}
		if e != nil {
			res.Path = e.Path
		} else {
			missing = true
		}
		if err := r.RenderResult(res); err != nil {
			return err
		}
	}
	if missing {
		return errSilent
	}
	return nil
}

func findAll(g *globals, cmd *cobra.Command, sess *session, patterns []string, opts walker.Options) error {
	stream, err := sess.finder.List(patterns, nil, opts)
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
		Command: "find",
		Source:  patterns[0],
		Entries: entries,
	})
}
