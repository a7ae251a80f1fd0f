package ngofile

import (
	"strings"

	"github.com/arthur-debert/ngofile/pkg/archive"
	"github.com/arthur-debert/ngofile/pkg/config"
	"github.com/arthur-debert/ngofile/pkg/filesystem"
	"github.com/arthur-debert/ngofile/pkg/pattern"
	"github.com/arthur-debert/ngofile/pkg/types"
	"github.com/arthur-debert/ngofile/pkg/ui/display"
	"github.com/spf13/cobra"
)

func newZipCmd(g *globals) *cobra.Command {
	var patterns patternFlags

	cmd := &cobra.Command{
		Use:     "zip ARCHIVE",
		Short:   MsgZipShort,
		Long:    MsgZipLong,
		Example: MsgZipExample,
		GroupID: "core",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			includes, excludes, recursive := patterns.resolve(cmd, config.Get())

			set, err := pattern.NewSet(includes, excludes)
			if err != nil {
				return err
			}
			names, err := archive.ListFile(filesystem.NewOS(), args[0], set, recursive)
			if err != nil {
				return err
			}

			entries := make([]types.FileEntry, len(names))
			for i, name := range names {
				entries[i] = types.FileEntry{
					Path:  strings.TrimSuffix(name, "/"),
					IsDir: strings.HasSuffix(name, "/"),
				}
			}

			r, err := g.renderer(cmd)
			if err != nil {
				return err
			}
			return r.RenderResult(&display.EntryList{
				Command: "zip",
				Source:  args[0],
				Entries: entries,
			})
		},
	}

	patterns.register(cmd)
	return cmd
}
