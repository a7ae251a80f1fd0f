package ngofile

import (
	"fmt"

	"github.com/arthur-debert/ngofile/pkg/config"
	"github.com/arthur-debert/ngofile/pkg/filesystem"
	"github.com/arthur-debert/ngofile/pkg/registry"
	"github.com/arthur-debert/ngofile/pkg/state"
	"github.com/arthur-debert/ngofile/pkg/ui/display"
	"github.com/spf13/cobra"
)

func newRootsCmd(g *globals) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "roots",
		Short:   MsgRootsShort,
		GroupID: "registry",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: MsgRootsListShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := rootsStore().Load()
			if err != nil {
				return err
			}
			// Re-rank through a registry so vanished roots are dropped
			reg := registry.New(filesystem.NewOS())
			reg.Restore(f.Roots)

			r, err := g.renderer(cmd)
			if err != nil {
				return err
			}
			return r.RenderResult(&display.RootList{Roots: reg.Roots()})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "add DIR...",
		Short: MsgRootsAddShort,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			added := 0
			err := rootsStore().Update(func(f *state.File) error {
				reg := registry.New(filesystem.NewOS())
				reg.Restore(f.Roots)
				added = reg.AddAll(args)
				*f = *state.Snapshot(reg)
				return nil
			})
			if err != nil {
				return err
			}

			r, err := g.renderer(cmd)
			if err != nil {
				return err
			}
			return r.RenderMessage(fmt.Sprintf(MsgRootsAdded, added))
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "clear",
		Short: MsgRootsClearShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := rootsStore().Save(&state.File{}); err != nil {
				return err
			}
			r, err := g.renderer(cmd)
			if err != nil {
				return err
			}
			return r.RenderMessage(MsgRootsCleared)
		},
	})

	return cmd
}

func rootsStore() *state.Store {
	return state.NewStore(config.Get().StateFile())
}
