// Package ngofile implements the ngofile command line.
package ngofile

import (
	"embed"
	"fmt"
	"io/fs"

	"github.com/arthur-debert/ngofile/internal/version"
	"github.com/arthur-debert/ngofile/pkg/cobrax/topics"
	"github.com/arthur-debert/ngofile/pkg/config"
	"github.com/arthur-debert/ngofile/pkg/logging"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

//go:embed topics
var topicsFS embed.FS

// globals holds the persistent flag values shared by every command
type globals struct {
	verbosity int
	cfgFile   string
	output    string
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	initTemplateFormatting()

	g := &globals{}

	rootCmd := &cobra.Command{
		Use:     "ngofile",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Resolved(),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logOpts := logging.Options{Verbosity: g.verbosity, Console: cmd.ErrOrStderr()}
			logging.Setup(logOpts)

			cfg, err := config.Load(config.Options{File: g.cfgFile})
			if err != nil {
				return err
			}
			config.Initialize(cfg)

			if g.verbosity == 0 && cfg.Logging.Verbosity > 0 {
				logOpts.Verbosity = cfg.Logging.Verbosity
				logging.Setup(logOpts)
			}
			logging.LogCommand(cmd.CommandPath(), args)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = cmd.Help()
			return fmt.Errorf("no command specified")
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	// Global flags
	rootCmd.PersistentFlags().CountVarP(&g.verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVar(&g.cfgFile, "config", "", MsgFlagConfig)
	rootCmd.PersistentFlags().StringVarP(&g.output, "output", "o", "auto", MsgFlagOutput)

	rootCmd.AddGroup(&cobra.Group{
		ID:    "core",
		Title: "COMMANDS:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "registry",
		Title: "REGISTRY:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "misc",
		Title: "MISC:",
	})
	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(newListCmd(g))
	rootCmd.AddCommand(newZipCmd(g))
	rootCmd.AddCommand(newCopyCmd(g))
	rootCmd.AddCommand(newFindCmd(g))
	rootCmd.AddCommand(newRootsCmd(g))
	rootCmd.AddCommand(newGenConfigCmd())
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())
	rootCmd.AddCommand(newManCmd())

	// Topic-based help over the embedded topics directory
	sub, err := fs.Sub(topicsFS, "topics")
	if err == nil {
		_, err = topics.InitializeWithOptions(rootCmd, sub, topics.Options{
			Renderer: topics.NewHeadingRenderer(),
		})
	}
	if err != nil {
		log.Warn().Err(err).Msg("Help topics unavailable")
	}
	rootCmd.SetHelpCommandGroupID("misc")

	return rootCmd
}
