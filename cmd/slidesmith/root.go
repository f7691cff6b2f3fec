package main

import (
	"github.com/spf13/cobra"

	"github.com/slidesmith/slidesmith/internal/logger"
)

type rootFlags struct {
	verbose bool
	outDir  string
}

func newRootCmd(log *logger.Logger) *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "slidesmith",
		Short:         "Slidesmith renders PowerPoint decks from declarative manifests",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// With no subcommand, render every embedded deck.
			if len(args) == 0 {
				return runGenerate(cmd, flags, log, nil)
			}
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().StringVarP(&flags.outDir, "out-dir", "o", ".", "Directory artifacts are written to")

	cmd.AddCommand(newBuildCmd(flags, log))
	cmd.AddCommand(newGenerateCmd(flags, log))
	cmd.AddCommand(newDecksCmd())
	cmd.AddCommand(newVersionCmd())

	return cmd
}
