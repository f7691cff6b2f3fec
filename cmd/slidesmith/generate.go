package main

import (
	"github.com/spf13/cobra"

	"github.com/slidesmith/slidesmith/internal/decks"
	"github.com/slidesmith/slidesmith/internal/logger"
	"github.com/slidesmith/slidesmith/internal/ui"
)

func newGenerateCmd(root *rootFlags, log *logger.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate [deck...]",
		Short: "Render embedded decks (all of them when none are named)",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, root, log, args)
		},
	}

	return cmd
}

func runGenerate(cmd *cobra.Command, root *rootFlags, log *logger.Logger, names []string) error {
	if len(names) == 0 {
		names = decks.Names()
	}

	printer := ui.NewPrinter(cmd.OutOrStdout())
	printer.Headerf("Rendering %d deck(s)", len(names))

	for _, name := range names {
		m, err := decks.Load(name)
		if err != nil {
			return err
		}
		if err := renderManifest(printer, root, log, m); err != nil {
			return err
		}
	}

	return nil
}
