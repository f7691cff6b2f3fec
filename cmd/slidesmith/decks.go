package main

import (
	"github.com/spf13/cobra"

	"github.com/slidesmith/slidesmith/internal/decks"
	"github.com/slidesmith/slidesmith/internal/ui"
)

func newDecksCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "decks",
		Short: "List the decks embedded in the binary",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			printer := ui.NewPrinter(cmd.OutOrStdout())
			for _, name := range decks.Names() {
				m, err := decks.Load(name)
				if err != nil {
					return err
				}
				printer.Successf("%s", name)
				printer.Detailf("  %s, %d slides, writes %s", m.Name, len(m.Slides), m.Output)
			}
			return nil
		},
	}

	return cmd
}
