package main

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/slidesmith/slidesmith/internal/logger"
	"github.com/slidesmith/slidesmith/internal/manifest"
	"github.com/slidesmith/slidesmith/internal/ui"
)

func newBuildCmd(root *rootFlags, log *logger.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build <manifest>...",
		Short: "Render decks from manifest files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBuild(cmd, root, log, args)
		},
	}

	return cmd
}

func runBuild(cmd *cobra.Command, root *rootFlags, log *logger.Logger, paths []string) error {
	printer := ui.NewPrinter(cmd.OutOrStdout())

	for _, path := range paths {
		m, err := manifest.Parse(path)
		if err != nil {
			return err
		}
		if err := renderManifest(printer, root, log, m); err != nil {
			return err
		}
	}

	return nil
}

func renderManifest(printer *ui.Printer, root *rootFlags, log *logger.Logger, m *manifest.Manifest) error {
	deckLog := log.WithDeck(m.Name)
	if root.verbose {
		deckLog.WithFields(map[string]any{"slides": len(m.Slides), "output": m.Output}).Debug("rendering deck")
	}

	d, err := manifest.Render(m)
	if err != nil {
		deckLog.Error(err, "deck rendering failed")
		return err
	}

	target := filepath.Join(root.outDir, m.Output)
	if dir := filepath.Dir(target); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}

	if err := d.Save(target); err != nil {
		deckLog.Error(err, "deck save failed")
		return err
	}

	printer.Successf("Created: %s", target)
	printer.Detailf("  %d slides", len(d.Slides()))
	return nil
}
