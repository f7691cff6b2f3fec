package main

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"

	"github.com/slidesmith/slidesmith/internal/logger"
)

func newTestRoot(t *testing.T) (*cobra.Command, *bytes.Buffer) {
	t.Helper()

	log, err := logger.New(logger.Options{Level: "error", HumanReadable: true, Writer: &bytes.Buffer{}})
	require.NoError(t, err)

	root := newRootCmd(log)
	buf := &bytes.Buffer{}
	root.SetOut(buf)
	root.SetErr(buf)
	return root, buf
}

func TestVersionCommandOutputsBuildInfo(t *testing.T) {
	originalVersion := version
	originalCommit := commit
	originalDate := date
	t.Cleanup(func() {
		version = originalVersion
		commit = originalCommit
		date = originalDate
	})

	version = "1.2.3"
	commit = "abcdef1"
	date = "2026-08-29"

	root, buf := newTestRoot(t)
	root.SetArgs([]string{"version"})
	require.NoError(t, root.Execute())

	output := buf.String()
	require.Contains(t, output, "1.2.3")
	require.Contains(t, output, "abcdef1")
	require.Contains(t, output, "2026-08-29")
}
