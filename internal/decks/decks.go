// Package decks carries the deck manifests that ship with the binary.
// Each manifest is a complete declarative deck; the build command renders
// them without any files on disk.
package decks

import (
	"embed"
	"path"
	"sort"
	"strings"

	"github.com/slidesmith/slidesmith/internal/manifest"
	slidesmitherrors "github.com/slidesmith/slidesmith/pkg/errors"
)

//go:embed manifests/*.yaml
var manifestFS embed.FS

const manifestDir = "manifests"

// Names returns the embedded deck names in sorted order. A deck's name is
// its manifest filename without the extension.
func Names() []string {
	entries, err := manifestFS.ReadDir(manifestDir)
	if err != nil {
		// The directory is embedded at compile time; a read failure means
		// the binary itself is broken.
		panic(err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, strings.TrimSuffix(entry.Name(), path.Ext(entry.Name())))
	}
	sort.Strings(names)
	return names
}

// Load parses and validates the embedded deck with the given name.
func Load(name string) (*manifest.Manifest, error) {
	file := path.Join(manifestDir, name+".yaml")
	data, err := manifestFS.ReadFile(file)
	if err != nil {
		return nil, slidesmitherrors.NewConfigurationError("deck", name)
	}
	return manifest.ParseBytes(file, data)
}

// All loads every embedded deck in name order.
func All() ([]*manifest.Manifest, error) {
	var out []*manifest.Manifest
	for _, name := range Names() {
		m, err := Load(name)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, nil
}
