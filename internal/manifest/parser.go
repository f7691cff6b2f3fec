package manifest

import (
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"

	slidesmitherrors "github.com/slidesmith/slidesmith/pkg/errors"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// Parse loads a manifest file from disk, validates it, and returns the
// resulting model.
func Parse(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, slidesmitherrors.NewParseError(path, 0, err)
	}
	return ParseBytes(path, data)
}

// ParseBytes decodes and validates manifest bytes. The name is used in
// error messages only; embedded manifests pass their asset name.
func ParseBytes(name string, data []byte) (*Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, slidesmitherrors.NewParseError(name, extractLine(err), err)
	}

	if err := Validate(&m); err != nil {
		return nil, err
	}

	return &m, nil
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	if _, scanErr := fmt.Sscanf(matches[1], "%d", &line); scanErr != nil {
		return 0
	}

	return line
}
