package manifest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	slidesmitherrors "github.com/slidesmith/slidesmith/pkg/errors"
)

const validYAML = `version: "1.0"
name: "Parser Test Deck"
output: "parser-test.pptx"
theme:
  colors:
    accent: "EB5424"
slides:
  - elements:
      - type: title
        text: "Hello"
        size: 72
      - type: subtitle
        text: "A subtitle"
        top: 4.2
  - elements:
      - type: code
        text: |-
          line1
            line2
        box: {left: 1.5, top: 1.5, width: 10, height: 3.5}
      - type: bullet
        text: "First point"
        at: {x: 2, y: 5.4}
        color: accent
        icon: "→"
`

func TestParseBytes(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		contents string
		assert   func(t *testing.T, m *Manifest, err error)
	}{
		{
			name:     "valid manifest is parsed",
			contents: validYAML,
			assert: func(t *testing.T, m *Manifest, err error) {
				require.NoError(t, err)
				require.NotNil(t, m)
				require.Equal(t, "Parser Test Deck", m.Name)
				require.Equal(t, "parser-test.pptx", m.Output)
				require.Len(t, m.Slides, 2)

				title := m.Slides[0].Elements[0]
				require.Equal(t, "title", title.Type)
				require.NotNil(t, title.Title)
				require.Equal(t, 72, title.Title.Size)

				code := m.Slides[1].Elements[0]
				require.NotNil(t, code.Code)
				require.Equal(t, "line1\n  line2", code.Code.Text)

				bullet := m.Slides[1].Elements[1]
				require.NotNil(t, bullet.Bullet)
				require.Equal(t, "→", bullet.Bullet.Icon)
			},
		},
		{
			name:     "malformed yaml reports parse error",
			contents: "version: [1,\nname: broken",
			assert: func(t *testing.T, m *Manifest, err error) {
				var parseErr *slidesmitherrors.ParseError
				require.ErrorAs(t, err, &parseErr)
			},
		},
		{
			name: "missing slides fails validation",
			contents: `version: "1.0"
name: "No Slides"
output: "x.pptx"
`,
			assert: func(t *testing.T, m *Manifest, err error) {
				var validationErr *slidesmitherrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
			},
		},
		{
			name: "output must be a pptx path",
			contents: `version: "1.0"
name: "Bad Output"
output: "deck.pdf"
slides:
  - elements: []
`,
			assert: func(t *testing.T, m *Manifest, err error) {
				var validationErr *slidesmitherrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Contains(t, validationErr.Field, "output")
			},
		},
		{
			name: "unknown element type",
			contents: `version: "1.0"
name: "Bad Element"
output: "x.pptx"
slides:
  - elements:
      - type: hologram
        text: "nope"
`,
			assert: func(t *testing.T, m *Manifest, err error) {
				var validationErr *slidesmitherrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
			},
		},
		{
			name: "unknown color reference",
			contents: `version: "1.0"
name: "Bad Color"
output: "x.pptx"
slides:
  - elements:
      - type: title
        text: "Hi"
        color: not-a-real-color
`,
			assert: func(t *testing.T, m *Manifest, err error) {
				var validationErr *slidesmitherrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Equal(t, "slides[0].elements[0].color", validationErr.Field)
			},
		},
		{
			name: "out of canvas box is a geometry error",
			contents: `version: "1.0"
name: "Bad Box"
output: "x.pptx"
slides:
  - elements:
      - type: code
        text: "x"
        box: {left: 10, top: 1, width: 4, height: 2}
`,
			assert: func(t *testing.T, m *Manifest, err error) {
				var geomErr *slidesmitherrors.GeometryError
				require.ErrorAs(t, err, &geomErr)
				require.Equal(t, "slides[0].elements[0].box", geomErr.Field)
			},
		},
		{
			name: "bad theme override hex",
			contents: `version: "1.0"
name: "Bad Theme"
output: "x.pptx"
theme:
  colors:
    accent: "nope"
slides:
  - elements: []
`,
			assert: func(t *testing.T, m *Manifest, err error) {
				var validationErr *slidesmitherrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Equal(t, "theme.colors", validationErr.Field)
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			m, err := ParseBytes("test.yaml", []byte(tc.contents))
			tc.assert(t, m, err)
		})
	}
}

func TestParseReadsFromDisk(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "deck.yaml")
	require.NoError(t, os.WriteFile(path, []byte(validYAML), 0o644))

	m, err := Parse(path)
	require.NoError(t, err)
	require.Equal(t, "Parser Test Deck", m.Name)
}

func TestParseMissingFile(t *testing.T) {
	t.Parallel()

	_, err := Parse(filepath.Join(t.TempDir(), "absent.yaml"))

	var parseErr *slidesmitherrors.ParseError
	require.ErrorAs(t, err, &parseErr)
}
