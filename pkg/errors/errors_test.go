package errors

import (
	stdErrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseErrorWrapsUnderlying(t *testing.T) {
	t.Parallel()

	underlying := fmt.Errorf("unexpected token")
	err := NewParseError("deck.yaml", 12, underlying)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, "deck.yaml", parseErr.Path)
	require.Equal(t, 12, parseErr.Line)
	require.True(t, stdErrors.Is(err, underlying))
	require.Contains(t, err.Error(), "deck.yaml")
}

func TestValidationErrorCarriesField(t *testing.T) {
	t.Parallel()

	err := NewValidationError("slides[1].elements[0].color", "references unknown color", nil)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "slides[1].elements[0].color", validationErr.Field)
	require.Contains(t, validationErr.Message, "references unknown color")
}

func TestConfigurationErrorNamesOffendingKey(t *testing.T) {
	t.Parallel()

	err := NewConfigurationError("theme color", "not-a-real-color")

	var cfgErr *ConfigurationError
	require.ErrorAs(t, err, &cfgErr)
	require.Equal(t, "not-a-real-color", cfgErr.Key)
	require.Contains(t, err.Error(), `"not-a-real-color"`)
	require.Contains(t, err.Error(), "theme color")
}

func TestGeometryErrorFormatsField(t *testing.T) {
	t.Parallel()

	err := NewGeometryError("slides[0].elements[2].box", "exceeds canvas width")

	var geomErr *GeometryError
	require.ErrorAs(t, err, &geomErr)
	require.Contains(t, err.Error(), "slides[0].elements[2].box")
	require.Contains(t, err.Error(), "exceeds canvas width")
}

func TestWriteErrorWrapsUnderlying(t *testing.T) {
	t.Parallel()

	underlying := stdErrors.New("permission denied")
	err := NewWriteError("out/deck.pptx", underlying)

	var writeErr *WriteError
	require.ErrorAs(t, err, &writeErr)
	require.Equal(t, "out/deck.pptx", writeErr.Path)
	require.True(t, stdErrors.Is(err, underlying))
	require.Contains(t, err.Error(), "out/deck.pptx")
}
