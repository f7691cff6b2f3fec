package decks

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/slidesmith/slidesmith/internal/manifest"
	slidesmitherrors "github.com/slidesmith/slidesmith/pkg/errors"
)

func TestNamesAreSorted(t *testing.T) {
	t.Parallel()

	require.Equal(t, []string{
		"video-01-the-testing-gap",
		"video-02-meet-payflow",
		"video-03-one-server-unlimited-scenarios",
		"video-04-response-sequences",
	}, Names())
}

func TestEveryEmbeddedDeckValidates(t *testing.T) {
	t.Parallel()

	all, err := All()
	require.NoError(t, err)
	require.Len(t, all, 4)

	slideCounts := map[string]int{
		"The Testing Gap":                 16,
		"Meet PayFlow":                    20,
		"One Server, Unlimited Scenarios": 19,
		"Response Sequences":              9,
	}
	for _, m := range all {
		require.Contains(t, slideCounts, m.Name)
		require.Len(t, m.Slides, slideCounts[m.Name], m.Name)
	}
}

func TestEveryEmbeddedDeckRenders(t *testing.T) {
	t.Parallel()

	all, err := All()
	require.NoError(t, err)

	for _, m := range all {
		d, err := manifest.Render(m)
		require.NoError(t, err, m.Name)
		require.Len(t, d.Slides(), len(m.Slides), m.Name)
	}
}

func TestPayflowDeckCarriesBrandOverrides(t *testing.T) {
	t.Parallel()

	m, err := Load("video-02-meet-payflow")
	require.NoError(t, err)

	require.Equal(t, "EB5424", m.Theme.Colors["auth0"])
	require.Equal(t, "635BFF", m.Theme.Colors["stripe"])
	require.Equal(t, "10B981", m.Theme.Colors["inventory"])
}

func TestLoadUnknownDeck(t *testing.T) {
	t.Parallel()

	_, err := Load("no-such-deck")
	var cfgErr *slidesmitherrors.ConfigurationError
	require.ErrorAs(t, err, &cfgErr)
}
