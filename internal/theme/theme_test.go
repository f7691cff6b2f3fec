package theme

import (
	"testing"

	"github.com/stretchr/testify/require"

	slidesmitherrors "github.com/slidesmith/slidesmith/pkg/errors"
)

func TestDefaultPalette(t *testing.T) {
	t.Parallel()

	th := Default()

	c, err := th.Color("background")
	require.NoError(t, err)
	require.Equal(t, Color("FF18181B"), c)

	c, err = th.Color("yellow")
	require.NoError(t, err)
	require.Equal(t, Color("FFF59E0B"), c)

	require.Equal(t, 60, th.Sizes().Title)
	require.Equal(t, 14, th.Sizes().Code)
}

func TestUnknownColorFailsWithKey(t *testing.T) {
	t.Parallel()

	th := Default()
	_, err := th.Color("not-a-real-color")
	require.Error(t, err)

	var cfgErr *slidesmitherrors.ConfigurationError
	require.ErrorAs(t, err, &cfgErr)
	require.Equal(t, "not-a-real-color", cfgErr.Key)
}

func TestParseColor(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		ref     string
		want    Color
		wantErr bool
	}{
		{name: "rgb", ref: "EB5424", want: "FFEB5424"},
		{name: "hash rgb", ref: "#635bff", want: "FF635BFF"},
		{name: "argb", ref: "80FFFFFF", want: "80FFFFFF"},
		{name: "too short", ref: "FFF", wantErr: true},
		{name: "not hex", ref: "#GGGGGG", wantErr: true},
		{name: "empty", ref: "", wantErr: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			c, err := ParseColor(tc.ref)
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.want, c)
		})
	}
}

func TestResolveAcceptsNamesAndHex(t *testing.T) {
	t.Parallel()

	th := Default()

	c, err := th.Resolve("blue")
	require.NoError(t, err)
	require.Equal(t, Color("FF3B82F6"), c)

	c, err = th.Resolve("#10B981")
	require.NoError(t, err)
	require.Equal(t, Color("FF10B981"), c)

	_, err = th.Resolve("brand")
	require.Error(t, err)
}

func TestWithLeavesReceiverUntouched(t *testing.T) {
	t.Parallel()

	base := Default()
	branded, err := base.With(map[string]string{
		"accent": "EB5424",
		"blue":   "#635BFF",
	})
	require.NoError(t, err)

	c, err := branded.Color("accent")
	require.NoError(t, err)
	require.Equal(t, Color("FFEB5424"), c)

	c, err = branded.Color("blue")
	require.NoError(t, err)
	require.Equal(t, Color("FF635BFF"), c)

	// the default palette must be unchanged
	c, err = base.Color("blue")
	require.NoError(t, err)
	require.Equal(t, Color("FF3B82F6"), c)
	require.False(t, base.Has("accent"))
}

func TestWithRejectsBadHex(t *testing.T) {
	t.Parallel()

	_, err := Default().With(map[string]string{"accent": "nope"})
	require.Error(t, err)
}
