// Package theme is the single source of truth for deck colors and default
// type sizes. A Theme is an immutable value; per-deck branding is expressed
// as an explicit override set, never by mutating the defaults.
package theme

import (
	"sort"
	"strings"

	slidesmitherrors "github.com/slidesmith/slidesmith/pkg/errors"
)

// Color is an ARGB hex value ("AARRGGBB"), the form the document layer
// consumes directly.
type Color string

// ParseColor normalizes a hex color reference. Accepted forms are RRGGBB
// and AARRGGBB, with or without a leading '#'. Alpha defaults to opaque.
func ParseColor(ref string) (Color, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(ref), "#")
	switch len(hex) {
	case 6:
		hex = "FF" + hex
	case 8:
	default:
		return "", slidesmitherrors.NewConfigurationError("color value", ref)
	}

	hex = strings.ToUpper(hex)
	for _, r := range hex {
		if (r < '0' || r > '9') && (r < 'A' || r > 'F') {
			return "", slidesmitherrors.NewConfigurationError("color value", ref)
		}
	}
	return Color(hex), nil
}

// Sizes holds the default font sizes, in points, used when a manifest does
// not specify one.
type Sizes struct {
	Title    int
	Subtitle int
	Bullet   int
	Code     int
	BoxTitle int
	BoxBody  int
}

// Theme maps semantic color names to values and carries default type sizes.
type Theme struct {
	colors map[string]Color
	sizes  Sizes
}

// Default returns the shared palette used by every deck unless overridden.
func Default() Theme {
	return Theme{
		colors: map[string]Color{
			"background": "FF18181B", // zinc-900
			"surface":    "FF27272A", // zinc-800
			"white":      "FFFFFFFF",
			"gray":       "FFA1A1AA", // zinc-400
			"code":       "FFE4E4E7", // zinc-200
			"red":        "FFEF4444",
			"yellow":     "FFF59E0B",
			"green":      "FF22C55E",
			"blue":       "FF3B82F6",
			"purple":     "FFA855F7",
			"cyan":       "FF06B6D4",
			"red-dark":   "FF7F1D1D",
			"amber-dark": "FF78350F",
			"blue-dark":  "FF1E40AF",
			"green-dark": "FF166534",
			"red-soft":   "FFFCA5A5",
		},
		sizes: Sizes{
			Title:    60,
			Subtitle: 32,
			Bullet:   28,
			Code:     14,
			BoxTitle: 24,
			BoxBody:  16,
		},
	}
}

// Color resolves a semantic color name. Unknown names fail with a
// ConfigurationError naming the bad key; no default is substituted.
func (t Theme) Color(name string) (Color, error) {
	c, ok := t.colors[name]
	if !ok {
		return "", slidesmitherrors.NewConfigurationError("theme color", name)
	}
	return c, nil
}

// Resolve accepts either a semantic color name or an inline hex value
// (prefixed with '#').
func (t Theme) Resolve(ref string) (Color, error) {
	if strings.HasPrefix(ref, "#") {
		return ParseColor(ref)
	}
	return t.Color(ref)
}

// Has reports whether the theme defines the named color.
func (t Theme) Has(name string) bool {
	_, ok := t.colors[name]
	return ok
}

// Names returns the defined color names in sorted order.
func (t Theme) Names() []string {
	names := make([]string, 0, len(t.colors))
	for name := range t.colors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Sizes returns the default type sizes.
func (t Theme) Sizes() Sizes {
	return t.sizes
}

// With returns a copy of the theme extended with the given name → hex
// overrides. The receiver is left untouched.
func (t Theme) With(overrides map[string]string) (Theme, error) {
	colors := make(map[string]Color, len(t.colors)+len(overrides))
	for name, c := range t.colors {
		colors[name] = c
	}
	for name, ref := range overrides {
		c, err := ParseColor(ref)
		if err != nil {
			return Theme{}, err
		}
		colors[name] = c
	}
	return Theme{colors: colors, sizes: t.sizes}, nil
}
