// Package canvas defines the slide coordinate system. All geometry is
// expressed in inches on a fixed 16:9 widescreen canvas and converted to
// EMU only at the document boundary.
package canvas

import "math"

const (
	// Width and Height are the canvas dimensions in inches, shared by
	// every slide in every deck.
	Width  = 13.333
	Height = 7.5

	emuPerInch = 914400
)

// EMU converts a length in inches to English Metric Units.
func EMU(inches float64) int64 {
	return int64(math.Round(inches * emuPerInch))
}

// Point is a position on the canvas in inches.
type Point struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// Box is a rectangular region on the canvas in inches.
type Box struct {
	Left   float64 `yaml:"left"`
	Top    float64 `yaml:"top"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// Rect builds a Box from its left/top corner and dimensions.
func Rect(left, top, width, height float64) Box {
	return Box{Left: left, Top: top, Width: width, Height: height}
}

// Full returns the box covering the entire canvas.
func Full() Box {
	return Box{Left: 0, Top: 0, Width: Width, Height: Height}
}

// Inset shrinks the box by the given margin on every side.
func (b Box) Inset(margin float64) Box {
	return Box{
		Left:   b.Left + margin,
		Top:    b.Top + margin,
		Width:  b.Width - 2*margin,
		Height: b.Height - 2*margin,
	}
}

// InCanvas reports whether the box lies entirely within the canvas bounds.
// The deck builder never checks this at runtime; manifest validation and
// tests do.
func (b Box) InCanvas() bool {
	if b.Width <= 0 || b.Height <= 0 {
		return false
	}
	return b.Left >= 0 && b.Top >= 0 &&
		b.Left+b.Width <= Width+epsilon &&
		b.Top+b.Height <= Height+epsilon
}

// InCanvas reports whether the point lies within the canvas bounds.
func (p Point) InCanvas() bool {
	return p.X >= 0 && p.Y >= 0 && p.X <= Width+epsilon && p.Y <= Height+epsilon
}

// Float comparisons tolerate values like 13.333 that represent the full
// canvas width exactly as authored.
const epsilon = 1e-9
