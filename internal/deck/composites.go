package deck

import (
	"github.com/slidesmith/slidesmith/internal/canvas"
)

// Layout constants shared by the composite builders, in inches except
// where noted.
const (
	codeInset        = 0.2
	boxInsetX        = 0.2
	boxInsetY        = 0.3
	bulletWidth      = 10.0
	bulletHeight     = 0.6
	connectorWidthPt = 2
)

// Title adds a centered, bold, word-wrapped title. A zero size or empty
// color falls back to the theme defaults.
func (s *Slide) Title(text string, box canvas.Box, size int, colorRef string) error {
	if size == 0 {
		size = s.deck.theme.Sizes().Title
	}
	if colorRef == "" {
		colorRef = "white"
	}
	tb, err := s.TextBox(box)
	if err != nil {
		return err
	}
	return tb.SetAlign(AlignCenter).AddRun(text, size, true, colorRef)
}

// Subtitle adds a centered, word-wrapped line of secondary text.
func (s *Slide) Subtitle(text string, box canvas.Box, size int, colorRef string) error {
	if size == 0 {
		size = s.deck.theme.Sizes().Subtitle
	}
	if colorRef == "" {
		colorRef = "gray"
	}
	tb, err := s.TextBox(box)
	if err != nil {
		return err
	}
	return tb.SetAlign(AlignCenter).AddRun(text, size, false, colorRef)
}

// CodeBlock adds a rounded surface with an inset monospace text block.
// Word wrap is off and the code string is preserved verbatim, leading
// whitespace and line breaks included; the caller owns choosing a box
// large enough for the content.
func (s *Slide) CodeBlock(code string, box canvas.Box) error {
	if err := s.Shape(ShapeRounded, box, "surface"); err != nil {
		return err
	}
	tb, err := s.TextBox(box.Inset(codeInset))
	if err != nil {
		return err
	}
	return tb.SetWrap(false).SetMono().AddRun(code, s.deck.theme.Sizes().Code, false, "code")
}

// Bullet adds a single-line bullet at the given position. A non-empty icon
// is prefixed, separated from the text by two spaces.
func (s *Slide) Bullet(text string, at canvas.Point, colorRef, icon string) error {
	if colorRef == "" {
		colorRef = "white"
	}
	if icon != "" {
		text = icon + "  " + text
	}
	tb, err := s.TextBox(canvas.Rect(at.X, at.Y, bulletWidth, bulletHeight))
	if err != nil {
		return err
	}
	return tb.AddRun(text, s.deck.theme.Sizes().Bullet, false, colorRef)
}

// LabeledBox adds a filled rounded rectangle with a centered bold title
// line and regular description lines beneath it.
func (s *Slide) LabeledBox(title, description, colorRef string, box canvas.Box) error {
	if err := s.Shape(ShapeRounded, box, colorRef); err != nil {
		return err
	}

	inner := canvas.Rect(box.Left+boxInsetX, box.Top+boxInsetY, box.Width-2*boxInsetX, box.Height-boxInsetY-0.1)
	tb, err := s.TextBox(inner)
	if err != nil {
		return err
	}
	tb.SetAlign(AlignCenter)
	if err := tb.AddRun(title, s.deck.theme.Sizes().BoxTitle, true, "white"); err != nil {
		return err
	}
	if description == "" {
		return nil
	}
	return tb.AddRun("\n"+description, s.deck.theme.Sizes().BoxBody, false, "code")
}

// Connector adds a straight line between two points, for flow diagrams.
func (s *Slide) Connector(from, to canvas.Point, colorRef string) error {
	if colorRef == "" {
		colorRef = "gray"
	}
	return s.Line(from, to, colorRef, connectorWidthPt)
}
