package manifest

import (
	"fmt"

	"github.com/slidesmith/slidesmith/internal/canvas"
	"github.com/slidesmith/slidesmith/internal/deck"
	"github.com/slidesmith/slidesmith/internal/theme"
	slidesmitherrors "github.com/slidesmith/slidesmith/pkg/errors"
)

// Standard bands used when a title or subtitle omits its box, matching
// the canvas margins every deck shares. Top can still be shifted per
// element.
const (
	titleLeft   = 0.5
	titleWidth  = 12.333
	titleHeight = 1.5
	titleTop    = 2.5

	subtitleLeft   = 1.0
	subtitleWidth  = 11.333
	subtitleHeight = 1.0
	subtitleTop    = 4.0
)

// Render builds a deck from a validated manifest. The manifest's theme
// overrides are layered on the default palette before any slide is built.
func Render(m *Manifest) (*deck.Deck, error) {
	th, err := theme.Default().With(m.Theme.Colors)
	if err != nil {
		return nil, err
	}

	d := deck.New(m.Name, th)
	for i := range m.Slides {
		spec := m.Slides[i]
		d.AddSlide(func(s *deck.Slide) error {
			return renderSlide(s, spec)
		})
	}
	if err := d.Err(); err != nil {
		return nil, err
	}
	return d, nil
}

func renderSlide(s *deck.Slide, spec SlideSpec) error {
	for _, el := range spec.Elements {
		if err := renderElement(s, el); err != nil {
			return err
		}
	}
	return nil
}

func renderElement(s *deck.Slide, el Element) error {
	switch el.Type {
	case "title":
		return s.Title(el.Title.Text, titleBand(el.Title), el.Title.Size, el.Title.Color)
	case "subtitle":
		return s.Subtitle(el.Subtitle.Text, subtitleBand(el.Subtitle), el.Subtitle.Size, el.Subtitle.Color)
	case "code":
		return s.CodeBlock(el.Code.Text, el.Code.Box)
	case "bullet":
		return s.Bullet(el.Bullet.Text, el.Bullet.At, el.Bullet.Color, el.Bullet.Icon)
	case "box":
		return s.LabeledBox(el.Box.Title, el.Box.Description, el.Box.Color, el.Box.Box)
	case "connector":
		return s.Connector(el.Connector.From, el.Connector.To, el.Connector.Color)
	case "text":
		return renderText(s, el.Text)
	case "shape":
		return s.Shape(deck.ShapeKind(el.Shape.Kind), el.Shape.Box, el.Shape.Color)
	default:
		return slidesmitherrors.NewValidationError("type", fmt.Sprintf("unknown element type %q", el.Type), nil)
	}
}

func renderText(s *deck.Slide, el *TextElement) error {
	tb, err := s.TextBox(el.Box)
	if err != nil {
		return err
	}
	if el.Align == "center" {
		tb.SetAlign(deck.AlignCenter)
	}
	if el.Wrap != nil {
		tb.SetWrap(*el.Wrap)
	}
	if el.Mono {
		tb.SetMono()
	}
	color := el.Color
	if color == "" {
		color = "white"
	}
	return tb.AddRun(el.Text, el.Size, el.Bold, color)
}

func titleBand(el *TitleElement) canvas.Box {
	if el.Box != nil {
		return *el.Box
	}
	top := titleTop
	if el.Top != nil {
		top = *el.Top
	}
	return canvas.Rect(titleLeft, top, titleWidth, titleHeight)
}

func subtitleBand(el *TitleElement) canvas.Box {
	if el.Box != nil {
		return *el.Box
	}
	top := subtitleTop
	if el.Top != nil {
		top = *el.Top
	}
	return canvas.Rect(subtitleLeft, top, subtitleWidth, subtitleHeight)
}
