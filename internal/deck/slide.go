package deck

import (
	"errors"
	"math"

	ppt "github.com/VantageDataChat/GoPPT"

	"github.com/slidesmith/slidesmith/internal/canvas"
	slidesmitherrors "github.com/slidesmith/slidesmith/pkg/errors"
)

// ErrSlideSealed is returned when elements are added to a slide after a
// newer slide has been created. Only the most recently created slide may
// receive elements.
var ErrSlideSealed = errors.New("slide is sealed: only the newest slide accepts elements")

// Slide is a single slide under construction. It owns its elements and is
// owned exclusively by its deck.
type Slide struct {
	deck     *Deck
	ps       *ppt.Slide
	elements []*Element
	sealed   bool
}

// Elements returns the slide's elements in creation (z-) order.
func (s *Slide) Elements() []Element {
	out := make([]Element, len(s.elements))
	for i, el := range s.elements {
		out[i] = *el
	}
	return out
}

func (s *Slide) guard() error {
	if s.sealed {
		return ErrSlideSealed
	}
	return nil
}

// TextBox appends an empty text element covering box and returns a handle
// for adding styled runs. The element lands on top of the z-order.
func (s *Slide) TextBox(box canvas.Box) (*TextBox, error) {
	if err := s.guard(); err != nil {
		return nil, err
	}

	sh := s.ps.CreateRichTextShape()
	sh.SetOffsetX(canvas.EMU(box.Left)).
		SetOffsetY(canvas.EMU(box.Top)).
		SetWidth(canvas.EMU(box.Width)).
		SetHeight(canvas.EMU(box.Height))
	sh.SetWordWrap(true)

	el := &Element{Kind: ElementText, Box: box, Align: AlignLeft, Wrap: true}
	s.elements = append(s.elements, el)
	return &TextBox{slide: s, shape: sh, el: el}, nil
}

// Shape appends a filled shape element covering box. The fill reference is
// resolved through the deck's theme; an unsupported kind or unknown color
// fails with a ConfigurationError.
func (s *Slide) Shape(kind ShapeKind, box canvas.Box, fillRef string) error {
	if err := s.guard(); err != nil {
		return err
	}

	fill, err := s.deck.theme.Resolve(fillRef)
	if err != nil {
		return err
	}

	switch kind {
	case ShapeRect:
		sh := s.ps.CreateRichTextShape()
		sh.SetOffsetX(canvas.EMU(box.Left)).
			SetOffsetY(canvas.EMU(box.Top)).
			SetWidth(canvas.EMU(box.Width)).
			SetHeight(canvas.EMU(box.Height))
		sh.SetFill(ppt.NewFill().SetSolid(ppt.NewColor(string(fill))))
	case ShapeRounded:
		sh := ppt.NewAutoShape()
		sh.SetGeometry(ppt.AutoShapeRoundedRect)
		sh.SetSolidFill(ppt.NewColor(string(fill)))
		sh.SetPosition(canvas.EMU(box.Left), canvas.EMU(box.Top))
		sh.SetSize(canvas.EMU(box.Width), canvas.EMU(box.Height))
		s.ps.AddShape(sh)
	default:
		return slidesmitherrors.NewConfigurationError("shape kind", string(kind))
	}

	s.elements = append(s.elements, &Element{
		Kind:    ElementShape,
		Shape:   kind,
		Box:     box,
		Fill:    fill,
		FillRef: fillRef,
	})
	return nil
}

// Line appends a straight line element between two canvas points.
func (s *Slide) Line(from, to canvas.Point, colorRef string, widthPt int) error {
	if err := s.guard(); err != nil {
		return err
	}

	color, err := s.deck.theme.Resolve(colorRef)
	if err != nil {
		return err
	}

	box := canvas.Rect(
		math.Min(from.X, to.X),
		math.Min(from.Y, to.Y),
		math.Abs(to.X-from.X),
		math.Abs(to.Y-from.Y),
	)

	sh := ppt.NewLineShape()
	sh.SetLineColor(ppt.NewColor(string(color))).SetLineWidth(widthPt)
	sh.SetPosition(canvas.EMU(box.Left), canvas.EMU(box.Top))
	sh.SetSize(canvas.EMU(box.Width), canvas.EMU(box.Height))
	// The stored geometry always runs top-left to bottom-right; flip when
	// the requested endpoints slope the other way.
	if (to.X-from.X)*(to.Y-from.Y) < 0 {
		sh.SetFlipVertical(true)
	}
	s.ps.AddShape(sh)

	s.elements = append(s.elements, &Element{
		Kind:    ElementLine,
		Box:     box,
		From:    from,
		To:      to,
		Fill:    color,
		FillRef: colorRef,
	})
	return nil
}

// TextBox is a mutable handle onto a text element. Each AddRun call after
// the first starts a new paragraph.
type TextBox struct {
	slide *Slide
	shape *ppt.RichTextShape
	el    *Element
	runs  int
}

// SetWrap toggles word wrap for the whole text element.
func (t *TextBox) SetWrap(wrap bool) *TextBox {
	t.shape.SetWordWrap(wrap)
	t.el.Wrap = wrap
	return t
}

// SetAlign sets the horizontal alignment applied to every run.
func (t *TextBox) SetAlign(a Align) *TextBox {
	t.el.Align = a
	return t
}

// SetMono switches the element to the fixed-width code font.
func (t *TextBox) SetMono() *TextBox {
	t.el.Mono = true
	return t
}

// AddRun appends a styled paragraph. The text is stored verbatim: embedded
// newlines and leading whitespace survive untouched.
func (t *TextBox) AddRun(text string, size int, bold bool, colorRef string) error {
	color, err := t.slide.deck.theme.Resolve(colorRef)
	if err != nil {
		return err
	}

	var para *ppt.Paragraph
	if t.runs == 0 {
		para = t.shape.GetActiveParagraph()
	} else {
		para = t.shape.CreateParagraph()
	}
	if t.el.Align == AlignCenter {
		para.SetAlignment(ppt.NewAlignment().SetHorizontal(ppt.HorizontalCenter))
	}

	run := para.CreateTextRun(text)
	font := run.GetFont()
	font.SetSize(size).SetBold(bold).SetColor(ppt.NewColor(string(color)))
	if t.el.Mono {
		font.SetName(monoFont)
	}

	if t.runs == 0 {
		t.el.Text = text
		t.el.FontSize = size
		t.el.Bold = bold
		t.el.Color = color
	} else {
		t.el.Text += "\n" + text
	}
	t.runs++
	return nil
}
