// Package deck builds 16:9 slide decks and persists them as .pptx
// artifacts. A Deck exclusively owns its slides, which exclusively own
// their elements; construction is strictly sequential and the first error
// poisons the deck so no partial artifact can ever be saved.
package deck

import (
	"bytes"
	"os"

	ppt "github.com/VantageDataChat/GoPPT"

	"github.com/slidesmith/slidesmith/internal/canvas"
	"github.com/slidesmith/slidesmith/internal/theme"
	slidesmitherrors "github.com/slidesmith/slidesmith/pkg/errors"
)

const (
	creatorName = "slidesmith"
	monoFont    = "Menlo"
)

// Deck is an ordered, append-only sequence of slides bound to one theme.
type Deck struct {
	name   string
	theme  theme.Theme
	pres   *ppt.Presentation
	slides []*Slide
	err    error
}

// New creates an empty deck using the given theme. The underlying document
// is sized to the shared 13.333 in × 7.5 in canvas.
func New(name string, th theme.Theme) *Deck {
	pres := ppt.New()
	props := pres.GetDocumentProperties()
	props.Title = name
	props.Creator = creatorName

	layout := pres.GetLayout()
	layout.CX = canvas.EMU(canvas.Width)
	layout.CY = canvas.EMU(canvas.Height)

	return &Deck{name: name, theme: th, pres: pres}
}

// Name returns the deck's document title.
func (d *Deck) Name() string { return d.name }

// Theme returns the theme the deck resolves colors through.
func (d *Deck) Theme() theme.Theme { return d.theme }

// Err returns the first error recorded during construction, if any.
func (d *Deck) Err() error { return d.err }

// Slides returns the deck's slides in presentation order.
func (d *Deck) Slides() []*Slide { return d.slides }

// AddSlide creates a new slide, paints the full-canvas background as
// element 0, runs build synchronously to populate it, and returns the deck
// for chaining. The previously newest slide is sealed. Once an error is
// recorded all further AddSlide calls are no-ops.
func (d *Deck) AddSlide(build func(*Slide) error) *Deck {
	if d.err != nil {
		return d
	}

	// A fresh presentation already carries one empty slide.
	var ps *ppt.Slide
	if len(d.slides) == 0 {
		ps = d.pres.GetActiveSlide()
	} else {
		ps = d.pres.CreateSlide()
		d.slides[len(d.slides)-1].sealed = true
	}

	s := &Slide{deck: d, ps: ps}
	d.slides = append(d.slides, s)

	if err := s.Shape(ShapeRect, canvas.Full(), "background"); err != nil {
		d.err = err
		return d
	}
	if build != nil {
		if err := build(s); err != nil {
			d.err = err
		}
	}
	return d
}

// Save serializes every slide, in order, to a single .pptx file at path.
// The document is fully rendered in memory first, then written in one
// scoped operation, so the output is never observable half-written. A deck
// with a recorded build error refuses to save and the target is untouched.
func (d *Deck) Save(path string) error {
	if d.err != nil {
		return d.err
	}

	writer, err := ppt.NewWriter(d.pres, ppt.WriterPowerPoint2007)
	if err != nil {
		return slidesmitherrors.NewWriteError(path, err)
	}

	var buf bytes.Buffer
	if err := writer.(*ppt.PPTXWriter).WriteTo(&buf); err != nil {
		return slidesmitherrors.NewWriteError(path, err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return slidesmitherrors.NewWriteError(path, err)
	}
	return nil
}
