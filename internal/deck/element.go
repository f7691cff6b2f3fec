package deck

import (
	"github.com/slidesmith/slidesmith/internal/canvas"
	"github.com/slidesmith/slidesmith/internal/theme"
)

// ElementKind discriminates the rendered units a slide is composed of.
type ElementKind string

const (
	ElementText  ElementKind = "text"
	ElementShape ElementKind = "shape"
	ElementLine  ElementKind = "line"
)

// ShapeKind names the filled shape geometries the builder supports.
type ShapeKind string

const (
	ShapeRect    ShapeKind = "rect"
	ShapeRounded ShapeKind = "rounded"
)

// Align is the horizontal alignment of a text element.
type Align string

const (
	AlignLeft   Align = "left"
	AlignCenter Align = "center"
)

// Element records one rendered unit of a slide. Elements are append-only
// and draw back-to-front in creation order; index 0 is always the
// full-canvas background shape.
type Element struct {
	Kind  ElementKind
	Shape ShapeKind
	Box   canvas.Box

	// Line endpoints, set only for ElementLine.
	From canvas.Point
	To   canvas.Point

	// Fill is the resolved shape fill; FillRef is the reference it was
	// resolved from (semantic name or inline hex).
	Fill    theme.Color
	FillRef string

	// Text styling. FontSize, Bold and Color describe the first run.
	Text     string
	FontSize int
	Bold     bool
	Color    theme.Color
	Align    Align
	Wrap     bool
	Mono     bool
}
