// Package manifest parses, validates, and renders declarative deck
// manifests. A manifest is the ordered list of slide specifications that
// drives the deck builder; one generic renderer replaces a per-deck
// generator script.
package manifest

import (
	"gopkg.in/yaml.v3"

	"github.com/slidesmith/slidesmith/internal/canvas"
)

// Manifest represents a full deck manifest document.
type Manifest struct {
	Version string      `yaml:"version" validate:"required"`
	Name    string      `yaml:"name" validate:"required,min=1,max=200"`
	Output  string      `yaml:"output" validate:"required,artifact_path"`
	Theme   ThemeSpec   `yaml:"theme,omitempty"`
	Slides  []SlideSpec `yaml:"slides" validate:"required,min=1,dive"`
}

// ThemeSpec carries per-deck theme overrides layered on the default
// palette. Divergent branding between decks is deliberate configuration,
// so it stays visible here instead of being folded into the defaults.
type ThemeSpec struct {
	Colors map[string]string `yaml:"colors,omitempty"`
}

// SlideSpec is one slide: an ordered list of elements drawn back-to-front
// on top of the implicit full-canvas background.
type SlideSpec struct {
	Elements []Element `yaml:"elements,omitempty" validate:"omitempty,dive"`
}

// Element describes a single slide element, discriminated by Type.
type Element struct {
	Type string `yaml:"type" validate:"required,oneof=title subtitle code bullet box connector text shape"`

	Title     *TitleElement     `yaml:"-"`
	Subtitle  *TitleElement     `yaml:"-"`
	Code      *CodeElement      `yaml:"-"`
	Bullet    *BulletElement    `yaml:"-"`
	Box       *BoxElement       `yaml:"-"`
	Connector *ConnectorElement `yaml:"-"`
	Text      *TextElement      `yaml:"-"`
	Shape     *ShapeElement     `yaml:"-"`
}

// TitleElement configures a title or subtitle composite. When Box is
// omitted the element uses the standard title band, optionally shifted
// with Top.
type TitleElement struct {
	Text  string      `yaml:"text" validate:"required"`
	Box   *canvas.Box `yaml:"box,omitempty"`
	Top   *float64    `yaml:"top,omitempty"`
	Size  int         `yaml:"size,omitempty" validate:"omitempty,min=8,max=120"`
	Color string      `yaml:"color,omitempty"`
}

// CodeElement configures a code block. The text is rendered verbatim in a
// fixed-width font; the box must be sized for the content.
type CodeElement struct {
	Text string     `yaml:"text" validate:"required"`
	Box  canvas.Box `yaml:"box"`
}

// BulletElement configures a single-line bullet point.
type BulletElement struct {
	Text  string       `yaml:"text" validate:"required"`
	At    canvas.Point `yaml:"at"`
	Color string       `yaml:"color,omitempty"`
	Icon  string       `yaml:"icon,omitempty"`
}

// BoxElement configures a labeled box: a filled rounded rectangle with a
// bold title line and optional description lines.
type BoxElement struct {
	Title       string     `yaml:"title" validate:"required"`
	Description string     `yaml:"description,omitempty"`
	Color       string     `yaml:"color" validate:"required"`
	Box         canvas.Box `yaml:"box"`
}

// ConnectorElement configures a straight connector line.
type ConnectorElement struct {
	From  canvas.Point `yaml:"from"`
	To    canvas.Point `yaml:"to"`
	Color string       `yaml:"color,omitempty"`
}

// TextElement is the raw text primitive for layouts the composites do not
// cover.
type TextElement struct {
	Text  string     `yaml:"text" validate:"required"`
	Box   canvas.Box `yaml:"box"`
	Size  int        `yaml:"size" validate:"required,min=8,max=120"`
	Color string     `yaml:"color,omitempty"`
	Bold  bool       `yaml:"bold,omitempty"`
	Align string     `yaml:"align,omitempty" validate:"omitempty,oneof=left center"`
	Wrap  *bool      `yaml:"wrap,omitempty"`
	Mono  bool       `yaml:"mono,omitempty"`
}

// ShapeElement is the raw filled-shape primitive.
type ShapeElement struct {
	Kind  string     `yaml:"kind" validate:"required,oneof=rect rounded"`
	Box   canvas.Box `yaml:"box"`
	Color string     `yaml:"color" validate:"required"`
}

// UnmarshalYAML decodes the element body into the struct matching its
// type, so unrelated keys never collide across element kinds.
func (e *Element) UnmarshalYAML(value *yaml.Node) error {
	var base struct {
		Type string `yaml:"type"`
	}
	if err := value.Decode(&base); err != nil {
		return err
	}
	e.Type = base.Type

	e.Title = nil
	e.Subtitle = nil
	e.Code = nil
	e.Bullet = nil
	e.Box = nil
	e.Connector = nil
	e.Text = nil
	e.Shape = nil

	switch base.Type {
	case "title":
		var el TitleElement
		if err := value.Decode(&el); err != nil {
			return err
		}
		e.Title = &el
	case "subtitle":
		var el TitleElement
		if err := value.Decode(&el); err != nil {
			return err
		}
		e.Subtitle = &el
	case "code":
		var el CodeElement
		if err := value.Decode(&el); err != nil {
			return err
		}
		e.Code = &el
	case "bullet":
		var el BulletElement
		if err := value.Decode(&el); err != nil {
			return err
		}
		e.Bullet = &el
	case "box":
		var el BoxElement
		if err := value.Decode(&el); err != nil {
			return err
		}
		e.Box = &el
	case "connector":
		var el ConnectorElement
		if err := value.Decode(&el); err != nil {
			return err
		}
		e.Connector = &el
	case "text":
		var el TextElement
		if err := value.Decode(&el); err != nil {
			return err
		}
		e.Text = &el
	case "shape":
		var el ShapeElement
		if err := value.Decode(&el); err != nil {
			return err
		}
		e.Shape = &el
	}

	// Unknown types survive decoding so validation can report them with a
	// proper field path.
	return nil
}
