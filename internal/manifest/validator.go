package manifest

import (
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/slidesmith/slidesmith/internal/canvas"
	"github.com/slidesmith/slidesmith/internal/theme"
	slidesmitherrors "github.com/slidesmith/slidesmith/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	artifactPathPattern = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9._/ -]*\.pptx$`)
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("artifact_path", func(fl validator.FieldLevel) bool {
			return artifactPathPattern.MatchString(fl.Field().String())
		})

		validateInst = v
	})

	return validateInst
}

// Validate performs schema, color-reference, and geometry validation on
// the manifest. Geometry violations surface as GeometryError; everything
// the deck builder would reject later (unknown colors, bad shape kinds) is
// caught here with a field path.
func Validate(m *Manifest) error {
	if m == nil {
		return slidesmitherrors.NewValidationError("manifest", "manifest is nil", nil)
	}

	v := validatorInstance()
	if err := v.Struct(m); err != nil {
		return convertValidationError(err)
	}

	th, err := theme.Default().With(m.Theme.Colors)
	if err != nil {
		return slidesmitherrors.NewValidationError("theme.colors", err.Error(), err)
	}

	for i, slide := range m.Slides {
		for j, el := range slide.Elements {
			if err := validateElement(th, el, fieldForElement(i, j)); err != nil {
				return err
			}
		}
	}

	return nil
}

func validateElement(th theme.Theme, el Element, field string) error {
	v := validatorInstance()

	check := func(spec any) error {
		if err := v.Struct(spec); err != nil {
			return convertValidationError(err)
		}
		return nil
	}

	switch el.Type {
	case "title", "subtitle":
		spec := el.Title
		if el.Type == "subtitle" {
			spec = el.Subtitle
		}
		if spec == nil {
			return slidesmitherrors.NewValidationError(field, "element body is required", nil)
		}
		if err := check(spec); err != nil {
			return err
		}
		if err := checkColor(th, spec.Color, field+".color"); err != nil {
			return err
		}
		band := titleBand(spec)
		if el.Type == "subtitle" {
			band = subtitleBand(spec)
		}
		return checkBox(band, field+".box")
	case "code":
		if el.Code == nil {
			return slidesmitherrors.NewValidationError(field, "element body is required", nil)
		}
		if err := check(el.Code); err != nil {
			return err
		}
		return checkBox(el.Code.Box, field+".box")
	case "bullet":
		if el.Bullet == nil {
			return slidesmitherrors.NewValidationError(field, "element body is required", nil)
		}
		if err := check(el.Bullet); err != nil {
			return err
		}
		if err := checkColor(th, el.Bullet.Color, field+".color"); err != nil {
			return err
		}
		return checkPoint(el.Bullet.At, field+".at")
	case "box":
		if el.Box == nil {
			return slidesmitherrors.NewValidationError(field, "element body is required", nil)
		}
		if err := check(el.Box); err != nil {
			return err
		}
		if err := checkColor(th, el.Box.Color, field+".color"); err != nil {
			return err
		}
		return checkBox(el.Box.Box, field+".box")
	case "connector":
		if el.Connector == nil {
			return slidesmitherrors.NewValidationError(field, "element body is required", nil)
		}
		if err := check(el.Connector); err != nil {
			return err
		}
		if err := checkColor(th, el.Connector.Color, field+".color"); err != nil {
			return err
		}
		if err := checkPoint(el.Connector.From, field+".from"); err != nil {
			return err
		}
		return checkPoint(el.Connector.To, field+".to")
	case "text":
		if el.Text == nil {
			return slidesmitherrors.NewValidationError(field, "element body is required", nil)
		}
		if err := check(el.Text); err != nil {
			return err
		}
		if err := checkColor(th, el.Text.Color, field+".color"); err != nil {
			return err
		}
		return checkBox(el.Text.Box, field+".box")
	case "shape":
		if el.Shape == nil {
			return slidesmitherrors.NewValidationError(field, "element body is required", nil)
		}
		if err := check(el.Shape); err != nil {
			return err
		}
		if err := checkColor(th, el.Shape.Color, field+".color"); err != nil {
			return err
		}
		return checkBox(el.Shape.Box, field+".box")
	default:
		return slidesmitherrors.NewValidationError(field+".type", fmt.Sprintf("unknown element type %q", el.Type), nil)
	}
}

func checkColor(th theme.Theme, ref, field string) error {
	if ref == "" {
		return nil
	}
	if _, err := th.Resolve(ref); err != nil {
		return slidesmitherrors.NewValidationError(field, fmt.Sprintf("references unknown color %q", ref), err)
	}
	return nil
}

func checkBox(b canvas.Box, field string) error {
	if !b.InCanvas() {
		return slidesmitherrors.NewGeometryError(field, fmt.Sprintf(
			"box (%.3f, %.3f, %.3f, %.3f) does not fit the %.3f x %.1f canvas",
			b.Left, b.Top, b.Width, b.Height, canvas.Width, canvas.Height))
	}
	return nil
}

func checkPoint(p canvas.Point, field string) error {
	if !p.InCanvas() {
		return slidesmitherrors.NewGeometryError(field, fmt.Sprintf(
			"point (%.3f, %.3f) is outside the canvas", p.X, p.Y))
	}
	return nil
}

// convertValidationError normalizes validator errors into slidesmith
// validation errors.
func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	if ves, ok := err.(validator.ValidationErrors); ok {
		ve := ves[0]
		field := yamlishFieldName(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		return slidesmitherrors.NewValidationError(field, msg, err)
	}

	return slidesmitherrors.NewValidationError("manifest", err.Error(), err)
}

func yamlishFieldName(fe validator.FieldError) string {
	ns := fe.StructNamespace()
	parts := strings.Split(ns, ".")
	var lowered []string
	for _, part := range parts {
		lowered = append(lowered, strings.ToLower(part))
	}
	return strings.Join(lowered, ".")
}

func fieldForElement(slide, element int) string {
	return fmt.Sprintf("slides[%d].elements[%d]", slide, element)
}
