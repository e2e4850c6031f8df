package imgproc

import (
	"fmt"
	"image"
	"strings"

	"github.com/disintegration/imaging"

	"github.com/wraxau/AC-laba3/internal/util"
)

// Transform identifies one of the supported pixel operations
type Transform string

const (
	// TransformInvert negates every color channel
	TransformInvert Transform = "invert"

	// TransformGrayscale converts the image to shades of gray
	TransformGrayscale Transform = "grayscale"

	// TransformFlipH mirrors the image around its vertical axis
	TransformFlipH Transform = "fliph"

	// TransformFlipV mirrors the image around its horizontal axis
	TransformFlipV Transform = "flipv"
)

// DefaultTransform is what runs when no transform is configured
const DefaultTransform = TransformInvert

// Transforms returns the supported transforms in display order
func Transforms() []Transform {
	return []Transform{TransformInvert, TransformGrayscale, TransformFlipH, TransformFlipV}
}

// TransformNames returns the canonical transform names for help text
func TransformNames() string {
	names := make([]string, 0, 4)
	for _, t := range Transforms() {
		names = append(names, string(t))
	}
	return strings.Join(names, ", ")
}

// ParseTransform maps user input to a Transform
// Matching is case-insensitive and a few common aliases are accepted
func ParseTransform(s string) (Transform, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "invert", "inverted", "negative":
		return TransformInvert, nil
	case "grayscale", "greyscale", "gray", "grey":
		return TransformGrayscale, nil
	case "fliph", "flip-h", "mirror":
		return TransformFlipH, nil
	case "flipv", "flip-v":
		return TransformFlipV, nil
	default:
		return "", fmt.Errorf("%w: %q (supported: %s)", util.ErrUnsupportedTransform, s, TransformNames())
	}
}

// DefaultPrefix returns the output name prefix conventional for the transform
func (t Transform) DefaultPrefix() string {
	switch t {
	case TransformInvert:
		return "inverted_"
	case TransformGrayscale:
		return "grayscale_"
	case TransformFlipH, TransformFlipV:
		return "flipped_"
	default:
		return "processed_"
	}
}

// apply runs the pixel operation on a decoded image
func (t Transform) apply(img image.Image) image.Image {
	switch t {
	case TransformInvert:
		return imaging.Invert(img)
	case TransformGrayscale:
		return imaging.Grayscale(img)
	case TransformFlipH:
		return imaging.FlipH(img)
	case TransformFlipV:
		return imaging.FlipV(img)
	default:
		return img
	}
}
