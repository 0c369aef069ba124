package pixelhouse

import "errors"

// Sentinel errors returned by the canvas. Callers match them with errors.Is.
var (
	// ErrInvalidCanvas is returned when a canvas is constructed with a
	// non-positive width, height or extent.
	ErrInvalidCanvas = errors.New("pixelhouse: invalid canvas parameters")

	// ErrInvalidLayer is returned when an operation targets a negative layer.
	ErrInvalidLayer = errors.New("pixelhouse: invalid layer index")

	// ErrNilDrawer is returned when an operation is recorded without a
	// drawer, including a nil DrawFunc.
	ErrNilDrawer = errors.New("pixelhouse: nil drawer")

	// ErrInvalidColor is returned by TransformColor for values that are
	// neither a color name nor a color.Color.
	ErrInvalidColor = errors.New("pixelhouse: invalid color value")

	// ErrUnsupported is returned by operations that are intentionally not
	// implemented, such as loading an image into a canvas.
	ErrUnsupported = errors.New("pixelhouse: unsupported operation")
)
