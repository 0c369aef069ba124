package pixelhouse

import (
	"image"
	"math"
)

// Filled is the thickness sentinel meaning "fill the shape".
// Thickness values <= 0 are never rescaled.
const Filled = -1

// Transform maps extent-space coordinates onto pixel coordinates for a
// canvas of the given size. Extent is the half-width of the visible x range:
// x in [-Extent, Extent] spans the full width, and y grows upward.
//
// All pixel results truncate toward zero.
type Transform struct {
	Width  int
	Height int
	Extent float64
}

// X maps an extent-space x coordinate to a pixel column.
func (t Transform) X(x float64) int {
	w := float64(t.Width)
	x *= w / 2
	x /= t.Extent
	x += w / 2
	return int(x)
}

// Y maps an extent-space y coordinate to a pixel row. The axis is flipped:
// positive y points up on the canvas and down in the buffer.
func (t Transform) Y(y float64) int {
	h := float64(t.Height)
	y *= -h / 2
	y /= t.Extent
	y += h / 2
	return int(y)
}

// Point maps an extent-space point to pixel coordinates.
func (t Transform) Point(x, y float64) image.Point {
	return image.Pt(t.X(x), t.Y(y))
}

// Length scales an extent-space length to pixels. The scale uses the width
// only, so lengths are exact on square canvases.
func (t Transform) Length(r float64) int {
	r *= float64(t.Width) / t.Extent
	return int(r)
}

// Thickness scales a positive thickness like Length. Values <= 0 are
// returned unchanged; see Filled.
func (t Transform) Thickness(r float64) float64 {
	if r > 0 {
		return float64(t.Length(r))
	}
	return r
}

// Angle converts counterclockwise radians into clockwise degrees.
func (t Transform) Angle(rad float64) float64 {
	return Degrees(rad)
}

// Degrees converts counterclockwise radians into clockwise degrees, the
// orientation used by pixel-space drawing calls.
func Degrees(rad float64) float64 {
	return -rad * (360 / (2 * math.Pi))
}
