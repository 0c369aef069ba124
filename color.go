package pixelhouse

import (
	"fmt"
	"image/color"

	"github.com/gogpu/pixelhouse/palette"
)

// TransformColor resolves v to a concrete color.
//
// Strings and palette.Name values are looked up in the canvas palette and
// the palette error is returned unchanged on failure. RGB values pass through
// untouched, other color.Color values are converted with alpha dropped.
func (c *Canvas) TransformColor(v any) (RGB, error) {
	return resolveColor(c.palette, v)
}

func resolveColor(p palette.Palette, v any) (RGB, error) {
	switch v := v.(type) {
	case RGB:
		return v, nil
	case string:
		return lookup(p, v)
	case palette.Name:
		return lookup(p, string(v))
	case color.Color:
		return toRGB(v), nil
	default:
		return Black, fmt.Errorf("%w: %T", ErrInvalidColor, v)
	}
}

func lookup(p palette.Palette, name string) (RGB, error) {
	rgba, err := p.Lookup(name)
	if err != nil {
		return Black, err
	}
	return RGB{R: rgba.R, G: rgba.G, B: rgba.B}, nil
}
