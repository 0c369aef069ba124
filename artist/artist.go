package artist

import (
	"fmt"

	"github.com/gogpu/pixelhouse"
)

// Artist records itself onto a canvas.
type Artist interface {
	Put(c *pixelhouse.Canvas, opts ...pixelhouse.AppendOption) error
}

// arg extracts the i-th operation argument as a T.
func arg[T any](args []any, i int) (T, error) {
	var zero T
	if i >= len(args) {
		return zero, fmt.Errorf("artist: missing argument %d", i)
	}
	v, ok := args[i].(T)
	if !ok {
		return zero, fmt.Errorf("artist: argument %d is %T, want %T", i, args[i], zero)
	}
	return v, nil
}

// pen is the resolved color and pixel thickness shared by every shape.
// aliased turns off edge antialiasing.
type pen struct {
	color     pixelhouse.RGB
	thickness float64
	aliased   bool
}

func (p pen) filled() bool {
	return p.thickness <= 0
}

// newPen resolves a color value and an extent-space thickness on c.
func newPen(c *pixelhouse.Canvas, col any, thickness float64, aliased bool) (pen, error) {
	rgb, err := c.TransformColor(defaultColor(col))
	if err != nil {
		return pen{}, err
	}
	return pen{color: rgb, thickness: c.TransformThickness(thickness), aliased: aliased}, nil
}

// defaultColor maps a nil color to white.
func defaultColor(col any) any {
	if col == nil {
		return "white"
	}
	return col
}
