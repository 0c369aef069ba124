package artist

import (
	"fmt"
	"image"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/pixelhouse"
)

// Text draws a single line of text centered on (X, Y). Size is the em
// height in extent units. Font defaults to Go Regular.
type Text struct {
	Text  string
	X, Y  float64
	Size  float64
	Color any
	Font  *sfnt.Font
	Blend bool
}

type textArgs struct {
	s    string
	x, y int
	size float64
	font *sfnt.Font
	col  pixelhouse.RGB
}

var goRegular = sync.OnceValues(func() (*sfnt.Font, error) {
	return opentype.Parse(goregular.TTF)
})

// Put records the text.
func (a Text) Put(c *pixelhouse.Canvas, opts ...pixelhouse.AppendOption) error {
	col, err := c.TransformColor(defaultColor(a.Color))
	if err != nil {
		return err
	}
	f := a.Font
	if f == nil {
		if f, err = goRegular(); err != nil {
			return fmt.Errorf("artist: load font: %w", err)
		}
	}
	size := a.Size * float64(c.Width()) / c.Extent()
	args := textArgs{s: a.Text, x: c.TransformX(a.X), y: c.TransformY(a.Y), size: size, font: f, col: col}
	return c.Append(textOp, []any{args}, a.Blend, opts...)
}

var textOp = pixelhouse.DrawFunc(func(dst *pixelhouse.Buffer, args []any) error {
	a, err := arg[textArgs](args, 0)
	if err != nil {
		return err
	}
	if a.s == "" || a.size <= 0 {
		return nil
	}
	face, err := opentype.NewFace(a.font, &opentype.FaceOptions{
		Size:    a.size,
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return fmt.Errorf("artist: text face: %w", err)
	}
	defer face.Close()

	d := &font.Drawer{Dst: dst, Src: image.NewUniform(a.col), Face: face}
	m := face.Metrics()
	width := d.MeasureString(a.s)
	d.Dot = fixed.Point26_6{
		X: fixed.I(a.x) - width/2,
		Y: fixed.I(a.y) + (m.Ascent-m.Descent)/2,
	}
	d.DrawString(a.s)
	return nil
})
