package artist

import (
	"image"
	"math"

	"golang.org/x/image/vector"

	"github.com/gogpu/pixelhouse"
)

// Background paints the whole canvas with one color.
type Background struct {
	Color any
	Blend bool
}

// Put records the background fill.
func (a Background) Put(c *pixelhouse.Canvas, opts ...pixelhouse.AppendOption) error {
	rgb, err := c.TransformColor(defaultColor(a.Color))
	if err != nil {
		return err
	}
	return c.Append(backgroundOp, []any{rgb}, a.Blend, opts...)
}

var backgroundOp = pixelhouse.DrawFunc(func(dst *pixelhouse.Buffer, args []any) error {
	col, err := arg[pixelhouse.RGB](args, 0)
	if err != nil {
		return err
	}
	dst.Fill(col)
	return nil
})

// Rectangle is an axis-aligned rectangle between two corners.
type Rectangle struct {
	X0, Y0, X1, Y1 float64
	Color          any
	Thickness      float64
	Blend          bool
}

type rectArgs struct {
	r   image.Rectangle
	pen pen
}

// Put records the rectangle.
func (a Rectangle) Put(c *pixelhouse.Canvas, opts ...pixelhouse.AppendOption) error {
	p, err := newPen(c, a.Color, a.Thickness, true)
	if err != nil {
		return err
	}
	r := image.Rectangle{Min: c.Transform().Point(a.X0, a.Y0), Max: c.Transform().Point(a.X1, a.Y1)}.Canon()
	return c.Append(rectangleOp, []any{rectArgs{r: r, pen: p}}, a.Blend, opts...)
}

var rectangleOp = pixelhouse.DrawFunc(func(dst *pixelhouse.Buffer, args []any) error {
	a, err := arg[rectArgs](args, 0)
	if err != nil {
		return err
	}
	if a.pen.filled() {
		dst.FillRect(a.r, a.pen.color)
		return nil
	}
	// The border is centered on the edges, like a stroked path.
	t := max(int(a.pen.thickness), 1)
	lo, hi := t/2, t-t/2
	outer := image.Rect(a.r.Min.X-lo, a.r.Min.Y-lo, a.r.Max.X+hi, a.r.Max.Y+hi)
	dst.FillRect(image.Rect(outer.Min.X, outer.Min.Y, outer.Max.X, outer.Min.Y+t), a.pen.color)
	dst.FillRect(image.Rect(outer.Min.X, outer.Max.Y-t, outer.Max.X, outer.Max.Y), a.pen.color)
	dst.FillRect(image.Rect(outer.Min.X, outer.Min.Y, outer.Min.X+t, outer.Max.Y), a.pen.color)
	dst.FillRect(image.Rect(outer.Max.X-t, outer.Min.Y, outer.Max.X, outer.Max.Y), a.pen.color)
	return nil
})

// Circle is a circle of radius R centered at (X, Y).
type Circle struct {
	X, Y, R   float64
	Color     any
	Thickness float64
	Blend     bool
	Aliased   bool
}

type ellipseArgs struct {
	cx, cy, rx, ry int
	angle          float64 // clockwise degrees
	pen            pen
}

// Put records the circle.
func (a Circle) Put(c *pixelhouse.Canvas, opts ...pixelhouse.AppendOption) error {
	p, err := newPen(c, a.Color, a.Thickness, a.Aliased)
	if err != nil {
		return err
	}
	r := c.TransformLength(a.R)
	e := ellipseArgs{cx: c.TransformX(a.X), cy: c.TransformY(a.Y), rx: r, ry: r, pen: p}
	return c.Append(ellipseOp, []any{e}, a.Blend, opts...)
}

// Ellipse is an ellipse with semi-axes RX, RY centered at (X, Y) and
// rotated counterclockwise by Angle radians.
type Ellipse struct {
	X, Y, RX, RY float64
	Angle        float64
	Color        any
	Thickness    float64
	Blend        bool
	Aliased      bool
}

// Put records the ellipse.
func (a Ellipse) Put(c *pixelhouse.Canvas, opts ...pixelhouse.AppendOption) error {
	p, err := newPen(c, a.Color, a.Thickness, a.Aliased)
	if err != nil {
		return err
	}
	e := ellipseArgs{
		cx:    c.TransformX(a.X),
		cy:    c.TransformY(a.Y),
		rx:    c.TransformLength(a.RX),
		ry:    c.TransformLength(a.RY),
		angle: c.TransformAngle(a.Angle),
		pen:   p,
	}
	return c.Append(ellipseOp, []any{e}, a.Blend, opts...)
}

var ellipseOp = pixelhouse.DrawFunc(func(dst *pixelhouse.Buffer, args []any) error {
	e, err := arg[ellipseArgs](args, 0)
	if err != nil {
		return err
	}
	theta := e.angle * math.Pi / 180
	ring(dst, e.pen, float64(e.cx), float64(e.cy), float64(e.rx), float64(e.ry), theta)
	return nil
})

// Line is a straight segment from (X0, Y0) to (X1, Y1) with round caps.
type Line struct {
	X0, Y0, X1, Y1 float64
	Color          any
	Thickness      float64
	Blend          bool
	Aliased        bool
}

// Put records the line.
func (a Line) Put(c *pixelhouse.Canvas, opts ...pixelhouse.AppendOption) error {
	return Polyline{
		Points:    [][2]float64{{a.X0, a.Y0}, {a.X1, a.Y1}},
		Color:     a.Color,
		Thickness: a.Thickness,
		Blend:     a.Blend,
		Aliased:   a.Aliased,
	}.Put(c, opts...)
}

// Polyline joins consecutive points with segments. Closed joins the last
// point back to the first.
type Polyline struct {
	Points    [][2]float64
	Closed    bool
	Color     any
	Thickness float64
	Blend     bool
	Aliased   bool
}

type polylineArgs struct {
	pts    []image.Point
	closed bool
	pen    pen
}

// Put records the polyline.
func (a Polyline) Put(c *pixelhouse.Canvas, opts ...pixelhouse.AppendOption) error {
	p, err := newPen(c, a.Color, a.Thickness, a.Aliased)
	if err != nil {
		return err
	}
	t := c.Transform()
	pts := make([]image.Point, len(a.Points))
	for i, pt := range a.Points {
		pts[i] = t.Point(pt[0], pt[1])
	}
	return c.Append(polylineOp, []any{polylineArgs{pts: pts, closed: a.Closed, pen: p}}, a.Blend, opts...)
}

var polylineOp = pixelhouse.DrawFunc(func(dst *pixelhouse.Buffer, args []any) error {
	a, err := arg[polylineArgs](args, 0)
	if err != nil {
		return err
	}
	if len(a.pts) == 0 {
		return nil
	}
	width := max(a.pen.thickness, 1)
	fill(dst, a.pen, func(z *vector.Rasterizer) {
		n := len(a.pts)
		if !a.closed {
			n--
		}
		if n == 0 {
			p := a.pts[0]
			segment(z, float64(p.X), float64(p.Y), float64(p.X), float64(p.Y), width)
			return
		}
		for i := 0; i < n; i++ {
			p, q := a.pts[i], a.pts[(i+1)%len(a.pts)]
			segment(z, float64(p.X), float64(p.Y), float64(q.X), float64(q.Y), width)
		}
	})
	return nil
})
