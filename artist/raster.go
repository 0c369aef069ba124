package artist

import (
	"image"
	"image/draw"
	"math"

	"golang.org/x/image/vector"

	"github.com/gogpu/pixelhouse"
)

// kappa is the Bézier control distance for a quarter circle of radius 1.
const kappa = 0.5522847498307936

// aliasThreshold is the coverage at or above which an aliased pixel is set.
const aliasThreshold = 0x80

// fill rasterizes the path built by build onto dst in the pen color. An
// antialiased pen composites coverage source-over; an aliased pen sets
// every pixel with at least half coverage and leaves the rest untouched.
func fill(dst *pixelhouse.Buffer, p pen, build func(z *vector.Rasterizer)) {
	w, h := dst.Width(), dst.Height()
	if w == 0 || h == 0 {
		return
	}
	z := vector.NewRasterizer(w, h)
	build(z)
	if !p.aliased {
		z.DrawOp = draw.Over
		z.Draw(dst, dst.Bounds(), image.NewUniform(p.color), image.Point{})
		return
	}

	mask := image.NewAlpha(dst.Bounds())
	z.DrawOp = draw.Src
	z.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})
	for y := range h {
		for x := range w {
			if mask.AlphaAt(x, y).A >= aliasThreshold {
				dst.SetRGB(x, y, p.color)
			}
		}
	}
}

// ellipsePath appends a closed ellipse centered at (cx, cy) with radii rx, ry
// rotated clockwise by theta radians. reverse flips the winding so the
// ellipse cuts a hole out of a same-path shape wound the other way.
func ellipsePath(z *vector.Rasterizer, cx, cy, rx, ry, theta float64, reverse bool) {
	ox := rx * kappa
	oy := ry * kappa
	if reverse {
		ry, oy = -ry, -oy
	}

	sin, cos := math.Sincos(theta)
	pt := func(x, y float64) (float32, float32) {
		return float32(cx + x*cos - y*sin), float32(cy + x*sin + y*cos)
	}
	cubic := func(x1, y1, x2, y2, x3, y3 float64) {
		ax, ay := pt(x1, y1)
		bx, by := pt(x2, y2)
		ex, ey := pt(x3, y3)
		z.CubeTo(ax, ay, bx, by, ex, ey)
	}

	z.MoveTo(pt(rx, 0))
	cubic(rx, oy, ox, ry, 0, ry)
	cubic(-ox, ry, -rx, oy, -rx, 0)
	cubic(-rx, -oy, -ox, -ry, 0, -ry)
	cubic(ox, -ry, rx, -oy, rx, 0)
	z.ClosePath()
}

// ring draws an ellipse outline of the given width, or a filled ellipse
// when width <= 0 or the inner radius collapses.
func ring(dst *pixelhouse.Buffer, p pen, cx, cy, rx, ry, theta float64) {
	fill(dst, p, func(z *vector.Rasterizer) {
		if p.filled() {
			ellipsePath(z, cx, cy, rx, ry, theta, false)
			return
		}
		half := p.thickness / 2
		ellipsePath(z, cx, cy, rx+half, ry+half, theta, false)
		if rx-half > 0 && ry-half > 0 {
			ellipsePath(z, cx, cy, rx-half, ry-half, theta, true)
		}
	})
}

// segment appends a quad covering the segment (x0,y0)-(x1,y1) widened to
// width, plus round caps. The quad winds negatively for every direction, so
// the caps are reversed ellipses and overlaps merge instead of cancelling.
func segment(z *vector.Rasterizer, x0, y0, x1, y1, width float64) {
	dx, dy := x1-x0, y1-y0
	length := math.Hypot(dx, dy)
	half := width / 2
	if length > 0 {
		nx, ny := -dy/length*half, dx/length*half
		z.MoveTo(float32(x0+nx), float32(y0+ny))
		z.LineTo(float32(x1+nx), float32(y1+ny))
		z.LineTo(float32(x1-nx), float32(y1-ny))
		z.LineTo(float32(x0-nx), float32(y0-ny))
		z.ClosePath()
	}
	if half >= 1 || length == 0 {
		ellipsePath(z, x0, y0, half, half, 0, true)
		ellipsePath(z, x1, y1, half, half, 0, true)
	}
}
