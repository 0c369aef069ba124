package pixelhouse

import (
	"fmt"
	"math"
	"time"

	"github.com/gogpu/pixelhouse/imageio"
	"github.com/gogpu/pixelhouse/palette"
)

// Canvas is a layered raster canvas addressed in extent units.
//
// Drawing is deferred: Append records operations into numbered layers and
// Materialize replays all of them, lowest layer first, onto a freshly
// cleared buffer. The x axis spans [-extent, extent] across the width and
// the y axis grows upward.
//
// A Canvas is owned by a single goroutine. It has no internal locking and
// concurrent Append or Materialize calls are undefined.
type Canvas struct {
	buf     *Buffer
	name    string
	extent  float64
	palette palette.Palette
	layers  *Layers
}

// New creates a canvas of width×height pixels whose x axis spans
// [-extent, extent]. Width, height and extent must be positive and finite.
func New(width, height int, extent float64, opts ...Option) (*Canvas, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: size %dx%d", ErrInvalidCanvas, width, height)
	}
	if !(extent > 0) || math.IsInf(extent, 0) {
		return nil, fmt.Errorf("%w: extent %v", ErrInvalidCanvas, extent)
	}

	options := defaultOptions()
	for _, opt := range opts {
		opt(&options)
	}

	return &Canvas{
		buf:     NewBuffer(width, height),
		name:    options.name,
		extent:  extent,
		palette: options.palette,
		layers:  NewLayers(),
	}, nil
}

// MustNew is like New but panics on invalid parameters.
func MustNew(width, height int, extent float64, opts ...Option) *Canvas {
	c, err := New(width, height, extent, opts...)
	if err != nil {
		panic(err)
	}
	return c
}

// String describes the canvas size and extent.
func (c *Canvas) String() string {
	return fmt.Sprintf("pixelhouse (w/h) %dx%d, extent %g", c.Height(), c.Width(), c.extent)
}

// Width returns the buffer width in pixels.
func (c *Canvas) Width() int {
	return c.buf.Width()
}

// Height returns the buffer height in pixels.
func (c *Canvas) Height() int {
	return c.buf.Height()
}

// Extent returns the half-width of the visible x range.
func (c *Canvas) Extent() float64 {
	return c.extent
}

// Name returns the canvas display name.
func (c *Canvas) Name() string {
	return c.name
}

// Palette returns the palette used by TransformColor.
func (c *Canvas) Palette() palette.Palette {
	return c.palette
}

// Layers returns a read-only view of the recorded operations.
func (c *Canvas) Layers() LayersView {
	return LayersView{l: c.layers}
}

// MaxLayer returns the topmost layer index, or 0 on an empty canvas.
func (c *Canvas) MaxLayer() int {
	return c.layers.Max()
}

// Transform returns the coordinate mapping for the canvas.
func (c *Canvas) Transform() Transform {
	return Transform{Width: c.Width(), Height: c.Height(), Extent: c.extent}
}

// TransformX maps an extent-space x coordinate to a pixel column.
func (c *Canvas) TransformX(x float64) int { return c.Transform().X(x) }

// TransformY maps an extent-space y coordinate to a pixel row.
func (c *Canvas) TransformY(y float64) int { return c.Transform().Y(y) }

// TransformLength scales an extent-space length to pixels.
func (c *Canvas) TransformLength(r float64) int { return c.Transform().Length(r) }

// TransformThickness scales a positive thickness; values <= 0 pass through.
func (c *Canvas) TransformThickness(r float64) float64 { return c.Transform().Thickness(r) }

// TransformAngle converts counterclockwise radians into clockwise degrees.
func (c *Canvas) TransformAngle(rad float64) float64 { return Degrees(rad) }

// Append records a drawing operation. Without OnLayer the operation joins
// the current topmost layer, after everything already there.
//
// args is copied; later changes to the caller's slice have no effect.
func (c *Canvas) Append(d Drawer, args []any, blend bool, opts ...AppendOption) error {
	var o appendOptions
	for _, opt := range opts {
		opt(&o)
	}
	op := NewOperation(d, args, blend)
	if o.hasLayer {
		return c.layers.Append(op, o.layer)
	}
	return c.layers.AppendTop(op)
}

// Materialize clears the buffer and replays every recorded operation,
// layer by layer in ascending order, returning the composited result.
//
// Non-blended operations draw straight onto the canvas buffer. Blended
// operations draw onto a zeroed scratch buffer of the same size that is then
// added onto the canvas buffer with per-channel saturation.
//
// The returned buffer is owned by the canvas and is rewritten by the next
// call. If a drawer fails, Materialize stops and the buffer contents are
// unspecified until a later call succeeds.
func (c *Canvas) Materialize() (*Buffer, error) {
	c.buf.Zero()

	log := Logger()
	var blended int
	for n, ops := range c.layers.Ordered() {
		for i, op := range ops {
			if !op.blend {
				if err := op.draw(c.buf); err != nil {
					return nil, fmt.Errorf("pixelhouse: layer %d op %d: %w", n, i, err)
				}
				continue
			}
			scratch := NewBuffer(c.Width(), c.Height())
			if err := op.draw(scratch); err != nil {
				return nil, fmt.Errorf("pixelhouse: layer %d op %d: %w", n, i, err)
			}
			c.buf.AddSaturating(scratch)
			blended++
		}
	}

	log.Debug("pixelhouse: materialized",
		"canvas", c.name,
		"layers", c.layers.Count(),
		"ops", c.layers.Len(),
		"blended", blended)
	return c.buf, nil
}

// Load always fails: reading an image into a canvas is not supported.
func (c *Canvas) Load(path string) error {
	return fmt.Errorf("%w: load %q", ErrUnsupported, path)
}

// Save materializes the canvas and writes it to path. The format is chosen
// from the file extension; see imageio.Formats.
func (c *Canvas) Save(path string) error {
	buf, err := c.Materialize()
	if err != nil {
		return err
	}
	if err := imageio.Save(path, buf); err != nil {
		return err
	}
	Logger().Info("pixelhouse: saved", "canvas", c.name, "path", path)
	return nil
}

// Show materializes the canvas and hands it to d under the canvas name.
// A zero delay waits for input; a positive delay waits at most that long.
func (c *Canvas) Show(d imageio.Display, delay time.Duration) error {
	buf, err := c.Materialize()
	if err != nil {
		return err
	}
	Logger().Info("pixelhouse: show", "canvas", c.name, "delay", delay)
	return d.Show(c.name, imageio.ToImage(buf), delay)
}
