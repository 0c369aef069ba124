package pixelhouse

import (
	"image"
	"image/color"
)

// RGB is an opaque 8-bit color.
type RGB struct {
	R, G, B uint8
}

// RGBA implements the color.Color interface.
func (c RGB) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R)
	r |= r << 8
	g = uint32(c.G)
	g |= g << 8
	b = uint32(c.B)
	b |= b << 8
	return r, g, b, 0xffff
}

// Black is the zero RGB value.
var Black = RGB{}

// RGBModel converts any color to an opaque RGB, discarding alpha.
var RGBModel = color.ModelFunc(rgbModel)

func rgbModel(c color.Color) color.Color {
	if v, ok := c.(RGB); ok {
		return v
	}
	return toRGB(c)
}

func toRGB(c color.Color) RGB {
	r, g, b, _ := c.RGBA()
	return RGB{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8)}
}

// Buffer is a packed 3-channel pixel buffer, row-major, 8 bits per channel.
// Pixel (x, y) occupies Pix[(y*width+x)*3 : (y*width+x)*3+3] as R, G, B.
//
// Buffer implements draw.Image so rasterizers can draw on it directly.
type Buffer struct {
	width  int
	height int
	pix    []uint8
}

// NewBuffer creates a zeroed (black) buffer with the given dimensions.
func NewBuffer(width, height int) *Buffer {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &Buffer{
		width:  width,
		height: height,
		pix:    make([]uint8, width*height*3),
	}
}

// Width returns the width of the buffer.
func (b *Buffer) Width() int {
	return b.width
}

// Height returns the height of the buffer.
func (b *Buffer) Height() int {
	return b.height
}

// Pix returns the raw pixel data (packed RGB).
func (b *Buffer) Pix() []uint8 {
	return b.pix
}

// Stride returns the number of bytes between vertically adjacent pixels.
func (b *Buffer) Stride() int {
	return b.width * 3
}

// SetRGB sets a single pixel. Out-of-range coordinates are ignored.
func (b *Buffer) SetRGB(x, y int, c RGB) {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return
	}
	i := (y*b.width + x) * 3
	b.pix[i+0] = c.R
	b.pix[i+1] = c.G
	b.pix[i+2] = c.B
}

// RGBAt returns a single pixel. Out-of-range coordinates read as black.
func (b *Buffer) RGBAt(x, y int) RGB {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return Black
	}
	i := (y*b.width + x) * 3
	return RGB{R: b.pix[i+0], G: b.pix[i+1], B: b.pix[i+2]}
}

// Fill sets every pixel to c.
func (b *Buffer) Fill(c RGB) {
	for i := 0; i < len(b.pix); i += 3 {
		b.pix[i+0] = c.R
		b.pix[i+1] = c.G
		b.pix[i+2] = c.B
	}
}

// FillRect sets every pixel of r (clipped to the buffer) to c.
func (b *Buffer) FillRect(r image.Rectangle, c RGB) {
	r = r.Intersect(b.Bounds())
	for y := r.Min.Y; y < r.Max.Y; y++ {
		i := (y*b.width + r.Min.X) * 3
		for x := r.Min.X; x < r.Max.X; x++ {
			b.pix[i+0] = c.R
			b.pix[i+1] = c.G
			b.pix[i+2] = c.B
			i += 3
		}
	}
}

// Zero resets every channel to 0 without reallocating.
func (b *Buffer) Zero() {
	clear(b.pix)
}

// AddSaturating adds src into b channel-wise, clamping each channel at 255.
// Buffers of different sizes are combined over their common area.
func (b *Buffer) AddSaturating(src *Buffer) {
	if b.width == src.width && b.height == src.height {
		addSaturating(b.pix, src.pix)
		return
	}
	w := min(b.width, src.width)
	h := min(b.height, src.height)
	for y := 0; y < h; y++ {
		addSaturating(b.pix[y*b.width*3:(y*b.width+w)*3], src.pix[y*src.width*3:(y*src.width+w)*3])
	}
}

// addSaturating computes dst[i] = min(dst[i]+src[i], 255).
func addSaturating(dst, src []uint8) {
	for i := range dst {
		sum := uint16(dst[i]) + uint16(src[i])
		if sum > 255 {
			sum = 255
		}
		dst[i] = uint8(sum)
	}
}

// At implements the image.Image interface.
func (b *Buffer) At(x, y int) color.Color {
	return b.RGBAt(x, y)
}

// Set implements the draw.Image interface. Alpha is discarded.
func (b *Buffer) Set(x, y int, c color.Color) {
	b.SetRGB(x, y, toRGB(c))
}

// Bounds implements the image.Image interface.
func (b *Buffer) Bounds() image.Rectangle {
	return image.Rect(0, 0, b.width, b.height)
}

// ColorModel implements the image.Image interface.
func (b *Buffer) ColorModel() color.Model {
	return RGBModel
}
