package imageio

import (
	"image"
)

// RGBSource is a packed 3-channel RGB pixel buffer.
type RGBSource interface {
	Width() int
	Height() int
	Pix() []uint8
}

// ToImage repacks src into interleaved RGBA with full opacity.
// This is the only place where canvas pixels change channel layout.
func ToImage(src RGBSource) *image.NRGBA {
	w, h := src.Width(), src.Height()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	pix := src.Pix()
	for y := 0; y < h; y++ {
		s := pix[y*w*3 : (y+1)*w*3]
		d := img.Pix[y*img.Stride : y*img.Stride+w*4]
		for x := 0; x < w; x++ {
			d[x*4+0] = s[x*3+0]
			d[x*4+1] = s[x*3+1]
			d[x*4+2] = s[x*3+2]
			d[x*4+3] = 0xff
		}
	}
	return img
}
