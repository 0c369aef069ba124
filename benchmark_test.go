package pixelhouse

import (
	"image"
	"testing"
)

func BenchmarkMaterialize(b *testing.B) {
	c := MustNew(256, 256, 4)
	for i := range 16 {
		_ = c.Append(fillRect(image.Rect(i*8, i*8, 128+i*8, 128+i*8), RGB{R: 20, G: uint8(i * 10)}), nil, i%2 == 0, OnLayer(i%4))
	}
	b.ReportAllocs()
	for b.Loop() {
		if _, err := c.Materialize(); err != nil {
			b.Fatal(err)
		}
	}
}
