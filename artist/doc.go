// Package artist draws shapes onto a pixelhouse canvas.
//
// Each artist is a plain value holding extent-space parameters. Put converts
// them to pixel space through the canvas transformer and color resolver and
// records a deferred operation:
//
//	c := pixelhouse.MustNew(200, 200, 4)
//	artist.Background{Color: "k"}.Put(c)
//	artist.Circle{X: -1, R: 1.5, Color: "red", Blend: true}.Put(c)
//	artist.Circle{X: 1, R: 1.5, Color: "blue", Blend: true}.Put(c)
//	artist.Text{Text: "hello", Y: -3, Size: 0.5, Color: "white"}.Put(c, pixelhouse.OnLayer(1))
//
// Thickness is measured in extent units. Zero or negative thickness fills
// the shape (see pixelhouse.Filled); lines treat it as a one pixel hairline.
//
// Curved shapes are rasterized with antialiasing by golang.org/x/image/vector
// unless Aliased is set, which keeps only pixels at least half covered.
// Axis-aligned rectangles and backgrounds are written pixel-exact.
package artist
