package pixelhouse

import "github.com/gogpu/pixelhouse/palette"

// DefaultName is the canvas name used when WithName is not given.
const DefaultName = "pixelhouseImage"

// Option configures a Canvas during creation.
//
// Example:
//
//	c, err := pixelhouse.New(400, 400, 4,
//	    pixelhouse.WithName("sunset"),
//	    pixelhouse.WithPalette(myPalette))
type Option func(*canvasOptions)

// canvasOptions holds optional configuration for Canvas creation.
type canvasOptions struct {
	name    string
	palette palette.Palette
}

// defaultOptions returns the default canvas options.
func defaultOptions() canvasOptions {
	return canvasOptions{
		name:    DefaultName,
		palette: palette.Default(),
	}
}

// WithName sets the canvas name. The name is used as the display
// identifier and never affects compositing.
func WithName(name string) Option {
	return func(o *canvasOptions) {
		o.name = name
	}
}

// WithPalette sets the palette used to resolve color names.
// A nil palette keeps the default.
func WithPalette(p palette.Palette) Option {
	return func(o *canvasOptions) {
		if p != nil {
			o.palette = p
		}
	}
}

// AppendOption configures a single Append call.
type AppendOption func(*appendOptions)

type appendOptions struct {
	layer    int
	hasLayer bool
}

// OnLayer places the operation on the given layer instead of the current
// topmost one. Pass MaxLayer()+1 to start a new layer above everything.
func OnLayer(n int) AppendOption {
	return func(o *appendOptions) {
		o.layer = n
		o.hasLayer = true
	}
}
