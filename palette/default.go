package palette

import (
	"image/color"
	"sync"

	"golang.org/x/image/colornames"
)

// baseColors are the single-letter shorthands. Fractional channels are
// truncated, so 0.75 becomes 191 and 0.5 becomes 127.
var baseColors = map[string]color.RGBA{
	"b": {R: 0, G: 0, B: 255, A: 0xff},
	"g": {R: 0, G: 127, B: 0, A: 0xff},
	"r": {R: 255, G: 0, B: 0, A: 0xff},
	"c": {R: 0, G: 191, B: 191, A: 0xff},
	"m": {R: 191, G: 0, B: 191, A: 0xff},
	"y": {R: 191, G: 191, B: 0, A: 0xff},
	"k": {R: 0, G: 0, B: 0, A: 0xff},
	"w": {R: 255, G: 255, B: 255, A: 0xff},
}

// tableauColors is the ten-color categorical cycle.
var tableauColors = map[string]color.RGBA{
	"tab:blue":   {R: 0x1f, G: 0x77, B: 0xb4, A: 0xff},
	"tab:orange": {R: 0xff, G: 0x7f, B: 0x0e, A: 0xff},
	"tab:green":  {R: 0x2c, G: 0xa0, B: 0x2c, A: 0xff},
	"tab:red":    {R: 0xd6, G: 0x27, B: 0x28, A: 0xff},
	"tab:purple": {R: 0x94, G: 0x67, B: 0xbd, A: 0xff},
	"tab:brown":  {R: 0x8c, G: 0x56, B: 0x4b, A: 0xff},
	"tab:pink":   {R: 0xe3, G: 0x77, B: 0xc2, A: 0xff},
	"tab:gray":   {R: 0x7f, G: 0x7f, B: 0x7f, A: 0xff},
	"tab:grey":   {R: 0x7f, G: 0x7f, B: 0x7f, A: 0xff},
	"tab:olive":  {R: 0xbc, G: 0xbd, B: 0x22, A: 0xff},
	"tab:cyan":   {R: 0x17, G: 0xbe, B: 0xcf, A: 0xff},
}

var (
	defaultOnce    sync.Once
	defaultPalette *Named
)

// Default returns the shared default palette. It is immutable and safe
// for concurrent use.
func Default() *Named {
	defaultOnce.Do(func() {
		all := make(map[string]color.RGBA, len(colornames.Map)+len(baseColors)+len(tableauColors))
		for k, v := range colornames.Map {
			all[k] = v
		}
		for k, v := range baseColors {
			all[k] = v
		}
		for k, v := range tableauColors {
			all[k] = v
		}
		defaultPalette = New(all)
	})
	return defaultPalette
}
