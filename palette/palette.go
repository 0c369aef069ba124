// Package palette resolves symbolic color names to concrete colors.
//
// The default palette knows the CSS/SVG color keywords, the single-letter
// base colors (b, g, r, c, m, y, k, w), the tableau colors (tab:blue,
// tab:orange, ...) and hex triplets such as "#ff8800" or "#f80".
package palette

import (
	"errors"
	"fmt"
	"image/color"
	"maps"
	"slices"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// ErrUnknownColor is returned when a name cannot be resolved.
var ErrUnknownColor = errors.New("palette: unknown color name")

// Name is a symbolic color name.
type Name string

// Palette maps color names to opaque colors.
type Palette interface {
	Lookup(name string) (color.RGBA, error)
}

// Named is an immutable name→color table. Lookups ignore case and spaces,
// and fall back to hex parsing for names starting with '#'.
type Named struct {
	colors map[string]color.RGBA
}

// New builds a palette from the given table. Keys are normalized the same
// way lookups are, so "Dark Green" and "darkgreen" collide.
func New(colors map[string]color.RGBA) *Named {
	n := &Named{colors: make(map[string]color.RGBA, len(colors))}
	for k, v := range colors {
		v.A = 0xff
		n.colors[normalize(k)] = v
	}
	return n
}

// Lookup resolves name to a color.
func (n *Named) Lookup(name string) (color.RGBA, error) {
	key := normalize(name)
	if c, ok := n.colors[key]; ok {
		return c, nil
	}
	if strings.HasPrefix(key, "#") {
		return parseHex(name, key)
	}
	return color.RGBA{}, fmt.Errorf("%w: %q", ErrUnknownColor, name)
}

// Names returns the sorted list of names in the table. Hex triplets are
// accepted by Lookup but not listed.
func (n *Named) Names() []string {
	return slices.Sorted(maps.Keys(n.colors))
}

// Len returns the number of named colors.
func (n *Named) Len() int {
	return len(n.colors)
}

func parseHex(name, key string) (color.RGBA, error) {
	c, err := colorful.Hex(key)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("%w: %q: %v", ErrUnknownColor, name, err)
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}, nil
}

func normalize(name string) string {
	return strings.ToLower(strings.ReplaceAll(strings.TrimSpace(name), " ", ""))
}
