// Package scenefile reads TOML scene descriptions and records them onto a
// pixelhouse canvas.
//
// A scene has one [canvas] table and any number of [[shape]] tables:
//
//	[canvas]
//	width = 200
//	height = 200
//	extent = 4.0
//
//	[[shape]]
//	kind = "circle"
//	r = 1.0
//	color = "olive"
//	blend = true
//
// Shapes are recorded in file order. A shape without a layer key joins the
// topmost layer so far.
package scenefile

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/gogpu/pixelhouse"
	"github.com/gogpu/pixelhouse/artist"
)

// Defaults for keys missing from the [canvas] table. Keys that are present
// are passed through unchanged, so explicit zeros are rejected by Build.
const (
	DefaultWidth  = 200
	DefaultHeight = 200
	DefaultExtent = 4.0
)

// ErrUnknownKind is returned for shapes with an unrecognized kind.
var ErrUnknownKind = errors.New("scenefile: unknown shape kind")

// Scene is a decoded scene file.
type Scene struct {
	Canvas Canvas  `toml:"canvas"`
	Shapes []Shape `toml:"shape"`
}

// Canvas holds the construction parameters.
type Canvas struct {
	Width  int     `toml:"width"`
	Height int     `toml:"height"`
	Extent float64 `toml:"extent"`
	Name   string  `toml:"name"`
}

// Shape is one artist invocation. Which fields apply depends on Kind.
type Shape struct {
	Kind string `toml:"kind"`

	X      float64     `toml:"x"`
	Y      float64     `toml:"y"`
	X0     float64     `toml:"x0"`
	Y0     float64     `toml:"y0"`
	X1     float64     `toml:"x1"`
	Y1     float64     `toml:"y1"`
	R      float64     `toml:"r"`
	RX     float64     `toml:"rx"`
	RY     float64     `toml:"ry"`
	Angle  float64     `toml:"angle"`
	Points [][]float64 `toml:"points"`
	Closed bool        `toml:"closed"`
	Text   string      `toml:"text"`
	Size   float64     `toml:"size"`

	Color     string  `toml:"color"`
	Thickness float64 `toml:"thickness"`
	Blend     bool    `toml:"blend"`
	Aliased   bool    `toml:"aliased"`
	Layer     *int    `toml:"layer"`
}

// Decode reads a scene from r. Unknown keys are rejected so typos do not
// silently fall back to defaults.
func Decode(r io.Reader) (*Scene, error) {
	var s Scene
	md, err := toml.NewDecoder(r).Decode(&s)
	if err != nil {
		return nil, fmt.Errorf("scenefile: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("scenefile: unknown keys: %s", strings.Join(keys, ", "))
	}
	s.applyDefaults(md)
	return &s, nil
}

// Load reads a scene from a file.
func Load(path string) (*Scene, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	s, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

func (s *Scene) applyDefaults(md toml.MetaData) {
	if !md.IsDefined("canvas", "width") {
		s.Canvas.Width = DefaultWidth
	}
	if !md.IsDefined("canvas", "height") {
		s.Canvas.Height = DefaultHeight
	}
	if !md.IsDefined("canvas", "extent") {
		s.Canvas.Extent = DefaultExtent
	}
	if s.Canvas.Name == "" {
		s.Canvas.Name = pixelhouse.DefaultName
	}
}

// Build creates the canvas and records every shape on it.
func (s *Scene) Build(opts ...pixelhouse.Option) (*pixelhouse.Canvas, error) {
	opts = append([]pixelhouse.Option{pixelhouse.WithName(s.Canvas.Name)}, opts...)
	c, err := pixelhouse.New(s.Canvas.Width, s.Canvas.Height, s.Canvas.Extent, opts...)
	if err != nil {
		return nil, err
	}
	for i, sh := range s.Shapes {
		a, err := sh.Artist()
		if err != nil {
			return nil, fmt.Errorf("scenefile: shape %d: %w", i, err)
		}
		var aopts []pixelhouse.AppendOption
		if sh.Layer != nil {
			aopts = append(aopts, pixelhouse.OnLayer(*sh.Layer))
		}
		if err := a.Put(c, aopts...); err != nil {
			return nil, fmt.Errorf("scenefile: shape %d (%s): %w", i, sh.Kind, err)
		}
	}
	pixelhouse.Logger().Debug("scenefile: built",
		"canvas", c.Name(), "shapes", len(s.Shapes), "layers", c.Layers().Count())
	return c, nil
}

// Artist converts the shape into the matching artist value.
func (sh Shape) Artist() (artist.Artist, error) {
	var col any
	if sh.Color != "" {
		col = sh.Color
	}
	switch strings.ToLower(sh.Kind) {
	case "background":
		return artist.Background{Color: col, Blend: sh.Blend}, nil
	case "rectangle", "rect":
		return artist.Rectangle{X0: sh.X0, Y0: sh.Y0, X1: sh.X1, Y1: sh.Y1,
			Color: col, Thickness: sh.Thickness, Blend: sh.Blend}, nil
	case "circle":
		return artist.Circle{X: sh.X, Y: sh.Y, R: sh.R,
			Color: col, Thickness: sh.Thickness, Blend: sh.Blend, Aliased: sh.Aliased}, nil
	case "ellipse":
		return artist.Ellipse{X: sh.X, Y: sh.Y, RX: sh.RX, RY: sh.RY, Angle: sh.Angle,
			Color: col, Thickness: sh.Thickness, Blend: sh.Blend, Aliased: sh.Aliased}, nil
	case "line":
		return artist.Line{X0: sh.X0, Y0: sh.Y0, X1: sh.X1, Y1: sh.Y1,
			Color: col, Thickness: sh.Thickness, Blend: sh.Blend, Aliased: sh.Aliased}, nil
	case "polyline", "polygon":
		pts := make([][2]float64, len(sh.Points))
		for i, p := range sh.Points {
			if len(p) != 2 {
				return nil, fmt.Errorf("point %d has %d coordinates, want 2", i, len(p))
			}
			pts[i] = [2]float64{p[0], p[1]}
		}
		return artist.Polyline{Points: pts, Closed: sh.Closed || strings.EqualFold(sh.Kind, "polygon"),
			Color: col, Thickness: sh.Thickness, Blend: sh.Blend, Aliased: sh.Aliased}, nil
	case "text":
		return artist.Text{Text: sh.Text, X: sh.X, Y: sh.Y, Size: sh.Size,
			Color: col, Blend: sh.Blend}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, sh.Kind)
	}
}
