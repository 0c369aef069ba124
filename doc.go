// Package pixelhouse provides a layered 2D raster canvas addressed in
// resolution-independent extent units.
//
// # Overview
//
// A [Canvas] records drawing operations into numbered layers and composites
// them on demand. Shapes are drawn by artists (see the artist package); the
// canvas only stores their deferred operations and replays them.
//
//	import (
//	    "github.com/gogpu/pixelhouse"
//	    "github.com/gogpu/pixelhouse/artist"
//	)
//
//	c, _ := pixelhouse.New(200, 200, 4)
//	_ = artist.Circle{R: 1, Color: "olive", Thickness: 0.5}.Put(c)
//	_ = c.Save("circle.png")
//
// # Coordinate System
//
// Extent is the half-width of the visible range along x:
//   - x in [-extent, extent] maps to pixel columns [0, width]
//   - y increases upward; pixel rows increase downward
//   - lengths and thicknesses scale by width/extent
//   - angles are counterclockwise radians, converted to clockwise degrees
//
// # Layers and Blending
//
// Operations without an explicit layer join the current topmost layer.
// [Canvas.Materialize] clears the buffer, then walks layers in ascending
// order. A blended operation draws into a zeroed scratch buffer whose pixels
// are added onto the canvas with per-channel saturation, so overlapping
// blended shapes accumulate like light.
//
// # Concurrency
//
// A Canvas must be used from a single goroutine.
package pixelhouse
