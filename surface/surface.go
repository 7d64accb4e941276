// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"image"
	"image/color"

	"github.com/gogpu/starrating/geom"
)

// Surface is a 2D target that polygons are drawn to.
//
// Surfaces are NOT thread-safe. Each surface should be used from a single
// goroutine, or external synchronization must be used.
//
// Example usage:
//
//	s, err := surface.NewSurfaceByName("gg", 105, 17)
//	if err != nil {
//	    return err
//	}
//	defer s.Close()
//
//	s.Clear(color.Transparent)
//	star, _ := geom.StarPolygon(geom.NewRect(0.5, 0.5, 16, 16), geom.StyleFat)
//	s.Fill(star, surface.FillStyle{Color: color.RGBA{255, 215, 0, 255}})
type Surface interface {
	// Width returns the surface width in pixels.
	Width() int

	// Height returns the surface height in pixels.
	Height() int

	// Clear replaces every pixel with c.
	Clear(c color.Color)

	// Fill fills the polygon, treating open polygons as closed.
	Fill(p geom.Polygon, style FillStyle)

	// Stroke outlines the polygon. Open polygons are stroked as polylines.
	Stroke(p geom.Polygon, style StrokeStyle)

	// Flush ensures all pending drawing operations are complete.
	Flush() error

	// Close releases all resources associated with the surface.
	// Close is idempotent; multiple calls are safe.
	Close() error
}

// Snapshotter is implemented by surfaces whose pixels can be read back.
type Snapshotter interface {
	Surface

	// Snapshot returns a copy of the current contents.
	Snapshot() *image.RGBA
}

// ResizableSurface is an optional interface for surfaces that can change
// size in place.
type ResizableSurface interface {
	Surface

	// Resize changes the surface dimensions. Existing content is discarded.
	Resize(width, height int) error
}
