// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"image"
	"image/color"

	fgg "github.com/fogleman/gg"

	"github.com/gogpu/starrating/geom"
)

// FoglemanSurface draws with github.com/fogleman/gg, the library gg's API
// was modelled on. It is useful to compare anti-aliasing between the two.
type FoglemanSurface struct {
	img    *image.RGBA
	dc     *fgg.Context
	closed bool
}

var (
	_ Snapshotter      = (*FoglemanSurface)(nil)
	_ ResizableSurface = (*FoglemanSurface)(nil)
)

// NewFoglemanSurface creates a surface backed by a fogleman/gg context.
func NewFoglemanSurface(width, height int) *FoglemanSurface {
	s := &FoglemanSurface{}
	s.alloc(width, height)
	return s
}

func (s *FoglemanSurface) alloc(width, height int) {
	o := Options{Width: width, Height: height}.normalize()
	s.img = image.NewRGBA(image.Rect(0, 0, o.Width, o.Height))
	s.dc = fgg.NewContextForRGBA(s.img)
}

// Width returns the surface width.
func (s *FoglemanSurface) Width() int { return s.dc.Width() }

// Height returns the surface height.
func (s *FoglemanSurface) Height() int { return s.dc.Height() }

// Clear replaces every pixel with c.
func (s *FoglemanSurface) Clear(c color.Color) {
	if s.closed {
		return
	}
	s.dc.SetColor(colorOrTransparent(c))
	s.dc.Clear()
}

// Fill fills the polygon.
func (s *FoglemanSurface) Fill(p geom.Polygon, style FillStyle) {
	if s.closed || p.IsEmpty() {
		return
	}
	s.dc.SetColor(colorOrTransparent(style.Color))
	s.tracePath(p, true)
	s.dc.Fill()
}

// Stroke outlines the polygon.
func (s *FoglemanSurface) Stroke(p geom.Polygon, style StrokeStyle) {
	if s.closed || p.Len() < 2 || style.Width <= 0 {
		return
	}
	s.dc.SetColor(colorOrTransparent(style.Color))
	s.dc.SetLineWidth(style.Width)
	if style.Join == LineJoinBevel {
		s.dc.SetLineJoin(fgg.LineJoinBevel)
	} else {
		s.dc.SetLineJoin(fgg.LineJoinRound)
	}
	s.tracePath(p, p.Closed)
	s.dc.Stroke()
}

func (s *FoglemanSurface) tracePath(p geom.Polygon, closed bool) {
	s.dc.ClearPath()
	s.dc.MoveTo(p.Points[0].X, p.Points[0].Y)
	for _, pt := range p.Points[1:] {
		s.dc.LineTo(pt.X, pt.Y)
	}
	if closed {
		s.dc.ClosePath()
	}
}

// Flush is a no-op; drawing is synchronous.
func (s *FoglemanSurface) Flush() error { return nil }

// Snapshot returns a copy of the current contents.
func (s *FoglemanSurface) Snapshot() *image.RGBA {
	return toRGBA(s.img)
}

// Resize reallocates the pixel buffer. Existing content is discarded.
func (s *FoglemanSurface) Resize(width, height int) error {
	s.alloc(width, height)
	return nil
}

// Close drops the context. Close is idempotent.
func (s *FoglemanSurface) Close() error {
	s.closed = true
	return nil
}
