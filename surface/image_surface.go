// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"image"
	"image/color"

	"github.com/gogpu/gg"

	"github.com/gogpu/starrating/geom"
)

// ImageSurface is a CPU surface backed by a gg.Context.
//
// It uses gg's software rasterizer with analytic anti-aliasing and is the
// default backend.
//
// Example:
//
//	s := surface.NewImageSurface(105, 17)
//	defer s.Close()
//
//	s.Clear(color.White)
//	s.Fill(star, surface.FillStyle{Color: color.RGBA{255, 215, 0, 255}})
//	img := s.Snapshot()
type ImageSurface struct {
	dc     *gg.Context
	closed bool
}

var (
	_ Snapshotter      = (*ImageSurface)(nil)
	_ ResizableSurface = (*ImageSurface)(nil)
)

// NewImageSurface creates a gg-backed surface. Non-positive dimensions are
// raised to one pixel.
func NewImageSurface(width, height int) *ImageSurface {
	o := Options{Width: width, Height: height}.normalize()
	return &ImageSurface{dc: gg.NewContext(o.Width, o.Height)}
}

// Width returns the surface width.
func (s *ImageSurface) Width() int { return s.dc.Width() }

// Height returns the surface height.
func (s *ImageSurface) Height() int { return s.dc.Height() }

// Clear replaces every pixel with c.
func (s *ImageSurface) Clear(c color.Color) {
	if s.closed {
		return
	}
	s.dc.ClearWithColor(gg.FromColor(colorOrTransparent(c)))
}

// Fill fills the polygon.
func (s *ImageSurface) Fill(p geom.Polygon, style FillStyle) {
	if s.closed || p.IsEmpty() {
		return
	}
	s.dc.SetColor(colorOrTransparent(style.Color))
	s.tracePath(p, true)
	if err := s.dc.Fill(); err != nil {
		slogger().Warn("surface: gg fill failed", "err", err)
	}
}

// Stroke outlines the polygon.
func (s *ImageSurface) Stroke(p geom.Polygon, style StrokeStyle) {
	if s.closed || p.Len() < 2 || style.Width <= 0 {
		return
	}
	s.dc.SetColor(colorOrTransparent(style.Color))
	s.dc.SetLineWidth(style.Width)
	switch style.Join {
	case LineJoinBevel:
		s.dc.SetLineJoin(gg.LineJoinBevel)
	default:
		s.dc.SetLineJoin(gg.LineJoinRound)
	}
	s.tracePath(p, p.Closed)
	if err := s.dc.Stroke(); err != nil {
		slogger().Warn("surface: gg stroke failed", "err", err)
	}
}

func (s *ImageSurface) tracePath(p geom.Polygon, closed bool) {
	s.dc.ClearPath()
	s.dc.MoveTo(p.Points[0].X, p.Points[0].Y)
	for _, pt := range p.Points[1:] {
		s.dc.LineTo(pt.X, pt.Y)
	}
	if closed {
		s.dc.ClosePath()
	}
}

// Flush pushes pending accelerated shapes into the pixel buffer.
func (s *ImageSurface) Flush() error {
	if s.closed {
		return nil
	}
	return s.dc.FlushGPU()
}

// Snapshot returns a copy of the current contents.
func (s *ImageSurface) Snapshot() *image.RGBA {
	if err := s.Flush(); err != nil {
		slogger().Warn("surface: gg flush failed", "err", err)
	}
	return toRGBA(s.dc.Image())
}

// Resize reallocates the pixel buffer. Existing content is discarded.
func (s *ImageSurface) Resize(width, height int) error {
	o := Options{Width: width, Height: height}.normalize()
	return s.dc.Resize(o.Width, o.Height)
}

// Close releases the context. Close is idempotent.
func (s *ImageSurface) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	return s.dc.Close()
}
