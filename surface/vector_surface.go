// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/vector"

	"github.com/gogpu/starrating/geom"
)

// roundJoinSegments is the number of edges used to approximate a round join.
const roundJoinSegments = 16

// VectorSurface rasterizes polygons with golang.org/x/image/vector.
//
// The rasterizer only fills, so strokes are expanded into one quad per edge
// plus a join cap per vertex. Every piece is wound the same way so that
// overlapping pieces add up instead of cancelling.
type VectorSurface struct {
	img    *image.RGBA
	ras    *vector.Rasterizer
	closed bool
}

var (
	_ Snapshotter      = (*VectorSurface)(nil)
	_ ResizableSurface = (*VectorSurface)(nil)
)

// NewVectorSurface creates a surface backed by an x/image/vector rasterizer.
func NewVectorSurface(width, height int) *VectorSurface {
	o := Options{Width: width, Height: height}.normalize()
	return &VectorSurface{
		img: image.NewRGBA(image.Rect(0, 0, o.Width, o.Height)),
		ras: vector.NewRasterizer(o.Width, o.Height),
	}
}

// Width returns the surface width.
func (s *VectorSurface) Width() int { return s.img.Bounds().Dx() }

// Height returns the surface height.
func (s *VectorSurface) Height() int { return s.img.Bounds().Dy() }

// Clear replaces every pixel with c.
func (s *VectorSurface) Clear(c color.Color) {
	if s.closed {
		return
	}
	draw.Draw(s.img, s.img.Bounds(), image.NewUniform(colorOrTransparent(c)), image.Point{}, draw.Src)
}

// Fill fills the polygon.
func (s *VectorSurface) Fill(p geom.Polygon, style FillStyle) {
	if s.closed || p.IsEmpty() {
		return
	}
	s.ras.Reset(s.Width(), s.Height())
	s.addContour(p.Points)
	s.draw(style.Color)
}

// Stroke outlines the polygon.
func (s *VectorSurface) Stroke(p geom.Polygon, style StrokeStyle) {
	if s.closed || p.Len() < 2 || style.Width <= 0 {
		return
	}
	s.ras.Reset(s.Width(), s.Height())
	half := style.Width / 2

	n := p.Len()
	edges := n - 1
	if p.Closed {
		edges = n
	}
	for i := 0; i < edges; i++ {
		a, b := p.Points[i], p.Points[(i+1)%n]
		if q, ok := edgeQuad(a, b, half); ok {
			s.addContour(q)
		}
	}
	for i, pt := range p.Points {
		if !p.Closed && (i == 0 || i == n-1) {
			continue
		}
		if style.Join == LineJoinBevel {
			prev, next := p.Points[(i+n-1)%n], p.Points[(i+1)%n]
			for _, tri := range bevelJoin(prev, pt, next, half) {
				s.addContour(tri)
			}
			continue
		}
		s.addContour(disc(pt, half))
	}
	s.draw(style.Color)
}

func (s *VectorSurface) draw(c color.Color) {
	s.ras.DrawOp = draw.Over
	s.ras.Draw(s.img, s.img.Bounds(), image.NewUniform(colorOrTransparent(c)), image.Point{})
}

// addContour adds a closed contour in clockwise screen order.
func (s *VectorSurface) addContour(pts []geom.Point) {
	if len(pts) < 3 {
		return
	}
	if signedArea(pts) < 0 {
		pts = reversed(pts)
	}
	s.ras.MoveTo(float32(pts[0].X), float32(pts[0].Y))
	for _, pt := range pts[1:] {
		s.ras.LineTo(float32(pt.X), float32(pt.Y))
	}
	s.ras.ClosePath()
}

// Flush is a no-op; drawing is synchronous.
func (s *VectorSurface) Flush() error { return nil }

// Snapshot returns a copy of the current contents.
func (s *VectorSurface) Snapshot() *image.RGBA {
	return toRGBA(s.img)
}

// Resize reallocates the pixel buffer. Existing content is discarded.
func (s *VectorSurface) Resize(width, height int) error {
	o := Options{Width: width, Height: height}.normalize()
	s.img = image.NewRGBA(image.Rect(0, 0, o.Width, o.Height))
	s.ras.Reset(o.Width, o.Height)
	return nil
}

// Close drops the pixel buffer. Close is idempotent.
func (s *VectorSurface) Close() error {
	s.closed = true
	return nil
}

func edgeQuad(a, b geom.Point, half float64) ([]geom.Point, bool) {
	d := b.Sub(a)
	length := math.Hypot(d.X, d.Y)
	if length == 0 {
		return nil, false
	}
	n := geom.Pt(-d.Y/length*half, d.X/length*half)
	return []geom.Point{a.Add(n), b.Add(n), b.Sub(n), a.Sub(n)}, true
}

func disc(c geom.Point, r float64) []geom.Point {
	pts := make([]geom.Point, roundJoinSegments)
	for i := range pts {
		a := 2 * math.Pi * float64(i) / roundJoinSegments
		pts[i] = geom.Pt(c.X+r*math.Cos(a), c.Y+r*math.Sin(a))
	}
	return pts
}

// bevelJoin returns the triangles filling the wedges between the two edge
// quads meeting at v. Only the outer one is visible; the inner one lies
// inside the quads.
func bevelJoin(prev, v, next geom.Point, half float64) [][]geom.Point {
	q1, ok1 := edgeQuad(prev, v, half)
	q2, ok2 := edgeQuad(v, next, half)
	if !ok1 || !ok2 {
		return nil
	}
	return [][]geom.Point{
		{v, q1[1], q2[0]},
		{v, q1[2], q2[3]},
	}
}

func signedArea(pts []geom.Point) float64 {
	var a float64
	for i, p := range pts {
		q := pts[(i+1)%len(pts)]
		a += p.X*q.Y - q.X*p.Y
	}
	return a / 2
}

func reversed(pts []geom.Point) []geom.Point {
	out := make([]geom.Point, len(pts))
	for i, p := range pts {
		out[len(pts)-1-i] = p
	}
	return out
}
