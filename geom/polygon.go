// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package geom

// Polygon is an ordered sequence of points.
//
// A closed polygon joins its last point back to the first when stroked.
// An open polygon is stroked as a polyline, but fills still treat it as
// implicitly closed.
type Polygon struct {
	Points []Point
	Closed bool
}

// Len returns the number of vertices.
func (p Polygon) Len() int {
	return len(p.Points)
}

// IsEmpty reports whether the polygon has fewer than three vertices and so
// encloses no area.
func (p Polygon) IsEmpty() bool {
	return len(p.Points) < 3
}

// Bounds returns the smallest rectangle containing every vertex.
func (p Polygon) Bounds() Rect {
	if len(p.Points) == 0 {
		return Rect{}
	}
	minX, minY := p.Points[0].X, p.Points[0].Y
	maxX, maxY := minX, minY
	for _, pt := range p.Points[1:] {
		minX = min(minX, pt.X)
		minY = min(minY, pt.Y)
		maxX = max(maxX, pt.X)
		maxY = max(maxY, pt.Y)
	}
	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}
