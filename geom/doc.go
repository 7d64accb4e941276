// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package geom generates the star outlines drawn by the rating widget.
//
// Every shape is derived from a bounding [Rect] and a [StarStyle]. Each style
// carries a fixed table of ten normalized vertices; the absolute outline is
// obtained by scaling the table into the rectangle:
//
//	p := rect.Origin() + fraction * rect.Size()
//
// [StarPolygon] returns the closed ten-point star. [SemiStarPolygon] returns
// the open left half of the same silhouette, built from the first six
// vertices of the same table, so that a half-illuminated star lines up with
// its dull background exactly.
//
// Polygons are values: they are rebuilt each frame and never cached.
//
// # Coordinate System
//
// Origin at top-left, X grows right, Y grows down (same as gg).
package geom
