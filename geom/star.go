// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package geom

import (
	"fmt"
	"strings"
)

// StarStyle selects the vertex table used to build a star.
type StarStyle uint8

const (
	// StyleNormal is a classic five-pointed star with slim arms.
	StyleNormal StarStyle = iota
	// StyleFat is a rounder star with wide arms and a higher waist.
	StyleFat
)

// String returns the style name.
func (s StarStyle) String() string {
	switch s {
	case StyleNormal:
		return "normal"
	case StyleFat:
		return "fat"
	default:
		return fmt.Sprintf("StarStyle(%d)", uint8(s))
	}
}

// Valid reports whether s names a known vertex table.
func (s StarStyle) Valid() bool {
	_, ok := starTables[s]
	return ok
}

// ParseStarStyle converts a style name ("normal", "fat") to a StarStyle.
// Matching is case-insensitive.
func ParseStarStyle(name string) (StarStyle, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "normal":
		return StyleNormal, nil
	case "fat":
		return StyleFat, nil
	default:
		return 0, fmt.Errorf("geom: unknown star style %q", name)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (s StarStyle) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("geom: unknown star style %d", uint8(s))
	}
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *StarStyle) UnmarshalText(text []byte) error {
	v, err := ParseStarStyle(string(text))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// StarVertices is the number of vertices of a full star.
const StarVertices = 10

// SemiStarVertices is the number of vertices of a semi-star. A semi-star
// is the prefix of the full star ending on the vertical midline.
const SemiStarVertices = 6

// fraction is a vertex position relative to a bounding rectangle.
type fraction struct{ fx, fy float64 }

// starTable holds the outline of one style, apex first, running down the
// left side and back up the right side.
type starTable [StarVertices]fraction

var starTables = map[StarStyle]*starTable{
	StyleNormal: {
		{0.5, 0}, {0.38, 0.38}, {0, 0.38}, {0.31, 0.61}, {0.19, 1},
		{0.5, 0.77}, {0.8, 1}, {0.69, 0.61}, {1, 0.38}, {0.61, 0.38},
	},
	StyleFat: {
		{0.5, 0}, {0.31, 0.33}, {0, 0.37}, {0.25, 0.62}, {0.19, 1},
		{0.5, 0.81}, {0.81, 1}, {0.75, 0.62}, {1, 0.37}, {0.69, 0.33},
	},
}

// StarPolygon returns the closed ten-point star of the given style scaled
// into rect. It returns false for an unknown style; callers must then draw
// nothing.
func StarPolygon(rect Rect, style StarStyle) (Polygon, bool) {
	t, ok := starTables[style]
	if !ok {
		return Polygon{}, false
	}
	return Polygon{Points: t.scale(rect, StarVertices), Closed: true}, true
}

// SemiStarPolygon returns the open left half of the star of the given style
// scaled into rect. Its vertices are the first [SemiStarVertices] vertices of
// [StarPolygon] for the same arguments. It returns false for an unknown
// style.
func SemiStarPolygon(rect Rect, style StarStyle) (Polygon, bool) {
	t, ok := starTables[style]
	if !ok {
		return Polygon{}, false
	}
	return Polygon{Points: t.scale(rect, SemiStarVertices)}, true
}

func (t *starTable) scale(rect Rect, n int) []Point {
	pts := make([]Point, n)
	for i := range pts {
		pts[i] = rect.At(t[i].fx, t[i].fy)
	}
	return pts
}
