// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package layout

import "github.com/gogpu/starrating/geom"

// PreferredSize returns the natural widget size for c:
//
//	height = StarSize + BorderWidth
//	width  = StarCount*StarSize + (StarCount-1)*Spacing + StarCount*BorderWidth
//
// Both values are rounded half up to whole device units.
func PreferredSize(c Config) geom.Size {
	h := float64(c.StarSize) + c.BorderWidth
	w := float64(c.TotalStarWidth()+c.TotalSpacing()) + c.TotalBorderWidth()
	return geom.Size{Width: roundHalfUp(w), Height: roundHalfUp(h)}
}

// StarWidth returns the width of each star when the widget is size wide.
// It equals StarSize at the preferred size.
func StarWidth(c Config, size geom.Size) float64 {
	return (float64(size.Width-c.TotalSpacing()) - c.TotalBorderWidth()) / float64(c.StarCount)
}

// StarRect returns the bounding rectangle of star i for a widget of the
// given size. Stars are inset by half the border width so strokes stay
// inside the widget.
func StarRect(i int, c Config, size geom.Size) geom.Rect {
	inset := c.BorderWidth / 2
	return geom.Rect{
		X:      inset + float64(i)*c.Step(),
		Y:      inset,
		Width:  StarWidth(c, size),
		Height: float64(size.Height) - c.BorderWidth,
	}
}

// StarRects returns the rectangles of all stars, left to right.
func StarRects(c Config, size geom.Size) []geom.Rect {
	rects := make([]geom.Rect, c.StarCount)
	for i := range rects {
		rects[i] = StarRect(i, c, size)
	}
	return rects
}

func roundHalfUp(v float64) int {
	return int(v + 0.5)
}
