// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"image"
	"image/color"
	"image/draw"
)

// LineJoin specifies the shape of line joins.
type LineJoin uint8

const (
	// LineJoinRound specifies a rounded join.
	LineJoinRound LineJoin = iota

	// LineJoinBevel specifies a beveled join.
	LineJoinBevel
)

// String returns the join name.
func (j LineJoin) String() string {
	if j == LineJoinBevel {
		return "bevel"
	}
	return "round"
}

// FillStyle defines how to fill a polygon.
type FillStyle struct {
	// Color is the fill color.
	Color color.Color
}

// StrokeStyle defines how to outline a polygon.
type StrokeStyle struct {
	// Color is the stroke color.
	Color color.Color

	// Width is the line width in pixels.
	Width float64

	// Join is the shape where two edges meet.
	Join LineJoin
}

// Options configures surface creation.
type Options struct {
	// Width is the surface width in pixels.
	Width int

	// Height is the surface height in pixels.
	Height int
}

// normalize clamps dimensions to at least one pixel.
func (o Options) normalize() Options {
	o.Width = max(o.Width, 1)
	o.Height = max(o.Height, 1)
	return o
}

// colorOrTransparent returns c, or transparent when c is nil.
func colorOrTransparent(c color.Color) color.Color {
	if c == nil {
		return color.Transparent
	}
	return c
}

// toRGBA returns a fresh *image.RGBA copy of img.
func toRGBA(img image.Image) *image.RGBA {
	b := img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)
	return dst
}
