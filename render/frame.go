// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"image/color"

	"github.com/gogpu/starrating/geom"
	"github.com/gogpu/starrating/layout"
)

// NoIllumination marks a frame with no illuminated stars.
const NoIllumination = -1

// Colors holds the four star colors.
type Colors struct {
	// Fill is the dull star color.
	Fill color.Color

	// Border is the dull star outline color.
	Border color.Color

	// SelectedFill is the illuminated star color.
	SelectedFill color.Color

	// SelectedBorder is the illuminated star outline color.
	SelectedBorder color.Color
}

// Frame describes one picture of the widget.
type Frame struct {
	// Layout is the normalized star layout.
	Layout layout.Config

	// Style selects the star outline.
	Style geom.StarStyle

	// Colors are the star colors.
	Colors Colors

	// ShowBorders enables both border passes.
	ShowBorders bool

	// Background is the clear color. Nil means transparent.
	Background color.Color

	// Illuminated is the index of the last lit star, as produced by the hit
	// test: whole numbers in whole mode, k+0.5 in half-step mode.
	// NoIllumination lights nothing.
	Illuminated float64

	// Size is the widget size in device pixels.
	Size geom.Size
}

// litStar is one star of the overlay pass.
type litStar struct {
	index int
	semi  bool
}

// lit returns the illuminated prefix of the row.
func (f Frame) lit() []litStar {
	n := f.Layout.StarCount
	idx := f.Illuminated
	var stars []litStar
	for i := 0; i < n; i++ {
		fi := float64(i)
		switch {
		case f.Layout.HalfStep && fi < idx-0.5:
			stars = append(stars, litStar{index: i})
		case f.Layout.HalfStep && fi == idx-0.5:
			stars = append(stars, litStar{index: i, semi: true})
		case !f.Layout.HalfStep && fi <= idx:
			stars = append(stars, litStar{index: i})
		default:
			return stars
		}
	}
	return stars
}
