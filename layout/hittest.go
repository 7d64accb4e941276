// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package layout

import "math"

// NoHit is returned by HitIndex when no star is under the pointer.
const NoHit = -1

// HitIndex returns the star index under the pointer x coordinate for a
// widget of the given width, or NoHit.
//
// In whole-star mode the width is split into StarCount sections of
// int(width/StarCount + 0.5) units and the section number is returned.
//
// In half-star mode every star is split into two sections of
// width/StarCount/2 units. Sections are numbered 0, 0.5, 1, ... and the
// result is the section number plus 0.5, so the left half of the first star
// is 0.5 and its right half is 1.
//
// Section bounds are inclusive at both ends; on a shared boundary the lower
// section wins. When rounding leaves the whole-star sections short of the
// widget width, the uncovered tail belongs to the last star.
func HitIndex(x float64, c Config, width int) float64 {
	if x < 0 || x >= float64(width) || c.StarCount < 1 {
		return NoHit
	}
	if c.HalfStep {
		return hitHalf(x, c.StarCount, width)
	}
	return hitWhole(x, c.StarCount, width)
}

func hitWhole(x float64, n, width int) float64 {
	section := float64(roundHalfUp(float64(width) / float64(n)))
	for i := 0; i < n; i++ {
		start := float64(i) * section
		if x >= start && x <= start+section {
			return float64(i)
		}
	}
	return float64(n - 1)
}

func hitHalf(x float64, n, width int) float64 {
	section := float64(width) / float64(n) / 2
	// Section k covers [k*section, (k+1)*section]; on a boundary the lower
	// section wins, hence ceil-1.
	k := int(math.Ceil(x/section)) - 1
	k = min(max(k, 0), 2*n-1)
	return float64(k)/2 + 0.5
}
