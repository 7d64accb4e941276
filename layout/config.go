// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package layout

// Limits applied by [Config.Normalize].
const (
	MinStarCount   = 1
	MinStarSize    = 1
	MinSpacing     = 0
	MinBorderWidth = 0
	MaxBorderWidth = 5

	// NegativeBorderWidth replaces a negative border width. The widget has
	// always mapped negative widths to 1 rather than to the lower bound.
	NegativeBorderWidth = 1
)

// Config holds the inputs shared by layout and hit-testing.
type Config struct {
	StarCount   int
	StarSize    int
	Spacing     int
	BorderWidth float64
	HalfStep    bool
}

// Normalize returns a copy of c with every field clamped to its valid range.
func (c Config) Normalize() Config {
	c.StarCount = max(c.StarCount, MinStarCount)
	c.StarSize = max(c.StarSize, MinStarSize)
	c.Spacing = max(c.Spacing, MinSpacing)
	c.BorderWidth = ClampBorderWidth(c.BorderWidth)
	return c
}

// ClampBorderWidth clamps w to [MinBorderWidth, MaxBorderWidth], except that
// negative values become NegativeBorderWidth.
func ClampBorderWidth(w float64) float64 {
	switch {
	case w < 0:
		return NegativeBorderWidth
	case w > MaxBorderWidth:
		return MaxBorderWidth
	default:
		return w
	}
}

// TotalSpacing is the space taken by the gaps between stars.
func (c Config) TotalSpacing() int {
	return (c.StarCount - 1) * c.Spacing
}

// TotalStarWidth is the width of all stars at their preferred size.
func (c Config) TotalStarWidth() int {
	return c.StarCount * c.StarSize
}

// TotalBorderWidth is the width taken by star borders.
func (c Config) TotalBorderWidth() float64 {
	return float64(c.StarCount) * c.BorderWidth
}

// Step is the horizontal advance from one star origin to the next.
func (c Config) Step() float64 {
	return float64(c.StarSize+c.Spacing) + c.BorderWidth
}
