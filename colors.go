package starrating

import (
	"github.com/gogpu/gg"

	"github.com/gogpu/starrating/render"
)

// Default colors.
var (
	// Gold is the default selected fill and selected border color.
	Gold = gg.Hex("#FFD700")

	// LightGray is the default dull star color.
	LightGray = gg.Hex("#D3D3D3")

	// DarkGray is the default dull border color.
	DarkGray = gg.Hex("#A9A9A9")
)

// DefaultColors returns the default star colors.
func DefaultColors() render.Colors {
	return render.Colors{
		Fill:           LightGray.Color(),
		Border:         DarkGray.Color(),
		SelectedFill:   Gold.Color(),
		SelectedBorder: Gold.Color(),
	}
}

// mergeColors overlays the non-nil fields of c onto base.
func mergeColors(base, c render.Colors) render.Colors {
	if c.Fill != nil {
		base.Fill = c.Fill
	}
	if c.Border != nil {
		base.Border = c.Border
	}
	if c.SelectedFill != nil {
		base.SelectedFill = c.SelectedFill
	}
	if c.SelectedBorder != nil {
		base.SelectedBorder = c.SelectedBorder
	}
	return base
}
