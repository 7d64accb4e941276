package starrating

import (
	"image/color"

	"github.com/gogpu/starrating/geom"
	"github.com/gogpu/starrating/render"
)

// Option configures a Widget during creation.
// Use functional options to customize the widget.
//
// Example:
//
//	// Default widget: five fat stars, whole-star rating
//	w := starrating.New()
//
//	// Ten normal stars rated in halves
//	w := starrating.New(
//	    starrating.WithStarCount(10),
//	    starrating.WithStyle(geom.StyleNormal),
//	    starrating.WithHalfStep(true),
//	)
type Option func(*widgetOptions)

// widgetOptions holds optional configuration for Widget creation.
type widgetOptions struct {
	starCount   int
	starSize    int
	spacing     int
	borderWidth float64
	style       geom.StarStyle
	halfStep    bool
	colors      render.Colors
	showBorders bool
	background  color.Color
	backend     string
	invalidate  func(Request)
	size        geom.Size
}

// defaultOptions returns the default widget options.
func defaultOptions() widgetOptions {
	return widgetOptions{
		starCount:   DefaultStarCount,
		starSize:    DefaultStarSize,
		spacing:     DefaultSpacing,
		borderWidth: DefaultBorderWidth,
		style:       geom.StyleFat,
		colors:      DefaultColors(),
		background:  color.Transparent,
		backend:     "", // best available
	}
}

// WithStarCount sets the number of stars. Values below one are raised to one.
func WithStarCount(n int) Option {
	return func(o *widgetOptions) {
		o.starCount = n
	}
}

// WithStarSize sets the preferred width and height of one star in pixels.
func WithStarSize(size int) Option {
	return func(o *widgetOptions) {
		o.starSize = size
	}
}

// WithSpacing sets the horizontal gap between stars in pixels.
func WithSpacing(spacing int) Option {
	return func(o *widgetOptions) {
		o.spacing = spacing
	}
}

// WithBorderWidth sets the outline width. See Widget.SetBorderWidth for the
// clamp policy.
func WithBorderWidth(w float64) Option {
	return func(o *widgetOptions) {
		o.borderWidth = w
	}
}

// WithStyle selects the star outline.
func WithStyle(style geom.StarStyle) Option {
	return func(o *widgetOptions) {
		o.style = style
	}
}

// WithHalfStep enables half-star rating.
func WithHalfStep(enabled bool) Option {
	return func(o *widgetOptions) {
		o.halfStep = enabled
	}
}

// WithColors sets the four star colors. Nil fields keep their defaults.
func WithColors(c render.Colors) Option {
	return func(o *widgetOptions) {
		o.colors = mergeColors(o.colors, c)
	}
}

// WithShowBorders enables star outlines.
func WithShowBorders(show bool) Option {
	return func(o *widgetOptions) {
		o.showBorders = show
	}
}

// WithBackground sets the color the widget is cleared to before the stars
// are drawn. The default is transparent.
func WithBackground(c color.Color) Option {
	return func(o *widgetOptions) {
		o.background = c
	}
}

// WithBackend selects the surface backend used by Paint.
//
// Example:
//
//	w := starrating.New(starrating.WithBackend(surface.BackendVector))
func WithBackend(name string) Option {
	return func(o *widgetOptions) {
		o.backend = name
	}
}

// WithInvalidator installs the host callback invoked whenever the widget
// posts a redraw or resize request.
func WithInvalidator(fn func(Request)) Option {
	return func(o *widgetOptions) {
		o.invalidate = fn
	}
}

// WithSize sets the initial widget size instead of the preferred size.
func WithSize(width, height int) Option {
	return func(o *widgetOptions) {
		o.size = geom.Sz(width, height)
	}
}
