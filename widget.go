package starrating

import (
	"fmt"
	"image/color"
	"image/draw"
	"math"

	"github.com/gogpu/starrating/geom"
	"github.com/gogpu/starrating/layout"
	"github.com/gogpu/starrating/render"
	"github.com/gogpu/starrating/surface"
)

// Default widget configuration.
const (
	DefaultStarCount   = 5
	DefaultStarSize    = 16
	DefaultSpacing     = 5
	DefaultBorderWidth = 1.0
)

// noHover is the hover index when no star is under the pointer.
const noHover = layout.NoHit

// Widget is a star-rating control.
//
// Widget is NOT thread-safe. All methods must be called from the host's
// event goroutine.
type Widget struct {
	cfg         layout.Config
	style       geom.StarStyle
	colors      render.Colors
	showBorders bool
	background  color.Color
	size        geom.Size

	// rating is the committed value in [0, StarCount].
	rating float64

	// hover is the last illuminated index: a hit-test result while
	// previewing, or the index derived from rating once committed.
	hover float64

	onRating   func()
	onHover    func()
	invalidate func(Request)
	pending    Request

	renderer *render.Renderer
}

// New creates a widget with the given options.
//
// Example:
//
//	w := starrating.New(starrating.WithStarCount(10), starrating.WithHalfStep(true))
//	defer w.Close()
func New(opts ...Option) *Widget {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	cfg := layout.Config{
		StarCount:   o.starCount,
		StarSize:    o.starSize,
		Spacing:     o.spacing,
		BorderWidth: o.borderWidth,
		HalfStep:    o.halfStep,
	}.Normalize()

	w := &Widget{
		cfg:         cfg,
		style:       o.style,
		colors:      o.colors,
		showBorders: o.showBorders,
		background:  o.background,
		size:        o.size,
		hover:       noHover,
		invalidate:  o.invalidate,
		renderer:    render.New(o.backend),
	}
	if w.size.Empty() {
		w.size = layout.PreferredSize(cfg)
	}
	return w
}

// Close releases the off-screen buffer. Close is idempotent.
func (w *Widget) Close() error {
	return w.renderer.Close()
}

// post records r and notifies the host.
func (w *Widget) post(r Request) {
	w.pending |= r
	if w.invalidate != nil {
		w.invalidate(r)
	}
}

// TakeRequests returns the requests posted since the last call and clears
// them.
func (w *Widget) TakeRequests() Request {
	r := w.pending
	w.pending = 0
	return r
}

// relayout snaps the widget to its preferred size after a configuration
// change and asks the host to follow.
func (w *Widget) relayout() {
	w.size = layout.PreferredSize(w.cfg)
	w.post(RequestResize | RequestRedraw)
}

// StarCount returns the number of stars.
func (w *Widget) StarCount() int { return w.cfg.StarCount }

// SetStarCount sets the number of stars. Values below one are raised to one.
// A committed rating above the new count is lowered to it.
func (w *Widget) SetStarCount(n int) {
	n = max(n, layout.MinStarCount)
	if n == w.cfg.StarCount {
		return
	}
	w.cfg.StarCount = n
	if w.rating == 0 {
		w.hover = noHover
	}
	w.relayout()
	if w.rating > float64(n) {
		w.SetRating(float64(n))
	}
}

// StarSize returns the preferred star size in pixels.
func (w *Widget) StarSize() int { return w.cfg.StarSize }

// SetStarSize sets the preferred star size. Values below one are raised to
// one.
func (w *Widget) SetStarSize(size int) {
	size = max(size, layout.MinStarSize)
	if size == w.cfg.StarSize {
		return
	}
	w.cfg.StarSize = size
	w.relayout()
}

// Spacing returns the gap between stars in pixels.
func (w *Widget) Spacing() int { return w.cfg.Spacing }

// SetSpacing sets the gap between stars. Negative values are raised to zero.
func (w *Widget) SetSpacing(spacing int) {
	spacing = max(spacing, layout.MinSpacing)
	if spacing == w.cfg.Spacing {
		return
	}
	w.cfg.Spacing = spacing
	w.relayout()
}

// BorderWidth returns the outline width.
func (w *Widget) BorderWidth() float64 { return w.cfg.BorderWidth }

// SetBorderWidth sets the outline width. Values above 5 become 5, and
// negative values become 1.
func (w *Widget) SetBorderWidth(bw float64) {
	bw = layout.ClampBorderWidth(bw)
	if bw == w.cfg.BorderWidth {
		return
	}
	w.cfg.BorderWidth = bw
	w.relayout()
}

// Style returns the star outline style.
func (w *Widget) Style() geom.StarStyle { return w.style }

// SetStyle selects the star outline.
func (w *Widget) SetStyle(style geom.StarStyle) {
	if style == w.style {
		return
	}
	w.style = style
	w.post(RequestRedraw)
}

// HalfStep reports whether half-star rating is enabled.
func (w *Widget) HalfStep() bool { return w.cfg.HalfStep }

// SetHalfStep switches between whole-star and half-star rating.
//
// Turning half steps off rounds a committed rating to the nearest whole
// star, with .5 rounding up. Hover indices depend on the mode, so an
// uncommitted preview is dropped.
func (w *Widget) SetHalfStep(enabled bool) {
	if enabled == w.cfg.HalfStep {
		return
	}
	w.cfg.HalfStep = enabled
	if w.rating > 0 {
		if !enabled {
			w.SetRating(float64(int(w.rating + 0.5)))
		}
		w.hover = w.litIndex(w.rating)
	} else {
		w.hover = noHover
	}
	w.post(RequestRedraw)
}

// Colors returns the star colors.
func (w *Widget) Colors() render.Colors { return w.colors }

// SetColors replaces the star colors. Nil fields keep their current value.
func (w *Widget) SetColors(c render.Colors) {
	w.colors = mergeColors(w.colors, c)
	w.post(RequestRedraw)
}

// ShowBorders reports whether star outlines are drawn.
func (w *Widget) ShowBorders() bool { return w.showBorders }

// SetShowBorders enables or disables star outlines.
func (w *Widget) SetShowBorders(show bool) {
	if show == w.showBorders {
		return
	}
	w.showBorders = show
	w.post(RequestRedraw)
}

// Background returns the clear color.
func (w *Widget) Background() color.Color { return w.background }

// SetBackground sets the clear color. Nil means transparent.
func (w *Widget) SetBackground(c color.Color) {
	w.background = c
	w.post(RequestRedraw)
}

// Rating returns the committed rating, 0 when unrated.
func (w *Widget) Rating() float64 { return w.rating }

// SetRating commits a rating. The value is clamped to [0, StarCount] and
// rounded to a whole star, or to the nearest half star in half-step mode.
// Listeners are notified only when the stored value changes.
func (w *Widget) SetRating(v float64) {
	v = w.roundRating(v)
	if v == w.rating {
		return
	}
	w.rating = v
	w.hover = w.litIndex(v)
	Logger().Debug("starrating: rating committed", "rating", v, "halfStep", w.cfg.HalfStep)
	if w.onRating != nil {
		w.onRating()
	}
	w.post(RequestRedraw)
}

func (w *Widget) roundRating(v float64) float64 {
	n := float64(w.cfg.StarCount)
	switch {
	case math.IsNaN(v) || v < 0:
		return 0
	case v > n:
		return n
	case w.cfg.HalfStep:
		return math.Round(v*2) / 2
	default:
		return float64(int(v + 0.5))
	}
}

// litIndex returns the last illuminated index for a committed rating.
func (w *Widget) litIndex(rating float64) float64 {
	switch {
	case rating <= 0:
		return noHover
	case w.cfg.HalfStep:
		return rating
	default:
		return rating - 1
	}
}

// HoverIndex returns the last illuminated index, or -1 when nothing is lit.
// Whole-star mode yields star indices; half-star mode yields k+0.5 for the
// left half of star k and k+1 for its right half.
func (w *Widget) HoverIndex() float64 { return w.hover }

// HoverRating returns the rating the pointer currently previews, 0 when
// nothing is hovered.
func (w *Widget) HoverRating() float64 {
	switch {
	case w.hover < 0:
		return 0
	case w.cfg.HalfStep:
		return w.hover
	default:
		return w.hover + 1
	}
}

// OnRatingChanged registers a callback invoked after the committed rating
// changes. It replaces any previous callback; nil removes it.
func (w *Widget) OnRatingChanged(fn func()) { w.onRating = fn }

// OnHoverChanged registers a callback invoked after the hover preview
// changes. It replaces any previous callback; nil removes it.
func (w *Widget) OnHoverChanged(fn func()) { w.onHover = fn }

// PointerMove updates the hover preview. It is ignored once a rating is
// committed.
func (w *Widget) PointerMove(x, _ float64) {
	if w.rating > 0 {
		return
	}
	w.setHover(layout.HitIndex(x, w.cfg, w.size.Width))
}

func (w *Widget) setHover(idx float64) {
	if idx == w.hover {
		return
	}
	w.hover = idx
	if w.onHover != nil {
		w.onHover()
	}
	w.post(RequestRedraw)
}

// PointerDown handles a click. The left button commits the star under the
// pointer; the right button clears the rating.
func (w *Widget) PointerDown(x, _ float64, b Button) {
	switch b {
	case ButtonLeft:
		idx := layout.HitIndex(x, w.cfg, w.size.Width)
		if w.cfg.HalfStep {
			w.SetRating(idx)
		} else {
			w.SetRating(idx + 1)
		}
	case ButtonRight:
		w.SetRating(0)
		w.hover = noHover
	default:
		return
	}
	w.post(RequestRedraw)
}

// PointerLeave drops the hover preview when no rating is committed.
func (w *Widget) PointerLeave() {
	if w.rating > 0 {
		return
	}
	w.hover = noHover
	w.post(RequestRedraw)
}

// PreferredSize returns the size that fits the configured stars exactly.
func (w *Widget) PreferredSize() geom.Size {
	return layout.PreferredSize(w.cfg)
}

// Size returns the current widget size.
func (w *Widget) Size() geom.Size { return w.size }

// Resize sets the widget size and reallocates the off-screen buffer. Stars
// stretch horizontally to fill a width other than the preferred width.
func (w *Widget) Resize(width, height int) error {
	w.size = geom.Sz(max(width, 1), max(height, 1))
	if err := w.renderer.Resize(w.size); err != nil {
		return fmt.Errorf("starrating: resize: %w", err)
	}
	w.post(RequestRedraw)
	return nil
}

// Frame returns a description of the current picture.
func (w *Widget) Frame() render.Frame {
	return render.Frame{
		Layout:      w.cfg,
		Style:       w.style,
		Colors:      w.colors,
		ShowBorders: w.showBorders,
		Background:  w.background,
		Illuminated: w.hover,
		Size:        w.size,
	}
}

// Paint draws the widget through its off-screen buffer and presents it onto
// dst at dst's origin.
func (w *Widget) Paint(dst draw.Image) error {
	if err := w.renderer.Render(dst, w.Frame()); err != nil {
		return fmt.Errorf("starrating: paint: %w", err)
	}
	return nil
}

// Draw paints the widget directly onto a host surface, without the
// off-screen buffer.
func (w *Widget) Draw(s surface.Surface) {
	w.renderer.Draw(s, w.Frame())
}
