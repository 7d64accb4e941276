// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"fmt"
	"image/draw"

	"github.com/gogpu/starrating/geom"
	"github.com/gogpu/starrating/layout"
	"github.com/gogpu/starrating/surface"
)

// Renderer draws frames, either straight onto a caller's surface or through
// its own off-screen buffer.
//
// The off-screen buffer is one pixel larger than the widget in each
// dimension so that outlines touching the right and bottom edges are not
// clipped before presentation.
type Renderer struct {
	off *surface.Offscreen
}

// New creates a renderer whose off-screen buffer uses the named surface
// backend. An empty name selects the best available backend.
func New(backend string) *Renderer {
	return &Renderer{off: surface.NewOffscreen(backend)}
}

// NewWithOffscreen creates a renderer that presents through off.
func NewWithOffscreen(off *surface.Offscreen) *Renderer {
	return &Renderer{off: off}
}

// Draw paints f onto s: background, base pass, then overlay with selected
// borders. Stars whose style has no outline are skipped.
func (r *Renderer) Draw(s surface.Surface, f Frame) {
	s.Clear(f.Background)

	rects := layout.StarRects(f.Layout, f.Size)
	dull := surface.FillStyle{Color: f.Colors.Fill}
	border := surface.StrokeStyle{
		Color: f.Colors.Border,
		Width: f.Layout.BorderWidth,
		Join:  surface.LineJoinRound,
	}
	for _, rect := range rects {
		star, ok := geom.StarPolygon(rect, f.Style)
		if !ok {
			continue
		}
		s.Fill(star, dull)
		if f.ShowBorders {
			s.Stroke(star, border)
		}
	}

	selected := surface.FillStyle{Color: f.Colors.SelectedFill}
	selectedBorder := surface.StrokeStyle{
		Color: f.Colors.SelectedBorder,
		Width: f.Layout.BorderWidth,
		Join:  surface.LineJoinRound,
	}
	for _, ls := range f.lit() {
		rect := rects[ls.index]
		star, ok := geom.StarPolygon(rect, f.Style)
		if !ok {
			continue
		}
		if ls.semi {
			semi, _ := geom.SemiStarPolygon(rect, f.Style)
			s.Fill(semi, selected)
		} else {
			s.Fill(star, selected)
		}
		if f.ShowBorders {
			s.Stroke(star, selectedBorder)
		}
	}
}

// Resize reallocates the off-screen buffer for a widget of the given size.
func (r *Renderer) Resize(size geom.Size) error {
	buf := size.Grow(1)
	if err := r.off.Acquire(buf.Width, buf.Height); err != nil {
		return fmt.Errorf("render: resize %dx%d: %w", size.Width, size.Height, err)
	}
	return nil
}

// Render draws f into the off-screen buffer and presents it onto dst.
// The buffer is (re)acquired first when its size does not match f.Size.
func (r *Renderer) Render(dst draw.Image, f Frame) error {
	if err := r.Resize(f.Size); err != nil {
		return err
	}
	r.Draw(r.off.DrawTo(), f)
	if err := r.off.Present(dst); err != nil {
		return fmt.Errorf("render: present: %w", err)
	}
	return nil
}

// Surface returns the off-screen surface, or nil before the first Resize.
func (r *Renderer) Surface() surface.Surface {
	return r.off.DrawTo()
}

// Close releases the off-screen buffer. Close is idempotent.
func (r *Renderer) Close() error {
	if err := r.off.Release(); err != nil {
		slogger().Warn("render: release failed", "err", err)
		return err
	}
	return nil
}
