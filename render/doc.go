// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package render paints a row of rating stars onto a surface.
//
// A frame is drawn in three passes over the same star rectangles:
//
//   - base pass: every star is filled with the dull color and, when borders
//     are shown, outlined with the border color
//   - overlay pass: the illuminated prefix is filled with the selected
//     color; in half-step mode the last illuminated star may be a semi-star
//   - selected borders: each illuminated star is outlined with the selected
//     border color, always using the full star outline
//
// The package holds no rating state. The caller describes what to draw in a
// [Frame], typically built by starrating.Widget from its configuration and
// rating state.
//
// # Usage
//
// Drawing straight to a host surface:
//
//	r := render.New(surface.BackendGG)
//	defer r.Close()
//	r.Draw(hostSurface, frame)
//
// Double-buffered drawing into a host image:
//
//	if err := r.Resize(frame.Size); err != nil { ... }
//	target := render.NewPixmapTarget(frame.Size.Width, frame.Size.Height)
//	if err := r.Render(target, frame); err != nil { ... }
//	png.Encode(w, target.Image())
//
// # Architecture
//
//	          starrating.Widget
//	                 │ Frame
//	                 ▼
//	          render.Renderer
//	      ┌──────────┴──────────┐
//	      ▼                     ▼
//	 layout.StarRects     surface.Offscreen
//	 geom.StarPolygon     (Acquire/Present)
//	                            │
//	                            ▼
//	                  surface.Surface backend
//	             (gg, vector, fogleman, record)
//
// # Thread Safety
//
// Renderers are NOT thread-safe. Each renderer should be used from a single
// goroutine, or external synchronization must be used.
package render
