// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package surface provides the drawing targets the rating widget renders to.
//
// A [Surface] fills and strokes [geom.Polygon] values. The renderer never
// talks to a rasterizer directly, so the same frame can be produced by:
//
//   - "gg": github.com/gogpu/gg software rasterizer (default)
//   - "vector": golang.org/x/image/vector coverage rasterizer
//   - "fogleman": github.com/fogleman/gg
//   - "record": an in-memory list of draw operations, replayable through
//     github.com/gogpu/gg/recording
//
// # Registry
//
// Backends register themselves by name and priority, following the
// database/sql driver pattern:
//
//	surface.Register("mine", 50, func(opts surface.Options) (surface.Surface, error) {
//	    return newMine(opts.Width, opts.Height), nil
//	}, nil)
//
//	s, err := surface.NewSurfaceByName("mine", 120, 20)
//
// # Off-screen Buffer
//
// [Offscreen] owns one surface at a time. Acquire allocates it for a size,
// DrawTo hands it to the renderer, Present copies the finished frame to the
// visible image in one step, and Release frees it. Acquire with a new size
// releases the previous surface first.
//
// Surfaces are NOT thread-safe.
package surface
