// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"errors"
	"fmt"
	"image"
	"image/draw"

	xdraw "golang.org/x/image/draw"
)

var (
	// ErrNotAcquired is returned when the off-screen buffer is used before
	// Acquire or after Release.
	ErrNotAcquired = errors.New("surface: off-screen buffer not acquired")

	// ErrNoSnapshot is returned by Present when the backend cannot read
	// pixels back.
	ErrNoSnapshot = errors.New("surface: backend does not support snapshots")
)

// Offscreen is a scoped drawing buffer. It holds at most one surface.
//
// Typical lifecycle:
//
//	off := surface.NewOffscreen(surface.BackendGG)
//	defer off.Release()
//
//	if err := off.Acquire(106, 18); err != nil { ... } // on every size change
//	draw(off.DrawTo())
//	err := off.Present(windowImage)
type Offscreen struct {
	backend  string
	registry *Registry
	surf     Surface
}

// NewOffscreen creates an off-screen buffer that allocates surfaces from the
// named backend of the default registry. An empty name selects the best
// available backend.
func NewOffscreen(backend string) *Offscreen {
	return NewOffscreenFromRegistry(defaultRegistry, backend)
}

// NewOffscreenFromRegistry is like NewOffscreen with an explicit registry.
func NewOffscreenFromRegistry(r *Registry, backend string) *Offscreen {
	return &Offscreen{backend: backend, registry: r}
}

// Backend returns the configured backend name.
func (o *Offscreen) Backend() string {
	return o.backend
}

// Acquire makes sure a surface of exactly width x height is held.
// A surface of the same size is kept; any other is released before the new
// one is allocated.
func (o *Offscreen) Acquire(width, height int) error {
	if o.surf != nil && o.surf.Width() == width && o.surf.Height() == height {
		return nil
	}
	if err := o.Release(); err != nil {
		slogger().Warn("surface: releasing stale buffer failed", "err", err)
	}

	opts := Options{Width: width, Height: height}
	var (
		s   Surface
		err error
	)
	if o.backend == "" {
		s, err = o.registry.New(opts)
	} else {
		s, err = o.registry.NewByName(o.backend, opts)
	}
	if err != nil {
		return fmt.Errorf("surface: acquire %dx%d: %w", width, height, err)
	}
	o.surf = s
	slogger().Debug("surface: buffer acquired", "backend", o.backend, "width", s.Width(), "height", s.Height())
	return nil
}

// Acquired reports whether a surface is held.
func (o *Offscreen) Acquired() bool {
	return o.surf != nil
}

// DrawTo returns the held surface, or nil before Acquire.
func (o *Offscreen) DrawTo() Surface {
	return o.surf
}

// Present flushes the held surface and copies it onto dst in one step,
// aligned at dst's origin.
func (o *Offscreen) Present(dst draw.Image) error {
	if o.surf == nil {
		return ErrNotAcquired
	}
	if err := o.surf.Flush(); err != nil {
		return fmt.Errorf("surface: present: %w", err)
	}
	snap, ok := o.surf.(Snapshotter)
	if !ok {
		return ErrNoSnapshot
	}
	src := snap.Snapshot()
	r := dst.Bounds().Intersect(src.Bounds().Add(dst.Bounds().Min))
	xdraw.Copy(dst, r.Min, src, r.Sub(dst.Bounds().Min), xdraw.Src, nil)
	return nil
}

// Release frees the held surface. Release is idempotent.
func (o *Offscreen) Release() error {
	if o.surf == nil {
		return nil
	}
	s := o.surf
	o.surf = nil
	slogger().Debug("surface: buffer released", "width", s.Width(), "height", s.Height())
	return s.Close()
}

// Size returns the held surface size, or the zero point before Acquire.
func (o *Offscreen) Size() image.Point {
	if o.surf == nil {
		return image.Point{}
	}
	return image.Pt(o.surf.Width(), o.surf.Height())
}
