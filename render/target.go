// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"image"
	"image/color"
	"image/draw"
)

// PixmapTarget is a CPU-backed presentation target using *image.RGBA.
//
// Hosts that do not own an image (tests, the CLI, texture uploaders) render
// into a PixmapTarget and read the pixels back.
//
// Example:
//
//	target := render.NewPixmapTarget(105, 17)
//	renderer.Render(target, frame)
//	img := target.Image()
type PixmapTarget struct {
	img *image.RGBA
}

// NewPixmapTarget creates a transparent target.
func NewPixmapTarget(width, height int) *PixmapTarget {
	return &PixmapTarget{
		img: image.NewRGBA(image.Rect(0, 0, max(width, 0), max(height, 0))),
	}
}

// NewPixmapTargetFromImage wraps an existing *image.RGBA as a target.
// The image is used directly without copying.
func NewPixmapTargetFromImage(img *image.RGBA) *PixmapTarget {
	return &PixmapTarget{img: img}
}

// Width returns the target width in pixels.
func (t *PixmapTarget) Width() int {
	return t.img.Bounds().Dx()
}

// Height returns the target height in pixels.
func (t *PixmapTarget) Height() int {
	return t.img.Bounds().Dy()
}

// Pixels returns direct access to the RGBA pixel data.
func (t *PixmapTarget) Pixels() []byte {
	return t.img.Pix
}

// Stride returns the number of bytes per row.
func (t *PixmapTarget) Stride() int {
	return t.img.Stride
}

// Image returns the underlying *image.RGBA.
// The returned image shares memory with the target.
func (t *PixmapTarget) Image() *image.RGBA {
	return t.img
}

// ColorModel implements image.Image.
func (t *PixmapTarget) ColorModel() color.Model { return t.img.ColorModel() }

// Bounds implements image.Image.
func (t *PixmapTarget) Bounds() image.Rectangle { return t.img.Bounds() }

// At implements image.Image.
func (t *PixmapTarget) At(x, y int) color.Color { return t.img.At(x, y) }

// Set implements draw.Image.
func (t *PixmapTarget) Set(x, y int, c color.Color) { t.img.Set(x, y, c) }

// Clear fills the entire target with c.
func (t *PixmapTarget) Clear(c color.Color) {
	draw.Draw(t.img, t.img.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
}

// Resize replaces the pixel buffer. The contents are not preserved.
func (t *PixmapTarget) Resize(width, height int) {
	if width == t.Width() && height == t.Height() {
		return
	}
	t.img = image.NewRGBA(image.Rect(0, 0, max(width, 0), max(height, 0)))
}

// Ensure PixmapTarget can be presented to.
var _ draw.Image = (*PixmapTarget)(nil)
