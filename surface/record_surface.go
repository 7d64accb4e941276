// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"image"
	"image/color"
	"slices"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/recording"
	"github.com/gogpu/gg/recording/backends/raster"

	"github.com/gogpu/starrating/geom"
)

// OpKind identifies a recorded draw operation.
type OpKind uint8

const (
	// OpClear replaces every pixel with Color.
	OpClear OpKind = iota
	// OpFill fills Points with Color.
	OpFill
	// OpStroke outlines Points with Color at Width.
	OpStroke
)

// String returns a human-readable name for the operation.
func (k OpKind) String() string {
	switch k {
	case OpClear:
		return "clear"
	case OpFill:
		return "fill"
	case OpStroke:
		return "stroke"
	default:
		return "unknown"
	}
}

// Op is one recorded draw operation.
type Op struct {
	Kind   OpKind
	Points []geom.Point
	Closed bool
	Color  color.NRGBA
	Width  float64
	Join   LineJoin
}

// RecordSurface records draw operations instead of producing pixels.
//
// Ops returns the frame as a plain operation list for hosts that do their
// own painting. Recording converts it into a gg recording, which can be
// played back to any gg recording backend (raster, PDF, SVG).
type RecordSurface struct {
	width, height int
	ops           []Op
}

var (
	_ Snapshotter      = (*RecordSurface)(nil)
	_ ResizableSurface = (*RecordSurface)(nil)
)

// NewRecordSurface creates an empty recording surface.
func NewRecordSurface(width, height int) *RecordSurface {
	o := Options{Width: width, Height: height}.normalize()
	return &RecordSurface{width: o.Width, height: o.Height}
}

// Width returns the surface width.
func (s *RecordSurface) Width() int { return s.width }

// Height returns the surface height.
func (s *RecordSurface) Height() int { return s.height }

// Clear drops every operation recorded so far and records a clear.
func (s *RecordSurface) Clear(c color.Color) {
	s.ops = append(s.ops[:0], Op{Kind: OpClear, Color: toNRGBA(c)})
}

// Fill records a fill.
func (s *RecordSurface) Fill(p geom.Polygon, style FillStyle) {
	if p.IsEmpty() {
		return
	}
	s.ops = append(s.ops, Op{
		Kind:   OpFill,
		Points: slices.Clone(p.Points),
		Closed: p.Closed,
		Color:  toNRGBA(style.Color),
	})
}

// Stroke records a stroke.
func (s *RecordSurface) Stroke(p geom.Polygon, style StrokeStyle) {
	if p.Len() < 2 || style.Width <= 0 {
		return
	}
	s.ops = append(s.ops, Op{
		Kind:   OpStroke,
		Points: slices.Clone(p.Points),
		Closed: p.Closed,
		Color:  toNRGBA(style.Color),
		Width:  style.Width,
		Join:   style.Join,
	})
}

// Ops returns a copy of the recorded operations in drawing order.
func (s *RecordSurface) Ops() []Op {
	return slices.Clone(s.ops)
}

// Reset drops all recorded operations.
func (s *RecordSurface) Reset() {
	s.ops = s.ops[:0]
}

// Recording replays the operations into a gg recording.Recorder.
func (s *RecordSurface) Recording() *recording.Recording {
	rec := recording.NewRecorder(s.width, s.height)
	for _, op := range s.ops {
		c := gg.FromColor(op.Color)
		switch op.Kind {
		case OpClear:
			rec.ClearWithColor(c)
		case OpFill:
			rec.SetFillStyle(recording.NewSolidBrush(c))
			tracePoints(rec, op.Points, true)
			rec.Fill()
		case OpStroke:
			rec.SetStrokeStyle(recording.NewSolidBrush(c))
			rec.SetLineWidth(op.Width)
			if op.Join == LineJoinBevel {
				rec.SetLineJoin(recording.LineJoinBevel)
			} else {
				rec.SetLineJoin(recording.LineJoinRound)
			}
			tracePoints(rec, op.Points, op.Closed)
			rec.Stroke()
		}
	}
	return rec.FinishRecording()
}

func tracePoints(rec *recording.Recorder, pts []geom.Point, closed bool) {
	rec.MoveTo(pts[0].X, pts[0].Y)
	for _, pt := range pts[1:] {
		rec.LineTo(pt.X, pt.Y)
	}
	if closed {
		rec.ClosePath()
	}
}

// Flush is a no-op.
func (s *RecordSurface) Flush() error { return nil }

// Snapshot plays the recording back through gg's raster backend.
func (s *RecordSurface) Snapshot() *image.RGBA {
	b := raster.NewBackend()
	if err := s.Recording().Playback(b); err != nil {
		slogger().Warn("surface: recording playback failed", "err", err)
		return image.NewRGBA(image.Rect(0, 0, s.width, s.height))
	}
	return toRGBA(b.Image())
}

// Resize changes the canvas size and drops recorded operations.
func (s *RecordSurface) Resize(width, height int) error {
	o := Options{Width: width, Height: height}.normalize()
	s.width, s.height = o.Width, o.Height
	s.ops = nil
	return nil
}

// Close drops recorded operations. Close is idempotent.
func (s *RecordSurface) Close() error {
	s.ops = nil
	return nil
}

func toNRGBA(c color.Color) color.NRGBA {
	return color.NRGBAModel.Convert(colorOrTransparent(c)).(color.NRGBA)
}
