// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"image"
	"image/color"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/gogpu/starrating/geom"
	"github.com/gogpu/starrating/layout"
	"github.com/gogpu/starrating/surface"
)

var (
	gold      = color.RGBA{R: 0xFF, G: 0xD7, A: 0xFF}
	lightGray = color.RGBA{R: 0xD3, G: 0xD3, B: 0xD3, A: 0xFF}
	darkGray  = color.RGBA{R: 0xA9, G: 0xA9, B: 0xA9, A: 0xFF}
)

func testFrame(halfStep bool, illuminated float64) Frame {
	cfg := layout.Config{StarCount: 5, StarSize: 16, Spacing: 5, BorderWidth: 1, HalfStep: halfStep}
	return Frame{
		Layout:      cfg,
		Style:       geom.StyleFat,
		Colors:      Colors{Fill: lightGray, Border: darkGray, SelectedFill: gold, SelectedBorder: gold},
		Illuminated: illuminated,
		Size:        layout.PreferredSize(cfg),
	}
}

type opSummary struct {
	Kind   string
	Points int
	Color  color.NRGBA
}

func summarize(ops []surface.Op) []opSummary {
	out := make([]opSummary, len(ops))
	for i, op := range ops {
		out[i] = opSummary{Kind: op.Kind.String(), Points: len(op.Points), Color: op.Color}
	}
	return out
}

func nrgba(c color.RGBA) color.NRGBA {
	return color.NRGBAModel.Convert(c).(color.NRGBA)
}

func TestDrawWholeMode(t *testing.T) {
	s := surface.NewRecordSurface(106, 18)
	New(surface.BackendRecord).Draw(s, testFrame(false, 2))

	want := []opSummary{{Kind: "clear"}}
	for range 5 {
		want = append(want, opSummary{Kind: "fill", Points: 10, Color: nrgba(lightGray)})
	}
	for range 3 {
		want = append(want, opSummary{Kind: "fill", Points: 10, Color: nrgba(gold)})
	}
	if diff := cmp.Diff(want, summarize(s.Ops())); diff != "" {
		t.Errorf("ops mismatch (-want +got):\n%s", diff)
	}
}

func TestDrawHalfModeSemiStar(t *testing.T) {
	s := surface.NewRecordSurface(106, 18)
	New(surface.BackendRecord).Draw(s, testFrame(true, 2.5))

	ops := s.Ops()[6:]
	want := []opSummary{
		{Kind: "fill", Points: 10, Color: nrgba(gold)},
		{Kind: "fill", Points: 10, Color: nrgba(gold)},
		{Kind: "fill", Points: 6, Color: nrgba(gold)},
	}
	if diff := cmp.Diff(want, summarize(ops)); diff != "" {
		t.Errorf("overlay ops mismatch (-want +got):\n%s", diff)
	}
	if ops[2].Closed {
		t.Error("semi-star should be recorded as an open polygon")
	}
}

func TestDrawHalfModeWholeIndex(t *testing.T) {
	s := surface.NewRecordSurface(106, 18)
	New(surface.BackendRecord).Draw(s, testFrame(true, 3))

	if got := len(s.Ops()[6:]); got != 3 {
		t.Errorf("overlay fills = %d, want 3 full stars", got)
	}
}

func TestDrawNothingIlluminated(t *testing.T) {
	for _, half := range []bool{false, true} {
		s := surface.NewRecordSurface(106, 18)
		New(surface.BackendRecord).Draw(s, testFrame(half, NoIllumination))
		if got := len(s.Ops()); got != 6 {
			t.Errorf("halfStep=%v: ops = %d, want clear + 5 base fills", half, got)
		}
	}
}

func TestDrawSelectedBorders(t *testing.T) {
	f := testFrame(true, 1.5)
	f.ShowBorders = true
	s := surface.NewRecordSurface(106, 18)
	New(surface.BackendRecord).Draw(s, f)

	ops := s.Ops()
	if got := len(ops); got != 1+2*5+2*2 {
		t.Fatalf("ops = %d, want %d", got, 1+2*5+2*2)
	}
	overlay := summarize(ops[11:])
	want := []opSummary{
		{Kind: "fill", Points: 10, Color: nrgba(gold)},
		{Kind: "stroke", Points: 10, Color: nrgba(gold)},
		{Kind: "fill", Points: 6, Color: nrgba(gold)},
		{Kind: "stroke", Points: 10, Color: nrgba(gold)},
	}
	if diff := cmp.Diff(want, overlay); diff != "" {
		t.Errorf("overlay ops mismatch (-want +got):\n%s", diff)
	}
	for _, op := range ops {
		if op.Kind == surface.OpStroke && (op.Width != 1 || op.Join != surface.LineJoinRound) {
			t.Errorf("stroke width/join = %v/%v, want 1/round", op.Width, op.Join)
		}
	}
}

func TestDrawUnknownStyleSkipsStars(t *testing.T) {
	f := testFrame(false, 4)
	f.Style = geom.StarStyle(42)
	s := surface.NewRecordSurface(106, 18)
	New(surface.BackendRecord).Draw(s, f)

	if diff := cmp.Diff([]opSummary{{Kind: "clear"}}, summarize(s.Ops())); diff != "" {
		t.Errorf("ops mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderToPixmap(t *testing.T) {
	r := New(surface.BackendGG)
	defer r.Close()

	f := testFrame(false, 0)
	f.Background = color.White
	target := NewPixmapTarget(f.Size.Width, f.Size.Height)
	if err := r.Render(target, f); err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	if got := target.Image().RGBAAt(8, 9); !near(got, gold) {
		t.Errorf("first star center = %v, want gold", got)
	}
	if got := target.Image().RGBAAt(96, 9); !near(got, lightGray) {
		t.Errorf("last star center = %v, want light gray", got)
	}
	if got := target.Image().RGBAAt(19, 2); !near(got, color.RGBA{255, 255, 255, 255}) {
		t.Errorf("gap between stars = %v, want white background", got)
	}
}

func TestRendererBufferSize(t *testing.T) {
	r := New(surface.BackendRecord)
	defer r.Close()

	if r.Surface() != nil {
		t.Fatal("Surface() before Resize should be nil")
	}
	if err := r.Resize(geom.Sz(105, 17)); err != nil {
		t.Fatalf("Resize() error = %v", err)
	}
	s := r.Surface()
	if s.Width() != 106 || s.Height() != 18 {
		t.Errorf("buffer = %dx%d, want 106x18", s.Width(), s.Height())
	}

	if err := r.Resize(geom.Sz(105, 17)); err != nil {
		t.Fatalf("Resize() error = %v", err)
	}
	if r.Surface() != s {
		t.Error("same-size Resize should keep the buffer")
	}

	if err := r.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if r.Surface() != nil {
		t.Error("Surface() after Close should be nil")
	}
	if err := r.Render(image.NewRGBA(image.Rect(0, 0, 1, 1)), testFrame(false, -1)); err != nil {
		t.Errorf("Render after Close should reacquire, got %v", err)
	}
}

// near reports whether two colors match within rasterizer rounding.
func near(a, b color.RGBA) bool {
	d := func(x, y uint8) bool { return x-y < 3 || y-x < 3 }
	return d(a.R, b.R) && d(a.G, b.G) && d(a.B, b.B) && d(a.A, b.A)
}
