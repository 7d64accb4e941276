package cli

import (
	"bytes"
	"context"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"
)

func testContext() context.Context {
	return withLogger(context.Background(), newLogger(&bytes.Buffer{}, log.DebugLevel))
}

func TestRunRender(t *testing.T) {
	out := filepath.Join(t.TempDir(), "stars.png")
	opts := &renderOpts{
		output: out,
		script: pointerScript{clicks: []float64{50}},
	}

	if err := runRender(testContext(), defaultWidgetConfig(), opts); err != nil {
		t.Fatalf("runRender() error = %v", err)
	}

	f, err := os.Open(out)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("png.Decode() error = %v", err)
	}
	if b := img.Bounds(); b.Dx() != 105 || b.Dy() != 17 {
		t.Errorf("image size = %dx%d, want 105x17", b.Dx(), b.Dy())
	}
}

func TestRunRenderBadConfig(t *testing.T) {
	cfg := defaultWidgetConfig()
	cfg.Style = "square"
	opts := &renderOpts{output: filepath.Join(t.TempDir(), "x.png")}
	if err := runRender(testContext(), cfg, opts); err == nil {
		t.Error("expected error for unknown style")
	}
}

func TestRunOps(t *testing.T) {
	cfg := defaultWidgetConfig()
	cfg.HalfStep = true
	opts := &opsOpts{script: pointerScript{rating: 1.5}}

	var buf bytes.Buffer
	if err := runOps(testContext(), &buf, cfg, opts); err != nil {
		t.Fatalf("runOps() error = %v", err)
	}

	var doc opsDocument
	if err := yaml.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("yaml.Unmarshal() error = %v\n%s", err, buf.String())
	}
	if doc.Rating != 1.5 {
		t.Errorf("rating = %v, want 1.5", doc.Rating)
	}
	// clear, five dull stars, one full and one semi overlay
	if len(doc.Ops) != 8 {
		t.Fatalf("ops = %d, want 8", len(doc.Ops))
	}
	if doc.Ops[0].Kind != "clear" || doc.Ops[0].Color != "#00000000" {
		t.Errorf("first op = %+v, want transparent clear", doc.Ops[0])
	}
	if got := len(doc.Ops[7].Points); got != 6 {
		t.Errorf("semi-star points = %d, want 6", got)
	}
	if doc.Ops[7].Color != "#FFD700FF" {
		t.Errorf("overlay color = %s, want #FFD700FF", doc.Ops[7].Color)
	}
}

func TestPointerScriptOrder(t *testing.T) {
	cfg := defaultWidgetConfig()
	s := pointerScript{rating: 2, clicks: []float64{90}, rightClick: true}
	w, err := newWidget(cfg, &s)
	if err != nil {
		t.Fatal(err)
	}
	defer w.Close()
	if w.Rating() != 0 {
		t.Errorf("Rating() = %v, want 0 after right click", w.Rating())
	}
}
