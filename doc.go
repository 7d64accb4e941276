// Package starrating implements a star-rating widget engine.
//
// A Widget draws a horizontal row of star shapes, previews a rating while the
// pointer hovers over it, commits a rating on left click and clears it on
// right click. It can rate in whole stars or in half-star steps.
//
// The widget does not own a window. The host feeds it pointer and size
// events, asks it to paint when a redraw is requested, and decides where the
// pixels go.
//
// # Quick Start
//
//	w := starrating.New(
//	    starrating.WithHalfStep(true),
//	    starrating.WithShowBorders(true),
//	    starrating.WithInvalidator(func(starrating.Request) { window.Invalidate() }),
//	)
//	defer w.Close()
//
//	w.OnRatingChanged(func() { fmt.Println("rated", w.Rating()) })
//
//	// from the host event loop
//	w.PointerMove(x, y)
//	w.PointerDown(x, y, starrating.ButtonLeft)
//	w.PointerLeave()
//	if err := w.Paint(windowImage); err != nil { ... }
//
// # Architecture
//
// The package is organized into layers:
//
//   - starrating: Widget state machine, options, notifications (this package)
//   - render: base and overlay passes over a frame
//   - layout: star rectangles, preferred size, hit testing
//   - geom: star outlines as polygons
//   - surface: drawing backends and the off-screen buffer
//
// # Drawing Backends
//
// Frames are drawn through a surface backend chosen by name:
//
//   - "gg": github.com/gogpu/gg software rasterizer (default)
//   - "vector": golang.org/x/image/vector
//   - "fogleman": github.com/fogleman/gg
//   - "record": records draw operations instead of pixels
//
// # Logging
//
// The library is silent by default. Call SetLogger to enable structured
// logging through log/slog.
package starrating
