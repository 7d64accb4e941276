package starrating

import "strings"

// Request is a set of host actions posted by the widget.
type Request uint8

const (
	// RequestRedraw asks the host to paint the widget again.
	RequestRedraw Request = 1 << iota

	// RequestResize asks the host to relayout because PreferredSize changed.
	RequestResize
)

// Has reports whether every flag in f is set.
func (r Request) Has(f Request) bool {
	return r&f == f
}

// String returns the set flags joined by "|", or "none".
func (r Request) String() string {
	if r == 0 {
		return "none"
	}
	var parts []string
	if r.Has(RequestRedraw) {
		parts = append(parts, "redraw")
	}
	if r.Has(RequestResize) {
		parts = append(parts, "resize")
	}
	return strings.Join(parts, "|")
}

// Button identifies the pointer button of a PointerDown event.
type Button uint8

const (
	// ButtonLeft commits the rating under the pointer.
	ButtonLeft Button = iota

	// ButtonRight clears the rating.
	ButtonRight
)

// String returns the button name.
func (b Button) String() string {
	switch b {
	case ButtonLeft:
		return "left"
	case ButtonRight:
		return "right"
	default:
		return "other"
	}
}
