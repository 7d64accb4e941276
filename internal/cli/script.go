package cli

import (
	"github.com/spf13/pflag"

	"github.com/gogpu/starrating"
)

// pointerScript is the input replayed against a widget before output.
// Steps run in a fixed order: rating, hovers, clicks, right click, leave.
type pointerScript struct {
	rating     float64
	hovers     []float64
	clicks     []float64
	rightClick bool
	leave      bool
}

func (s *pointerScript) register(fs *pflag.FlagSet) {
	fs.Float64Var(&s.rating, "rating", 0, "commit this rating first")
	fs.Float64SliceVar(&s.hovers, "hover", nil, "pointer move to x (repeatable)")
	fs.Float64SliceVar(&s.clicks, "click", nil, "left click at x (repeatable)")
	fs.BoolVar(&s.rightClick, "right-click", false, "right click to clear the rating")
	fs.BoolVar(&s.leave, "leave", false, "move the pointer off the widget at the end")
}

// run replays the script. The y coordinate is the widget's vertical center.
func (s *pointerScript) run(w *starrating.Widget) {
	y := float64(w.Size().Height) / 2
	if s.rating != 0 {
		w.SetRating(s.rating)
	}
	for _, x := range s.hovers {
		w.PointerMove(x, y)
	}
	for _, x := range s.clicks {
		w.PointerDown(x, y, starrating.ButtonLeft)
	}
	if s.rightClick {
		w.PointerDown(0, y, starrating.ButtonRight)
	}
	if s.leave {
		w.PointerLeave()
	}
}
