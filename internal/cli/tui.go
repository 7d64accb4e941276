package cli

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/gogpu/starrating"
	"github.com/gogpu/starrating/geom"
	"github.com/gogpu/starrating/render"
)

var (
	colorCyan = lipgloss.Color("36")  // Teal - title
	colorDim  = lipgloss.Color("240") // Dim gray - help text
	colorRed  = lipgloss.Color("167") // Soft red - errors

	styleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	styleDim   = lipgloss.NewStyle().Foreground(colorDim)
	styleError = lipgloss.NewStyle().Foreground(colorRed)
)

// headerRows is the number of terminal rows above the widget.
const headerRows = 2

// tuiOpts holds the command-line flags for the tui command.
type tuiOpts struct {
	config configFlags
}

// tuiCommand creates the tui command, an interactive terminal host.
func (c *CLI) tuiCommand() *cobra.Command {
	var opts tuiOpts

	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Run the widget interactively in the terminal",
		Long: `Run the widget in the terminal. One column is one pixel and one row is
two pixels. Hover to preview, left click to rate, right click to clear.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.config.resolve(cmd.Flags())
			if err != nil {
				return err
			}
			return runTUI(cmd.Context(), cfg)
		},
	}

	opts.config.register(cmd.Flags())

	return cmd
}

func runTUI(ctx context.Context, cfg widgetConfig) error {
	logger := loggerFromContext(ctx)

	wopts, err := cfg.options()
	if err != nil {
		return err
	}
	w := starrating.New(wopts...)
	defer w.Close()

	m := newRatingModel(w)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("tui: %w", err)
	}

	logger.Infof("Final rating %g of %d", w.Rating(), w.StarCount())
	return nil
}

// ratingModel is the bubbletea model hosting a widget.
type ratingModel struct {
	widget *starrating.Widget
	target *render.PixmapTarget
	pixels string
	inside bool
	status string
	err    error
}

func newRatingModel(w *starrating.Widget) *ratingModel {
	size := w.Size()
	m := &ratingModel{
		widget: w,
		target: render.NewPixmapTarget(size.Width, size.Height),
	}
	w.OnRatingChanged(func() {
		m.status = fmt.Sprintf("rated %g", w.Rating())
	})
	m.repaint(true)
	return m
}

func (m *ratingModel) Init() tea.Cmd {
	return nil
}

func (m *ratingModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "h":
			m.widget.SetHalfStep(!m.widget.HalfStep())
		case "b":
			m.widget.SetShowBorders(!m.widget.ShowBorders())
		case "s":
			m.widget.SetStyle(nextStyle(m.widget.Style()))
		case "r":
			m.widget.SetRating(0)
		}
	case tea.MouseMsg:
		m.handleMouse(msg)
	}
	m.repaint(false)
	return m, nil
}

func (m *ratingModel) handleMouse(msg tea.MouseMsg) {
	size := m.widget.Size()
	x := float64(msg.X)
	y := float64((msg.Y - headerRows) * 2)
	inside := msg.Y >= headerRows && msg.X < size.Width && int(y) < size.Height

	switch {
	case !inside:
		if m.inside {
			m.widget.PointerLeave()
		}
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		m.widget.PointerDown(x, y, starrating.ButtonLeft)
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonRight:
		m.widget.PointerDown(x, y, starrating.ButtonRight)
		m.status = "cleared"
	case msg.Action == tea.MouseActionMotion:
		m.widget.PointerMove(x, y)
	}
	m.inside = inside
}

// repaint drains the widget's requests and repaints the cached pixels when
// asked to.
func (m *ratingModel) repaint(force bool) {
	req := m.widget.TakeRequests()
	if req.Has(starrating.RequestResize) {
		size := m.widget.PreferredSize()
		if err := m.widget.Resize(size.Width, size.Height); err != nil {
			m.err = err
			return
		}
		m.target.Resize(size.Width, size.Height)
		m.widget.TakeRequests()
	}
	if !force && req == 0 {
		return
	}
	if err := m.widget.Paint(m.target); err != nil {
		m.err = err
		return
	}
	m.pixels = halfBlocks(m.target.Image())
}

func (m *ratingModel) View() string {
	var b strings.Builder

	b.WriteString(styleTitle.Render("Star rating"))
	b.WriteString("\n\n")
	b.WriteString(m.pixels)
	b.WriteString("\n")

	info := fmt.Sprintf("rating %g  hover %g  %s", m.widget.Rating(), m.widget.HoverRating(), m.status)
	b.WriteString(info)
	b.WriteString("\n")
	if m.err != nil {
		b.WriteString(styleError.Render(m.err.Error()))
		b.WriteString("\n")
	}
	b.WriteString(styleDim.Render("click rate  right-click clear  h half  b borders  s style  r reset  q quit"))
	return b.String()
}

func nextStyle(s geom.StarStyle) geom.StarStyle {
	if s == geom.StyleFat {
		return geom.StyleNormal
	}
	return geom.StyleFat
}

// halfBlocks renders img with one "▀" cell per column and two pixel rows
// per terminal row. Mostly transparent pixels are left blank.
func halfBlocks(img *image.RGBA) string {
	var b strings.Builder
	r := img.Bounds()
	for y := r.Min.Y; y < r.Max.Y; y += 2 {
		if y > r.Min.Y {
			b.WriteByte('\n')
		}
		for x := r.Min.X; x < r.Max.X; x++ {
			top := img.RGBAAt(x, y)
			var bottom color.RGBA
			if y+1 < r.Max.Y {
				bottom = img.RGBAAt(x, y+1)
			}
			b.WriteString(cell(top, bottom))
		}
	}
	return b.String()
}

func cell(top, bottom color.RGBA) string {
	const opaque = 128
	style := lipgloss.NewStyle()
	switch {
	case top.A < opaque && bottom.A < opaque:
		return " "
	case top.A < opaque:
		return style.Foreground(termColor(bottom)).Render("▄")
	case bottom.A < opaque:
		return style.Foreground(termColor(top)).Render("▀")
	default:
		return style.Foreground(termColor(top)).Background(termColor(bottom)).Render("▀")
	}
}

func termColor(c color.RGBA) lipgloss.Color {
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B))
}
