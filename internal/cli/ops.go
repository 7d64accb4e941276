package cli

import (
	"context"
	"fmt"
	"image/color"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/gogpu/starrating/surface"
)

// opsOpts holds the command-line flags for the ops command.
type opsOpts struct {
	config configFlags
	script pointerScript
}

// opsDocument is the YAML shape printed by the ops command.
type opsDocument struct {
	Width       int      `yaml:"width"`
	Height      int      `yaml:"height"`
	Rating      float64  `yaml:"rating"`
	HoverRating float64  `yaml:"hover_rating"`
	Ops         []opYAML `yaml:"ops"`
}

type opYAML struct {
	Kind   string       `yaml:"kind"`
	Color  string       `yaml:"color"`
	Closed bool         `yaml:"closed,omitempty"`
	Width  float64      `yaml:"width,omitempty"`
	Join   string       `yaml:"join,omitempty"`
	Points [][2]float64 `yaml:"points,omitempty,flow"`
}

// opsCommand creates the ops command, which prints the draw operations of
// one frame.
func (c *CLI) opsCommand() *cobra.Command {
	var opts opsOpts

	cmd := &cobra.Command{
		Use:   "ops",
		Short: "Print the draw operations of one frame as YAML",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.config.resolve(cmd.Flags())
			if err != nil {
				return err
			}
			return runOps(cmd.Context(), cmd.OutOrStdout(), cfg, &opts)
		},
	}

	opts.config.register(cmd.Flags())
	opts.script.register(cmd.Flags())

	return cmd
}

func runOps(ctx context.Context, out io.Writer, cfg widgetConfig, opts *opsOpts) error {
	logger := loggerFromContext(ctx)

	w, err := newWidget(cfg, &opts.script)
	if err != nil {
		return err
	}
	defer w.Close()

	size := w.Size()
	rec := surface.NewRecordSurface(size.Width+1, size.Height+1)
	w.Draw(rec)

	doc := opsDocument{
		Width:       size.Width,
		Height:      size.Height,
		Rating:      w.Rating(),
		HoverRating: w.HoverRating(),
	}
	for _, op := range rec.Ops() {
		doc.Ops = append(doc.Ops, toOpYAML(op))
	}
	logger.Debugf("Recorded %d draw operations", len(doc.Ops))

	enc := yaml.NewEncoder(out)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode ops: %w", err)
	}
	return enc.Close()
}

func toOpYAML(op surface.Op) opYAML {
	y := opYAML{
		Kind:   op.Kind.String(),
		Color:  hexColor(op.Color),
		Closed: op.Closed,
	}
	if op.Kind == surface.OpStroke {
		y.Width = op.Width
		y.Join = op.Join.String()
	}
	for _, p := range op.Points {
		y.Points = append(y.Points, [2]float64{p.X, p.Y})
	}
	return y
}

func hexColor(c color.NRGBA) string {
	return fmt.Sprintf("#%02X%02X%02X%02X", c.R, c.G, c.B, c.A)
}
