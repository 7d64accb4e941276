package cli

import (
	"context"
	"fmt"
	"image/png"
	"os"

	"github.com/spf13/cobra"

	"github.com/gogpu/starrating"
	"github.com/gogpu/starrating/render"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output string
	config configFlags
	script pointerScript
}

// renderCommand creates the render command, which writes the widget as a PNG.
func (c *CLI) renderCommand() *cobra.Command {
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the widget to a PNG file",
		Example: `  starrating render -o stars.png --rating 3.5 --half
  starrating render -o hover.png --hover 40 --borders -c widget.toml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.config.resolve(cmd.Flags())
			if err != nil {
				return err
			}
			return runRender(cmd.Context(), cfg, &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "stars.png", "output PNG file")
	opts.config.register(cmd.Flags())
	opts.script.register(cmd.Flags())

	return cmd
}

// newWidget builds a widget from cfg and replays the script against it.
func newWidget(cfg widgetConfig, script *pointerScript) (*starrating.Widget, error) {
	wopts, err := cfg.options()
	if err != nil {
		return nil, err
	}
	w := starrating.New(wopts...)
	script.run(w)
	return w, nil
}

func runRender(ctx context.Context, cfg widgetConfig, opts *renderOpts) error {
	logger := loggerFromContext(ctx)

	w, err := newWidget(cfg, &opts.script)
	if err != nil {
		return err
	}
	defer w.Close()

	size := w.Size()
	target := render.NewPixmapTarget(size.Width, size.Height)
	if err := w.Paint(target); err != nil {
		return err
	}

	f, err := os.Create(opts.output)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	if err := png.Encode(f, target.Image()); err != nil {
		f.Close()
		return fmt.Errorf("encode png: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close output: %w", err)
	}

	logger.Infof("Wrote %s (%dx%d, rating %g)", opts.output, size.Width, size.Height, w.Rating())
	return nil
}
