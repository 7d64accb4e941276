package cli

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/gogpu/gg"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"github.com/gogpu/starrating"
	"github.com/gogpu/starrating/geom"
	"github.com/gogpu/starrating/render"
)

// widgetConfig is the widget description read from flags and config files.
// Zero sizes mean the widget's preferred size.
type widgetConfig struct {
	StarCount   int          `toml:"star_count" yaml:"star_count"`
	StarSize    int          `toml:"star_size" yaml:"star_size"`
	Spacing     int          `toml:"spacing" yaml:"spacing"`
	BorderWidth float64      `toml:"border_width" yaml:"border_width"`
	Style       string       `toml:"style" yaml:"style"`
	HalfStep    bool         `toml:"half_step" yaml:"half_step"`
	ShowBorders bool         `toml:"show_borders" yaml:"show_borders"`
	Colors      colorsConfig `toml:"colors" yaml:"colors"`
	Background  string       `toml:"background" yaml:"background"`
	Backend     string       `toml:"backend" yaml:"backend"`
	Width       int          `toml:"width" yaml:"width"`
	Height      int          `toml:"height" yaml:"height"`
}

// colorsConfig holds hex color strings ("#RRGGBB" or "#RRGGBBAA").
// Empty fields keep the widget defaults.
type colorsConfig struct {
	Fill           string `toml:"fill" yaml:"fill"`
	Border         string `toml:"border" yaml:"border"`
	SelectedFill   string `toml:"selected_fill" yaml:"selected_fill"`
	SelectedBorder string `toml:"selected_border" yaml:"selected_border"`
}

// defaultWidgetConfig mirrors the widget defaults.
func defaultWidgetConfig() widgetConfig {
	return widgetConfig{
		StarCount:   starrating.DefaultStarCount,
		StarSize:    starrating.DefaultStarSize,
		Spacing:     starrating.DefaultSpacing,
		BorderWidth: starrating.DefaultBorderWidth,
		Style:       geom.StyleFat.String(),
	}
}

// loadConfig decodes path over cfg. The format is chosen by extension:
// .toml, or .yaml/.yml.
func loadConfig(path string, cfg *widgetConfig) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		if err := toml.Unmarshal(data, cfg); err != nil {
			return fmt.Errorf("parse %s: %w", path, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return fmt.Errorf("parse %s: %w", path, err)
		}
	default:
		return fmt.Errorf("unsupported config format %q (must be .toml, .yaml or .yml)", ext)
	}
	return nil
}

// configFlags binds the widget flags. Values are copied onto the file
// config only for flags the user set.
type configFlags struct {
	path string
	widgetConfig
}

func (f *configFlags) register(fs *pflag.FlagSet) {
	d := defaultWidgetConfig()
	fs.StringVarP(&f.path, "config", "c", "", "widget config file (.toml, .yaml)")
	fs.IntVar(&f.StarCount, "stars", d.StarCount, "number of stars")
	fs.IntVar(&f.StarSize, "star-size", d.StarSize, "preferred star size in pixels")
	fs.IntVar(&f.Spacing, "spacing", d.Spacing, "gap between stars in pixels")
	fs.Float64Var(&f.BorderWidth, "border-width", d.BorderWidth, "star outline width (0-5)")
	fs.StringVar(&f.Style, "style", d.Style, "star style: fat (default), normal")
	fs.BoolVar(&f.HalfStep, "half", false, "rate in half stars")
	fs.BoolVar(&f.ShowBorders, "borders", false, "draw star outlines")
	fs.StringVar(&f.Colors.Fill, "fill", "", "dull star color (hex)")
	fs.StringVar(&f.Colors.Border, "border", "", "dull outline color (hex)")
	fs.StringVar(&f.Colors.SelectedFill, "selected-fill", "", "lit star color (hex)")
	fs.StringVar(&f.Colors.SelectedBorder, "selected-border", "", "lit outline color (hex)")
	fs.StringVar(&f.Background, "background", "", "background color (hex), transparent when empty")
	fs.StringVar(&f.Backend, "backend", "", "surface backend: gg, vector, fogleman, record (best available when empty)")
	fs.IntVar(&f.Width, "width", 0, "widget width (preferred when 0)")
	fs.IntVar(&f.Height, "height", 0, "widget height (preferred when 0)")
}

// resolve returns defaults, overlaid by the config file, overlaid by the
// flags the user set explicitly.
func (f *configFlags) resolve(fs *pflag.FlagSet) (widgetConfig, error) {
	cfg := defaultWidgetConfig()
	if f.path != "" {
		if err := loadConfig(f.path, &cfg); err != nil {
			return cfg, err
		}
	}

	set := func(name string, apply func()) {
		if fs.Changed(name) {
			apply()
		}
	}
	set("stars", func() { cfg.StarCount = f.StarCount })
	set("star-size", func() { cfg.StarSize = f.StarSize })
	set("spacing", func() { cfg.Spacing = f.Spacing })
	set("border-width", func() { cfg.BorderWidth = f.BorderWidth })
	set("style", func() { cfg.Style = f.Style })
	set("half", func() { cfg.HalfStep = f.HalfStep })
	set("borders", func() { cfg.ShowBorders = f.ShowBorders })
	set("fill", func() { cfg.Colors.Fill = f.Colors.Fill })
	set("border", func() { cfg.Colors.Border = f.Colors.Border })
	set("selected-fill", func() { cfg.Colors.SelectedFill = f.Colors.SelectedFill })
	set("selected-border", func() { cfg.Colors.SelectedBorder = f.Colors.SelectedBorder })
	set("background", func() { cfg.Background = f.Background })
	set("backend", func() { cfg.Backend = f.Backend })
	set("width", func() { cfg.Width = f.Width })
	set("height", func() { cfg.Height = f.Height })

	return cfg, nil
}

// options converts the config into widget options.
func (cfg widgetConfig) options() ([]starrating.Option, error) {
	style, err := geom.ParseStarStyle(cfg.Style)
	if err != nil {
		return nil, err
	}
	colors, err := cfg.Colors.parse()
	if err != nil {
		return nil, err
	}

	opts := []starrating.Option{
		starrating.WithStarCount(cfg.StarCount),
		starrating.WithStarSize(cfg.StarSize),
		starrating.WithSpacing(cfg.Spacing),
		starrating.WithBorderWidth(cfg.BorderWidth),
		starrating.WithStyle(style),
		starrating.WithHalfStep(cfg.HalfStep),
		starrating.WithShowBorders(cfg.ShowBorders),
		starrating.WithColors(colors),
		starrating.WithBackend(cfg.Backend),
	}
	if cfg.Background != "" {
		bg, err := parseHex(cfg.Background)
		if err != nil {
			return nil, fmt.Errorf("background: %w", err)
		}
		opts = append(opts, starrating.WithBackground(bg.Color()))
	}
	if cfg.Width > 0 && cfg.Height > 0 {
		opts = append(opts, starrating.WithSize(cfg.Width, cfg.Height))
	}
	return opts, nil
}

func (c colorsConfig) parse() (render.Colors, error) {
	var out render.Colors
	fields := []struct {
		name string
		hex  string
		dst  *color.Color
	}{
		{"fill", c.Fill, &out.Fill},
		{"border", c.Border, &out.Border},
		{"selected_fill", c.SelectedFill, &out.SelectedFill},
		{"selected_border", c.SelectedBorder, &out.SelectedBorder},
	}
	for _, f := range fields {
		if f.hex == "" {
			continue
		}
		v, err := parseHex(f.hex)
		if err != nil {
			return out, fmt.Errorf("%s: %w", f.name, err)
		}
		*f.dst = v.Color()
	}
	return out, nil
}

// parseHex validates a hex color before handing it to gg.Hex, which maps
// malformed input to black.
func parseHex(s string) (gg.RGBA, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	switch len(h) {
	case 3, 4, 6, 8:
	default:
		return gg.RGBA{}, fmt.Errorf("invalid color %q", s)
	}
	for _, r := range h {
		if !strings.ContainsRune("0123456789abcdefABCDEF", r) {
			return gg.RGBA{}, fmt.Errorf("invalid color %q", s)
		}
	}
	return gg.Hex(h), nil
}
