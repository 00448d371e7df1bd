// rtgx - CPU triangle rasterizer
// Renders OBJ and GLB meshes to image files, a desktop window or the terminal.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/taigrr/rtgx/pkg/config"
	"github.com/taigrr/rtgx/pkg/models"
	"github.com/taigrr/rtgx/pkg/render"
)

// options holds the flags shared by every subcommand.
type options struct {
	configPath string
	width      int
	height     int
	light      string
	shading    string
	style      string
	color      string
	background string
	palette    string
	seed       int64
	fit        bool
	noCull     bool
	bounds     bool
	axes       bool
	verbose    bool
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := fang.Execute(ctx, newRootCmd()); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:   "rtgx",
		Short: "Rasterize triangle meshes on the CPU",
		Long: `rtgx loads an OBJ or GLB mesh, flat-shades every face with a single
directional light and rasterizes it into a packed RGB pixel buffer.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelInfo
			if opts.verbose {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
		},
	}

	opts.register(root.PersistentFlags())

	root.AddCommand(
		newRenderCmd(opts),
		newViewCmd(opts),
		newTermCmd(opts),
	)
	return root
}

// register adds the shared flags to f.
func (o *options) register(f *pflag.FlagSet) {
	def := config.Default()
	f.StringVar(&o.configPath, "config", "", "config file (.toml, .yaml)")
	f.IntVar(&o.width, "width", def.Width, "canvas width in pixels")
	f.IntVar(&o.height, "height", def.Height, "canvas height in pixels")
	f.StringVar(&o.light, "light", "0,0,-1", "light direction as x,y,z")
	f.StringVar(&o.shading, "shading", def.Shading, "shading mode: clamp, cull or unlit")
	f.StringVar(&o.style, "style", def.Style, "draw style: fill or wireframe")
	f.StringVar(&o.color, "color", def.Color, "base face color (#rrggbb)")
	f.StringVar(&o.background, "bg", def.Background, "background color (#rrggbb)")
	f.StringVar(&o.palette, "palette", "", "face palette: random or gradient")
	f.Int64Var(&o.seed, "seed", 0, "seed for the random palette")
	f.BoolVar(&o.fit, "fit", false, "center and scale the mesh into [-1, 1]")
	f.BoolVar(&o.noCull, "no-cull", false, "disable back-face culling")
	f.BoolVar(&o.bounds, "bounds", false, "draw the mesh bounding box")
	f.BoolVar(&o.axes, "axes", false, "draw the X, Y and Z axes")
	f.BoolVarP(&o.verbose, "verbose", "v", false, "debug logging")
}

// resolve builds the effective config: defaults, then the config file,
// then any flag the user set explicitly.
func (o *options) resolve(cmd *cobra.Command) (config.Config, error) {
	cfg := config.Default()
	if o.configPath != "" {
		var err error
		cfg, err = config.Load(o.configPath)
		if err != nil {
			return config.Config{}, err
		}
		slog.Debug("config loaded", "path", o.configPath)
	}

	flags := cmd.Flags()
	if flags.Changed("width") {
		cfg.Width = o.width
	}
	if flags.Changed("height") {
		cfg.Height = o.height
	}
	if flags.Changed("light") {
		l, err := parseVec(o.light)
		if err != nil {
			return config.Config{}, fmt.Errorf("--light: %w", err)
		}
		cfg.Light = l
	}
	if flags.Changed("shading") {
		cfg.Shading = o.shading
	}
	if flags.Changed("style") {
		cfg.Style = o.style
	}
	if flags.Changed("color") {
		cfg.Color = o.color
	}
	if flags.Changed("bg") {
		cfg.Background = o.background
	}
	if flags.Changed("palette") {
		cfg.Palette = o.palette
	}
	if flags.Changed("seed") {
		cfg.Seed = o.seed
	}
	if flags.Changed("fit") {
		cfg.Fit = o.fit
	}
	if flags.Changed("no-cull") {
		cfg.DisableBackfaceCulling = o.noCull
	}
	if flags.Changed("bounds") {
		cfg.Bounds = o.bounds
	}
	if flags.Changed("axes") {
		cfg.Axes = o.axes
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

func parseVec(s string) ([3]float64, error) {
	var v [3]float64
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return v, fmt.Errorf("want x,y,z, got %q", s)
	}
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return v, fmt.Errorf("component %d: %w", i, err)
		}
		v[i] = f
	}
	return v, nil
}

// loadMesh loads and optionally fits a mesh, logging its size.
func loadMesh(path string, fit bool) (*models.Mesh, error) {
	mesh, err := models.Load(path)
	if err != nil {
		return nil, err
	}
	if fit {
		mesh.Fit()
	}
	slog.Info("mesh loaded", "path", path, "vertices", mesh.VertexCount(), "faces", mesh.TriangleCount())
	return mesh, nil
}

// newRenderer creates a cleared canvas and a renderer configured by cfg.
func newRenderer(cfg config.Config, width, height, faces int) (*render.Canvas, *render.Renderer, error) {
	cv := render.NewCanvas(width, height)
	cv.Clear(cfg.BackgroundColor())
	r := render.NewRenderer(cv)
	if err := cfg.Apply(r, faces); err != nil {
		return nil, nil, err
	}
	return cv, r, nil
}

// drawOverlays draws the overlays enabled in cfg on top of a rendered mesh.
func drawOverlays(cv *render.Canvas, cfg config.Config, mesh *models.Mesh) {
	if cfg.Bounds {
		lo, hi := mesh.GetBounds()
		cv.DrawBox(lo, hi, render.ColorYellow)
	}
	if cfg.Axes {
		cv.DrawAxes(1)
	}
}

func logStats(msg string, stats render.Stats, attrs ...any) {
	if stats.Clipped > 0 {
		slog.Info("writes clipped", append([]any{"count", stats.Clipped}, attrs...)...)
	}
	attrs = append(attrs,
		"faces", stats.Faces,
		"drawn", stats.Drawn,
		"culled", stats.Culled,
		"unlit", stats.Unlit,
		"pixels", stats.Pixels,
	)
	slog.Debug(msg, attrs...)
}
