package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/taigrr/rtgx/pkg/config"
	"github.com/taigrr/rtgx/pkg/render"
)

type renderResult struct {
	mesh  string
	out   string
	stats render.Stats
}

func newRenderCmd(opts *options) *cobra.Command {
	var (
		out    string
		format string
		jobs   int
		scale  int
	)

	cmd := &cobra.Command{
		Use:   "render [flags] <mesh>...",
		Short: "Render meshes to image files",
		Long: `Render each mesh to an image. With a single mesh, --out may name the
image file; otherwise --out is a directory and each image is named after its mesh.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.resolve(cmd)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("scale") {
				cfg.Scale = scale
			}
			if cmd.Flags().Changed("out") {
				cfg.Output = out
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			targets, err := outputPaths(args, cfg.Output, format)
			if err != nil {
				return err
			}

			results, err := renderAll(cmd.Context(), cfg, args, targets, jobs)
			if err != nil {
				return err
			}
			printSummary(cmd, results)
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "output file or directory (default: current directory)")
	cmd.Flags().StringVarP(&format, "format", "f", string(render.FormatPNG), "image format when --out is a directory: png, bmp or tiff")
	cmd.Flags().IntVarP(&jobs, "jobs", "j", runtime.NumCPU(), "meshes rendered in parallel")
	cmd.Flags().IntVar(&scale, "scale", 1, "integer upscale factor for saved images")
	return cmd
}

// outputPaths maps every mesh to an image path.
func outputPaths(meshes []string, out, format string) ([]string, error) {
	if len(meshes) == 1 && out != "" {
		if _, err := render.FormatFromPath(out); err == nil {
			return []string{out}, nil
		}
	}

	if _, err := render.FormatFromPath("x." + format); err != nil {
		return nil, fmt.Errorf("--format: %w", err)
	}
	dir := out
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}

	paths := make([]string, len(meshes))
	seen := make(map[string]string, len(meshes))
	for i, m := range meshes {
		base := strings.TrimSuffix(filepath.Base(m), filepath.Ext(m))
		p := filepath.Join(dir, base+"."+format)
		if prev, ok := seen[p]; ok {
			return nil, fmt.Errorf("%s and %s both write %s", prev, m, p)
		}
		seen[p] = m
		paths[i] = p
	}
	return paths, nil
}

// renderAll renders meshes concurrently, each on its own canvas.
func renderAll(ctx context.Context, cfg config.Config, meshes, outs []string, jobs int) ([]renderResult, error) {
	results := make([]renderResult, len(meshes))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(jobs, 1))
	for i, path := range meshes {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			stats, err := renderFile(cfg, path, outs[i])
			if err != nil {
				return fmt.Errorf("render %s: %w", path, err)
			}
			results[i] = renderResult{mesh: path, out: outs[i], stats: stats}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func renderFile(cfg config.Config, meshPath, outPath string) (render.Stats, error) {
	mesh, err := loadMesh(meshPath, cfg.Fit)
	if err != nil {
		return render.Stats{}, err
	}

	cv, r, err := newRenderer(cfg, cfg.Width, cfg.Height, mesh.TriangleCount())
	if err != nil {
		return render.Stats{}, err
	}
	stats := r.Render(mesh)
	drawOverlays(cv, cfg, mesh)
	logStats("pass complete", stats, "mesh", meshPath)

	if err := cv.Save(outPath, cfg.Scale); err != nil {
		return render.Stats{}, err
	}
	slog.Info("image written", "path", outPath, "width", cfg.Width*cfg.Scale, "height", cfg.Height*cfg.Scale)
	return stats, nil
}

var (
	okStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#04B575")).Bold(true)
	nameStyle  = lipgloss.NewStyle().Bold(true)
	dimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#777777"))
	countStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#7D56F4"))
)

func printSummary(cmd *cobra.Command, results []renderResult) {
	var total render.Stats
	w := cmd.OutOrStdout()
	for _, res := range results {
		total.Add(res.stats)
		fmt.Fprintln(w, okStyle.Render("✓"),
			nameStyle.Render(filepath.Base(res.mesh)),
			dimStyle.Render("→"),
			res.out,
			countStyle.Render(fmt.Sprintf("%d/%d faces", res.stats.Drawn, res.stats.Faces)),
		)
	}
	if len(results) > 1 {
		fmt.Fprintln(w, dimStyle.Render(fmt.Sprintf("%d meshes, %d faces drawn, %d culled, %d pixels",
			len(results), total.Drawn, total.Culled, total.Pixels)))
	}
}
