package main

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/spf13/cobra"

	"github.com/taigrr/rtgx/pkg/config"
	"github.com/taigrr/rtgx/pkg/models"
	"github.com/taigrr/rtgx/pkg/render"
)

const viewTPS = 60

func newViewCmd(opts *options) *cobra.Command {
	var watch bool

	cmd := &cobra.Command{
		Use:   "view [flags] <mesh>",
		Short: "Open a mesh in a window",
		Long: `Open a mesh in a desktop window.

Controls:
  Arrows/WASD  spin the model
  X            toggle wireframe
  C            toggle back-face culling
  R            reset rotation
  Esc          quit`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.resolve(cmd)
			if err != nil {
				return err
			}
			return runView(cmd.Context(), cfg, args[0], watch)
		},
	}
	cmd.Flags().BoolVar(&watch, "watch", false, "reload the mesh when the file changes")
	return cmd
}

func runView(ctx context.Context, cfg config.Config, path string, watch bool) error {
	mesh, err := loadMesh(path, cfg.Fit)
	if err != nil {
		return err
	}

	g, err := newViewer(cfg, mesh)
	if err != nil {
		return err
	}

	if watch {
		ctx, cancel := context.WithCancel(ctx)
		defer cancel()
		if err := watchMesh(ctx, path, cfg.Fit, g.reload); err != nil {
			return err
		}
	}

	ebiten.SetWindowTitle("rtgx - " + filepath.Base(path))
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetTPS(viewTPS)
	return ebiten.RunGame(g)
}

// viewer implements ebiten.Game. Rendering happens on the game loop; the
// file watcher only hands over freshly loaded meshes.
type viewer struct {
	cfg      config.Config
	poser    *poser
	canvas   *render.Canvas
	renderer *render.Renderer
	rotation *RotationState
	reload   chan *models.Mesh

	pixels []byte
	img    *ebiten.Image
}

func newViewer(cfg config.Config, mesh *models.Mesh) (*viewer, error) {
	cv, r, err := newRenderer(cfg, cfg.Width, cfg.Height, mesh.TriangleCount())
	if err != nil {
		return nil, err
	}
	return &viewer{
		cfg:      cfg,
		poser:    newPoser(mesh),
		canvas:   cv,
		renderer: r,
		rotation: NewRotationState(viewTPS),
		reload:   make(chan *models.Mesh, 1),
		pixels:   make([]byte, 4*cfg.Width*cfg.Height),
	}, nil
}

const spin = 0.004

func (g *viewer) Update() error {
	select {
	case m := <-g.reload:
		if err := g.swapMesh(m); err != nil {
			return err
		}
		slog.Info("mesh reloaded", "faces", m.TriangleCount())
	default:
	}

	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		return ebiten.Termination
	case inpututil.IsKeyJustPressed(ebiten.KeyX):
		if g.renderer.Style == render.StyleWireframe {
			g.renderer.Style = render.StyleFill
		} else {
			g.renderer.Style = render.StyleWireframe
		}
	case inpututil.IsKeyJustPressed(ebiten.KeyC):
		g.renderer.DisableBackfaceCulling = !g.renderer.DisableBackfaceCulling
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		g.rotation.Reset()
	}

	var pitch, yaw float64
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) || ebiten.IsKeyPressed(ebiten.KeyW) {
		pitch -= spin
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) || ebiten.IsKeyPressed(ebiten.KeyS) {
		pitch += spin
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA) {
		yaw -= spin
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD) {
		yaw += spin
	}
	g.rotation.ApplyImpulse(pitch, yaw)
	g.rotation.Update()
	return nil
}

// swapMesh shows m in place of the current mesh. The palette is rebuilt
// for the new face count; the wireframe and culling toggles are kept.
func (g *viewer) swapMesh(m *models.Mesh) error {
	style, noCull := g.renderer.Style, g.renderer.DisableBackfaceCulling
	if err := g.cfg.Apply(g.renderer, m.TriangleCount()); err != nil {
		return err
	}
	g.renderer.Style, g.renderer.DisableBackfaceCulling = style, noCull
	g.poser = newPoser(m)
	return nil
}

func (g *viewer) Draw(screen *ebiten.Image) {
	if g.img == nil {
		g.img = ebiten.NewImage(g.canvas.Width, g.canvas.Height)
	}

	g.canvas.Clear(g.cfg.BackgroundColor())
	posed := g.poser.Pose(g.rotation.Matrix())
	stats := g.renderer.Render(posed)
	drawOverlays(g.canvas, g.cfg, posed)
	if stats.Clipped > 0 {
		slog.Debug("writes clipped", "count", stats.Clipped)
	}

	g.canvas.CopyRGBA(g.pixels)
	g.img.WritePixels(g.pixels)
	screen.DrawImage(g.img, nil)
}

func (g *viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.canvas.Width, g.canvas.Height
}

// watchMesh reloads path whenever it changes and sends the new mesh on out,
// replacing any mesh the viewer has not picked up yet. The directory is
// watched so that editors that replace the file are seen too.
func watchMesh(ctx context.Context, path string, fit bool, out chan *models.Mesh) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		watcher.Close()
		return fmt.Errorf("watch %s: %w", path, err)
	}
	target := filepath.Clean(path)

	go func() {
		defer watcher.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != target || !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
					continue
				}
				mesh, err := loadMesh(path, fit)
				if err != nil {
					slog.Error("reload failed", "path", path, "err", err)
					continue
				}
				select {
				case <-out:
				default:
				}
				out <- mesh
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				slog.Error("mesh watcher error", "err", err)
			}
		}
	}()
	return nil
}
