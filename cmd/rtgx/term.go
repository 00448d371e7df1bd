package main

import (
	"context"
	"fmt"
	"time"

	uv "github.com/charmbracelet/ultraviolet"
	"github.com/spf13/cobra"

	"github.com/taigrr/rtgx/pkg/config"
	"github.com/taigrr/rtgx/pkg/render"
)

func newTermCmd(opts *options) *cobra.Command {
	var fps int

	cmd := &cobra.Command{
		Use:   "term [flags] <mesh>",
		Short: "Preview a mesh in the terminal",
		Long: `Preview a mesh in the terminal using half-block cells. The canvas is
sized to the terminal; --width and --height are ignored.

Controls:
  Arrows/WASD  spin the model
  X            toggle wireframe
  C            toggle back-face culling
  R            reset rotation
  Esc, Q       quit`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.resolve(cmd)
			if err != nil {
				return err
			}
			return runTerm(cmd.Context(), cfg, args[0], max(fps, 1))
		},
	}
	cmd.Flags().IntVar(&fps, "fps", 30, "target frames per second")
	return cmd
}

func runTerm(ctx context.Context, cfg config.Config, path string, fps int) error {
	mesh, err := loadMesh(path, cfg.Fit)
	if err != nil {
		return err
	}

	term := uv.DefaultTerminal()
	width, height, err := term.GetSize()
	if err != nil {
		return fmt.Errorf("get terminal size: %w", err)
	}
	if err := term.Start(); err != nil {
		return fmt.Errorf("start terminal: %w", err)
	}
	term.EnterAltScreen()
	term.HideCursor()
	term.Resize(width, height)

	defer func() {
		term.ExitAltScreen()
		term.ShowCursor()
		term.Shutdown(context.Background())
	}()

	newCanvas := func(cols, rows int) (*render.Canvas, *render.Renderer, error) {
		w, h := render.TerminalCanvasSize(cols, rows)
		return newRenderer(cfg, w, h, mesh.TriangleCount())
	}
	cv, r, err := newCanvas(width, height)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	rotation := NewRotationState(fps)
	poser := newPoser(mesh)
	const impulse = 0.05

	// Terminal events are handled on the frame loop so the canvas and
	// renderer are only touched from one goroutine.
	events := term.Events()
	ticker := time.NewTicker(time.Second / time.Duration(fps))
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-events:
			switch ev := ev.(type) {
			case uv.WindowSizeEvent:
				width, height = ev.Width, ev.Height
				term.Erase()
				term.Resize(width, height)
				style, noCull := r.Style, r.DisableBackfaceCulling
				if cv, r, err = newCanvas(width, height); err != nil {
					return err
				}
				r.Style, r.DisableBackfaceCulling = style, noCull
			case uv.KeyPressEvent:
				switch {
				case ev.MatchString("escape", "q", "ctrl+c"):
					return nil
				case ev.MatchString("w", "up"):
					rotation.ApplyImpulse(-impulse, 0)
				case ev.MatchString("s", "down"):
					rotation.ApplyImpulse(impulse, 0)
				case ev.MatchString("a", "left"):
					rotation.ApplyImpulse(0, -impulse)
				case ev.MatchString("d", "right"):
					rotation.ApplyImpulse(0, impulse)
				case ev.MatchString("x"):
					if r.Style == render.StyleWireframe {
						r.Style = render.StyleFill
					} else {
						r.Style = render.StyleWireframe
					}
				case ev.MatchString("c"):
					r.DisableBackfaceCulling = !r.DisableBackfaceCulling
				case ev.MatchString("r"):
					rotation.Reset()
				}
			}
		case <-ticker.C:
			rotation.Update()
			cv.Clear(cfg.BackgroundColor())
			posed := poser.Pose(rotation.Matrix())
			r.Render(posed)
			drawOverlays(cv, cfg, posed)
			cv.Draw(term, uv.Rect(0, 0, width, height))
			if err := term.Display(); err != nil {
				return fmt.Errorf("display: %w", err)
			}
		}
	}
}
