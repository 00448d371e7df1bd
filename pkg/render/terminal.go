package render

import (
	"image/color"

	uv "github.com/charmbracelet/ultraviolet"
)

// TerminalCanvasSize returns the canvas size that fills a terminal of
// cols x rows cells. Each cell shows two vertically stacked pixels.
func TerminalCanvasSize(cols, rows int) (width, height int) {
	return cols, rows * 2
}

// Draw converts the canvas to terminal cells and draws them on the screen.
// The canvas height should be 2x the terminal height.
func (cv *Canvas) Draw(scr uv.Screen, area uv.Rectangle) {
	// ▀ (upper half block) with fg=top color and bg=bottom color
	for row := area.Min.Y; row < area.Max.Y; row++ {
		topY := (row - area.Min.Y) * 2
		botY := topY + 1
		if topY >= cv.Height {
			break
		}

		for col := area.Min.X; col < area.Max.X && col-area.Min.X < cv.Width; col++ {
			x := col - area.Min.X
			cell := &uv.Cell{
				Content: "▀",
				Width:   1,
				Style: uv.Style{
					Fg: cellColor(cv.At(x, topY)),
					Bg: cellColor(cv.At(x, botY)),
				},
			}
			scr.SetCell(col, row, cell)
		}
	}
}

func cellColor(c Color) color.Color {
	return c.ToRGBA()
}
