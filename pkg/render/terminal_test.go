package render

import (
	"image/color"
	"testing"

	uv "github.com/charmbracelet/ultraviolet"
)

func TestTerminalCanvasSize(t *testing.T) {
	w, h := TerminalCanvasSize(80, 24)
	if w != 80 || h != 48 {
		t.Errorf("TerminalCanvasSize(80, 24) = %d, %d", w, h)
	}
}

// stripes returns a 2x4 canvas with a different color in every pixel.
func stripes() *Canvas {
	cv := NewCanvas(2, 4)
	colors := []Color{ColorRed, ColorGreen, ColorBlue, ColorYellow, ColorCyan, ColorMagenta, ColorGray, ColorWhite}
	for i, c := range colors {
		cv.SetPixel(i%2, i/2, c)
	}
	return cv
}

func TestCanvasDraw(t *testing.T) {
	cv := stripes()
	scr := uv.NewScreenBuffer(2, 2)
	cv.Draw(scr, uv.Rect(0, 0, 2, 2))

	for row := range 2 {
		for col := range 2 {
			cell := scr.CellAt(col, row)
			if cell == nil {
				t.Fatalf("no cell at (%d, %d)", col, row)
			}
			if cell.Content != "▀" {
				t.Errorf("cell (%d, %d) content = %q", col, row, cell.Content)
			}
			top := color.Color(cv.At(col, row*2).ToRGBA())
			bot := color.Color(cv.At(col, row*2+1).ToRGBA())
			if cell.Style.Fg != top {
				t.Errorf("cell (%d, %d) fg = %v, want %v", col, row, cell.Style.Fg, top)
			}
			if cell.Style.Bg != bot {
				t.Errorf("cell (%d, %d) bg = %v, want %v", col, row, cell.Style.Bg, bot)
			}
		}
	}
}

func TestCanvasDrawStopsAtCanvasEdge(t *testing.T) {
	cv := stripes()
	scr := uv.NewScreenBuffer(4, 4)
	cv.Draw(scr, uv.Rect(0, 0, 4, 4))

	tests := []struct {
		name     string
		col, row int
		drawn    bool
	}{
		{"inside", 1, 1, true},
		{"right of canvas", 2, 0, false},
		{"below canvas", 0, 2, false},
		{"corner", 3, 3, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cell := scr.CellAt(tc.col, tc.row)
			if cell == nil {
				t.Fatalf("no cell at (%d, %d)", tc.col, tc.row)
			}
			if got := cell.Content == "▀"; got != tc.drawn {
				t.Errorf("cell (%d, %d) content = %q, drawn = %v, want %v", tc.col, tc.row, cell.Content, got, tc.drawn)
			}
		})
	}
}

func TestCanvasDrawOffsetArea(t *testing.T) {
	cv := stripes()
	scr := uv.NewScreenBuffer(5, 4)
	cv.Draw(scr, uv.Rect(3, 1, 2, 2))

	if c := scr.CellAt(0, 0); c == nil || c.Content == "▀" {
		t.Error("cell outside the area was drawn")
	}
	cell := scr.CellAt(3, 1)
	if cell == nil || cell.Content != "▀" {
		t.Fatal("area origin not drawn")
	}
	if want := color.Color(ColorRed.ToRGBA()); cell.Style.Fg != want {
		t.Errorf("area origin fg = %v, want %v", cell.Style.Fg, want)
	}
	if want := color.Color(ColorBlue.ToRGBA()); cell.Style.Bg != want {
		t.Errorf("area origin bg = %v, want %v", cell.Style.Bg, want)
	}
}
