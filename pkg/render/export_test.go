package render

import (
	"bytes"
	"errors"
	"image"
	_ "image/png"
	"os"
	"path/filepath"
	"testing"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
)

func exportCanvas() *Canvas {
	cv := NewCanvas(6, 4)
	cv.Clear(ColorGray)
	cv.SetPixel(5, 3, RGB(250, 20, 30))
	return cv
}

func TestEncodeFormats(t *testing.T) {
	for _, format := range []Format{FormatPNG, FormatBMP, FormatTIFF} {
		t.Run(string(format), func(t *testing.T) {
			var buf bytes.Buffer
			if err := exportCanvas().Encode(&buf, format); err != nil {
				t.Fatalf("Encode: %v", err)
			}
			img, name, err := image.Decode(&buf)
			if err != nil {
				t.Fatalf("Decode: %v", err)
			}
			if name != string(format) {
				t.Errorf("decoded as %q", name)
			}
			r, g, b, _ := img.At(5, 3).RGBA()
			if r>>8 != 250 || g>>8 != 20 || b>>8 != 30 {
				t.Errorf("pixel (5, 3) = %d %d %d", r>>8, g>>8, b>>8)
			}
		})
	}

	if err := exportCanvas().Encode(&bytes.Buffer{}, "gif"); !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("gif: err = %v, want ErrUnknownFormat", err)
	}
}

func TestSaveScaled(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.png")
	if err := exportCanvas().Save(path, 2); err != nil {
		t.Fatalf("Save: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		t.Fatalf("DecodeConfig: %v", err)
	}
	if cfg.Width != 12 || cfg.Height != 8 {
		t.Errorf("saved %dx%d, want 12x8", cfg.Width, cfg.Height)
	}
}

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path string
		want Format
		ok   bool
	}{
		{"a.png", FormatPNG, true},
		{"dir/b.BMP", FormatBMP, true},
		{"c.tif", FormatTIFF, true},
		{"d.tiff", FormatTIFF, true},
		{"e.jpg", "", false},
		{"noext", "", false},
	}
	for _, tc := range tests {
		got, err := FormatFromPath(tc.path)
		if (err == nil) != tc.ok || got != tc.want {
			t.Errorf("FormatFromPath(%q) = %q, %v", tc.path, got, err)
		}
	}
}
