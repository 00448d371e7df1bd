package render

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// ErrUnknownFormat is returned for image formats Encode cannot write.
var ErrUnknownFormat = errors.New("unknown image format")

// Format is an output image format.
type Format string

// Supported formats
const (
	FormatPNG  Format = "png"
	FormatBMP  Format = "bmp"
	FormatTIFF Format = "tiff"
)

// FormatFromPath picks the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), ".")); ext {
	case "png":
		return FormatPNG, nil
	case "bmp":
		return FormatBMP, nil
	case "tif", "tiff":
		return FormatTIFF, nil
	default:
		return "", fmt.Errorf("extension %q: %w", ext, ErrUnknownFormat)
	}
}

// Encode writes the canvas to w.
func (cv *Canvas) Encode(w io.Writer, format Format) error {
	return encodeImage(w, cv.ToImage(), format)
}

// Save writes the canvas to path, choosing the format by extension.
// scale enlarges the image by an integer factor; values below 2 keep it 1:1.
func (cv *Canvas) Save(path string, scale int) (err error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", path, cerr)
		}
	}()

	if err := encodeImage(f, cv.Scaled(scale), format); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

func encodeImage(w io.Writer, img image.Image, format Format) error {
	switch format {
	case FormatPNG:
		return png.Encode(w, img)
	case FormatBMP:
		return bmp.Encode(w, img)
	case FormatTIFF:
		return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	default:
		return fmt.Errorf("format %q: %w", format, ErrUnknownFormat)
	}
}
