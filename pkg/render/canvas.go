// Package render rasterizes triangle meshes into a packed-RGB pixel buffer.
package render

import (
	"errors"
	"fmt"
	"image"

	"golang.org/x/image/draw"
)

// ErrCanvasSize is returned by WrapCanvas when the slice does not hold
// exactly width*height pixels.
var ErrCanvasSize = errors.New("canvas size mismatch")

// Canvas is a row-major grid of packed RGB pixels. Pixel (x, y) lives at
// Pix[y*Width+x]. The dimensions never change after creation.
type Canvas struct {
	Width  int
	Height int
	Pix    []uint32

	// Clipped counts writes that fell outside the canvas and were dropped.
	Clipped int
}

// NewCanvas allocates a black canvas.
func NewCanvas(width, height int) *Canvas {
	return &Canvas{
		Width:  width,
		Height: height,
		Pix:    make([]uint32, width*height),
	}
}

// WrapCanvas uses a caller-owned slice as pixel storage.
func WrapCanvas(pix []uint32, width, height int) (*Canvas, error) {
	if width < 0 || height < 0 || len(pix) != width*height {
		return nil, fmt.Errorf("wrap %dx%d canvas with %d pixels: %w", width, height, len(pix), ErrCanvasSize)
	}
	return &Canvas{Width: width, Height: height, Pix: pix}, nil
}

// Clear fills the canvas with c and resets the clip counter.
func (cv *Canvas) Clear(c Color) {
	n := len(cv.Pix)
	if n == 0 {
		return
	}
	// copy-doubling
	cv.Pix[0] = uint32(c)
	for i := 1; i < n; i *= 2 {
		copy(cv.Pix[i:], cv.Pix[:i])
	}
	cv.Clipped = 0
}

// SetPixel writes c at (x, y) in buffer coordinates. Writes outside the
// canvas are counted in Clipped and dropped.
func (cv *Canvas) SetPixel(x, y int, c Color) {
	if x < 0 || x >= cv.Width || y < 0 || y >= cv.Height {
		cv.Clipped++
		return
	}
	cv.Pix[y*cv.Width+x] = uint32(c)
}

// At returns the color at (x, y), or black when out of bounds.
func (cv *Canvas) At(x, y int) Color {
	if x < 0 || x >= cv.Width || y < 0 || y >= cv.Height {
		return ColorBlack
	}
	return Color(cv.Pix[y*cv.Width+x])
}

// ToImage converts the canvas to a standard Go image.RGBA.
func (cv *Canvas) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, cv.Width, cv.Height))
	cv.CopyRGBA(img.Pix)
	return img
}

// CopyRGBA writes the canvas into dst as 8-bit RGBA bytes, the layout
// image.RGBA and most window toolkits expect. dst must hold 4*Width*Height bytes.
func (cv *Canvas) CopyRGBA(dst []byte) {
	for i, p := range cv.Pix {
		j := i * 4
		if j+3 >= len(dst) {
			return
		}
		dst[j+0] = uint8(p >> 16)
		dst[j+1] = uint8(p >> 8)
		dst[j+2] = uint8(p)
		dst[j+3] = 0xFF
	}
}

// Scaled returns the canvas as an image enlarged by an integer factor with
// nearest-neighbour sampling, keeping pixel edges hard.
func (cv *Canvas) Scaled(factor int) *image.RGBA {
	src := cv.ToImage()
	if factor <= 1 {
		return src
	}
	dst := image.NewRGBA(image.Rect(0, 0, cv.Width*factor, cv.Height*factor))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst
}
