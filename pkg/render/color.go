package render

import (
	"fmt"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is a packed 24-bit RGB value laid out as 0x00RRGGBB.
type Color uint32

// Colors for convenience
const (
	ColorBlack   Color = 0x000000
	ColorWhite   Color = 0xFFFFFF
	ColorRed     Color = 0xFF0000
	ColorGreen   Color = 0x00FF00
	ColorBlue    Color = 0x0000FF
	ColorYellow  Color = 0xFFFF00
	ColorCyan    Color = 0x00FFFF
	ColorMagenta Color = 0xFF00FF
	ColorGray    Color = 0x808080
)

// RGB packs three channels into a Color.
func RGB(r, g, b uint8) Color {
	return Color(r)<<16 | Color(g)<<8 | Color(b)
}

// R returns the red channel.
func (c Color) R() uint8 { return uint8(c >> 16) }

// G returns the green channel.
func (c Color) G() uint8 { return uint8(c >> 8) }

// B returns the blue channel.
func (c Color) B() uint8 { return uint8(c) }

// ToRGBA converts the color to an opaque color.RGBA.
func (c Color) ToRGBA() color.RGBA {
	return color.RGBA{c.R(), c.G(), c.B(), 0xFF}
}

// Hex formats the color as #rrggbb.
func (c Color) Hex() string {
	return fmt.Sprintf("#%06x", uint32(c)&0xFFFFFF)
}

// ParseColor parses a "#rrggbb" string.
func ParseColor(s string) (Color, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return 0, fmt.Errorf("parse color %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return RGB(r, g, b), nil
}

// Shade scales every channel of base by intensity. Each product is clamped
// to [0, 255] and then truncated, so non-positive intensity gives black.
func Shade(base Color, intensity float64) Color {
	return RGB(
		scaleChannel(base.R(), intensity),
		scaleChannel(base.G(), intensity),
		scaleChannel(base.B(), intensity),
	)
}

func scaleChannel(ch uint8, intensity float64) uint8 {
	v := float64(ch) * intensity
	switch {
	case v <= 0 || v != v: // NaN
		return 0
	case v >= 255:
		return 255
	}
	return uint8(v)
}
