package render

import (
	"math/rand"

	"github.com/lucasb-eyer/go-colorful"
)

// Palette assigns base colors to faces by index, cycling when there are
// more faces than entries. An empty palette means "use Renderer.Base".
type Palette []Color

// At returns the base color for face i.
func (p Palette) At(i int, fallback Color) Color {
	if len(p) == 0 {
		return fallback
	}
	return p[i%len(p)]
}

// RandomPalette returns n bright, saturated colors. The same seed always
// gives the same palette.
func RandomPalette(seed int64, n int) Palette {
	rng := rand.New(rand.NewSource(seed))
	p := make(Palette, n)
	for i := range p {
		c := colorful.Hsv(
			rng.Float64()*360,
			0.5+rng.Float64()*0.3,
			0.6+rng.Float64()*0.3,
		).Clamped()
		r, g, b := c.RGB255()
		p[i] = RGB(r, g, b)
	}
	return p
}

// Gradient returns n colors blended from a to b in CIE L*a*b* space.
func Gradient(a, b Color, n int) Palette {
	ca := colorful.Color{R: float64(a.R()) / 255, G: float64(a.G()) / 255, B: float64(a.B()) / 255}
	cb := colorful.Color{R: float64(b.R()) / 255, G: float64(b.G()) / 255, B: float64(b.B()) / 255}
	p := make(Palette, n)
	for i := range p {
		t := 0.0
		if n > 1 {
			t = float64(i) / float64(n-1)
		}
		r, g, bl := ca.BlendLab(cb, t).Clamped().RGB255()
		p[i] = RGB(r, g, bl)
	}
	return p
}
