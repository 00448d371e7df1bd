package render

import "testing"

func TestRandomPaletteDeterministic(t *testing.T) {
	a := RandomPalette(42, 16)
	b := RandomPalette(42, 16)
	c := RandomPalette(43, 16)

	if len(a) != 16 {
		t.Fatalf("len = %d, want 16", len(a))
	}
	same := true
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("entry %d differs for equal seeds", i)
		}
		if a[i] != c[i] {
			same = false
		}
	}
	if same {
		t.Error("different seeds gave identical palettes")
	}
}

func TestPaletteAt(t *testing.T) {
	var empty Palette
	if got := empty.At(5, ColorYellow); got != ColorYellow {
		t.Errorf("empty palette = %v, want fallback", got.Hex())
	}

	p := Palette{ColorRed, ColorGreen}
	if p.At(0, ColorWhite) != ColorRed || p.At(3, ColorWhite) != ColorGreen {
		t.Error("palette does not cycle")
	}
}

func TestGradientEndpoints(t *testing.T) {
	g := Gradient(ColorBlack, ColorWhite, 5)
	if len(g) != 5 {
		t.Fatalf("len = %d", len(g))
	}
	near := func(a, b Color) bool {
		d := func(x, y uint8) int { return max(int(x)-int(y), int(y)-int(x)) }
		return d(a.R(), b.R()) <= 1 && d(a.G(), b.G()) <= 1 && d(a.B(), b.B()) <= 1
	}
	if !near(g[0], ColorBlack) || !near(g[4], ColorWhite) {
		t.Errorf("endpoints = %v, %v", g[0].Hex(), g[4].Hex())
	}
	for i := 1; i < len(g); i++ {
		if g[i].R() < g[i-1].R() {
			t.Errorf("gradient not increasing at %d", i)
		}
	}
}
