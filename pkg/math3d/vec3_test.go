package math3d

import (
	"math"
	"testing"
)

const eps = 1e-9

func TestVec3Sub(t *testing.T) {
	got := V3(3, 5, 7).Sub(V3(1, 2, 3))
	if got != V3(2, 3, 4) {
		t.Errorf("Sub = %v, want (2, 3, 4)", got)
	}
}

func TestVec3Cross(t *testing.T) {
	tests := []struct {
		name string
		a, b Vec3
		want Vec3
	}{
		{"x cross y", V3(1, 0, 0), V3(0, 1, 0), V3(0, 0, 1)},
		{"y cross z", V3(0, 1, 0), V3(0, 0, 1), V3(1, 0, 0)},
		{"z cross x", V3(0, 0, 1), V3(1, 0, 0), V3(0, 1, 0)},
		{"parallel", V3(2, 4, 6), V3(1, 2, 3), V3(0, 0, 0)},
		{"general", V3(1, 2, 3), V3(4, 5, 6), V3(-3, 6, -3)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.a.Cross(tc.b)
			if !got.ApproxEqual(tc.want, eps) {
				t.Errorf("%v × %v = %v, want %v", tc.a, tc.b, got, tc.want)
			}
		})
	}
}

func TestVec3CrossAntiSymmetric(t *testing.T) {
	vecs := []Vec3{
		V3(1, 2, 3),
		V3(-4, 0.5, 9),
		V3(0, 0, 0),
		V3(1e3, -2e-3, 7),
		V3(0.1, 0.2, 0.3),
	}

	for _, a := range vecs {
		for _, b := range vecs {
			ab := a.Cross(b)
			ba := b.Cross(a)
			if !ab.ApproxEqual(ba.Negate(), 1e-9) {
				t.Errorf("cross(%v, %v) = %v, want -cross(b, a) = %v", a, b, ab, ba.Negate())
			}
		}
	}
}

func TestVec3Dot(t *testing.T) {
	tests := []struct {
		name string
		a, b Vec3
		want float64
	}{
		{"orthogonal", V3(1, 0, 0), V3(0, 1, 0), 0},
		{"parallel", V3(0, 0, -1), V3(0, 0, -1), 1},
		{"opposite", V3(0, 0, 1), Forward(), -1},
		{"general", V3(1, 2, 3), V3(4, 5, 6), 32},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Dot(tc.b); math.Abs(got-tc.want) > eps {
				t.Errorf("got %v, want %v", got, tc.want)
			}
		})
	}
}

func TestVec3Normalize(t *testing.T) {
	tests := []struct {
		name string
		v    Vec3
	}{
		{"axis", V3(0, 0, 5)},
		{"general", V3(1, 2, 3)},
		{"tiny", V3(1e-8, -2e-8, 3e-8)},
		{"large", V3(1e8, 1e8, -1e8)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			n := tc.v.Normalize()
			if math.Abs(n.Len()-1) > 1e-9 {
				t.Errorf("len(normalize(%v)) = %v, want 1", tc.v, n.Len())
			}
			if nn := n.Normalize(); !nn.ApproxEqual(n, 1e-12) {
				t.Errorf("normalize is not idempotent: %v then %v", n, nn)
			}
		})
	}
}

func TestVec3NormalizeZero(t *testing.T) {
	n := Zero3().Normalize()
	if n != Zero3() {
		t.Errorf("normalize(0) = %v, want zero vector", n)
	}
	if math.IsNaN(n.X) || math.IsNaN(n.Y) || math.IsNaN(n.Z) {
		t.Error("normalize(0) produced NaN")
	}
}

func TestVec3MinMax(t *testing.T) {
	a := V3(1, 5, -3)
	b := V3(2, -1, 0)

	if got := a.Min(b); got != V3(1, -1, -3) {
		t.Errorf("Min = %v", got)
	}
	if got := a.Max(b); got != V3(2, 5, 0) {
		t.Errorf("Max = %v", got)
	}
}

func TestVec3Immutable(t *testing.T) {
	a := V3(1, 2, 3)
	b := V3(4, 5, 6)

	_ = a.Sub(b)
	_ = a.Cross(b)
	_ = a.Normalize()
	_ = a.Scale(3)

	if a != V3(1, 2, 3) || b != V3(4, 5, 6) {
		t.Errorf("operands changed: a=%v b=%v", a, b)
	}
}
