package math3d

import (
	"testing"
)

func BenchmarkMat4Mul(b *testing.B) {
	m1 := Translate(V3(1, 2, 3))
	m2 := RotateY(0.5)

	for b.Loop() {
		_ = m1.Mul(m2)
	}
}

func BenchmarkMat4MulVec3(b *testing.B) {
	m := Translate(V3(1, 2, 3)).Mul(RotateY(0.5))
	v := V3(1, 2, 3)

	for b.Loop() {
		_ = m.MulVec3(v)
	}
}

func BenchmarkEuler(b *testing.B) {
	for b.Loop() {
		_ = Euler(0.3, 0.5, 0.1)
	}
}

func BenchmarkVec3Normalize(b *testing.B) {
	v := V3(1, 2, 3)

	for b.Loop() {
		_ = v.Normalize()
	}
}

func BenchmarkVec3Cross(b *testing.B) {
	v1 := V3(1, 2, 3)
	v2 := V3(4, 5, 6)

	for b.Loop() {
		_ = v1.Cross(v2)
	}
}

func BenchmarkVec3Dot(b *testing.B) {
	v1 := V3(1, 2, 3)
	v2 := V3(4, 5, 6)

	for b.Loop() {
		_ = v1.Dot(v2)
	}
}

// BenchmarkFaceNormal mirrors the per-face work of the shading pass.
func BenchmarkFaceNormal(b *testing.B) {
	p0 := V3(-0.5, -0.5, 0.1)
	p1 := V3(0.5, -0.4, 0.2)
	p2 := V3(0, 0.6, -0.1)

	for b.Loop() {
		_ = p2.Sub(p0).Cross(p1.Sub(p0)).Normalize()
	}
}
