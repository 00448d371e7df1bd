package render

import "github.com/taigrr/rtgx/pkg/math3d"

// Project maps a point from normalized [-1, 1] space to canvas space.
// Z is passed through unchanged. Nothing is clamped; points outside
// [-1, 1] land outside the canvas.
func Project(p math3d.Vec3, width, height int) math3d.Vec3 {
	return math3d.Vec3{
		X: (p.X + 1) * float64(width) / 2,
		Y: (p.Y + 1) * float64(height) / 2,
		Z: p.Z,
	}
}

// Unproject is the inverse of Project.
func Unproject(s math3d.Vec3, width, height int) math3d.Vec3 {
	return math3d.Vec3{
		X: s.X*2/float64(width) - 1,
		Y: s.Y*2/float64(height) - 1,
		Z: s.Z,
	}
}
