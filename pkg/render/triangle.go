package render

import (
	"math"

	"github.com/taigrr/rtgx/pkg/math3d"
)

// degenerate is returned by Barycentric for triangles with (nearly) zero
// area. Its negative first weight rejects every pixel.
var degenerate = math3d.Vec3{X: -1, Y: 1, Z: 1}

// Barycentric returns the weights of p with respect to the triangle pts,
// using only X and Y. Weights sum to 1 and are all non-negative iff p is
// inside the triangle or on its edge.
func Barycentric(pts [3]math3d.Vec3, p math3d.Vec3) math3d.Vec3 {
	u := math3d.Vec3{
		X: pts[2].X - pts[0].X,
		Y: pts[1].X - pts[0].X,
		Z: pts[0].X - p.X,
	}.Cross(math3d.Vec3{
		X: pts[2].Y - pts[0].Y,
		Y: pts[1].Y - pts[0].Y,
		Z: pts[0].Y - p.Y,
	})

	// uz is twice the signed area; below one pixel the triangle is skipped.
	if math.Abs(u.Z) < 1 {
		return degenerate
	}
	return math3d.Vec3{
		X: 1 - (u.X+u.Y)/u.Z,
		Y: u.Y / u.Z,
		Z: u.X / u.Z,
	}
}

// FillTriangle rasterizes a triangle given in canvas space (see Project)
// with a single color and returns the number of pixels written.
//
// The bounding box is clamped to the canvas, so fills never clip. Pixels
// on an edge shared by two triangles are written by both.
func (cv *Canvas) FillTriangle(pts [3]math3d.Vec3, c Color) int {
	if cv.Width <= 0 || cv.Height <= 0 {
		return 0
	}
	h := float64(cv.Height)

	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range pts {
		if !finite(p.X) || !finite(p.Y) {
			return 0
		}
		y := h - p.Y
		minX = math.Min(minX, p.X)
		maxX = math.Max(maxX, p.X)
		minY = math.Min(minY, y)
		maxY = math.Max(maxY, y)
	}

	right, bottom := float64(cv.Width-1), float64(cv.Height-1)
	if maxX < 0 || maxY < 0 || minX > right || minY > bottom {
		return 0
	}
	// Clamp in float space; converting first overflows for far-off vertices.
	x0 := int(math.Max(0, minX))
	x1 := int(math.Min(right, maxX))
	y0 := int(math.Max(0, minY))
	y1 := int(math.Min(bottom, maxY))

	written := 0
	for py := y0; py <= y1; py++ {
		for px := x0; px <= x1; px++ {
			bc := Barycentric(pts, math3d.Vec3{X: float64(px), Y: h - float64(py)})
			if bc.X < 0 || bc.Y < 0 || bc.Z < 0 {
				continue
			}
			idx := py*cv.Width + px
			if idx >= len(cv.Pix) {
				continue
			}
			cv.Pix[idx] = uint32(c)
			written++
		}
	}
	return written
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
