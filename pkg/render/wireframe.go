package render

import (
	"github.com/taigrr/rtgx/pkg/math3d"
)

// DrawTriangleOutline draws the three edges of a canvas-space triangle.
// Coordinates are truncated to integers.
func (cv *Canvas) DrawTriangleOutline(pts [3]math3d.Vec3, c Color) {
	for i := range 3 {
		a, b := pts[i], pts[(i+1)%3]
		cv.DrawLine(int(a.X), int(a.Y), int(b.X), int(b.Y), c)
	}
}

// DrawLine3D projects both endpoints of a segment in normalized space and
// draws it. Depth is ignored.
func (cv *Canvas) DrawLine3D(p1, p2 math3d.Vec3, c Color) {
	a := Project(p1, cv.Width, cv.Height)
	b := Project(p2, cv.Width, cv.Height)
	cv.DrawLine(int(a.X), int(a.Y), int(b.X), int(b.Y), c)
}

// DrawBox draws the edges of an axis-aligned box, e.g. a mesh's bounds.
func (cv *Canvas) DrawBox(lo, hi math3d.Vec3, c Color) {
	vertices := [8]math3d.Vec3{
		{X: lo.X, Y: lo.Y, Z: lo.Z}, // 0: bottom-left-back
		{X: hi.X, Y: lo.Y, Z: lo.Z}, // 1: bottom-right-back
		{X: hi.X, Y: hi.Y, Z: lo.Z}, // 2: top-right-back
		{X: lo.X, Y: hi.Y, Z: lo.Z}, // 3: top-left-back
		{X: lo.X, Y: lo.Y, Z: hi.Z}, // 4: bottom-left-front
		{X: hi.X, Y: lo.Y, Z: hi.Z}, // 5: bottom-right-front
		{X: hi.X, Y: hi.Y, Z: hi.Z}, // 6: top-right-front
		{X: lo.X, Y: hi.Y, Z: hi.Z}, // 7: top-left-front
	}

	edges := [12][2]int{
		// Back face
		{0, 1}, {1, 2}, {2, 3}, {3, 0},
		// Front face
		{4, 5}, {5, 6}, {6, 7}, {7, 4},
		// Connecting edges
		{0, 4}, {1, 5}, {2, 6}, {3, 7},
	}

	for _, edge := range edges {
		cv.DrawLine3D(vertices[edge[0]], vertices[edge[1]], c)
	}
}

// DrawAxes draws the X, Y and Z axes from the origin in red, green and blue.
func (cv *Canvas) DrawAxes(length float64) {
	origin := math3d.Zero3()
	cv.DrawLine3D(origin, math3d.V3(length, 0, 0), ColorRed)
	cv.DrawLine3D(origin, math3d.V3(0, length, 0), ColorGreen)
	cv.DrawLine3D(origin, math3d.V3(0, 0, length), ColorBlue)
}
