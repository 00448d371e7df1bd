package render

import (
	"github.com/taigrr/rtgx/pkg/math3d"
)

// mockMesh implements MeshRenderer for testing.
type mockMesh struct {
	vertices []math3d.Vec3
	faces    [][3]int
}

func (m *mockMesh) VertexCount() int           { return len(m.vertices) }
func (m *mockMesh) TriangleCount() int         { return len(m.faces) }
func (m *mockMesh) GetFace(i int) [3]int       { return m.faces[i] }
func (m *mockMesh) GetVertex(i int) math3d.Vec3 { return m.vertices[i] }

// countColor returns how many pixels of cv equal c.
func countColor(cv *Canvas, c Color) int {
	n := 0
	for _, p := range cv.Pix {
		if Color(p) == c {
			n++
		}
	}
	return n
}

// screenTri builds a canvas-space triangle from 2D points.
func screenTri(x0, y0, x1, y1, x2, y2 float64) [3]math3d.Vec3 {
	return [3]math3d.Vec3{
		{X: x0, Y: y0},
		{X: x1, Y: y1},
		{X: x2, Y: y2},
	}
}

// gridMesh returns a flat, front-facing n x n grid of quads covering [-1, 1].
func gridMesh(n int) *mockMesh {
	m := &mockMesh{}
	step := 2.0 / float64(n)
	for j := 0; j <= n; j++ {
		for i := 0; i <= n; i++ {
			m.vertices = append(m.vertices, math3d.V3(-1+float64(i)*step, -1+float64(j)*step, 0))
		}
	}
	row := n + 1
	for j := range n {
		for i := range n {
			a := j*row + i
			b := a + 1
			c := a + row + 1
			d := a + row
			m.faces = append(m.faces, [3]int{a, b, c}, [3]int{a, c, d})
		}
	}
	return m
}
