package render

import (
	"github.com/taigrr/rtgx/pkg/math3d"
)

// MeshRenderer is the read-only view of a mesh the pipeline needs.
// It lets the renderer draw meshes without importing the models package.
type MeshRenderer interface {
	VertexCount() int
	TriangleCount() int
	GetVertex(i int) math3d.Vec3
	GetFace(i int) [3]int
}

// Stats counts what happened to faces during a pass.
type Stats struct {
	Faces   int // faces visited
	Culled  int // faces dropped by the back-face test
	Unlit   int // faces dropped by ShadeCull
	Drawn   int // faces rasterized
	Pixels  int // pixels written by triangle fills
	Clipped int // out-of-bounds line writes
}

// Add accumulates o into s.
func (s *Stats) Add(o Stats) {
	s.Faces += o.Faces
	s.Culled += o.Culled
	s.Unlit += o.Unlit
	s.Drawn += o.Drawn
	s.Pixels += o.Pixels
	s.Clipped += o.Clipped
}

// Renderer draws meshes into a single canvas with flat per-face shading.
// Faces are drawn in order without depth testing, so later faces overwrite
// earlier ones. A Renderer is not safe for concurrent use.
type Renderer struct {
	canvas *Canvas

	Light   math3d.Vec3 // direction light travels; normalized before use
	Mode    ShadingMode
	Style   Style
	Base    Color
	Palette Palette

	DisableBackfaceCulling bool // If true, render both sides of triangles

	Stats Stats
}

// NewRenderer creates a renderer for cv with a white base color and the
// light shining along -Z.
func NewRenderer(cv *Canvas) *Renderer {
	return &Renderer{
		canvas: cv,
		Light:  math3d.Forward(),
		Base:   ColorWhite,
	}
}

// Canvas returns the target canvas.
func (r *Renderer) Canvas() *Canvas {
	return r.canvas
}

// ResetStats clears the statistics (call once per frame).
func (r *Renderer) ResetStats() {
	r.Stats = Stats{}
}

// Render draws every face of mesh and returns the statistics of this pass.
// The canvas is not cleared first.
func (r *Renderer) Render(mesh MeshRenderer) Stats {
	r.ResetStats()
	clipped := r.canvas.Clipped

	for i := 0; i < mesh.TriangleCount(); i++ {
		face := mesh.GetFace(i)
		r.DrawFace(i,
			mesh.GetVertex(face[0]),
			mesh.GetVertex(face[1]),
			mesh.GetVertex(face[2]),
		)
	}

	r.Stats.Clipped = r.canvas.Clipped - clipped
	return r.Stats
}

// DrawFace runs one triangle through culling, shading, projection and
// rasterization. face selects the palette entry. Vertices are in
// normalized [-1, 1] space. It reports whether the face was drawn.
func (r *Renderer) DrawFace(face int, p0, p1, p2 math3d.Vec3) bool {
	r.Stats.Faces++

	normal := FaceNormal(p0, p1, p2)
	if !r.DisableBackfaceCulling && IsBackFace(normal) {
		r.Stats.Culled++
		return false
	}

	intensity := 1.0
	if r.Mode != ShadeUnlit {
		intensity = normal.Dot(r.Light.Normalize())
		if r.Mode == ShadeCull && intensity <= 0 {
			r.Stats.Unlit++
			return false
		}
	}
	color := Shade(r.Palette.At(face, r.Base), intensity)

	w, h := r.canvas.Width, r.canvas.Height
	pts := [3]math3d.Vec3{Project(p0, w, h), Project(p1, w, h), Project(p2, w, h)}

	switch r.Style {
	case StyleWireframe:
		r.canvas.DrawTriangleOutline(pts, color)
	default:
		r.Stats.Pixels += r.canvas.FillTriangle(pts, color)
	}
	r.Stats.Drawn++
	return true
}
