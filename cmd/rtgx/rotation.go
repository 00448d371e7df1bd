package main

import (
	"github.com/charmbracelet/harmonica"

	"github.com/taigrr/rtgx/pkg/math3d"
	"github.com/taigrr/rtgx/pkg/models"
)

// RotationAxis tracks position and velocity for one rotation axis with spring decay
type RotationAxis struct {
	Position  float64
	Velocity  float64
	velSpring harmonica.Spring
	velAccel  float64 // internal spring velocity (for animating Velocity toward 0)
}

// NewRotationAxis creates an axis whose velocity springs back to zero.
func NewRotationAxis(fps int) RotationAxis {
	return RotationAxis{
		// Frequency 4.0 = moderate speed, damping 1.0 = critically damped (no overshoot)
		velSpring: harmonica.NewSpring(harmonica.FPS(fps), 4.0, 1.0),
	}
}

// Update applies velocity to position and decays velocity toward 0.
func (a *RotationAxis) Update() {
	a.Position += a.Velocity
	a.Velocity, a.velAccel = a.velSpring.Update(a.Velocity, a.velAccel, 0)
}

// RotationState holds pitch and yaw of the model being viewed.
type RotationState struct {
	Pitch, Yaw RotationAxis
	fps        int
}

func NewRotationState(fps int) *RotationState {
	return &RotationState{
		Pitch: NewRotationAxis(fps),
		Yaw:   NewRotationAxis(fps),
		fps:   fps,
	}
}

func (r *RotationState) Update() {
	r.Pitch.Update()
	r.Yaw.Update()
}

func (r *RotationState) ApplyImpulse(pitch, yaw float64) {
	r.Pitch.Velocity += pitch
	r.Yaw.Velocity += yaw
}

func (r *RotationState) Reset() {
	r.Pitch = NewRotationAxis(r.fps)
	r.Yaw = NewRotationAxis(r.fps)
}

// Matrix returns the model rotation.
func (r *RotationState) Matrix() math3d.Mat4 {
	return math3d.Euler(r.Pitch.Position, r.Yaw.Position, 0)
}

// poser redraws a mesh under the current rotation without touching the
// source mesh.
type poser struct {
	src  *models.Mesh
	view *models.Mesh
}

func newPoser(src *models.Mesh) *poser {
	return &poser{src: src, view: src.Clone()}
}

// Pose returns src rotated by m. The result is reused between calls.
func (p *poser) Pose(m math3d.Mat4) *models.Mesh {
	copy(p.view.Vertices, p.src.Vertices)
	p.view.Transform(m)
	return p.view
}
