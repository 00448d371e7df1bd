package render

import (
	"fmt"
	"strings"

	"github.com/taigrr/rtgx/pkg/math3d"
)

// FaceNormal returns the unit normal of the triangle p0 p1 p2 as
// normalize((p2-p0) x (p1-p0)). A degenerate triangle yields the zero vector.
func FaceNormal(p0, p1, p2 math3d.Vec3) math3d.Vec3 {
	return p2.Sub(p0).Cross(p1.Sub(p0)).Normalize()
}

// IsBackFace reports whether a face with normal n points away from a
// viewer looking down -Z.
func IsBackFace(n math3d.Vec3) bool {
	return n.Z > 0
}

// ShadingMode selects how faces facing away from the light are handled.
type ShadingMode int

const (
	// ShadeClamp draws every front face; non-positive intensity renders black.
	ShadeClamp ShadingMode = iota
	// ShadeCull drops faces whose intensity is not positive.
	ShadeCull
	// ShadeUnlit ignores the light and draws faces at full color.
	ShadeUnlit
)

var shadingNames = [...]string{
	ShadeClamp: "clamp",
	ShadeCull:  "cull",
	ShadeUnlit: "unlit",
}

func (m ShadingMode) String() string {
	if m < 0 || int(m) >= len(shadingNames) {
		return fmt.Sprintf("ShadingMode(%d)", int(m))
	}
	return shadingNames[m]
}

// ParseShadingMode parses "clamp", "cull" or "unlit".
func ParseShadingMode(s string) (ShadingMode, error) {
	for i, name := range shadingNames {
		if strings.EqualFold(s, name) {
			return ShadingMode(i), nil
		}
	}
	return 0, fmt.Errorf("unknown shading mode %q", s)
}

// Style selects how faces are drawn.
type Style int

const (
	// StyleFill fills each triangle.
	StyleFill Style = iota
	// StyleWireframe draws the three edges of each triangle.
	StyleWireframe
)

func (s Style) String() string {
	switch s {
	case StyleFill:
		return "fill"
	case StyleWireframe:
		return "wireframe"
	}
	return fmt.Sprintf("Style(%d)", int(s))
}

// ParseStyle parses "fill" or "wireframe" ("wire" is accepted too).
func ParseStyle(s string) (Style, error) {
	switch strings.ToLower(s) {
	case "fill":
		return StyleFill, nil
	case "wireframe", "wire":
		return StyleWireframe, nil
	}
	return 0, fmt.Errorf("unknown style %q", s)
}
