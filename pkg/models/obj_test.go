package models

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taigrr/rtgx/pkg/math3d"
)

const quadOBJ = `# a unit quad
o quad
v 0 0 0
v 1 0 0
v 1 1 0
v 0 1 0
vt 0 0
vn 0 0 1
f 1/1/1 2/1/1 3/1/1 4/1/1
`

func TestParseOBJQuad(t *testing.T) {
	mesh, err := ParseOBJ(strings.NewReader(quadOBJ), "quad.obj")
	require.NoError(t, err)

	assert.Equal(t, 4, mesh.VertexCount())
	require.Equal(t, 2, mesh.TriangleCount())
	assert.Equal(t, [3]int{0, 1, 2}, mesh.GetFace(0))
	assert.Equal(t, [3]int{0, 2, 3}, mesh.GetFace(1))
	assert.Equal(t, math3d.V3(1, 1, 0), mesh.BoundsMax)
	assert.Equal(t, math3d.V3(0, 0, 0), mesh.BoundsMin)
}

func TestParseOBJFaceBeforeVertices(t *testing.T) {
	src := "f 1 2 3\nv 0 0 0\nv 1 0 0\nv 0 1 0\n"
	mesh, err := ParseOBJ(strings.NewReader(src), "late.obj")
	require.NoError(t, err)
	assert.Equal(t, 1, mesh.TriangleCount())
}

func TestParseOBJErrors(t *testing.T) {
	tests := []struct {
		name   string
		src    string
		line   int
		target error
	}{
		{"short vertex", "v 1 2\n", 1, ErrShortLine},
		{"short face", "v 0 0 0\nv 1 0 0\nf 1 2\n", 3, ErrShortLine},
		{"zero index", "v 0 0 0\nv 1 0 0\nv 0 1 0\nf 0 1 2\n", 4, ErrIndexRange},
		{"index past end", "v 0 0 0\nv 1 0 0\nv 0 1 0\n\nf 1 2 4\n", 5, ErrIndexRange},
		{"bad float", "v 0 x 0\n", 1, nil},
		{"bad index", "v 0 0 0\nf a 1 1\n", 2, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mesh, err := ParseOBJ(strings.NewReader(tt.src), "bad.obj")
			require.Error(t, err)
			assert.Nil(t, mesh)

			var le *LoadError
			require.ErrorAs(t, err, &le)
			assert.Equal(t, tt.line, le.Line)
			assert.Equal(t, "bad.obj", le.Path)
			if tt.target != nil {
				assert.ErrorIs(t, err, tt.target)
			}
		})
	}
}

func TestLoadOBJFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tri.obj")
	require.NoError(t, os.WriteFile(path, []byte("v 0 0 0\nv 1 0 0\nv 0 1 0\nf 1 2 3\n"), 0o644))

	mesh, err := LoadOBJ(path)
	require.NoError(t, err)
	assert.Equal(t, "tri.obj", mesh.Name)
	assert.Equal(t, 1, mesh.TriangleCount())
}

func TestLoadOBJMissing(t *testing.T) {
	_, err := LoadOBJ(filepath.Join(t.TempDir(), "missing.obj"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadDispatch(t *testing.T) {
	_, err := Load("model.stl")
	assert.ErrorIs(t, err, ErrUnsupportedFormat)

	var le *LoadError
	assert.True(t, errors.As(err, &le))

	dir := t.TempDir()
	path := filepath.Join(dir, "UPPER.OBJ")
	require.NoError(t, os.WriteFile(path, []byte("v 0 0 0\nv 1 0 0\nv 0 1 0\nf 1 2 3\n"), 0o644))
	mesh, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 3, mesh.VertexCount())
}
