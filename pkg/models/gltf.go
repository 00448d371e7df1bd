package models

import (
	"fmt"
	"path/filepath"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
	"github.com/taigrr/rtgx/pkg/math3d"
)

// GLTFLoader loads GLTF/GLB files into Mesh format.
// Only positions and triangle indices are read.
type GLTFLoader struct {
	// SkipNonTriangles drops line and point primitives instead of failing.
	SkipNonTriangles bool
}

// NewGLTFLoader creates a new GLTF loader with default options.
func NewGLTFLoader() *GLTFLoader {
	return &GLTFLoader{
		SkipNonTriangles: true,
	}
}

// LoadGLB loads a binary GLTF (.glb) file.
func LoadGLB(path string) (*Mesh, error) {
	loader := NewGLTFLoader()
	return loader.Load(path)
}

// Load loads a GLTF or GLB file and returns a Mesh.
// Any error is returned as a *LoadError.
func (l *GLTFLoader) Load(path string) (*Mesh, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: fmt.Errorf("open gltf: %w", err)}
	}

	mesh, err := l.Decode(doc, filepath.Base(path))
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	return mesh, nil
}

// Decode converts every mesh in doc into a single Mesh.
func (l *GLTFLoader) Decode(doc *gltf.Document, name string) (*Mesh, error) {
	mesh := NewMesh(name)

	for _, m := range doc.Meshes {
		if err := l.processMesh(doc, m, mesh); err != nil {
			return nil, fmt.Errorf("process mesh %q: %w", m.Name, err)
		}
	}

	if err := mesh.Validate(); err != nil {
		return nil, err
	}

	mesh.CalculateBounds()
	return mesh, nil
}

// processMesh appends the triangle primitives of m to mesh.
// glTF and OBJ share counter-clockwise front faces, so winding is kept.
func (l *GLTFLoader) processMesh(doc *gltf.Document, m *gltf.Mesh, mesh *Mesh) error {
	for _, prim := range m.Primitives {
		if prim.Mode != gltf.PrimitiveTriangles && prim.Mode != 0 {
			if l.SkipNonTriangles {
				continue
			}
			return fmt.Errorf("primitive mode %v: %w", prim.Mode, ErrUnsupportedFormat)
		}

		posIdx, ok := prim.Attributes[gltf.POSITION]
		if !ok {
			continue
		}
		if posIdx < 0 || posIdx >= len(doc.Accessors) {
			return fmt.Errorf("position accessor %d: %w", posIdx, ErrIndexRange)
		}

		positions, err := modeler.ReadPosition(doc, doc.Accessors[posIdx], nil)
		if err != nil {
			return fmt.Errorf("read positions: %w", err)
		}

		baseVertex := len(mesh.Vertices)
		for _, p := range positions {
			mesh.Vertices = append(mesh.Vertices, math3d.V3(float64(p[0]), float64(p[1]), float64(p[2])))
		}

		if prim.Indices != nil {
			if *prim.Indices < 0 || *prim.Indices >= len(doc.Accessors) {
				return fmt.Errorf("index accessor %d: %w", *prim.Indices, ErrIndexRange)
			}
			indices, err := modeler.ReadIndices(doc, doc.Accessors[*prim.Indices], nil)
			if err != nil {
				return fmt.Errorf("read indices: %w", err)
			}
			for i := 0; i+2 < len(indices); i += 3 {
				mesh.Faces = append(mesh.Faces, Face{
					V: [3]int{
						baseVertex + int(indices[i]),
						baseVertex + int(indices[i+1]),
						baseVertex + int(indices[i+2]),
					},
				})
			}
		} else {
			// No indices, assume sequential triangles
			for i := 0; i+2 < len(positions); i += 3 {
				mesh.Faces = append(mesh.Faces, Face{
					V: [3]int{baseVertex + i, baseVertex + i + 1, baseVertex + i + 2},
				})
			}
		}
	}

	return nil
}
