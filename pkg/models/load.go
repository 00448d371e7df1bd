package models

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Load reads a mesh from path, choosing the loader by file extension:
// .obj uses LoadOBJ and .glb/.gltf use the glTF loader.
func Load(path string) (*Mesh, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".obj":
		return LoadOBJ(path)
	case ".glb", ".gltf":
		return LoadGLB(path)
	default:
		return nil, &LoadError{Path: path, Err: fmt.Errorf("%q: %w", ext, ErrUnsupportedFormat)}
	}
}
