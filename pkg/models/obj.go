package models

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/taigrr/rtgx/pkg/math3d"
)

// maxOBJLine bounds a single OBJ line; large exports can put long face lists on one line.
const maxOBJLine = 1 << 20

// LoadOBJ loads the vertex and face data of a Wavefront OBJ file.
// Any error is returned as a *LoadError and no mesh is produced.
func LoadOBJ(path string) (*Mesh, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	defer f.Close()

	mesh, err := ParseOBJ(f, path)
	if err != nil {
		return nil, err
	}
	mesh.Name = filepath.Base(path)
	return mesh, nil
}

// ParseOBJ reads OBJ data from r. Only "v" and "f" lines are used; every
// other line is skipped. name identifies the stream in errors.
//
// Face references are 1-based in the file and stored 0-based. Only the
// vertex part of a "v/vt/vn" reference is used. Polygons with more than
// three vertices are split into a triangle fan.
func ParseOBJ(r io.Reader, name string) (*Mesh, error) {
	mesh := NewMesh(name)
	var faceLines []int // source line of each face, for range errors

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxOBJLine)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "v":
			v, err := parseVertex(fields[1:])
			if err != nil {
				return nil, &LoadError{Path: name, Line: lineNo, Err: err}
			}
			mesh.Vertices = append(mesh.Vertices, v)
		case "f":
			idx, err := parseFace(fields[1:])
			if err != nil {
				return nil, &LoadError{Path: name, Line: lineNo, Err: err}
			}
			for i := 1; i+1 < len(idx); i++ {
				mesh.Faces = append(mesh.Faces, Face{V: [3]int{idx[0], idx[i], idx[i+1]}})
				faceLines = append(faceLines, lineNo)
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, &LoadError{Path: name, Line: lineNo + 1, Err: err}
	}

	// Faces may legally precede the vertices they use, so ranges are
	// checked once the whole file is read.
	for i, f := range mesh.Faces {
		for _, idx := range f.V {
			if idx >= len(mesh.Vertices) {
				return nil, &LoadError{
					Path: name,
					Line: faceLines[i],
					Err:  fmt.Errorf("index %d of %d vertices: %w", idx+1, len(mesh.Vertices), ErrIndexRange),
				}
			}
		}
	}

	mesh.CalculateBounds()
	return mesh, nil
}

func parseVertex(tokens []string) (math3d.Vec3, error) {
	if len(tokens) < 3 {
		return math3d.Vec3{}, fmt.Errorf("vertex has %d coordinates: %w", len(tokens), ErrShortLine)
	}
	var xyz [3]float64
	for i := range 3 {
		f, err := strconv.ParseFloat(tokens[i], 64)
		if err != nil {
			return math3d.Vec3{}, fmt.Errorf("vertex coordinate: %w", err)
		}
		xyz[i] = f
	}
	return math3d.V3(xyz[0], xyz[1], xyz[2]), nil
}

func parseFace(tokens []string) ([]int, error) {
	if len(tokens) < 3 {
		return nil, fmt.Errorf("face has %d vertices: %w", len(tokens), ErrShortLine)
	}
	idx := make([]int, len(tokens))
	for i, tok := range tokens {
		ref, _, _ := strings.Cut(tok, "/")
		n, err := strconv.Atoi(ref)
		if err != nil {
			return nil, fmt.Errorf("face index: %w", err)
		}
		if n < 1 {
			return nil, fmt.Errorf("face index %d: %w", n, ErrIndexRange)
		}
		idx[i] = n - 1
	}
	return idx, nil
}
