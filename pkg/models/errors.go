package models

import (
	"errors"
	"fmt"
)

var (
	// ErrShortLine is returned for a v or f line with too few tokens.
	ErrShortLine = errors.New("too few tokens")
	// ErrIndexRange is returned when a face references a vertex that does not exist.
	ErrIndexRange = errors.New("vertex index out of range")
	// ErrUnsupportedFormat is returned by Load for unknown file extensions.
	ErrUnsupportedFormat = errors.New("unsupported mesh format")
)

// LoadError reports a failure to load a mesh. Loading is all or nothing:
// whenever a LoadError is returned no mesh is returned with it.
type LoadError struct {
	Path string // file path or stream name
	Line int    // 1-based source line, 0 if the failure is not tied to a line
	Err  error
}

func (e *LoadError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("load %s:%d: %v", e.Path, e.Line, e.Err)
	}
	return fmt.Sprintf("load %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}
