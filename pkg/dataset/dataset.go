// Package dataset holds the compiled-in source meshes instantiated by the
// test model operator.
//
// Every table is package-level, read-only data. Callers receive pointers into
// the shared tables and must not modify them.
package dataset

import (
	"errors"
	"fmt"

	"github.com/Faultbox/testmodel/pkg/math"
)

// Dataset validation errors.
var (
	ErrIndexCount  = errors.New("index count is not a multiple of 3")
	ErrIndexRange  = errors.New("index out of vertex range")
	ErrNormalCount = errors.New("normal count does not match vertex count")
	ErrVertexData  = errors.New("vertex data length is not a multiple of 3")
)

// Dataset is an immutable triangle list with optional per-vertex normals.
type Dataset struct {
	Name  string // Menu token
	Label string // Display name

	Vertices []float32 // 3 floats per vertex
	Indices  []uint32  // 3 indices per triangle
	Normals  []float32 // Parallel to Vertices, nil when absent
}

// VertexCount returns the number of source vertices.
func (d *Dataset) VertexCount() int { return len(d.Vertices) / 3 }

// IndexCount returns the number of indices.
func (d *Dataset) IndexCount() int { return len(d.Indices) }

// NormalCount returns the number of normals, 0 when the dataset ships none.
func (d *Dataset) NormalCount() int { return len(d.Normals) / 3 }

// TriangleCount returns IndexCount / 3.
func (d *Dataset) TriangleCount() int { return len(d.Indices) / 3 }

// HasNormals reports whether the dataset carries per-vertex normals.
func (d *Dataset) HasNormals() bool { return len(d.Normals) > 0 }

// Position returns the raw position of source vertex i.
func (d *Dataset) Position(i uint32) math.Vec3 {
	return math.V3(d.Vertices[3*i : 3*i+3])
}

// Normal returns the normal of source vertex i. Only valid when HasNormals.
func (d *Dataset) Normal(i uint32) math.Vec3 {
	return math.V3(d.Normals[3*i : 3*i+3])
}

// Validate checks the table invariants and returns the first violation.
func (d *Dataset) Validate() error {
	if len(d.Vertices)%3 != 0 {
		return fmt.Errorf("%s: %w", d.Name, ErrVertexData)
	}
	if len(d.Indices)%3 != 0 {
		return fmt.Errorf("%s: %w: %d", d.Name, ErrIndexCount, len(d.Indices))
	}
	vc := uint32(d.VertexCount())
	for i, idx := range d.Indices {
		if idx >= vc {
			return fmt.Errorf("%s: %w: indices[%d]=%d, vertex count %d", d.Name, ErrIndexRange, i, idx, vc)
		}
	}
	if d.HasNormals() && len(d.Normals) != len(d.Vertices) {
		return fmt.Errorf("%s: %w: %d normals, %d vertices", d.Name, ErrNormalCount, d.NormalCount(), vc)
	}
	return nil
}

// Bounds returns the axis-aligned bounds of the raw vertex positions.
func (d *Dataset) Bounds() (lo, hi math.Vec3) {
	if d.VertexCount() == 0 {
		return math.Vec3{}, math.Vec3{}
	}
	lo = d.Position(0)
	hi = lo
	for i := 1; i < d.VertexCount(); i++ {
		p := d.Position(uint32(i))
		lo = lo.Min(p)
		hi = hi.Max(p)
	}
	return lo, hi
}
