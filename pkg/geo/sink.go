// Package geo provides the point/polygon container that generated geometry
// is written into, along with the narrow Sink interface builders write through.
package geo

import "github.com/Faultbox/testmodel/pkg/math"

// PointOffset identifies a point within a detail. Offsets are assigned in
// append order starting at 0.
type PointOffset int

// AttributeHandle refers to a point attribute declared on a detail.
// The zero value is invalid.
type AttributeHandle struct {
	attr *PointAttribute
}

// IsValid reports whether the handle is bound to an attribute.
func (h AttributeHandle) IsValid() bool {
	return h.attr != nil
}

// Name returns the bound attribute name, or "" for an invalid handle.
func (h AttributeHandle) Name() string {
	if h.attr == nil {
		return ""
	}
	return h.attr.Name
}

// Sink is the write surface of a mesh container.
type Sink interface {
	// ClearAll removes every point, attribute and primitive.
	ClearAll()
	// PointVectorAttribute finds the named point attribute with the given
	// number of components, creating it when missing or declared with a
	// different arity.
	PointVectorAttribute(name string, components int) AttributeHandle
	// AppendPoint adds a point at pos and returns its offset.
	AppendPoint(pos math.Vec3) PointOffset
	// SetPointVector stores v on the point for the attribute behind h.
	SetPointVector(h AttributeHandle, off PointOffset, v math.Vec3)
	// BeginFace starts a new polygon with no vertices.
	BeginFace() FaceBuilder
}

// FaceBuilder accumulates the vertices of one polygon.
type FaceBuilder interface {
	AppendVertex(off PointOffset)
	// Close marks the polygon closed and commits it to the sink.
	Close()
}
