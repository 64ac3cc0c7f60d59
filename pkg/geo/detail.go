package geo

import (
	"fmt"

	"github.com/Faultbox/testmodel/pkg/math"
)

// PointAttribute is a per-point float tuple attribute.
type PointAttribute struct {
	Name       string
	Components int
	Values     []float32 // Components floats per point
}

// Vector returns the first three components stored for off.
func (a *PointAttribute) Vector(off PointOffset) math.Vec3 {
	var v [3]float32
	copy(v[:], a.Values[int(off)*a.Components:int(off+1)*a.Components])
	return math.Vec3{X: v[0], Y: v[1], Z: v[2]}
}

// Polygon is a committed primitive.
type Polygon struct {
	Vertices []PointOffset
	Closed   bool
}

// Detail is an in-memory geometry container: points with positions, named
// point attributes and polygon primitives.
type Detail struct {
	positions []math.Vec3
	attrs     map[string]*PointAttribute
	attrOrder []string
	polygons  []Polygon
}

var _ Sink = (*Detail)(nil)

// NewDetail creates an empty detail.
func NewDetail() *Detail {
	return &Detail{attrs: make(map[string]*PointAttribute)}
}

// ClearAll removes every point, attribute and primitive.
func (d *Detail) ClearAll() {
	d.positions = nil
	d.attrs = make(map[string]*PointAttribute)
	d.attrOrder = nil
	d.polygons = nil
}

// FindPointAttribute returns the named attribute if it exists with the given
// arity.
func (d *Detail) FindPointAttribute(name string, components int) (AttributeHandle, bool) {
	a, ok := d.attrs[name]
	if !ok || a.Components != components {
		return AttributeHandle{}, false
	}
	return AttributeHandle{attr: a}, true
}

// PointVectorAttribute finds or creates a float tuple point attribute.
// An existing attribute with a different arity is replaced.
func (d *Detail) PointVectorAttribute(name string, components int) AttributeHandle {
	if h, ok := d.FindPointAttribute(name, components); ok {
		return h
	}
	if components <= 0 {
		return AttributeHandle{}
	}
	if d.attrs == nil {
		d.attrs = make(map[string]*PointAttribute)
	}
	if _, exists := d.attrs[name]; !exists {
		d.attrOrder = append(d.attrOrder, name)
	}
	a := &PointAttribute{
		Name:       name,
		Components: components,
		Values:     make([]float32, len(d.positions)*components),
	}
	d.attrs[name] = a
	return AttributeHandle{attr: a}
}

// AppendPoint adds a point and zero-fills its attribute values.
func (d *Detail) AppendPoint(pos math.Vec3) PointOffset {
	off := PointOffset(len(d.positions))
	d.positions = append(d.positions, pos)
	for _, name := range d.attrOrder {
		a := d.attrs[name]
		a.Values = append(a.Values, make([]float32, a.Components)...)
	}
	return off
}

// SetPointVector writes up to three components of v for off.
func (d *Detail) SetPointVector(h AttributeHandle, off PointOffset, v math.Vec3) {
	if !h.IsValid() || int(off) < 0 || int(off) >= len(d.positions) {
		return
	}
	a := h.attr
	vals := v.Array()
	base := int(off) * a.Components
	for c := 0; c < a.Components && c < 3; c++ {
		a.Values[base+c] = vals[c]
	}
}

// BeginFace starts a polygon that is committed on Close.
func (d *Detail) BeginFace() FaceBuilder {
	return &polyBuilder{detail: d}
}

type polyBuilder struct {
	detail *Detail
	verts  []PointOffset
	done   bool
}

func (p *polyBuilder) AppendVertex(off PointOffset) {
	p.verts = append(p.verts, off)
}

func (p *polyBuilder) Close() {
	if p.done {
		return
	}
	p.done = true
	p.detail.polygons = append(p.detail.polygons, Polygon{Vertices: p.verts, Closed: true})
}

// NumPoints returns the number of points.
func (d *Detail) NumPoints() int { return len(d.positions) }

// NumPrimitives returns the number of committed polygons.
func (d *Detail) NumPrimitives() int { return len(d.polygons) }

// Position returns the position of the point at off.
func (d *Detail) Position(off PointOffset) math.Vec3 { return d.positions[off] }

// Positions returns the point positions in offset order. The slice is shared.
func (d *Detail) Positions() []math.Vec3 { return d.positions }

// Polygons returns the committed polygons. The slice is shared.
func (d *Detail) Polygons() []Polygon { return d.polygons }

// Attribute returns the named point attribute, or nil.
func (d *Detail) Attribute(name string) *PointAttribute { return d.attrs[name] }

// AttributeNames returns point attribute names in declaration order.
func (d *Detail) AttributeNames() []string { return d.attrOrder }

// Bounds returns the axis-aligned bounds of all points.
func (d *Detail) Bounds() (lo, hi math.Vec3) {
	if len(d.positions) == 0 {
		return math.Vec3{}, math.Vec3{}
	}
	lo, hi = d.positions[0], d.positions[0]
	for _, p := range d.positions[1:] {
		lo = lo.Min(p)
		hi = hi.Max(p)
	}
	return lo, hi
}

// String summarizes the detail.
func (d *Detail) String() string {
	return fmt.Sprintf("Detail{points: %d, primitives: %d, attributes: %v}", len(d.positions), len(d.polygons), d.attrOrder)
}
