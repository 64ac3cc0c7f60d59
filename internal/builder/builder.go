// Package builder instantiates a source dataset into a geometry sink,
// welding vertices that land on the same transformed position.
package builder

import (
	"errors"
	"fmt"

	"github.com/Faultbox/testmodel/pkg/dataset"
	"github.com/Faultbox/testmodel/pkg/geo"
	"github.com/Faultbox/testmodel/pkg/math"
)

// ErrCancelled is returned when the interrupter requested a stop. The sink
// keeps whatever was built before the request was observed.
var ErrCancelled = errors.New("build cancelled")

// NormalAttribute is the point attribute normals are written to.
const NormalAttribute = "N"

// PrimitiveMode selects what is emitted for each triangle.
type PrimitiveMode int

const (
	Polygon PrimitiveMode = iota // Closed 3-vertex polygons over welded points
	Points                       // Welded points only
)

// String returns the menu token of the mode.
func (m PrimitiveMode) String() string {
	switch m {
	case Polygon:
		return "poly"
	case Points:
		return "points"
	default:
		return fmt.Sprintf("Unknown(%d)", int(m))
	}
}

// ParsePrimitiveMode resolves "poly"/"polygon" or "points".
func ParsePrimitiveMode(s string) (PrimitiveMode, error) {
	switch s {
	case "poly", "polygon", "Polygon":
		return Polygon, nil
	case "points", "Points":
		return Points, nil
	}
	return 0, fmt.Errorf("unknown primitive mode %q", s)
}

// Settings is the transform snapshot applied to every source vertex.
type Settings struct {
	Center  math.Vec3
	Scale   float32
	SwapYZ  bool // Emit (x, z, y)
	Mode    PrimitiveMode
	Normals bool // Copy dataset normals when it has them
}

// Transform maps a raw dataset position into output space.
func (s Settings) Transform(p math.Vec3) math.Vec3 {
	p = p.Sub(s.Center).Scale(s.Scale)
	if s.SwapYZ {
		p = p.SwapYZ()
	}
	return p
}

// Stats summarizes a build.
type Stats struct {
	Triangles int // Triangles processed
	Points    int // Points appended
	Faces     int // Polygons committed
	Welded    int // Corners that reused an existing point
	Normals   bool
}

// Build writes ds into sink using s. The sink is expected to be empty.
//
// Each triangle corner is transformed and looked up by exact position; the
// first corner to reach a position creates the point and, when normals are
// active, provides its normal. intr is polled before every triangle and may
// be nil.
func Build(ds *dataset.Dataset, s Settings, sink geo.Sink, intr Interrupter) (Stats, error) {
	var stats Stats

	if aborted(intr) {
		return stats, ErrCancelled
	}

	var normals geo.AttributeHandle
	if s.Normals && ds.NormalCount() > 0 {
		normals = sink.PointVectorAttribute(NormalAttribute, 3)
	}
	stats.Normals = normals.IsValid()

	weld := make(map[math.Vec3]geo.PointOffset, ds.VertexCount())

	for t := 0; t < ds.TriangleCount(); t++ {
		if aborted(intr) {
			return stats, ErrCancelled
		}

		var face geo.FaceBuilder
		if s.Mode == Polygon {
			face = sink.BeginFace()
		}

		for slot := 0; slot < 3; slot++ {
			idx := ds.Indices[3*t+slot]
			pos := s.Transform(ds.Position(idx))

			off, ok := weld[pos]
			if ok {
				stats.Welded++
			} else {
				off = sink.AppendPoint(pos)
				weld[pos] = off
				stats.Points++
				if stats.Normals {
					sink.SetPointVector(normals, off, ds.Normal(idx))
				}
			}

			if face != nil {
				face.AppendVertex(off)
			}
		}

		if face != nil {
			face.Close()
			stats.Faces++
		}
		stats.Triangles++
	}

	return stats, nil
}
