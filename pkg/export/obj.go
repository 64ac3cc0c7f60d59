package export

import (
	"bufio"
	"io"
	"strconv"

	"github.com/Faultbox/testmodel/pkg/geo"
	"github.com/Faultbox/testmodel/pkg/math"
)

// WriteOBJ writes d as Wavefront OBJ. Points carry "vn" entries when the
// detail has an N attribute. Polygons become "f" elements; a detail with no
// polygons is written as a single "p" element over all points.
func WriteOBJ(w io.Writer, name string, d *geo.Detail) error {
	bw := bufio.NewWriter(w)

	bw.WriteString("# testmodel\n")
	if name != "" {
		bw.WriteString("o " + name + "\n")
	}

	for _, p := range d.Positions() {
		writeVec(bw, "v", p)
	}

	normals := d.Attribute("N")
	if normals != nil && normals.Components != 3 {
		normals = nil
	}
	if normals != nil {
		for i := 0; i < d.NumPoints(); i++ {
			writeVec(bw, "vn", normals.Vector(geo.PointOffset(i)))
		}
	}

	if d.NumPrimitives() == 0 {
		if d.NumPoints() > 0 {
			bw.WriteString("p")
			for i := 0; i < d.NumPoints(); i++ {
				bw.WriteString(" " + strconv.Itoa(i+1))
			}
			bw.WriteByte('\n')
		}
		return bw.Flush()
	}

	for _, poly := range d.Polygons() {
		bw.WriteString("f")
		for _, off := range poly.Vertices {
			idx := strconv.Itoa(int(off) + 1)
			if normals != nil {
				bw.WriteString(" " + idx + "//" + idx)
			} else {
				bw.WriteString(" " + idx)
			}
		}
		bw.WriteByte('\n')
	}

	return bw.Flush()
}

func writeVec(bw *bufio.Writer, tag string, v math.Vec3) {
	bw.WriteString(tag)
	for _, c := range v.Array() {
		bw.WriteByte(' ')
		bw.WriteString(strconv.FormatFloat(float64(c), 'g', -1, 32))
	}
	bw.WriteByte('\n')
}
