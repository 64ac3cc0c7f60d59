package export

import (
	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"

	"github.com/Faultbox/testmodel/pkg/geo"
)

// Document converts d into a single-mesh glTF document. Polygons are
// triangulated as fans; a detail without polygons becomes a points primitive.
func Document(name string, d *geo.Detail) *gltf.Document {
	doc := gltf.NewDocument()
	doc.Asset.Generator = "testmodel"

	positions := make([][3]float32, d.NumPoints())
	for i, p := range d.Positions() {
		positions[i] = p.Array()
	}

	prim := &gltf.Primitive{
		Attributes: map[string]uint32{
			gltf.POSITION: modeler.WritePosition(doc, positions),
		},
	}

	if n := d.Attribute("N"); n != nil && n.Components == 3 {
		normals := make([][3]float32, d.NumPoints())
		for i := range normals {
			normals[i] = n.Vector(geo.PointOffset(i)).Array()
		}
		prim.Attributes[gltf.NORMAL] = modeler.WriteNormal(doc, normals)
	}

	if d.NumPrimitives() == 0 {
		prim.Mode = gltf.PrimitivePoints
	} else {
		indices := make([]uint32, 0, 3*d.NumPrimitives())
		for _, poly := range d.Polygons() {
			for i := 1; i+1 < len(poly.Vertices); i++ {
				indices = append(indices,
					uint32(poly.Vertices[0]),
					uint32(poly.Vertices[i]),
					uint32(poly.Vertices[i+1]),
				)
			}
		}
		prim.Indices = gltf.Index(modeler.WriteIndices(doc, indices))
	}

	doc.Meshes = []*gltf.Mesh{{Name: name, Primitives: []*gltf.Primitive{prim}}}
	doc.Nodes = []*gltf.Node{{Name: name, Mesh: gltf.Index(0)}}
	doc.Scenes[0].Nodes = append(doc.Scenes[0].Nodes, uint32(0))

	return doc
}

// SaveGLB writes d as binary glTF to path.
func SaveGLB(path, name string, d *geo.Detail) error {
	return gltf.SaveBinary(Document(name, d), path)
}
