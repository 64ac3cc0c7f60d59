package dataset

const (
	phi = 1.618034   // golden ratio
	inv = 0.57735026 // 1/sqrt(3)
)

var tetrahedron = Dataset{
	Name:  "tetrahedron",
	Label: "Tetrahedron",
	Vertices: []float32{
		1, 1, 1,
		1, -1, -1,
		-1, 1, -1,
		-1, -1, 1,
	},
	Indices: []uint32{
		0, 1, 2,
		0, 3, 1,
		0, 2, 3,
		1, 3, 2,
	},
}

// One quad per face, so corners are duplicated three times.
var cube = Dataset{
	Name:  "cube",
	Label: "Cube",
	Vertices: []float32{
		// +X
		1, -1, -1, 1, 1, -1, 1, 1, 1, 1, -1, 1,
		// -X
		-1, -1, 1, -1, 1, 1, -1, 1, -1, -1, -1, -1,
		// +Y
		-1, 1, -1, -1, 1, 1, 1, 1, 1, 1, 1, -1,
		// -Y
		-1, -1, 1, -1, -1, -1, 1, -1, -1, 1, -1, 1,
		// +Z
		-1, -1, 1, 1, -1, 1, 1, 1, 1, -1, 1, 1,
		// -Z
		1, -1, -1, -1, -1, -1, -1, 1, -1, 1, 1, -1,
	},
	Indices: []uint32{
		0, 1, 2, 0, 2, 3,
		4, 5, 6, 4, 6, 7,
		8, 9, 10, 8, 10, 11,
		12, 13, 14, 12, 14, 15,
		16, 17, 18, 16, 18, 19,
		20, 21, 22, 20, 22, 23,
	},
}

var icosahedron = Dataset{
	Name:  "icosahedron",
	Label: "Icosahedron",
	Vertices: []float32{
		-1, phi, 0,
		1, phi, 0,
		-1, -phi, 0,
		1, -phi, 0,
		0, -1, phi,
		0, 1, phi,
		0, -1, -phi,
		0, 1, -phi,
		phi, 0, -1,
		phi, 0, 1,
		-phi, 0, -1,
		-phi, 0, 1,
	},
	Indices: []uint32{
		0, 11, 5, 0, 5, 1, 0, 1, 7, 0, 7, 10, 0, 10, 11,
		1, 5, 9, 5, 11, 4, 11, 10, 2, 10, 7, 6, 7, 1, 8,
		3, 9, 4, 3, 4, 2, 3, 2, 6, 3, 6, 8, 3, 8, 9,
		4, 9, 5, 2, 4, 11, 6, 2, 10, 8, 6, 7, 9, 8, 1,
	},
}

// Flat shaded: every face owns its three corners and carries the face normal
// on each of them.
var octahedron = Dataset{
	Name:  "octahedron",
	Label: "Octahedron",
	Vertices: []float32{
		1, 0, 0, 0, 1, 0, 0, 0, 1,
		0, 1, 0, -1, 0, 0, 0, 0, 1,
		-1, 0, 0, 0, -1, 0, 0, 0, 1,
		0, -1, 0, 1, 0, 0, 0, 0, 1,
		0, 1, 0, 1, 0, 0, 0, 0, -1,
		-1, 0, 0, 0, 1, 0, 0, 0, -1,
		0, -1, 0, -1, 0, 0, 0, 0, -1,
		1, 0, 0, 0, -1, 0, 0, 0, -1,
	},
	Indices: []uint32{
		0, 1, 2,
		3, 4, 5,
		6, 7, 8,
		9, 10, 11,
		12, 13, 14,
		15, 16, 17,
		18, 19, 20,
		21, 22, 23,
	},
	Normals: []float32{
		inv, inv, inv, inv, inv, inv, inv, inv, inv,
		-inv, inv, inv, -inv, inv, inv, -inv, inv, inv,
		-inv, -inv, inv, -inv, -inv, inv, -inv, -inv, inv,
		inv, -inv, inv, inv, -inv, inv, inv, -inv, inv,
		inv, inv, -inv, inv, inv, -inv, inv, inv, -inv,
		-inv, inv, -inv, -inv, inv, -inv, -inv, inv, -inv,
		-inv, -inv, -inv, -inv, -inv, -inv, -inv, -inv, -inv,
		inv, -inv, -inv, inv, -inv, -inv, inv, -inv, -inv,
	},
}
