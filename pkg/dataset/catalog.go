package dataset

import (
	"fmt"
	"strings"
)

// Model selects one of the compiled-in datasets.
type Model int

const (
	Tetrahedron Model = iota // 4 vertices, welded per triangle corner
	Cube                     // 24 vertices, one quad per face, welds to 8
	Icosahedron              // 12 shared vertices
	Octahedron               // 24 faceted vertices with normals, welds to 6
)

// ModelCount is the number of compiled-in datasets.
const ModelCount = 4

var catalog = [ModelCount]*Dataset{
	Tetrahedron: &tetrahedron,
	Cube:        &cube,
	Icosahedron: &icosahedron,
	Octahedron:  &octahedron,
}

// String returns the menu token of the model.
func (m Model) String() string {
	if m < 0 || m >= ModelCount {
		return fmt.Sprintf("Unknown(%d)", int(m))
	}
	return catalog[m].Name
}

// ParseModel resolves a menu token or display label (case-insensitive).
func ParseModel(s string) (Model, error) {
	for i, ds := range catalog {
		if strings.EqualFold(s, ds.Name) || strings.EqualFold(s, ds.Label) {
			return Model(i), nil
		}
	}
	return 0, fmt.Errorf("unknown model %q", s)
}

// Lookup returns the dataset for m. Out-of-range selectors fall back to the
// first dataset, matching a menu whose value was never set.
func Lookup(m Model) *Dataset {
	if m < 0 || m >= ModelCount {
		return catalog[Tetrahedron]
	}
	return catalog[m]
}

// Models returns all selectors in menu order.
func Models() []Model {
	out := make([]Model, ModelCount)
	for i := range out {
		out[i] = Model(i)
	}
	return out
}
