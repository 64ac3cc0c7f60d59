// Package operator exposes the test model generator as a registered operator:
// parameter templates, per-time parameter evaluation and the cook entry point.
package operator

import "fmt"

// Parameter names.
const (
	ParmModelType        = "model_type"
	ParmPrimitiveType    = "primitive_type"
	ParmKeepOriginalAxes = "keep_original_axes"
	ParmCenter           = "t"
	ParmScale            = "scale"
	ParmCreateNormals    = "create_normals"
)

// ParmType is the kind of value a parameter holds.
type ParmType int

const (
	ParmChoice ParmType = iota // Integer menu index
	ParmToggle                 // 0 or 1
	ParmXYZ                    // Three floats
	ParmFloat                  // One float
)

// String returns a human-readable parameter type name.
func (t ParmType) String() string {
	switch t {
	case ParmChoice:
		return "Choice"
	case ParmToggle:
		return "Toggle"
	case ParmXYZ:
		return "XYZ"
	case ParmFloat:
		return "Float"
	default:
		return fmt.Sprintf("Unknown(%d)", int(t))
	}
}

// Choice is one entry of a menu parameter.
type Choice struct {
	Token string
	Label string
}

// Range is a UI range hint. It does not clamp values.
type Range struct {
	Min, Max float64
}

// Template declares one user-editable parameter.
type Template struct {
	Name     string
	Label    string
	Type     ParmType
	Size     int       // Number of components
	Defaults []float64 // One per component
	Choices  []Choice  // ParmChoice only
	Range    *Range    // Optional UI range
}

// Templates returns the parameter list of the test model operator in UI order.
func Templates() []Template {
	return []Template{
		{
			Name:     ParmModelType,
			Label:    "Model Type",
			Type:     ParmChoice,
			Size:     1,
			Defaults: []float64{0},
			Choices:  modelChoices(),
		},
		{
			Name:     ParmPrimitiveType,
			Label:    "Primitive Type",
			Type:     ParmChoice,
			Size:     1,
			Defaults: []float64{0},
			Choices: []Choice{
				{Token: "poly", Label: "Polygon"},
				{Token: "points", Label: "Points"},
			},
		},
		{
			Name:     ParmKeepOriginalAxes,
			Label:    "Keep Original Coordinate System",
			Type:     ParmToggle,
			Size:     1,
			Defaults: []float64{0},
		},
		{
			Name:     ParmCenter,
			Label:    "Center",
			Type:     ParmXYZ,
			Size:     3,
			Defaults: []float64{0, 0, 0},
		},
		{
			Name:     ParmScale,
			Label:    "Uniform Scale",
			Type:     ParmFloat,
			Size:     1,
			Defaults: []float64{1},
			Range:    &Range{Min: 0, Max: 10},
		},
		{
			Name:     ParmCreateNormals,
			Label:    "Create Normals",
			Type:     ParmToggle,
			Size:     1,
			Defaults: []float64{1},
		},
	}
}

// ChoiceIndex resolves a menu token or label to its index.
func (t Template) ChoiceIndex(s string) (int, bool) {
	for i, c := range t.Choices {
		if c.Token == s || c.Label == s {
			return i, true
		}
	}
	return 0, false
}
