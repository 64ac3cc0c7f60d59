package operator

import (
	"github.com/Faultbox/testmodel/internal/builder"
	"github.com/Faultbox/testmodel/pkg/dataset"
	"github.com/Faultbox/testmodel/pkg/math"
)

// SettingsProvider evaluates the test model settings at a time.
type SettingsProvider interface {
	ModelType(t float64) dataset.Model
	PrimitiveMode(t float64) builder.PrimitiveMode
	KeepOriginalAxes(t float64) bool
	CreateNormals(t float64) bool
	UniformScale(t float64) float32
	Center(t float64) math.Vec3
}

var _ SettingsProvider = (*Parameters)(nil)

// ModelType returns the selected dataset.
func (p *Parameters) ModelType(t float64) dataset.Model {
	return dataset.Model(p.EvalInt(ParmModelType, 0, t))
}

// PrimitiveMode returns the selected primitive type.
func (p *Parameters) PrimitiveMode(t float64) builder.PrimitiveMode {
	if p.EvalInt(ParmPrimitiveType, 0, t) == 0 {
		return builder.Polygon
	}
	return builder.Points
}

// KeepOriginalAxes reports whether the dataset's Y/Z axes are kept as is.
func (p *Parameters) KeepOriginalAxes(t float64) bool {
	return p.EvalInt(ParmKeepOriginalAxes, 0, t) != 0
}

// CreateNormals reports whether normals should be emitted.
func (p *Parameters) CreateNormals(t float64) bool {
	return p.EvalInt(ParmCreateNormals, 0, t) != 0
}

// UniformScale returns the scale factor.
func (p *Parameters) UniformScale(t float64) float32 {
	return float32(p.EvalFloat(ParmScale, 0, t))
}

// Center returns the point moved to the origin before scaling.
func (p *Parameters) Center(t float64) math.Vec3 {
	return math.Vec3{
		X: float32(p.EvalFloat(ParmCenter, 0, t)),
		Y: float32(p.EvalFloat(ParmCenter, 1, t)),
		Z: float32(p.EvalFloat(ParmCenter, 2, t)),
	}
}

// Snapshot evaluates every setting once at time t.
func Snapshot(p SettingsProvider, t float64) (dataset.Model, builder.Settings) {
	return p.ModelType(t), builder.Settings{
		Center:  p.Center(t),
		Scale:   p.UniformScale(t),
		SwapYZ:  !p.KeepOriginalAxes(t),
		Mode:    p.PrimitiveMode(t),
		Normals: p.CreateNormals(t),
	}
}
