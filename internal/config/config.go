// Package config handles testmodel configuration loading and management.
package config

// Config holds all testmodel settings.
type Config struct {
	Parameters ParametersConfig `yaml:"parameters"`
	Export     ExportConfig     `yaml:"export"`
	Logging    LoggingConfig    `yaml:"logging"`
}

// Key is one keyframe of an animated parameter.
type Key struct {
	Time  float64 `yaml:"time"`
	Value float64 `yaml:"value"`
}

// ParametersConfig holds operator parameter values.
type ParametersConfig struct {
	Model            string     `yaml:"model"`              // Dataset menu token
	Primitive        string     `yaml:"primitive"`          // poly or points
	KeepOriginalAxes bool       `yaml:"keep_original_axes"` // Skip the Y/Z swap
	Center           [3]float64 `yaml:"center"`
	Scale            float64    `yaml:"scale"`
	ScaleKeys        []Key      `yaml:"scale_keys"` // Overrides Scale when set
	CreateNormals    bool       `yaml:"create_normals"`
	Time             float64    `yaml:"time"` // Evaluation time
}

// ExportConfig holds output settings.
type ExportConfig struct {
	Format string `yaml:"format"` // glb or obj; empty infers from Output
	Output string `yaml:"output"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with the operator's default parameter values.
func Default() *Config {
	return &Config{
		Parameters: ParametersConfig{
			Model:            "tetrahedron",
			Primitive:        "poly",
			KeepOriginalAxes: false,
			Scale:            1,
			CreateNormals:    true,
		},
		Export: ExportConfig{
			Format: "",
			Output: "testmodel.glb",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
