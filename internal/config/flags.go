package config

import (
	"flag"
	"fmt"
	"strconv"
	"strings"
)

// Flags holds command-line overrides registered on a flag set.
type Flags struct {
	fs *flag.FlagSet

	config    *string
	debug     *bool
	model     *string
	primitive *string
	scale     *float64
	center    *string
	keepAxes  *bool
	normals   *bool
	time      *float64
	output    *string
	format    *string
}

// RegisterFlags declares the configuration flags on fs.
func RegisterFlags(fs *flag.FlagSet) *Flags {
	return &Flags{
		fs:        fs,
		config:    fs.String("config", "", "Path to config file"),
		debug:     fs.Bool("debug", false, "Enable debug logging"),
		model:     fs.String("model", "", "Model type (tetrahedron, cube, icosahedron, octahedron)"),
		primitive: fs.String("primitive", "", "Primitive type (poly, points)"),
		scale:     fs.Float64("scale", 1, "Uniform scale"),
		center:    fs.String("center", "", "Center as x,y,z"),
		keepAxes:  fs.Bool("keep-axes", false, "Keep original coordinate system"),
		normals:   fs.Bool("normals", true, "Create normals"),
		time:      fs.Float64("time", 0, "Evaluation time"),
		output:    fs.String("o", "", "Output file"),
		format:    fs.String("format", "", "Output format (glb, obj)"),
	}
}

// ConfigPath returns the explicit config path if provided via -config.
func (f *Flags) ConfigPath() string {
	if f == nil {
		return ""
	}
	return *f.config
}

// apply applies flags that were set explicitly on the command line.
func (f *Flags) apply(cfg *Config) error {
	if f == nil {
		return nil
	}

	set := make(map[string]bool)
	f.fs.Visit(func(fl *flag.Flag) { set[fl.Name] = true })

	if *f.debug {
		cfg.Logging.Level = "debug"
	}
	if *f.model != "" {
		cfg.Parameters.Model = *f.model
	}
	if *f.primitive != "" {
		cfg.Parameters.Primitive = *f.primitive
	}
	if set["scale"] {
		cfg.Parameters.Scale = *f.scale
		cfg.Parameters.ScaleKeys = nil
	}
	if *f.center != "" {
		c, err := ParseVec3(*f.center)
		if err != nil {
			return fmt.Errorf("-center: %w", err)
		}
		cfg.Parameters.Center = c
	}
	if set["keep-axes"] {
		cfg.Parameters.KeepOriginalAxes = *f.keepAxes
	}
	if set["normals"] {
		cfg.Parameters.CreateNormals = *f.normals
	}
	if set["time"] {
		cfg.Parameters.Time = *f.time
	}
	if *f.output != "" {
		cfg.Export.Output = *f.output
	}
	if *f.format != "" {
		cfg.Export.Format = *f.format
	}
	return nil
}

// ParseVec3 parses "x,y,z".
func ParseVec3(s string) ([3]float64, error) {
	var v [3]float64
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return v, fmt.Errorf("expected x,y,z, got %q", s)
	}
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return v, fmt.Errorf("component %d: %w", i, err)
		}
		v[i] = f
	}
	return v, nil
}
