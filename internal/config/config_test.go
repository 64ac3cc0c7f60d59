package config

import (
	"flag"
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Parameters.Model != "tetrahedron" {
		t.Errorf("expected model 'tetrahedron', got %s", cfg.Parameters.Model)
	}
	if cfg.Parameters.Primitive != "poly" {
		t.Errorf("expected primitive 'poly', got %s", cfg.Parameters.Primitive)
	}
	if cfg.Parameters.KeepOriginalAxes {
		t.Error("expected keep_original_axes to be false by default")
	}
	if !cfg.Parameters.CreateNormals {
		t.Error("expected create_normals to be true by default")
	}
	if cfg.Parameters.Scale != 1 {
		t.Errorf("expected scale 1, got %f", cfg.Parameters.Scale)
	}
	if cfg.Parameters.Center != [3]float64{} {
		t.Errorf("expected zero center, got %v", cfg.Parameters.Center)
	}

	if cfg.Export.Output != "testmodel.glb" {
		t.Errorf("expected output testmodel.glb, got %s", cfg.Export.Output)
	}

	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "" {
		t.Errorf("expected empty log file, got %s", cfg.Logging.LogFile)
	}
}

func TestLoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "testmodel.yaml")

	yamlContent := `
parameters:
  model: "octahedron"
  primitive: "points"
  keep_original_axes: true
  center: [1, 2, 3]
  scale: 2.5
  scale_keys:
    - {time: 0, value: 1}
    - {time: 1, value: 4}
  create_normals: false
  time: 0.5

export:
  format: "obj"
  output: "out/model.obj"

logging:
  level: "debug"
  log_file: "testmodel.log"
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	p := cfg.Parameters
	if p.Model != "octahedron" {
		t.Errorf("expected model octahedron, got %s", p.Model)
	}
	if p.Primitive != "points" {
		t.Errorf("expected primitive points, got %s", p.Primitive)
	}
	if !p.KeepOriginalAxes {
		t.Error("expected keep_original_axes to be true")
	}
	if p.Center != [3]float64{1, 2, 3} {
		t.Errorf("expected center [1 2 3], got %v", p.Center)
	}
	if p.Scale != 2.5 {
		t.Errorf("expected scale 2.5, got %f", p.Scale)
	}
	if len(p.ScaleKeys) != 2 || p.ScaleKeys[1].Value != 4 {
		t.Errorf("unexpected scale keys %v", p.ScaleKeys)
	}
	if p.CreateNormals {
		t.Error("expected create_normals to be false")
	}
	if p.Time != 0.5 {
		t.Errorf("expected time 0.5, got %f", p.Time)
	}

	if cfg.Export.Format != "obj" || cfg.Export.Output != "out/model.obj" {
		t.Errorf("unexpected export config %+v", cfg.Export)
	}

	if cfg.Logging.Level != "debug" {
		t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "testmodel.log" {
		t.Errorf("expected log file 'testmodel.log', got %s", cfg.Logging.LogFile)
	}
}

func TestLoadFromFileInvalid(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "invalid.yaml")

	invalidYAML := `
parameters:
  scale: not a number
  invalid syntax here
`

	if err := os.WriteFile(configPath, []byte(invalidYAML), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err == nil {
		t.Error("expected error loading invalid YAML, got nil")
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	cfg := Default()
	if err := loadFromFile(cfg, "/nonexistent/path/config.yaml"); err == nil {
		t.Error("expected error loading missing file, got nil")
	}
	if _, err := LoadFile("/nonexistent/path/config.yaml"); err == nil {
		t.Error("expected LoadFile error for missing file, got nil")
	}
}

func TestConfigDir(t *testing.T) {
	dir := ConfigDir()

	// Actual path depends on OS
	if dir == "" {
		t.Error("ConfigDir returned empty string")
	}
	if !filepath.IsAbs(dir) {
		t.Errorf("ConfigDir should return absolute path, got %s", dir)
	}
}

func TestFindConfigFile(t *testing.T) {
	origDir, _ := os.Getwd()
	defer os.Chdir(origDir)

	tmpDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmpDir, "xdg"))
	os.Chdir(tmpDir)

	if path := findConfigFile(); path != "" {
		t.Errorf("expected empty path when no config exists, got %s", path)
	}

	configPath := filepath.Join(tmpDir, "testmodel.yaml")
	if err := os.WriteFile(configPath, []byte("parameters:\n  scale: 3\n"), 0644); err != nil {
		t.Fatalf("failed to create test config: %v", err)
	}

	if path := findConfigFile(); path == "" {
		t.Error("expected to find testmodel.yaml in current directory")
	}
}

func TestApplyFlags(t *testing.T) {
	tests := []struct {
		name   string
		args   []string
		verify func(t *testing.T, cfg *Config)
	}{
		{
			name: "no flags keeps defaults",
			args: nil,
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Parameters.Scale != 1 || !cfg.Parameters.CreateNormals {
					t.Errorf("defaults changed: %+v", cfg.Parameters)
				}
			},
		},
		{
			name: "debug flag",
			args: []string{"-debug"},
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Logging.Level != "debug" {
					t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
				}
			},
		},
		{
			name: "model and primitive",
			args: []string{"-model", "cube", "-primitive", "points"},
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Parameters.Model != "cube" || cfg.Parameters.Primitive != "points" {
					t.Errorf("unexpected parameters %+v", cfg.Parameters)
				}
			},
		},
		{
			name: "scale and center",
			args: []string{"-scale", "0", "-center", "1, -2, 3.5"},
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Parameters.Scale != 0 {
					t.Errorf("expected scale 0, got %f", cfg.Parameters.Scale)
				}
				if cfg.Parameters.Center != [3]float64{1, -2, 3.5} {
					t.Errorf("unexpected center %v", cfg.Parameters.Center)
				}
			},
		},
		{
			name: "toggles",
			args: []string{"-keep-axes", "-normals=false"},
			verify: func(t *testing.T, cfg *Config) {
				if !cfg.Parameters.KeepOriginalAxes {
					t.Error("expected keep_original_axes")
				}
				if cfg.Parameters.CreateNormals {
					t.Error("expected create_normals off")
				}
			},
		},
		{
			name: "output and format",
			args: []string{"-o", "x.obj", "-format", "obj", "-time", "2"},
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Export.Output != "x.obj" || cfg.Export.Format != "obj" {
					t.Errorf("unexpected export %+v", cfg.Export)
				}
				if cfg.Parameters.Time != 2 {
					t.Errorf("expected time 2, got %f", cfg.Parameters.Time)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := flag.NewFlagSet("test", flag.ContinueOnError)
			flags := RegisterFlags(fs)
			if err := fs.Parse(tt.args); err != nil {
				t.Fatalf("parse: %v", err)
			}

			cfg := Default()
			if err := flags.apply(cfg); err != nil {
				t.Fatalf("apply: %v", err)
			}
			tt.verify(t, cfg)
		})
	}
}

func TestApplyFlagsBadCenter(t *testing.T) {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	flags := RegisterFlags(fs)
	if err := fs.Parse([]string{"-center", "1,2"}); err != nil {
		t.Fatalf("parse: %v", err)
	}
	if err := flags.apply(Default()); err == nil {
		t.Error("expected error for malformed center")
	}
}

func TestLoadPriority(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
parameters:
  model: cube
  scale: 4
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	flags := RegisterFlags(fs)
	if err := fs.Parse([]string{"-config", configPath, "-scale", "2"}); err != nil {
		t.Fatalf("parse: %v", err)
	}

	cfg, err := Load(flags)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	// Scale should be from flag (2), not file (4)
	if cfg.Parameters.Scale != 2 {
		t.Errorf("expected scale 2 from flag, got %f", cfg.Parameters.Scale)
	}

	// Model should be from file since no flag override
	if cfg.Parameters.Model != "cube" {
		t.Errorf("expected model cube from file, got %s", cfg.Parameters.Model)
	}
}

func TestSaveTo(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := Default()
	cfg.Parameters.Model = "icosahedron"
	cfg.Parameters.Center = [3]float64{0.5, 0, -1}
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo: %v", err)
	}

	loaded, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if loaded.Parameters.Model != "icosahedron" || loaded.Parameters.Center != cfg.Parameters.Center {
		t.Errorf("unexpected loaded parameters %+v", loaded.Parameters)
	}
}

func TestSave(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())
	t.Setenv("APPDATA", t.TempDir())

	if err := Default().Save(); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if _, err := os.Stat(filepath.Join(ConfigDir(), "config.yaml")); err != nil {
		t.Errorf("expected saved config: %v", err)
	}
}
