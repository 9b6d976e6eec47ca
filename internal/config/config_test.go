package config

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/san-kum/rigidcalc/internal/inertia"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Shape != "solid_sphere" {
		t.Errorf("expected shape solid_sphere, got %s", cfg.Shape)
	}
	if cfg.Mass <= 0 {
		t.Error("mass should be positive")
	}
	if cfg.Gravity != 9.81 {
		t.Errorf("expected standard gravity, got %f", cfg.Gravity)
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("rolling_cylinder")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.Mass != 2.0 {
		t.Errorf("expected mass 2.0, got %f", cfg.Mass)
	}
}

func TestGetPreset_NotFound(t *testing.T) {
	if cfg := GetPreset("nonexistent"); cfg != nil {
		t.Error("expected nil for nonexistent preset")
	}
}

func TestListPresets(t *testing.T) {
	presets := ListPresets()
	if len(presets) == 0 {
		t.Error("expected presets")
	}
}

func TestGeometrySelection(t *testing.T) {
	tests := []struct {
		shape string
		param inertia.Parameter
	}{
		{"solid_sphere", inertia.ParamRadius},
		{"disk", inertia.ParamRadius},
		{"rod_center", inertia.ParamLength},
		{"rod_end", inertia.ParamLength},
		{"custom", inertia.ParamCustom},
	}

	for _, tt := range tests {
		cfg := DefaultConfig()
		cfg.Shape = tt.shape
		geom, err := cfg.Geometry()
		if err != nil {
			t.Errorf("shape %s: %v", tt.shape, err)
			continue
		}
		if geom.Kind() != tt.param {
			t.Errorf("shape %s: expected %s geometry, got %s", tt.shape, tt.param, geom.Kind())
		}
	}
}

func TestGeometry_UnknownShape(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Shape = "klein_bottle"
	if _, err := cfg.Geometry(); err == nil {
		t.Error("expected error for unknown shape")
	}
}

func TestScenarioConversion(t *testing.T) {
	cfg := GetPreset("rolling_cylinder")
	s, err := cfg.Scenario()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Shape != inertia.SolidCylinder {
		t.Errorf("expected solid cylinder, got %v", s.Shape)
	}
	if math.Abs(s.Geometry.Value()-0.3) > 1e-9 {
		t.Errorf("expected radius 0.3, got %v", s.Geometry.Value())
	}
}

func TestLoadSaveRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scenario.yaml")

	cfg := DefaultConfig()
	cfg.Shape = "rod_end"
	cfg.Length = 1.8
	cfg.AngularVelocity = 4.5

	if err := Save(path, cfg); err != nil {
		t.Fatalf("save: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if loaded.Shape != "rod_end" || loaded.Length != 1.8 || loaded.AngularVelocity != 4.5 {
		t.Errorf("round trip mismatch: %+v", loaded)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(os.TempDir(), "rigidcalc-does-not-exist.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestAllPresetsConvert(t *testing.T) {
	for name := range Presets {
		cfg := GetPreset(name)
		if _, err := cfg.Scenario(); err != nil {
			t.Errorf("preset %s does not convert: %v", name, err)
		}
	}
}
