package experiment

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "experiment.yml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfigFile(t, `
single_or_multi_agent: single
task: classify
external_repr_tool: Abacus
observation: spatial
max_objects: 2
max_max_objects: 5
curriculum_learning: false
num_iterations: 50000
obs_ext_shape: 8x8
exp_name: spatial_abacus
`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if cfg.ExternalReprTool != ToolAbacus {
		t.Errorf("ExternalReprTool = %q, want %q", cfg.ExternalReprTool, ToolAbacus)
	}
	if cfg.Observation != ObservationSpatial {
		t.Errorf("Observation = %q, want %q", cfg.Observation, ObservationSpatial)
	}
	if cfg.MaxObjects != 2 || cfg.MaxMaxObjects != 5 {
		t.Errorf("object bounds = %d/%d, want 2/5", cfg.MaxObjects, cfg.MaxMaxObjects)
	}
	if cfg.CurriculumLearning {
		t.Error("CurriculumLearning = true, want false")
	}
	if (cfg.ObsExtShape != Shape{Rows: 8, Cols: 8}) {
		t.Errorf("ObsExtShape = %v, want 8x8", cfg.ObsExtShape)
	}
	if cfg.ExpName != "spatial_abacus" {
		t.Errorf("ExpName = %q, want spatial_abacus", cfg.ExpName)
	}
}

func TestLoadConfigPartialKeepsDefaults(t *testing.T) {
	path := writeConfigFile(t, `
exp_name: temporal_quick
num_iterations: 1000
`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if cfg.ExpName != "temporal_quick" {
		t.Errorf("ExpName = %q, want temporal_quick", cfg.ExpName)
	}
	if cfg.NumIterations != 1000 {
		t.Errorf("NumIterations = %d, want 1000", cfg.NumIterations)
	}

	// Everything else stays at the defaults.
	def := Default()
	if cfg.Observation != def.Observation || cfg.ExternalReprTool != def.ExternalReprTool {
		t.Errorf("unset fields should keep defaults, got %+v", cfg)
	}
}

func TestLoadConfigEmptyFileIsDefault(t *testing.T) {
	path := writeConfigFile(t, "")

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg != Default() {
		t.Errorf("empty file should load as Default(), got %+v", cfg)
	}
}

func TestLoadConfigRejectsUnknownKeys(t *testing.T) {
	path := writeConfigFile(t, `
exp_name: typo_test
max_objcets: 3
`)

	_, err := LoadConfig(path)
	if err == nil {
		t.Fatal("LoadConfig() = nil error, want unknown-key failure")
	}
}

func TestLoadConfigRejectsInvalidValues(t *testing.T) {
	path := writeConfigFile(t, `
max_objects: 7
max_max_objects: 3
`)

	_, err := LoadConfig(path)
	if err == nil {
		t.Fatal("LoadConfig() = nil error, want validation failure")
	}
	if !strings.Contains(err.Error(), "max_max_objects") {
		t.Errorf("error should mention max_max_objects, got: %v", err)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yml"))
	if err == nil {
		t.Fatal("LoadConfig() = nil error for missing file")
	}
}

func TestSaveConfigRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "saved.yml")

	cfg := Default()
	cfg.ExpName = "saved_run"
	cfg.ObsExtShape = Shape{Rows: 12, Cols: 3}

	if err := SaveConfig(path, cfg); err != nil {
		t.Fatalf("SaveConfig() error = %v", err)
	}

	loaded, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if loaded != cfg {
		t.Errorf("round trip mismatch: got %+v, want %+v", loaded, cfg)
	}
}
