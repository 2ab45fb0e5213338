package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Scene != "bounce" {
		t.Errorf("expected scene bounce, got %s", cfg.Scene)
	}
	if cfg.Dt <= 0 {
		t.Error("dt should be positive")
	}
	if cfg.Duration <= 0 {
		t.Error("duration should be positive")
	}
	if cfg.Restitution < 0 || cfg.Restitution > 1 {
		t.Errorf("restitution out of range: %v", cfg.Restitution)
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("bounce", "default")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if len(cfg.Particles) == 0 {
		t.Error("bounce preset has no particles")
	}
	if len(cfg.Planes) == 0 {
		t.Error("bounce preset has no planes")
	}
}

func TestGetPreset_NotFound(t *testing.T) {
	if cfg := GetPreset("bounce", "nonexistent"); cfg != nil {
		t.Error("expected nil for nonexistent preset")
	}
	if cfg := GetPreset("nonexistent", "default"); cfg != nil {
		t.Error("expected nil for nonexistent scene")
	}
}

func TestListPresets(t *testing.T) {
	if presets := ListPresets("bounce"); len(presets) == 0 {
		t.Error("expected presets for bounce")
	}
	if presets := ListPresets("nonexistent"); presets != nil {
		t.Error("expected nil for nonexistent scene")
	}
}

func TestEveryScene_HasDefault(t *testing.T) {
	for _, scene := range ListScenes() {
		if GetPreset(scene, "default") == nil {
			t.Errorf("scene %s has no default preset", scene)
		}
	}
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.yaml")

	orig := GetPreset("orbit", "default")
	if err := Save(path, orig); err != nil {
		t.Fatal(err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}

	if loaded.Scene != orig.Scene || loaded.Dt != orig.Dt {
		t.Errorf("round trip mismatch: %+v vs %+v", loaded, orig)
	}
	if len(loaded.Fields) != 1 || loaded.Fields[0].Strength != 2.0 {
		t.Errorf("fields did not survive round trip: %+v", loaded.Fields)
	}
}

func TestLoad_Missing(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); !os.IsNotExist(err) {
		t.Errorf("expected not-exist error, got %v", err)
	}
}
