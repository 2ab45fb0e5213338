package scene

import (
	"context"
	"testing"

	"github.com/partix-sim/partix/internal/config"
	"github.com/partix-sim/partix/internal/world"
)

func TestBuild_AllPresets(t *testing.T) {
	for _, name := range config.ListScenes() {
		for _, preset := range config.ListPresets(name) {
			t.Run(name+"/"+preset, func(t *testing.T) {
				cfg := config.GetPreset(name, preset)
				w, handles, err := Build(cfg)
				if err != nil {
					t.Fatalf("Build failed: %v", err)
				}
				if len(handles) != len(cfg.Particles) {
					t.Errorf("got %d handles, want %d", len(handles), len(cfg.Particles))
				}

				// Every preset must survive a short run without NaN.
				if _, err := w.Run(context.Background(), world.RunConfig{Dt: cfg.Dt, Duration: 0.5}); err != nil {
					t.Errorf("run failed: %v", err)
				}
			})
		}
	}
}

func TestBuild_BadSpringIndex(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Springs = []config.SpringConfig{{Particle: 5, K: 1, RestLength: 1}}

	if _, _, err := Build(cfg); err == nil {
		t.Error("expected error for out-of-range spring index")
	}
}

func TestBuild_BadFieldIndex(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Fields = []config.FieldConfig{{Particle: -1, Strength: 1}}

	if _, _, err := Build(cfg); err == nil {
		t.Error("expected error for negative field index")
	}
}

func TestBuild_BadParticle(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Particles = []config.ParticleConfig{{InverseMass: -1}}

	if _, _, err := Build(cfg); err == nil {
		t.Error("expected error for negative inverse mass")
	}
}
