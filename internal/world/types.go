package world

import (
	"github.com/partix-sim/partix/internal/collide"
	"github.com/partix-sim/partix/internal/particle"
)

// Handle identifies a particle registered with a World.
type Handle int

// GeneratorHandle identifies an attached force generator.
type GeneratorHandle int

// Snapshot is the read view handed to metrics and observers after each
// step: the particles in registration order and the contacts found by the
// first detection pass of the step. Both are live references; consumers
// must not mutate them.
type Snapshot struct {
	Time      float64
	Particles []*particle.Particle
	Contacts  []collide.Contact
}

type Metric interface {
	Name() string
	Observe(s Snapshot)
	Value() float64
	Reset()
}

type Observer interface {
	OnStep(s Snapshot)
}

// Config controls collision response and per-step validation.
type Config struct {
	// Restitution is the global bounce coefficient in [0,1].
	Restitution float64

	// Iterations is the number of detect/resolve relaxation passes per
	// step. One pass resolves every contact from pre-resolution state;
	// more passes reduce residual overlap in chains of bodies.
	Iterations int

	// ValidateState makes Step fail with ErrInvalidState when any
	// particle picks up NaN/Inf.
	ValidateState bool
}

func DefaultConfig() Config {
	return Config{
		Restitution:   1.0,
		Iterations:    1,
		ValidateState: true,
	}
}

// RunConfig controls a fixed-timestep run.
type RunConfig struct {
	Dt       float64
	Duration float64
}

// Result collects the trajectory of a run. States holds one flattened
// row per sample: position then velocity, three components each, per
// particle in registration order.
type Result struct {
	Times      []float64
	States     [][]float64
	Metrics    map[string]float64
	StepsTaken int
}
