package force

import (
	"fmt"
	"math"

	"github.com/partix-sim/partix/internal/particle"
	"github.com/partix-sim/partix/internal/vec"
)

// DefaultMinSeparation bounds the distance used by singular force laws.
// Below it an inverse-square field saturates instead of blowing up.
const DefaultMinSeparation = 1e-3

// Generator produces one force contribution per step for the particle it
// is attached to. Generators hold no per-step state: the same generator
// attached for many steps recomputes its force fresh each time.
type Generator interface {
	Force(p *particle.Particle, dt float64) vec.Vec3
}

// Spring pulls a particle toward a fixed anchor with Hooke's law.
type Spring struct {
	Anchor     vec.Vec3
	K          float64
	RestLength float64
}

func NewSpring(anchor vec.Vec3, k, restLength float64) (*Spring, error) {
	if k < 0 || math.IsNaN(k) {
		return nil, fmt.Errorf("force: spring constant must be non-negative, got %v", k)
	}
	if restLength < 0 || math.IsNaN(restLength) {
		return nil, fmt.Errorf("force: rest length must be non-negative, got %v", restLength)
	}
	return &Spring{Anchor: anchor, K: k, RestLength: restLength}, nil
}

func (s *Spring) Force(p *particle.Particle, dt float64) vec.Vec3 {
	d := p.Position.Sub(s.Anchor)
	length := d.Len()

	// A particle sitting on its anchor has no defined direction; treat as
	// a zero-length spring and emit nothing.
	if length < DefaultMinSeparation {
		return vec.Zero
	}

	stretch := length - s.RestLength
	return d.Scale(-s.K * stretch / length)
}

// InverseSquareField attracts (positive strength) or repels (negative
// strength) a particle along the line to a fixed source, with magnitude
// strength/r².
type InverseSquareField struct {
	Source   vec.Vec3
	Strength float64

	// MinSeparation clamps r to guard the r→0 singularity.
	MinSeparation float64
}

func NewInverseSquareField(source vec.Vec3, strength, minSeparation float64) (*InverseSquareField, error) {
	if math.IsNaN(strength) || math.IsInf(strength, 0) {
		return nil, fmt.Errorf("force: field strength must be finite, got %v", strength)
	}
	if minSeparation <= 0 {
		minSeparation = DefaultMinSeparation
	}
	return &InverseSquareField{Source: source, Strength: strength, MinSeparation: minSeparation}, nil
}

func (f *InverseSquareField) Force(p *particle.Particle, dt float64) vec.Vec3 {
	d := p.Position.Sub(f.Source)
	r := d.Len()
	if r < f.MinSeparation {
		r = f.MinSeparation
	}

	dir := d.Normalized()
	if dir == vec.Zero {
		// Particle exactly on the source: no direction, no force.
		return vec.Zero
	}

	// Positive strength points the force toward the source.
	return dir.Scale(-f.Strength / (r * r))
}

// Gravity applies a constant acceleration, scaled back to a force by the
// particle's mass so that immovable particles stay untouched.
type Gravity struct {
	Acceleration vec.Vec3
}

func NewGravity(acceleration vec.Vec3) *Gravity {
	return &Gravity{Acceleration: acceleration}
}

func (g *Gravity) Force(p *particle.Particle, dt float64) vec.Vec3 {
	if !p.HasFiniteMass() {
		return vec.Zero
	}
	return g.Acceleration.Scale(1 / p.InverseMass)
}
