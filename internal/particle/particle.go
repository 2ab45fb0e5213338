package particle

import (
	"fmt"
	"math"

	"github.com/partix-sim/partix/internal/vec"
)

// Particle is a point mass. Inverse mass of zero marks an immovable
// particle: no applied force or collision ever changes its state.
type Particle struct {
	Position vec.Vec3
	Velocity vec.Vec3

	// InverseMass is 1/mass; zero denotes infinite mass.
	InverseMass float64

	// Damping in [0,1] is the fraction of velocity retained over one
	// second of integration.
	Damping float64

	forceAccum vec.Vec3
}

func New(position, velocity vec.Vec3, inverseMass, damping float64) (*Particle, error) {
	if inverseMass < 0 || math.IsNaN(inverseMass) || math.IsInf(inverseMass, 0) {
		return nil, fmt.Errorf("particle: inverse mass must be non-negative, got %v", inverseMass)
	}
	if damping < 0 || damping > 1 || math.IsNaN(damping) {
		return nil, fmt.Errorf("particle: damping must be in [0,1], got %v", damping)
	}
	return &Particle{
		Position:    position,
		Velocity:    velocity,
		InverseMass: inverseMass,
		Damping:     damping,
	}, nil
}

// AddForce accumulates f into the particle's net force for the current
// step. Accumulation is a plain vector sum, so call order never matters.
func (p *Particle) AddForce(f vec.Vec3) {
	p.forceAccum = p.forceAccum.Add(f)
}

// ForceAccum returns the net force accumulated so far this step.
func (p *Particle) ForceAccum() vec.Vec3 { return p.forceAccum }

// ClearAccumulator zeroes the accumulated force.
func (p *Particle) ClearAccumulator() { p.forceAccum = vec.Zero }

// HasFiniteMass reports whether the particle can be moved at all.
func (p *Particle) HasFiniteMass() bool { return p.InverseMass > 0 }

// Integrate advances the particle by dt seconds and clears the force
// accumulator. Acceleration is derived from the accumulated force alone,
// never carried over from a previous step. Callers must not pass a
// negative dt.
func (p *Particle) Integrate(dt float64) {
	if p.InverseMass == 0 {
		p.forceAccum = vec.Zero
		return
	}

	acc := p.forceAccum.Scale(p.InverseMass)

	p.Velocity = p.Velocity.Scale(math.Pow(p.Damping, dt)).Add(acc.Scale(dt))
	p.Position = p.Position.Add(p.Velocity.Scale(dt))

	p.forceAccum = vec.Zero
}

// IsValid reports whether position and velocity are free of NaN/Inf.
func (p *Particle) IsValid() bool {
	return p.Position.IsValid() && p.Velocity.IsValid()
}
