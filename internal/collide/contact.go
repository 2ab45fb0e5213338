package collide

import "github.com/partix-sim/partix/internal/vec"

// Contact records one penetrating pair for a single detection pass. The
// normal is a unit vector oriented from B toward A, and Penetration is
// always positive. Contacts are consumed by the resolver and never kept
// across steps.
type Contact struct {
	A, B *Shape

	Normal      vec.Vec3
	Penetration float64
}

// InverseMassA returns participant A's inverse mass (0 for a plane).
func (c *Contact) InverseMassA() float64 {
	if c.A.Particle == nil {
		return 0
	}
	return c.A.Particle.InverseMass
}

// InverseMassB returns participant B's inverse mass (0 for a plane).
func (c *Contact) InverseMassB() float64 {
	if c.B.Particle == nil {
		return 0
	}
	return c.B.Particle.InverseMass
}
