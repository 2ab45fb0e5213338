package resolve

import (
	"fmt"
	"math"

	"github.com/partix-sim/partix/internal/collide"
	"github.com/partix-sim/partix/internal/vec"
)

// DefaultRestitution keeps bounces fully elastic unless configured
// otherwise.
const DefaultRestitution = 1.0

// Resolver consumes a fully collected contact list and applies
// inverse-mass-weighted positional correction plus an impulse along each
// contact normal. A single pass resolves every contact from the state the
// detector saw; chains of overlapping bodies may keep residual overlap,
// which callers reduce by re-running detect/resolve.
type Resolver struct {
	restitution float64
}

func New(restitution float64) (*Resolver, error) {
	if restitution < 0 || restitution > 1 || math.IsNaN(restitution) {
		return nil, fmt.Errorf("resolve: restitution must be in [0,1], got %v", restitution)
	}
	return &Resolver{restitution: restitution}, nil
}

func (r *Resolver) Restitution() float64 { return r.restitution }

// ResolveAll applies one pass over contacts.
func (r *Resolver) ResolveAll(contacts []collide.Contact) {
	for i := range contacts {
		r.resolve(&contacts[i])
	}
}

func (r *Resolver) resolve(c *collide.Contact) {
	invA := c.InverseMassA()
	invB := c.InverseMassB()
	totalInv := invA + invB
	if totalInv == 0 {
		// Both participants immovable.
		return
	}

	r.correctPosition(c, invA, invB, totalInv)
	r.resolveVelocity(c, invA, invB, totalInv)
}

// correctPosition moves the participants apart along the normal, split by
// inverse mass so heavier bodies move less and immovable ones not at all.
func (r *Resolver) correctPosition(c *collide.Contact, invA, invB, totalInv float64) {
	shift := c.Normal.Scale(c.Penetration / totalInv)

	if c.A.Particle != nil && invA > 0 {
		c.A.Particle.Position = c.A.Particle.Position.Add(shift.Scale(invA))
	}
	if c.B.Particle != nil && invB > 0 {
		c.B.Particle.Position = c.B.Particle.Position.Sub(shift.Scale(invB))
	}
}

func (r *Resolver) resolveVelocity(c *collide.Contact, invA, invB, totalInv float64) {
	var vA, vB vec.Vec3
	if c.A.Particle != nil {
		vA = c.A.Particle.Velocity
	}
	if c.B.Particle != nil {
		vB = c.B.Particle.Velocity
	}

	rv := vA.Sub(vB).Dot(c.Normal)
	if rv > 0 {
		// Already separating.
		return
	}

	impulse := c.Normal.Scale(-(1 + r.restitution) * rv / totalInv)

	if c.A.Particle != nil && invA > 0 {
		c.A.Particle.Velocity = c.A.Particle.Velocity.Add(impulse.Scale(invA))
	}
	if c.B.Particle != nil && invB > 0 {
		c.B.Particle.Velocity = c.B.Particle.Velocity.Sub(impulse.Scale(invB))
	}
}
