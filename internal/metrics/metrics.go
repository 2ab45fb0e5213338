package metrics

import (
	"math"

	"github.com/partix-sim/partix/internal/world"
)

// KineticEnergy averages total kinetic energy over a run. Immovable
// particles carry no kinetic energy.
type KineticEnergy struct {
	total   float64
	samples int
}

func NewKineticEnergy() *KineticEnergy { return &KineticEnergy{} }

func (k *KineticEnergy) Name() string { return "kinetic_energy" }

func (k *KineticEnergy) Observe(s world.Snapshot) {
	e := 0.0
	for _, p := range s.Particles {
		if !p.HasFiniteMass() {
			continue
		}
		e += 0.5 * p.Velocity.LenSq() / p.InverseMass
	}
	k.total += e
	k.samples++
}

func (k *KineticEnergy) Value() float64 {
	if k.samples == 0 {
		return 0
	}
	return k.total / float64(k.samples)
}

func (k *KineticEnergy) Reset() {
	k.total = 0
	k.samples = 0
}

// ContactCount totals the contacts produced across a run.
type ContactCount struct {
	count int
}

func NewContactCount() *ContactCount { return &ContactCount{} }

func (c *ContactCount) Name() string { return "contacts" }

func (c *ContactCount) Observe(s world.Snapshot) {
	c.count += len(s.Contacts)
}

func (c *ContactCount) Value() float64 { return float64(c.count) }

func (c *ContactCount) Reset() { c.count = 0 }

// MaxPenetration records the deepest overlap seen before resolution, a
// proxy for how hard the resolver is working.
type MaxPenetration struct {
	max float64
}

func NewMaxPenetration() *MaxPenetration { return &MaxPenetration{} }

func (m *MaxPenetration) Name() string { return "max_penetration" }

func (m *MaxPenetration) Observe(s world.Snapshot) {
	for _, c := range s.Contacts {
		m.max = math.Max(m.max, c.Penetration)
	}
}

func (m *MaxPenetration) Value() float64 { return m.max }

func (m *MaxPenetration) Reset() { m.max = 0 }
