package metrics

import (
	"math"
	"testing"

	"github.com/partix-sim/partix/internal/collide"
	"github.com/partix-sim/partix/internal/particle"
	"github.com/partix-sim/partix/internal/vec"
	"github.com/partix-sim/partix/internal/world"
)

func snapshot(t *testing.T, invMass float64, vel vec.Vec3, contacts []collide.Contact) world.Snapshot {
	t.Helper()
	p, err := particle.New(vec.Zero, vel, invMass, 1.0)
	if err != nil {
		t.Fatal(err)
	}
	return world.Snapshot{
		Particles: []*particle.Particle{p},
		Contacts:  contacts,
	}
}

func TestKineticEnergy(t *testing.T) {
	m := NewKineticEnergy()
	m.Observe(snapshot(t, 0.5, vec.New(2, 0, 0), nil)) // mass 2, |v|²=4 → E=4

	if math.Abs(m.Value()-4.0) > 1e-12 {
		t.Errorf("Value() = %v, want 4", m.Value())
	}

	m.Reset()
	if m.Value() != 0 {
		t.Errorf("Value() after Reset = %v, want 0", m.Value())
	}
}

func TestKineticEnergy_ImmovableIgnored(t *testing.T) {
	m := NewKineticEnergy()
	m.Observe(snapshot(t, 0, vec.New(100, 0, 0), nil))

	if m.Value() != 0 {
		t.Errorf("immovable particle contributed energy %v", m.Value())
	}
}

func TestContactCount(t *testing.T) {
	m := NewContactCount()
	m.Observe(snapshot(t, 1, vec.Zero, make([]collide.Contact, 3)))
	m.Observe(snapshot(t, 1, vec.Zero, make([]collide.Contact, 2)))

	if m.Value() != 5 {
		t.Errorf("Value() = %v, want 5", m.Value())
	}
}

func TestMaxPenetration(t *testing.T) {
	m := NewMaxPenetration()
	m.Observe(snapshot(t, 1, vec.Zero, []collide.Contact{
		{Penetration: 0.2}, {Penetration: 0.7}, {Penetration: 0.1},
	}))

	if math.Abs(m.Value()-0.7) > 1e-12 {
		t.Errorf("Value() = %v, want 0.7", m.Value())
	}
}
