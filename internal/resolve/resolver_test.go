package resolve

import (
	"math"
	"testing"

	"github.com/partix-sim/partix/internal/collide"
	"github.com/partix-sim/partix/internal/particle"
	"github.com/partix-sim/partix/internal/vec"
)

func sphere(t *testing.T, pos, vel vec.Vec3, radius, invMass float64) *collide.Shape {
	t.Helper()
	p, err := particle.New(pos, vel, invMass, 1.0)
	if err != nil {
		t.Fatal(err)
	}
	s, err := collide.NewSphere(p, radius)
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func TestNew_Validation(t *testing.T) {
	if _, err := New(-0.1); err == nil {
		t.Error("expected error for negative restitution")
	}
	if _, err := New(1.1); err == nil {
		t.Error("expected error for restitution above one")
	}
	if _, err := New(DefaultRestitution); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestPositionalCorrection_MassSplit(t *testing.T) {
	a := sphere(t, vec.New(0, 0, 0), vec.Zero, 1.0, 2.0)
	b := sphere(t, vec.New(1, 0, 0), vec.Zero, 1.0, 1.0)

	c := collide.Contact{A: a, B: b, Normal: vec.New(1, 0, 0), Penetration: 0.3}

	r, _ := New(1.0)
	r.ResolveAll([]collide.Contact{c})

	// 2:1 inverse mass split of 0.3: A moves +0.2, B moves -0.1.
	if math.Abs(a.Particle.Position.X-0.2) > 1e-12 {
		t.Errorf("A moved to %v, want x=0.2", a.Particle.Position)
	}
	if math.Abs(b.Particle.Position.X-0.9) > 1e-12 {
		t.Errorf("B moved to %v, want x=0.9", b.Particle.Position)
	}
}

func TestPositionalCorrection_BothImmovable(t *testing.T) {
	a := sphere(t, vec.New(0, 0, 0), vec.Zero, 1.0, 0)
	b := sphere(t, vec.New(1, 0, 0), vec.Zero, 1.0, 0)

	c := collide.Contact{A: a, B: b, Normal: vec.New(1, 0, 0), Penetration: 0.5}

	r, _ := New(1.0)
	r.ResolveAll([]collide.Contact{c})

	if a.Particle.Position.X != 0 || b.Particle.Position.X != 1 {
		t.Error("immovable pair moved")
	}
}

func TestPositionalCorrection_OneImmovable(t *testing.T) {
	a := sphere(t, vec.New(0, 0, 0), vec.Zero, 1.0, 1.0)
	b := sphere(t, vec.New(1, 0, 0), vec.Zero, 1.0, 0)

	c := collide.Contact{A: a, B: b, Normal: vec.New(-1, 0, 0), Penetration: 0.4}

	r, _ := New(1.0)
	r.ResolveAll([]collide.Contact{c})

	// The movable participant absorbs the full correction.
	if math.Abs(a.Particle.Position.X+0.4) > 1e-12 {
		t.Errorf("A.x = %v, want -0.4", a.Particle.Position.X)
	}
	if b.Particle.Position.X != 1 {
		t.Errorf("immovable B moved to %v", b.Particle.Position)
	}
}

func TestVelocity_ElasticBounce(t *testing.T) {
	// Equal masses, head-on, restitution 1: velocities swap.
	a := sphere(t, vec.New(0, 0, 0), vec.New(1, 0, 0), 1.0, 1.0)
	b := sphere(t, vec.New(1.5, 0, 0), vec.New(-1, 0, 0), 1.0, 1.0)

	c := collide.Contact{A: a, B: b, Normal: vec.New(-1, 0, 0), Penetration: 0.5}

	r, _ := New(1.0)
	r.ResolveAll([]collide.Contact{c})

	if math.Abs(a.Particle.Velocity.X+1) > 1e-12 {
		t.Errorf("A velocity = %v, want -1", a.Particle.Velocity.X)
	}
	if math.Abs(b.Particle.Velocity.X-1) > 1e-12 {
		t.Errorf("B velocity = %v, want 1", b.Particle.Velocity.X)
	}
}

func TestVelocity_InelasticStop(t *testing.T) {
	a := sphere(t, vec.New(0, 0, 0), vec.New(1, 0, 0), 1.0, 1.0)
	b := sphere(t, vec.New(1.5, 0, 0), vec.New(-1, 0, 0), 1.0, 1.0)

	c := collide.Contact{A: a, B: b, Normal: vec.New(-1, 0, 0), Penetration: 0.5}

	r, _ := New(0.0)
	r.ResolveAll([]collide.Contact{c})

	// Restitution 0: both end with the shared normal velocity, zero here.
	if math.Abs(a.Particle.Velocity.X) > 1e-12 || math.Abs(b.Particle.Velocity.X) > 1e-12 {
		t.Errorf("velocities = %v, %v, want both 0",
			a.Particle.Velocity.X, b.Particle.Velocity.X)
	}
}

func TestVelocity_SeparatingPairUntouched(t *testing.T) {
	a := sphere(t, vec.New(0, 0, 0), vec.New(-1, 0, 0), 1.0, 1.0)
	b := sphere(t, vec.New(1.5, 0, 0), vec.New(1, 0, 0), 1.0, 1.0)

	c := collide.Contact{A: a, B: b, Normal: vec.New(-1, 0, 0), Penetration: 0.5}

	r, _ := New(1.0)
	r.ResolveAll([]collide.Contact{c})

	// Already separating along the normal: no impulse. Positions still
	// corrected, velocities untouched.
	if a.Particle.Velocity.X != -1 || b.Particle.Velocity.X != 1 {
		t.Errorf("separating pair got an impulse: %v, %v",
			a.Particle.Velocity, b.Particle.Velocity)
	}
}

func TestVelocity_ImmovableWall(t *testing.T) {
	s := sphere(t, vec.New(0, 0.5, 0), vec.New(0, -3, 0), 1.0, 1.0)
	pl, err := collide.NewPlane(vec.New(0, 1, 0), 0)
	if err != nil {
		t.Fatal(err)
	}

	c := collide.Contact{A: s, B: pl, Normal: vec.New(0, 1, 0), Penetration: 0.5}

	r, _ := New(1.0)
	r.ResolveAll([]collide.Contact{c})

	// Full elastic bounce off an infinite-mass plane reverses the normal
	// velocity.
	if math.Abs(s.Particle.Velocity.Y-3) > 1e-12 {
		t.Errorf("velocity.Y = %v, want 3", s.Particle.Velocity.Y)
	}
	// And the sphere is pushed fully out of the plane.
	if math.Abs(s.Particle.Position.Y-1.0) > 1e-12 {
		t.Errorf("position.Y = %v, want 1", s.Particle.Position.Y)
	}
}

func TestMomentumConserved(t *testing.T) {
	a := sphere(t, vec.New(0, 0, 0), vec.New(2, 0, 0), 1.0, 0.5) // mass 2
	b := sphere(t, vec.New(1.5, 0, 0), vec.Zero, 1.0, 1.0)       // mass 1

	before := a.Particle.Velocity.Scale(2).Add(b.Particle.Velocity)

	c := collide.Contact{A: a, B: b, Normal: vec.New(-1, 0, 0), Penetration: 0.5}
	r, _ := New(1.0)
	r.ResolveAll([]collide.Contact{c})

	after := a.Particle.Velocity.Scale(2).Add(b.Particle.Velocity)
	if math.Abs(after.X-before.X) > 1e-12 {
		t.Errorf("momentum changed: %v -> %v", before.X, after.X)
	}
}
