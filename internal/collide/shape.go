package collide

import (
	"fmt"
	"math"

	"github.com/partix-sim/partix/internal/particle"
	"github.com/partix-sim/partix/internal/vec"
)

// Kind tags a shape for narrow-phase dispatch.
type Kind int

const (
	KindSphere Kind = iota
	KindPlane
)

func (k Kind) String() string {
	switch k {
	case KindSphere:
		return "sphere"
	case KindPlane:
		return "plane"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Shape is a collidable attached to, not owning, a particle. A plane has
// no particle and behaves as infinite mass.
type Shape struct {
	Kind     Kind
	Particle *particle.Particle

	// Sphere.
	Radius float64

	// Plane: unit normal and signed offset from the origin along it.
	Normal vec.Vec3
	Offset float64
}

func NewSphere(p *particle.Particle, radius float64) (*Shape, error) {
	if p == nil {
		return nil, fmt.Errorf("collide: sphere requires a particle")
	}
	if radius <= 0 || math.IsNaN(radius) || math.IsInf(radius, 0) {
		return nil, fmt.Errorf("collide: sphere radius must be positive, got %v", radius)
	}
	return &Shape{Kind: KindSphere, Particle: p, Radius: radius}, nil
}

func NewPlane(normal vec.Vec3, offset float64) (*Shape, error) {
	if !normal.IsValid() || normal.LenSq() == 0 {
		return nil, fmt.Errorf("collide: plane normal must be a non-zero finite vector")
	}
	if math.IsNaN(offset) || math.IsInf(offset, 0) {
		return nil, fmt.Errorf("collide: plane offset must be finite, got %v", offset)
	}
	return &Shape{Kind: KindPlane, Normal: normal.Normalized(), Offset: offset}, nil
}

// Center returns the sphere's center, which is the owning particle's
// current position.
func (s *Shape) Center() vec.Vec3 {
	return s.Particle.Position
}
