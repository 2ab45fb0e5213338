package scene

import (
	"fmt"

	"github.com/partix-sim/partix/internal/config"
	"github.com/partix-sim/partix/internal/vec"
	"github.com/partix-sim/partix/internal/world"
)

func toVec(v config.Vec) vec.Vec3 {
	return vec.New(v[0], v[1], v[2])
}

// Build assembles a world from a scene configuration. The returned
// handles correspond to cfg.Particles by index.
func Build(cfg *config.Config) (*world.World, []world.Handle, error) {
	w, err := world.New(world.Config{
		Restitution:   cfg.Restitution,
		Iterations:    cfg.Iterations,
		ValidateState: true,
	})
	if err != nil {
		return nil, nil, err
	}

	handles := make([]world.Handle, 0, len(cfg.Particles))
	for i, pc := range cfg.Particles {
		damping := pc.Damping
		if damping == 0 {
			damping = config.DefaultDamping
		}
		h, err := w.CreateParticle(toVec(pc.Position), toVec(pc.Velocity), pc.InverseMass, damping)
		if err != nil {
			return nil, nil, fmt.Errorf("scene: particle %d: %w", i, err)
		}
		if pc.Radius > 0 {
			if err := w.AttachSphere(h, pc.Radius); err != nil {
				return nil, nil, fmt.Errorf("scene: particle %d: %w", i, err)
			}
		}
		handles = append(handles, h)
	}

	for i, pl := range cfg.Planes {
		if err := w.AddPlane(toVec(pl.Normal), pl.Offset); err != nil {
			return nil, nil, fmt.Errorf("scene: plane %d: %w", i, err)
		}
	}

	for i, sp := range cfg.Springs {
		if sp.Particle < 0 || sp.Particle >= len(handles) {
			return nil, nil, fmt.Errorf("scene: spring %d: particle index %d out of range", i, sp.Particle)
		}
		if _, err := w.AttachSpring(handles[sp.Particle], toVec(sp.Anchor), sp.K, sp.RestLength); err != nil {
			return nil, nil, fmt.Errorf("scene: spring %d: %w", i, err)
		}
	}

	for i, fc := range cfg.Fields {
		if fc.Particle < 0 || fc.Particle >= len(handles) {
			return nil, nil, fmt.Errorf("scene: field %d: particle index %d out of range", i, fc.Particle)
		}
		if _, err := w.AttachField(handles[fc.Particle], toVec(fc.Source), fc.Strength, fc.MinSeparation); err != nil {
			return nil, nil, fmt.Errorf("scene: field %d: %w", i, err)
		}
	}

	w.SetGravity(toVec(cfg.Gravity))

	return w, handles, nil
}
