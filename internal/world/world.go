package world

import (
	"context"
	"fmt"

	"github.com/partix-sim/partix/internal/collide"
	"github.com/partix-sim/partix/internal/force"
	"github.com/partix-sim/partix/internal/particle"
	"github.com/partix-sim/partix/internal/resolve"
	"github.com/partix-sim/partix/internal/vec"
)

type attachment struct {
	gen    force.Generator
	target Handle
}

// World owns the particle registry and runs the per-step pipeline:
// force generators, integration, contact detection, contact resolution.
// It is not safe for concurrent use.
type World struct {
	cfg Config

	particles map[Handle]*particle.Particle
	order     []Handle
	nextPart  Handle

	generators map[GeneratorHandle]attachment
	genOrder   []GeneratorHandle
	nextGen    GeneratorHandle

	gravity *force.Gravity

	detector *collide.Detector
	resolver *resolve.Resolver

	metrics   []Metric
	observers []Observer

	steps int
	time  float64
}

func New(cfg Config) (*World, error) {
	if cfg.Iterations < 1 {
		return nil, fmt.Errorf("world: iterations must be at least 1, got %d", cfg.Iterations)
	}
	resolver, err := resolve.New(cfg.Restitution)
	if err != nil {
		return nil, err
	}
	return &World{
		cfg:        cfg,
		particles:  make(map[Handle]*particle.Particle),
		generators: make(map[GeneratorHandle]attachment),
		detector:   collide.NewDetector(),
		resolver:   resolver,
	}, nil
}

func (w *World) AddMetric(m Metric)     { w.metrics = append(w.metrics, m) }
func (w *World) AddObserver(o Observer) { w.observers = append(w.observers, o) }

// SetGravity applies a uniform acceleration to every finite-mass particle
// each step. A zero vector disables it.
func (w *World) SetGravity(acceleration vec.Vec3) {
	if acceleration == vec.Zero {
		w.gravity = nil
		return
	}
	w.gravity = force.NewGravity(acceleration)
}

// CreateParticle registers a particle and returns its handle.
func (w *World) CreateParticle(position, velocity vec.Vec3, inverseMass, damping float64) (Handle, error) {
	p, err := particle.New(position, velocity, inverseMass, damping)
	if err != nil {
		return 0, err
	}
	h := w.nextPart
	w.nextPart++
	w.particles[h] = p
	w.order = append(w.order, h)
	return h, nil
}

func (w *World) lookup(h Handle) (*particle.Particle, error) {
	p, ok := w.particles[h]
	if !ok {
		return nil, fmt.Errorf("%w: particle %d", ErrInvalidHandle, h)
	}
	return p, nil
}

// AddForce accumulates f onto the particle for the next Step.
func (w *World) AddForce(h Handle, f vec.Vec3) error {
	p, err := w.lookup(h)
	if err != nil {
		return err
	}
	p.AddForce(f)
	return nil
}

func (w *World) Position(h Handle) (vec.Vec3, error) {
	p, err := w.lookup(h)
	if err != nil {
		return vec.Zero, err
	}
	return p.Position, nil
}

func (w *World) Velocity(h Handle) (vec.Vec3, error) {
	p, err := w.lookup(h)
	if err != nil {
		return vec.Zero, err
	}
	return p.Velocity, nil
}

// AttachGenerator binds a force generator to a particle. The generator
// contributes a force every step until detached.
func (w *World) AttachGenerator(h Handle, g force.Generator) (GeneratorHandle, error) {
	if _, err := w.lookup(h); err != nil {
		return 0, err
	}
	gh := w.nextGen
	w.nextGen++
	w.generators[gh] = attachment{gen: g, target: h}
	w.genOrder = append(w.genOrder, gh)
	return gh, nil
}

// AttachSpring anchors the particle to a fixed point with Hooke's law.
func (w *World) AttachSpring(h Handle, anchor vec.Vec3, k, restLength float64) (GeneratorHandle, error) {
	s, err := force.NewSpring(anchor, k, restLength)
	if err != nil {
		return 0, err
	}
	return w.AttachGenerator(h, s)
}

// AttachField subjects the particle to an inverse-square field centered
// on source. Positive strength attracts, negative repels. A non-positive
// minSeparation falls back to the package default.
func (w *World) AttachField(h Handle, source vec.Vec3, strength, minSeparation float64) (GeneratorHandle, error) {
	f, err := force.NewInverseSquareField(source, strength, minSeparation)
	if err != nil {
		return 0, err
	}
	return w.AttachGenerator(h, f)
}

func (w *World) DetachGenerator(gh GeneratorHandle) error {
	if _, ok := w.generators[gh]; !ok {
		return fmt.Errorf("%w: generator %d", ErrInvalidHandle, gh)
	}
	delete(w.generators, gh)
	for i, existing := range w.genOrder {
		if existing == gh {
			w.genOrder = append(w.genOrder[:i], w.genOrder[i+1:]...)
			break
		}
	}
	return nil
}

// AttachSphere makes the particle collidable with the given radius.
func (w *World) AttachSphere(h Handle, radius float64) error {
	p, err := w.lookup(h)
	if err != nil {
		return err
	}
	s, err := collide.NewSphere(p, radius)
	if err != nil {
		return err
	}
	w.detector.Add(s)
	return nil
}

// AddPlane registers an immovable half-space boundary.
func (w *World) AddPlane(normal vec.Vec3, offset float64) error {
	pl, err := collide.NewPlane(normal, offset)
	if err != nil {
		return err
	}
	w.detector.Add(pl)
	return nil
}

// Particles returns the registered particles in creation order.
func (w *World) Particles() []*particle.Particle {
	out := make([]*particle.Particle, 0, len(w.order))
	for _, h := range w.order {
		out = append(out, w.particles[h])
	}
	return out
}

func (w *World) Time() float64 { return w.time }

// Step advances the world by dt seconds: generator forces are accumulated
// on top of any external AddForce calls, every particle integrates (which
// clears its accumulator), then contacts are detected and resolved. The
// phases run strictly in that order; all contacts of a pass are collected
// before any resolution mutates state.
func (w *World) Step(dt float64) error {
	for _, gh := range w.genOrder {
		att := w.generators[gh]
		p := w.particles[att.target]
		p.AddForce(att.gen.Force(p, dt))
	}
	if w.gravity != nil {
		for _, h := range w.order {
			p := w.particles[h]
			p.AddForce(w.gravity.Force(p, dt))
		}
	}

	for _, h := range w.order {
		w.particles[h].Integrate(dt)
	}

	var firstPass []collide.Contact
	for it := 0; it < w.cfg.Iterations; it++ {
		contacts := w.detector.Detect()
		if it == 0 {
			firstPass = contacts
			if w.cfg.Iterations > 1 {
				// Later passes reuse the detector's buffer; keep the
				// first pass intact for metrics and observers.
				firstPass = append([]collide.Contact(nil), contacts...)
			}
		}
		if len(contacts) == 0 {
			break
		}
		w.resolver.ResolveAll(contacts)
	}

	w.steps++
	w.time += dt

	if w.cfg.ValidateState {
		for _, h := range w.order {
			if !w.particles[h].IsValid() {
				return &StepError{Step: w.steps, Time: w.time, Wrapped: ErrInvalidState}
			}
		}
	}

	snap := Snapshot{Time: w.time, Particles: w.Particles(), Contacts: firstPass}
	for _, m := range w.metrics {
		m.Observe(snap)
	}
	for _, o := range w.observers {
		o.OnStep(snap)
	}

	return nil
}

// Run executes a fixed-timestep loop, recording one state row per step.
func (w *World) Run(ctx context.Context, cfg RunConfig) (*Result, error) {
	if cfg.Dt <= 0 {
		return nil, fmt.Errorf("world: dt must be positive, got %f", cfg.Dt)
	}
	if cfg.Duration <= 0 {
		return nil, fmt.Errorf("world: duration must be positive, got %f", cfg.Duration)
	}

	steps := int(cfg.Duration / cfg.Dt)
	result := &Result{
		Times:   make([]float64, 0, steps+1),
		States:  make([][]float64, 0, steps+1),
		Metrics: make(map[string]float64),
	}

	for _, m := range w.metrics {
		m.Reset()
	}

	result.Times = append(result.Times, w.time)
	result.States = append(result.States, w.stateRow())

	for i := 0; i < steps; i++ {
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		default:
		}

		if err := w.Step(cfg.Dt); err != nil {
			return result, err
		}
		result.StepsTaken++

		result.Times = append(result.Times, w.time)
		result.States = append(result.States, w.stateRow())
	}

	for _, m := range w.metrics {
		result.Metrics[m.Name()] = m.Value()
	}

	return result, nil
}

// stateRow flattens particle state into position and velocity triples in
// creation order.
func (w *World) stateRow() []float64 {
	row := make([]float64, 0, len(w.order)*6)
	for _, h := range w.order {
		p := w.particles[h]
		row = append(row,
			p.Position.X, p.Position.Y, p.Position.Z,
			p.Velocity.X, p.Velocity.Y, p.Velocity.Z,
		)
	}
	return row
}
