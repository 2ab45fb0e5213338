// Package world orchestrates the per-step simulation pipeline for point
// masses:
//
//   - force generators and external AddForce calls accumulate onto each
//     particle
//   - every particle integrates, consuming and clearing its accumulator
//   - the detector enumerates shape pairs into a contact list
//   - the resolver applies positional correction and impulses
//
// The phases run strictly sequentially within a Step; a World is not safe
// for concurrent use.
//
// # Example
//
//	w, _ := world.New(world.DefaultConfig())
//	h, _ := w.CreateParticle(pos, vel, 1.0, 0.995)
//	w.AttachSphere(h, 0.5)
//	w.AddPlane(vec.New(0, 1, 0), 0)
//	result, _ := w.Run(ctx, world.RunConfig{Dt: 0.01, Duration: 10})
package world
