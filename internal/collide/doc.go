// Package collide detects penetrating shape pairs.
//
// The broad phase enumerates every unordered pair of registered shapes
// exactly once per pass. The narrow phase is selected from a table keyed
// by the pair of shape kinds, so each pairwise algorithm (sphere-sphere,
// sphere-plane) exists in exactly one place regardless of registration
// order. Detection only produces [Contact] records; it never mutates
// particle state.
package collide
