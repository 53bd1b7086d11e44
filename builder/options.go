// SPDX-License-Identifier: MIT
// Package: hemesh/builder
//
// options.go — functional options for the builder package.
//
// Contract (strict):
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Producers themselves never panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/spatial/r3"
)

// BuilderOption customizes a producer by mutating a builderConfig instance
// before construction begins.
// Complexity: applying N options costs O(N) time, O(1) space.
type BuilderOption func(*builderConfig)

// WithRadius sets the circumradius of solids.
// Panics if r <= 0 or r is not finite.
func WithRadius(r float64) BuilderOption {
	if r <= 0 || math.IsInf(r, 0) || math.IsNaN(r) {
		panic("builder: WithRadius(r<=0)")
	}
	return func(c *builderConfig) {
		c.radius = r
	}
}

// WithCenter translates every produced position by p. For grids p is the
// center of the plane.
func WithCenter(p r3.Vec) BuilderOption {
	return func(c *builderConfig) {
		c.center = p
	}
}

// WithSize sets the grid extent along X (w) and Y (h).
// Panics if either is <= 0.
func WithSize(w, h float64) BuilderOption {
	if w <= 0 || h <= 0 {
		panic("builder: WithSize(w<=0 || h<=0)")
	}
	return func(c *builderConfig) {
		c.width, c.height = w, h
	}
}

// WithJitter sets the maximal random displacement of produced vertices:
// solids scale each vertex radius by (1 + d), grids offset Z by d, with d
// drawn uniformly from [-amount, +amount]. Jitter needs an RNG (WithSeed or
// WithRand). Panics if amount < 0.
func WithJitter(amount float64) BuilderOption {
	if amount < 0 || math.IsNaN(amount) {
		panic("builder: WithJitter(amount<0)")
	}
	return func(c *builderConfig) {
		c.jitter = amount
	}
}

// WithRand provides an explicit RNG for jittered output.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
// Use this in tests and sketches to lock outcomes.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}
