// SPDX-License-Identifier: MIT
// Package: hemesh/builder
//
// config.go — internal configuration and deterministic defaults.
//
// Design:
//   • builderConfig is the single source of truth for all builder knobs.
//   • Defaults are deterministic and documented; no globals.
//   • newBuilderConfig applies options in-order (later overrides earlier).
//
// Deterministic defaults:
//   • radius = DefaultRadius (1.0)
//   • center = origin
//   • width  = height = DefaultSize (1.0)
//   • jitter = 0 (exact positions)
//   • rng    = nil (pure/deterministic unless seeded)

package builder

import (
	"math/rand"

	"gonum.org/v1/gonum/spatial/r3"
)

// builderConfig aggregates all knobs used by producers.
// It is passed by VALUE to constructors (immutable to callers).
type builderConfig struct {
	// Circumradius of solids.
	radius float64
	// Translation applied to every produced position.
	center r3.Vec
	// Grid extent along X and Y.
	width, height float64
	// Maximal random displacement: radial for solids, along Z for grids.
	jitter float64
	// RNG for jitter; nil means “no randomness”.
	rng *rand.Rand
}

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order.
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		radius: DefaultRadius,
		width:  DefaultSize,
		height: DefaultSize,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// displacement draws one jitter offset in [-jitter, +jitter].
// Returns 0 when jitter is disabled or no RNG is configured.
func (c builderConfig) displacement() float64 {
	if c.jitter == 0 || c.rng == nil {
		return 0
	}
	return (2*c.rng.Float64() - 1) * c.jitter
}

// needsRand reports whether jitter is requested without an RNG to draw it.
func (c builderConfig) needsRand() bool {
	return c.jitter > 0 && c.rng == nil
}
