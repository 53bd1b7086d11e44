// SPDX-License-Identifier: MIT
// Package: hemesh/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract (strict):
//   - One orchestrator: Compose(bopts, cons...). Creates the Data, resolves cfg, runs cons in order.
//   - Public factories are declared here and implemented in impl_*.go.
//   - Functional options (BuilderOption) resolve into an immutable builderConfig (no global state).
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical Data.
//   - Safety: never panic; return sentinel errors from constructors.

package builder

import (
	"fmt"

	"github.com/saltbread1/hemesh/mesh"
)

// Constructor appends one part to d using the resolved builderConfig.
// Constructors MUST:
//   - Validate parameters before appending anything and return sentinel errors (no panics).
//   - Offset their triangle indices by len(d.Vertices) at entry, so parts never share vertices.
//   - Preserve determinism for the same config and call order.
type Constructor func(d *mesh.Data, cfg builderConfig) error

// Compose creates an empty mesh.Data, resolves the builder configuration from
// bopts, and applies all constructors in order. Each constructor contributes
// a separate connected component. Any constructor error is wrapped with the
// context "Compose: %w" and returned immediately.
//
// Complexity:
//   - Resolving options: O(len(bopts)).
//   - Applying K constructors: Σ cost of each constructor.
func Compose(bopts []BuilderOption, cons ...Constructor) (*mesh.Data, error) {
	d := &mesh.Data{}
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("%s: nil constructor at index %d: %w", MethodCompose, i, ErrConstructFailed)
		}
		if err := fn(d, cfg); err != nil {
			return nil, fmt.Errorf("%s: %w", MethodCompose, err)
		}
	}

	return d, nil
}

// PlatonicSolid builds one solid as a standalone Data.
// Options: WithRadius, WithCenter, WithJitter (+ WithSeed/WithRand).
// Errors: ErrOptionViolation (unknown name), ErrNeedRandSource, ErrConstructFailed.
func PlatonicSolid(name PlatonicName, opts ...BuilderOption) (*mesh.Data, error) {
	return Compose(opts, Solid(name))
}

// NewIcosahedron builds the 12-vertex, 20-face icosahedron. It cannot fail:
// jitter is applied only when an RNG is configured.
func NewIcosahedron(opts ...BuilderOption) *mesh.Data {
	cfg := newBuilderConfig(opts...)
	d := &mesh.Data{}
	verts, faces := icosahedronUnit()
	appendSolid(d, cfg, verts, faces)

	return d
}

// Grid builds a rows×cols vertex plane with two CCW triangles per cell.
// Options: WithSize, WithCenter, WithJitter (+ WithSeed/WithRand).
// Errors: ErrTooFewVertices (rows or cols < MinGridDim), ErrNeedRandSource.
func Grid(rows, cols int, opts ...BuilderOption) (*mesh.Data, error) {
	return Compose(opts, Plane(rows, cols))
}
