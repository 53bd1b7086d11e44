// SPDX-License-Identifier: MIT
// Package: hemesh/builder
//
// impl_platonic.go — implementation of the Solid(name) constructor.
//
// Contract:
//   • name ∈ {Tetrahedron, Cube, Octahedron, Dodecahedron, Icosahedron}.
//   • Unknown name → ErrOptionViolation.
//   • Positions: center + radius·(1 + d)·unit, with d the per-vertex jitter
//     (0 unless WithJitter and an RNG are configured).
//   • Faces keep the canonical order of variants_platonic.go, offset by the
//     number of vertices already in the Data.
//
// Complexity:
//   • Time: O(V+F) for the selected solid (V≤20, F≤36).

package builder

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/saltbread1/hemesh/mesh"
)

// Solid returns a Constructor that appends the chosen Platonic solid.
func Solid(name PlatonicName) Constructor {
	return func(d *mesh.Data, cfg builderConfig) error {
		verts, faces, err := platonicUnit(name)
		if err != nil {
			return fmt.Errorf("%s: %w", MethodPlatonicSolid, err)
		}
		if err := validateRand(MethodPlatonicSolid, cfg); err != nil {
			return err
		}
		appendSolid(d, cfg, verts, faces)

		return nil
	}
}

// appendSolid places unit positions on the configured sphere and appends the
// faces with their indices shifted past the existing vertices.
func appendSolid(d *mesh.Data, cfg builderConfig, unit []r3.Vec, faces []mesh.Triangle) {
	base := len(d.Vertices)
	for _, u := range unit {
		r := cfg.radius * (1 + cfg.displacement())
		d.AddVertex(r3.Add(cfg.center, r3.Scale(r, u)))
	}
	for _, t := range faces {
		d.AddTriangle(base+t[0], base+t[1], base+t[2])
	}
}
