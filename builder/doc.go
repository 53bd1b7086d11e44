// Package builder produces procedural mesh sources: the Platonic solids
// (with the icosahedron in its classic pole-and-rings layout) and
// triangulated grid planes. Every producer returns a *mesh.Data, ready for
// mesh.NewFromSource.
//
// The package offers the following key components:
//
//   - Configuration primitives:
//     – BuilderOption:  a function that mutates builderConfig before use.
//     – builderConfig:  radius, center, plane size, jitter amplitude, RNG.
//   - Producers:
//     – NewIcosahedron: 12 vertices, 20 faces, never fails.
//     – PlatonicSolid:  Tetrahedron, Cube (12 triangles), Octahedron,
//     Dodecahedron (36 triangles), Icosahedron.
//     – Grid:           rows×cols vertices, 2 triangles per cell, facing +Z.
//   - Composition:
//     – Compose:        runs several Constructors into one Data; each part
//     is appended as a separate connected component.
//   - Validation helpers and method-name constants for error context.
//
// Guarantees:
//
//   - Every face is CCW when seen from outside (solids) or from +Z (grids),
//     and every solid is closed: building it yields no boundary half-edges.
//   - Determinism: equal options (and equal seeds) produce equal Data.
//   - Fast-fail on meaningless option values via panics in option
//     constructors; producers return sentinel errors and never panic.
//
// See individual function documentation for detailed contracts and
// complexity notes.
package builder
