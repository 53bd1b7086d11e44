// Package mesh implements a half-edge representation of 2-manifold triangle
// meshes (possibly with boundary).
//
// What
//
//   - Build a topology from any Source (ordered positions + CCW index triples).
//   - Query counts, positions, vertex fans, face neighborhoods and boundary status.
//   - Edit in place: SplitEdge inserts a vertex on an edge and re-triangulates
//     the one or two incident faces.
//   - Subdivide replaces every triangle by four, placing edge points through a
//     pluggable Interpolator (Linear, Lerp, OnSphere, Normalized).
//   - Face/vertex normals and face areas are recomputed after every structural edit.
//   - Validate walks the whole structure and reports invariant violations.
//
// Representation
//
//	Vertices, faces and half-edges live in three flat arenas owned by Mesh.
//	Every navigational link (Vertex.Outgoing, Face.HalfEdge, HalfEdge.Next,
//	Prev, Opposite) is a plain index into those arenas. A HalfEdge stores the
//	vertex it points TO; its origin is the target of its opposite.
//	Open edges are patched with synthetic boundary half-edges whose Face is
//	Boundary; those are chained into closed loops through Next/Prev.
//
// Invariants (hold after Build, SplitEdge and Subdivide)
//
//  1. he[he[e].Opposite].Opposite == e
//  2. interior e: Next∘Next∘Next(e) == e and Prev∘Prev∘Prev(e) == e
//  3. he[e].Face == he[Next(e)].Face == he[Prev(e)].Face
//  4. boundary half-edges form closed Next/Prev loops
//  5. EdgeCount() == AllHalfEdgeCount()/2
//
// Errors
//
//	Queries never fail: out-of-range indices yield zero values, nil slices or
//	false. Mutations fail closed with sentinel errors (errors.Is) and leave the
//	mesh untouched. Validate is advisory and never repairs anything.
//
// Concurrency
//
//	A Mesh is not safe for concurrent mutation. Reads may run in parallel only
//	while no mutation is in progress.
//
// Complexity (V = vertices, F = faces, H = half-edges, d = vertex degree)
//
//   - Build:            O(V + H) expected
//   - Vertex fan walks: O(d)
//   - FindHalfEdge:     O(H)
//   - UniqueHalfEdges:  O(H log H)
//   - SplitEdge:        O(V + F) (normals are recomputed in full)
//   - Subdivide:        O(V + H)
//   - Validate:         O(H)
package mesh
