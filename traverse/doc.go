// Package traverse provides breadth-first walks over a mesh.Mesh: across
// faces (through shared edges) and across vertices (through edges).
//
// What
//
//   - Faces steps between triangles that share an edge; Vertices steps
//     along edges, so its rings are the k-rings of the start vertex.
//   - The Result is indexed by face or vertex:
//   - Order:  visit sequence, start first
//   - Depth:  ring number, mesh.NoIndex when not reached
//   - Parent: predecessor in the walk's tree
//   - OnVisit sees every reached element once and may abort the walk.
//   - WithFilterNeighbor cuts steps; FlatterThan builds the filter that stops
//     region growth at creases.
//   - MaxDepth bounds the walk to a k-ring (d>0), 0 means no limit.
//   - Components splits the faces of a mesh into edge-connected parts.
//
// Determinism
//
//	Neighbors are taken from mesh.FaceNeighbors / mesh.AdjacentVertices,
//	which follow the half-edge loops in a fixed order, so the visit sequence
//	is reproducible for a given mesh.
//
// Complexity (F = faces, V = vertices, H = half-edges)
//
//   - Faces:      O(F + H) time, O(F) memory.
//   - Vertices:   O(V + H) time, O(V) memory.
//   - Components: O(F + H) time, O(F) memory.
//
// Usage
//
//	res, err := traverse.Faces(m, 0,
//	    traverse.WithContext(ctx),
//	    traverse.WithMaxDepth(3),
//	    traverse.WithFilterNeighbor(traverse.FlatterThan(m, math.Pi/6)),
//	)
//
// Errors
//
//   - ErrMeshNil          if the mesh pointer is nil.
//   - ErrStartNotFound    if the start index is out of range.
//   - ErrOptionViolation  if an Option is invalid (e.g. negative MaxDepth).
//   - context errors on cancellation.
//   - Wrapped user-supplied hook errors from OnVisit.
package traverse
