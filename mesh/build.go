// SPDX-License-Identifier: MIT
// Package: hemesh/mesh
//
// build.go — construction of the half-edge arenas from a Source.
//
// Stages:
//   1. Validate every triangle (index range, repeated vertex, duplicate directed edge).
//   2. Three half-edges per triangle, chained into a 3-cycle; one Face each.
//   3. Resolve opposites through the (origin, destination) lookup; synthesize
//      boundary half-edges for edges without a back face.
//   4. Stitch boundary half-edges into closed loops.
//   5. Recompute normals.
//
// Nothing is written to the Mesh until all stages succeed.

package mesh

import "fmt"

const methodBuild = "Build"

// edgeKey identifies a directed vertex pair (origin → destination).
type edgeKey struct {
	from, to int
}

// undirected returns the key with the smaller index first.
func (k edgeKey) undirected() edgeKey {
	if k.from > k.to {
		return edgeKey{from: k.to, to: k.from}
	}
	return k
}

// Build replaces the whole topology with the one described by src.
//
// Every position becomes a Vertex; every triangle (v0, v1, v2) yields the
// half-edges v0→v1, v1→v2, v2→v0 (each storing its destination) and one Face
// referencing v0→v1. A vertex's Outgoing is the first half-edge seen leaving
// it, then redirected to its outgoing boundary half-edge if it has one.
// Edges without a reverse triangle get a synthetic boundary half-edge.
//
// Errors (the mesh is left untouched):
//   - ErrNilSource: src == nil.
//   - ErrVertexOutOfRange: a triangle indexes outside Positions().
//   - ErrDegenerateTriangle: a triangle repeats a vertex.
//   - ErrDuplicateHalfEdge: two triangles share a directed edge.
//
// Complexity: O(V + F) expected time and space.
func (m *Mesh) Build(src Source) error {
	if src == nil {
		return fmt.Errorf("%s: %w", methodBuild, ErrNilSource)
	}
	positions := src.Positions()
	triangles := src.Triangles()

	for i, t := range triangles {
		for _, idx := range t {
			if idx < 0 || idx >= len(positions) {
				return fmt.Errorf("%s: triangle %d %v references vertex %d of %d: %w",
					methodBuild, i, t, idx, len(positions), ErrVertexOutOfRange)
			}
		}
		if t[0] == t[1] || t[1] == t[2] || t[2] == t[0] {
			return fmt.Errorf("%s: triangle %d %v: %w", methodBuild, i, t, ErrDegenerateTriangle)
		}
	}

	vertices := make([]Vertex, len(positions))
	for i, p := range positions {
		vertices[i] = Vertex{Position: p, Outgoing: NoIndex}
	}

	// 3 interior half-edges per face; boundary ones are appended after them.
	halfEdges := make([]HalfEdge, 0, 4*len(triangles))
	faces := make([]Face, 0, len(triangles))
	lookup := make(map[edgeKey]int, 3*len(triangles))

	for f, t := range triangles {
		base := len(halfEdges)
		for k := 0; k < 3; k++ {
			key := edgeKey{from: t[k], to: t[(k+1)%3]}
			if prev, dup := lookup[key]; dup {
				return fmt.Errorf("%s: triangle %d repeats directed edge %d→%d of triangle %d: %w",
					methodBuild, f, key.from, key.to, halfEdges[prev].Face, ErrDuplicateHalfEdge)
			}
			h := newHalfEdge(key.to, f)
			h.Next = base + (k+1)%3
			h.Prev = base + (k+2)%3
			halfEdges = append(halfEdges, h)
			lookup[key] = base + k

			// first-seen wins; boundary redirection below may override
			if vertices[key.from].Outgoing == NoIndex {
				vertices[key.from].Outgoing = base + k
			}
		}
		faces = append(faces, Face{HalfEdge: base})
	}

	interior := len(halfEdges)
	for e := 0; e < interior; e++ {
		if halfEdges[e].Opposite != NoIndex {
			continue
		}
		to := halfEdges[e].Vertex
		from := halfEdges[halfEdges[e].Prev].Vertex
		if o, ok := lookup[edgeKey{from: to, to: from}]; ok {
			halfEdges[e].Opposite = o
			halfEdges[o].Opposite = e
			continue
		}

		// no back face: patch the open side with a boundary half-edge to→from
		b := len(halfEdges)
		bh := newHalfEdge(from, Boundary)
		bh.Opposite = e
		halfEdges = append(halfEdges, bh)
		lookup[edgeKey{from: to, to: from}] = b
		halfEdges[e].Opposite = b
		vertices[to].Outgoing = b
	}

	stitchBoundary(halfEdges, interior)

	m.vertices = vertices
	m.faces = faces
	m.halfEdges = halfEdges
	m.RecalculateNormals()

	return nil
}

// stitchBoundary links the boundary half-edges halfEdges[first:] into loops.
//
// For a boundary half-edge b ending at vertex v, its successor is the boundary
// half-edge leaving v that is reached first when rotating around v through
// interior faces, starting from b's opposite (c = Opposite(Prev(c))). This
// picks the right loop even at vertices where two boundary loops touch. When
// the rotation fails (non-manifold fan), the first unclaimed boundary
// half-edge leaving v, by index, is used instead. Unresolvable successors stay
// NoIndex and are reported by Validate.
func stitchBoundary(halfEdges []HalfEdge, first int) {
	if first >= len(halfEdges) {
		return
	}

	claimed := make(map[int]bool, len(halfEdges)-first)
	leaving := make(map[int][]int, len(halfEdges)-first) // origin → boundary half-edges
	for b := first; b < len(halfEdges); b++ {
		origin := halfEdges[halfEdges[b].Opposite].Vertex
		leaving[origin] = append(leaving[origin], b)
	}

	for b := first; b < len(halfEdges); b++ {
		next := rotateToBoundary(halfEdges, halfEdges[b].Opposite)
		if next == NoIndex || claimed[next] {
			next = NoIndex
			for _, cand := range leaving[halfEdges[b].Vertex] {
				if cand != b && !claimed[cand] {
					next = cand
					break
				}
			}
		}
		if next == NoIndex {
			continue
		}
		claimed[next] = true
		halfEdges[b].Next = next
		halfEdges[next].Prev = b
	}
}

// rotateToBoundary walks clockwise around the origin of the interior
// half-edge c until it finds an outgoing boundary half-edge.
func rotateToBoundary(halfEdges []HalfEdge, c int) int {
	for steps := 0; steps < len(halfEdges); steps++ {
		p := halfEdges[c].Prev
		if p == NoIndex {
			return NoIndex
		}
		c = halfEdges[p].Opposite
		if c == NoIndex {
			return NoIndex
		}
		if halfEdges[c].IsBoundary() {
			return c
		}
	}

	return NoIndex
}
