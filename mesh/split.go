// SPDX-License-Identifier: MIT
// Package: hemesh/mesh
//
// split.go — in-place edge split.
//
// Interior edge a→b between faces (a,b,c) and (b,a,d), new vertex n:
//
//	      c                 c
//	     ╱ ╲               ╱│╲
//	    a───b     ⇒       a─n─b
//	     ╲ ╱               ╲│╱
//	      d                 d
//
//	(a,b,c) → (a,n,c) + (n,b,c)      1 vertex, 2 faces, 6 half-edges
//	(b,a,d) → (b,n,d) + (n,a,d)
//
// Boundary edge: only the interior triangle is split; the boundary loop gains
// one half-edge (1 vertex, 1 face, 4 half-edges).
//
// Every precondition is checked before the first write.

package mesh

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"
)

const methodSplitEdge = "SplitEdge"

// SplitEdgeBetween splits the edge joining a and b at p.
// Errors: ErrHalfEdgeNotFound when no half-edge runs a→b, otherwise see SplitEdge.
func (m *Mesh) SplitEdgeBetween(a, b int, p r3.Vec) error {
	e, ok := m.FindHalfEdge(a, b)
	if !ok {
		return fmt.Errorf("%s(%d→%d): %w", methodSplitEdge, a, b, ErrHalfEdgeNotFound)
	}
	return m.SplitEdge(e, p)
}

// SplitEdge inserts a new vertex at p on the edge of half-edge e and
// re-triangulates the incident faces. The new vertex gets index
// VertexCount()-1 and exactly position p. Normals are recomputed.
//
// e may be either half of the edge, including its boundary half.
// EdgeCount grows by 3 for an interior edge and by 2 for a boundary edge.
//
// Errors (the mesh is left untouched):
//   - ErrHalfEdgeOutOfRange: e is not a half-edge index.
//   - ErrBrokenTopology: a required Next/Prev/Opposite/Face link is
//     unresolved, or both halves of the edge are boundary half-edges.
func (m *Mesh) SplitEdge(e int, p r3.Vec) error {
	if !m.validHalfEdge(e) {
		return fmt.Errorf("%s(%d): %w", methodSplitEdge, e, ErrHalfEdgeOutOfRange)
	}
	o := m.halfEdges[e].Opposite
	if !m.validHalfEdge(o) || m.halfEdges[o].Opposite != e {
		return fmt.Errorf("%s(%d): unresolved opposite: %w", methodSplitEdge, e, ErrBrokenTopology)
	}
	// the interior side always carries the split
	if m.halfEdges[e].IsBoundary() {
		e, o = o, e
	}
	if m.halfEdges[e].IsBoundary() {
		return fmt.Errorf("%s(%d): both sides are boundary: %w", methodSplitEdge, e, ErrBrokenTopology)
	}
	for _, link := range []int{m.halfEdges[e].Next, m.halfEdges[e].Prev, m.halfEdges[o].Next, m.halfEdges[o].Prev} {
		if !m.validHalfEdge(link) {
			return fmt.Errorf("%s(%d): unresolved next/prev: %w", methodSplitEdge, e, ErrBrokenTopology)
		}
	}
	for _, h := range []int{e, o} {
		if f := m.halfEdges[h].Face; f != Boundary && (f < 0 || f >= len(m.faces)) {
			return fmt.Errorf("%s(%d): face %d out of range: %w", methodSplitEdge, e, f, ErrBrokenTopology)
		}
	}

	if m.halfEdges[o].IsBoundary() {
		m.splitBoundary(e, o, p)
	} else {
		m.splitInterior(e, o, p)
	}
	m.RecalculateNormals()

	return nil
}

// splitInterior splits e (a→b, face (a,b,c)) and o (b→a, face (b,a,d)).
func (m *Mesh) splitInterior(e, o int, p r3.Vec) {
	he := m.halfEdges
	en, ep := he[e].Next, he[e].Prev // b→c, c→a
	on, op := he[o].Next, he[o].Prev // a→d, d→b
	a, b := he[o].Vertex, he[e].Vertex
	c, d := he[en].Vertex, he[on].Vertex
	f0, f1 := he[e].Face, he[o].Face

	n := len(m.vertices)
	f2, f3 := len(m.faces), len(m.faces)+1
	base := len(he)
	h, k, g := base, base+1, base+2   // n→c, c→n, n→b
	q, s, r := base+3, base+4, base+5 // n→d, d→n, n→a

	// (a,n,c): e → h → ep
	he[e].Vertex, he[e].Next, he[e].Opposite = n, h, r
	he[ep].Prev = h
	// (n,b,c): g → en → k
	he[en].Face, he[en].Next, he[en].Prev = f2, k, g
	// (b,n,d): o → q → op
	he[o].Vertex, he[o].Next, he[o].Opposite = n, q, g
	he[op].Prev = q
	// (n,a,d): r → on → s
	he[on].Face, he[on].Next, he[on].Prev = f3, s, r

	m.halfEdges = append(he,
		HalfEdge{Vertex: c, Face: f0, Next: ep, Prev: e, Opposite: k},
		HalfEdge{Vertex: n, Face: f2, Next: g, Prev: en, Opposite: h},
		HalfEdge{Vertex: b, Face: f2, Next: en, Prev: k, Opposite: o},
		HalfEdge{Vertex: d, Face: f1, Next: op, Prev: o, Opposite: s},
		HalfEdge{Vertex: n, Face: f3, Next: r, Prev: on, Opposite: q},
		HalfEdge{Vertex: a, Face: f3, Next: on, Prev: s, Opposite: e},
	)
	m.faces[f0].HalfEdge = e
	m.faces[f1].HalfEdge = o
	m.faces = append(m.faces, Face{HalfEdge: g}, Face{HalfEdge: r})
	m.vertices = append(m.vertices, Vertex{Position: p, Outgoing: g})
}

// splitBoundary splits interior e (a→b, face (a,b,c)) whose opposite o (b→a)
// is a boundary half-edge.
func (m *Mesh) splitBoundary(e, o int, p r3.Vec) {
	he := m.halfEdges
	en, ep := he[e].Next, he[e].Prev // b→c, c→a
	on := he[o].Next                 // boundary successor, leaving a
	a, b := he[o].Vertex, he[e].Vertex
	c := he[en].Vertex
	f0 := he[e].Face

	n := len(m.vertices)
	f2 := len(m.faces)
	base := len(he)
	h, k, g, r := base, base+1, base+2, base+3 // n→c, c→n, n→b, n→a (boundary)

	// (a,n,c): e → h → ep
	he[e].Vertex, he[e].Next, he[e].Opposite = n, h, r
	he[ep].Prev = h
	// (n,b,c): g → en → k
	he[en].Face, he[en].Next, he[en].Prev = f2, k, g
	// boundary loop: … → o (b→n) → r (n→a) → on → …
	he[o].Vertex, he[o].Next, he[o].Opposite = n, r, g
	he[on].Prev = r

	m.halfEdges = append(he,
		HalfEdge{Vertex: c, Face: f0, Next: ep, Prev: e, Opposite: k},
		HalfEdge{Vertex: n, Face: f2, Next: g, Prev: en, Opposite: h},
		HalfEdge{Vertex: b, Face: f2, Next: en, Prev: k, Opposite: o},
		HalfEdge{Vertex: a, Face: Boundary, Next: on, Prev: o, Opposite: e},
	)
	m.faces[f0].HalfEdge = e
	m.faces = append(m.faces, Face{HalfEdge: g})
	m.vertices = append(m.vertices, Vertex{Position: p, Outgoing: r})
}
