// SPDX-License-Identifier: MIT
// Package: hemesh/mesh
//
// subdivide.go — uniform 1→4 subdivision.
//
// Each triangle (a,b,c) with edge points ab, bc, ca becomes
//
//	(a,ab,ca) (b,bc,ab) (c,ca,bc) (ab,bc,ca)
//
// The derived vertex/triangle lists are fed back through Build, so the whole
// half-edge graph is rebuilt. Original vertices keep their indices; edge
// points follow in UniqueHalfEdges order.

package mesh

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"
)

const methodSubdivide = "Subdivide"

// Subdivide splits every face into four, placing one new vertex per edge
// with interp (nil means Linear).
//
// Errors: ErrBrokenTopology when a face loop or edge point cannot be
// resolved; the mesh is left untouched.
// Complexity: O(V + H log H).
func (m *Mesh) Subdivide(interp Interpolator) error {
	if interp == nil {
		interp = Linear
	}

	data := &Data{
		Vertices: make([]r3.Vec, len(m.vertices), len(m.vertices)+len(m.halfEdges)/2),
		Faces:    make([]Triangle, 0, 4*len(m.faces)),
	}
	for i, v := range m.vertices {
		data.Vertices[i] = v.Position
	}

	points := make(map[edgeKey]int, len(m.halfEdges)/2)
	for _, e := range m.UniqueHalfEdges() {
		a, b := m.Origin(e), m.halfEdges[e].Vertex
		points[edgeKey{from: a, to: b}] = data.AddVertex(interp(m.vertices[a].Position, m.vertices[b].Position))
	}

	point := func(a, b int) (int, bool) {
		idx, ok := points[edgeKey{from: a, to: b}.undirected()]
		return idx, ok
	}
	for f := range m.faces {
		vs := m.FaceVertices(f)
		if len(vs) != 3 {
			return fmt.Errorf("%s: face %d has %d resolvable vertices: %w", methodSubdivide, f, len(vs), ErrBrokenTopology)
		}
		a, b, c := vs[0], vs[1], vs[2]
		ab, ok1 := point(a, b)
		bc, ok2 := point(b, c)
		ca, ok3 := point(c, a)
		if !ok1 || !ok2 || !ok3 {
			return fmt.Errorf("%s: face %d misses an edge point: %w", methodSubdivide, f, ErrBrokenTopology)
		}
		data.AddTriangle(a, ab, ca)
		data.AddTriangle(b, bc, ab)
		data.AddTriangle(c, ca, bc)
		data.AddTriangle(ab, bc, ca)
	}

	if err := m.Build(data); err != nil {
		return fmt.Errorf("%s: %w", methodSubdivide, err)
	}
	return nil
}

// SubdivideN applies Subdivide n times with the same interpolator.
func (m *Mesh) SubdivideN(n int, interp Interpolator) error {
	for i := 0; i < n; i++ {
		if err := m.Subdivide(interp); err != nil {
			return fmt.Errorf("%s: level %d: %w", methodSubdivide, i+1, err)
		}
	}
	return nil
}
