// File: methods_faces.go
// Role: face-loop queries (FaceVertices, FaceNeighbors, FaceHalfEdges).

package mesh

// faceLoop visits the half-edges of face f via Next, starting at its
// representative. It stops early on an unresolved link.
func (m *Mesh) faceLoop(f int, visit func(e int)) {
	if f < 0 || f >= len(m.faces) {
		return
	}
	start := m.faces[f].HalfEdge
	if !m.validHalfEdge(start) {
		return
	}

	cur := start
	for steps := 0; steps < len(m.halfEdges); steps++ {
		visit(cur)
		cur = m.halfEdges[cur].Next
		if !m.validHalfEdge(cur) || cur == start {
			return
		}
	}
}

// FaceHalfEdges returns the half-edges of face f in CCW order.
func (m *Mesh) FaceHalfEdges(f int) []int {
	var out []int
	m.faceLoop(f, func(e int) { out = append(out, e) })
	return out
}

// FaceVertices returns the vertices of face f in CCW order, starting with the
// origin of its representative half-edge.
func (m *Mesh) FaceVertices(f int) []int {
	var out []int
	broken := false
	m.faceLoop(f, func(e int) {
		if broken {
			return
		}
		o := m.halfEdges[e].Opposite
		if !m.validHalfEdge(o) {
			broken = true
			return
		}
		out = append(out, m.halfEdges[o].Vertex)
	})
	return out
}

// FaceNeighbors returns the faces sharing an edge with f, in loop order.
// Edges on the boundary contribute nothing.
func (m *Mesh) FaceNeighbors(f int) []int {
	var out []int
	m.faceLoop(f, func(e int) {
		o := m.halfEdges[e].Opposite
		if !m.validHalfEdge(o) {
			return
		}
		if nf := m.halfEdges[o].Face; nf != Boundary {
			out = append(out, nf)
		}
	})
	return out
}
