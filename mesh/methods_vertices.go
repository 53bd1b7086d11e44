// File: methods_vertices.go
// Role: counts, record accessors, vertex positions and vertex-fan queries.
// Out-of-range indices never fail: they yield zero values, nil or false.

package mesh

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"
)

const methodSetVertexPosition = "SetVertexPosition"

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int { return len(m.vertices) }

// FaceCount returns the number of faces.
func (m *Mesh) FaceCount() int { return len(m.faces) }

// AllHalfEdgeCount returns the number of half-edges including boundary ones.
func (m *Mesh) AllHalfEdgeCount() int { return len(m.halfEdges) }

// HalfEdgeCount returns the number of half-edges that border a real face.
func (m *Mesh) HalfEdgeCount() int {
	n := 0
	for _, h := range m.halfEdges {
		if !h.IsBoundary() {
			n++
		}
	}
	return n
}

// BoundaryHalfEdgeCount returns the number of synthetic boundary half-edges.
func (m *Mesh) BoundaryHalfEdgeCount() int {
	return len(m.halfEdges) - m.HalfEdgeCount()
}

// EdgeCount returns the number of undirected edges.
func (m *Mesh) EdgeCount() int { return len(m.halfEdges) / 2 }

// Vertex returns a copy of vertex record v.
func (m *Mesh) Vertex(v int) (Vertex, bool) {
	if v < 0 || v >= len(m.vertices) {
		return Vertex{}, false
	}
	return m.vertices[v], true
}

// HalfEdge returns a copy of half-edge record e.
func (m *Mesh) HalfEdge(e int) (HalfEdge, bool) {
	if !m.validHalfEdge(e) {
		return HalfEdge{}, false
	}
	return m.halfEdges[e], true
}

// Face returns a copy of face record f.
func (m *Mesh) Face(f int) (Face, bool) {
	if f < 0 || f >= len(m.faces) {
		return Face{}, false
	}
	return m.faces[f], true
}

// Origin returns the vertex half-edge e starts from, or NoIndex.
func (m *Mesh) Origin(e int) int {
	if !m.validHalfEdge(e) {
		return NoIndex
	}
	o := m.halfEdges[e].Opposite
	if !m.validHalfEdge(o) {
		return NoIndex
	}
	return m.halfEdges[o].Vertex
}

// IsBoundaryHalfEdge reports whether e is a synthetic boundary half-edge.
func (m *Mesh) IsBoundaryHalfEdge(e int) bool {
	return m.validHalfEdge(e) && m.halfEdges[e].IsBoundary()
}

// VertexPosition returns the position of vertex v.
func (m *Mesh) VertexPosition(v int) (r3.Vec, bool) {
	if v < 0 || v >= len(m.vertices) {
		return r3.Vec{}, false
	}
	return m.vertices[v].Position, true
}

// SetVertexPosition moves vertex v to p. Normals are NOT recomputed; call
// RecalculateNormals once all positions are updated.
func (m *Mesh) SetVertexPosition(v int, p r3.Vec) error {
	if v < 0 || v >= len(m.vertices) {
		return fmt.Errorf("%s(%d): %w", methodSetVertexPosition, v, ErrVertexOutOfRange)
	}
	m.vertices[v].Position = p
	return nil
}

// fan visits the outgoing half-edges of v, starting at its Outgoing link and
// rotating with cur = Next(Opposite(cur)). The walk ends when it returns to
// the start, meets an unresolved link, or visit returns false.
func (m *Mesh) fan(v int, visit func(e int) bool) {
	if v < 0 || v >= len(m.vertices) {
		return
	}
	start := m.vertices[v].Outgoing
	if !m.validHalfEdge(start) {
		return
	}

	cur := start
	for steps := 0; steps < len(m.halfEdges); steps++ {
		if !visit(cur) {
			return
		}
		opp := m.halfEdges[cur].Opposite
		if !m.validHalfEdge(opp) {
			return
		}
		next := m.halfEdges[opp].Next
		if !m.validHalfEdge(next) || next == start {
			return
		}
		cur = next
	}
}

// IsBoundaryVertex reports whether a boundary half-edge is met while walking
// the fan of v.
func (m *Mesh) IsBoundaryVertex(v int) bool {
	found := false
	m.fan(v, func(e int) bool {
		h := m.halfEdges[e]
		if h.IsBoundary() || (m.validHalfEdge(h.Opposite) && m.halfEdges[h.Opposite].IsBoundary()) {
			found = true
			return false
		}
		return true
	})
	return found
}

// AdjacentVertices returns the vertices joined to v by an edge, in fan order.
func (m *Mesh) AdjacentVertices(v int) []int {
	var out []int
	m.fan(v, func(e int) bool {
		out = append(out, m.halfEdges[e].Vertex)
		return true
	})
	return out
}

// AdjacentFaces returns the faces incident to v, in fan order.
func (m *Mesh) AdjacentFaces(v int) []int {
	var out []int
	m.fan(v, func(e int) bool {
		if f := m.halfEdges[e].Face; f != Boundary {
			out = append(out, f)
		}
		return true
	})
	return out
}

// OutgoingHalfEdges returns the half-edges leaving v, in fan order.
func (m *Mesh) OutgoingHalfEdges(v int) []int {
	var out []int
	m.fan(v, func(e int) bool {
		out = append(out, e)
		return true
	})
	return out
}
