package mesh

import "gonum.org/v1/gonum/spatial/r3"

// ForEachVertex calls fn for every vertex in index order.
func (m *Mesh) ForEachVertex(fn func(v int, p r3.Vec)) {
	for v, vert := range m.vertices {
		fn(v, vert.Position)
	}
}

// ForEachFace calls fn with every face and its CCW vertex loop.
func (m *Mesh) ForEachFace(fn func(f int, vertices []int)) {
	for f := range m.faces {
		fn(f, m.FaceVertices(f))
	}
}

// ForEachEdge calls fn once per undirected edge, from < to, in UniqueHalfEdges order.
func (m *Mesh) ForEachEdge(fn func(from, to int)) {
	for _, e := range m.UniqueHalfEdges() {
		fn(m.Origin(e), m.halfEdges[e].Vertex)
	}
}
