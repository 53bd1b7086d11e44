package mesh

import "gonum.org/v1/gonum/spatial/r3"

// RecalculateNormals recomputes every face normal, face area and vertex
// normal from the current positions. Build, SplitEdge and Subdivide call it;
// callers moving vertices with SetVertexPosition must call it themselves.
//
// Face normal: unit(cross(p1−p0, p2−p0)); area: |cross|/2.
// Vertex normal: unit(Σ area·normal) over the incident faces.
// Degenerate faces and isolated vertices get the zero vector.
func (m *Mesh) RecalculateNormals() {
	m.faceNormals = make([]r3.Vec, len(m.faces))
	m.faceAreas = make([]float64, len(m.faces))
	m.vertexNormals = make([]r3.Vec, len(m.vertices))

	for f := range m.faces {
		vs := m.FaceVertices(f)
		if len(vs) < 3 {
			continue
		}
		p0 := m.vertices[vs[0]].Position
		cross := r3.Cross(r3.Sub(m.vertices[vs[1]].Position, p0), r3.Sub(m.vertices[vs[2]].Position, p0))
		area := r3.Norm(cross) / 2
		normal := unit(cross)

		m.faceNormals[f] = normal
		m.faceAreas[f] = area
		weighted := r3.Scale(area, normal)
		for _, v := range vs {
			m.vertexNormals[v] = r3.Add(m.vertexNormals[v], weighted)
		}
	}

	for v := range m.vertexNormals {
		m.vertexNormals[v] = unit(m.vertexNormals[v])
	}
}

// FaceNormal returns the unit normal of face f.
func (m *Mesh) FaceNormal(f int) (r3.Vec, bool) {
	if f < 0 || f >= len(m.faceNormals) {
		return r3.Vec{}, false
	}
	return m.faceNormals[f], true
}

// FaceArea returns the area of face f.
func (m *Mesh) FaceArea(f int) (float64, bool) {
	if f < 0 || f >= len(m.faceAreas) {
		return 0, false
	}
	return m.faceAreas[f], true
}

// VertexNormal returns the area-weighted unit normal of vertex v.
func (m *Mesh) VertexNormal(v int) (r3.Vec, bool) {
	if v < 0 || v >= len(m.vertexNormals) {
		return r3.Vec{}, false
	}
	return m.vertexNormals[v], true
}

// SurfaceArea returns the sum of all face areas.
func (m *Mesh) SurfaceArea() float64 {
	total := 0.0
	for _, a := range m.faceAreas {
		total += a
	}
	return total
}
