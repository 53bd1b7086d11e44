package mesh

import "gonum.org/v1/gonum/spatial/r3"

// Triangle is a CCW index triple into a Source's positions.
type Triangle [3]int

// Source is the raw geometry a Mesh is built from: an ordered list of vertex
// positions and an ordered list of CCW triangles indexing into it.
type Source interface {
	Positions() []r3.Vec
	Triangles() []Triangle
}

// Data is the plain slice-backed Source.
type Data struct {
	Vertices []r3.Vec
	Faces    []Triangle
}

// Positions implements Source.
func (d *Data) Positions() []r3.Vec { return d.Vertices }

// Triangles implements Source.
func (d *Data) Triangles() []Triangle { return d.Faces }

// AddVertex appends p and returns its index.
func (d *Data) AddVertex(p r3.Vec) int {
	d.Vertices = append(d.Vertices, p)
	return len(d.Vertices) - 1
}

// AddTriangle appends the CCW triangle (a, b, c).
func (d *Data) AddTriangle(a, b, c int) {
	d.Faces = append(d.Faces, Triangle{a, b, c})
}

// Data snapshots the current topology back into the input contract: the
// positions in vertex order and every face's vertex loop in face order.
// Building a new Mesh from the result reproduces the same faces.
func (m *Mesh) Data() *Data {
	d := &Data{
		Vertices: make([]r3.Vec, len(m.vertices)),
		Faces:    make([]Triangle, 0, len(m.faces)),
	}
	for i, v := range m.vertices {
		d.Vertices[i] = v.Position
	}
	for f := range m.faces {
		vs := m.FaceVertices(f)
		if len(vs) != 3 {
			continue
		}
		d.Faces = append(d.Faces, Triangle{vs[0], vs[1], vs[2]})
	}

	return d
}
