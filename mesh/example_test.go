package mesh_test

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/saltbread1/hemesh/builder"
	"github.com/saltbread1/hemesh/mesh"
)

// ExampleNewFromSource builds the two-triangle unit quad.
func ExampleNewFromSource() {
	m, err := mesh.NewFromSource(&mesh.Data{
		Vertices: []r3.Vec{{}, {X: 1}, {X: 1, Y: 1}, {Y: 1}},
		Faces:    []mesh.Triangle{{0, 1, 2}, {0, 2, 3}},
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("vertices=%d faces=%d edges=%d boundary=%d\n",
		m.VertexCount(), m.FaceCount(), m.EdgeCount(), m.BoundaryHalfEdgeCount())
	fmt.Println("neighbors of 0:", m.AdjacentVertices(0))
	// Output:
	// vertices=4 faces=2 edges=5 boundary=4
	// neighbors of 0: [3 2 1]
}

// ExampleMesh_SplitEdgeBetween splits a boundary edge of the quad.
func ExampleMesh_SplitEdgeBetween() {
	m, _ := mesh.NewFromSource(&mesh.Data{
		Vertices: []r3.Vec{{}, {X: 1}, {X: 1, Y: 1}, {Y: 1}},
		Faces:    []mesh.Triangle{{0, 1, 2}, {0, 2, 3}},
	})
	if err := m.SplitEdgeBetween(0, 1, r3.Vec{X: 0.5}); err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("vertices=%d faces=%d edges=%d valid=%t\n",
		m.VertexCount(), m.FaceCount(), m.EdgeCount(), m.Check() == nil)
	// Output:
	// vertices=5 faces=3 edges=7 valid=true
}

// ExampleMesh_Subdivide turns an icosahedron into a geodesic sphere.
func ExampleMesh_Subdivide() {
	m, _ := mesh.NewFromSource(builder.NewIcosahedron())
	if err := m.SubdivideN(2, mesh.Normalized); err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("vertices=%d faces=%d euler=%d\n",
		m.VertexCount(), m.FaceCount(), m.VertexCount()-m.EdgeCount()+m.FaceCount())
	// Output:
	// vertices=162 faces=320 euler=2
}
