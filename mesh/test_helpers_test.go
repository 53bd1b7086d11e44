// SPDX-License-Identifier: MIT
// Package mesh_test shares fixtures across the mesh test files.
//
// Fixtures:
//   - planeData: unit quad split along its diagonal (open, one boundary loop).
//   - tetrahedronData: closed 4-face solid.
//   - holedGridData: 4×4 vertex grid with its center quad removed (two boundary loops).

package mesh_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/saltbread1/hemesh/mesh"
)

// planeData returns the quad (0,0,0),(1,0,0),(1,1,0),(0,1,0) with faces (0,1,2),(0,2,3).
func planeData() *mesh.Data {
	return &mesh.Data{
		Vertices: []r3.Vec{
			{X: 0, Y: 0, Z: 0},
			{X: 1, Y: 0, Z: 0},
			{X: 1, Y: 1, Z: 0},
			{X: 0, Y: 1, Z: 0},
		},
		Faces: []mesh.Triangle{{0, 1, 2}, {0, 2, 3}},
	}
}

// tetrahedronData returns a closed tetrahedron with outward CCW faces.
func tetrahedronData() *mesh.Data {
	return &mesh.Data{
		Vertices: []r3.Vec{
			{X: 0, Y: 0, Z: 0},
			{X: 1, Y: 0, Z: 0},
			{X: 0.5, Y: 1, Z: 0},
			{X: 0.5, Y: 0.5, Z: 1},
		},
		Faces: []mesh.Triangle{{0, 2, 1}, {0, 1, 3}, {0, 3, 2}, {1, 2, 3}},
	}
}

// holedGridData returns a 3×3-cell grid (16 vertices, row-major) without its
// center cell: 8 cells, 16 triangles, an outer and an inner boundary loop.
func holedGridData() *mesh.Data {
	d := &mesh.Data{}
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			d.AddVertex(r3.Vec{X: float64(c), Y: float64(r)})
		}
	}
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			if r == 1 && c == 1 {
				continue
			}
			v00 := r*4 + c
			v01, v10, v11 := v00+1, v00+4, v00+5
			d.AddTriangle(v00, v01, v11)
			d.AddTriangle(v00, v11, v10)
		}
	}
	return d
}

// mustBuild builds src into a fresh mesh and fails the test on error.
func mustBuild(t testing.TB, src mesh.Source) *mesh.Mesh {
	t.Helper()
	m, err := mesh.NewFromSource(src)
	require.NoError(t, err)
	return m
}

// sameRotation reports whether got is a cyclic rotation of want.
func sameRotation(got []int, want mesh.Triangle) bool {
	if len(got) != 3 {
		return false
	}
	for shift := 0; shift < 3; shift++ {
		if got[0] == want[shift] && got[1] == want[(shift+1)%3] && got[2] == want[(shift+2)%3] {
			return true
		}
	}
	return false
}

// requireInvariants asserts the structural invariants directly on the records,
// independently of Validate.
func requireInvariants(t *testing.T, m *mesh.Mesh) {
	t.Helper()
	for e := 0; e < m.AllHalfEdgeCount(); e++ {
		h, ok := m.HalfEdge(e)
		require.True(t, ok)
		opp, ok := m.HalfEdge(h.Opposite)
		require.True(t, ok, "half-edge %d: opposite %d", e, h.Opposite)
		require.Equal(t, e, opp.Opposite, "half-edge %d: opposite not reciprocal", e)

		next, _ := m.HalfEdge(h.Next)
		prev, _ := m.HalfEdge(h.Prev)
		require.Equal(t, h.Face, next.Face, "half-edge %d: next face", e)
		require.Equal(t, h.Face, prev.Face, "half-edge %d: prev face", e)
		if h.IsBoundary() {
			continue
		}
		n2, _ := m.HalfEdge(next.Next)
		p2, _ := m.HalfEdge(prev.Prev)
		require.Equal(t, e, n2.Next, "half-edge %d: next³", e)
		require.Equal(t, e, p2.Prev, "half-edge %d: prev³", e)
	}
	require.Equal(t, 3*m.FaceCount(), m.HalfEdgeCount())
	require.Equal(t, m.AllHalfEdgeCount()/2, m.EdgeCount())
	require.Len(t, m.UniqueHalfEdges(), m.EdgeCount())
}
