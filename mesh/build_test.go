package mesh_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/saltbread1/hemesh/builder"
	"github.com/saltbread1/hemesh/mesh"
)

func TestBuild_PlaneCounts(t *testing.T) {
	m := mustBuild(t, planeData())

	assert.Equal(t, 4, m.VertexCount())
	assert.Equal(t, 2, m.FaceCount())
	assert.Equal(t, 6, m.HalfEdgeCount())
	assert.Equal(t, 10, m.AllHalfEdgeCount())
	assert.Equal(t, 4, m.BoundaryHalfEdgeCount())
	assert.Equal(t, 5, m.EdgeCount())
	for v := 0; v < 4; v++ {
		assert.True(t, m.IsBoundaryVertex(v), "vertex %d", v)
	}
	requireInvariants(t, m)
	assert.Empty(t, m.Validate())
}

func TestBuild_TetrahedronCounts(t *testing.T) {
	m := mustBuild(t, tetrahedronData())

	assert.Equal(t, 4, m.VertexCount())
	assert.Equal(t, 4, m.FaceCount())
	assert.Equal(t, 12, m.HalfEdgeCount())
	assert.Equal(t, 12, m.AllHalfEdgeCount())
	assert.Equal(t, 6, m.EdgeCount())
	for v := 0; v < 4; v++ {
		assert.False(t, m.IsBoundaryVertex(v), "vertex %d", v)
	}
	assert.Empty(t, m.BoundaryLoops())
	requireInvariants(t, m)
	assert.Empty(t, m.Validate())
}

func TestBuild_BoundaryVerticesStartOnBoundary(t *testing.T) {
	m := mustBuild(t, planeData())
	for v := 0; v < m.VertexCount(); v++ {
		vert, ok := m.Vertex(v)
		require.True(t, ok)
		assert.True(t, m.IsBoundaryHalfEdge(vert.Outgoing), "vertex %d outgoing %d", v, vert.Outgoing)
		assert.Equal(t, v, m.Origin(vert.Outgoing))
	}
}

func TestBuild_RoundTripFaceVertices(t *testing.T) {
	sources := map[string]*mesh.Data{
		"plane":       planeData(),
		"tetrahedron": tetrahedronData(),
		"icosahedron": builder.NewIcosahedron(),
		"holed grid":  holedGridData(),
	}
	for name, src := range sources {
		t.Run(name, func(t *testing.T) {
			m := mustBuild(t, src)
			require.Equal(t, len(src.Faces), m.FaceCount())
			for f, tri := range src.Faces {
				got := m.FaceVertices(f)
				assert.True(t, sameRotation(got, tri), "face %d: got %v want rotation of %v", f, got, tri)
			}
		})
	}
}

func TestBuild_Errors(t *testing.T) {
	pts := planeData().Vertices
	cases := []struct {
		name string
		src  mesh.Source
		want error
	}{
		{"nil source", nil, mesh.ErrNilSource},
		{"negative index", &mesh.Data{Vertices: pts, Faces: []mesh.Triangle{{-1, 1, 2}}}, mesh.ErrVertexOutOfRange},
		{"index past end", &mesh.Data{Vertices: pts, Faces: []mesh.Triangle{{0, 1, 4}}}, mesh.ErrVertexOutOfRange},
		{"repeated vertex", &mesh.Data{Vertices: pts, Faces: []mesh.Triangle{{0, 1, 1}}}, mesh.ErrDegenerateTriangle},
		{"flipped neighbor", &mesh.Data{Vertices: pts, Faces: []mesh.Triangle{{0, 1, 2}, {0, 1, 3}}}, mesh.ErrDuplicateHalfEdge},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := mesh.NewFromSource(tc.src)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestBuild_FailureKeepsPreviousMesh(t *testing.T) {
	m := mustBuild(t, tetrahedronData())
	err := m.Build(&mesh.Data{Vertices: []r3.Vec{{}, {}}, Faces: []mesh.Triangle{{0, 1, 2}}})
	require.ErrorIs(t, err, mesh.ErrVertexOutOfRange)

	assert.Equal(t, 4, m.VertexCount())
	assert.Equal(t, 4, m.FaceCount())
	assert.Empty(t, m.Validate())
}

func TestBuild_IsolatedVertexIsIgnored(t *testing.T) {
	d := planeData()
	d.AddVertex(r3.Vec{X: 5, Y: 5})
	m := mustBuild(t, d)

	assert.Equal(t, 5, m.VertexCount())
	assert.False(t, m.IsBoundaryVertex(4))
	assert.Nil(t, m.AdjacentVertices(4))
	assert.Empty(t, m.Validate())
}

func TestBuild_RebuildReplacesState(t *testing.T) {
	m := mustBuild(t, planeData())
	require.NoError(t, m.Build(tetrahedronData()))

	assert.Equal(t, 12, m.AllHalfEdgeCount())
	assert.Equal(t, 0, m.BoundaryHalfEdgeCount())
	assert.Empty(t, m.Validate())
}

func TestBuild_TwoBoundaryLoops(t *testing.T) {
	m := mustBuild(t, holedGridData())

	assert.Equal(t, 16, m.FaceCount())
	requireInvariants(t, m)
	require.Empty(t, m.Validate())

	loops := m.BoundaryLoops()
	require.Len(t, loops, 2)
	sizes := []int{len(loops[0]), len(loops[1])}
	assert.ElementsMatch(t, []int{12, 4}, sizes)

	// the hole corners (5, 6, 9, 10) touch the inner loop only
	for _, v := range []int{5, 6, 9, 10} {
		assert.True(t, m.IsBoundaryVertex(v), "vertex %d", v)
	}
}

func TestBuild_PinchedBoundaryVertex(t *testing.T) {
	// two triangles sharing only vertex 0: one boundary loop through 0 twice
	d := &mesh.Data{
		Vertices: []r3.Vec{{}, {X: 1}, {X: 1, Y: 1}, {X: -1}, {X: -1, Y: -1}},
		Faces:    []mesh.Triangle{{0, 1, 2}, {0, 3, 4}},
	}
	m := mustBuild(t, d)

	require.Empty(t, m.Validate())
	loops := m.BoundaryLoops()
	total := 0
	for _, l := range loops {
		total += len(l)
	}
	assert.Equal(t, 6, total)
}

func TestData_Snapshot(t *testing.T) {
	src := builder.NewIcosahedron()
	m := mustBuild(t, src)
	snap := m.Data()

	assert.Equal(t, src.Vertices, snap.Vertices)
	assert.Equal(t, src.Faces, snap.Faces)

	again := mustBuild(t, snap)
	assert.Equal(t, m.AllHalfEdgeCount(), again.AllHalfEdgeCount())
}
