package traverse_test

import (
	"context"
	"errors"
	"reflect"
	"sort"
	"testing"

	"github.com/saltbread1/hemesh/builder"
	"github.com/saltbread1/hemesh/mesh"
	"github.com/saltbread1/hemesh/traverse"
)

// gridMesh returns the 3×3 vertex plane: 8 faces in 4 cells.
func gridMesh(t testing.TB) *mesh.Mesh {
	t.Helper()
	d, err := builder.Grid(3, 3)
	if err != nil {
		t.Fatal(err)
	}
	m, err := mesh.NewFromSource(d)
	if err != nil {
		t.Fatal(err)
	}
	return m
}

func sorted(xs []int) []int {
	out := append([]int(nil), xs...)
	sort.Ints(out)
	return out
}

// TestFaces_Errors verifies that invalid inputs and options are rejected.
func TestFaces_Errors(t *testing.T) {
	if _, err := traverse.Faces(nil, 0); !errors.Is(err, traverse.ErrMeshNil) {
		t.Errorf("nil mesh: want ErrMeshNil, got %v", err)
	}
	m := gridMesh(t)
	for _, start := range []int{-1, 8} {
		if _, err := traverse.Faces(m, start); !errors.Is(err, traverse.ErrStartNotFound) {
			t.Errorf("start %d: want ErrStartNotFound, got %v", start, err)
		}
	}
	if _, err := traverse.Faces(m, 0, traverse.WithMaxDepth(-1)); !errors.Is(err, traverse.ErrOptionViolation) {
		t.Errorf("negative depth: want ErrOptionViolation, got %v", err)
	}
	if _, err := traverse.Vertices(nil, 0); !errors.Is(err, traverse.ErrMeshNil) {
		t.Errorf("Vertices nil mesh: want ErrMeshNil, got %v", err)
	}
}

// TestFaces_Rings checks depths over the grid's face-adjacency graph.
func TestFaces_Rings(t *testing.T) {
	m := gridMesh(t)
	res, err := traverse.Faces(m, 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Order) != 8 || res.Order[0] != 0 {
		t.Fatalf("Order = %v; want 8 faces starting at 0", res.Order)
	}
	wantRings := [][]int{{0}, {1, 3}, {2, 4, 6}, {5, 7}}
	for d, want := range wantRings {
		if got := sorted(res.Ring(d)); !reflect.DeepEqual(got, want) {
			t.Errorf("Ring(%d) = %v; want %v", d, got, want)
		}
	}

	path, err := res.PathTo(7)
	if err != nil {
		t.Fatal(err)
	}
	if len(path) != 4 || path[0] != 0 || path[3] != 7 {
		t.Errorf("PathTo(7) = %v; want 4 faces from 0 to 7", path)
	}
	for i := 1; i < len(path); i++ {
		if !contains(m.FaceNeighbors(path[i-1]), path[i]) {
			t.Errorf("PathTo(7): %d and %d do not share an edge", path[i-1], path[i])
		}
	}
}

// TestFaces_MaxDepth limits the walk to the first ring.
func TestFaces_MaxDepth(t *testing.T) {
	res, err := traverse.Faces(gridMesh(t), 0, traverse.WithMaxDepth(1))
	if err != nil {
		t.Fatal(err)
	}
	if got := sorted(res.Order); !reflect.DeepEqual(got, []int{0, 1, 3}) {
		t.Errorf("Order = %v; want [0 1 3]", got)
	}
	if _, err := res.PathTo(7); !errors.Is(err, traverse.ErrNotReached) {
		t.Errorf("PathTo(7): want ErrNotReached, got %v", err)
	}
	if res.Reached(7) || res.Depth[7] != mesh.NoIndex || res.Parent[7] != mesh.NoIndex {
		t.Errorf("face 7: Reached=%v Depth=%d Parent=%d; want unreached",
			res.Reached(7), res.Depth[7], res.Parent[7])
	}
}

// TestFaces_OnVisit checks ring order of visits and the OnVisit abort.
func TestFaces_OnVisit(t *testing.T) {
	m := gridMesh(t)
	var depths []int
	_, err := traverse.Faces(m, 0, traverse.WithOnVisit(func(_, d int) error {
		depths = append(depths, d)
		return nil
	}))
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(depths, []int{0, 1, 1, 2, 2, 2, 3, 3}) {
		t.Errorf("visit depths = %v; want non-decreasing rings 0,1,1,2,2,2,3,3", depths)
	}

	stop := errors.New("stop")
	res, err := traverse.Faces(m, 0, traverse.WithOnVisit(func(f, _ int) error {
		if f == 3 {
			return stop
		}
		return nil
	}))
	if !errors.Is(err, stop) {
		t.Errorf("OnVisit abort: want stop, got %v", err)
	}
	if last := res.Order[len(res.Order)-1]; last != 3 {
		t.Errorf("OnVisit abort: last visited = %d; want 3", last)
	}
}

// TestFaces_ResultIndexing checks the per-face Depth and Parent slices.
func TestFaces_ResultIndexing(t *testing.T) {
	m := gridMesh(t)
	res, err := traverse.Faces(m, 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Depth) != m.FaceCount() || len(res.Parent) != m.FaceCount() {
		t.Fatalf("len(Depth)=%d len(Parent)=%d; want %d", len(res.Depth), len(res.Parent), m.FaceCount())
	}
	if res.Parent[0] != mesh.NoIndex || res.Depth[0] != 0 {
		t.Errorf("start: Depth=%d Parent=%d; want 0 and NoIndex", res.Depth[0], res.Parent[0])
	}
	for f := 1; f < m.FaceCount(); f++ {
		p := res.Parent[f]
		if !contains(m.FaceNeighbors(f), p) || res.Depth[p] != res.Depth[f]-1 {
			t.Errorf("face %d: parent %d (depth %d) is not an adjacent face one ring closer", f, p, res.Depth[p])
		}
	}
	for _, bad := range []int{-1, m.FaceCount()} {
		if res.Reached(bad) {
			t.Errorf("Reached(%d) = true for an out-of-range face", bad)
		}
		if _, err := res.PathTo(bad); !errors.Is(err, traverse.ErrNotReached) {
			t.Errorf("PathTo(%d): want ErrNotReached, got %v", bad, err)
		}
	}
}

// TestFaces_Cancelled verifies context cancellation.
func TestFaces_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := traverse.Faces(gridMesh(t), 0, traverse.WithContext(ctx)); !errors.Is(err, context.Canceled) {
		t.Errorf("cancelled: want context.Canceled, got %v", err)
	}
}

// TestFaces_FlatterThan stops region growth at the cube's creases.
func TestFaces_FlatterThan(t *testing.T) {
	d, err := builder.PlatonicSolid(builder.Cube)
	if err != nil {
		t.Fatal(err)
	}
	m, err := mesh.NewFromSource(d)
	if err != nil {
		t.Fatal(err)
	}

	res, err := traverse.Faces(m, 0, traverse.WithFilterNeighbor(traverse.FlatterThan(m, 0.1)))
	if err != nil {
		t.Fatal(err)
	}
	if got := sorted(res.Order); !reflect.DeepEqual(got, []int{0, 1}) {
		t.Errorf("flat region = %v; want the two bottom triangles [0 1]", got)
	}

	all, err := traverse.Faces(m, 0, traverse.WithFilterNeighbor(traverse.FlatterThan(m, 2)))
	if err != nil {
		t.Fatal(err)
	}
	if len(all.Order) != 12 {
		t.Errorf("wide angle region = %d faces; want 12", len(all.Order))
	}
}

// TestVertices_KRing walks the icosahedron from its top pole.
func TestVertices_KRing(t *testing.T) {
	m, err := mesh.NewFromSource(builder.NewIcosahedron())
	if err != nil {
		t.Fatal(err)
	}
	res, err := traverse.Vertices(m, 0)
	if err != nil {
		t.Fatal(err)
	}
	want := [][]int{{0}, {1, 2, 3, 4, 5}, {6, 7, 8, 9, 10}, {11}}
	for d, w := range want {
		if got := sorted(res.Ring(d)); !reflect.DeepEqual(got, w) {
			t.Errorf("Ring(%d) = %v; want %v", d, got, w)
		}
	}
}

// TestComponents splits a composed mesh into its parts.
func TestComponents(t *testing.T) {
	d, err := builder.Compose(nil,
		builder.Solid(builder.Tetrahedron),
		builder.Plane(2, 2),
		builder.Solid(builder.Cube),
	)
	if err != nil {
		t.Fatal(err)
	}
	m, err := mesh.NewFromSource(d)
	if err != nil {
		t.Fatal(err)
	}

	parts := traverse.Components(m)
	if len(parts) != 3 {
		t.Fatalf("parts = %d; want 3", len(parts))
	}
	wantFirst := [][]int{{0, 1, 2, 3}, {4, 5}, {6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17}}
	for i, w := range wantFirst {
		if got := sorted(parts[i]); !reflect.DeepEqual(got, w) {
			t.Errorf("part %d = %v; want %v", i, got, w)
		}
	}

	if traverse.Components(nil) != nil {
		t.Error("nil mesh: want nil")
	}
	if got := traverse.Components(mesh.New()); len(got) != 0 {
		t.Errorf("empty mesh: want no parts, got %v", got)
	}
}

func contains(xs []int, x int) bool {
	for _, v := range xs {
		if v == x {
			return true
		}
	}
	return false
}
