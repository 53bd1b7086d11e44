package traverse

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/saltbread1/hemesh/mesh"
)

// queueItem pairs an element with its ring number.
type queueItem struct {
	idx   int
	depth int
}

// walker holds the queue and the Result being filled.
type walker struct {
	neighbors func(int) []int
	opts      Options
	queue     []queueItem
	res       *Result
}

// Faces walks the faces of m starting from face start, stepping to the faces
// that share an edge (mesh.FaceNeighbors).
func Faces(m *mesh.Mesh, start int, opts ...Option) (*Result, error) {
	if m == nil {
		return nil, ErrMeshNil
	}
	return run(m.FaceCount(), m.FaceNeighbors, start, opts)
}

// Vertices walks the vertices of m starting from vertex start, stepping along
// edges (mesh.AdjacentVertices). Depth is the k-ring index.
func Vertices(m *mesh.Mesh, start int, opts ...Option) (*Result, error) {
	if m == nil {
		return nil, ErrMeshNil
	}
	return run(m.VertexCount(), m.AdjacentVertices, start, opts)
}

// run validates the input, prepares the walker and drives the loop.
func run(n int, neighbors func(int) []int, start int, opts []Option) (*Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if start < 0 || start >= n {
		return nil, fmt.Errorf("%w: %d of %d", ErrStartNotFound, start, n)
	}

	res := &Result{
		Order:  make([]int, 0, n),
		Depth:  make([]int, n),
		Parent: make([]int, n),
	}
	for i := 0; i < n; i++ {
		res.Depth[i] = mesh.NoIndex
		res.Parent[i] = mesh.NoIndex
	}
	w := &walker{neighbors: neighbors, opts: o, queue: make([]queueItem, 0, n), res: res}

	w.enqueue(start, 0, mesh.NoIndex)
	return res, w.loop()
}

// enqueue records idx at ring d, reached from parent.
func (w *walker) enqueue(idx, d, parent int) {
	w.res.Depth[idx] = d
	w.res.Parent[idx] = parent
	w.queue = append(w.queue, queueItem{idx: idx, depth: d})
}

// loop drains the queue until it is empty, OnVisit fails, or the context ends.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		if err := w.opts.Ctx.Err(); err != nil {
			return err
		}

		item := w.queue[0]
		w.queue = w.queue[1:]

		w.res.Order = append(w.res.Order, item.idx)
		if err := w.opts.OnVisit(item.idx, item.depth); err != nil {
			return fmt.Errorf("traverse: OnVisit error at %d: %w", item.idx, err)
		}

		next := item.depth + 1
		if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
			continue
		}
		for _, nbr := range w.neighbors(item.idx) {
			if w.res.Depth[nbr] != mesh.NoIndex || !w.opts.FilterNeighbor(item.idx, nbr) {
				continue
			}
			w.enqueue(nbr, next, item.idx)
		}
	}
	return nil
}

// FlatterThan returns a face filter admitting a step only when the normals
// of the two faces differ by at most maxAngle radians. Use it with Faces to
// grow regions that stop at creases.
func FlatterThan(m *mesh.Mesh, maxAngle float64) func(curr, neighbor int) bool {
	minCos := math.Cos(maxAngle)
	return func(curr, neighbor int) bool {
		a, okA := m.FaceNormal(curr)
		b, okB := m.FaceNormal(neighbor)
		if !okA || !okB {
			return false
		}
		return r3.Dot(a, b) >= minCos-1e-12
	}
}
