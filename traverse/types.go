package traverse

import (
	"context"
	"errors"
	"fmt"

	"github.com/saltbread1/hemesh/mesh"
)

// Sentinel errors for walks.
var (
	// ErrStartNotFound is returned when the start face or vertex is out of range.
	ErrStartNotFound = errors.New("traverse: start element not found")

	// ErrMeshNil is returned if a nil mesh pointer is passed.
	ErrMeshNil = errors.New("traverse: mesh is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("traverse: invalid option supplied")

	// ErrNotReached is returned by PathTo for an element outside the walk.
	ErrNotReached = errors.New("traverse: element not reached")
)

// Option configures a walk. An invalid Option (negative depth) is recorded
// and surfaced as ErrOptionViolation when the walk starts.
type Option func(*Options)

// Options tunes a walk. The indices handed to the callbacks are face indices
// for Faces and vertex indices for Vertices; depth is the ring number, i.e.
// the number of shared edges (Faces) or edges (Vertices) crossed from start.
type Options struct {
	// Ctx is checked before every visit.
	Ctx context.Context

	// OnVisit sees each element once, in ring order. A non-nil error stops
	// the walk and is returned wrapped.
	OnVisit func(idx, depth int) error

	// MaxDepth > 0 keeps the walk within that many rings; 0 means no limit.
	MaxDepth int

	// FilterNeighbor decides whether the walk may step from curr into
	// neighbor. For Faces the two faces share an edge; a filter returning
	// false there acts as a cut along that edge.
	FilterNeighbor func(curr, neighbor int) bool

	err error
}

// DefaultOptions returns a background context, no depth limit, no filter and
// a no-op OnVisit.
func DefaultOptions() Options {
	return Options{
		Ctx:            context.Background(),
		OnVisit:        func(int, int) error { return nil },
		FilterNeighbor: func(_, _ int) bool { return true },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit registers fn to run on every visited face or vertex.
func WithOnVisit(fn func(idx, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth limits the walk to the d-ring around the start (inclusive).
//
//	d > 0: rings 0..d
//	d == 0: no limit
//	d < 0: ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithFilterNeighbor restricts steps to those fn admits. FlatterThan is the
// stock filter for face walks.
func WithFilterNeighbor(fn func(curr, neighbor int) bool) Option {
	return func(o *Options) {
		if fn != nil {
			o.FilterNeighbor = fn
		}
	}
}

// Result of a walk over n faces (or vertices). Depth and Parent are indexed
// by element and always have length n.
//   - Order: reached elements in visit order, start first.
//   - Depth: ring number, or mesh.NoIndex when not reached.
//   - Parent: the element the walk stepped from, or mesh.NoIndex for the
//     start and for elements not reached.
type Result struct {
	Order  []int
	Depth  []int
	Parent []int
}

// Reached reports whether idx was visited.
func (r *Result) Reached(idx int) bool {
	return idx >= 0 && idx < len(r.Depth) && r.Depth[idx] != mesh.NoIndex
}

// PathTo returns the chain of elements from the start to dest along the
// walk's tree: consecutive faces share an edge, consecutive vertices an edge.
func (r *Result) PathTo(dest int) ([]int, error) {
	if !r.Reached(dest) {
		return nil, fmt.Errorf("traverse: PathTo(%d): %w", dest, ErrNotReached)
	}
	path := make([]int, r.Depth[dest]+1)
	for i, cur := len(path)-1, dest; i >= 0; i-- {
		path[i] = cur
		cur = r.Parent[cur]
	}

	return path, nil
}

// Ring returns the elements at exactly depth d, in visit order. For
// Vertices, Ring(1) of an interior vertex is its one-ring.
func (r *Result) Ring(d int) []int {
	var out []int
	for _, idx := range r.Order {
		if r.Depth[idx] == d {
			out = append(out, idx)
		}
	}
	return out
}
