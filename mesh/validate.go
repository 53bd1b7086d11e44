// File: validate.go
// Role: advisory structural check (Validate) and its error form (Check).
// Validate never mutates or repairs; the report order is deterministic:
// vertices, faces, half-edges by index, then boundary loops.

package mesh

import (
	"errors"
	"fmt"
)

// Validate walks the whole structure and returns one human-readable line per
// violation; nil means the mesh is sound.
//
// Checked:
//   - vertex Outgoing and face HalfEdge links resolve and point back correctly;
//   - every half-edge has Next, Prev and Opposite;
//   - Opposite is reciprocal and runs the other way;
//   - Next/Prev are mutual inverses and keep the face id;
//   - interior half-edges close a 3-cycle both ways;
//   - boundary half-edges form closed loops made only of boundary half-edges
//     (BoundaryLoops visits each one exactly once, so a loop running into
//     another loop or an interior half-edge fails to close).
func (m *Mesh) Validate() []string {
	var report []string
	addf := func(format string, args ...interface{}) {
		report = append(report, fmt.Sprintf(format, args...))
	}

	for v, vert := range m.vertices {
		if vert.Outgoing == NoIndex {
			continue // isolated vertex
		}
		if !m.validHalfEdge(vert.Outgoing) {
			addf("vertex %d: outgoing half-edge %d out of range", v, vert.Outgoing)
			continue
		}
		if origin := m.Origin(vert.Outgoing); origin != v {
			addf("vertex %d: outgoing half-edge %d starts at vertex %d", v, vert.Outgoing, origin)
		}
	}

	for f, face := range m.faces {
		if !m.validHalfEdge(face.HalfEdge) {
			addf("face %d: half-edge %d out of range", f, face.HalfEdge)
			continue
		}
		if got := m.halfEdges[face.HalfEdge].Face; got != f {
			addf("face %d: half-edge %d belongs to face %d", f, face.HalfEdge, got)
		}
	}

	for e, h := range m.halfEdges {
		if !m.validHalfEdge(h.Next) || !m.validHalfEdge(h.Prev) || !m.validHalfEdge(h.Opposite) {
			addf("half-edge %d: missing link (next=%d prev=%d opposite=%d)", e, h.Next, h.Prev, h.Opposite)
			continue
		}
		if h.Vertex < 0 || h.Vertex >= len(m.vertices) {
			addf("half-edge %d: vertex %d out of range", e, h.Vertex)
		}

		opp := m.halfEdges[h.Opposite]
		if opp.Opposite != e {
			addf("half-edge %d: opposite %d is not reciprocal (points to %d)", e, h.Opposite, opp.Opposite)
		}
		if opp.Vertex == h.Vertex {
			addf("half-edge %d: opposite %d points to the same vertex %d", e, h.Opposite, h.Vertex)
		}
		if got := m.halfEdges[h.Next].Prev; got != e {
			addf("half-edge %d: next %d has prev %d", e, h.Next, got)
		}
		if got := m.halfEdges[h.Prev].Next; got != e {
			addf("half-edge %d: prev %d has next %d", e, h.Prev, got)
		}
		if nf, pf := m.halfEdges[h.Next].Face, m.halfEdges[h.Prev].Face; nf != h.Face || pf != h.Face {
			addf("half-edge %d: face %d differs from next face %d / prev face %d", e, h.Face, nf, pf)
		}

		if h.IsBoundary() {
			continue
		}
		if h.Face < 0 || h.Face >= len(m.faces) {
			addf("half-edge %d: face %d out of range", e, h.Face)
		}
		if got := m.step(e, 3, true); got != e {
			addf("half-edge %d: next³ reaches %d, not a triangle", e, got)
		}
		if got := m.step(e, 3, false); got != e {
			addf("half-edge %d: prev³ reaches %d, not a triangle", e, got)
		}
	}

	report = append(report, m.validateBoundary()...)
	if len(report) == 0 {
		return nil
	}
	return report
}

// validateBoundary checks that boundary half-edges split into closed loops.
func (m *Mesh) validateBoundary() []string {
	var report []string
	for _, loop := range m.BoundaryLoops() {
		first, last := loop[0], loop[len(loop)-1]
		if next := m.halfEdges[last].Next; next != first {
			report = append(report, fmt.Sprintf(
				"boundary loop from half-edge %d: does not close (half-edge %d continues to %d after %d steps)",
				first, last, next, len(loop)))
		}
	}
	return report
}

// step follows Next (forward) or Prev n times from e; NoIndex on a broken link.
func (m *Mesh) step(e, n int, forward bool) int {
	for i := 0; i < n; i++ {
		if !m.validHalfEdge(e) {
			return NoIndex
		}
		if forward {
			e = m.halfEdges[e].Next
		} else {
			e = m.halfEdges[e].Prev
		}
	}
	return e
}

// Check returns nil for a sound mesh, otherwise ErrInvalidTopology joined
// with one error per Validate line.
func (m *Mesh) Check() error {
	report := m.Validate()
	if len(report) == 0 {
		return nil
	}
	errs := make([]error, len(report))
	for i, line := range report {
		errs[i] = errors.New(line)
	}
	return fmt.Errorf("%w: %d violation(s): %w", ErrInvalidTopology, len(report), errors.Join(errs...))
}
