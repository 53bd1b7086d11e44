// File: methods_edges.go
// Role: half-edge lookup, canonical edge enumeration and boundary loops.

package mesh

import "sort"

// FindHalfEdge returns the half-edge running from a to b.
// Complexity: O(H) linear scan.
func (m *Mesh) FindHalfEdge(a, b int) (int, bool) {
	for e, h := range m.halfEdges {
		if h.Vertex != b || !m.validHalfEdge(h.Opposite) {
			continue
		}
		if m.halfEdges[h.Opposite].Vertex == a {
			return e, true
		}
	}
	return NoIndex, false
}

// UniqueHalfEdges returns exactly one half-edge per undirected edge: the one
// whose origin is the smaller vertex index. The result is ordered by
// (min, max) vertex pair.
// Complexity: O(H log H).
func (m *Mesh) UniqueHalfEdges() []int {
	reps := make(map[edgeKey]int, len(m.halfEdges)/2)
	for e, h := range m.halfEdges {
		origin := m.Origin(e)
		if origin == NoIndex || origin >= h.Vertex {
			continue
		}
		key := edgeKey{from: origin, to: h.Vertex}
		if _, seen := reps[key]; !seen {
			reps[key] = e
		}
	}

	keys := make([]edgeKey, 0, len(reps))
	for k := range reps {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].from != keys[j].from {
			return keys[i].from < keys[j].from
		}
		return keys[i].to < keys[j].to
	})

	out := make([]int, len(keys))
	for i, k := range keys {
		out[i] = reps[k]
	}
	return out
}

// BoundaryLoops returns every boundary loop as the list of its half-edges in
// Next order. Loops are discovered from the lowest-indexed unvisited boundary
// half-edge. A loop with an unresolved link is returned as far as it could be
// followed.
func (m *Mesh) BoundaryLoops() [][]int {
	var loops [][]int
	visited := make(map[int]bool)
	for b, h := range m.halfEdges {
		if !h.IsBoundary() || visited[b] {
			continue
		}
		var loop []int
		cur := b
		for m.validHalfEdge(cur) && m.halfEdges[cur].IsBoundary() && !visited[cur] {
			visited[cur] = true
			loop = append(loop, cur)
			cur = m.halfEdges[cur].Next
		}
		loops = append(loops, loop)
	}
	return loops
}
