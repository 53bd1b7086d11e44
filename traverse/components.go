package traverse

import "github.com/saltbread1/hemesh/mesh"

// Components splits the faces of m into edge-connected parts. Parts are
// ordered by their lowest face index; faces within a part are in BFS order
// from that face. A nil mesh yields nil.
func Components(m *mesh.Mesh) [][]int {
	if m == nil {
		return nil
	}

	var parts [][]int
	seen := make([]bool, m.FaceCount())
	for f := range seen {
		if seen[f] {
			continue
		}
		// an unbounded walk from a valid face cannot fail
		res, err := Faces(m, f)
		if err != nil {
			return parts
		}
		for _, g := range res.Order {
			seen[g] = true
		}
		parts = append(parts, res.Order)
	}
	return parts
}
