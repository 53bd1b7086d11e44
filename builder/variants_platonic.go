// SPDX-License-Identifier: MIT
// Package: hemesh/builder
//
// variants_platonic.go — canonical data & generators for Platonic solids.
//
// Design:
//   • Single source of truth for the five solids: unit-circumradius positions
//     and CCW (outward) triangle lists.
//   • Tetrahedron, Cube and Octahedron are literal tables.
//   • Icosahedron is generated from two poles and two pentagon rings.
//   • Dodecahedron is generated as the dual of the icosahedron: one vertex per
//     icosahedron face, one fan-triangulated pentagon per icosahedron vertex.
//
// Determinism:
//   • Tables are constants; generators have no randomness.
//
// Vertex layouts (indices):
//   • Cube:       bottom face 0-1-2-3, top face 4-5-6-7, verticals i→i+4.
//   • Octahedron: poles 0 (+Z) and 1 (−Z); equator 2 (+X), 4 (+Y), 3 (−X), 5 (−Y).
//   • Icosahedron: top pole 0, upper ring 1..5, lower ring 6..10, bottom pole 11.

package builder

import (
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/saltbread1/hemesh/mesh"
)

// PlatonicName enumerates the five Platonic solids.
type PlatonicName int

// Enum values (stable ordering).
const (
	Tetrahedron  PlatonicName = iota // V=4,  F=4
	Cube                             // V=8,  F=12 (two triangles per square)
	Octahedron                       // V=6,  F=8
	Dodecahedron                     // V=20, F=36 (three triangles per pentagon)
	Icosahedron                      // V=12, F=20
)

// String provides a readable identifier for logs/errors (deterministic).
func (p PlatonicName) String() string {
	switch p {
	case Tetrahedron:
		return "Tetrahedron"
	case Cube:
		return "Cube"
	case Octahedron:
		return "Octahedron"
	case Dodecahedron:
		return "Dodecahedron"
	case Icosahedron:
		return "Icosahedron"
	default:
		return "Unknown"
	}
}

// ParsePlatonicName resolves a case-insensitive solid name ("icosahedron",
// "Cube", ...). The second result is false for unknown names.
func ParsePlatonicName(s string) (PlatonicName, bool) {
	for p := Tetrahedron; p <= Icosahedron; p++ {
		if strings.EqualFold(s, p.String()) {
			return p, true
		}
	}
	return 0, false
}

// invSqrt3 normalizes the (±1, ±1, ±1) corners onto the unit sphere.
var invSqrt3 = 1 / math.Sqrt(3)

var tetrahedronVertices = []r3.Vec{
	{X: invSqrt3, Y: invSqrt3, Z: invSqrt3},
	{X: invSqrt3, Y: -invSqrt3, Z: -invSqrt3},
	{X: -invSqrt3, Y: invSqrt3, Z: -invSqrt3},
	{X: -invSqrt3, Y: -invSqrt3, Z: invSqrt3},
}

var tetrahedronFaces = []mesh.Triangle{
	{0, 1, 2}, {0, 3, 1}, {0, 2, 3}, {1, 3, 2},
}

var cubeVertices = []r3.Vec{
	{X: -invSqrt3, Y: -invSqrt3, Z: -invSqrt3},
	{X: invSqrt3, Y: -invSqrt3, Z: -invSqrt3},
	{X: invSqrt3, Y: invSqrt3, Z: -invSqrt3},
	{X: -invSqrt3, Y: invSqrt3, Z: -invSqrt3},
	{X: -invSqrt3, Y: -invSqrt3, Z: invSqrt3},
	{X: invSqrt3, Y: -invSqrt3, Z: invSqrt3},
	{X: invSqrt3, Y: invSqrt3, Z: invSqrt3},
	{X: -invSqrt3, Y: invSqrt3, Z: invSqrt3},
}

var cubeFaces = []mesh.Triangle{
	{0, 3, 2}, {0, 2, 1}, // bottom (−Z)
	{4, 5, 6}, {4, 6, 7}, // top (+Z)
	{0, 1, 5}, {0, 5, 4}, // front (−Y)
	{3, 7, 6}, {3, 6, 2}, // back (+Y)
	{0, 4, 7}, {0, 7, 3}, // left (−X)
	{1, 2, 6}, {1, 6, 5}, // right (+X)
}

var octahedronVertices = []r3.Vec{
	{Z: 1}, {Z: -1},
	{X: 1}, {X: -1},
	{Y: 1}, {Y: -1},
}

var octahedronFaces = []mesh.Triangle{
	{0, 2, 4}, {0, 4, 3}, {0, 3, 5}, {0, 5, 2},
	{1, 4, 2}, {1, 3, 4}, {1, 5, 3}, {1, 2, 5},
}

// icosahedronUnit generates the unit icosahedron.
//
// Rings sit at z = ±sin(atan(1/2)) with radius cos(atan(1/2)); the upper ring
// starts at angle 0, the lower ring is rotated by half a step (36°).
// Faces: five around the top pole, ten in the middle band, five around the
// bottom pole, all CCW seen from outside.
func icosahedronUnit() ([]r3.Vec, []mesh.Triangle) {
	const ring = 5
	step := 2 * math.Pi / ring
	elevation := math.Atan(0.5)
	rr, z := math.Cos(elevation), math.Sin(elevation)

	verts := make([]r3.Vec, 0, 2*ring+2)
	verts = append(verts, r3.Vec{Z: 1})
	for i := 0; i < ring; i++ {
		a := step * float64(i)
		verts = append(verts, r3.Vec{X: rr * math.Cos(a), Y: rr * math.Sin(a), Z: z})
	}
	for i := 0; i < ring; i++ {
		a := step*float64(i) + step/2
		verts = append(verts, r3.Vec{X: rr * math.Cos(a), Y: rr * math.Sin(a), Z: -z})
	}
	verts = append(verts, r3.Vec{Z: -1})

	faces := make([]mesh.Triangle, 0, 4*ring)
	for i := 1; i <= ring; i++ {
		faces = append(faces, mesh.Triangle{0, i, i%ring + 1})
	}
	for i := 1; i <= ring; i++ {
		faces = append(faces,
			mesh.Triangle{i, i + ring, i%ring + 1},
			mesh.Triangle{i%ring + 1, i + ring, i%ring + ring + 1},
		)
	}
	for i := 1; i <= ring; i++ {
		faces = append(faces, mesh.Triangle{i%ring + ring + 1, i + ring, 2*ring + 1})
	}

	return verts, faces
}

// dodecahedronUnit generates the unit dodecahedron as the dual of the
// icosahedron. Vertex f is the normalized centroid of icosahedron face f;
// the faces around each icosahedron vertex form one pentagon, which is
// fan-triangulated from its first corner.
func dodecahedronUnit() ([]r3.Vec, []mesh.Triangle, error) {
	iv, ifaces := icosahedronUnit()
	ico, err := mesh.NewFromSource(&mesh.Data{Vertices: iv, Faces: ifaces})
	if err != nil {
		return nil, nil, fmt.Errorf("dual: %w", err)
	}

	verts := make([]r3.Vec, len(ifaces))
	for f, t := range ifaces {
		sum := r3.Add(r3.Add(iv[t[0]], iv[t[1]]), iv[t[2]])
		verts[f] = r3.Unit(sum)
	}

	faces := make([]mesh.Triangle, 0, 3*len(iv))
	for v := range iv {
		ring := ico.AdjacentFaces(v)
		if len(ring) != 5 {
			return nil, nil, fmt.Errorf("dual: vertex %d has %d faces: %w", v, len(ring), ErrConstructFailed)
		}
		// fan order is clockwise seen from outside
		for i, j := 0, len(ring)-1; i < j; i, j = i+1, j-1 {
			ring[i], ring[j] = ring[j], ring[i]
		}
		for k := 1; k+1 < len(ring); k++ {
			faces = append(faces, mesh.Triangle{ring[0], ring[k], ring[k+1]})
		}
	}

	return verts, faces, nil
}

// platonicUnit returns fresh copies of the unit positions and faces of name.
func platonicUnit(name PlatonicName) ([]r3.Vec, []mesh.Triangle, error) {
	switch name {
	case Tetrahedron:
		return clone(tetrahedronVertices), cloneFaces(tetrahedronFaces), nil
	case Cube:
		return clone(cubeVertices), cloneFaces(cubeFaces), nil
	case Octahedron:
		return clone(octahedronVertices), cloneFaces(octahedronFaces), nil
	case Dodecahedron:
		return dodecahedronUnit()
	case Icosahedron:
		v, f := icosahedronUnit()
		return v, f, nil
	default:
		return nil, nil, fmt.Errorf("unknown solid %q: %w", name, ErrOptionViolation)
	}
}

func clone(v []r3.Vec) []r3.Vec { return append([]r3.Vec(nil), v...) }

func cloneFaces(f []mesh.Triangle) []mesh.Triangle { return append([]mesh.Triangle(nil), f...) }
