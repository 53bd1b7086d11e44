// SPDX-License-Identifier: MIT
// Package: hemesh/mesh
//
// types.go — topology records, sentinel errors and the Mesh container.

package mesh

import (
	"errors"

	"gonum.org/v1/gonum/spatial/r3"
)

const (
	// Boundary is the face index carried by synthetic boundary half-edges.
	Boundary = -1

	// NoIndex marks an unresolved link (only seen during construction or on a
	// malformed mesh).
	NoIndex = -1
)

// Sentinel errors for mesh construction and editing.
var (
	// ErrNilSource indicates Build was handed a nil Source.
	ErrNilSource = errors.New("mesh: source is nil")

	// ErrVertexOutOfRange indicates a vertex index outside [0, VertexCount).
	ErrVertexOutOfRange = errors.New("mesh: vertex index out of range")

	// ErrHalfEdgeOutOfRange indicates a half-edge index outside [0, AllHalfEdgeCount).
	ErrHalfEdgeOutOfRange = errors.New("mesh: half-edge index out of range")

	// ErrHalfEdgeNotFound indicates no half-edge joins the requested vertex pair.
	ErrHalfEdgeNotFound = errors.New("mesh: half-edge not found")

	// ErrDegenerateTriangle indicates a triangle that repeats a vertex index.
	ErrDegenerateTriangle = errors.New("mesh: degenerate triangle")

	// ErrDuplicateHalfEdge indicates two triangles traverse the same directed
	// edge (non-manifold edge or inconsistent orientation).
	ErrDuplicateHalfEdge = errors.New("mesh: duplicate directed edge")

	// ErrBrokenTopology indicates an edit hit an unresolved or inconsistent link.
	ErrBrokenTopology = errors.New("mesh: broken topology")

	// ErrInvalidTopology is returned by Check when Validate reports violations.
	ErrInvalidTopology = errors.New("mesh: invalid topology")
)

// Vertex is a mesh point.
//
// Outgoing is a weak reference to one half-edge starting at this vertex.
// For boundary vertices Build points it at the outgoing boundary half-edge so
// that fan walks start on the boundary.
type Vertex struct {
	Position r3.Vec
	Outgoing int
}

// HalfEdge is one directed traversal of an undirected edge.
type HalfEdge struct {
	// Vertex is the index of the vertex this half-edge points to.
	Vertex int

	// Face is the index of the bordered face, or Boundary.
	Face int

	// Next and Prev walk the face loop (CCW) or the boundary loop.
	Next int
	Prev int

	// Opposite runs along the same edge in the other direction.
	Opposite int
}

// IsBoundary reports whether h is a synthetic boundary half-edge.
func (h HalfEdge) IsBoundary() bool { return h.Face == Boundary }

// Face is a triangle, identified by one half-edge of its CCW loop.
type Face struct {
	HalfEdge int
}

// Mesh is the half-edge engine. The zero value is an empty mesh ready for Build.
type Mesh struct {
	vertices  []Vertex
	faces     []Face
	halfEdges []HalfEdge

	// derived attributes, rebuilt by RecalculateNormals
	faceNormals   []r3.Vec
	faceAreas     []float64
	vertexNormals []r3.Vec
}

// New returns an empty Mesh.
func New() *Mesh {
	return &Mesh{}
}

// NewFromSource returns a Mesh built from src.
func NewFromSource(src Source) (*Mesh, error) {
	m := New()
	if err := m.Build(src); err != nil {
		return nil, err
	}

	return m, nil
}

// newHalfEdge returns a half-edge with all links unresolved.
func newHalfEdge(vertex, face int) HalfEdge {
	return HalfEdge{Vertex: vertex, Face: face, Next: NoIndex, Prev: NoIndex, Opposite: NoIndex}
}

// validHalfEdge reports whether e indexes the half-edge arena.
func (m *Mesh) validHalfEdge(e int) bool {
	return e >= 0 && e < len(m.halfEdges)
}
