// Package hemesh is an in-memory half-edge engine for triangle meshes: build a
// topology from raw vertex/triangle lists, query adjacency, edit it in place,
// subdivide it and check that it is still sound.
//
// What is inside?
//
//	mesh/     — Vertex, HalfEdge, Face records and the Mesh engine:
//	            Build, adjacency queries, SplitEdge, Subdivide, normals, Validate
//	builder/  — procedural mesh.Source producers (icosahedron, Platonic solids, grid plane)
//	objfile/  — line-oriented OBJ importer (v / f records) producing mesh.Data
//	traverse/ — breadth-first walks over the face-adjacency graph
//	cmd/      — meshsketch, a small renderer of subdivided solids to PNG
//
// Quick ASCII example (the unit quad split along its diagonal):
//
//	3───2
//	│ ╱ │     faces (0,1,2) and (0,2,3), CCW
//	0───1
//
// yields 4 vertices, 2 faces, 6 interior + 4 boundary half-edges and 5 edges.
//
// The engine itself never logs; packages that do (objfile, cmd/meshsketch)
// share the logger configured through SetLogger.
//
//	go get github.com/saltbread1/hemesh
package hemesh
