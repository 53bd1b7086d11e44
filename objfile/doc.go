// Package objfile reads and writes the geometry subset of Wavefront OBJ
// text: vertex positions ("v") and faces ("f").
//
// Reading
//
//   - "v x y z [w]": the optional w is ignored.
//   - "f a b c [d ...]": 1-based indices; "a/t/n", "a//n" and "a/t" forms
//     keep only the position index; negative indices count back from the
//     last vertex read so far. Polygons are fan-triangulated from their
//     first corner.
//   - Blank lines, "#" comments and every other record (vt, vn, o, g, s,
//     usemtl, mtllib, ...) are ignored.
//   - Malformed lines (missing coordinates, bad numbers, out-of-range or
//     zero indices, fewer than three corners) are logged at Warn level with
//     their line number through hemesh.Logger and skipped. Triangles that
//     repeat a vertex are dropped the same way. Only reader errors abort.
//
// Writing
//
//	Write emits "v" lines then "f" lines (1-based) for any mesh.Source,
//	so Parse(Write(src)) reproduces src.
package objfile
