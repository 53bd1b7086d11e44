// SPDX-License-Identifier: MIT
// Package: hemesh/builder
//
// impl_grid.go — implementation of the Plane(rows, cols) constructor.
//
// Canonical model:
//   • rows×cols vertices in row-major order (index r·cols + c), spanning
//     width×height in the XY plane, centered on cfg.center.
//   • Row r runs along +X, rows advance along +Y.
//   • Each cell (r,c) yields (v00, v01, v11) and (v00, v11, v10): CCW seen
//     from +Z, sharing the diagonal v00–v11.
//
// Contract:
//   • rows ≥ MinGridDim and cols ≥ MinGridDim (else ErrTooFewVertices).
//   • Jitter offsets Z only; requires an RNG (else ErrNeedRandSource).
//
// Complexity:
//   • Time: O(rows·cols) vertices + O(rows·cols) faces.
//   • Space: O(1) extra.

package builder

import (
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/saltbread1/hemesh/mesh"
)

// Plane returns a Constructor that appends a triangulated rows×cols plane.
func Plane(rows, cols int) Constructor {
	return func(d *mesh.Data, cfg builderConfig) error {
		if err := validateMin(MethodGrid, "rows,cols", MinGridDim, rows, cols); err != nil {
			return err
		}
		if err := validateRand(MethodGrid, cfg); err != nil {
			return err
		}

		base := len(d.Vertices)
		x0 := cfg.center.X - cfg.width/2
		y0 := cfg.center.Y - cfg.height/2
		dx := cfg.width / float64(cols-1)
		dy := cfg.height / float64(rows-1)
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				d.AddVertex(r3.Vec{
					X: x0 + dx*float64(c),
					Y: y0 + dy*float64(r),
					Z: cfg.center.Z + cfg.displacement(),
				})
			}
		}

		for r := 0; r+1 < rows; r++ {
			for c := 0; c+1 < cols; c++ {
				v00 := base + r*cols + c
				v01, v10, v11 := v00+1, v00+cols, v00+cols+1
				d.AddTriangle(v00, v01, v11)
				d.AddTriangle(v00, v11, v10)
			}
		}

		return nil
	}
}
