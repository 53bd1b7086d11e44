// Package builder defines shared constants used by the mesh producers,
// ensuring consistent defaults and validation across all of them.
package builder

//-----------------------------------------------------------------------------
// Builder Method Name Constants
//   used to prefix errors with the producer name for context.
//-----------------------------------------------------------------------------

const (
	// MethodCompose is the canonical name for the Compose orchestrator.
	MethodCompose = "Compose"
	// MethodGrid is the canonical name for the Grid producer.
	MethodGrid = "Grid"
	// MethodPlatonicSolid is the canonical name for the PlatonicSolid producer.
	MethodPlatonicSolid = "PlatonicSolid"
)

//-----------------------------------------------------------------------------
// Minimum Sizes
//-----------------------------------------------------------------------------

// MinGridDim is the smallest allowed vertex count along a Grid axis.
// Two vertices per axis make a single cell (two triangles).
const MinGridDim = 2

//-----------------------------------------------------------------------------
// Geometry Defaults
//-----------------------------------------------------------------------------

// DefaultRadius is the circumradius of solids when WithRadius is not given.
const DefaultRadius = 1.0

// DefaultSize is the extent of a Grid along X and Y when WithSize is not given.
const DefaultSize = 1.0
