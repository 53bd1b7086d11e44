package main

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/saltbread1/hemesh/builder"
	"github.com/saltbread1/hemesh/mesh"
	"github.com/saltbread1/hemesh/objfile"
)

// loadSource turns cfg.Source into raw geometry.
func loadSource(cfg config) (*mesh.Data, error) {
	var opts []builder.BuilderOption
	opts = append(opts, builder.WithRadius(cfg.Radius))
	if cfg.Jitter > 0 {
		opts = append(opts, builder.WithJitter(cfg.Jitter), builder.WithSeed(cfg.Seed))
	}

	if strings.EqualFold(cfg.Source, "grid") {
		return builder.Grid(cfg.Grid.Rows, cfg.Grid.Cols,
			append(opts, builder.WithSize(2*cfg.Radius, 2*cfg.Radius))...)
	}
	if name, ok := builder.ParsePlatonicName(cfg.Source); ok {
		return builder.PlatonicSolid(name, opts...)
	}
	if strings.HasSuffix(strings.ToLower(cfg.Source), ".obj") {
		return objfile.Load(cfg.Source)
	}

	return nil, fmt.Errorf("%w: unknown source %q", errConfig, cfg.Source)
}

// interpolator maps the config keyword to a subdivision policy. "sphere"
// projects edge points onto the origin-centered sphere of cfg.Radius.
func interpolator(cfg config) mesh.Interpolator {
	if cfg.Interpolation == "sphere" {
		return mesh.OnSphere(r3.Vec{}, cfg.Radius)
	}
	return mesh.Linear
}
