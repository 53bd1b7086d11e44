package main

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"
)

var errConfig = errors.New("meshsketch: invalid config")

// hexColor accepts the forms gg.Hex understands.
var hexColor = regexp.MustCompile(`^#?([0-9a-fA-F]{3,4}|[0-9a-fA-F]{6}|[0-9a-fA-F]{8})$`)

// config is the YAML sketch description.
type config struct {
	// Source is a solid name ("icosahedron", "cube", ...), "grid", or a path
	// to an .obj file.
	Source string `yaml:"source"`
	// Radius of solids.
	Radius float64 `yaml:"radius"`
	// Grid vertex counts, used when Source is "grid".
	Grid gridConfig `yaml:"grid"`
	// Subdivisions is the number of 1→4 subdivision passes.
	Subdivisions int `yaml:"subdivisions"`
	// Interpolation places edge points: "linear" or "sphere".
	Interpolation string `yaml:"interpolation"`
	// Jitter displaces generated vertices; needs Seed.
	Jitter float64 `yaml:"jitter"`
	Seed   int64   `yaml:"seed"`
	// Size of the output image in pixels.
	Size sizeConfig `yaml:"size"`
	// View orientation and zoom.
	View viewConfig `yaml:"view"`
	// ColorBy selects the face palette: "none", "component" or "region".
	ColorBy string `yaml:"color_by"`
	// CreaseDegrees bounds the normal deviation inside one "region".
	CreaseDegrees float64      `yaml:"crease_degrees"`
	Colors        colorsConfig `yaml:"colors"`
}

type gridConfig struct {
	Rows int `yaml:"rows"`
	Cols int `yaml:"cols"`
}

type sizeConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

type viewConfig struct {
	// Yaw turns the model about +Z, then Pitch tilts it about +X (degrees).
	Yaw   float64 `yaml:"yaw"`
	Pitch float64 `yaml:"pitch"`
	// Scale is the fraction of the shorter image side the model spans.
	Scale float64 `yaml:"scale"`
}

type colorsConfig struct {
	Background string `yaml:"background"`
	Fill       string `yaml:"fill"`
	Edge       string `yaml:"edge"`
	Boundary   string `yaml:"boundary"`
}

// defaultConfig renders a level-2 geodesic sphere.
func defaultConfig() config {
	return config{
		Source:        "icosahedron",
		Radius:        1,
		Grid:          gridConfig{Rows: 8, Cols: 8},
		Subdivisions:  2,
		Interpolation: "sphere",
		Size:          sizeConfig{Width: 512, Height: 512},
		View:          viewConfig{Yaw: 20, Pitch: 25, Scale: 0.8},
		ColorBy:       "none",
		CreaseDegrees: 30,
		Colors: colorsConfig{
			Background: "#101418",
			Fill:       "#4a90d9",
			Edge:       "#0b0f14",
			Boundary:   "#ff5a36",
		},
	}
}

// loadConfig reads path over the defaults. Unknown keys are rejected.
func loadConfig(path string) (config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, cfg.validate()
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("meshsketch: %w", err)
	}
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return cfg, fmt.Errorf("%w: %s: %v", errConfig, path, err)
	}

	return cfg, cfg.validate()
}

// validate checks value domains before any work starts.
func (c config) validate() error {
	var errs []error
	if c.Source == "" {
		errs = append(errs, errors.New("source is empty"))
	}
	if c.Radius <= 0 {
		errs = append(errs, fmt.Errorf("radius %g must be > 0", c.Radius))
	}
	if c.Subdivisions < 0 || c.Subdivisions > 8 {
		errs = append(errs, fmt.Errorf("subdivisions %d outside 0..8", c.Subdivisions))
	}
	switch c.Interpolation {
	case "linear", "sphere":
	default:
		errs = append(errs, fmt.Errorf("interpolation %q (want linear or sphere)", c.Interpolation))
	}
	if c.Jitter < 0 {
		errs = append(errs, fmt.Errorf("jitter %g must be ≥ 0", c.Jitter))
	}
	if c.Size.Width <= 0 || c.Size.Height <= 0 {
		errs = append(errs, fmt.Errorf("size %dx%d must be positive", c.Size.Width, c.Size.Height))
	}
	if c.View.Scale <= 0 {
		errs = append(errs, fmt.Errorf("view scale %g must be > 0", c.View.Scale))
	}
	switch c.ColorBy {
	case "none", "component", "region":
	default:
		errs = append(errs, fmt.Errorf("color_by %q (want none, component or region)", c.ColorBy))
	}
	for _, col := range [][2]string{
		{"background", c.Colors.Background}, {"fill", c.Colors.Fill},
		{"edge", c.Colors.Edge}, {"boundary", c.Colors.Boundary},
	} {
		if !hexColor.MatchString(col[1]) {
			errs = append(errs, fmt.Errorf("colors.%s %q is not a hex color", col[0], col[1]))
		}
	}
	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", errConfig, errors.Join(errs...))
}
