// Command meshsketch builds or imports a triangle mesh, subdivides it,
// checks its half-edge topology and renders it to a PNG.
//
// Usage:
//
//	meshsketch [-config sketch.yaml] [-out sketch.png] [-obj out.obj] [-v]
//
// Without -config a level-2 geodesic sphere is rendered. The exit status is
// non-zero when the config is invalid, the source cannot be read, or the
// mesh fails its topology check.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/saltbread1/hemesh"
	"github.com/saltbread1/hemesh/mesh"
	"github.com/saltbread1/hemesh/objfile"
)

func main() {
	if err := run(os.Args[1:], os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run is main without the process exit, so tests can drive it.
func run(args []string, stderr io.Writer) error {
	fs := flag.NewFlagSet("meshsketch", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		configPath = fs.String("config", "", "YAML sketch config (default: geodesic sphere)")
		out        = fs.String("out", "sketch.png", "output PNG file")
		objOut     = fs.String("obj", "", "also write the final mesh as OBJ to this file")
		verbose    = fs.Bool("v", false, "debug logging")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	hemesh.SetLogger(log)
	defer hemesh.SetLogger(nil)

	cfg, err := loadConfig(*configPath)
	if err != nil {
		return err
	}

	m, err := buildMesh(cfg, log)
	if err != nil {
		return err
	}

	if err := saveSketch(m, cfg, *out); err != nil {
		return err
	}
	log.Info("rendered", "out", *out, "width", cfg.Size.Width, "height", cfg.Size.Height)

	if *objOut != "" {
		if err := writeOBJ(*objOut, m); err != nil {
			return err
		}
		log.Info("exported", "obj", *objOut)
	}
	return nil
}

// buildMesh loads the source, subdivides it and checks the result.
func buildMesh(cfg config, log *slog.Logger) (*mesh.Mesh, error) {
	src, err := loadSource(cfg)
	if err != nil {
		return nil, err
	}
	m, err := mesh.NewFromSource(src)
	if err != nil {
		return nil, fmt.Errorf("meshsketch: build %s: %w", cfg.Source, err)
	}
	log.Debug("built", "source", cfg.Source,
		"vertices", m.VertexCount(), "faces", m.FaceCount(), "edges", m.EdgeCount())

	if err := m.SubdivideN(cfg.Subdivisions, interpolator(cfg)); err != nil {
		return nil, fmt.Errorf("meshsketch: %w", err)
	}
	if err := m.Check(); err != nil {
		for _, line := range m.Validate() {
			log.Error("topology violation", "detail", line)
		}
		return nil, fmt.Errorf("meshsketch: %w", err)
	}
	log.Info("mesh ready",
		"vertices", m.VertexCount(), "faces", m.FaceCount(), "edges", m.EdgeCount(),
		"boundary_loops", len(m.BoundaryLoops()), "area", m.SurfaceArea())

	return m, nil
}

// saveSketch renders m and writes the PNG to path. The context is always
// closed; a Close failure is reported alongside any earlier error.
func saveSketch(m *mesh.Mesh, cfg config, path string) (err error) {
	dc, err := render(m, cfg)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := dc.Close(); cerr != nil {
			err = errors.Join(err, fmt.Errorf("meshsketch: close canvas: %w", cerr))
		}
	}()

	if err := dc.SavePNG(path); err != nil {
		return fmt.Errorf("meshsketch: save %s: %w", path, err)
	}
	return nil
}

func writeOBJ(path string, m *mesh.Mesh) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("meshsketch: %w", err)
	}
	if err := objfile.Write(f, m.Data()); err != nil {
		f.Close()
		return fmt.Errorf("meshsketch: %s: %w", path, err)
	}
	return f.Close()
}
