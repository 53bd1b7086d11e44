// SPDX-License-Identifier: MIT
// Package: hemesh/objfile
//
// parse.go — line-oriented OBJ reader.

package objfile

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/saltbread1/hemesh"
	"github.com/saltbread1/hemesh/mesh"
)

// ErrNilReader is returned when Parse is handed a nil reader.
var ErrNilReader = errors.New("objfile: reader is nil")

// maxLineBytes bounds a single OBJ line; long polygon records exceed the
// bufio.Scanner default of 64 KiB.
const maxLineBytes = 1 << 20

// Stats summarizes one parse.
type Stats struct {
	// Lines is the number of lines read.
	Lines int
	// Vertices is the number of accepted "v" records.
	Vertices int
	// Faces is the number of accepted "f" records.
	Faces int
	// Triangles is the number of triangles emitted after fan triangulation.
	Triangles int
	// Skipped is the number of malformed lines (and dropped degenerate
	// triangles) that were logged and ignored.
	Skipped int
	// Ignored is the number of well-formed records of other kinds.
	Ignored int
}

// Parse reads OBJ text from r into a mesh.Data.
func Parse(r io.Reader) (*mesh.Data, error) {
	d, _, err := ParseWithStats(r)
	return d, err
}

// Load opens path and parses it.
func Load(path string) (*mesh.Data, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("objfile: %w", err)
	}
	defer f.Close()

	d, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("objfile: %s: %w", path, err)
	}
	return d, nil
}

// ParseWithStats is Parse that also reports what was read and skipped.
// On a reader error the geometry read so far is returned with the error.
func ParseWithStats(r io.Reader) (*mesh.Data, Stats, error) {
	var st Stats
	if r == nil {
		return nil, st, ErrNilReader
	}

	log := hemesh.Logger()
	d := &mesh.Data{}
	skip := func(line int, reason, text string) {
		st.Skipped++
		log.Warn("objfile: skipping line", "line", line, "reason", reason, "text", text)
	}

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	for sc.Scan() {
		st.Lines++
		text := strings.TrimSpace(sc.Text())
		if text == "" || text[0] == '#' {
			continue
		}
		fields := strings.Fields(text)

		switch fields[0] {
		case "v":
			p, err := parseVertex(fields[1:])
			if err != nil {
				skip(st.Lines, err.Error(), text)
				continue
			}
			d.AddVertex(p)
			st.Vertices++

		case "f":
			corners, err := parseFace(fields[1:], len(d.Vertices))
			if err != nil {
				skip(st.Lines, err.Error(), text)
				continue
			}
			st.Faces++
			for i := 1; i+1 < len(corners); i++ {
				a, b, c := corners[0], corners[i], corners[i+1]
				if a == b || b == c || c == a {
					skip(st.Lines, fmt.Sprintf("degenerate triangle %d/%d/%d", a+1, b+1, c+1), text)
					continue
				}
				d.AddTriangle(a, b, c)
				st.Triangles++
			}

		default:
			st.Ignored++
		}
	}
	if err := sc.Err(); err != nil {
		return d, st, fmt.Errorf("objfile: line %d: %w", st.Lines+1, err)
	}

	log.Debug("objfile: parsed",
		"lines", st.Lines, "vertices", st.Vertices, "faces", st.Faces,
		"triangles", st.Triangles, "skipped", st.Skipped)
	return d, st, nil
}

// parseVertex reads the x y z coordinates of a "v" record.
func parseVertex(args []string) (r3.Vec, error) {
	if len(args) < 3 {
		return r3.Vec{}, fmt.Errorf("vertex needs 3 coordinates, got %d", len(args))
	}
	var xyz [3]float64
	for i := range xyz {
		f, err := strconv.ParseFloat(args[i], 64)
		if err != nil {
			return r3.Vec{}, fmt.Errorf("coordinate %d: %q is not a number", i+1, args[i])
		}
		xyz[i] = f
	}
	return r3.Vec{X: xyz[0], Y: xyz[1], Z: xyz[2]}, nil
}

// parseFace resolves the position index of every corner of an "f" record
// to a 0-based vertex index, given n vertices read so far.
func parseFace(args []string, n int) ([]int, error) {
	if len(args) < 3 {
		return nil, fmt.Errorf("face needs 3 corners, got %d", len(args))
	}
	corners := make([]int, len(args))
	for i, s := range args {
		head, _, _ := strings.Cut(s, "/")
		idx, err := strconv.Atoi(head)
		if err != nil {
			return nil, fmt.Errorf("corner %d: %q is not an index", i+1, s)
		}
		switch {
		case idx > 0 && idx <= n:
			corners[i] = idx - 1
		case idx < 0 && -idx <= n:
			corners[i] = n + idx
		default:
			return nil, fmt.Errorf("corner %d: index %d outside 1..%d", i+1, idx, n)
		}
	}
	return corners, nil
}
