package objfile

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/saltbread1/hemesh/mesh"
)

// Write emits src as OBJ text: one "v" line per position, then one "f" line
// per triangle with 1-based indices. Coordinates use the shortest
// representation that parses back to the same float64.
func Write(w io.Writer, src mesh.Source) error {
	if src == nil {
		return fmt.Errorf("objfile: %w", mesh.ErrNilSource)
	}
	bw := bufio.NewWriter(w)
	for _, p := range src.Positions() {
		fmt.Fprintf(bw, "v %s %s %s\n", ftoa(p.X), ftoa(p.Y), ftoa(p.Z))
	}
	for _, t := range src.Triangles() {
		fmt.Fprintf(bw, "f %d %d %d\n", t[0]+1, t[1]+1, t[2]+1)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("objfile: write: %w", err)
	}
	return nil
}

func ftoa(f float64) string { return strconv.FormatFloat(f, 'g', -1, 64) }
