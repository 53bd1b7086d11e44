package main

import (
	"fmt"
	"math"
	"sort"

	"github.com/gogpu/gg"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/saltbread1/hemesh/mesh"
	"github.com/saltbread1/hemesh/traverse"
)

// light is the direction toward the light in view space.
var light = r3.Unit(r3.Vec{X: -0.4, Y: -1, Z: 0.6})

const ambient = 0.25

// view rotates model space into view space: the viewer looks along +Y,
// screen x follows +X and screen up follows +Z.
type view struct {
	yaw, pitch    r3.Rotation
	scale, cx, cy float64
}

func newView(cfg config, radius float64) view {
	yaw := r3.NewRotation(cfg.View.Yaw*math.Pi/180, r3.Vec{Z: 1})
	pitch := r3.NewRotation(cfg.View.Pitch*math.Pi/180, r3.Vec{X: 1})
	side := math.Min(float64(cfg.Size.Width), float64(cfg.Size.Height))
	if radius <= 0 {
		radius = 1
	}
	return view{
		yaw:   yaw,
		pitch: pitch,
		scale: cfg.View.Scale * side / (2 * radius),
		cx:    float64(cfg.Size.Width) / 2,
		cy:    float64(cfg.Size.Height) / 2,
	}
}

func (v view) apply(p r3.Vec) r3.Vec { return v.pitch.Rotate(v.yaw.Rotate(p)) }

func (v view) screen(q r3.Vec) (x, y float64) {
	return v.cx + v.scale*q.X, v.cy - v.scale*q.Z
}

// drawFace is one visible face queued for painter's ordering.
type drawFace struct {
	face  int
	depth float64
	shade float64
}

// render paints m into a new context: visible faces far-to-near with flat
// Lambert shading, their edges, then the boundary loops on top.
func render(m *mesh.Mesh, cfg config) (*gg.Context, error) {
	palette, err := facePalette(m, cfg)
	if err != nil {
		return nil, err
	}
	v := newView(cfg, boundingRadius(m))

	var queue []drawFace
	for f := 0; f < m.FaceCount(); f++ {
		n, _ := m.FaceNormal(f)
		vn := v.apply(n)
		if vn.Y >= 0 {
			continue // facing away
		}
		depth := 0.0
		for _, vi := range m.FaceVertices(f) {
			p, _ := m.VertexPosition(vi)
			depth += v.apply(p).Y
		}
		shade := ambient + (1-ambient)*math.Max(0, r3.Dot(vn, light))
		queue = append(queue, drawFace{face: f, depth: depth, shade: shade})
	}
	sort.SliceStable(queue, func(i, j int) bool { return queue[i].depth > queue[j].depth })

	dc := gg.NewContext(cfg.Size.Width, cfg.Size.Height)
	dc.ClearWithColor(gg.Hex(cfg.Colors.Background))

	edge := gg.Hex(cfg.Colors.Edge)
	dc.SetLineWidth(1)
	for _, q := range queue {
		base := palette[q.face]
		tracePolygon(dc, v, m, m.FaceVertices(q.face))
		dc.SetRGBA(base.R*q.shade, base.G*q.shade, base.B*q.shade, base.A)
		if err := dc.FillPreserve(); err != nil {
			return nil, fmt.Errorf("meshsketch: fill face %d: %w", q.face, err)
		}
		dc.SetRGBA(edge.R, edge.G, edge.B, edge.A)
		if err := dc.Stroke(); err != nil {
			return nil, fmt.Errorf("meshsketch: stroke face %d: %w", q.face, err)
		}
	}

	boundary := gg.Hex(cfg.Colors.Boundary)
	dc.SetRGBA(boundary.R, boundary.G, boundary.B, boundary.A)
	dc.SetLineWidth(2.5)
	for _, loop := range m.BoundaryLoops() {
		corners := make([]int, 0, len(loop))
		for _, e := range loop {
			corners = append(corners, m.Origin(e))
		}
		tracePolygon(dc, v, m, corners)
		if err := dc.Stroke(); err != nil {
			return nil, fmt.Errorf("meshsketch: stroke boundary: %w", err)
		}
	}

	return dc, nil
}

// tracePolygon adds the closed projected polygon through the given vertices.
func tracePolygon(dc *gg.Context, v view, m *mesh.Mesh, vertices []int) {
	for i, vi := range vertices {
		p, _ := m.VertexPosition(vi)
		x, y := v.screen(v.apply(p))
		if i == 0 {
			dc.MoveTo(x, y)
		} else {
			dc.LineTo(x, y)
		}
	}
	dc.ClosePath()
}

// facePalette assigns a base color to every face.
//
//	none:      cfg.Colors.Fill everywhere
//	component: one hue per edge-connected part
//	region:    one hue per crease-bounded region (traverse.FlatterThan)
func facePalette(m *mesh.Mesh, cfg config) ([]gg.RGBA, error) {
	out := make([]gg.RGBA, m.FaceCount())
	fill := gg.Hex(cfg.Colors.Fill)
	for f := range out {
		out[f] = fill
	}

	var groups [][]int
	switch cfg.ColorBy {
	case "component":
		groups = traverse.Components(m)
	case "region":
		flat := traverse.FlatterThan(m, cfg.CreaseDegrees*math.Pi/180)
		seen := make([]bool, m.FaceCount())
		for f := range seen {
			if seen[f] {
				continue
			}
			res, err := traverse.Faces(m, f, traverse.WithFilterNeighbor(func(curr, nbr int) bool {
				return !seen[nbr] && flat(curr, nbr)
			}))
			if err != nil {
				return nil, fmt.Errorf("meshsketch: region from face %d: %w", f, err)
			}
			for _, g := range res.Order {
				seen[g] = true
			}
			groups = append(groups, res.Order)
		}
	default:
		return out, nil
	}

	const golden = 137.50776 // degrees; spreads consecutive hues
	for i, group := range groups {
		c := gg.HSL(math.Mod(float64(i)*golden, 360), 0.6, 0.55)
		for _, f := range group {
			out[f] = c
		}
	}
	return out, nil
}

// boundingRadius is the largest distance of a vertex from the origin.
func boundingRadius(m *mesh.Mesh) float64 {
	r := 0.0
	m.ForEachVertex(func(_ int, p r3.Vec) {
		r = math.Max(r, r3.Norm(p))
	})
	return r
}
