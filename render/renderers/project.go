package renderers

import (
	"math"

	"github.com/lixenwraith/folio/render"
	"github.com/lixenwraith/folio/scene"
	"github.com/lixenwraith/folio/vmath"
)

// projector maps scene points to buffer cells for one frame
type projector struct {
	cam  *scene.Camera
	w, h int
}

func newProjector(cam *scene.Camera, w, h int) projector {
	return projector{cam: cam, w: w, h: h}
}

// cell projects p to the cell containing it
func (p projector) cell(v vmath.Vec3F) (x, y int, depth float64, ok bool) {
	nx, ny, depth, ok := p.cam.Project(v)
	if !ok {
		return 0, 0, depth, false
	}
	col, row := scene.NDCToCell(nx, ny, p.w, p.h)
	if math.IsNaN(col) || math.IsNaN(row) || math.Abs(col) > 1e6 || math.Abs(row) > 1e6 {
		return 0, 0, depth, false
	}
	return int(math.Floor(col)), int(math.Floor(row)), depth, true
}

// radius converts a world radius at depth to cell half-extents
func (p projector) radius(r, depth float64) (rx, ry float64) {
	ndc := p.cam.ScreenRadius(r, depth)
	ry = ndc * float64(p.h) / 2
	rx = ndc / p.cam.Aspect * float64(p.w) / 2
	return rx, ry
}

// depthFade dims points on the far side of a sphere of radius r at the origin
// Returns 1 on the near limb and floor on the far limb
func (p projector) depthFade(depth, r, floor float64) float64 {
	center := vmath.V3FMag(p.cam.Position)
	if r <= 0 {
		return 1
	}
	t := (depth - (center - r)) / (2 * r)
	t = min(max(t, 0), 1)
	return 1 - t*(1-floor)
}

// splat accumulates additive point energy per cell before glyph selection
type splat struct {
	w, h   int
	energy []float64
	r      []float64
	g      []float64
	b      []float64
}

func (s *splat) reset(w, h int) {
	n := w * h
	if cap(s.energy) < n {
		s.energy = make([]float64, n)
		s.r = make([]float64, n)
		s.g = make([]float64, n)
		s.b = make([]float64, n)
	} else {
		s.energy = s.energy[:n]
		s.r = s.r[:n]
		s.g = s.g[:n]
		s.b = s.b[:n]
		clear(s.energy)
		clear(s.r)
		clear(s.g)
		clear(s.b)
	}
	s.w, s.h = w, h
}

func (s *splat) add(x, y int, c render.RGB, e float64) {
	if x < 0 || y < 0 || x >= s.w || y >= s.h || e <= 0 {
		return
	}
	i := y*s.w + x
	s.energy[i] += e
	s.r[i] += float64(c.R) * e
	s.g[i] += float64(c.G) * e
	s.b[i] += float64(c.B) * e
}

// line rasterizes the segment a→b, depositing e per visited cell
func (s *splat) line(x1, y1, x2, y2 int, c render.RGB, e float64) {
	// Skip segments that blow up near the camera plane
	if abs(x2-x1) > 4*s.w || abs(y2-y1) > 4*s.h {
		return
	}
	t := vmath.NewGridTraverser(x1, y1, x2, y2)
	for t.Next() {
		x, y := t.Pos()
		s.add(x, y, c, e)
	}
}

// flush writes accumulated cells into buf; glyph picks the rune for a density
func (s *splat) flush(buf *render.RenderBuffer, glyph func(density float64) rune, mode render.BlendMode) {
	for i, e := range s.energy {
		if e <= 0 {
			continue
		}
		density := min(e, 1)
		r := glyph(density)
		if r == 0 {
			continue
		}
		col := render.RGB{
			R: uint8(min(s.r[i]/e, 255)),
			G: uint8(min(s.g[i]/e, 255)),
			B: uint8(min(s.b[i]/e, 255)),
		}
		// Brightness follows energy so faint cells stay faint
		col = render.Scale(col, 0.35+0.65*density)
		buf.Set(i%s.w, i/s.w, r, col, col, mode, 1, render.AttrNone)
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
