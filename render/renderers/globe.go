package renderers

import (
	"github.com/lixenwraith/folio/render"
	"github.com/lixenwraith/folio/scene"
	"github.com/lixenwraith/folio/vmath"
)

// Far-side wire edges keep this share of their brightness
const wireBackFade = 0.35

// WireframeRenderer draws a rotating wireframe shell (globe, inner globe)
type WireframeRenderer struct {
	state *scene.State
	shell *scene.Shell
	acc   splat
}

// NewWireframeRenderer creates a renderer for one of the state's wire shells
func NewWireframeRenderer(state *scene.State, shell *scene.Shell) *WireframeRenderer {
	return &WireframeRenderer{state: state, shell: shell}
}

// Render implements SystemRenderer
func (r *WireframeRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	sh := r.shell
	if sh.Wire == nil || sh.Opacity <= 0 {
		return
	}
	proj := newProjector(r.state.Camera, ctx.Width, ctx.Height)
	r.acc.reset(ctx.Width, ctx.Height)

	color := render.Add(sh.Color, sh.Emissive, 0.5)
	energy := ctx.Alpha(sh.Opacity)
	radius := sh.Radius * sh.Scale

	for _, e := range sh.Wire.Edges {
		a := vmath.V3FScale(vmath.RotateEuler(e.A, sh.Rotation), sh.Scale)
		b := vmath.V3FScale(vmath.RotateEuler(e.B, sh.Rotation), sh.Scale)
		x1, y1, d1, ok1 := proj.cell(a)
		x2, y2, d2, ok2 := proj.cell(b)
		if !ok1 || !ok2 {
			continue
		}
		fade := proj.depthFade((d1+d2)/2, radius, wireBackFade)
		r.acc.line(x1, y1, x2, y2, color, energy*fade)
	}

	cs := ctx.Charset
	r.acc.flush(buf, func(d float64) rune { return render.DensityGlyph(d, cs) }, render.BlendMaxFg)
}
