package renderers

import (
	"github.com/lixenwraith/folio/render"
	"github.com/lixenwraith/folio/scene"
)

// ConnectionRenderer draws the curved connectors between skill nodes
type ConnectionRenderer struct {
	state *scene.State
	acc   splat
}

// NewConnectionRenderer creates a connection renderer
func NewConnectionRenderer(state *scene.State) *ConnectionRenderer {
	return &ConnectionRenderer{state: state}
}

// Render implements SystemRenderer
func (r *ConnectionRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	if len(r.state.Connections) == 0 {
		return
	}
	proj := newProjector(r.state.Camera, ctx.Width, ctx.Height)
	r.acc.reset(ctx.Width, ctx.Height)

	for _, c := range r.state.Connections {
		e := ctx.Alpha(c.Opacity)
		px, py, _, prevOK := proj.cell(c.Points[0])
		for _, p := range c.Points[1:] {
			x, y, _, ok := proj.cell(p)
			if ok && prevOK {
				r.acc.line(px, py, x, y, c.Color, e)
			}
			px, py, prevOK = x, y, ok
		}
	}

	cs := ctx.Charset
	r.acc.flush(buf, func(d float64) rune { return render.DensityGlyph(d, cs) }, render.BlendMaxFg)
}
