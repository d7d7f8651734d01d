package renderers

import (
	"github.com/lixenwraith/folio/render"
	"github.com/lixenwraith/folio/scene"
)

// MouseLightRenderer marks the pointer light on the z=0 plane
type MouseLightRenderer struct {
	state *scene.State
}

// NewMouseLightRenderer creates a mouse light renderer
func NewMouseLightRenderer(state *scene.State) *MouseLightRenderer {
	return &MouseLightRenderer{state: state}
}

// Render implements SystemRenderer
func (r *MouseLightRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	l := r.state.MouseLight
	proj := newProjector(r.state.Camera, ctx.Width, ctx.Height)
	x, y, _, ok := proj.cell(l.Position)
	if !ok {
		return
	}
	tintDisc(buf, x, y, 3, 1.5, l.Color, ctx.Alpha(0.25))
	buf.Set(x, y, render.GlyphLight, l.Color, l.Color, render.BlendMaxFg, 1, render.AttrBold)
}
