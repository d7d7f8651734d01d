package renderers

import (
	"github.com/lixenwraith/folio/render"
	"github.com/lixenwraith/folio/scene"
	"github.com/lixenwraith/folio/vmath"
)

// brightStarSize separates large stars drawn with the bright glyph
const brightStarSize = 0.12

// StarfieldRenderer draws the rotating background stars
type StarfieldRenderer struct {
	state *scene.State
}

// NewStarfieldRenderer creates a starfield renderer
func NewStarfieldRenderer(state *scene.State) *StarfieldRenderer {
	return &StarfieldRenderer{state: state}
}

// Render implements SystemRenderer
func (r *StarfieldRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	sf := &r.state.Stars
	proj := newProjector(r.state.Camera, ctx.Width, ctx.Height)
	alpha := ctx.Alpha(sf.Opacity)

	for _, st := range sf.Stars {
		p := vmath.RotateEuler(st.Position, sf.Rotation)
		x, y, _, ok := proj.cell(p)
		if !ok || !buf.InBounds(x, y) {
			continue
		}
		glyph := render.GlyphStarDim
		a := alpha * 0.7
		if st.Size >= brightStarSize {
			glyph = render.GlyphStarBright
			a = alpha
		}
		buf.Set(x, y, glyph, st.Color, render.RGBBlack, render.BlendMaxFg, a, render.AttrNone)
	}
}
