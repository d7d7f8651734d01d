package renderers

import (
	"math"

	"github.com/lixenwraith/folio/render"
	"github.com/lixenwraith/folio/scene"
	"github.com/lixenwraith/folio/vmath"
)

// AtmosphereRenderer tints a back-side shell as a disc behind the globe,
// brightest toward the limb
type AtmosphereRenderer struct {
	state *scene.State
	shell *scene.Shell
}

// NewAtmosphereRenderer creates a renderer for one atmosphere shell
func NewAtmosphereRenderer(state *scene.State, shell *scene.Shell) *AtmosphereRenderer {
	return &AtmosphereRenderer{state: state, shell: shell}
}

// Render implements SystemRenderer
func (r *AtmosphereRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	sh := r.shell
	if sh.Opacity <= 0 || sh.Scale <= 0 {
		return
	}
	proj := newProjector(r.state.Camera, ctx.Width, ctx.Height)
	cx, cy, depth, ok := proj.cell(vmath.Zero3F)
	if !ok {
		return
	}
	rx, ry := proj.radius(sh.Radius*sh.Scale, depth)
	if rx < 1 || ry < 1 {
		return
	}
	alpha := ctx.Alpha(sh.Opacity)

	for y := max(cy-int(ry)-1, 0); y <= min(cy+int(ry)+1, ctx.Height-1); y++ {
		for x := max(cx-int(rx)-1, 0); x <= min(cx+int(rx)+1, ctx.Width-1); x++ {
			dx := (float64(x) + 0.5 - float64(cx)) / rx
			dy := (float64(y) + 0.5 - float64(cy)) / ry
			t := math.Sqrt(dx*dx + dy*dy)
			if t > 1 {
				continue
			}
			// Back faces of a sphere read as a rim glow
			a := alpha * (0.3 + 0.7*t*t)
			buf.Set(x, y, 0, sh.Color, sh.Color, render.BlendAddBg, a, render.AttrNone)
		}
	}
}
