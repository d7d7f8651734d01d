package renderers

import (
	"github.com/lixenwraith/folio/render"
	"github.com/lixenwraith/folio/scene"
)

// Point size that maps to unit energy per particle
const particleRefSize = 0.15

// ParticleRenderer draws the orbiting particle shells with additive blending
type ParticleRenderer struct {
	state *scene.State
	acc   splat
}

// NewParticleRenderer creates a particle renderer
func NewParticleRenderer(state *scene.State) *ParticleRenderer {
	return &ParticleRenderer{state: state}
}

// Render implements SystemRenderer
func (r *ParticleRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	proj := newProjector(r.state.Camera, ctx.Width, ctx.Height)
	r.acc.reset(ctx.Width, ctx.Height)

	for _, grp := range r.state.Particles {
		e := ctx.Alpha(grp.Opacity) * grp.Size / particleRefSize
		for i, p := range grp.Particles {
			x, y, depth, ok := proj.cell(p.Position)
			if !ok {
				continue
			}
			fade := proj.depthFade(depth, scene.ParticleBandOuter, 0.5)
			r.acc.add(x, y, grp.Colors[i], e*fade)
		}
	}

	cs := ctx.Charset
	r.acc.flush(buf, func(d float64) rune {
		if d < 0.05 {
			return 0
		}
		if d >= 0.6 || cs == render.CharsetASCII {
			return render.GlyphParticle
		}
		return render.DensityGlyph(d, cs)
	}, render.BlendAddFg)
}
