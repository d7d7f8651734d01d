package renderers

import (
	"math"

	"github.com/lixenwraith/folio/render"
	"github.com/lixenwraith/folio/scene"
)

// HaloRenderer draws the translucent glow spheres around skill bases
type HaloRenderer struct {
	state *scene.State
}

// NewHaloRenderer creates a halo renderer
func NewHaloRenderer(state *scene.State) *HaloRenderer {
	return &HaloRenderer{state: state}
}

// Render implements SystemRenderer
func (r *HaloRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	proj := newProjector(r.state.Camera, ctx.Width, ctx.Height)
	for _, h := range r.state.Halos {
		cx, cy, depth, ok := proj.cell(h.Position)
		if !ok {
			continue
		}
		rx, ry := proj.radius(h.Radius, depth)
		tintDisc(buf, cx, cy, max(rx, 1), max(ry, 0.5), h.Color, ctx.Alpha(h.Opacity))
	}
}

// tintDisc adds color to backgrounds inside an ellipse, fading to the edge
func tintDisc(buf *render.RenderBuffer, cx, cy int, rx, ry float64, color render.RGB, alpha float64) {
	for y := cy - int(ry) - 1; y <= cy+int(ry)+1; y++ {
		for x := cx - int(rx) - 1; x <= cx+int(rx)+1; x++ {
			if !buf.InBounds(x, y) {
				continue
			}
			dx := (float64(x) + 0.5 - (float64(cx) + 0.5)) / rx
			dy := (float64(y) + 0.5 - (float64(cy) + 0.5)) / ry
			t := math.Sqrt(dx*dx + dy*dy)
			if t > 1 {
				continue
			}
			buf.Set(x, y, 0, color, color, render.BlendAddBg, alpha*(1-t*0.7), render.AttrNone)
		}
	}
}

// Background tint under a node's body cells
const nodeBodyAlpha = 0.45

// NodeRenderer draws the skill spheres lit by ambient, key and mouse lights
type NodeRenderer struct {
	state *scene.State
}

// NewNodeRenderer creates a node renderer
func NewNodeRenderer(state *scene.State) *NodeRenderer {
	return &NodeRenderer{state: state}
}

// Render implements SystemRenderer
func (r *NodeRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	proj := newProjector(r.state.Camera, ctx.Width, ctx.Height)
	for _, n := range r.state.Nodes {
		cx, cy, depth, ok := proj.cell(n.Position)
		if !ok {
			continue
		}
		lit := ShadeNode(r.state, n)
		rx, ry := proj.radius(n.Radius*n.Scale, depth)

		// Body
		for y := cy - int(ry); y <= cy+int(ry); y++ {
			for x := cx - int(rx); x <= cx+int(rx); x++ {
				if x == cx && y == cy {
					continue
				}
				dx := float64(x-cx) / max(rx, 0.5)
				dy := float64(y-cy) / max(ry, 0.5)
				if dx*dx+dy*dy > 1 {
					continue
				}
				buf.Set(x, y, 0, lit, lit, render.BlendAlphaBg, nodeBodyAlpha, render.AttrNone)
				buf.Set(x, y, render.GlyphNodeEdge, lit, lit, render.BlendFgOnly, 1, render.AttrNone)
			}
		}
		buf.Set(cx, cy, render.GlyphNode, lit, lit, render.BlendFgOnly, 1, render.AttrBold)
	}
}

// ShadeNode returns a node's lit color: ambient and key light scale the base
// color, emissive glow adds to it and the mouse light tints it by proximity
func ShadeNode(s *scene.State, n scene.Node) render.RGB {
	base := n.Skill.Color
	key := s.KeyLight.Attenuation(n.Position) * 0.3
	lit := render.Scale(base, s.Ambient*0.5+key+n.Emissive)

	if s.MouseLight.Intensity > 0 {
		m := s.MouseLight.Attenuation(n.Position) / s.MouseLight.Intensity
		lit = render.Add(lit, s.MouseLight.Color, m*0.6)
	}
	// Keep near-black skills distinguishable from the backdrop
	if render.Luma(lit) < 0.12 {
		lit = render.Add(lit, render.Scale(render.RGBWhite, 0.25), 1)
	}
	return lit
}

// LabelRenderer draws the skill name billboards
type LabelRenderer struct {
	state *scene.State
}

// NewLabelRenderer creates a label renderer
func NewLabelRenderer(state *scene.State) *LabelRenderer {
	return &LabelRenderer{state: state}
}

// Render implements SystemRenderer
func (r *LabelRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	proj := newProjector(r.state.Camera, ctx.Width, ctx.Height)
	for _, l := range r.state.Labels {
		x, y, depth, ok := proj.cell(l.Position)
		if !ok {
			continue
		}
		// Labels on the far side of the globe read dimmer
		alpha := proj.depthFade(depth, scene.GlobeRadius, 0.55)
		render.DrawSprite(buf, l.Sprite, x, y, alpha)
	}
}
