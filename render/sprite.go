package render

// SpriteCell is one texel of a pre-rendered sprite
type SpriteCell struct {
	Rune      rune
	Fg        RGB
	Glow      RGB
	GlowAlpha float64
}

// Sprite is an immutable cell texture drawn as a camera-facing billboard
type Sprite struct {
	Width, Height int
	Cells         []SpriteCell
}

// Label layout constants
const (
	labelGlowRadius = 2
	labelGlowAlpha  = 0.55
)

// NewLabelSprite rasterizes name onto an offscreen canvas with a glow in color
// ok is false when no drawing context is available; callers skip the label
func NewLabelSprite(name string, color RGB) (sprite *Sprite, ok bool) {
	textW := StringCells(name)
	w, h := 0, 1+2*(labelGlowRadius/2)
	if textW > 0 {
		w = textW + 2*labelGlowRadius
	}

	canvas := NewCanvas(w, h)
	ctx := canvas.Context()
	if ctx == nil {
		return nil, false
	}

	ctx.ShadowColor = color
	ctx.ShadowBlur = labelGlowRadius
	ctx.ShadowAlpha = labelGlowAlpha
	ctx.FillStyle = RGBWhite
	ctx.FillText(name, w/2, h/2)

	return canvas.Sprite(), true
}

// DrawSprite composites s centered at (cx, cy) with overall opacity alpha
func DrawSprite(buf *RenderBuffer, s *Sprite, cx, cy int, alpha float64) {
	if s == nil || alpha <= 0 {
		return
	}
	x0 := cx - s.Width/2
	y0 := cy - s.Height/2
	for y := 0; y < s.Height; y++ {
		for x := 0; x < s.Width; x++ {
			c := s.Cells[y*s.Width+x]
			if c.GlowAlpha > 0 {
				buf.Set(x0+x, y0+y, 0, c.Glow, c.Glow, BlendAlphaBg, c.GlowAlpha*alpha, AttrNone)
			}
			if c.Rune != 0 {
				prev := buf.Get(x0+x, y0+y).Fg
				buf.SetFgOnly(x0+x, y0+y, c.Rune, Blend(prev, c.Fg, alpha), AttrBold)
			}
		}
	}
}
