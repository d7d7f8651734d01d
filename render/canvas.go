package render

// MaxCanvasCells bounds offscreen canvas area, mirroring a host texture size limit
const MaxCanvasCells = 64 * 16

// Canvas is an offscreen raster of cells used to pre-render sprites
type Canvas struct {
	width, height int
	cells         []SpriteCell
}

// NewCanvas allocates an offscreen canvas; dimensions may be zero
func NewCanvas(width, height int) *Canvas {
	c := &Canvas{width: max(width, 0), height: max(height, 0)}
	if c.width*c.height > 0 && c.width*c.height <= MaxCanvasCells {
		c.cells = make([]SpriteCell, c.width*c.height)
	}
	return c
}

// Context acquires the 2D drawing context
// Returns nil when the canvas has no drawable area or exceeds MaxCanvasCells
func (c *Canvas) Context() *DrawContext {
	if c.cells == nil {
		return nil
	}
	return &DrawContext{canvas: c, FillStyle: RGBWhite}
}

// Sprite snapshots the canvas into an immutable sprite texture
func (c *Canvas) Sprite() *Sprite {
	cells := make([]SpriteCell, len(c.cells))
	copy(cells, c.cells)
	return &Sprite{Width: c.width, Height: c.height, Cells: cells}
}

func (c *Canvas) at(x, y int) *SpriteCell {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return nil
	}
	return &c.cells[y*c.width+x]
}

// DrawContext draws text with an optional colored shadow glow onto a canvas
type DrawContext struct {
	canvas *Canvas

	FillStyle   RGB
	ShadowColor RGB
	// ShadowBlur is the glow radius in cells; 0 disables the shadow pass
	ShadowBlur int
	// ShadowAlpha is the glow opacity adjacent to glyphs
	ShadowAlpha float64
}

// FillText draws s horizontally centered on cx at row cy
func (d *DrawContext) FillText(s string, cx, cy int) {
	w := StringCells(s)
	x0 := cx - w/2

	if d.ShadowBlur > 0 {
		d.shadow(x0, cy, w)
	}

	x := x0
	for _, r := range s {
		if cell := d.canvas.at(x, cy); cell != nil {
			cell.Rune = r
			cell.Fg = d.FillStyle
		}
		x += runeCells(r)
	}
}

// shadow spreads glow around the text span [x0, x0+w) on row cy
// Falloff is linear in Chebyshev distance, rows count double for cell aspect
func (d *DrawContext) shadow(x0, cy, w int) {
	blur := d.ShadowBlur
	for y := cy - blur; y <= cy+blur; y++ {
		for x := x0 - blur; x < x0+w+blur; x++ {
			cell := d.canvas.at(x, y)
			if cell == nil {
				continue
			}
			dx := 0
			if x < x0 {
				dx = x0 - x
			} else if x >= x0+w {
				dx = x - (x0 + w - 1)
			}
			dy := y - cy
			if dy < 0 {
				dy = -dy
			}
			dist := max(dx, dy*2)
			if dist > blur {
				continue
			}
			a := d.ShadowAlpha * (1 - float64(dist)/float64(blur+1))
			if a > cell.GlowAlpha {
				cell.GlowAlpha = a
				cell.Glow = d.ShadowColor
			}
		}
	}
}
