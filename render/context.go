package render

// RenderContext provides frame state for renderers, passed by value
type RenderContext struct {
	// Frame counter, equal to the scene tick at render time
	Frame uint64

	// Scene time accumulator
	Time float64

	// Screen dimensions (terminal size)
	Width  int
	Height int

	// Charset for density-shaded glyphs
	Charset Charset

	// Gain maps scene opacities to terminal intensity; scene materials are
	// tuned for additive GPU blending and read too dim on a cell grid at 1.0
	Gain float64
}

// Alpha applies gain to a scene opacity, saturating at 1
func (c RenderContext) Alpha(opacity float64) float64 {
	g := c.Gain
	if g <= 0 {
		g = 1
	}
	return min(opacity*g, 1)
}
