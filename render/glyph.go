package render

import (
	"fmt"
	"strings"
)

// Charset selects the glyph ramp used for density-shaded points
type Charset int

const (
	CharsetASCII Charset = iota
	CharsetBlocks
	CharsetBraille
)

// ParseCharset resolves a charset name
func ParseCharset(s string) (Charset, error) {
	switch strings.ToLower(s) {
	case "", "ascii":
		return CharsetASCII, nil
	case "blocks", "block":
		return CharsetBlocks, nil
	case "braille":
		return CharsetBraille, nil
	}
	return CharsetASCII, fmt.Errorf("unknown charset %q", s)
}

func (c Charset) String() string {
	switch c {
	case CharsetBlocks:
		return "blocks"
	case CharsetBraille:
		return "braille"
	default:
		return "ascii"
	}
}

var (
	asciiRamp   = []rune{'`', '.', '-', '+', '=', 'o', '%', '#', '@'}
	blockRamp   = []rune{'·', '▁', '▂', '▃', '▄', '░', '▒', '▓', '█'}
	brailleRamp = []rune{'⠁', '⠂', '⠄', '⡀', '⣀', '⣤', '⣦', '⣶', '⣾'}
)

// DensityGlyph maps density in [0, 1] to a glyph of the charset ramp
// Returns 0 below the visibility floor so callers can skip the cell
func DensityGlyph(density float64, cs Charset) rune {
	if density < 0.05 {
		return 0
	}
	ramp := asciiRamp
	switch cs {
	case CharsetBlocks:
		ramp = blockRamp
	case CharsetBraille:
		ramp = brailleRamp
	}
	if density >= 1 {
		return ramp[len(ramp)-1]
	}
	return ramp[int(density*float64(len(ramp)))]
}

// Fixed glyphs shared by scene layers
const (
	GlyphStarDim    = '·'
	GlyphStarBright = '*'
	GlyphParticle   = '•'
	GlyphNode       = '●'
	GlyphNodeEdge   = '○'
	GlyphLight      = '✦'
)
