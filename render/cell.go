package render

import "github.com/gdamore/tcell/v2"

// Attr aliases tcell attributes so layers do not import tcell for bold/dim text
type Attr = tcell.AttrMask

const (
	AttrNone = tcell.AttrNone
	AttrBold = tcell.AttrBold
	AttrDim  = tcell.AttrDim
)

// Cell is one composited terminal cell
type Cell struct {
	Rune  rune
	Fg    RGB
	Bg    RGB
	Attrs Attr
}

// emptyCell is the cleared state: no glyph, background left to finalize
var emptyCell = Cell{
	Rune:  0,
	Fg:    RgbBackground,
	Bg:    RGBBlack,
	Attrs: AttrNone,
}
