package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// Surface is the drawable output region. tcell.Screen satisfies it
type Surface interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
	Show()
	Size() (int, int)
}

// RGBToTcell converts RGB to tcell.Color
func RGBToTcell(rgb RGB) tcell.Color {
	return tcell.NewRGBColor(int32(rgb.R), int32(rgb.G), int32(rgb.B))
}

// TcellToRGB converts tcell.Color to RGB
// Treats ColorDefault as the backdrop color
func TcellToRGB(c tcell.Color) RGB {
	if c == tcell.ColorDefault {
		return RgbBackground
	}
	r, g, b := c.RGB()
	return RGB{uint8(r), uint8(g), uint8(b)}
}

// CellStyle builds the tcell style for a composited cell
func CellStyle(c Cell) tcell.Style {
	return tcell.StyleDefault.
		Foreground(RGBToTcell(c.Fg)).
		Background(RGBToTcell(c.Bg)).
		Attributes(c.Attrs)
}

// runeCells returns the display width of r, at least 1
func runeCells(r rune) int {
	return max(runewidth.RuneWidth(r), 1)
}

// StringCells returns the display width of s
func StringCells(s string) int {
	return runewidth.StringWidth(s)
}

// Truncate shortens s to fit in width cells, appending tail when cut
func Truncate(s string, width int, tail string) string {
	return runewidth.Truncate(s, width, tail)
}
