package scene

// NDCToCell maps normalized device coordinates to fractional cell coordinates
// on a w×h grid; row 0 is the top of the screen
func NDCToCell(ndcX, ndcY float64, w, h int) (col, row float64) {
	col = (ndcX + 1) / 2 * float64(w)
	row = (1 - ndcY) / 2 * float64(h)
	return col, row
}

// CellToNDC maps the center of cell (col, row) to normalized device coordinates
func CellToNDC(col, row, w, h int) (ndcX, ndcY float64) {
	if w <= 0 || h <= 0 {
		return 0, 0
	}
	x := float64(col) + 0.5
	y := float64(row) + 0.5
	ndcX = (x/float64(w))*2 - 1
	ndcY = -(y/float64(h))*2 + 1
	return ndcX, ndcY
}

// PixelAspect returns the pixel aspect of a w×h cell grid with the given cell size
func PixelAspect(w, h int, cellW, cellH float64) float64 {
	if w <= 0 || h <= 0 || cellW <= 0 || cellH <= 0 {
		return 1
	}
	return (float64(w) * cellW) / (float64(h) * cellH)
}
