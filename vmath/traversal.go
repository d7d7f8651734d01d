package vmath

// GridTraverser is a zero-allocation Bresenham iterator over integer grid cells
// Visits every cell from (x1, y1) to (x2, y2) inclusive, one step per call to Next
type GridTraverser struct {
	currX, currY     int
	targetX, targetY int
	stepX, stepY     int
	dx, dy           int
	err              int

	started bool
	done    bool
}

// NewGridTraverser creates a new iterator from (x1, y1) to (x2, y2)
func NewGridTraverser(x1, y1, x2, y2 int) GridTraverser {
	t := GridTraverser{
		currX: x1, currY: y1,
		targetX: x2, targetY: y2,
		stepX: 1, stepY: 1,
	}

	t.dx = x2 - x1
	if t.dx < 0 {
		t.dx = -t.dx
		t.stepX = -1
	}
	t.dy = y2 - y1
	if t.dy < 0 {
		t.dy = -t.dy
		t.stepY = -1
	}
	t.dy = -t.dy
	t.err = t.dx + t.dy

	return t
}

// Next advances the traverser to the next cell
// Returns true if a valid cell is available via Pos()
func (t *GridTraverser) Next() bool {
	if t.done {
		return false
	}
	if !t.started {
		t.started = true
		return true
	}

	if t.currX == t.targetX && t.currY == t.targetY {
		t.done = true
		return false
	}

	e2 := 2 * t.err
	if e2 >= t.dy {
		t.err += t.dy
		t.currX += t.stepX
	}
	if e2 <= t.dx {
		t.err += t.dx
		t.currY += t.stepY
	}

	return true
}

// Pos returns the current grid coordinates
func (t *GridTraverser) Pos() (int, int) {
	return t.currX, t.currY
}
