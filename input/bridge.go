package input

import (
	"log"
	"sync/atomic"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/folio/scene"
)

// Resizer receives viewport dimensions; the render orchestrator and content
// panel implement it
type Resizer interface {
	Resize(width, height int)
}

// Bridge forwards terminal events into the scene: pointer motion moves the
// mouse light and camera target, resizes update buffers and camera aspect
// After Detach every event is ignored
type Bridge struct {
	state   *scene.State
	resizer Resizer
	keys    *KeyTable

	// Pixel size of one terminal cell, used for pseudo-pixel pointer offsets
	cellW float64
	cellH float64

	width  int
	height int
	halfX  float64
	halfY  float64

	// NDC of the last pointer position
	ndcX float64
	ndcY float64

	resizes  int
	detached atomic.Bool
}

// NewBridge creates a bridge; keys nil selects the default table
func NewBridge(state *scene.State, resizer Resizer, keys *KeyTable, cellW, cellH float64) *Bridge {
	if keys == nil {
		keys = DefaultKeyTable()
	}
	return &Bridge{
		state:   state,
		resizer: resizer,
		keys:    keys,
		cellW:   max(cellW, 1),
		cellH:   max(cellH, 1),
	}
}

// Handle dispatches one event and returns the intent it maps to
func (b *Bridge) Handle(ev tcell.Event) IntentType {
	if b.detached.Load() {
		return IntentNone
	}
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return b.keys.Lookup(ev)

	case *tcell.EventResize:
		w, h := ev.Size()
		b.HandleResize(w, h)

	case *tcell.EventMouse:
		x, y := ev.Position()
		b.HandleMouse(x, y)
		switch btn := ev.Buttons(); {
		case btn&tcell.WheelUp != 0:
			return IntentScrollUp
		case btn&tcell.WheelDown != 0:
			return IntentScrollDown
		}
	}
	return IntentNone
}

// HandleMouse moves the mouse light onto the z=0 plane under the pointer and
// updates the camera's pointer offset
func (b *Bridge) HandleMouse(x, y int) bool {
	if b.detached.Load() || b.width <= 0 || b.height <= 0 {
		return false
	}

	b.ndcX, b.ndcY = scene.CellToNDC(x, y, b.width, b.height)
	if hit, ok := b.state.Camera.RayPlaneZ(b.ndcX, b.ndcY); ok {
		b.state.MoveMouseLight(hit)
	}

	px := (float64(x) + 0.5) * b.cellW
	py := (float64(y) + 0.5) * b.cellH
	b.state.SetPointer((px-b.halfX)/scene.PointerDivisor, (py-b.halfY)/scene.PointerDivisor)
	return true
}

// HandleResize applies new viewport dimensions once, computing the aspect
// from scratch
func (b *Bridge) HandleResize(width, height int) bool {
	if b.detached.Load() {
		return false
	}
	b.width, b.height = max(width, 0), max(height, 0)
	b.halfX = float64(b.width) * b.cellW / 2
	b.halfY = float64(b.height) * b.cellH / 2

	if b.resizer != nil {
		b.resizer.Resize(b.width, b.height)
	}
	b.state.SetAspect(scene.PixelAspect(b.width, b.height, b.cellW, b.cellH))
	b.resizes++
	log.Printf("Resize %dx%d aspect %.3f", b.width, b.height, b.state.Camera.Aspect)
	return true
}

// Detach stops event forwarding; safe to call from any goroutine
func (b *Bridge) Detach() {
	b.detached.Store(true)
}

// Attached reports whether the bridge still forwards events
func (b *Bridge) Attached() bool {
	return !b.detached.Load()
}

// Resizes returns the number of applied resize events
func (b *Bridge) Resizes() int {
	return b.resizes
}

// Pointer returns the NDC of the last pointer position
func (b *Bridge) Pointer() (ndcX, ndcY float64) {
	return b.ndcX, b.ndcY
}
