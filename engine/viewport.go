package engine

import (
	"time"

	"github.com/lixenwraith/folio/content"
	"github.com/lixenwraith/folio/render"
	"github.com/lixenwraith/folio/render/renderers"
)

// viewport resizes the frame buffer and relays the content panel
type viewport struct {
	o    *render.RenderOrchestrator
	view *content.View
}

// Resize implements input.Resizer
func (v *viewport) Resize(width, height int) {
	v.o.Resize(width, height)
	_, _, pw, ph := renderers.PanelRect(width, height)
	v.view.Resize(renderers.PanelTextWidth(pw), ph)
}

// fpsSmoothing is the EMA weight of each new frame interval
const fpsSmoothing = 0.1

// fpsMeter tracks a smoothed frame rate
type fpsMeter struct {
	last time.Time
	rate float64
}

func (m *fpsMeter) observe(now time.Time) {
	if !m.last.IsZero() {
		if dt := now.Sub(m.last).Seconds(); dt > 0 {
			inst := 1 / dt
			if m.rate == 0 {
				m.rate = inst
			} else {
				m.rate += (inst - m.rate) * fpsSmoothing
			}
		}
	}
	m.last = now
}
