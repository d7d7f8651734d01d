package renderers

import (
	"fmt"

	"github.com/lixenwraith/folio/render"
)

var (
	statusFg = render.Hex(0x7a8499)
	statusBg = render.RGB{R: 10, G: 14, B: 30}
	statusOn = render.Hex(0x00aaff)
)

// Status is the live state shown in the status bar
type Status struct {
	Audio   bool
	Content bool
	FPS     float64
}

// StatusRenderer draws key hints and toggles on the bottom row
type StatusRenderer struct {
	status func() Status
}

// NewStatusRenderer creates a status bar reading state through fn each frame
func NewStatusRenderer(fn func() Status) *StatusRenderer {
	return &StatusRenderer{status: fn}
}

// Render implements SystemRenderer
func (r *StatusRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	y := ctx.Height - 1
	if y < 0 {
		return
	}
	for x := 0; x < ctx.Width; x++ {
		buf.SetWithBg(x, y, ' ', statusFg, statusBg)
	}

	st := r.status()
	x := 1
	x += buf.SetString(x, y, "folio", statusOn, render.AttrBold)
	x += buf.SetString(x, y, "  q quit  ↑↓ scroll  ", statusFg, render.AttrNone)

	x += buf.SetString(x, y, "tab content:", statusFg, render.AttrNone)
	x += buf.SetString(x, y, onOff(st.Content), toggleColor(st.Content), render.AttrNone)
	x += buf.SetString(x, y, "  m audio:", statusFg, render.AttrNone)
	buf.SetString(x, y, onOff(st.Audio), toggleColor(st.Audio), render.AttrNone)

	if st.FPS > 0 {
		fps := fmt.Sprintf("%.0f fps", st.FPS)
		buf.SetString(ctx.Width-render.StringCells(fps)-1, y, fps, statusFg, render.AttrDim)
	}
}

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}

func toggleColor(v bool) render.RGB {
	if v {
		return statusOn
	}
	return statusFg
}
