package renderers

import (
	"math"

	"github.com/lixenwraith/folio/content"
	"github.com/lixenwraith/folio/render"
)

// Panel geometry
const (
	PanelMaxWidth = 72
	PanelMargin   = 2
	panelPadding  = 2
	panelAlpha    = 0.6
)

var panelBg = render.RGB{R: 8, G: 12, B: 28}

// PanelRect returns the content panel placement for a w×h screen; the last
// row is reserved for the status bar
func PanelRect(w, h int) (x, y, pw, ph int) {
	pw = max(min(PanelMaxWidth, w-2*PanelMargin), 0)
	ph = max(h-3, 0)
	return (w - pw) / 2, 1, pw, ph
}

// PanelTextWidth is the wrap width inside a panel of width pw
func PanelTextWidth(pw int) int {
	return max(pw-2*panelPadding, 0)
}

// ContentRenderer draws the portfolio sections over the scene with
// per-section reveal fades and slides
type ContentRenderer struct {
	view *content.View
}

// NewContentRenderer creates a content panel renderer
func NewContentRenderer(view *content.View) *ContentRenderer {
	return &ContentRenderer{view: view}
}

// IsVisible implements render.VisibilityToggle
func (r *ContentRenderer) IsVisible() bool {
	return r.view.IsVisible()
}

// Render implements SystemRenderer
func (r *ContentRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	px, py, pw, ph := PanelRect(ctx.Width, ctx.Height)
	if pw <= 2*panelPadding || ph <= 0 {
		return
	}

	for y := py; y < py+ph; y++ {
		for x := px; x < px+pw; x++ {
			buf.Set(x, y, 0, panelBg, panelBg, render.BlendAlphaBg, panelAlpha, render.AttrNone)
		}
	}

	lines := r.view.Lines()
	off := r.view.Offset()
	_, vh := r.view.Size()
	tx := px + panelPadding

	for row := 0; row < min(vh, ph); row++ {
		i := off + row
		if i >= len(lines) {
			break
		}
		l := lines[i]
		if l.Text == "" {
			continue
		}
		p := r.view.Progress(l.Section, l.Item)
		if p <= 0 {
			continue
		}
		// Slide up into place while fading in
		y := py + row + int(math.Round((1-p)*content.SlideLines))
		if y >= py+ph {
			continue
		}
		fg := render.Blend(panelBg, l.Color, p)
		attrs := render.AttrNone
		switch l.Kind {
		case content.KindName, content.KindHeading:
			attrs = render.AttrBold
		case content.KindField, content.KindFooter:
			attrs = render.AttrDim
		}
		text := render.Truncate(l.Text, pw-2*panelPadding, "…")
		buf.SetString(tx, y, text, fg, attrs)
	}

	r.scrollbar(buf, px+pw-1, py, ph, len(lines))
}

// scrollbar marks the visible window on the panel's right edge
func (r *ContentRenderer) scrollbar(buf *render.RenderBuffer, x, y, h, total int) {
	if total <= h || h <= 0 {
		return
	}
	thumb := max(h*h/total, 1)
	pos := r.view.Offset() * (h - thumb) / max(r.view.MaxOffset(), 1)
	for i := 0; i < h; i++ {
		glyph, c := '│', colorTrack
		if i >= pos && i < pos+thumb {
			glyph, c = '┃', colorThumb
		}
		buf.SetFgOnly(x, y+i, glyph, c, render.AttrNone)
	}
}

var (
	colorTrack = render.RGB{R: 40, G: 50, B: 80}
	colorThumb = render.Hex(0x00aaff)
)
