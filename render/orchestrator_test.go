package render

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

type recordingSurface struct {
	w, h  int
	shows int
	cells map[[2]int]rune
}

func newRecordingSurface(w, h int) *recordingSurface {
	return &recordingSurface{w: w, h: h, cells: make(map[[2]int]rune)}
}

func (s *recordingSurface) SetContent(x, y int, r rune, _ []rune, _ tcell.Style) {
	s.cells[[2]int{x, y}] = r
}
func (s *recordingSurface) Show()            { s.shows++ }
func (s *recordingSurface) Size() (int, int) { return s.w, s.h }

type stampRenderer struct {
	r       rune
	visible bool
	calls   *[]rune
}

func (s stampRenderer) Render(ctx RenderContext, buf *RenderBuffer) {
	*s.calls = append(*s.calls, s.r)
	buf.SetFgOnly(0, 0, s.r, RGBWhite, AttrNone)
}

func (s stampRenderer) IsVisible() bool { return s.visible }

func TestOrchestratorPriorityOrder(t *testing.T) {
	surface := newRecordingSurface(3, 1)
	o := NewRenderOrchestrator(surface, 3, 1)

	var calls []rune
	o.Register(stampRenderer{'c', true, &calls}, PriorityLabels)
	o.Register(stampRenderer{'a', true, &calls}, PriorityStars)
	o.Register(stampRenderer{'b', true, &calls}, PriorityStars)
	o.Register(stampRenderer{'h', false, &calls}, PriorityUI)

	o.RenderFrame(RenderContext{})

	if string(calls) != "abc" {
		t.Errorf("render order = %q, want %q", string(calls), "abc")
	}
	if surface.cells[[2]int{0, 0}] != 'c' {
		t.Errorf("top layer = %q, want 'c'", surface.cells[[2]int{0, 0}])
	}
	if surface.shows != 1 {
		t.Errorf("Show called %d times, want 1", surface.shows)
	}
}

func TestOrchestratorRendersEveryFrame(t *testing.T) {
	surface := newRecordingSurface(2, 2)
	o := NewRenderOrchestrator(surface, 2, 2)
	var calls []rune
	o.Register(stampRenderer{'x', true, &calls}, PriorityNodes)

	for i := 0; i < 5; i++ {
		o.RenderFrame(RenderContext{Frame: 1})
	}
	if len(calls) != 5 || surface.shows != 5 {
		t.Errorf("identical frames skipped: %d renders, %d shows", len(calls), surface.shows)
	}
}

func TestRenderContextAlpha(t *testing.T) {
	tests := []struct {
		gain, opacity, want float64
	}{
		{0, 0.15, 0.15},
		{4, 0.15, 0.6},
		{4, 0.5, 1},
	}
	for _, tt := range tests {
		got := RenderContext{Gain: tt.gain}.Alpha(tt.opacity)
		if got < tt.want-1e-9 || got > tt.want+1e-9 {
			t.Errorf("Alpha(gain=%v, %v) = %v, want %v", tt.gain, tt.opacity, got, tt.want)
		}
	}
}

func TestDensityGlyph(t *testing.T) {
	if DensityGlyph(0.01, CharsetASCII) != 0 {
		t.Error("below floor should be invisible")
	}
	if DensityGlyph(2, CharsetBlocks) != '█' {
		t.Error("saturated density should map to last ramp glyph")
	}
	if cs, err := ParseCharset("braille"); err != nil || cs != CharsetBraille {
		t.Errorf("ParseCharset(braille) = %v, %v", cs, err)
	}
	if _, err := ParseCharset("emoji"); err == nil {
		t.Error("expected error for unknown charset")
	}
}
