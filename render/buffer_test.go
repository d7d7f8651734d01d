package render

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestRenderBufferResize(t *testing.T) {
	buf := NewRenderBuffer(10, 5)
	buf.SetWithBg(9, 4, 'a', RGBWhite, RGBBlack)

	buf.Resize(4, 3)
	if w, h := buf.Bounds(); w != 4 || h != 3 {
		t.Fatalf("Bounds = %dx%d, want 4x3", w, h)
	}
	if buf.InBounds(4, 0) || buf.InBounds(0, 3) || !buf.InBounds(3, 2) {
		t.Error("InBounds disagrees with new dimensions")
	}
	if c := buf.Get(3, 2); c.Rune != 0 {
		t.Errorf("resized buffer not cleared, rune %q", c.Rune)
	}

	// Out of bounds writes are dropped
	buf.SetFgOnly(-1, 0, 'z', RGBWhite, AttrNone)
	buf.SetFgOnly(100, 100, 'z', RGBWhite, AttrNone)

	buf.Resize(-3, 2)
	if w, h := buf.Bounds(); w != 0 || h != 2 {
		t.Errorf("negative width not clamped: %dx%d", w, h)
	}
}

func TestRenderBufferFirstTouchComposesOverBackdrop(t *testing.T) {
	buf := NewRenderBuffer(1, 1)
	buf.Set(0, 0, 0, RGB{}, RGBWhite, BlendAlphaBg, 0, AttrNone)
	if got := buf.Get(0, 0).Bg; got != RgbBackground {
		t.Errorf("zero-alpha tint bg = %v, want backdrop %v", got, RgbBackground)
	}
}

func TestFlushToSimulationScreen(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("screen init: %v", err)
	}
	defer screen.Fini()
	screen.SetSize(8, 2)

	buf := NewRenderBuffer(8, 2)
	buf.SetString(1, 0, "Go", RGB{0, 255, 0}, AttrBold)
	buf.SetBgOnly(0, 1, RGB{1, 2, 3})
	buf.FlushTo(screen)

	r, _, style, _ := screen.GetContent(1, 0)
	if r != 'G' {
		t.Errorf("cell (1,0) = %q, want 'G'", r)
	}
	fg, _, attrs := style.Decompose()
	if fg != tcell.NewRGBColor(0, 255, 0) {
		t.Errorf("fg = %v, want green", fg)
	}
	if attrs&tcell.AttrBold == 0 {
		t.Error("bold attribute lost")
	}

	_, _, style, _ = screen.GetContent(0, 1)
	if _, bg, _ := style.Decompose(); bg != tcell.NewRGBColor(1, 2, 3) {
		t.Errorf("touched bg = %v, want {1,2,3}", bg)
	}

	r, _, style, _ = screen.GetContent(7, 1)
	if r != ' ' {
		t.Errorf("empty cell rune = %q, want space", r)
	}
	if _, bg, _ := style.Decompose(); bg != RGBToTcell(RgbBackground) {
		t.Errorf("untouched bg = %v, want backdrop", bg)
	}
}
