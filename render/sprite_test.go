package render

import (
	"strings"
	"testing"
)

func spriteText(s *Sprite, row int) string {
	var b strings.Builder
	for x := 0; x < s.Width; x++ {
		if r := s.Cells[row*s.Width+x].Rune; r != 0 {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func TestNewLabelSprite(t *testing.T) {
	color := Hex(0x61dafb)
	s, ok := NewLabelSprite("React", color)
	if !ok {
		t.Fatal("expected label sprite")
	}
	if s.Width != 5+2*labelGlowRadius || s.Height != 3 {
		t.Errorf("sprite size = %dx%d, want %dx3", s.Width, s.Height, 5+2*labelGlowRadius)
	}
	if got := spriteText(s, 1); got != "React" {
		t.Errorf("middle row text = %q, want %q", got, "React")
	}

	// Glyph cells are white, glow carries the skill color
	mid := s.Cells[1*s.Width+labelGlowRadius]
	if mid.Fg != RGBWhite {
		t.Errorf("glyph fg = %v, want white", mid.Fg)
	}
	edge := s.Cells[1*s.Width]
	if edge.GlowAlpha <= 0 || edge.Glow != color {
		t.Errorf("edge glow = %v@%v, want %v with positive alpha", edge.Glow, edge.GlowAlpha, color)
	}
	if edge.GlowAlpha >= mid.GlowAlpha {
		t.Errorf("glow does not fall off: edge %v >= center %v", edge.GlowAlpha, mid.GlowAlpha)
	}
}

func TestNewLabelSpriteSkippedWithoutContext(t *testing.T) {
	tests := []struct {
		name  string
		label string
	}{
		{"Empty name has no drawable area", ""},
		{"Oversized canvas", strings.Repeat("W", MaxCanvasCells)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if s, ok := NewLabelSprite(tt.label, RGBWhite); ok || s != nil {
				t.Errorf("expected label to be skipped, got %+v", s)
			}
		})
	}
}

func TestCanvasContextNil(t *testing.T) {
	if NewCanvas(0, 5).Context() != nil {
		t.Error("zero-width canvas returned a context")
	}
	if NewCanvas(3, 3).Context() == nil {
		t.Error("valid canvas returned nil context")
	}
}

func TestDrawSpriteClipsAndBlends(t *testing.T) {
	s, ok := NewLabelSprite("Go", RGB{0, 0, 255})
	if !ok {
		t.Fatal("expected sprite")
	}
	buf := NewRenderBuffer(4, 3)
	// Centered near the left edge so part of the sprite is clipped
	DrawSprite(buf, s, 1, 1, 1)

	found := false
	for x := 0; x < 4; x++ {
		if buf.Get(x, 1).Rune == 'G' {
			found = true
		}
	}
	if !found {
		t.Error("label glyph not drawn")
	}

	empty := NewRenderBuffer(4, 3)
	DrawSprite(empty, s, 1, 1, 0)
	if empty.Get(1, 1).Rune != 0 {
		t.Error("zero alpha sprite drew glyphs")
	}
}
