package renderers

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/folio/content"
	"github.com/lixenwraith/folio/render"
	"github.com/lixenwraith/folio/scene"
	"github.com/lixenwraith/folio/vmath"
)

const (
	testW = 80
	testH = 24
)

func testState(skills []scene.Skill) *scene.State {
	p := scene.DefaultParams()
	p.Skills = skills
	p.StarCount = 0
	p.ParticlesPerShell = 0
	p.Aspect = scene.PixelAspect(testW, testH, 8, 16)
	p.Rand = rand.New(rand.NewSource(1))
	return scene.Build(p)
}

func testCtx() render.RenderContext {
	return render.RenderContext{Width: testW, Height: testH, Charset: render.CharsetASCII, Gain: 4}
}

func rowText(buf *render.RenderBuffer, y int) string {
	w, _ := buf.Bounds()
	var b strings.Builder
	for x := 0; x < w; x++ {
		r := buf.Get(x, y).Rune
		if r == 0 {
			r = ' '
		}
		b.WriteRune(r)
	}
	return b.String()
}

func countGlyphs(buf *render.RenderBuffer) int {
	w, h := buf.Bounds()
	n := 0
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if r := buf.Get(x, y).Rune; r != 0 && r != ' ' {
				n++
			}
		}
	}
	return n
}

func TestProjectorCenter(t *testing.T) {
	s := testState(nil)
	proj := newProjector(s.Camera, testW, testH)
	x, y, depth, ok := proj.cell(vmath.Zero3F)
	if !ok || x != testW/2 || y != testH/2 {
		t.Errorf("Expected origin at (%d,%d), got (%d,%d) ok=%v", testW/2, testH/2, x, y, ok)
	}
	if depth != scene.CameraDistance {
		t.Errorf("Expected depth %v, got %v", scene.CameraDistance, depth)
	}

	// Cells are twice as tall as wide, so a sphere spans twice the columns
	rx, ry := proj.radius(scene.GlobeRadius, depth)
	if rx <= ry*1.9 || rx >= ry*2.1 {
		t.Errorf("Expected rx ≈ 2·ry, got rx=%v ry=%v", rx, ry)
	}
}

func TestStarfieldRenderer(t *testing.T) {
	s := testState(nil)
	s.Stars.Stars = []scene.Star{
		{Position: vmath.Vec3F{Z: -200}, Size: 0.14, Color: render.RGBWhite},
		{Position: vmath.Vec3F{Z: 500}, Size: 0.14, Color: render.RGBWhite},
	}
	buf := render.NewRenderBuffer(testW, testH)

	NewStarfieldRenderer(s).Render(testCtx(), buf)

	if r := buf.Get(testW/2, testH/2).Rune; r != render.GlyphStarBright {
		t.Errorf("Expected bright star at center, got %q", r)
	}
	if n := countGlyphs(buf); n != 1 {
		t.Errorf("Expected star behind the camera culled, got %d glyphs", n)
	}
}

func TestWireframeRenderer(t *testing.T) {
	s := testState(nil)
	buf := render.NewRenderBuffer(testW, testH)
	r := NewWireframeRenderer(s, &s.Globe)

	r.Render(testCtx(), buf)
	if countGlyphs(buf) == 0 {
		t.Fatalf("Expected globe wireframe glyphs")
	}

	buf.Clear()
	s.Globe.Opacity = 0
	r.Render(testCtx(), buf)
	if n := countGlyphs(buf); n != 0 {
		t.Errorf("Expected no glyphs at zero opacity, got %d", n)
	}
}

func TestAtmosphereTintsBackground(t *testing.T) {
	s := testState(nil)
	buf := render.NewRenderBuffer(testW, testH)
	NewAtmosphereRenderer(s, &s.Atmosphere).Render(testCtx(), buf)

	c := buf.Get(testW/2, testH/2)
	if c.Rune != 0 {
		t.Errorf("Expected atmosphere to leave glyphs alone, got %q", c.Rune)
	}
	if c.Bg == render.RgbBackground || c.Bg.B <= render.RgbBackground.B {
		t.Errorf("Expected blue tint at center, got %+v", c.Bg)
	}
	if corner := buf.Get(0, 0); corner.Bg != (render.RGB{}) {
		t.Errorf("Expected corner untouched, got %+v", corner.Bg)
	}
}

func TestNodeAndLabelRenderers(t *testing.T) {
	skills := []scene.Skill{
		{Name: "Go", Icon: "G", Position: vmath.Zero3F, Color: render.Hex(0x00add8)},
	}
	s := testState(skills)
	buf := render.NewRenderBuffer(testW, testH)

	NewNodeRenderer(s).Render(testCtx(), buf)
	center := buf.Get(testW/2, testH/2)
	if center.Rune != render.GlyphNode {
		t.Fatalf("Expected node glyph at center, got %q", center.Rune)
	}
	if center.Attrs&tcell.AttrBold == 0 {
		t.Errorf("Expected node glyph in bold")
	}

	NewLabelRenderer(s).Render(testCtx(), buf)
	found := false
	for y := 0; y < testH/2; y++ {
		if strings.Contains(rowText(buf, y), "Go") {
			found = true
		}
	}
	if !found {
		t.Errorf("Expected label text above the node")
	}
}

func TestShadeNodeMouseLight(t *testing.T) {
	skills := []scene.Skill{{Name: "A", Position: vmath.Vec3F{X: 5}, Color: render.Hex(0x404040)}}
	s := testState(skills)
	n := s.Nodes[0]

	s.MoveMouseLight(vmath.Vec3F{X: 100})
	far := ShadeNode(s, n)
	s.MoveMouseLight(vmath.Vec3F{X: 5})
	near := ShadeNode(s, n)

	if near.B <= far.B {
		t.Errorf("Expected mouse light to brighten blue channel, far %+v near %+v", far, near)
	}
}

func TestConnectionRenderer(t *testing.T) {
	skills := []scene.Skill{
		{Name: "A", Position: vmath.Vec3F{X: -6}, Color: render.RGBWhite},
		{Name: "B", Position: vmath.Vec3F{X: 6}, Color: render.RGBWhite},
	}
	s := testState(skills)
	if len(s.Connections) != 1 {
		t.Fatalf("Expected one connection, got %d", len(s.Connections))
	}
	buf := render.NewRenderBuffer(testW, testH)
	NewConnectionRenderer(s).Render(testCtx(), buf)

	if n := countGlyphs(buf); n < 10 {
		t.Errorf("Expected a drawn connector, got %d glyphs", n)
	}
}

func TestParticleRendererAdditive(t *testing.T) {
	s := testState(nil)
	s.Particles = []scene.ParticleGroup{{
		Particles: []scene.Particle{{Position: vmath.Vec3F{X: 0.01}}, {Position: vmath.Vec3F{X: 0.02}}},
		Colors:    []render.RGB{render.Hex(0x3366ff), render.Hex(0x3366ff)},
		Size:      0.1,
		Opacity:   0.7,
	}}
	buf := render.NewRenderBuffer(testW, testH)
	NewParticleRenderer(s).Render(testCtx(), buf)

	if r := buf.Get(testW/2, testH/2).Rune; r != render.GlyphParticle {
		t.Errorf("Expected particle glyph at center, got %q", r)
	}
	if n := countGlyphs(buf); n != 1 {
		t.Errorf("Expected both particles to share one cell, got %d glyphs", n)
	}
}

func TestMouseLightRenderer(t *testing.T) {
	s := testState(nil)
	s.MoveMouseLight(vmath.Zero3F)
	buf := render.NewRenderBuffer(testW, testH)
	NewMouseLightRenderer(s).Render(testCtx(), buf)
	if r := buf.Get(testW/2, testH/2).Rune; r != render.GlyphLight {
		t.Errorf("Expected light marker at center, got %q", r)
	}
}

func TestContentRenderer(t *testing.T) {
	doc, err := content.Default()
	if err != nil {
		t.Fatalf("content.Default() failed: %v", err)
	}
	view := content.NewView(doc)
	_, _, pw, ph := PanelRect(testW, testH)
	view.Resize(PanelTextWidth(pw), ph)
	view.Update(0)

	r := NewContentRenderer(view)
	if !r.IsVisible() {
		t.Fatalf("Expected panel visible by default")
	}
	buf := render.NewRenderBuffer(testW, testH)
	r.Render(testCtx(), buf)

	if !strings.Contains(rowText(buf, 1), doc.Header.Name) {
		t.Errorf("Expected header on the first panel row, got %q", rowText(buf, 1))
	}

	// Sections just started revealing are still transparent
	for y := 0; y < testH; y++ {
		if strings.Contains(rowText(buf, y), "About Me") {
			t.Errorf("Expected section heading hidden at reveal start")
		}
	}

	view.Update(content.RevealTicks)
	buf.Clear()
	r.Render(testCtx(), buf)
	found := false
	for y := 0; y < testH; y++ {
		if strings.Contains(rowText(buf, y), "About Me") {
			found = true
		}
	}
	if !found {
		t.Errorf("Expected section heading after reveal")
	}

	view.Toggle()
	if r.IsVisible() {
		t.Errorf("Expected panel hidden after toggle")
	}
}

func TestStatusRenderer(t *testing.T) {
	buf := render.NewRenderBuffer(testW, testH)
	NewStatusRenderer(func() Status {
		return Status{Audio: true, FPS: 60}
	}).Render(testCtx(), buf)

	row := rowText(buf, testH-1)
	if !strings.Contains(row, "folio") || !strings.Contains(row, "audio:on") || !strings.Contains(row, "60 fps") {
		t.Errorf("Unexpected status row %q", row)
	}
	if !strings.Contains(row, "content:off") {
		t.Errorf("Expected content toggle off, got %q", row)
	}
}

func TestRegisterScene(t *testing.T) {
	s := testState(scene.DefaultSkills)
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("screen init: %v", err)
	}
	defer screen.Fini()
	screen.SetSize(testW, testH)

	o := render.NewRenderOrchestrator(screen, testW, testH)
	RegisterScene(o, s)
	scene.Step(s)
	o.RenderFrame(testCtx())

	if countGlyphs(o.Buffer()) == 0 {
		t.Errorf("Expected a rendered scene")
	}
}
