package engine

import (
	"context"
	"math/rand"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/folio/config"
	"github.com/lixenwraith/folio/input"
	"github.com/lixenwraith/folio/render/renderers"
)

const (
	testW = 100
	testH = 36
)

func newTestEngine(t *testing.T) (*Engine, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("screen init: %v", err)
	}
	screen.SetSize(testW, testH)

	cfg := config.Default()
	cfg.Scene.Stars = 50
	cfg.Scene.ParticlesPerShell = 20

	e, err := NewEngine(screen, Options{Config: cfg, Rand: rand.New(rand.NewSource(7))})
	if err != nil {
		t.Fatalf("NewEngine failed: %v", err)
	}
	t.Cleanup(e.Close)
	return e, screen
}

func TestNewEngine(t *testing.T) {
	e, _ := newTestEngine(t)

	if got := len(e.State().Connections); got != 12 {
		t.Errorf("Expected 12 connections at startup, got %d", got)
	}
	if e.Bridge().Resizes() != 1 {
		t.Errorf("Expected one initial resize, got %d", e.Bridge().Resizes())
	}
	w, h := e.Orchestrator().Bounds()
	if w != testW || h != testH {
		t.Errorf("Expected buffer %dx%d, got %dx%d", testW, testH, w, h)
	}
	_, _, pw, ph := renderers.PanelRect(testW, testH)
	vw, vh := e.View().Size()
	if vw != renderers.PanelTextWidth(pw) || vh != ph {
		t.Errorf("Expected content view %dx%d, got %dx%d", renderers.PanelTextWidth(pw), ph, vw, vh)
	}
}

func TestNewEngineInvalidConfig(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("screen init: %v", err)
	}
	defer screen.Fini()

	cfg := config.Default()
	cfg.FPS = 0
	if _, err := NewEngine(screen, Options{Config: cfg}); err == nil {
		t.Errorf("Expected invalid config error")
	}
}

func TestTickRendersFrame(t *testing.T) {
	e, screen := newTestEngine(t)

	now := time.Now()
	for i := 0; i < 5; i++ {
		e.Tick(now.Add(time.Duration(i) * 16 * time.Millisecond))
	}
	if e.State().Tick != 5 {
		t.Errorf("Expected 5 ticks, got %d", e.State().Tick)
	}

	cells, w, h := screen.GetContents()
	if w != testW || h != testH {
		t.Fatalf("Expected screen %dx%d, got %dx%d", testW, testH, w, h)
	}
	drawn := 0
	for _, c := range cells {
		if len(c.Runes) > 0 && c.Runes[0] != ' ' {
			drawn++
		}
	}
	if drawn == 0 {
		t.Errorf("Expected glyphs on screen after rendering")
	}
	if e.fps.rate <= 0 {
		t.Errorf("Expected a measured frame rate, got %v", e.fps.rate)
	}
}

func TestHandleEventIntents(t *testing.T) {
	e, _ := newTestEngine(t)
	e.Tick(time.Now())

	if !e.View().IsVisible() {
		t.Fatalf("Expected content visible at start")
	}
	e.HandleEvent(tcell.NewEventKey(tcell.KeyTab, 0, tcell.ModNone))
	if e.View().IsVisible() {
		t.Errorf("Expected tab to hide content")
	}
	e.HandleEvent(tcell.NewEventKey(tcell.KeyTab, 0, tcell.ModNone))

	e.HandleEvent(tcell.NewEventKey(tcell.KeyRune, 'j', tcell.ModNone))
	if e.View().MaxOffset() > 0 && e.View().Offset() != 1 {
		t.Errorf("Expected scroll down by one, got offset %d", e.View().Offset())
	}
	e.HandleEvent(tcell.NewEventKey(tcell.KeyEnd, 0, tcell.ModNone))
	if e.View().Offset() != e.View().MaxOffset() {
		t.Errorf("Expected end to scroll to %d, got %d", e.View().MaxOffset(), e.View().Offset())
	}
	e.HandleEvent(tcell.NewEventKey(tcell.KeyHome, 0, tcell.ModNone))
	if e.View().Offset() != 0 {
		t.Errorf("Expected home to scroll to top, got %d", e.View().Offset())
	}

	if e.HandleEvent(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)) {
		t.Errorf("Expected q to quit")
	}
}

func TestHandleEventResize(t *testing.T) {
	e, _ := newTestEngine(t)

	e.HandleEvent(tcell.NewEventResize(60, 20))

	if w, h := e.Orchestrator().Bounds(); w != 60 || h != 20 {
		t.Errorf("Expected buffer 60x20, got %dx%d", w, h)
	}
	want := (60 * config.DefaultCellWidth) / (20 * config.DefaultCellHeight)
	if e.State().Camera.Aspect != want {
		t.Errorf("Expected aspect %v, got %v", want, e.State().Camera.Aspect)
	}
	if e.Bridge().Resizes() != 2 {
		t.Errorf("Expected exactly one resize per event, got %d", e.Bridge().Resizes())
	}
}

func TestHandleEventMouse(t *testing.T) {
	e, _ := newTestEngine(t)
	before := e.State().MouseLight.Position

	e.HandleEvent(tcell.NewEventMouse(10, 5, tcell.ButtonNone, tcell.ModNone))

	l := e.State().MouseLight.Position
	if l == before || l.Z != 0 {
		t.Errorf("Expected mouse light moved onto z=0, got %+v", l)
	}
}

func TestCloseIdempotent(t *testing.T) {
	e, _ := newTestEngine(t)
	e.Close()
	e.Close()

	if e.Bridge().Attached() {
		t.Errorf("Expected bridge detached after close")
	}
	if got := e.Bridge().Handle(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)); got != input.IntentNone {
		t.Errorf("Expected events ignored after close, got %v", got)
	}
}

func TestRunQuitsOnKey(t *testing.T) {
	e, screen := newTestEngine(t)

	done := make(chan error, 1)
	go func() { done <- e.Run(context.Background()) }()

	screen.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)

	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Expected clean exit, got %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after quit key")
	}
	if e.State().Tick == 0 {
		t.Errorf("Expected at least the first frame")
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	e, _ := newTestEngine(t)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- e.Run(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Expected clean exit, got %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
	if e.Bridge().Attached() {
		t.Errorf("Expected teardown after Run returns")
	}
}

func TestFPSMeter(t *testing.T) {
	var m fpsMeter
	start := time.Now()
	m.observe(start)
	if m.rate != 0 {
		t.Errorf("Expected no rate after one frame, got %v", m.rate)
	}
	m.observe(start.Add(20 * time.Millisecond))
	if m.rate < 49.9 || m.rate > 50.1 {
		t.Errorf("Expected ~50 fps, got %v", m.rate)
	}
}
