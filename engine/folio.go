package engine

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/folio/audio"
	"github.com/lixenwraith/folio/config"
	"github.com/lixenwraith/folio/content"
	"github.com/lixenwraith/folio/core"
	"github.com/lixenwraith/folio/input"
	"github.com/lixenwraith/folio/render"
	"github.com/lixenwraith/folio/render/renderers"
	"github.com/lixenwraith/folio/scene"
)

// eventBuffer bounds events queued between the poller and the frame loop
const eventBuffer = 256

// Options carries the pieces NewEngine does not build itself
type Options struct {
	Config   *config.Config    // nil uses config.Default
	Document *content.Document // nil uses the embedded document
	Keys     *input.KeyTable   // nil uses the default bindings
	Rand     *rand.Rand        // nil derives from Config.Seed
}

// Engine owns the scene, the render pipeline and the frame loop
type Engine struct {
	// ===== Immutable After Init =====

	screen       tcell.Screen
	cfg          *config.Config
	charset      render.Charset
	state        *scene.State
	orchestrator *render.RenderOrchestrator
	view         *content.View
	bridge       *input.Bridge
	ambient      *audio.Ambient

	// ===== Channels =====

	events chan tcell.Event
	quit   chan struct{}

	// ===== Main-Loop Exclusive =====

	fps      fpsMeter
	rebuilds int

	closeOnce sync.Once
}

// NewEngine builds the scene for an initialized screen and wires input,
// rendering and audio; the screen is finalized by Close
func NewEngine(screen tcell.Screen, opts Options) (*Engine, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("engine config: %w", err)
	}

	doc := opts.Document
	if doc == nil {
		var err error
		if doc, err = content.Default(); err != nil {
			return nil, fmt.Errorf("engine content: %w", err)
		}
	}

	rng := opts.Rand
	if rng == nil && cfg.Seed != 0 {
		rng = rand.New(rand.NewSource(cfg.Seed))
	}

	w, h := screen.Size()
	params := cfg.SceneParams(scene.PixelAspect(w, h, cfg.Display.CellWidth, cfg.Display.CellHeight))
	params.Rand = rng
	state := scene.Build(params)
	doc.AttachSkills(params.Skills)

	e := &Engine{
		screen:       screen,
		cfg:          cfg,
		charset:      cfg.Charset(),
		state:        state,
		orchestrator: render.NewRenderOrchestrator(screen, w, h),
		view:         content.NewView(doc),
		ambient:      audio.NewAmbient(cfg.Audio.Volume, cfg.Audio.Frequency),
		events:       make(chan tcell.Event, eventBuffer),
		quit:         make(chan struct{}),
		rebuilds:     state.Rebuilds,
	}
	e.bridge = input.NewBridge(state, &viewport{o: e.orchestrator, view: e.view}, opts.Keys,
		cfg.Display.CellWidth, cfg.Display.CellHeight)

	renderers.RegisterScene(e.orchestrator, state)
	renderers.RegisterOverlay(e.orchestrator, e.view, e.status)

	e.bridge.HandleResize(w, h)
	screen.EnableMouse(tcell.MouseMotionEvents)
	screen.HideCursor()

	if cfg.Audio.Enabled {
		if err := e.ambient.Enable(); err != nil {
			log.Printf("Audio unavailable, continuing without: %v", err)
		}
	}

	log.Printf("Scene built: %d nodes, %d connections, %d stars, %d particle shells",
		len(state.Nodes), len(state.Connections), len(state.Stars.Stars), len(state.Particles))
	return e, nil
}

// Run drives the frame loop until ctx is cancelled or the user quits, then
// tears down through Close
func (e *Engine) Run(ctx context.Context) error {
	defer e.Close()

	core.Go(e.poll)

	ticker := time.NewTicker(time.Second / time.Duration(e.cfg.FPS))
	defer ticker.Stop()

	log.Printf("Frame loop started at %d fps", e.cfg.FPS)
	e.Tick(time.Now())

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-e.quit:
			return nil
		case ev := <-e.events:
			if !e.HandleEvent(ev) {
				return nil
			}
		case now := <-ticker.C:
			e.Tick(now)
		}
	}
}

// poll forwards screen events until the screen is finalized
func (e *Engine) poll() {
	for {
		ev := e.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case e.events <- ev:
		case <-e.quit:
			return
		}
	}
}

// Tick advances the scene one step and renders a frame
func (e *Engine) Tick(now time.Time) {
	scene.Step(e.state)
	e.ambient.SetLevel(e.state.Globe.Opacity / scene.GlobeOpacity)
	e.view.Update(e.state.Tick)
	e.fps.observe(now)

	if e.state.Rebuilds != e.rebuilds {
		e.rebuilds = e.state.Rebuilds
		if e.rebuilds%100 == 0 {
			log.Printf("Connections rebuilt %d times, %d live", e.rebuilds, len(e.state.Connections))
		}
	}

	e.orchestrator.RenderFrame(render.RenderContext{
		Frame:   e.state.Tick,
		Time:    e.state.Time,
		Charset: e.charset,
		Gain:    e.cfg.Display.Gain,
	})
}

// HandleEvent applies one terminal event; false means quit
func (e *Engine) HandleEvent(ev tcell.Event) bool {
	intent := e.bridge.Handle(ev)

	if _, ok := ev.(*tcell.EventResize); ok {
		e.screen.Sync()
	}

	switch intent {
	case input.IntentQuit:
		return false
	case input.IntentToggleContent:
		e.view.Toggle()
	case input.IntentToggleAudio:
		on, err := e.ambient.Toggle()
		if err != nil {
			log.Printf("Audio toggle failed: %v", err)
		} else {
			log.Printf("Audio enabled: %v", on)
		}
	default:
		if d, ok := intent.ScrollDelta(e.view.Page(), len(e.view.Lines())); ok && e.view.IsVisible() {
			e.view.Scroll(d)
		}
	}
	return true
}

// Close detaches input, stops audio and restores the terminal
// Safe to call more than once
func (e *Engine) Close() {
	e.closeOnce.Do(func() {
		e.bridge.Detach()
		e.screen.DisableMouse()
		e.ambient.Close()
		close(e.quit)
		e.screen.Fini()
		core.RegisterScreen(nil)
		log.Printf("Engine closed after %d ticks", e.state.Tick)
	})
}

func (e *Engine) status() renderers.Status {
	return renderers.Status{
		Audio:   e.ambient.Enabled(),
		Content: e.view.IsVisible(),
		FPS:     e.fps.rate,
	}
}

// State exposes the scene for inspection
func (e *Engine) State() *scene.State { return e.state }

// View exposes the content panel
func (e *Engine) View() *content.View { return e.view }

// Bridge exposes the input bridge
func (e *Engine) Bridge() *input.Bridge { return e.bridge }

// Orchestrator exposes the render pipeline
func (e *Engine) Orchestrator() *render.RenderOrchestrator { return e.orchestrator }
