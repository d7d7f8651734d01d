package audio

import (
	"errors"
	"fmt"
	"log"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(48000)

	DefaultFrequency = 55.0 // A1
	DefaultVolume    = 0.3
)

// ErrClosed is returned when enabling audio after Close
var ErrClosed = errors.New("audio closed")

// Speaker hooks, replaced in tests
var (
	speakerInit   = speaker.Init
	speakerPlay   = func(s ...beep.Streamer) { speaker.Play(s...) }
	speakerLock   = speaker.Lock
	speakerUnlock = speaker.Unlock
	speakerClose  = func() { speaker.Clear(); speaker.Close() }
)

// Ambient plays a soft drone that follows the scene's breathing
type Ambient struct {
	mu sync.Mutex

	drone  *Drone
	volume *effects.Volume
	ctrl   *beep.Ctrl
	mixer  *beep.Mixer

	initialized bool
	enabled     bool
	closed      bool
}

// NewAmbient creates a paused ambient player; the speaker is not touched
// until the first Enable
func NewAmbient(volume, frequency float64) *Ambient {
	d := NewDrone(sampleRate, frequency)
	v := newVolume(d, volume)
	ctrl := &beep.Ctrl{Streamer: v, Paused: true}
	mixer := &beep.Mixer{}
	mixer.Add(ctrl)
	return &Ambient{
		drone:  d,
		volume: v,
		ctrl:   ctrl,
		mixer:  mixer,
	}
}

// newVolume wraps s in a base-2 volume effect; vol <= 0 is silent
func newVolume(s beep.Streamer, vol float64) *effects.Volume {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(min(vol, 1))}
}

func (a *Ambient) initialize() error {
	if a.initialized {
		return nil
	}
	if err := speakerInit(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}
	speakerPlay(a.mixer)
	a.initialized = true
	log.Printf("Audio initialized at %d Hz", sampleRate)
	return nil
}

// Enable starts playback, initializing the speaker on first use
func (a *Ambient) Enable() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.closed {
		return ErrClosed
	}
	if err := a.initialize(); err != nil {
		return err
	}
	a.setPaused(false)
	a.enabled = true
	return nil
}

// Disable pauses playback; the speaker stays initialized
func (a *Ambient) Disable() {
	a.mu.Lock()
	defer a.mu.Unlock()

	if !a.enabled {
		return
	}
	a.setPaused(true)
	a.enabled = false
}

// Toggle flips playback and returns the new state
func (a *Ambient) Toggle() (bool, error) {
	if a.Enabled() {
		a.Disable()
		return false, nil
	}
	if err := a.Enable(); err != nil {
		return false, err
	}
	return true, nil
}

// Enabled reports whether the drone is audible
func (a *Ambient) Enabled() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.enabled
}

// SetLevel forwards a normalized scene intensity to the drone
func (a *Ambient) SetLevel(level float64) {
	a.drone.SetLevel(level)
}

// Close stops playback and releases the speaker; further calls are no-ops
func (a *Ambient) Close() {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.closed {
		return
	}
	a.closed = true
	a.enabled = false
	if !a.initialized {
		return
	}
	a.setPaused(true)
	speakerClose()
	a.initialized = false
	log.Printf("Audio closed")
}

// setPaused must hold the speaker lock while the mixer may be streaming
func (a *Ambient) setPaused(paused bool) {
	if !a.initialized {
		a.ctrl.Paused = paused
		return
	}
	speakerLock()
	a.ctrl.Paused = paused
	speakerUnlock()
}
