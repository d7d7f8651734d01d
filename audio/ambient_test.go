package audio

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"
)

// stubSpeaker replaces the speaker hooks for the duration of a test
func stubSpeaker(t *testing.T, initErr error) *int {
	t.Helper()
	closes := 0
	oldInit, oldPlay, oldLock, oldUnlock, oldClose := speakerInit, speakerPlay, speakerLock, speakerUnlock, speakerClose
	speakerInit = func(beep.SampleRate, int) error { return initErr }
	speakerPlay = func(...beep.Streamer) {}
	speakerLock = func() {}
	speakerUnlock = func() {}
	speakerClose = func() { closes++ }
	t.Cleanup(func() {
		speakerInit, speakerPlay, speakerLock, speakerUnlock, speakerClose = oldInit, oldPlay, oldLock, oldUnlock, oldClose
	})
	return &closes
}

func TestDroneSilentAtZeroLevel(t *testing.T) {
	d := NewDrone(sampleRate, DefaultFrequency)
	buf := make([][2]float64, 512)
	n, ok := d.Stream(buf)
	if n != len(buf) || !ok {
		t.Fatalf("Expected full endless stream, got n=%d ok=%v", n, ok)
	}
	for i, s := range buf {
		if s[0] != 0 || s[1] != 0 {
			t.Fatalf("Expected silence at sample %d, got %v", i, s)
		}
	}
}

func TestDroneGlidesTowardLevel(t *testing.T) {
	d := NewDrone(sampleRate, DefaultFrequency)
	d.SetLevel(1)

	buf := make([][2]float64, sampleRate.N(500*time.Millisecond))
	d.Stream(buf)

	peak := 0.0
	for _, s := range buf {
		if s[0] != s[1] {
			t.Fatalf("Expected identical channels, got %v", s)
		}
		peak = max(peak, math.Abs(s[0]))
	}
	if peak == 0 {
		t.Errorf("Expected audible output after glide")
	}
	if peak > 1 {
		t.Errorf("Expected peak within [-1, 1], got %v", peak)
	}
	if d.gain < 0.99 {
		t.Errorf("Expected gain near target after glide, got %v", d.gain)
	}
}

func TestDroneLevelClamp(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{-1, 0},
		{0.4, 0.4},
		{3, 1},
		{math.NaN(), 0},
	}
	d := NewDrone(0, 0)
	for _, tt := range tests {
		d.SetLevel(tt.in)
		if got := d.Level(); got != tt.want {
			t.Errorf("SetLevel(%v): expected %v, got %v", tt.in, tt.want, got)
		}
	}
	if d.rate != sampleRate || d.freq != DefaultFrequency {
		t.Errorf("Expected defaults for zero rate and frequency, got %v %v", d.rate, d.freq)
	}
}

func TestAmbientInitFailureNonFatal(t *testing.T) {
	closes := stubSpeaker(t, errors.New("no device"))
	a := NewAmbient(DefaultVolume, DefaultFrequency)

	on, err := a.Toggle()
	if err == nil || on {
		t.Fatalf("Expected toggle to report init failure, got on=%v err=%v", on, err)
	}
	if a.Enabled() {
		t.Errorf("Expected ambient disabled after failed init")
	}
	a.SetLevel(0.5)
	a.Close()
	if *closes != 0 {
		t.Errorf("Expected no speaker close without init, got %d", *closes)
	}
}

func TestAmbientToggleAndClose(t *testing.T) {
	closes := stubSpeaker(t, nil)
	a := NewAmbient(DefaultVolume, DefaultFrequency)

	on, err := a.Toggle()
	if err != nil || !on {
		t.Fatalf("Expected enabled, got on=%v err=%v", on, err)
	}
	if a.ctrl.Paused {
		t.Errorf("Expected ctrl running while enabled")
	}

	on, _ = a.Toggle()
	if on || !a.ctrl.Paused {
		t.Errorf("Expected paused after second toggle")
	}

	a.Close()
	a.Close()
	if *closes != 1 {
		t.Errorf("Expected exactly one speaker close, got %d", *closes)
	}
	if err := a.Enable(); !errors.Is(err, ErrClosed) {
		t.Errorf("Expected ErrClosed after close, got %v", err)
	}
}

func TestNewVolume(t *testing.T) {
	d := NewDrone(sampleRate, DefaultFrequency)
	if v := newVolume(d, 0); !v.Silent {
		t.Errorf("Expected zero volume to be silent")
	}
	if v := newVolume(d, 0.5); v.Silent || v.Volume != -1 {
		t.Errorf("Expected half volume at -1 (base 2), got %v", v.Volume)
	}
	if v := newVolume(d, 4); v.Volume != 0 {
		t.Errorf("Expected volume capped at unity, got %v", v.Volume)
	}
}
