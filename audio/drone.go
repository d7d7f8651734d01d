package audio

import (
	"math"
	"sync/atomic"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
)

// Drone partials relative to the fundamental, with their weights
var droneVoices = [...]struct {
	ratio  float64
	weight float64
}{
	{1.0, 0.55},
	{1.5, 0.25},  // fifth
	{2.0, 0.12},  // octave
	{3.01, 0.08}, // detuned twelfth
}

// droneGlide is the time in seconds the gain takes to reach ~63% of a new level
const droneGlide = 0.08

// Drone is an endless sine pad whose gain glides toward a target level
// The level is safe to set from any goroutine while the speaker streams
type Drone struct {
	rate    beep.SampleRate
	freq    float64
	voices  []beep.Streamer
	scratch [][2]float64

	level atomic.Uint64 // float64 bits, target gain in [0, 1]
	gain  float64       // current gain, owned by the streaming goroutine
	alpha float64       // per-sample glide factor
}

// NewDrone creates a drone at the given fundamental frequency
func NewDrone(rate beep.SampleRate, freq float64) *Drone {
	if rate <= 0 {
		rate = sampleRate
	}
	if freq <= 0 {
		freq = DefaultFrequency
	}
	d := &Drone{
		rate:  rate,
		freq:  freq,
		alpha: 1 - math.Exp(-1/(droneGlide*float64(rate))),
	}
	for _, v := range droneVoices {
		tone, err := generators.SineTone(rate, freq*v.ratio)
		if err != nil {
			// Partial above Nyquist
			tone = generators.Silence(-1)
		}
		d.voices = append(d.voices, tone)
	}
	return d
}

// SetLevel sets the target gain, clamped to [0, 1]
func (d *Drone) SetLevel(level float64) {
	if math.IsNaN(level) {
		level = 0
	}
	level = max(0, min(level, 1))
	d.level.Store(math.Float64bits(level))
}

// Level returns the target gain
func (d *Drone) Level() float64 {
	return math.Float64frombits(d.level.Load())
}

func (d *Drone) Stream(samples [][2]float64) (n int, ok bool) {
	if cap(d.scratch) < len(samples) {
		d.scratch = make([][2]float64, len(samples))
	}
	scratch := d.scratch[:len(samples)]
	clear(samples)

	for j, voice := range d.voices {
		voice.Stream(scratch)
		w := droneVoices[j].weight
		for i := range samples {
			samples[i][0] += w * scratch[i][0]
		}
	}

	target := d.Level()
	for i := range samples {
		d.gain += (target - d.gain) * d.alpha
		v := samples[i][0] * d.gain
		samples[i][0] = v
		samples[i][1] = v
	}
	return len(samples), true
}

func (d *Drone) Err() error {
	return nil
}
