// Package config holds runtime settings layered from defaults, a TOML file,
// FOLIO_* environment variables and command-line flags
package config

import (
	"errors"
	"fmt"
	"log"
	"math"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"

	"github.com/lixenwraith/folio/audio"
	"github.com/lixenwraith/folio/render"
	"github.com/lixenwraith/folio/scene"
)

const (
	DefaultFPS        = 60
	MaxFPS            = 240
	DefaultCellWidth  = 8.0
	DefaultCellHeight = 16.0
	DefaultGain       = 2.5
)

var (
	ErrInvalidFPS      = errors.New("fps out of range")
	ErrInvalidCharset  = errors.New("invalid charset")
	ErrInvalidGeometry = errors.New("invalid cell geometry")
	ErrInvalidScene    = errors.New("invalid scene settings")
	ErrInvalidAudio    = errors.New("invalid audio settings")
)

// Config is the complete runtime configuration
type Config struct {
	FPS   int   `toml:"fps" env:"FOLIO_FPS"`
	Seed  int64 `toml:"seed" env:"FOLIO_SEED"` // 0 seeds from the clock
	Debug bool  `toml:"debug" env:"FOLIO_DEBUG"`

	// Content document path; empty uses the embedded default
	Content string `toml:"content" env:"FOLIO_CONTENT"`
	// Keymap override path; empty keeps the default bindings
	Keymap string `toml:"keymap" env:"FOLIO_KEYMAP"`

	Scene   SceneConfig   `toml:"scene" envPrefix:"FOLIO_SCENE_"`
	Display DisplayConfig `toml:"display" envPrefix:"FOLIO_DISPLAY_"`
	Audio   AudioConfig   `toml:"audio" envPrefix:"FOLIO_AUDIO_"`
}

type SceneConfig struct {
	Stars             int `toml:"stars" env:"STARS"`
	ParticlesPerShell int `toml:"particles_per_shell" env:"PARTICLES_PER_SHELL"`
	RebuildEvery      int `toml:"rebuild_every" env:"REBUILD_EVERY"`
}

type DisplayConfig struct {
	Charset    string  `toml:"charset" env:"CHARSET"`
	CellWidth  float64 `toml:"cell_width_px" env:"CELL_WIDTH_PX"`
	CellHeight float64 `toml:"cell_height_px" env:"CELL_HEIGHT_PX"`
	Gain       float64 `toml:"gain" env:"GAIN"`
}

type AudioConfig struct {
	Enabled   bool    `toml:"enabled" env:"ENABLED"`
	Volume    float64 `toml:"volume" env:"VOLUME"`
	Frequency float64 `toml:"frequency" env:"FREQUENCY"`
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		FPS: DefaultFPS,
		Scene: SceneConfig{
			Stars:             scene.StarCount,
			ParticlesPerShell: scene.ParticlesPerShell,
			RebuildEvery:      scene.RebuildEvery,
		},
		Display: DisplayConfig{
			Charset:    render.CharsetASCII.String(),
			CellWidth:  DefaultCellWidth,
			CellHeight: DefaultCellHeight,
			Gain:       DefaultGain,
		},
		Audio: AudioConfig{
			Volume:    audio.DefaultVolume,
			Frequency: audio.DefaultFrequency,
		},
	}
}

// Load returns the defaults overlaid with the TOML file at path
// An empty path returns the defaults
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, fmt.Errorf("load config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		log.Printf("Config %s: ignoring unknown keys %s", path, strings.Join(keys, ", "))
	}
	return cfg, nil
}

// ParseEnv overlays FOLIO_* environment variables onto target
// Unset variables leave existing values untouched
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Validate checks ranges and returns the first violation
func (c *Config) Validate() error {
	if c.FPS < 1 || c.FPS > MaxFPS {
		return fmt.Errorf("%w: %d (want 1-%d)", ErrInvalidFPS, c.FPS, MaxFPS)
	}
	if _, err := render.ParseCharset(c.Display.Charset); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidCharset, c.Display.Charset)
	}
	if !positive(c.Display.CellWidth) || !positive(c.Display.CellHeight) {
		return fmt.Errorf("%w: %vx%v px", ErrInvalidGeometry, c.Display.CellWidth, c.Display.CellHeight)
	}
	if !positive(c.Display.Gain) {
		return fmt.Errorf("%w: gain %v", ErrInvalidGeometry, c.Display.Gain)
	}
	if c.Scene.Stars < 0 || c.Scene.ParticlesPerShell < 0 || c.Scene.RebuildEvery < 1 {
		return fmt.Errorf("%w: stars %d particles %d rebuild_every %d",
			ErrInvalidScene, c.Scene.Stars, c.Scene.ParticlesPerShell, c.Scene.RebuildEvery)
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 || !positive(c.Audio.Frequency) {
		return fmt.Errorf("%w: volume %v frequency %v", ErrInvalidAudio, c.Audio.Volume, c.Audio.Frequency)
	}
	return nil
}

// Charset returns the parsed display charset; call after Validate
func (c *Config) Charset() render.Charset {
	cs, _ := render.ParseCharset(c.Display.Charset)
	return cs
}

// SceneParams maps scene settings onto build parameters
func (c *Config) SceneParams(aspect float64) scene.Params {
	p := scene.DefaultParams()
	p.StarCount = c.Scene.Stars
	p.ParticlesPerShell = c.Scene.ParticlesPerShell
	p.RebuildEvery = c.Scene.RebuildEvery
	p.Aspect = aspect
	return p
}

func positive(v float64) bool {
	return v > 0 && !math.IsInf(v, 0)
}
