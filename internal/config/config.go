package config

import (
	"errors"
	"fmt"

	"github.com/iburimskiy/particle-field/internal/render"
)

const (
	WindowWidth  = 1280
	WindowHeight = 720
	WindowTitle  = "Particle Field - M: mute, Up/Down: volume, O: open track, R: reset, Esc/Q: quit"

	// Field parameters
	ParticleCount           = 92
	ParticleSizeMin         = 1.2
	ParticleSizeMax         = 2.8
	SpeedMin                = 0.12
	SpeedMax                = 0.45
	ConnectionDistance      = 160
	MouseConnectionDistance = 220

	// Device pixel ratios above this are clamped to bound fill cost.
	MaxDevicePixelRatio = 2

	// Audio
	TrackPath  = "assets/audio/background.wav"
	Volume     = 0.4
	SampleRate = 44100
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// Range is an inclusive [Min, Max] interval values are drawn from.
type Range struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

// Contains reports whether v lies within the range.
func (r Range) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}

// LineColor is the base color of connection strokes; Alpha is scaled by
// each connection's opacity.
type LineColor struct {
	R     uint8   `yaml:"r"`
	G     uint8   `yaml:"g"`
	B     uint8   `yaml:"b"`
	Alpha float64 `yaml:"alpha"`
}

// Color returns the line color at the given alpha.
func (c LineColor) Color(alpha float64) render.Color {
	return render.RGBA(c.R, c.G, c.B, alpha)
}

type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

type AudioConfig struct {
	Track      string  `yaml:"track"`
	Volume     float64 `yaml:"volume"`
	Muted      bool    `yaml:"muted"`
	SampleRate int     `yaml:"sampleRate"`
}

// Config holds every tunable of the scene. It is built once at startup and
// treated as read-only afterwards.
type Config struct {
	ParticleCount           int          `yaml:"particleCount"`
	ParticleSize            Range        `yaml:"particleSize"`
	Speed                   Range        `yaml:"speed"`
	ConnectionDistance      float64      `yaml:"connectionDistance"`
	MouseConnectionDistance float64      `yaml:"mouseConnectionDistance"`
	Background              render.Color `yaml:"background"`
	ParticleColor           render.Color `yaml:"particleColor"`
	LineColor               LineColor    `yaml:"lineColor"`
	MaxDevicePixelRatio     float64      `yaml:"maxDevicePixelRatio"`

	// Seed fixes the particle RNG; zero picks a random seed.
	Seed uint64 `yaml:"seed"`

	Window WindowConfig `yaml:"window"`
	Audio  AudioConfig  `yaml:"audio"`
}

// Default returns the stock configuration.
func Default() *Config {
	return &Config{
		ParticleCount:           ParticleCount,
		ParticleSize:            Range{Min: ParticleSizeMin, Max: ParticleSizeMax},
		Speed:                   Range{Min: SpeedMin, Max: SpeedMax},
		ConnectionDistance:      ConnectionDistance,
		MouseConnectionDistance: MouseConnectionDistance,
		Background:              render.RGBA(3, 3, 3, 0.9),
		ParticleColor:           render.RGBA(255, 255, 255, 0.65),
		LineColor:               LineColor{R: 255, G: 255, B: 255, Alpha: 0.24},
		MaxDevicePixelRatio:     MaxDevicePixelRatio,
		Window: WindowConfig{
			Width:  WindowWidth,
			Height: WindowHeight,
			Title:  WindowTitle,
		},
		Audio: AudioConfig{
			Track:      TrackPath,
			Volume:     Volume,
			SampleRate: SampleRate,
		},
	}
}

// Validate checks the configuration for values the simulation cannot run with.
func (c *Config) Validate() error {
	switch {
	case c.ParticleCount < 0:
		return fmt.Errorf("%w: particleCount %d is negative", ErrInvalid, c.ParticleCount)
	case c.ParticleSize.Min <= 0 || c.ParticleSize.Min > c.ParticleSize.Max:
		return fmt.Errorf("%w: particleSize [%v, %v]", ErrInvalid, c.ParticleSize.Min, c.ParticleSize.Max)
	case c.Speed.Min < 0 || c.Speed.Min > c.Speed.Max:
		return fmt.Errorf("%w: speed [%v, %v]", ErrInvalid, c.Speed.Min, c.Speed.Max)
	case c.ConnectionDistance <= 0:
		return fmt.Errorf("%w: connectionDistance %v must be positive", ErrInvalid, c.ConnectionDistance)
	case c.MouseConnectionDistance <= 0:
		return fmt.Errorf("%w: mouseConnectionDistance %v must be positive", ErrInvalid, c.MouseConnectionDistance)
	case c.MaxDevicePixelRatio < 1:
		return fmt.Errorf("%w: maxDevicePixelRatio %v is below 1", ErrInvalid, c.MaxDevicePixelRatio)
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return fmt.Errorf("%w: window %dx%d", ErrInvalid, c.Window.Width, c.Window.Height)
	case c.Audio.Volume < 0 || c.Audio.Volume > 1:
		return fmt.Errorf("%w: audio volume %v outside [0, 1]", ErrInvalid, c.Audio.Volume)
	case c.Audio.SampleRate <= 0:
		return fmt.Errorf("%w: audio sampleRate %d", ErrInvalid, c.Audio.SampleRate)
	}
	return nil
}

// CapDevicePixelRatio clamps a reported device pixel ratio into
// [1, MaxDevicePixelRatio]. Hosts that report nothing get 1.
func (c *Config) CapDevicePixelRatio(dpr float64) float64 {
	if dpr <= 0 {
		return 1
	}
	if dpr > c.MaxDevicePixelRatio {
		return c.MaxDevicePixelRatio
	}
	return dpr
}
