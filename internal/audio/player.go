package audio

import (
	"fmt"
	"log"
	"math"
	"sync"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/effects"
	"github.com/faiface/beep/speaker"
)

const (
	// effects.Volume multiplies samples by volumeBase^Volume, so a base of 2
	// and Volume = log2(level) reproduces a linear level.
	volumeBase      = 2
	resampleQuality = 4
)

// Player loops one track through the speaker. Decoding and speaker setup
// happen on the first Play, so construction never fails.
type Player struct {
	mu sync.Mutex

	path         string
	sampleRate   beep.SampleRate
	speakerReady bool

	streamer beep.StreamSeekCloser
	format   beep.Format
	volume   *effects.Volume
	playing  bool

	level float64
	muted bool
}

var _ Playback = (*Player)(nil)

func NewPlayer(path string, sampleRate int, level float64, muted bool) *Player {
	return &Player{
		path:       path,
		sampleRate: beep.SampleRate(sampleRate),
		level:      clampLevel(level),
		muted:      muted,
	}
}

// Play starts the loop. It fails when the speaker cannot be opened or the
// track cannot be decoded; both are retried on the next call.
func (p *Player) Play() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.playing {
		return nil
	}

	if !p.speakerReady {
		if err := speaker.Init(p.sampleRate, p.sampleRate.N(time.Second/20)); err != nil {
			return fmt.Errorf("failed to init speaker: %w", err)
		}
		p.speakerReady = true
	}

	if p.streamer == nil {
		streamer, format, err := decodeTrack(p.path)
		if err != nil {
			return err
		}
		p.streamer, p.format = streamer, format
	}

	p.volume = &effects.Volume{Streamer: p.chain(), Base: volumeBase}
	p.applyGain()
	speaker.Play(p.volume)
	p.playing = true

	log.Printf("[Audio] looping %s (%d Hz)", p.path, p.format.SampleRate)
	return nil
}

// Switch replaces the track. A playing loop continues with the new track.
func (p *Player) Switch(path string) error {
	streamer, format, err := decodeTrack(path)
	if err != nil {
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	old := p.streamer
	p.path, p.streamer, p.format = path, streamer, format
	if p.playing {
		speaker.Lock()
		p.volume.Streamer = p.chain()
		speaker.Unlock()
	}
	if old != nil {
		_ = old.Close()
	}

	log.Printf("[Audio] switched track to %s", path)
	return nil
}

func (p *Player) SetMuted(muted bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.muted = muted
	p.updateGain()
}

func (p *Player) Muted() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.muted
}

func (p *Player) SetVolume(level float64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.level = clampLevel(level)
	p.updateGain()
}

func (p *Player) Volume() float64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.level
}

// Playing reports whether the loop has been started.
func (p *Player) Playing() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.playing
}

// Close stops playback and releases the decoder.
func (p *Player) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.speakerReady {
		speaker.Lock()
		speaker.Clear()
		speaker.Unlock()
	}
	p.playing = false
	p.volume = nil

	if p.streamer == nil {
		return nil
	}
	err := p.streamer.Close()
	p.streamer = nil
	return err
}

// chain builds loop -> resample for the current streamer. Callers hold p.mu.
func (p *Player) chain() beep.Streamer {
	var s beep.Streamer = beep.Loop(-1, p.streamer)
	if p.format.SampleRate != p.sampleRate {
		s = beep.Resample(resampleQuality, p.format.SampleRate, p.sampleRate, s)
	}
	return s
}

// updateGain applies level and mute to a live stream. Callers hold p.mu.
func (p *Player) updateGain() {
	if p.volume == nil {
		return
	}
	speaker.Lock()
	p.applyGain()
	speaker.Unlock()
}

func (p *Player) applyGain() {
	exp, silent := gain(p.level)
	p.volume.Volume = exp
	p.volume.Silent = silent || p.muted
}

// gain maps a linear level to an effects.Volume exponent. Zero is silence.
func gain(level float64) (exp float64, silent bool) {
	if level <= 0 {
		return 0, true
	}
	return math.Log2(level), false
}
