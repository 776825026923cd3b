// Package audio plays the looping background track and handles the mute,
// volume and autoplay-retry glue around it.
package audio

import (
	"log"
	"sync"
)

// State is where the controller is in getting playback started.
type State int

const (
	// StateNotStarted: nothing is playing and no retry is pending.
	StateNotStarted State = iota
	// StateDeferred: a play attempt failed and one retry waits for the next
	// pointer-down or key-down.
	StateDeferred
	// StatePlaying: the track is looping.
	StatePlaying
)

func (s State) String() string {
	switch s {
	case StateNotStarted:
		return "not-started"
	case StateDeferred:
		return "deferred"
	case StatePlaying:
		return "playing"
	default:
		return "unknown"
	}
}

// Playback is the platform playback primitive the controller drives.
type Playback interface {
	// Play starts looping playback. It is a no-op while already playing.
	Play() error
	SetMuted(muted bool)
	Muted() bool
	// SetVolume takes a linear level in [0, 1].
	SetVolume(level float64)
	Volume() float64
}

// Controller starts background playback best-effort. A failed start is not
// an error to anyone: it is retried once on the next user gesture, and that
// binding is only ever made once.
type Controller struct {
	player Playback

	mu         sync.Mutex
	state      State
	retryBound bool

	wg sync.WaitGroup
}

func NewController(player Playback) *Controller {
	return &Controller{player: player}
}

// Attempt tries to start playback in the background. Success unmutes; the
// first failure arms a retry for the next gesture.
func (c *Controller) Attempt() {
	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		err := c.player.Play()

		c.mu.Lock()
		defer c.mu.Unlock()
		if err == nil {
			c.state = StatePlaying
			c.player.SetMuted(false)
			log.Printf("[Audio] playback started")
			return
		}

		log.Printf("[Audio] playback blocked: %v", err)
		if c.state != StatePlaying && !c.retryBound {
			c.state = StateDeferred
			c.retryBound = true
			log.Printf("[Audio] will retry on next input")
		}
	}()
}

// Gesture reports a pointer-down or key-down. If a retry is armed it fires
// exactly once and the binding is dropped whatever the outcome.
func (c *Controller) Gesture() {
	c.mu.Lock()
	if c.state != StateDeferred {
		c.mu.Unlock()
		return
	}
	c.state = StateNotStarted
	c.mu.Unlock()

	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		err := c.player.Play()

		c.mu.Lock()
		defer c.mu.Unlock()
		if err != nil {
			log.Printf("[Audio] retry failed: %v", err)
			return
		}
		c.state = StatePlaying
		log.Printf("[Audio] playback started after input")
	}()
}

// ToggleMute flips the mute flag and returns the new value. Unmuting also
// attempts to start playback.
func (c *Controller) ToggleMute() bool {
	muted := !c.player.Muted()
	c.player.SetMuted(muted)
	if !muted {
		c.Attempt()
	}
	return muted
}

// SetVolume sets the linear volume, clamped to [0, 1].
func (c *Controller) SetVolume(level float64) {
	c.player.SetVolume(clampLevel(level))
}

func (c *Controller) Volume() float64 {
	return c.player.Volume()
}

func (c *Controller) Muted() bool {
	return c.player.Muted()
}

func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Wait blocks until every in-flight play attempt has settled.
func (c *Controller) Wait() {
	c.wg.Wait()
}

func clampLevel(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
