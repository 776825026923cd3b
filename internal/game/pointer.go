package game

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/iburimskiy/particle-field/internal/particles"
)

// pointerTracker turns raw cursor and touch input into pointer state. The
// pointer becomes active once it moves over the surface and inactive when it
// leaves the surface, the window loses focus or a touch ends.
type pointerTracker struct {
	state        particles.Pointer
	lastX, lastY int
	primed       bool
	moved        bool
	touching     bool
	touches      []ebiten.TouchID
}

// poll reads the current input. Positions are already in surface pixels
// because Layout reports the surface size.
func (t *pointerTracker) poll(vp particles.Viewport) particles.Pointer {
	t.touches = ebiten.AppendTouchIDs(t.touches[:0])
	if len(t.touches) > 0 {
		x, y := ebiten.TouchPosition(t.touches[0])
		return t.touch(x, y)
	}
	if t.touching {
		t.release()
	}

	x, y := ebiten.CursorPosition()
	over := ebiten.IsFocused() && x >= 0 && y >= 0 && x < vp.Width && y < vp.Height
	return t.observe(x, y, over)
}

// observe feeds one cursor sample. The first sample only primes the tracker:
// a cursor that has not moved yet does not count as hovering.
func (t *pointerTracker) observe(x, y int, over bool) particles.Pointer {
	if !t.primed {
		t.primed = true
		t.lastX, t.lastY = x, y
		return t.state
	}

	if !over {
		t.leave(x, y)
		return t.state
	}

	if x != t.lastX || y != t.lastY {
		t.moved = true
	}
	t.lastX, t.lastY = x, y
	if t.moved {
		t.state = particles.Pointer{X: float64(x), Y: float64(y), Active: true}
	}
	return t.state
}

func (t *pointerTracker) touch(x, y int) particles.Pointer {
	t.touching = true
	t.lastX, t.lastY = x, y
	t.state = particles.Pointer{X: float64(x), Y: float64(y), Active: true}
	return t.state
}

func (t *pointerTracker) release() {
	t.touching = false
	t.leave(t.lastX, t.lastY)
	t.primed = false
}

func (t *pointerTracker) leave(x, y int) {
	t.moved = false
	t.lastX, t.lastY = x, y
	t.state.Active = false
}
