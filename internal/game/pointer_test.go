package game

import (
	"testing"

	"github.com/iburimskiy/particle-field/internal/particles"
)

func TestPointerTrackerRequiresMovement(t *testing.T) {
	var tr pointerTracker

	if p := tr.observe(100, 100, true); p.Active {
		t.Fatal("first sample activated the pointer")
	}
	if p := tr.observe(100, 100, true); p.Active {
		t.Fatal("a resting cursor activated the pointer")
	}

	p := tr.observe(120, 90, true)
	want := particles.Pointer{X: 120, Y: 90, Active: true}
	if p != want {
		t.Errorf("after move: %+v, want %+v", p, want)
	}

	// resting after a move keeps the pointer active
	if p := tr.observe(120, 90, true); !p.Active {
		t.Error("pointer went inactive while resting over the surface")
	}
}

func TestPointerTrackerLeave(t *testing.T) {
	var tr pointerTracker
	tr.observe(10, 10, true)
	tr.observe(20, 20, true)

	p := tr.observe(-5, 20, false)
	if p.Active {
		t.Fatal("pointer still active after leaving the surface")
	}
	if p.X != 20 || p.Y != 20 {
		t.Errorf("leaving overwrote the last position: (%v, %v)", p.X, p.Y)
	}

	if p := tr.observe(30, 30, true); !p.Active || p.X != 30 {
		t.Errorf("re-entering with movement: %+v", p)
	}
}

func TestPointerTrackerTouch(t *testing.T) {
	var tr pointerTracker

	p := tr.touch(50, 60)
	if !p.Active || p.X != 50 || p.Y != 60 {
		t.Fatalf("touch: %+v", p)
	}

	tr.release()
	if tr.state.Active {
		t.Error("pointer still active after the touch ended")
	}
	// the cursor sample after a touch only primes again
	if p := tr.observe(50, 60, true); p.Active {
		t.Error("stale cursor after touch activated the pointer")
	}
}
