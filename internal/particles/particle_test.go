package particles

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/iburimskiy/particle-field/internal/config"
)

const epsilon = 1e-9

func newTestRand() *rand.Rand {
	return rand.New(rand.NewPCG(1, 2))
}

// onExtendedEdge reports whether p sits on one of the four boundary lines
// pushed out by its size.
func onExtendedEdge(p Particle, vp Viewport) bool {
	w, h := float64(vp.Width), float64(vp.Height)
	alongX := p.X >= 0 && p.X <= w
	alongY := p.Y >= 0 && p.Y <= h
	return (p.Y == -p.Size && alongX) ||
		(p.X == w+p.Size && alongY) ||
		(p.Y == h+p.Size && alongX) ||
		(p.X == -p.Size && alongY)
}

func checkRolledAttributes(t *testing.T, p Particle, cfg *config.Config) {
	t.Helper()
	if !cfg.ParticleSize.Contains(p.Size) {
		t.Errorf("size %v outside %+v", p.Size, cfg.ParticleSize)
	}
	if !cfg.Speed.Contains(p.Speed) {
		t.Errorf("speed %v outside %+v", p.Speed, cfg.Speed)
	}
	if got := math.Hypot(p.VX, p.VY); math.Abs(got-p.Speed) > epsilon {
		t.Errorf("|v| = %v, want speed %v", got, p.Speed)
	}
}

func TestResetRespawnsOnExtendedEdge(t *testing.T) {
	cfg := config.Default()
	rng := newTestRand()
	vp := Viewport{Width: 800, Height: 600, DPR: 1}

	edges := map[string]int{}
	for i := 0; i < 500; i++ {
		var p Particle
		p.Reset(false, vp, cfg, rng)

		if !onExtendedEdge(p, vp) {
			t.Fatalf("reset %d placed particle at (%v, %v) size %v, not on an extended edge", i, p.X, p.Y, p.Size)
		}
		if p.Outside(vp) {
			t.Fatalf("reset %d placed particle outside the respawn margin", i)
		}
		checkRolledAttributes(t, p, cfg)

		switch {
		case p.Y == -p.Size:
			edges["top"]++
		case p.X == float64(vp.Width)+p.Size:
			edges["right"]++
		case p.Y == float64(vp.Height)+p.Size:
			edges["bottom"]++
		default:
			edges["left"]++
		}
	}

	if len(edges) != 4 {
		t.Errorf("respawns used edges %v, want all four", edges)
	}
}

func TestResetInitialPlacesInsideSurface(t *testing.T) {
	cfg := config.Default()
	rng := newTestRand()
	vp := Viewport{Width: 320, Height: 240, DPR: 1}

	for i := 0; i < 200; i++ {
		var p Particle
		p.Reset(true, vp, cfg, rng)
		if p.X < 0 || p.X >= 320 || p.Y < 0 || p.Y >= 240 {
			t.Fatalf("initial reset placed particle at (%v, %v)", p.X, p.Y)
		}
		checkRolledAttributes(t, p, cfg)
	}
}

func TestUpdateScalesVelocityByDPR(t *testing.T) {
	cfg := config.Default()
	vp := Viewport{Width: 800, Height: 600, DPR: 2}
	p := Particle{X: 100, Y: 100, VX: 0.25, VY: -0.125, Size: 2}

	p.Update(Pointer{}, vp, cfg, newTestRand())

	if p.X != 100.5 || p.Y != 99.75 {
		t.Errorf("position = (%v, %v), want (100.5, 99.75)", p.X, p.Y)
	}
	if p.VX != 0.25 || p.VY != -0.125 {
		t.Errorf("velocity changed without pointer: (%v, %v)", p.VX, p.VY)
	}
}

func TestUpdatePointerForce(t *testing.T) {
	cfg := config.Default()
	vp := Viewport{Width: 800, Height: 600, DPR: 1}

	tests := []struct {
		name   string
		ptr    Pointer
		wantVX float64
		wantVY float64
	}{
		{
			name:   "inside pointer distance",
			ptr:    Pointer{X: 110, Y: 100, Active: true},
			wantVX: -10 * (220 - 10) * pointerForce,
			wantVY: 0,
		},
		{
			name:   "diagonal",
			ptr:    Pointer{X: 130, Y: 140, Active: true},
			wantVX: -30 * (220 - 50) * pointerForce,
			wantVY: -40 * (220 - 50) * pointerForce,
		},
		{
			name: "beyond pointer distance",
			ptr:  Pointer{X: 400, Y: 100, Active: true},
		},
		{
			name: "inactive pointer",
			ptr:  Pointer{X: 110, Y: 100, Active: false},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Particle{X: 100, Y: 100, Size: 2}
			p.Update(tt.ptr, vp, cfg, newTestRand())
			if math.Abs(p.VX-tt.wantVX) > epsilon || math.Abs(p.VY-tt.wantVY) > epsilon {
				t.Errorf("velocity = (%v, %v), want (%v, %v)", p.VX, p.VY, tt.wantVX, tt.wantVY)
			}
		})
	}
}

func TestUpdateRespawnsBeforeDraw(t *testing.T) {
	cfg := config.Default()
	vp := Viewport{Width: 800, Height: 600, DPR: 1}
	p := Particle{X: 800 + 2 + 1, Y: 300, VX: 0.3, Size: 2, Speed: 0.3}

	p.Update(Pointer{}, vp, cfg, newTestRand())

	if p.Outside(vp) {
		t.Fatalf("particle still off surface at (%v, %v)", p.X, p.Y)
	}
	if !onExtendedEdge(p, vp) {
		t.Errorf("respawned particle at (%v, %v) size %v is not on an extended edge", p.X, p.Y, p.Size)
	}
	checkRolledAttributes(t, p, cfg)
}

func TestUpdateKeepsParticleWithinMargin(t *testing.T) {
	cfg := config.Default()
	vp := Viewport{Width: 800, Height: 600, DPR: 1}
	// Exactly on the margin is still on the surface.
	p := Particle{X: -2, Y: 300, Size: 2}

	p.Update(Pointer{}, vp, cfg, newTestRand())

	if p.X != -2 || p.Y != 300 {
		t.Errorf("particle on the margin was respawned to (%v, %v)", p.X, p.Y)
	}
}
