package particles

import (
	"math"
	"testing"

	"github.com/iburimskiy/particle-field/internal/config"
	"github.com/iburimskiy/particle-field/internal/render"
)

func drawConnections(cfg *config.Config, ps []Particle, ptr Pointer, vp Viewport) []render.Command {
	var cmds render.CommandList
	NewConnections(cfg).Draw(&cmds, ps, ptr, vp)
	return cmds.Filter(render.KindLine)
}

func TestConnectionsPairScenario(t *testing.T) {
	cfg := config.Default()
	vp := Viewport{Width: 800, Height: 600, DPR: 1}
	ps := []Particle{{X: 0, Y: 0}, {X: 10, Y: 0}}

	lines := drawConnections(cfg, ps, Pointer{}, vp)

	if len(lines) != 1 {
		t.Fatalf("drew %d lines, want 1", len(lines))
	}
	l := lines[0]
	if l.X0 != 0 || l.Y0 != 0 || l.X1 != 10 || l.Y1 != 0 {
		t.Errorf("line endpoints = (%v,%v)-(%v,%v)", l.X0, l.Y0, l.X1, l.Y1)
	}
	opacity := 1 - 10.0/160.0
	if math.Abs(l.Size-opacity*0.8) > epsilon {
		t.Errorf("width = %v, want %v", l.Size, opacity*0.8)
	}
	if math.Abs(l.Color.A-0.225) > epsilon {
		t.Errorf("alpha = %v, want 0.225", l.Color.A)
	}
	if l.Color.R != 255 || l.Color.G != 255 || l.Color.B != 255 {
		t.Errorf("rgb = %v,%v,%v, want 255,255,255", l.Color.R, l.Color.G, l.Color.B)
	}
}

func TestConnectionsThreshold(t *testing.T) {
	cfg := config.Default()

	tests := []struct {
		name      string
		distance  float64
		dpr       float64
		wantLines int
	}{
		{"just inside", 159.9, 1, 1},
		{"exactly at max", 160, 1, 0},
		{"beyond max", 200, 1, 0},
		{"beyond base but inside scaled max", 200, 2, 1},
		{"exactly at scaled max", 320, 2, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vp := Viewport{Width: 1000, Height: 1000, DPR: tt.dpr}
			ps := []Particle{{X: 0, Y: 0}, {X: tt.distance, Y: 0}}
			if got := len(drawConnections(cfg, ps, Pointer{}, vp)); got != tt.wantLines {
				t.Errorf("drew %d lines, want %d", got, tt.wantLines)
			}
		})
	}
}

func TestConnectionsVisitEachPairOnce(t *testing.T) {
	cfg := config.Default()
	vp := Viewport{Width: 800, Height: 600, DPR: 1}
	ps := []Particle{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 0, Y: 10}, {X: 10, Y: 10}}

	lines := drawConnections(cfg, ps, Pointer{}, vp)

	// 4 particles, all within range: C(4, 2) pairs.
	if len(lines) != 6 {
		t.Errorf("drew %d lines, want 6", len(lines))
	}
}

func TestConnectionsPointer(t *testing.T) {
	cfg := config.Default()
	vp := Viewport{Width: 800, Height: 800, DPR: 1}
	ps := []Particle{{X: 0, Y: 0}, {X: 0, Y: 500}}

	t.Run("inactive pointer draws no pointer lines", func(t *testing.T) {
		lines := drawConnections(cfg, ps, Pointer{X: 0, Y: 110, Active: false}, vp)
		if len(lines) != 0 {
			t.Errorf("drew %d lines, want 0", len(lines))
		}
	})

	t.Run("active pointer", func(t *testing.T) {
		ptr := Pointer{X: 0, Y: 110, Active: true}
		lines := drawConnections(cfg, ps, ptr, vp)
		if len(lines) != 1 {
			t.Fatalf("drew %d lines, want 1", len(lines))
		}
		l := lines[0]
		if l.X0 != ptr.X || l.Y0 != ptr.Y || l.X1 != 0 || l.Y1 != 0 {
			t.Errorf("line endpoints = (%v,%v)-(%v,%v)", l.X0, l.Y0, l.X1, l.Y1)
		}
		// opacity = 1 - 110/220 = 0.5
		if math.Abs(l.Color.A-0.2) > epsilon {
			t.Errorf("alpha = %v, want 0.2", l.Color.A)
		}
		if math.Abs(l.Size-0.6) > epsilon {
			t.Errorf("width = %v, want 0.6", l.Size)
		}
	})
}

func TestConnectionsInactivePointerKeepsPairLines(t *testing.T) {
	cfg := config.Default()
	vp := Viewport{Width: 800, Height: 600, DPR: 1}
	ps := []Particle{{X: 100, Y: 100}, {X: 150, Y: 100}, {X: 600, Y: 500}}

	lines := drawConnections(cfg, ps, Pointer{X: 120, Y: 100}, vp)

	if len(lines) != 1 {
		t.Fatalf("drew %d lines, want 1", len(lines))
	}
	if lines[0].X0 != 100 || lines[0].X1 != 150 {
		t.Errorf("unexpected line %+v", lines[0])
	}
}

func TestOpacity(t *testing.T) {
	const maxDistance = 160.0

	prev := math.Inf(1)
	for d := 0.0; d <= 200; d += 5 {
		o := Opacity(d, maxDistance)
		if o > prev {
			t.Fatalf("opacity increased from %v to %v at distance %v", prev, o, d)
		}
		if o < 0 || o > 1 {
			t.Fatalf("opacity %v out of [0, 1] at distance %v", o, d)
		}
		prev = o
	}

	if got := Opacity(0, maxDistance); got != 1 {
		t.Errorf("Opacity(0) = %v, want 1", got)
	}
	if got := Opacity(maxDistance, maxDistance); got != 0 {
		t.Errorf("Opacity(max) = %v, want 0", got)
	}
}

func TestRoundAlpha(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0.24 * 0.9375, 0.225},
		{0.12345, 0.123},
		{0.0004, 0},
		{0.4, 0.4},
	}
	for _, tt := range tests {
		if got := roundAlpha(tt.in); math.Abs(got-tt.want) > epsilon {
			t.Errorf("roundAlpha(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
