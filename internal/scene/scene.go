// Package scene runs one animation step of the particle field per display
// refresh and keeps the surface sized to the window.
package scene

import (
	"math/rand/v2"

	"github.com/iburimskiy/particle-field/internal/config"
	"github.com/iburimskiy/particle-field/internal/particles"
	"github.com/iburimskiy/particle-field/internal/render"
)

// Input is what a tick observes from the host: the latest pointer and
// surface state.
type Input struct {
	Pointer  particles.Pointer
	Viewport particles.Viewport
}

// Scene is the animation core. Tick turns the current state plus the host's
// input into the next state and the frame's draw commands; the host only
// schedules ticks and paints the commands.
type Scene struct {
	cfg         *config.Config
	field       *particles.Field
	connections *particles.Connections
	frames      uint64
}

func New(cfg *config.Config, rng *rand.Rand) *Scene {
	return &Scene{
		cfg:         cfg,
		field:       particles.NewField(cfg, rng),
		connections: particles.NewConnections(cfg),
	}
}

// Field exposes the particle field, for the viewport adapter to rescale.
func (s *Scene) Field() *particles.Field {
	return s.field
}

// Seed (re)populates the field at the given viewport.
func (s *Scene) Seed(vp particles.Viewport) {
	s.field.Init(s.cfg.ParticleCount, vp)
}

// Tick records one frame into out: the background fill, every particle after
// it has moved, then the connections.
func (s *Scene) Tick(in Input, out *render.CommandList) {
	out.Reset()
	out.FillRect(0, 0, float64(in.Viewport.Width), float64(in.Viewport.Height), s.cfg.Background)

	s.field.Step(in.Pointer, in.Viewport)
	s.field.Draw(out)
	s.connections.Draw(out, s.field.Particles(), in.Pointer, in.Viewport)

	s.frames++
}

// Frames returns how many ticks have run.
func (s *Scene) Frames() uint64 {
	return s.frames
}
