package particles

import (
	"math/rand/v2"

	"github.com/iburimskiy/particle-field/internal/config"
	"github.com/iburimskiy/particle-field/internal/render"
)

// Field owns the particle set. Order only matters to the connection pass,
// which walks each pair once.
type Field struct {
	cfg       *config.Config
	rng       *rand.Rand
	particles []Particle
}

// NewField creates an empty field. Call Init once the viewport is known.
func NewField(cfg *config.Config, rng *rand.Rand) *Field {
	return &Field{cfg: cfg, rng: rng}
}

// Init replaces the field with count freshly spawned particles placed
// anywhere on the surface.
func (f *Field) Init(count int, vp Viewport) {
	f.particles = make([]Particle, count)
	for i := range f.particles {
		f.particles[i].Reset(true, vp, f.cfg, f.rng)
	}
}

// Rescale multiplies every position by the per-axis factors so particles
// keep their relative place after the surface is resized.
func (f *Field) Rescale(scaleX, scaleY float64) {
	for i := range f.particles {
		f.particles[i].X *= scaleX
		f.particles[i].Y *= scaleY
	}
}

// Step advances every particle one tick.
func (f *Field) Step(ptr Pointer, vp Viewport) {
	for i := range f.particles {
		f.particles[i].Update(ptr, vp, f.cfg, f.rng)
	}
}

// Draw paints every particle in the configured fill color.
func (f *Field) Draw(c render.Canvas) {
	for i := range f.particles {
		f.particles[i].Draw(c, f.cfg.ParticleColor)
	}
}

// Particles exposes the current particle set. Callers must not keep it
// across Init.
func (f *Field) Particles() []Particle {
	return f.particles
}

// Len returns the number of particles.
func (f *Field) Len() int {
	return len(f.particles)
}
