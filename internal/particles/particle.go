package particles

import (
	"math"
	"math/rand/v2"

	"github.com/iburimskiy/particle-field/internal/config"
	"github.com/iburimskiy/particle-field/internal/render"
)

// pointerForce scales how strongly the pointer bends a nearby particle's
// velocity per pixel of remaining distance.
const pointerForce = 0.00025

// Edge is a side of the surface a particle respawns beyond.
type Edge int

const (
	EdgeTop Edge = iota
	EdgeRight
	EdgeBottom
	EdgeLeft
)

// Particle is a single drifting point.
type Particle struct {
	X, Y   float64
	VX, VY float64
	Speed  float64
	Size   float64
}

// Reset re-rolls size, speed and heading. An initial reset places the
// particle anywhere on the surface; later resets place it just outside a
// random edge so it drifts in rather than popping up mid-screen.
func (p *Particle) Reset(initial bool, vp Viewport, cfg *config.Config, rng *rand.Rand) {
	p.Size = sample(cfg.ParticleSize, rng)
	p.Speed = sample(cfg.Speed, rng)
	angle := rng.Float64() * math.Pi * 2
	p.VX = math.Cos(angle) * p.Speed
	p.VY = math.Sin(angle) * p.Speed

	w, h := float64(vp.Width), float64(vp.Height)
	if initial {
		p.X = rng.Float64() * w
		p.Y = rng.Float64() * h
		return
	}

	switch Edge(rng.IntN(4)) {
	case EdgeTop:
		p.X = rng.Float64() * w
		p.Y = -p.Size
	case EdgeRight:
		p.X = w + p.Size
		p.Y = rng.Float64() * h
	case EdgeBottom:
		p.X = rng.Float64() * w
		p.Y = h + p.Size
	default:
		p.X = -p.Size
		p.Y = rng.Float64() * h
	}
}

// Update moves the particle one tick, bends its velocity when the pointer is
// close and respawns it at an edge once it has fully left the surface.
func (p *Particle) Update(ptr Pointer, vp Viewport, cfg *config.Config, rng *rand.Rand) {
	p.X += p.VX * vp.DPR
	p.Y += p.VY * vp.DPR

	if ptr.Active {
		dx := ptr.X - p.X
		dy := ptr.Y - p.Y
		distance := math.Hypot(dx, dy)
		if distance < cfg.MouseConnectionDistance*vp.DPR {
			force := (cfg.MouseConnectionDistance - distance) * pointerForce
			p.VX -= dx * force
			p.VY -= dy * force
		}
	}

	if p.Outside(vp) {
		p.Reset(false, vp, cfg, rng)
	}
}

// Outside reports whether the particle, including its radius, has left the
// surface on any side.
func (p *Particle) Outside(vp Viewport) bool {
	return p.X < -p.Size ||
		p.X > float64(vp.Width)+p.Size ||
		p.Y < -p.Size ||
		p.Y > float64(vp.Height)+p.Size
}

// Draw paints the particle as a filled circle.
func (p *Particle) Draw(c render.Canvas, fill render.Color) {
	c.FillCircle(p.X, p.Y, p.Size, fill)
}

func sample(r config.Range, rng *rand.Rand) float64 {
	return r.Min + rng.Float64()*(r.Max-r.Min)
}
