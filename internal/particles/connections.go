package particles

import (
	"math"

	"github.com/iburimskiy/particle-field/internal/config"
	"github.com/iburimskiy/particle-field/internal/render"
)

const (
	lineWidthScale        = 0.8
	pointerLineAlpha      = 0.4
	pointerLineWidthScale = 1.2
)

// Connections draws the proximity graph. Every pair is checked every frame,
// which is fine for tens to low hundreds of particles; thousands need a
// spatial index instead.
type Connections struct {
	cfg *config.Config
}

func NewConnections(cfg *config.Config) *Connections {
	return &Connections{cfg: cfg}
}

// Draw strokes a line between every pair of particles closer than the
// connection distance and, while the pointer is active, from the pointer to
// every particle within the pointer distance. Lines fade out linearly with
// distance.
func (r *Connections) Draw(c render.Canvas, ps []Particle, ptr Pointer, vp Viewport) {
	maxDistance := r.cfg.ConnectionDistance * vp.DPR
	maxPointerDistance := r.cfg.MouseConnectionDistance * vp.DPR

	for i := range ps {
		p := &ps[i]

		for j := i + 1; j < len(ps); j++ {
			other := &ps[j]
			opacity := Opacity(math.Hypot(p.X-other.X, p.Y-other.Y), maxDistance)
			if opacity <= 0 {
				continue
			}
			alpha := roundAlpha(r.cfg.LineColor.Alpha * opacity)
			c.StrokeLine(p.X, p.Y, other.X, other.Y, opacity*lineWidthScale, r.cfg.LineColor.Color(alpha))
		}

		if ptr.Active {
			opacity := Opacity(math.Hypot(p.X-ptr.X, p.Y-ptr.Y), maxPointerDistance)
			if opacity <= 0 {
				continue
			}
			alpha := roundAlpha(pointerLineAlpha * opacity)
			c.StrokeLine(ptr.X, ptr.Y, p.X, p.Y, opacity*pointerLineWidthScale, r.cfg.LineColor.Color(alpha))
		}
	}
}

// Opacity is 1 at distance zero, falling linearly to 0 at maxDistance and
// staying 0 beyond it.
func Opacity(distance, maxDistance float64) float64 {
	if distance >= maxDistance {
		return 0
	}
	return 1 - distance/maxDistance
}

// roundAlpha keeps three decimals.
func roundAlpha(a float64) float64 {
	return math.Round(a*1000) / 1000
}
