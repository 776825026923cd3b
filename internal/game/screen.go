package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/particle-field/internal/render"
)

// screenCanvas paints render commands onto an ebiten image.
type screenCanvas struct {
	dst *ebiten.Image
}

var _ render.Canvas = screenCanvas{}

func (s screenCanvas) FillRect(x, y, width, height float64, c render.Color) {
	vector.DrawFilledRect(s.dst, float32(x), float32(y), float32(width), float32(height), c.NRGBA(), false)
}

func (s screenCanvas) FillCircle(cx, cy, radius float64, c render.Color) {
	vector.DrawFilledCircle(s.dst, float32(cx), float32(cy), float32(radius), c.NRGBA(), true)
}

func (s screenCanvas) StrokeLine(x0, y0, x1, y1, width float64, c render.Color) {
	vector.StrokeLine(s.dst, float32(x0), float32(y0), float32(x1), float32(y1), float32(width), c.NRGBA(), true)
}
