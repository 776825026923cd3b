package scene

import (
	"log"

	"github.com/iburimskiy/particle-field/internal/config"
	"github.com/iburimskiy/particle-field/internal/particles"
)

// ViewportAdapter keeps the surface's pixel buffer in step with the window
// size and device pixel ratio, and rescales the field so particles keep their
// relative positions across resizes.
type ViewportAdapter struct {
	cfg   *config.Config
	field *particles.Field

	vp                        particles.Viewport
	windowWidth, windowHeight int
}

// NewViewportAdapter starts with an empty surface at the given device pixel
// ratio; the first Resize sizes it.
func NewViewportAdapter(cfg *config.Config, field *particles.Field, dpr float64) *ViewportAdapter {
	return &ViewportAdapter{
		cfg:   cfg,
		field: field,
		vp:    particles.Viewport{DPR: cfg.CapDevicePixelRatio(dpr)},
	}
}

// Resize sizes the surface buffer to the window size times the capped device
// pixel ratio and rescales the field by the per-axis growth of the buffer.
// Before the first resize the buffer is empty, so the ratio change of the
// device pixel ratio is used instead.
func (a *ViewportAdapter) Resize(windowWidth, windowHeight int, dpr float64) (scaleX, scaleY float64) {
	prev := a.vp
	next := a.cfg.CapDevicePixelRatio(dpr)

	a.windowWidth, a.windowHeight = windowWidth, windowHeight
	a.vp = particles.Viewport{
		Width:  int(float64(windowWidth) * next),
		Height: int(float64(windowHeight) * next),
		DPR:    next,
	}

	scaleX = next / prev.DPR
	if prev.Width != 0 {
		scaleX = float64(a.vp.Width) / float64(prev.Width)
	}
	scaleY = next / prev.DPR
	if prev.Height != 0 {
		scaleY = float64(a.vp.Height) / float64(prev.Height)
	}

	a.field.Rescale(scaleX, scaleY)

	log.Printf("[Viewport] %dx%d @%.2f -> surface %dx%d (scale %.3f, %.3f)",
		windowWidth, windowHeight, next, a.vp.Width, a.vp.Height, scaleX, scaleY)
	return scaleX, scaleY
}

// Sync resizes only when the window size or device pixel ratio differs from
// the last resize. It reports whether a resize happened.
func (a *ViewportAdapter) Sync(windowWidth, windowHeight int, dpr float64) bool {
	if a.vp.Width != 0 &&
		windowWidth == a.windowWidth &&
		windowHeight == a.windowHeight &&
		a.cfg.CapDevicePixelRatio(dpr) == a.vp.DPR {
		return false
	}
	a.Resize(windowWidth, windowHeight, dpr)
	return true
}

// Viewport returns the current surface state.
func (a *ViewportAdapter) Viewport() particles.Viewport {
	return a.vp
}

// WindowSize returns the displayed size the surface is shown at.
func (a *ViewportAdapter) WindowSize() (int, int) {
	return a.windowWidth, a.windowHeight
}
