package game

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/particle-field/internal/particles"
)

// Control dimensions in window pixels; scaled by the device pixel ratio.
const (
	controlMargin = 20
	buttonWidth   = 72
	buttonHeight  = 28
	sliderGap     = 14
	sliderWidth   = 140
	sliderHeight  = 6
	knobRadius    = 7
	volumeStep    = 0.05
)

// audioControls is what the HUD drives.
type audioControls interface {
	ToggleMute() bool
	SetVolume(level float64)
	Volume() float64
	Muted() bool
}

// controlLayout places the mute toggle and volume slider in the bottom-left
// corner of the surface.
type controlLayout struct {
	scale                              float64
	buttonX, buttonY, buttonW, buttonH float64
	sliderX, sliderY, sliderW, sliderH float64
	hitTop, hitBottom                  float64
}

func layoutControls(vp particles.Viewport) controlLayout {
	s := vp.DPR
	if s <= 0 {
		s = 1
	}
	l := controlLayout{
		scale:   s,
		buttonX: controlMargin * s,
		buttonY: float64(vp.Height) - (controlMargin+buttonHeight)*s,
		buttonW: buttonWidth * s,
		buttonH: buttonHeight * s,
		sliderW: sliderWidth * s,
		sliderH: sliderHeight * s,
	}
	l.sliderX = l.buttonX + l.buttonW + sliderGap*s
	l.sliderY = l.buttonY + (l.buttonH-l.sliderH)/2
	l.hitTop = l.buttonY
	l.hitBottom = l.buttonY + l.buttonH
	return l
}

func (l controlLayout) onButton(x, y float64) bool {
	return x >= l.buttonX && x <= l.buttonX+l.buttonW &&
		y >= l.buttonY && y <= l.buttonY+l.buttonH
}

// onSlider uses the button's height as the hit band so the thin track is
// easy to grab.
func (l controlLayout) onSlider(x, y float64) bool {
	return x >= l.sliderX && x <= l.sliderX+l.sliderW &&
		y >= l.hitTop && y <= l.hitBottom
}

func (l controlLayout) levelAt(x float64) float64 {
	return clamp01((x - l.sliderX) / l.sliderW)
}

// controlInput is one tick of primary-button input in surface pixels.
type controlInput struct {
	X, Y         float64
	JustPressed  bool
	Pressed      bool
	JustReleased bool
}

// controls is the mute toggle and volume slider state.
type controls struct {
	buttonHovered bool
	buttonPressed bool
	dragging      bool
}

// update applies one tick of input. It reports whether the input was aimed
// at the controls.
func (c *controls) update(l controlLayout, in controlInput, a audioControls) bool {
	c.buttonHovered = l.onButton(in.X, in.Y)
	consumed := false

	if in.JustPressed {
		switch {
		case c.buttonHovered:
			c.buttonPressed = true
			consumed = true
		case l.onSlider(in.X, in.Y):
			c.dragging = true
			consumed = true
		}
	}

	if c.dragging {
		if in.Pressed || in.JustPressed {
			level := l.levelAt(in.X)
			if level != a.Volume() {
				a.SetVolume(level)
			}
		}
		consumed = true
	}

	if in.JustReleased {
		if c.buttonPressed && c.buttonHovered {
			a.ToggleMute()
			consumed = true
		}
		c.buttonPressed = false
		c.dragging = false
	}
	return consumed
}

func (c *controls) draw(screen *ebiten.Image, l controlLayout, muted bool, level float64) {
	var bgColor color.Color
	switch {
	case c.buttonPressed:
		bgColor = color.RGBA{R: 40, G: 40, B: 48, A: 230}
	case c.buttonHovered:
		bgColor = color.RGBA{R: 60, G: 60, B: 72, A: 230}
	default:
		bgColor = color.RGBA{R: 24, G: 24, B: 30, A: 230}
	}
	vector.DrawFilledRect(screen, float32(l.buttonX), float32(l.buttonY), float32(l.buttonW), float32(l.buttonH), bgColor, false)
	vector.StrokeRect(screen, float32(l.buttonX), float32(l.buttonY), float32(l.buttonW), float32(l.buttonH), float32(l.scale), color.RGBA{R: 150, G: 150, B: 160, A: 255}, false)

	label := "Mute"
	if muted {
		label = "Unmute"
	}
	textWidth := len(label) * 6
	ebitenutil.DebugPrintAt(screen, label,
		int(l.buttonX+(l.buttonW-float64(textWidth))/2),
		int(l.buttonY+(l.buttonH-16)/2))

	// Slider track, fill and knob
	vector.DrawFilledRect(screen, float32(l.sliderX), float32(l.sliderY), float32(l.sliderW), float32(l.sliderH), color.RGBA{R: 50, G: 50, B: 58, A: 230}, false)
	fill := l.sliderW * clamp01(level)
	fillColor := color.RGBA{R: 255, G: 255, B: 255, A: 180}
	if muted {
		fillColor = color.RGBA{R: 120, G: 120, B: 120, A: 180}
	}
	if fill > 0 {
		vector.DrawFilledRect(screen, float32(l.sliderX), float32(l.sliderY), float32(fill), float32(l.sliderH), fillColor, false)
	}
	knobX := l.sliderX + fill
	knobY := l.sliderY + l.sliderH/2
	vector.DrawFilledCircle(screen, float32(knobX), float32(knobY), float32(knobRadius*l.scale), color.RGBA{R: 255, G: 255, B: 255, A: 255}, true)
	vector.StrokeCircle(screen, float32(knobX), float32(knobY), float32(knobRadius*l.scale), float32(l.scale), color.RGBA{R: 100, G: 100, B: 110, A: 255}, true)

	ebitenutil.DebugPrintAt(screen, formatPercent(level),
		int(l.sliderX+l.sliderW+sliderGap*l.scale),
		int(l.buttonY+(l.buttonH-16)/2))
}
