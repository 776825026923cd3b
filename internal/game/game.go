// Package game hosts the particle scene in an ebiten window: it schedules one
// scene tick per display refresh, feeds it the window size and pointer, and
// wires keyboard and mouse input to the background audio.
package game

import (
	"log"
	"math/rand/v2"
	"sync/atomic"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/iburimskiy/particle-field/internal/audio"
	"github.com/iburimskiy/particle-field/internal/config"
	"github.com/iburimskiy/particle-field/internal/particles"
	"github.com/iburimskiy/particle-field/internal/render"
	"github.com/iburimskiy/particle-field/internal/scene"
)

// trackSwitcher replaces the background track.
type trackSwitcher interface {
	Switch(path string) error
}

// Game implements ebiten.Game.
type Game struct {
	cfg      *config.Config
	scene    *scene.Scene
	viewport *scene.ViewportAdapter
	pointer  pointerTracker
	controls controls
	audio    *audio.Controller
	tracks   trackSwitcher

	// frame holds the commands of the latest tick until Draw paints them.
	frame  render.CommandList
	seeded bool

	scaleFactor func() float64
	pickTrack   func() (string, error)
	picking     atomic.Bool

	keys []ebiten.Key
}

// New builds the game. tracks may be nil to disable picking a track.
func New(cfg *config.Config, ctrl *audio.Controller, tracks trackSwitcher, rng *rand.Rand) *Game {
	sc := scene.New(cfg, rng)
	return &Game{
		cfg:         cfg,
		scene:       sc,
		viewport:    scene.NewViewportAdapter(cfg, sc.Field(), 1),
		audio:       ctrl,
		tracks:      tracks,
		scaleFactor: deviceScaleFactor,
		pickTrack:   audio.PickTrack,
	}
}

func (g *Game) Update() error {
	vp := g.viewport.Viewport()
	ptr := g.pointer.poll(vp)

	if g.gestured() {
		g.audio.Gesture()
	}

	cx, cy := ebiten.CursorPosition()
	g.controls.update(layoutControls(vp), controlInput{
		X:            float64(cx),
		Y:            float64(cy),
		JustPressed:  inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		Pressed:      ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		JustReleased: inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft),
	}, g.audio)

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		g.audio.ToggleMute()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyUp) {
		g.audio.SetVolume(g.audio.Volume() + volumeStep)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDown) {
		g.audio.SetVolume(g.audio.Volume() - volumeStep)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.reseed()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyO) {
		g.openTrackDialog()
	}

	g.tick(ptr)
	return nil
}

// gestured reports a pointer-down or key-down this tick.
func (g *Game) gestured() bool {
	g.keys = inpututil.AppendJustPressedKeys(g.keys[:0])
	if len(g.keys) > 0 {
		return true
	}
	for _, b := range []ebiten.MouseButton{ebiten.MouseButtonLeft, ebiten.MouseButtonRight, ebiten.MouseButtonMiddle} {
		if inpututil.IsMouseButtonJustPressed(b) {
			return true
		}
	}
	return len(inpututil.AppendJustPressedTouchIDs(nil)) > 0
}

// tick runs one scene step against the current viewport.
func (g *Game) tick(ptr particles.Pointer) {
	g.scene.Tick(scene.Input{Pointer: ptr, Viewport: g.viewport.Viewport()}, &g.frame)
}

func (g *Game) reseed() {
	g.scene.Seed(g.viewport.Viewport())
	log.Printf("[Game] field reseeded with %d particles", g.scene.Field().Len())
}

// openTrackDialog asks for a new background track without blocking the
// frame loop. Only one dialog is open at a time.
func (g *Game) openTrackDialog() {
	if g.tracks == nil || !g.picking.CompareAndSwap(false, true) {
		return
	}
	go func() {
		defer g.picking.Store(false)

		path, err := g.pickTrack()
		if err != nil {
			log.Printf("[Game] track dialog failed: %v", err)
			return
		}
		if path == "" {
			return
		}
		if err := g.tracks.Switch(path); err != nil {
			log.Printf("[Game] failed to switch track: %v", err)
			return
		}
		if !g.audio.Muted() {
			g.audio.Attempt()
		}
	}()
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.frame.Replay(screenCanvas{dst: screen})
	g.controls.draw(screen, layoutControls(g.viewport.Viewport()), g.audio.Muted(), g.audio.Volume())
}

// Layout sizes the surface to the window times the device pixel ratio, so
// drawing stays sharp on dense displays. The field is seeded on the first
// call, once the surface has a size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth > 0 && outsideHeight > 0 {
		g.viewport.Sync(outsideWidth, outsideHeight, g.scaleFactor())
		if !g.seeded {
			g.reseed()
			g.seeded = true
		}
	}

	vp := g.viewport.Viewport()
	if vp.Width <= 0 || vp.Height <= 0 {
		return 1, 1
	}
	return vp.Width, vp.Height
}

// deviceScaleFactor reads the current monitor's scale, falling back to 1
// when no monitor is known yet.
func deviceScaleFactor() float64 {
	m := ebiten.Monitor()
	if m == nil {
		return 1
	}
	return m.DeviceScaleFactor()
}
