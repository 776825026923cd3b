// Command particle-field shows an animated particle field that reacts to the
// pointer, over a looping background track.
//
// Usage:
//
//	particle-field [flags]
//
// Flags:
//
//	-config <path>   YAML file overriding the defaults
//	-track <path>    background track (.wav, .mp3, .flac)
//	-seed <n>        fixed particle seed
//	-muted           start muted
//	-verbose         enable logging
//
// Controls:
//
//	M            toggle mute
//	Up/Down      volume
//	O            choose a background track
//	R            respawn the field
//	Esc/Q        quit
package main

import (
	"errors"
	"flag"
	"io"
	"log"
	"math/rand/v2"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/iburimskiy/particle-field/internal/audio"
	"github.com/iburimskiy/particle-field/internal/config"
	"github.com/iburimskiy/particle-field/internal/game"
)

var (
	configFlag  = flag.String("config", "", "YAML config file")
	trackFlag   = flag.String("track", "", "Background track, overrides the config")
	seedFlag    = flag.Uint64("seed", 0, "Particle seed (0 = random)")
	mutedFlag   = flag.Bool("muted", false, "Start muted")
	verboseFlag = flag.Bool("verbose", false, "Enable verbose logging (default off)")
)

func main() {
	flag.Parse()

	if !*verboseFlag {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	cfg, err := config.Load(*configFlag)
	if err != nil {
		log.SetOutput(flag.CommandLine.Output())
		log.Fatal(err)
	}
	if *trackFlag != "" {
		cfg.Audio.Track = *trackFlag
	}
	if *seedFlag != 0 {
		cfg.Seed = *seedFlag
	}
	if *mutedFlag {
		cfg.Audio.Muted = true
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}
	log.Printf("[Main] particle seed %d", seed)

	player := audio.NewPlayer(cfg.Audio.Track, cfg.Audio.SampleRate, cfg.Audio.Volume, cfg.Audio.Muted)
	defer player.Close()

	ctrl := audio.NewController(player)
	if !cfg.Audio.Muted {
		ctrl.Attempt()
	}

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	// The background is translucent: leaving the previous frame in place
	// gives the particles their trails.
	ebiten.SetScreenClearedEveryFrame(false)

	g := game.New(cfg, ctrl, player, rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)))
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		log.SetOutput(flag.CommandLine.Output())
		log.Fatal(err)
	}
}
