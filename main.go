package main

import (
	"context"
	"errors"
	"flag"
	"image"
	"log"
	"os"
	"os/signal"

	"github.com/automoto/fireworks/config"
	"github.com/automoto/fireworks/fonts"
	"github.com/automoto/fireworks/headless"
	"github.com/automoto/fireworks/scenes"
	"github.com/automoto/fireworks/sim"
	"github.com/automoto/fireworks/sound"
	"github.com/automoto/fireworks/systems/factory"
	"github.com/automoto/fireworks/terminal"
	"github.com/gdamore/tcell/v2"
	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gomono"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
	Resize(width, height int)
	Quit() bool
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

func NewGame(stage *sim.Stage, snd *sound.SoundManager) *Game {
	return &Game{
		bounds: image.Rect(0, 0, config.C.Width, config.C.Height),
		scene:  scenes.NewStageScene(stage, snd),
	}
}

func (g *Game) Update() error {
	g.scene.Update()
	if g.scene.Quit() {
		return ebiten.Termination
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

// Layout follows the window so the show fills it at any size
func (g *Game) Layout(width, height int) (int, int) {
	if width <= 0 || height <= 0 {
		width, height = config.C.Width, config.C.Height
	}
	if g.bounds.Dx() != width || g.bounds.Dy() != height {
		g.bounds = image.Rect(0, 0, width, height)
		g.scene.Resize(width, height)
	}
	return width, height
}

func loadFonts() {
	if err := fonts.LoadFontWithSize(fonts.Glyph, gobold.TTF, config.Glyph.FontSize); err != nil {
		// Phrase shells still burst, as spheres
		log.Printf("Warning: Could not load glyph font: %v", err)
	}
	if err := fonts.LoadFontWithSize(fonts.Title, gobold.TTF, 32); err != nil {
		log.Fatalf("Failed to load title font: %v", err)
	}
	if err := fonts.LoadFontWithSize(fonts.Debug, gomono.TTF, 12); err != nil {
		log.Fatalf("Failed to load debug font: %v", err)
	}
}

func newStage(clock sim.Clock) *sim.Stage {
	rng := sim.NewRand(config.Debug.Seed)
	return sim.NewStage(config.Fireworks, config.Camera, rng, clock, factory.NewGlyphSource(rng))
}

// newSound returns an initialized sound manager, or nil when sound is off
// or no audio device is available
func newSound(enabled bool) *sound.SoundManager {
	if !enabled {
		return nil
	}
	sm := sound.NewSoundManager()
	if err := sm.Initialize(); err != nil {
		// Non-fatal, the show can run without sound
		log.Printf("Warning: Audio initialization failed: %v", err)
		return nil
	}
	return sm
}

func runTerminal(ctx context.Context, snd *sound.SoundManager) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	term := terminal.New(screen, newStage(sim.NewMonotonicClock()))
	term.Sound = snd
	return term.Run(ctx)
}

func main() {
	var hcfg headless.Config
	var termMode, soundOn bool
	flag.BoolVar(&hcfg.Enabled, "headless", false, "Run without a window.")
	flag.IntVar(&hcfg.Hz, "hz", 60, "Tick rate in headless mode.")
	flag.Uint64Var(&hcfg.Ticks, "ticks", 0, "Stop after N ticks in headless mode (0 = run forever).")
	flag.Uint64Var(&hcfg.LogEvery, "log-every", 60, "Log a summary every N ticks in headless mode (0 = never).")
	flag.BoolVar(&hcfg.Unpaced, "fast", false, "Tick as fast as possible in headless mode.")
	flag.BoolVar(&termMode, "term", false, "Render in the terminal instead of a window.")
	flag.BoolVar(&soundOn, "sound", false, "Play burst sounds (window and terminal modes).")
	flag.Uint64Var(&config.Debug.Seed, "seed", 0, "Random seed (0 = time based).")
	flag.BoolVar(&config.Debug.Overlay, "debug", false, "Start with the debug overlay visible.")
	flag.Parse()

	loadFonts()

	if hcfg.Enabled || termMode {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		if termMode {
			snd := newSound(soundOn)
			defer snd.Cleanup()
			if err := runTerminal(ctx, snd); err != nil {
				log.Fatal(err)
			}
			return
		}

		hcfg.Width, hcfg.Height = config.C.Width, config.C.Height
		rep, err := headless.Run(ctx, newStage, hcfg)
		log.Printf("headless: %s", rep)
		if err != nil && !errors.Is(err, context.Canceled) {
			log.Fatal(err)
		}
		return
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	snd := newSound(soundOn)
	defer snd.Cleanup()

	if err := ebiten.RunGame(NewGame(newStage(sim.NewMonotonicClock()), snd)); err != nil {
		log.Fatal(err)
	}
}
