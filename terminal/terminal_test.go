package terminal

import (
	"context"
	"image/color"
	"strings"
	"testing"
	"time"

	cfg "github.com/automoto/fireworks/config"
	"github.com/automoto/fireworks/sim"
	"github.com/gdamore/tcell/v2"
)

type stubClock struct {
	now time.Duration
}

func (c *stubClock) Now() time.Duration { return c.now }

func newTestTerminal(t *testing.T) (*Terminal, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("init screen: %v", err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(80, 25)

	stage := sim.NewStage(cfg.Fireworks, cfg.Camera, sim.NewRand(9), &stubClock{}, nil)
	return New(screen, stage), screen
}

func TestNewSizesVirtualSurface(t *testing.T) {
	term, _ := newTestTerminal(t)

	cols, rows := term.raster.Size()
	if cols != 80 || rows != 24 {
		t.Fatalf("raster %dx%d, want 80x24", cols, rows)
	}
	st := term.stage.State
	if st.Width != float64(80*cfg.Terminal.CellWidth) || st.Height != float64(24*cfg.Terminal.CellHeight) {
		t.Errorf("virtual surface %vx%v", st.Width, st.Height)
	}
}

func TestMouseClickLaunchesOnce(t *testing.T) {
	term, _ := newTestTerminal(t)

	term.handleEvent(tcell.NewEventMouse(10, 5, tcell.Button1, tcell.ModNone))
	// Drag with the button still held must not launch again
	term.handleEvent(tcell.NewEventMouse(12, 5, tcell.Button1, tcell.ModNone))
	term.handleEvent(tcell.NewEventMouse(12, 5, tcell.ButtonNone, tcell.ModNone))

	if n := len(term.stage.State.Shells); n != 1 {
		t.Fatalf("expected 1 manual shell, got %d", n)
	}
	if !term.pointerSeen || term.pointerX != 12.5*float64(cfg.Terminal.CellWidth) {
		t.Errorf("pointer not tracked: %v seen=%v", term.pointerX, term.pointerSeen)
	}
}

func TestKeys(t *testing.T) {
	term, _ := newTestTerminal(t)

	term.handleEvent(tcell.NewEventKey(tcell.KeyRune, 'p', tcell.ModNone))
	if !term.stage.Paused {
		t.Fatal("p did not pause")
	}
	term.handleEvent(tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone))
	if len(term.stage.State.Shells) != 0 {
		t.Error("launched while paused")
	}
	term.handleEvent(tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone))
	if term.stage.Paused {
		t.Fatal("space did not resume")
	}

	term.handleEvent(tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone))
	if len(term.stage.State.Shells) != 1 {
		t.Errorf("enter did not launch")
	}

	term.handleEvent(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone))
	if !term.quit {
		t.Error("q did not quit")
	}
}

func TestResizeFollowsScreen(t *testing.T) {
	term, screen := newTestTerminal(t)

	screen.SetSize(40, 11)
	term.handleEvent(tcell.NewEventResize(40, 11))

	if cols, rows := term.raster.Size(); cols != 40 || rows != 10 {
		t.Fatalf("raster %dx%d, want 40x10", cols, rows)
	}
	if term.stage.State.Width != float64(40*cfg.Terminal.CellWidth) {
		t.Errorf("state width %v", term.stage.State.Width)
	}
}

func TestDrawWritesStatusLine(t *testing.T) {
	term, screen := newTestTerminal(t)

	term.stage.Tick(cfg.Terminal.FrameInterval)
	term.draw()

	var b strings.Builder
	for col := 0; col < 40; col++ {
		ch, _, _, _ := screen.GetContent(col, 24)
		b.WriteRune(ch)
	}
	if !strings.Contains(b.String(), "next:") {
		t.Errorf("status line = %q", b.String())
	}
}

func TestRunStopsOnContext(t *testing.T) {
	term, _ := newTestTerminal(t)

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- term.Run(ctx) }()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("run: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("run did not return after context expired")
	}
	if term.stage.Frames == 0 {
		t.Error("no frames rendered")
	}
}

func TestRasterAddAndFade(t *testing.T) {
	bg := color.RGBA{A: 255}
	r := NewRaster(4, 2, 8, 16, bg)
	ramp := []rune(" .*@")

	it := sim.RenderItem{
		Kind:       sim.ItemSpark,
		Projection: sim.Projection{X: 12, Y: 20, Scale: 1},
		Color:      color.RGBA{R: 255, G: 255, B: 255, A: 255},
		Alpha:      1,
		Size:       8,
	}
	r.Add(&it, 4, 0.8)

	ch, c := r.Cell(1, 1, ramp)
	if ch != '@' || c.R != 255 {
		t.Fatalf("lit cell = %q %v", ch, c)
	}
	if ch, _ := r.Cell(0, 0, ramp); ch != ' ' {
		t.Errorf("unlit cell = %q", ch)
	}

	for range 30 {
		r.Fade(0.2)
	}
	if ch, _ := r.Cell(1, 1, ramp); ch != ' ' {
		t.Errorf("cell did not fade, got %q", ch)
	}
}

func TestRasterIgnoresOffSurface(t *testing.T) {
	r := NewRaster(2, 2, 8, 16, color.RGBA{A: 255})
	it := sim.RenderItem{Kind: sim.ItemShell, Projection: sim.Projection{X: -1, Y: 5, Scale: 1}, Alpha: 1}
	r.Add(&it, 4, 0.8)
	it.X, it.Y = 16, 0
	r.Add(&it, 4, 0.8)

	for row := 0; row < 2; row++ {
		for col := 0; col < 2; col++ {
			if ch, _ := r.Cell(col, row, []rune(" #")); ch != ' ' {
				t.Errorf("cell %d,%d lit by off-surface item", col, row)
			}
		}
	}
}

func TestRasterGlyphIsRoundDot(t *testing.T) {
	bg := color.RGBA{A: 255}
	ramp := []rune(" .:-=+*#%@")
	white := color.RGBA{R: 255, G: 255, B: 255, A: 255}

	glyph := NewRaster(2, 2, 8, 16, bg)
	glyph.Add(&sim.RenderItem{Kind: sim.ItemGlyph, Projection: sim.Projection{X: 4, Y: 4, Scale: 1}, Color: white, Alpha: 1, Size: 4}, 4, 0.8)

	spark := NewRaster(2, 2, 8, 16, bg)
	spark.Add(&sim.RenderItem{Kind: sim.ItemSpark, Projection: sim.Projection{X: 4, Y: 4, Scale: 1}, Color: white, Alpha: 1, Size: 2}, 4, 0.8)

	gc, gcol := glyph.Cell(0, 0, ramp)
	sc, scol := spark.Cell(0, 0, ramp)
	if gc == ' ' {
		t.Fatal("glyph left the cell unlit")
	}
	if gc != sc || gcol != scol {
		t.Errorf("glyph of size 4 = %q %v, want spark of radius 2 %q %v", gc, gcol, sc, scol)
	}
}
