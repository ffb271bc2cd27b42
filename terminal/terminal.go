// Package terminal runs the show inside a terminal with tcell. Every cell
// stands for a block of virtual pixels so the simulation keeps the same
// scale as in a window.
package terminal

import (
	"context"
	"fmt"
	"time"

	cfg "github.com/automoto/fireworks/config"
	"github.com/automoto/fireworks/sim"
	"github.com/automoto/fireworks/sound"
	"github.com/gdamore/tcell/v2"
)

// Terminal drives a stage on a tcell screen. The caller owns the screen
// and must Init it before Run and Fini it afterwards.
type Terminal struct {
	// Sound plays burst effects when set
	Sound *sound.SoundManager

	screen tcell.Screen
	stage  *sim.Stage
	raster *Raster
	ramp   []rune
	list   []sim.RenderItem

	pointerX, pointerY float64
	pointerSeen        bool
	buttons            tcell.ButtonMask
	quit               bool
}

func New(screen tcell.Screen, stage *sim.Stage) *Terminal {
	t := &Terminal{
		screen: screen,
		stage:  stage,
		raster: NewRaster(0, 0, cfg.Terminal.CellWidth, cfg.Terminal.CellHeight, cfg.Render.Background),
		ramp:   []rune(cfg.Terminal.Ramp),
	}
	t.resize()
	return t
}

// Run polls events and renders frames until ctx is done or the user quits
func (t *Terminal) Run(ctx context.Context) error {
	t.screen.EnableMouse()
	t.screen.HideCursor()

	ticker := time.NewTicker(cfg.Terminal.FrameInterval)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := t.screen.PollEvent()
			if ev == nil {
				return // screen finalized
			}
			select {
			case eventChan <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-eventChan:
			t.handleEvent(ev)
			if t.quit {
				return nil
			}
		case <-ticker.C:
			if _, stats := t.stage.Tick(cfg.Terminal.FrameInterval); stats.Bursts > 0 {
				t.Sound.PlayBurst(stats.Phrases > 0)
			}
			t.draw()
		}
	}
}

func (t *Terminal) handleEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		t.handleKey(ev)
	case *tcell.EventMouse:
		t.handleMouse(ev)
	case *tcell.EventResize:
		t.screen.Sync()
		t.resize()
	}
}

func (t *Terminal) handleKey(ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		t.quit = true
		return
	case tcell.KeyEnter:
		t.launch(t.pointer())
		return
	case tcell.KeyRune:
	default:
		return
	}

	switch ev.Rune() {
	case 'q':
		t.quit = true
	case 'p', ' ':
		t.stage.Paused = !t.stage.Paused
	case 'f':
		t.stage.Scheduler.TriggerFeature()
	}
}

func (t *Terminal) handleMouse(ev *tcell.EventMouse) {
	col, row := ev.Position()
	t.pointerX = (float64(col) + 0.5) * float64(cfg.Terminal.CellWidth)
	t.pointerY = (float64(row) + 0.5) * float64(cfg.Terminal.CellHeight)
	t.pointerSeen = true

	pressed := ev.Buttons()&tcell.Button1 != 0
	if pressed && t.buttons&tcell.Button1 == 0 {
		t.launch(t.pointerX)
	}
	t.buttons = ev.Buttons()
}

func (t *Terminal) launch(x float64) {
	if t.stage.Paused {
		return
	}
	t.stage.Scheduler.LaunchAt(t.stage.State, x)
}

// pointer returns the pointer x, or the surface center before any mouse event
func (t *Terminal) pointer() float64 {
	if !t.pointerSeen {
		return t.stage.State.Width / 2
	}
	return t.pointerX
}

// resize keeps one status row free below the raster
func (t *Terminal) resize() {
	cols, rows := t.screen.Size()
	t.raster.Resize(cols, max(rows-1, 0))
	t.stage.State.Resize(t.raster.Virtual())
}

func (t *Terminal) draw() {
	st := t.stage.State
	px, py := st.Width/2, st.Height/2
	if t.pointerSeen {
		px, py = t.pointerX, t.pointerY
	}

	cam := t.stage.Camera(cfg.Camera, px, py)
	proj := sim.NewProjector(cfg.Camera, cam, st.Width, st.Height)
	t.list = proj.AppendRenderList(t.list, st)

	t.raster.Fade(float64(cfg.Render.TrailColor.A) / 255)
	for i := range t.list {
		t.raster.Add(&t.list[i], cfg.Render.ShellRadius, cfg.Render.ShellCoreLight)
	}

	bg := tcell.NewRGBColor(int32(cfg.Render.Background.R), int32(cfg.Render.Background.G), int32(cfg.Render.Background.B))
	cols, rows := t.raster.Size()
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			ch, c := t.raster.Cell(col, row, t.ramp)
			style := tcell.StyleDefault.Background(bg).
				Foreground(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B)))
			t.screen.SetContent(col, row, ch, nil, style)
		}
	}
	t.drawStatus(rows, cols)
	t.screen.Show()
}

func (t *Terminal) drawStatus(row, cols int) {
	sc := cfg.Terminal.StatusColor
	style := tcell.StyleDefault.Foreground(tcell.NewRGBColor(int32(sc.R), int32(sc.G), int32(sc.B)))

	state := ""
	if t.stage.Paused {
		state = "  PAUSED"
	}
	line := fmt.Sprintf(" next: %s  shells %d  particles %d%s   click/enter: launch  f: feature  p: pause  q: quit",
		t.stage.Scheduler.NextPhrase(), len(t.stage.State.Shells), len(t.stage.State.Particles), state)

	runes := []rune(line)
	for col := 0; col < cols; col++ {
		ch := ' '
		if col < len(runes) {
			ch = runes[col]
		}
		t.screen.SetContent(col, row, ch, nil, style)
	}
}
