package scenes

import (
	"sync"

	"github.com/automoto/fireworks/archetypes"
	"github.com/automoto/fireworks/assets"
	"github.com/automoto/fireworks/components"
	cfg "github.com/automoto/fireworks/config"
	"github.com/automoto/fireworks/sim"
	"github.com/automoto/fireworks/sound"
	"github.com/automoto/fireworks/systems"
	"github.com/automoto/fireworks/systems/factory"
	"github.com/automoto/fireworks/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// StageScene is the fireworks show: the simulation, its compositor and the
// HUD overlay.
type StageScene struct {
	ecs   *ecs.ECS
	stage *sim.Stage
	sound *sound.SoundManager
	hud   *ui.HUDUI
	once  sync.Once

	width, height int
	quit          bool
}

// NewStageScene creates the scene around a prepared stage. snd may be nil.
func NewStageScene(stage *sim.Stage, snd *sound.SoundManager) *StageScene {
	return &StageScene{
		stage:  stage,
		sound:  snd,
		width:  cfg.C.Width,
		height: cfg.C.Height,
	}
}

func (s *StageScene) Update() {
	s.once.Do(s.configure)
	s.ecs.Update()

	if s.settings().ShowHUD {
		s.hud.Refresh(s.status())
		s.hud.Update()
	}

	if in, ok := components.Input.First(s.ecs.World); ok {
		if systems.GetAction(components.Input.Get(in), cfg.ActionQuit).JustPressed {
			s.quit = true
		}
	}
}

func (s *StageScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(cfg.Render.Background)

	if s.ecs == nil {
		return
	}
	s.ecs.DrawLayer(archetypes.LayerDefault, screen)
	if s.settings().ShowHUD {
		s.hud.Draw(screen)
	}
	s.ecs.DrawLayer(archetypes.LayerOverlay, screen)
}

// Resize records the layout size; the simulation picks it up next Update
func (s *StageScene) Resize(width, height int) {
	s.width, s.height = width, height
	if s.ecs != nil {
		systems.SetViewport(s.ecs, width, height)
	}
}

// Quit reports whether the user asked to leave
func (s *StageScene) Quit() bool {
	return s.quit
}

func (s *StageScene) configure() {
	// Upload sprites up front to avoid a hitch on the first burst
	assets.PreloadSprites()

	e := ecs.NewECS(donburi.NewWorld())

	// Systems that always run
	e.AddSystem(systems.UpdateInput)
	e.AddSystem(systems.UpdatePause)

	// UpdateStage checks pause itself so resizes still land while paused
	e.AddSystem(systems.UpdateStage)
	e.AddSystem(systems.UpdateCamera)

	// Add renderers
	e.AddRenderer(archetypes.LayerDefault, systems.DrawFireworks)
	e.AddRenderer(archetypes.LayerOverlay, systems.DrawPause)
	e.AddRenderer(archetypes.LayerOverlay, systems.DrawDebug)

	s.ecs = e

	factory.CreateStage(s.ecs, s.stage, s.sound, s.width, s.height)
	factory.CreateCamera(s.ecs)

	s.hud = ui.NewHUDUI()
}

func (s *StageScene) settings() *components.SettingsData {
	return systems.GetOrCreateSettings(s.ecs)
}

func (s *StageScene) status() ui.HUDStatus {
	entry, _ := components.Stage.First(s.ecs.World)
	data := components.Stage.Get(entry)
	return ui.HUDStatus{
		NextPhrase: s.stage.Scheduler.NextPhrase(),
		LastPhrase: data.LastPhrase,
		Shells:     len(s.stage.State.Shells),
		Particles:  len(s.stage.State.Particles),
		Bursts:     data.Bursts,
		Paused:     s.stage.Paused,
	}
}
