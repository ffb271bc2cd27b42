package systems

import (
	"fmt"

	"github.com/automoto/fireworks/components"
	cfg "github.com/automoto/fireworks/config"
	"github.com/automoto/fireworks/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

var debugLines []string

func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	settings := GetOrCreateSettings(ecs)
	if !settings.Debug {
		return
	}

	stageEntry, ok := components.Stage.First(ecs.World)
	if !ok {
		return
	}
	data := components.Stage.Get(stageEntry)
	st := data.Stage.State

	var view string
	if cameraEntry, ok := components.Camera.First(ecs.World); ok {
		c := components.Camera.Get(cameraEntry)
		view = fmt.Sprintf("yaw %+.3f  pitch %+.3f  drift %+.3f", c.View.Yaw, c.View.Pitch, data.Stage.Drift.Value())
	}

	debugLines = append(debugLines[:0],
		fmt.Sprintf("TPS %.1f  FPS %.1f", ebiten.ActualTPS(), ebiten.ActualFPS()),
		fmt.Sprintf("shells %d  particles %d / %d", len(st.Shells), len(st.Particles), st.Config().MaxParticles),
		fmt.Sprintf("drawn %d  bursts %d  frame +%d -%d", len(data.RenderList), data.Bursts, data.LastStats.Spawned, data.LastStats.Expired),
		view,
		fmt.Sprintf("next %q  seed %d", data.Stage.Scheduler.NextPhrase(), cfg.Debug.Seed),
	)

	face := fonts.Debug.Get()
	lineHeight := face.Metrics().Height.Ceil()
	width := screen.Bounds().Dx()
	boxW := float32(360)
	boxH := float32(lineHeight*len(debugLines) + 8)
	boxX := float32(width) - boxW - 8

	vector.FillRect(screen, boxX, 8, boxW, boxH, cfg.PanelColor, false)
	for i, line := range debugLines {
		text.Draw(screen, line, face, int(boxX)+6, 8+4+lineHeight*(i+1)-4, cfg.LightBlue)
	}
}
