package systems

import (
	"image/color"
	"math"

	"github.com/automoto/fireworks/assets"
	"github.com/automoto/fireworks/components"
	cfg "github.com/automoto/fireworks/config"
	"github.com/automoto/fireworks/sim"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

var (
	// canvas persists between frames; each frame fades it toward the
	// background instead of clearing, which leaves the motion trails
	canvas *ebiten.Image

	spriteOp  = &ebiten.DrawImageOptions{}
	presentOp = &ebiten.DrawImageOptions{}
)

// DrawFireworks composites the render list onto the trail canvas and
// presents it with the screen shake offset.
func DrawFireworks(ecs *ecs.ECS, screen *ebiten.Image) {
	stageEntry, ok := components.Stage.First(ecs.World)
	if !ok {
		return
	}
	data := components.Stage.Get(stageEntry)

	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return // No camera yet
	}
	camera := components.Camera.Get(cameraEntry)

	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	ensureCanvas(width, height)

	vector.FillRect(canvas, 0, 0, float32(width), float32(height), cfg.Render.TrailColor, false)

	st := data.Stage.State
	proj := sim.NewProjector(cfg.Camera, camera.View, st.Width, st.Height)
	data.RenderList = proj.AppendRenderList(data.RenderList, st)
	for i := range data.RenderList {
		drawItem(canvas, &data.RenderList[i])
	}

	screen.Fill(cfg.Render.Background)
	presentOp.GeoM.Reset()
	presentOp.GeoM.Translate(camera.Offset.X, camera.Offset.Y)
	screen.DrawImage(canvas, presentOp)
}

func drawItem(dst *ebiten.Image, it *sim.RenderItem) {
	dotSprite := assets.GetSprite(assets.SpriteDot)
	switch it.Kind {
	case sim.ItemShell:
		core := cfg.Render.ShellRadius * it.Scale
		drawSprite(dst, assets.GetSprite(assets.SpriteGlow), it.X, it.Y, core+cfg.Render.ShellBlur, sim.HueColor(it.Hue, cfg.Render.ShellGlowLight), it.Alpha)
		drawSprite(dst, dotSprite, it.X, it.Y, core, sim.HueColor(it.Hue, cfg.Render.ShellCoreLight), it.Alpha)
	case sim.ItemSpark:
		r := math.Max(cfg.Render.MinSparkRadius, it.Size*it.Scale)
		drawSprite(dst, dotSprite, it.X, it.Y, r, it.Color, it.Alpha)
	case sim.ItemGlyph:
		// Glyph particles are round dots sized by diameter
		d := math.Max(cfg.Render.MinGlyphSize, it.Size*it.Scale)
		drawSprite(dst, dotSprite, it.X, it.Y, d/2, it.Color, it.Alpha)
	}
}

// drawSprite draws a square sprite centered on (x, y) spanning 2*radius,
// tinted by c and added onto dst.
func drawSprite(dst, sprite *ebiten.Image, x, y, radius float64, c color.RGBA, alpha float64) {
	if radius <= 0 || alpha <= 0 {
		return
	}
	size := float64(sprite.Bounds().Dx())
	s := 2 * radius / size

	spriteOp.GeoM.Reset()
	spriteOp.GeoM.Translate(-size/2, -size/2)
	spriteOp.GeoM.Scale(s, s)
	spriteOp.GeoM.Translate(x, y)
	spriteOp.ColorScale.Reset()
	spriteOp.ColorScale.ScaleWithColor(c)
	spriteOp.ColorScale.ScaleAlpha(float32(alpha))
	spriteOp.Blend = ebiten.BlendLighter
	spriteOp.Filter = ebiten.FilterLinear
	dst.DrawImage(sprite, spriteOp)
}

// ensureCanvas (re)allocates the trail canvas when the surface size changes
func ensureCanvas(width, height int) {
	if canvas != nil {
		b := canvas.Bounds()
		if b.Dx() == width && b.Dy() == height {
			return
		}
		canvas.Deallocate()
	}
	canvas = ebiten.NewImage(width, height)
	canvas.Fill(cfg.Render.Background)
}
