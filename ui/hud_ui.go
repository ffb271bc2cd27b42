package ui

import (
	"bytes"
	"fmt"
	"image/color"
	"log"

	cfg "github.com/automoto/fireworks/config"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// HUDStatus is what the overlay shows each frame
type HUDStatus struct {
	NextPhrase string
	LastPhrase string
	Shells     int
	Particles  int
	Bursts     int
	Paused     bool
}

// HUDUI is the corner panel with the upcoming phrase, counts and key hints
type HUDUI struct {
	UI *ebitenui.UI

	phraseLabel *widget.Label
	countLabel  *widget.Label
	stateLabel  *widget.Label

	titleFace text.Face
	bodyFace  text.Face

	last HUDStatus
}

func NewHUDUI() *HUDUI {
	hud := &HUDUI{}
	hud.loadFonts()
	hud.buildUI()
	return hud
}

func (hud *HUDUI) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		log.Fatalf("failed to load HUD font: %v", err)
	}

	hud.titleFace = &text.GoTextFace{Source: fontSource, Size: cfg.HUD.TitleSize}
	hud.bodyFace = &text.GoTextFace{Source: fontSource, Size: cfg.HUD.BodySize}
}

func (hud *HUDUI) buildUI() {
	// Transparent root so the fireworks show through
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(cfg.HUD.Background)),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(cfg.HUD.Padding)),
			widget.RowLayoutOpts.Spacing(cfg.HUD.Spacing),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionStart,
				VerticalPosition:   widget.AnchorLayoutPositionStart,
			}),
		),
	)

	panel.AddChild(widget.NewLabel(
		widget.LabelOpts.Text(cfg.C.Title, &hud.titleFace, &widget.LabelColor{
			Idle: cfg.HUD.TitleColor,
		}),
	))

	hud.phraseLabel = hud.bodyLabel("", cfg.HUD.TextColor)
	panel.AddChild(hud.phraseLabel)

	hud.countLabel = hud.bodyLabel("", cfg.HUD.TextColor)
	panel.AddChild(hud.countLabel)

	hud.stateLabel = hud.bodyLabel("", cfg.HUD.TitleColor)
	panel.AddChild(hud.stateLabel)

	panel.AddChild(hud.bodyLabel(cfg.HUD.Hints, cfg.HUD.HintColor))

	rootContainer.AddChild(panel)

	hud.UI = &ebitenui.UI{Container: rootContainer}
}

func (hud *HUDUI) bodyLabel(s string, c color.Color) *widget.Label {
	return widget.NewLabel(
		widget.LabelOpts.Text(s, &hud.bodyFace, &widget.LabelColor{Idle: c}),
	)
}

// Refresh rewrites the labels when the status changed since the last frame
func (hud *HUDUI) Refresh(s HUDStatus) {
	if s == hud.last && hud.phraseLabel.Label != "" {
		return
	}
	hud.last = s

	hud.phraseLabel.Label = fmt.Sprintf("next: %s", s.NextPhrase)
	if s.LastPhrase != "" {
		hud.phraseLabel.Label += fmt.Sprintf("   last: %s", s.LastPhrase)
	}
	hud.countLabel.Label = fmt.Sprintf("shells %d   particles %d   bursts %d", s.Shells, s.Particles, s.Bursts)
	hud.stateLabel.Label = ""
	if s.Paused {
		hud.stateLabel.Label = "paused"
	}
}

func (hud *HUDUI) Update() {
	hud.UI.Update()
}

func (hud *HUDUI) Draw(screen *ebiten.Image) {
	hud.UI.Draw(screen)
}
