package assets

import (
	"fmt"

	"github.com/automoto/fireworks/config"
	"github.com/hajimehoshi/ebiten/v2"
)

// Sprite names
const (
	SpriteDot  = "dot"
	SpriteGlow = "glow"
)

// SpriteLoader builds procedural sprites on first use and caches them
type SpriteLoader struct {
	cache map[string]*ebiten.Image
}

func NewSpriteLoader() *SpriteLoader {
	return &SpriteLoader{
		cache: make(map[string]*ebiten.Image),
	}
}

func (l *SpriteLoader) MustLoadSprite(name string) *ebiten.Image {
	if img, ok := l.cache[name]; ok {
		return img
	}

	var img *ebiten.Image
	switch name {
	case SpriteDot:
		img = ebiten.NewImageFromImage(RadialSprite(config.Render.DotRadius, DotFalloff))
	case SpriteGlow:
		img = ebiten.NewImageFromImage(RadialSprite(config.Render.GlowRadius, GlowFalloff))
	default:
		panic(fmt.Sprintf("Unknown sprite %s", name))
	}

	l.cache[name] = img
	return img
}

var spriteLoader = NewSpriteLoader()

func GetSprite(name string) *ebiten.Image {
	return spriteLoader.MustLoadSprite(name)
}

// PreloadSprites uploads every sprite before the first frame draws
func PreloadSprites() {
	for _, name := range []string{SpriteDot, SpriteGlow} {
		_ = GetSprite(name)
	}
}
