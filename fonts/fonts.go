package fonts

import (
	"fmt"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
)

type FontName string

const (
	// Glyph is the bold face sampled by the glyph rasterizer
	Glyph FontName = "glyph"
	Debug FontName = "debug"
	Title FontName = "title"
)

func (f FontName) Get() font.Face {
	return getFont(f)
}

// TrueType returns the parsed font behind a loaded face
func (f FontName) TrueType() (*truetype.Font, bool) {
	tt, ok := sources[f]
	return tt, ok
}

var (
	fonts   = map[FontName]font.Face{}
	sources = map[FontName]*truetype.Font{}
)

func LoadFont(name FontName, ttf []byte) error {
	return LoadFontWithSize(name, ttf, 10)
}

func LoadFontWithSize(name FontName, ttf []byte, size float64) error {
	fontData, err := truetype.Parse(ttf)
	if err != nil {
		return fmt.Errorf("parse font %s: %w", name, err)
	}
	sources[name] = fontData
	fonts[name] = truetype.NewFace(fontData, &truetype.Options{Size: size})
	return nil
}

func getFont(name FontName) font.Face {
	f, ok := fonts[name]
	if !ok {
		panic(fmt.Sprintf("Font %s not found", name))
	}
	return f
}
