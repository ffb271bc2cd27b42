package fonts

import (
	"testing"

	"golang.org/x/image/font/gofont/gobold"
)

func TestLoadFontWithSize(t *testing.T) {
	if err := LoadFontWithSize(Glyph, gobold.TTF, 24); err != nil {
		t.Fatalf("load: %v", err)
	}
	if Glyph.Get() == nil {
		t.Fatal("nil face")
	}
	if tt, ok := Glyph.TrueType(); !ok || tt == nil {
		t.Fatal("parsed font not kept")
	}
}

func TestLoadFontRejectsGarbage(t *testing.T) {
	if err := LoadFont("broken", []byte("not a font")); err == nil {
		t.Fatal("expected parse error")
	}
	if _, ok := FontName("broken").TrueType(); ok {
		t.Fatal("broken font registered")
	}
}

func TestGetMissingFontPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for unknown font")
		}
	}()
	FontName("missing").Get()
}
