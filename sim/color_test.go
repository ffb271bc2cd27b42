package sim

import (
	"image/color"
	"math"
	"testing"
)

func TestHueColor(t *testing.T) {
	tests := []struct {
		hue, light float64
		want       color.RGBA
	}{
		{0, 0.5, color.RGBA{R: 255, A: 255}},
		{120, 0.5, color.RGBA{G: 255, A: 255}},
		{480, 0.5, color.RGBA{G: 255, A: 255}},
		{-120, 0.5, color.RGBA{B: 255, A: 255}},
		{200, 1, color.RGBA{R: 255, G: 255, B: 255, A: 255}},
	}
	for _, tc := range tests {
		if got := HueColor(tc.hue, tc.light); got != tc.want {
			t.Errorf("HueColor(%v, %v) = %v, want %v", tc.hue, tc.light, got, tc.want)
		}
	}
}

func TestNormalizeHue(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0, 0},
		{360, 0},
		{-3600, 0},
		{725, 5},
		{-90, 270},
		{1e12, 280},
		{math.Inf(1), 0},
		{math.Inf(-1), 0},
		{math.NaN(), 0},
	}
	for _, tc := range tests {
		if got := normalizeHue(tc.in); got != tc.want {
			t.Errorf("normalizeHue(%v) = %v, want %v", tc.in, got, tc.want)
		}
	}
}
