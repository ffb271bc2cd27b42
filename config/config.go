package config

import (
	"image/color"
	"time"
)

// HSL is a palette entry. Only the hue drives burst color; saturation and
// lightness document the intended look of the entry.
type HSL struct {
	Name string
	H    float64 // degrees, 0-360
	S    float64 // 0.0-1.0
	L    float64 // 0.0-1.0
}

// LaunchRange describes where a shell starts and how it is thrown.
type LaunchRange struct {
	// Start height below the visible area, added to the surface height
	StartYOffset float64
	// Depth range of the launch point
	MinZ, MaxZ float64
	// Sideways drift of the launch velocity (x and z)
	MaxDrift float64
	// Upward speed range (negative = up)
	MinVelY, MaxVelY float64
	// Apex height range (shell bursts once it rises above this)
	MinTargetY, MaxTargetY float64
}

// FireworksConfig contains simulation tuning for shells, bursts and particles
type FireworksConfig struct {
	// Physics
	Gravity      float64
	Drag         float64 // per-tick velocity multiplier, must be < 1
	GlyphDamping float64 // extra per-tick multiplier for glyph particles

	// Scheduling
	AmbientInterval time.Duration
	FeatureInterval time.Duration
	MaxParticles    int // soft cap, ambient launches are skipped above it

	// Launches
	Ambient       LaunchRange
	AmbientSpread float64 // ambient x is drawn from +-width/AmbientSpread
	Feature       LaunchRange
	Manual        LaunchRange
	ManualSpread  float64 // click offset from center is multiplied by this

	// Bursts
	RingChance      float64
	SphereCount     int
	RingCount       int
	MinSpeed        float64
	MaxSpeed        float64
	RingBand        float64 // |cos(polar)| below this counts as equatorial
	RingBoost       float64
	RingDamp        float64
	SparkMinSize    float64
	SparkMaxSize    float64
	SparkMinDecay   float64
	SparkMaxDecay   float64
	GlyphVelScale   float64
	GlyphJitter     float64
	GlyphMinDecay   float64
	GlyphMaxDecay   float64
	GlyphMinSize    float64
	GlyphMaxSize    float64
	TwinkleChance   float64
	TwinkleMinSize  float64
	TwinkleMaxSize  float64
	RestingMinSize  float64
	RestingMaxSize  float64
	ParticleLight   float64 // HSL lightness of burst particles
	FloorMultiplier float64 // particles below height*FloorMultiplier are dropped

	Palette []HSL
	Phrases []string
}

// GlyphConfig contains the off-screen text raster settings
type GlyphConfig struct {
	SurfaceWidth  int
	SurfaceHeight int
	FontSize      float64
	MinFontSize   float64
	FitMargin     float64 // fraction of the surface width kept free when fitting text
	Stride        int
	Threshold     uint8 // coverage above this emits a point
	Magnification float64
	DepthJitter   float64
}

// CameraConfig contains projection and camera motion configuration
type CameraConfig struct {
	FOV                float64
	PushBack           float64 // depth offset so the origin projects near scale FOV/(FOV+PushBack)
	NearZ              float64 // rotated depth at or below this is culled before the divide
	PointerSensitivity float64 // radians per pixel of pointer offset from center
	BasePitch          float64
	DriftAmplitude     float64 // radians
	DriftPeriod        time.Duration

	// Screen shake on feature bursts
	ShakeIntensity float64 // pixels
	ShakeDuration  int     // frames
}

// RenderConfig contains compositor configuration
type RenderConfig struct {
	Background     color.RGBA
	TrailColor     color.NRGBA
	DotRadius      int // radius of the pre-rendered dot sprite in pixels
	GlowRadius     int // radius of the pre-rendered glow sprite in pixels
	MinSparkRadius float64
	MinGlyphSize   float64
	ShellRadius    float64
	ShellBlur      float64
	ShellCoreLight float64
	ShellGlowLight float64
}

// HUDConfig contains HUD overlay configuration
type HUDConfig struct {
	TitleSize  float64
	BodySize   float64
	Padding    int
	Spacing    int
	Background color.RGBA
	TitleColor color.RGBA
	TextColor  color.RGBA
	HintColor  color.RGBA
	Hints      string
}

// PauseConfig contains pause overlay configuration
type PauseConfig struct {
	OverlayColor color.RGBA
	TextColor    color.RGBA
	Label        string
}

// TerminalConfig contains terminal compositor configuration
type TerminalConfig struct {
	CellWidth     int // virtual pixels per terminal column
	CellHeight    int // virtual pixels per terminal row
	FrameInterval time.Duration
	Ramp          string // glyphs from dark to bright
	StatusColor   color.RGBA
}

// Config holds general stage configuration
type Config struct {
	Width  int
	Height int
	Title  string
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	Overlay bool // Start with the debug overlay visible
	Seed    uint64
}

// Global configuration instances
var C *Config
var Fireworks FireworksConfig
var Glyph GlyphConfig
var Camera CameraConfig
var Render RenderConfig
var HUD HUDConfig
var Terminal TerminalConfig
var Pause PauseConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White      = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	LightBlue  = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	NightBlue  = color.RGBA{R: 5, G: 5, B: 16, A: 255}
	PanelColor = color.RGBA{R: 10, G: 10, B: 24, A: 160}
	HintGrey   = color.RGBA{R: 150, G: 150, B: 170, A: 255}
)

func init() {
	C = &Config{
		Width:  1280,
		Height: 720,
		Title:  "Fireworks",
	}

	Fireworks = FireworksConfig{
		Gravity:      0.06,
		Drag:         0.96,
		GlyphDamping: 0.90,

		AmbientInterval: 300 * time.Millisecond,
		FeatureInterval: 4000 * time.Millisecond,
		MaxParticles:    20000,

		Ambient: LaunchRange{
			StartYOffset: 50,
			MinZ:         -400, MaxZ: 400,
			MaxDrift: 2,
			MinVelY:  -32, MaxVelY: -22,
			MinTargetY: -400, MaxTargetY: -100,
		},
		AmbientSpread: 1.5,
		Feature: LaunchRange{
			StartYOffset: 100,
			MinVelY:      -28, MaxVelY: -28,
			MinTargetY: -200, MaxTargetY: -200,
		},
		Manual: LaunchRange{
			MinZ: -200, MaxZ: 200,
			MaxDrift: 2,
			MinVelY:  -28, MaxVelY: -22,
			MinTargetY: -400, MaxTargetY: -200,
		},
		ManualSpread: 2.0,

		RingChance:      0.30,
		SphereCount:     500,
		RingCount:       300,
		MinSpeed:        5,
		MaxSpeed:        20,
		RingBand:        0.1,
		RingBoost:       2.5,
		RingDamp:        0.1,
		SparkMinSize:    2,
		SparkMaxSize:    5,
		SparkMinDecay:   0.015,
		SparkMaxDecay:   0.03,
		GlyphVelScale:   0.15,
		GlyphJitter:     1,
		GlyphMinDecay:   0.008,
		GlyphMaxDecay:   0.015, // legible for ~1.5-2s at 60 TPS
		GlyphMinSize:    2,
		GlyphMaxSize:    5,
		TwinkleChance:   0.05,
		TwinkleMinSize:  3,
		TwinkleMaxSize:  8,
		RestingMinSize:  2,
		RestingMaxSize:  4,
		ParticleLight:   0.70,
		FloorMultiplier: 2.0,

		Palette: []HSL{
			{Name: "Hot Pink", H: 320, S: 1, L: 0.60},
			{Name: "Cyan", H: 180, S: 1, L: 0.60},
			{Name: "Gold", H: 40, S: 1, L: 0.70},
			{Name: "Electric Purple", H: 270, S: 1, L: 0.65},
			{Name: "Neon Green", H: 100, S: 1, L: 0.60},
			{Name: "Red", H: 0, S: 1, L: 0.65},
		},
		// Every phrase must be drawable by the bundled glyph font (gobold, Latin only)
		Phrases: []string{"CHEERS", "HOORAY", "JOY", "SHINE", "DREAM", "BRAVO", "LUCKY", "WISH"},
	}

	Glyph = GlyphConfig{
		SurfaceWidth:  1000,
		SurfaceHeight: 300,
		FontSize:      160,
		MinFontSize:   24,
		FitMargin:     0.04,
		Stride:        2,
		Threshold:     128,
		Magnification: 2.0,
		DepthJitter:   15,
	}

	Camera = CameraConfig{
		FOV:                600,
		PushBack:           600,
		NearZ:              -500,
		PointerSensitivity: 0.0003,
		BasePitch:          -0.1,
		DriftAmplitude:     0.1,
		DriftPeriod:        31416 * time.Millisecond, // sin(t * 0.0002/ms)

		ShakeIntensity: 3,
		ShakeDuration:  18,
	}

	Render = RenderConfig{
		Background:     NightBlue,
		TrailColor:     color.NRGBA{R: 5, G: 5, B: 16, A: 51},
		DotRadius:      16,
		GlowRadius:     32,
		MinSparkRadius: 0.6,
		MinGlyphSize:   1,
		ShellRadius:    4,
		ShellBlur:      15,
		ShellCoreLight: 0.80,
		ShellGlowLight: 0.50,
	}

	HUD = HUDConfig{
		TitleSize:  18,
		BodySize:   12,
		Padding:    8,
		Spacing:    4,
		Background: PanelColor,
		TitleColor: White,
		TextColor:  LightBlue,
		HintColor:  HintGrey,
		Hints:      "click: launch  F: feature  P: pause  H: hud  F3: debug",
	}

	Pause = PauseConfig{
		OverlayColor: color.RGBA{R: 0, G: 0, B: 0, A: 120},
		TextColor:    White,
		Label:        "PAUSED",
	}

	Terminal = TerminalConfig{
		CellWidth:     8,
		CellHeight:    16,
		FrameInterval: 16 * time.Millisecond, // ~60 FPS
		Ramp:          " .:-=+*#%@",
		StatusColor:   HintGrey,
	}
}
