package config

import (
	"image/color"

	"github.com/yohamta/donburi/ecs"
)

// Render layers
const (
	Default ecs.LayerID = iota
	Overlay
)

// Config holds general game configuration
type Config struct {
	Title  string
	Width  int
	Height int
	TPS    int // fixed update rate; one menu tick per update
}

// LayoutConfig positions one screen's BaseMenu
type LayoutConfig struct {
	X         int // horizontal anchor the title and entries are centered on
	Y         int // title baseline
	Step      int // vertical distance between lines
	MaxOffset int // marker breathing distance for selectable entries
}

// WaveConfig holds the sine parameters for menu titles
type WaveConfig struct {
	Amplitude float64 // pixels
	Speed     float64 // radians per tick
	Shift     float64 // radians between neighbouring glyphs
}

// MenuConfig contains menu screen configuration values
type MenuConfig struct {
	BackgroundColor color.RGBA
	Wave            WaveConfig

	Main      LayoutConfig
	Audio     LayoutConfig
	GFX       LayoutConfig
	Credit    LayoutConfig
	HighScore LayoutConfig
	Controls  LayoutConfig
	Start     LayoutConfig

	FPSX int
	FPSY int
}

// FontConfig selects the glyph atlas source.
// An empty SheetPath bakes the atlas from the built-in TrueType font.
type FontConfig struct {
	SheetPath  string
	CellWidth  int
	CellHeight int
	BakeSize   float64 // point size used when baking
}

// TransitionConfig contains the screen fade configuration
type TransitionConfig struct {
	Duration float32 // seconds
	Color    color.RGBA
}

// DebugConfig contains debug options
type DebugConfig struct {
	ShowFPS bool
}

var C *Config
var Menu MenuConfig
var Font FontConfig
var Transition TransitionConfig
var Debug DebugConfig

// Credits lists the lines shown on the credits screen
var Credits []string

func init() {
	C = &Config{
		Title:  "Mini-Magnets",
		Width:  800,
		Height: 600,
		TPS:    60,
	}

	Menu = MenuConfig{
		BackgroundColor: color.RGBA{R: 0, G: 0, B: 0, A: 255},
		Wave: WaveConfig{
			Amplitude: 10,
			Speed:     0.1,
			Shift:     0.5,
		},
		Main:      LayoutConfig{X: 400, Y: 100, Step: 30, MaxOffset: 25},
		Audio:     LayoutConfig{X: 400, Y: 100, Step: 30, MaxOffset: 25},
		GFX:       LayoutConfig{X: 400, Y: 100, Step: 30, MaxOffset: 25},
		Credit:    LayoutConfig{X: 400, Y: 100, Step: 30, MaxOffset: 25},
		HighScore: LayoutConfig{X: 400, Y: 100, Step: 30, MaxOffset: 25},
		Controls:  LayoutConfig{X: 400, Y: 100, Step: 30, MaxOffset: 25},
		Start:     LayoutConfig{X: 400, Y: 100, Step: 30, MaxOffset: 25},
		FPSX:      0,
		FPSY:      575,
	}

	Font = FontConfig{
		SheetPath:  "",
		CellWidth:  24,
		CellHeight: 24,
		BakeSize:   20,
	}

	Transition = TransitionConfig{
		Duration: 0.25,
		Color:    color.RGBA{R: 0, G: 0, B: 0, A: 255},
	}

	Debug = DebugConfig{
		ShowFPS: true,
	}

	Credits = []string{
		"CODE: WILLI KAPPLER",
		"IDEA: WILLI KAPPLER",
		"LEVELS: WILLI KAPPLER",
		"GFX: WILLI KAPPLER",
		"SFX: WILLI KAPPLER",
		"MUSIC: WILLI KAPPLER",
	}
}
