package config

import (
	"image/color"

	"github.com/yohamta/donburi/ecs"
)

// Default is the render layer all drawing systems register on.
const Default = ecs.LayerDefault

// Config holds general game configuration
type Config struct {
	Width    int
	Height   int
	Title    string
	TileSize int
}

// MovementConfig contains tile movement configuration values
type MovementConfig struct {
	StepDuration    float64 // ms to cross one tile while walking
	RunStepDuration float64 // ms to cross one tile while running
	WaypointEpsilon float64 // px distance at which a waypoint counts as reached
	CoalesceWindow  int64   // ms window for merging rapid step commands
}

// CameraConfig contains camera follow configuration
type CameraConfig struct {
	FollowSmoothing float64
}

// ChatConfig contains chat panel configuration
type ChatConfig struct {
	MaxMessages int
	DefaultName string
	PanelWidth  int
}

// AudioConfig contains voice playback configuration values
type AudioConfig struct {
	SampleRate       int
	DefaultVoiceVol  float64
	PlaybackRetries  int // attempts before giving up on a clip
	RetryBackoffTick int // ticks added per failed attempt
}

// WorldConfig contains terrain grid configuration
type WorldConfig struct {
	DefaultWidth  int
	DefaultHeight int
	GrassVariants int
	Seed          int64
	MapPath       string // offline TMX world, optional
}

// NetConfig contains the server connection defaults
type NetConfig struct {
	Address string
	Version string
}

// MenuConfig contains main menu layout and colors
type MenuConfig struct {
	BackgroundColor   color.RGBA
	TitleColor        color.RGBA
	TextColorNormal   color.RGBA
	TextColorSelected color.RGBA
	TitleY            float64
	MenuStartY        float64
	MenuItemHeight    float64
	MenuItemGap       float64
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	SkipMenu bool // Skip menu and go directly to the world
	Overlay  bool // Start with the debug overlay visible
}

// Global configuration instances
var C *Config
var Movement MovementConfig
var Camera CameraConfig
var Chat ChatConfig
var Audio AudioConfig
var World WorldConfig
var Net NetConfig
var Menu MenuConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Green        = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255} // Selected menu items
	DarkBlue     = color.RGBA{R: 60, G: 100, B: 160, A: 255}  // Unselected menu items
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

func init() {
	C = &Config{
		Width:    960,
		Height:   540,
		Title:    "Sablewood",
		TileSize: 32,
	}

	Movement = MovementConfig{
		StepDuration:    360,
		RunStepDuration: 180,
		WaypointEpsilon: 1.0,
		CoalesceWindow:  80,
	}

	Camera = CameraConfig{
		FollowSmoothing: 0.08,
	}

	Chat = ChatConfig{
		MaxMessages: 120,
		DefaultName: "wanderer",
		PanelWidth:  300,
	}

	Audio = AudioConfig{
		SampleRate:       44100,
		DefaultVoiceVol:  1.0,
		PlaybackRetries:  3,
		RetryBackoffTick: 30,
	}

	Net = NetConfig{
		Address: "localhost:7373",
		Version: "0.1.0",
	}

	Menu = MenuConfig{
		BackgroundColor:   color.RGBA{R: 18, G: 24, B: 18, A: 255},
		TitleColor:        Yellow,
		TextColorNormal:   DarkBlue,
		TextColorSelected: LightBlue,
		TitleY:            140,
		MenuStartY:        240,
		MenuItemHeight:    28,
		MenuItemGap:       10,
	}

	World = WorldConfig{
		DefaultWidth:  48,
		DefaultHeight: 36,
		GrassVariants: 4,
		Seed:          1337,
		MapPath:       "assets/maps/meadow.tmx",
	}
}
