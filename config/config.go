package config

import (
	"image/color"

	"github.com/automoto/fpscontroller/controller"
	"github.com/yohamta/donburi/ecs"
)

// Default is the only render layer the sandbox uses.
const Default ecs.LayerID = 0

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
	TPS    int
	Title  string
}

// PlayerConfig contains the controller tuning and the collision body around it
type PlayerConfig struct {
	Controller controller.Settings

	// Collision body, metres
	Radius          float64
	StandingHeight  float64 // Standing shape height
	CrouchingHeight float64 // Crouching shape height
}

// PhysicsConfig contains the collision space configuration
type PhysicsConfig struct {
	CellSize float64 // Broad-phase cell edge, metres
}

// PointerConfig contains look input configuration
type PointerConfig struct {
	StickLookSpeed float64 // Pointer units per tick at full right-stick deflection
	InvertY        bool
}

// OverlayConfig contains the "pointer released" overlay configuration
type OverlayConfig struct {
	FadeSeconds float32
	MaxAlpha    float32
	Color       color.RGBA
	Hint        string
}

// MapConfig contains the top-down view configuration
type MapConfig struct {
	Margin          float64
	BackgroundColor color.RGBA
	FloorColor      color.RGBA
	WallColor       color.RGBA
	LowWallColor    color.RGBA // Solids the player can stand on or crouch under
	OverheadColor   color.RGBA
	PlayerColor     color.RGBA
	LookColor       color.RGBA
	ArrowLength     float64 // metres
}

// HUDConfig contains the text readout configuration
type HUDConfig struct {
	Margin     int
	LineHeight int
	TextColor  color.RGBA
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	Enabled bool // Draw collision footprints
}

// Global configuration instances
var C *Config
var Player PlayerConfig
var Physics PhysicsConfig
var Pointer PointerConfig
var Overlay OverlayConfig
var Map MapConfig
var HUD HUDConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White     = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow    = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Orange    = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	LightBlue = color.RGBA{R: 100, G: 180, B: 255, A: 255}
)

func init() {
	C = &Config{
		Width:  960,
		Height: 540,
		TPS:    60,
		Title:  "fpscontroller sandbox",
	}

	Player = PlayerConfig{
		Controller:      controller.DefaultSettings(),
		Radius:          0.35,
		StandingHeight:  1.9,
		CrouchingHeight: 1.4,
	}

	Physics = PhysicsConfig{
		CellSize: 0.5,
	}

	Pointer = PointerConfig{
		StickLookSpeed: 12,
	}

	Overlay = OverlayConfig{
		FadeSeconds: 0.25,
		MaxAlpha:    0.7,
		Color:       color.RGBA{R: 10, G: 10, B: 20, A: 255},
		Hint:        "Pointer released - press Esc or Resume to capture",
	}

	Map = MapConfig{
		Margin:          24,
		BackgroundColor: color.RGBA{R: 16, G: 16, B: 24, A: 255},
		FloorColor:      color.RGBA{R: 36, G: 40, B: 52, A: 255},
		WallColor:       color.RGBA{R: 120, G: 120, B: 130, A: 255},
		LowWallColor:    color.RGBA{R: 90, G: 110, B: 90, A: 255},
		OverheadColor:   color.RGBA{R: 90, G: 80, B: 120, A: 160},
		PlayerColor:     LightBlue,
		LookColor:       Orange,
		ArrowLength:     1.2,
	}

	HUD = HUDConfig{
		Margin:     10,
		LineHeight: 16,
		TextColor:  White,
	}

	Debug = DebugConfig{
		Enabled: false,
	}
}
