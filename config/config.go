package config

import (
	"image/color"

	"github.com/yohamta/donburi/ecs"
)

// Default is the only render layer used by the game scenes.
const Default ecs.LayerID = 0

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
	Title  string
}

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	// Movement
	MovementSpeed   float64 // world units per second at full axis deflection
	BoundaryPadding float64 // world units kept between the ship and the view edges

	// Combat
	LaserSpeed float64 // world units per second, straight up

	// Spawn point in viewport coordinates (0,0 bottom-left, 1,1 top-right)
	StartViewportX float64
	StartViewportY float64

	// Dimensions (world units)
	Width  float64
	Height float64

	Color color.RGBA
}

// LaserConfig contains laser projectile configuration
type LaserConfig struct {
	Width  float64 // world units
	Height float64 // world units
	Color  color.RGBA
	Glow   color.RGBA
}

// CameraConfig contains the orthographic camera setup
type CameraConfig struct {
	OrthographicSize float64 // half of the visible height, in world units
	PositionX        float64
	PositionY        float64
}

// AxisConfig controls how digital inputs are turned into smooth analog axes
type AxisConfig struct {
	Sensitivity    float64 // units/second the axis moves toward its target
	Gravity        float64 // units/second the axis falls back to zero when released
	Snap           bool    // jump to zero when the opposite direction is pressed
	AnalogDeadzone float64 // stick values below this are ignored
}

// SpaceConfig contains collision space configuration
type SpaceConfig struct {
	Margin     int // pixels of off-screen space tracked around the view
	CellSize   int
	ShredDepth int // thickness in pixels of the shredder zones around the view
}

// MuzzleFlashConfig contains the muzzle flash effect configuration
type MuzzleFlashConfig struct {
	Duration float32 // seconds
	Size     float64 // world units
	Color    color.RGBA
}

// PauseConfig contains pause menu configuration values
type PauseConfig struct {
	OverlayColor      color.RGBA
	TextColorNormal   color.RGBA
	TextColorSelected color.RGBA
	MenuItemHeight    float64
	MenuItemGap       float64
	MenuOptions       []string
}

// MenuConfig contains title screen configuration values
type MenuConfig struct {
	BackgroundColor color.RGBA
	TitleColor      color.RGBA
	TextColor       color.RGBA
	TitleY          float64
	PromptY         float64
	BlinkFrames     int
}

// HUDConfig contains heads-up display configuration
type HUDConfig struct {
	Margin    float64
	TextColor color.RGBA
}

// StarfieldConfig contains background starfield configuration
type StarfieldConfig struct {
	Count int
	Seed  int64
	Speed float64 // world units per second, downwards
	Color color.RGBA
}

// AudioConfig contains audio configuration
type AudioConfig struct {
	SampleRate   int
	SFXVolume    float64
	LaserBlipMs  int
	LaserStartHz float64
	LaserEndHz   float64
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	SkipMenu    bool // Skip menu and go directly to game
	ShowOverlay bool // Start with the debug overlay enabled
}

// Global configuration instances
var C *Config
var Player PlayerConfig
var Laser LaserConfig
var Camera CameraConfig
var Axis AxisConfig
var Space SpaceConfig
var MuzzleFlash MuzzleFlashConfig
var Pause PauseConfig
var Menu MenuConfig
var HUD HUDConfig
var Starfield StarfieldConfig
var Audio AudioConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	LightRed     = color.RGBA{R: 255, G: 60, B: 60, A: 255}
	Green        = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	Cyan         = color.RGBA{R: 0, G: 255, B: 255, A: 255}
	Grey         = color.RGBA{R: 100, G: 100, B: 100, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255} // Selected menu items
	DarkBlue     = color.RGBA{R: 60, G: 100, B: 160, A: 255}  // Unselected menu items
	SpaceBlack   = color.RGBA{R: 6, G: 6, B: 20, A: 255}
)

func init() {
	C = &Config{
		Width:  640,
		Height: 360,
		Title:  "Laser Defender",
	}

	Player = PlayerConfig{
		MovementSpeed:   10.0,
		BoundaryPadding: 0.5,
		LaserSpeed:      20.0,
		StartViewportX:  0.5,
		StartViewportY:  0.15,
		Width:           0.8,
		Height:          0.8,
		Color:           LightBlue,
	}

	Laser = LaserConfig{
		Width:  0.08,
		Height: 0.4,
		Color:  LightRed,
		Glow:   color.RGBA{R: 255, G: 160, B: 160, A: 255},
	}

	Camera = CameraConfig{
		OrthographicSize: 5.0,
		PositionX:        0,
		PositionY:        0,
	}

	// Same defaults as a stock keyboard axis
	Axis = AxisConfig{
		Sensitivity:    3.0,
		Gravity:        3.0,
		Snap:           true,
		AnalogDeadzone: 0.19,
	}

	Space = SpaceConfig{
		Margin:     64,
		CellSize:   16,
		ShredDepth: 32,
	}

	MuzzleFlash = MuzzleFlashConfig{
		Duration: 0.12,
		Size:     0.35,
		Color:    color.RGBA{R: 255, G: 220, B: 120, A: 255},
	}

	Pause = PauseConfig{
		OverlayColor:      BlackOverlay,
		TextColorNormal:   DarkBlue,
		TextColorSelected: LightBlue,
		MenuItemHeight:    24,
		MenuItemGap:       8,
		MenuOptions:       []string{"Resume", "Quit to Title"},
	}

	Menu = MenuConfig{
		BackgroundColor: SpaceBlack,
		TitleColor:      LightRed,
		TextColor:       White,
		TitleY:          140,
		PromptY:         220,
		BlinkFrames:     30,
	}

	HUD = HUDConfig{
		Margin:    10,
		TextColor: White,
	}

	Starfield = StarfieldConfig{
		Count: 80,
		Seed:  7,
		Speed: 1.5,
		Color: color.RGBA{R: 180, G: 180, B: 220, A: 255},
	}

	Audio = AudioConfig{
		SampleRate:   44100,
		SFXVolume:    0.4,
		LaserBlipMs:  90,
		LaserStartHz: 1400,
		LaserEndHz:   300,
	}
}
