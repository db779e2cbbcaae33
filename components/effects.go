package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// MuzzleFlashData is a short glow at the nose of the ship after firing.
// Alpha is driven by the tween and the effect follows its owner.
type MuzzleFlashData struct {
	Owner  *donburi.Entry
	Offset math.Vec2
	Tween  *gween.Tween
	Alpha  float32
	Done   bool
}

var MuzzleFlash = donburi.NewComponentType[MuzzleFlashData]()

// StarData is a background star drifting down the view.
type StarData struct {
	Depth float64 // 0..1, scales speed and brightness
}

var Star = donburi.NewComponentType[StarData]()
