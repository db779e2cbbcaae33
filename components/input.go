package components

import (
	cfg "github.com/automoto/laser-defender/config"
	"github.com/yohamta/donburi"
)

// InputMethod represents the type of input device being used
type InputMethod int

const (
	InputKeyboard InputMethod = iota
	InputXbox
	InputPlayStation
)

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this frame
	JustReleased bool // Released this frame
}

// InputData stores the current and previous frame's pressed state for all
// actions plus the smoothed movement axes.
// JustPressed/JustReleased are computed on-demand by comparing frames.
type InputData struct {
	Current         [cfg.ActionCount]bool // Current frame's Pressed state
	Previous        [cfg.ActionCount]bool // Previous frame's Pressed state
	Horizontal      float64               // -1 (left) .. 1 (right)
	Vertical        float64               // -1 (down) .. 1 (up)
	LastInputMethod InputMethod           // Most recently used input method

	// Keyboard-only smoothed axes, kept apart from the stick so releasing
	// the stick does not reset the keyboard ramp.
	KeyHorizontal float64
	KeyVertical   float64
}

var Input = donburi.NewComponentType[InputData]()
