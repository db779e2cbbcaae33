package systems

import (
	"strings"

	"github.com/automoto/laser-defender/components"
	cfg "github.com/automoto/laser-defender/config"
	"github.com/automoto/laser-defender/shared/gamemath"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

// Cache controller types to avoid string allocation every frame
var controllerTypeCache = make(map[ebiten.GamepadID]components.InputMethod)

// UpdateInput polls raw input and updates the Input singleton.
// Must run BEFORE UpdatePlayer in the system order.
func UpdateInput(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)

	// Swap buffers: current becomes previous, then zero out current
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}

	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	var keyboardUsed, gamepadUsed bool
	var activeGamepadID ebiten.GamepadID

	for actionID, binding := range cfg.Input.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				input.Current[actionID] = true
				keyboardUsed = true
			}
		}

		for _, gpID := range gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					input.Current[actionID] = true
					gamepadUsed = true
					activeGamepadID = gpID
				}
			}
		}
	}

	stickH, stickV, stickGpID, stickUsed := getAnalogStickState(gamepadIDs)
	if stickUsed {
		gamepadUsed = true
		activeGamepadID = stickGpID
	}

	updateAxes(input, stickH, stickV, DeltaTime(ecs))

	// Update last input method - gamepad takes priority if both used
	if gamepadUsed {
		input.LastInputMethod = getControllerType(activeGamepadID)
	} else if keyboardUsed {
		input.LastInputMethod = components.InputKeyboard
	}
}

// updateAxes turns the digital move actions and the analog stick into the
// Horizontal and Vertical axes. Both axes stay within [-1, 1].
func updateAxes(input *components.InputData, stickH, stickV, dt float64) {
	params := gamemath.AxisParams{
		Sensitivity: cfg.Axis.Sensitivity,
		Gravity:     cfg.Axis.Gravity,
		Snap:        cfg.Axis.Snap,
	}

	targetH := gamemath.DigitalTarget(input.Current[cfg.ActionMoveLeft], input.Current[cfg.ActionMoveRight])
	targetV := gamemath.DigitalTarget(input.Current[cfg.ActionMoveDown], input.Current[cfg.ActionMoveUp])

	input.KeyHorizontal = gamemath.StepAxis(input.KeyHorizontal, targetH, dt, params)
	input.KeyVertical = gamemath.StepAxis(input.KeyVertical, targetV, dt, params)

	input.Horizontal = gamemath.CombineAxes(input.KeyHorizontal, stickH)
	input.Vertical = gamemath.CombineAxes(input.KeyVertical, stickV)
}

// getControllerType returns cached controller type, detecting on first access
func getControllerType(gpID ebiten.GamepadID) components.InputMethod {
	if method, ok := controllerTypeCache[gpID]; ok {
		return method
	}

	name := strings.ToLower(ebiten.GamepadName(gpID))
	var method components.InputMethod
	if strings.Contains(name, "ps4") || strings.Contains(name, "ps5") ||
		strings.Contains(name, "playstation") || strings.Contains(name, "dualshock") ||
		strings.Contains(name, "dualsense") {
		method = components.InputPlayStation
	} else {
		// Default gamepad to Xbox-style
		method = components.InputXbox
	}

	controllerTypeCache[gpID] = method
	return method
}

// getAnalogStickState reads the left stick of every gamepad and returns the
// most deflected values, deadzone applied. Vertical is flipped to y-up.
func getAnalogStickState(gamepads []ebiten.GamepadID) (h, v float64, activeGpID ebiten.GamepadID, used bool) {
	deadzone := cfg.Axis.AnalogDeadzone

	for _, gpID := range gamepads {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}

		horizontal := gamemath.ApplyDeadzone(
			ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickHorizontal), deadzone)
		vertical := -gamemath.ApplyDeadzone(
			ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickVertical), deadzone)

		if horizontal != 0 || vertical != 0 {
			h = gamemath.CombineAxes(h, horizontal)
			v = gamemath.CombineAxes(v, vertical)
			activeGpID = gpID
			used = true
		}
	}

	return
}

// getOrCreateInput returns the singleton Input component, creating if needed
func getOrCreateInput(ecs *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Input))
		// Zero-value InputData is correct (all bools false)
	}
	return components.Input.Get(entry)
}

// GetAction returns the full ActionState for an action ID.
// JustPressed/JustReleased are derived from current vs previous frame.
func GetAction(input *components.InputData, id cfg.ActionID) components.ActionState {
	curr := input.Current[id]
	prev := input.Previous[id]
	return components.ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}

// PrimeInput marks every action as already held, so buttons still down
// from the previous scene do not register as fresh presses.
func PrimeInput(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)
	for i := range input.Current {
		input.Current[i] = true
	}
}
