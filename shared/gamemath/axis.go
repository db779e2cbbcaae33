package gamemath

import stdmath "math"

// AxisParams controls digital axis smoothing.
type AxisParams struct {
	Sensitivity float64 // units/second toward the pressed direction
	Gravity     float64 // units/second back to zero when nothing is pressed
	Snap        bool    // reset to zero first when the direction reverses
}

// DigitalTarget turns two opposing buttons into -1, 0 or 1.
func DigitalTarget(negative, positive bool) float64 {
	switch {
	case positive && !negative:
		return 1
	case negative && !positive:
		return -1
	}
	return 0
}

// StepAxis moves a smoothed axis value one frame toward target.
// The result is always within [-1, 1].
func StepAxis(value, target, dt float64, p AxisParams) float64 {
	if dt <= 0 {
		return Clamp(value, -1, 1)
	}

	if target == 0 {
		step := p.Gravity * dt
		if stdmath.Abs(value) <= step {
			return 0
		}
		if value > 0 {
			return Clamp(value-step, -1, 1)
		}
		return Clamp(value+step, -1, 1)
	}

	if p.Snap && value != 0 && (value > 0) != (target > 0) {
		value = 0
	}

	step := p.Sensitivity * dt
	if target > value {
		value = stdmath.Min(value+step, target)
	} else {
		value = stdmath.Max(value-step, target)
	}
	return Clamp(value, -1, 1)
}

// ApplyDeadzone zeroes analog values inside the deadzone and rescales the
// rest so the output still spans [-1, 1].
func ApplyDeadzone(v, deadzone float64) float64 {
	if deadzone >= 1 {
		return 0
	}
	a := stdmath.Abs(v)
	if a <= deadzone {
		return 0
	}
	scaled := (a - deadzone) / (1 - deadzone)
	if scaled > 1 {
		scaled = 1
	}
	return stdmath.Copysign(scaled, v)
}

// CombineAxes picks whichever input is deflected further, so a gamepad
// stick and the keyboard can be used interchangeably.
func CombineAxes(values ...float64) float64 {
	best := 0.0
	for _, v := range values {
		if stdmath.Abs(v) > stdmath.Abs(best) {
			best = v
		}
	}
	return Clamp(best, -1, 1)
}
