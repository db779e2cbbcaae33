package gamemath

import (
	stdmath "math"

	"github.com/yohamta/donburi/features/math"
)

// Clamp restricts v to [min, max]. NaN clamps to min.
func Clamp(v, min, max float64) float64 {
	if v < min || stdmath.IsNaN(v) {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// Bounds is an axis-aligned rectangle in world units (y up).
type Bounds struct {
	MinX, MaxX float64
	MinY, MaxY float64
}

// Clamp returns p moved to the nearest point inside the bounds.
func (b Bounds) Clamp(p math.Vec2) math.Vec2 {
	return math.Vec2{
		X: Clamp(p.X, b.MinX, b.MaxX),
		Y: Clamp(p.Y, b.MinY, b.MaxY),
	}
}

// Contains reports whether p lies inside the bounds, edges included.
func (b Bounds) Contains(p math.Vec2) bool {
	return p.X >= b.MinX && p.X <= b.MaxX && p.Y >= b.MinY && p.Y <= b.MaxY
}

// Width returns the horizontal extent of the bounds.
func (b Bounds) Width() float64 { return b.MaxX - b.MinX }

// Height returns the vertical extent of the bounds.
func (b Bounds) Height() float64 { return b.MaxY - b.MinY }

// MoveWithin advances pos by axis*dt*speed and clamps each coordinate
// into bounds. The result is inside bounds for any input magnitude.
func MoveWithin(pos, axis math.Vec2, dt, speed float64, bounds Bounds) math.Vec2 {
	next := math.Vec2{
		X: pos.X + axis.X*dt*speed,
		Y: pos.Y + axis.Y*dt*speed,
	}
	return bounds.Clamp(next)
}

// Integrate returns pos advanced by velocity over dt seconds.
func Integrate(pos, velocity math.Vec2, dt float64) math.Vec2 {
	return math.Vec2{
		X: pos.X + velocity.X*dt,
		Y: pos.Y + velocity.Y*dt,
	}
}
