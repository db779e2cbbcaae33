package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// TransformData is an entity's position in world units (y up).
type TransformData struct {
	Position math.Vec2
}

var Transform = donburi.NewComponentType[TransformData]()

// VelocityData moves an entity every frame, in world units per second.
type VelocityData struct {
	Velocity math.Vec2
}

var Velocity = donburi.NewComponentType[VelocityData]()
