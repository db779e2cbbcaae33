package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ObjectData wraps the entity's collision object. Objects live in screen
// pixel space, offset by the space margin so off-screen areas are tracked.
type ObjectData struct {
	*resolv.Object
}

var Object = donburi.NewComponentType[ObjectData]()

// SpaceData is the collision space shared by every object in a scene.
type SpaceData struct {
	*resolv.Space
	Margin float64
}

var Space = donburi.NewComponentType[SpaceData]()
