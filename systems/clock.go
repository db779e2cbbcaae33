package systems

import (
	"github.com/automoto/laser-defender/components"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// UpdateClock records the fixed update step. Ebiten calls Update TPS times
// per second, so one update always covers 1/TPS seconds.
func UpdateClock(ecs *ecs.ECS) {
	clock := getOrCreateClock(ecs)
	clock.DeltaTime = 1.0 / float64(ebiten.TPS())
	clock.Frame++
}

// DeltaTime returns the duration of the current frame in seconds.
func DeltaTime(ecs *ecs.ECS) float64 {
	return getOrCreateClock(ecs).DeltaTime
}

func getOrCreateClock(ecs *ecs.ECS) *components.ClockData {
	entry, ok := components.Clock.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Clock))
	}
	return components.Clock.Get(entry)
}
