package systems

import (
	"github.com/automoto/laser-defender/components"
	"github.com/automoto/laser-defender/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateVelocity moves every entity that has a velocity.
func UpdateVelocity(ecs *ecs.ECS) {
	dt := DeltaTime(ecs)
	components.Velocity.Each(ecs.World, func(e *donburi.Entry) {
		transform := components.Transform.Get(e)
		velocity := components.Velocity.Get(e)
		transform.Position = gamemath.Integrate(transform.Position, velocity.Velocity, dt)
	})
}
