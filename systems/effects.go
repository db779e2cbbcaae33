package systems

import (
	"github.com/automoto/laser-defender/components"
	"github.com/automoto/laser-defender/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateEffects advances muzzle flashes and removes finished ones.
func UpdateEffects(ecs *ecs.ECS) {
	dt := float32(DeltaTime(ecs))
	var toRemove []*donburi.Entry

	components.MuzzleFlash.Each(ecs.World, func(e *donburi.Entry) {
		flash := components.MuzzleFlash.Get(e)
		alpha, finished := flash.Tween.Update(dt)
		flash.Alpha = alpha
		flash.Done = finished

		// Follow the ship so the flash stays on the nose while moving
		if flash.Owner != nil && flash.Owner.Valid() {
			owner := components.Transform.Get(flash.Owner).Position
			transform := components.Transform.Get(e)
			transform.Position.X = owner.X + flash.Offset.X
			transform.Position.Y = owner.Y + flash.Offset.Y
		}

		if finished {
			toRemove = append(toRemove, e)
		}
	})

	for _, e := range toRemove {
		ecs.World.Remove(e.Entity())
	}
}

// UpdateStars wraps background stars that drift below the view back to
// the top.
func UpdateStars(ecs *ecs.ECS) {
	cam, ok := factory.MainCamera(ecs.World)
	if !ok {
		return
	}
	view := cam.View()

	components.Star.Each(ecs.World, func(e *donburi.Entry) {
		transform := components.Transform.Get(e)
		if transform.Position.Y < view.MinY {
			transform.Position.Y += view.Height()
		}
	})
}
