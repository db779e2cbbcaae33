package systems

import (
	"github.com/automoto/laser-defender/components"
	cfg "github.com/automoto/laser-defender/config"
	"github.com/automoto/laser-defender/shared/gamemath"
	"github.com/automoto/laser-defender/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// UpdatePlayer fires and then moves every ship, once per frame.
func UpdatePlayer(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)
	dt := DeltaTime(ecs)

	components.Player.Each(ecs.World, func(playerEntry *donburi.Entry) {
		fire(ecs, input, playerEntry)
		move(input, playerEntry, dt)
	})
}

// fire spawns one laser per press of the fire button. Holding the button
// does not fire again until it is released and pressed anew.
func fire(ecs *ecs.ECS, input *components.InputData, playerEntry *donburi.Entry) {
	if !GetAction(input, cfg.ActionFire).JustPressed {
		return
	}

	factory.CreateLaser(ecs, playerEntry)
	factory.CreateMuzzleFlash(ecs, playerEntry)

	player := components.Player.Get(playerEntry)
	player.ShotsFired++
	recordShot(ecs)
	PlaySFX(ecs, components.SoundLaser)
}

// move applies the input axes and clamps the ship inside its bounds.
// Ships whose bounds are not computed yet stay where they are.
func move(input *components.InputData, playerEntry *donburi.Entry, dt float64) {
	player := components.Player.Get(playerEntry)
	if !player.BoundsReady {
		return
	}

	transform := components.Transform.Get(playerEntry)
	transform.Position = gamemath.MoveWithin(
		transform.Position,
		math.Vec2{X: input.Horizontal, Y: input.Vertical},
		dt,
		player.MovementSpeed,
		player.Bounds,
	)
}
