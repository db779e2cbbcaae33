package systems

import (
	"github.com/automoto/laser-defender/components"
	"github.com/automoto/laser-defender/logger"
	"github.com/automoto/laser-defender/shared/gamemath"
	"github.com/automoto/laser-defender/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateBoundaries computes each ship's movement bounds from the camera
// view, once. Later camera changes do not move the bounds.
func UpdateBoundaries(ecs *ecs.ECS) {
	cam, ok := factory.MainCamera(ecs.World)
	if !ok {
		return
	}

	components.Player.Each(ecs.World, func(entry *donburi.Entry) {
		player := components.Player.Get(entry)
		if player.BoundsReady {
			return
		}
		SetUpBoundaries(player, cam.OrthoCamera)
	})
}

// SetUpBoundaries shrinks the camera view by the player's padding and
// stores the result as the player's movement bounds.
func SetUpBoundaries(player *components.PlayerData, cam gamemath.OrthoCamera) {
	player.Bounds = gamemath.BoundariesFor(cam, player.Padding)
	player.BoundsReady = true

	logger.WithSystem("boundaries").Debugf("player bounds x[%.2f, %.2f] y[%.2f, %.2f]",
		player.Bounds.MinX, player.Bounds.MaxX, player.Bounds.MinY, player.Bounds.MaxY)
}
