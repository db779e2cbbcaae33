package factory

import (
	"github.com/automoto/laser-defender/archetypes"
	"github.com/automoto/laser-defender/components"
	cfg "github.com/automoto/laser-defender/config"
	"github.com/automoto/laser-defender/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// CreatePlayer spawns the ship at its configured viewport start point.
// Movement bounds are left unset until the boundaries system runs.
func CreatePlayer(ecs *ecs.ECS) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	start := math.Vec2{}
	if cam, ok := MainCamera(ecs.World); ok {
		start = cam.ViewportToWorld(math.Vec2{X: cfg.Player.StartViewportX, Y: cfg.Player.StartViewportY})
	}

	components.Transform.SetValue(player, components.TransformData{Position: start})
	components.Player.SetValue(player, components.PlayerData{
		MovementSpeed: cfg.Player.MovementSpeed,
		LaserSpeed:    cfg.Player.LaserSpeed,
		Padding:       cfg.Player.BoundaryPadding,
	})
	components.Shape.SetValue(player, components.ShapeData{
		Width:  cfg.Player.Width,
		Height: cfg.Player.Height,
		Color:  cfg.Player.Color,
	})

	newObjectAt(ecs, player, start, cfg.Player.Width, cfg.Player.Height, tags.ResolvPlayer)

	return player
}
