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

// CreateLaser instantiates a laser at the owner's current position and
// sends it straight up at the owner's laser speed.
func CreateLaser(ecs *ecs.ECS, owner *donburi.Entry) *donburi.Entry {
	l := archetypes.Laser.Spawn(ecs)

	pos := components.Transform.Get(owner).Position
	speed := cfg.Player.LaserSpeed
	if owner.HasComponent(components.Player) {
		speed = components.Player.Get(owner).LaserSpeed
	}

	components.Transform.SetValue(l, components.TransformData{Position: pos})
	components.Velocity.SetValue(l, components.VelocityData{
		Velocity: math.Vec2{X: 0, Y: speed},
	})
	components.Laser.SetValue(l, components.LaserData{
		Owner: owner,
		Speed: speed,
	})
	components.Shape.SetValue(l, components.ShapeData{
		Width:  cfg.Laser.Width,
		Height: cfg.Laser.Height,
		Color:  cfg.Laser.Color,
	})

	newObjectAt(ecs, l, pos, cfg.Laser.Width, cfg.Laser.Height, tags.ResolvLaser)

	return l
}
