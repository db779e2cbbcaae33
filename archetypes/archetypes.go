package archetypes

import (
	"github.com/automoto/laser-defender/components"
	cfg "github.com/automoto/laser-defender/config"
	"github.com/automoto/laser-defender/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Transform,
		components.Object,
		components.Shape,
	)
	Laser = newArchetype(
		tags.Laser,
		components.Laser,
		components.Transform,
		components.Velocity,
		components.Object,
		components.Shape,
	)
	Shredder = newArchetype(
		tags.Shredder,
		components.Object,
	)
	Space = newArchetype(
		components.Space,
	)
	Camera = newArchetype(
		components.Camera,
	)
	MuzzleFlash = newArchetype(
		components.MuzzleFlash,
		components.Transform,
	)
	Star = newArchetype(
		components.Star,
		components.Transform,
		components.Velocity,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
