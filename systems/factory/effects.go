package factory

import (
	"math/rand"

	"github.com/automoto/laser-defender/archetypes"
	"github.com/automoto/laser-defender/components"
	cfg "github.com/automoto/laser-defender/config"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// CreateMuzzleFlash spawns a glow at the nose of owner that fades out.
func CreateMuzzleFlash(ecs *ecs.ECS, owner *donburi.Entry) *donburi.Entry {
	flash := archetypes.MuzzleFlash.Spawn(ecs)

	offset := math.Vec2{}
	if owner.HasComponent(components.Shape) {
		offset.Y = components.Shape.Get(owner).Height / 2
	}
	pos := components.Transform.Get(owner).Position
	components.Transform.SetValue(flash, components.TransformData{
		Position: math.Vec2{X: pos.X + offset.X, Y: pos.Y + offset.Y},
	})
	components.MuzzleFlash.SetValue(flash, components.MuzzleFlashData{
		Owner:  owner,
		Offset: offset,
		Tween:  gween.New(1, 0, cfg.MuzzleFlash.Duration, ease.OutQuad),
		Alpha:  1,
	})
	return flash
}

// CreateStarfield scatters background stars across the camera view.
func CreateStarfield(ecs *ecs.ECS) {
	cam, ok := MainCamera(ecs.World)
	if !ok {
		return
	}
	view := cam.View()
	rng := rand.New(rand.NewSource(cfg.Starfield.Seed))

	for i := 0; i < cfg.Starfield.Count; i++ {
		star := archetypes.Star.Spawn(ecs)
		depth := 0.2 + rng.Float64()*0.8
		components.Star.SetValue(star, components.StarData{Depth: depth})
		components.Transform.SetValue(star, components.TransformData{
			Position: math.Vec2{
				X: view.MinX + rng.Float64()*view.Width(),
				Y: view.MinY + rng.Float64()*view.Height(),
			},
		})
		components.Velocity.SetValue(star, components.VelocityData{
			Velocity: math.Vec2{Y: -cfg.Starfield.Speed * depth},
		})
	}
}
