package factory

import (
	"github.com/automoto/laser-defender/archetypes"
	"github.com/automoto/laser-defender/components"
	cfg "github.com/automoto/laser-defender/config"
	"github.com/automoto/laser-defender/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// CreateCamera spawns the orthographic camera sized to the logical screen.
func CreateCamera(ecs *ecs.ECS) *donburi.Entry {
	camera := archetypes.Camera.Spawn(ecs)
	components.Camera.SetValue(camera, components.CameraData{
		OrthoCamera: gamemath.NewOrthoCamera(
			math.Vec2{X: cfg.Camera.PositionX, Y: cfg.Camera.PositionY},
			cfg.Camera.OrthographicSize,
			cfg.C.Width, cfg.C.Height,
		),
	})
	return camera
}

// MainCamera returns the scene camera, if one has been created.
func MainCamera(w donburi.World) (*components.CameraData, bool) {
	entry, ok := components.Camera.First(w)
	if !ok {
		return nil, false
	}
	return components.Camera.Get(entry), true
}
