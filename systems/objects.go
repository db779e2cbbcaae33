package systems

import (
	"github.com/automoto/laser-defender/components"
	"github.com/automoto/laser-defender/systems/factory"
	"github.com/yohamta/donburi/ecs"
)

// UpdateObjects moves collision objects to match their entity's transform.
func UpdateObjects(ecs *ecs.ECS) {
	cam, ok := factory.MainCamera(ecs.World)
	if !ok {
		return
	}
	spaceEntry, ok := components.Space.First(ecs.World)
	if !ok {
		return
	}
	margin := components.Space.Get(spaceEntry).Margin

	for e := range components.Object.Iter(ecs.World) {
		if !e.HasComponent(components.Transform) || !e.HasComponent(components.Shape) {
			continue
		}
		obj := components.Object.Get(e)
		pos := components.Transform.Get(e).Position
		shape := components.Shape.Get(e)
		factory.PlaceObject(obj.Object, cam.OrthoCamera, pos, shape.Width, shape.Height, margin)
		obj.Update()
	}
}
