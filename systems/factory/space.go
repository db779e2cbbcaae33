package factory

import (
	"github.com/automoto/laser-defender/archetypes"
	"github.com/automoto/laser-defender/components"
	cfg "github.com/automoto/laser-defender/config"
	"github.com/automoto/laser-defender/shared/gamemath"
	"github.com/automoto/laser-defender/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// CreateSpace creates the collision space. It covers the screen plus a
// margin band on every side so objects just outside the view still collide.
func CreateSpace(ecs *ecs.ECS) *donburi.Entry {
	margin := cfg.Space.Margin
	space := archetypes.Space.Spawn(ecs)
	spaceData := resolv.NewSpace(
		cfg.C.Width+2*margin,
		cfg.C.Height+2*margin,
		cfg.Space.CellSize, cfg.Space.CellSize,
	)
	components.Space.SetValue(space, components.SpaceData{
		Space:  spaceData,
		Margin: float64(margin),
	})
	return space
}

// CreateShredders places four static zones in the margin band around the
// view. Anything that touches one has left the screen for good.
func CreateShredders(ecs *ecs.ECS) []*donburi.Entry {
	spaceEntry, ok := components.Space.First(ecs.World)
	if !ok {
		return nil
	}
	space := components.Space.Get(spaceEntry)

	m := space.Margin
	d := float64(cfg.Space.ShredDepth)
	w := float64(cfg.C.Width) + 2*m
	h := float64(cfg.C.Height) + 2*m

	rects := [][4]float64{
		{0, m - d, w, d}, // top
		{0, h - m, w, d}, // bottom
		{m - d, 0, d, h}, // left
		{w - m, 0, d, h}, // right
	}

	shredders := make([]*donburi.Entry, 0, len(rects))
	for _, r := range rects {
		shredder := archetypes.Shredder.Spawn(ecs)
		obj := resolv.NewObject(r[0], r[1], r[2], r[3], tags.ResolvShredder)
		obj.Data = shredder
		components.Object.SetValue(shredder, components.ObjectData{Object: obj})
		space.Add(obj)
		shredders = append(shredders, shredder)
	}
	return shredders
}

// PlaceObject positions a collision object over a world-space rectangle
// centered on pos.
func PlaceObject(obj *resolv.Object, cam gamemath.OrthoCamera, pos math.Vec2, width, height, margin float64) {
	ppu := cam.PixelsPerUnit(cfg.C.Height)
	sx, sy := cam.WorldToScreen(pos, cfg.C.Width, cfg.C.Height)
	obj.W = width * ppu
	obj.H = height * ppu
	obj.X = sx - obj.W/2 + margin
	obj.Y = sy - obj.H/2 + margin
}

// newObjectAt creates a collision object for a world-space rectangle and
// adds it to the scene's space.
func newObjectAt(ecs *ecs.ECS, entry *donburi.Entry, pos math.Vec2, width, height float64, tag string) *resolv.Object {
	obj := resolv.NewObject(0, 0, 1, 1, tag)
	obj.Data = entry

	spaceEntry, hasSpace := components.Space.First(ecs.World)
	cam, hasCamera := MainCamera(ecs.World)
	if hasSpace && hasCamera {
		space := components.Space.Get(spaceEntry)
		PlaceObject(obj, cam.OrthoCamera, pos, width, height, space.Margin)
		space.Add(obj)
	}

	components.Object.SetValue(entry, components.ObjectData{Object: obj})
	return obj
}

// DestroyWithObject removes an entity and its collision object.
func DestroyWithObject(ecs *ecs.ECS, entry *donburi.Entry) {
	if !entry.Valid() {
		return
	}
	if entry.HasComponent(components.Object) {
		obj := components.Object.Get(entry)
		if obj != nil && obj.Object != nil && obj.Space != nil {
			obj.Space.Remove(obj.Object)
		}
	}
	ecs.World.Remove(entry.Entity())
}
