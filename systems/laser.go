package systems

import (
	"github.com/automoto/laser-defender/components"
	cfg "github.com/automoto/laser-defender/config"
	"github.com/automoto/laser-defender/shared/gamemath"
	"github.com/automoto/laser-defender/systems/factory"
	"github.com/automoto/laser-defender/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateLasers removes lasers that have flown out of the view.
// Must run after UpdateObjects so collision objects are current.
func UpdateLasers(ecs *ecs.ECS) {
	var toRemove []*donburi.Entry

	// Anything this far outside the view is gone even if it skipped
	// over a shredder in one frame.
	var outer gamemath.Bounds
	cam, hasCamera := factory.MainCamera(ecs.World)
	if hasCamera {
		outer = cam.View()
		pad := 0.0
		if spaceEntry, ok := components.Space.First(ecs.World); ok {
			pad = components.Space.Get(spaceEntry).Margin / cam.PixelsPerUnit(cfg.C.Height)
		}
		outer.MinX -= pad
		outer.MaxX += pad
		outer.MinY -= pad
		outer.MaxY += pad
	}

	tags.Laser.Each(ecs.World, func(e *donburi.Entry) {
		if hasCamera && !outer.Contains(components.Transform.Get(e).Position) {
			toRemove = append(toRemove, e)
			return
		}
		if hitShredder(e) {
			toRemove = append(toRemove, e)
		}
	})

	for _, laser := range toRemove {
		factory.DestroyWithObject(ecs, laser)
		recordLaserCleared(ecs)
	}
}

func hitShredder(e *donburi.Entry) bool {
	obj := components.Object.Get(e)
	if obj == nil || obj.Object == nil || obj.Space == nil {
		return false
	}
	check := obj.Check(0, 0, tags.ResolvShredder)
	if check == nil {
		return false
	}
	// Check works per cell; confirm the rectangles really touch
	for _, shredder := range check.ObjectsByTags(tags.ResolvShredder) {
		if rectsOverlap(obj.Object, shredder) {
			return true
		}
	}
	return false
}

func rectsOverlap(a, b *resolv.Object) bool {
	return a.X < b.X+b.W && a.X+a.W > b.X && a.Y < b.Y+b.H && a.Y+a.H > b.Y
}
