package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/laser-defender/components"
	"github.com/automoto/laser-defender/fonts"
	"github.com/automoto/laser-defender/systems/factory"
	"github.com/automoto/laser-defender/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// DrawDebug outlines the ship's movement bounds and every collision object.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	settings := GetOrCreateSettings(ecs)
	if !settings.Debug {
		return
	}

	cam, ok := factory.MainCamera(ecs.World)
	if !ok {
		return
	}
	sw, sh := screen.Bounds().Dx(), screen.Bounds().Dy()

	// Movement bounds in yellow
	components.Player.Each(ecs.World, func(e *donburi.Entry) {
		player := components.Player.Get(e)
		if !player.BoundsReady {
			return
		}
		x0, y0 := cam.WorldToScreen(math.Vec2{X: player.Bounds.MinX, Y: player.Bounds.MaxY}, sw, sh)
		x1, y1 := cam.WorldToScreen(math.Vec2{X: player.Bounds.MaxX, Y: player.Bounds.MinY}, sw, sh)
		vector.StrokeRect(screen, float32(x0), float32(y0), float32(x1-x0), float32(y1-y0), 1,
			color.RGBA{255, 255, 0, 255}, false)
	})

	// Collision objects, shifted back from space coordinates
	spaceEntry, ok := components.Space.First(ecs.World)
	if !ok {
		return
	}
	space := components.Space.Get(spaceEntry)
	for _, obj := range space.Objects() {
		c := color.RGBA{0, 255, 255, 255} // Cyan default
		if obj.HasTags(tags.ResolvShredder) {
			c = color.RGBA{100, 100, 100, 255}
		} else if obj.HasTags(tags.ResolvPlayer) {
			c = color.RGBA{0, 0, 255, 255}
		} else if obj.HasTags(tags.ResolvLaser) {
			c = color.RGBA{255, 0, 0, 255}
		}
		vector.StrokeRect(screen,
			float32(obj.X-space.Margin), float32(obj.Y-space.Margin),
			float32(obj.W), float32(obj.H), 1, c, false)
	}

	input := getOrCreateInput(ecs)
	info := fmt.Sprintf("TPS %.0f  FPS %.0f  axis (%.2f, %.2f)  objects %d",
		ebiten.ActualTPS(), ebiten.ActualFPS(), input.Horizontal, input.Vertical, len(space.Objects()))
	text.Draw(screen, info, fonts.Small.Get(), 10, sh-10, color.White)
}
