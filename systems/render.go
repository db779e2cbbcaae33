package systems

import (
	"image/color"

	"github.com/automoto/laser-defender/components"
	cfg "github.com/automoto/laser-defender/config"
	"github.com/automoto/laser-defender/shared/gamemath"
	"github.com/automoto/laser-defender/systems/factory"
	"github.com/automoto/laser-defender/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// screenRect converts a world-space rectangle centered on pos into a pixel
// rectangle (top-left corner plus size).
func screenRect(cam gamemath.OrthoCamera, screen *ebiten.Image, pos math.Vec2, w, h float64) (x, y, pw, ph float32) {
	sw, sh := screen.Bounds().Dx(), screen.Bounds().Dy()
	ppu := cam.PixelsPerUnit(sh)
	cx, cy := cam.WorldToScreen(pos, sw, sh)
	pw = float32(w * ppu)
	ph = float32(h * ppu)
	return float32(cx) - pw/2, float32(cy) - ph/2, pw, ph
}

// DrawBackground clears to deep space and draws the drifting starfield.
func DrawBackground(ecs *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.SpaceBlack)

	cam, ok := factory.MainCamera(ecs.World)
	if !ok {
		return
	}
	sw, sh := screen.Bounds().Dx(), screen.Bounds().Dy()

	components.Star.Each(ecs.World, func(e *donburi.Entry) {
		star := components.Star.Get(e)
		x, y := cam.WorldToScreen(components.Transform.Get(e).Position, sw, sh)
		c := cfg.Starfield.Color
		c.A = uint8(80 + 175*star.Depth)
		size := float32(1 + star.Depth)
		vector.FillRect(screen, float32(x), float32(y), size, size, c, false)
	})
}

// DrawLasers renders every laser as a bright bolt with a soft core.
func DrawLasers(ecs *ecs.ECS, screen *ebiten.Image) {
	cam, ok := factory.MainCamera(ecs.World)
	if !ok {
		return
	}

	tags.Laser.Each(ecs.World, func(e *donburi.Entry) {
		shape := components.Shape.Get(e)
		x, y, w, h := screenRect(cam.OrthoCamera, screen, components.Transform.Get(e).Position, shape.Width, shape.Height)
		vector.FillRect(screen, x-1, y, w+2, h, shape.Color, false)
		vector.FillRect(screen, x, y+1, w, h-2, cfg.Laser.Glow, false)
	})
}

// DrawPlayer renders the ship as an arrowhead pointing up.
func DrawPlayer(ecs *ecs.ECS, screen *ebiten.Image) {
	cam, ok := factory.MainCamera(ecs.World)
	if !ok {
		return
	}

	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		shape := components.Shape.Get(e)
		x, y, w, h := screenRect(cam.OrthoCamera, screen, components.Transform.Get(e).Position, shape.Width, shape.Height)

		noseX, noseY := x+w/2, y
		leftX, leftY := x, y+h
		rightX, rightY := x+w, y+h
		tailX, tailY := x+w/2, y+h*0.7

		vector.StrokeLine(screen, noseX, noseY, leftX, leftY, 2, shape.Color, true)
		vector.StrokeLine(screen, noseX, noseY, rightX, rightY, 2, shape.Color, true)
		vector.StrokeLine(screen, leftX, leftY, tailX, tailY, 2, shape.Color, true)
		vector.StrokeLine(screen, rightX, rightY, tailX, tailY, 2, shape.Color, true)

		// Cockpit
		vector.FillRect(screen, noseX-w/10, y+h*0.35, w/5, h/5, cfg.White, false)
	})
}

// DrawEffects renders muzzle flashes with their tweened alpha.
func DrawEffects(ecs *ecs.ECS, screen *ebiten.Image) {
	cam, ok := factory.MainCamera(ecs.World)
	if !ok {
		return
	}

	components.MuzzleFlash.Each(ecs.World, func(e *donburi.Entry) {
		flash := components.MuzzleFlash.Get(e)
		size := cfg.MuzzleFlash.Size * float64(0.5+0.5*flash.Alpha)
		x, y, w, h := screenRect(cam.OrthoCamera, screen, components.Transform.Get(e).Position, size, size)
		c := fade(cfg.MuzzleFlash.Color, flash.Alpha)
		vector.FillRect(screen, x, y, w, h, c, false)
	})
}

// fade scales a colour's alpha (and premultiplied channels) by a.
func fade(c color.RGBA, a float32) color.RGBA {
	a = float32(gamemath.Clamp(float64(a), 0, 1))
	return color.RGBA{
		R: uint8(float32(c.R) * a),
		G: uint8(float32(c.G) * a),
		B: uint8(float32(c.B) * a),
		A: uint8(float32(c.A) * a),
	}
}
