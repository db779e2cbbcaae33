package systems

import (
	"fmt"

	cfg "github.com/automoto/laser-defender/config"
	"github.com/automoto/laser-defender/fonts"
	"github.com/automoto/laser-defender/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DrawHUD renders shot counters in the top-left corner.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	session := GetOrCreateSession(ecs)

	live := 0
	tags.Laser.Each(ecs.World, func(*donburi.Entry) { live++ })

	face := fonts.Regular.Get()
	x := int(cfg.HUD.Margin)
	y := int(cfg.HUD.Margin) + 8
	text.Draw(screen, fmt.Sprintf("SHOTS %d", session.ShotsFired), face, x, y, cfg.HUD.TextColor)
	text.Draw(screen, fmt.Sprintf("IN FLIGHT %d", live), face, x, y+14, cfg.HUD.TextColor)
	text.Draw(screen, fmt.Sprintf("LIFETIME %d", session.LifetimeShots), face, x, y+28, cfg.HUD.TextColor)

	if GetOrCreateSettings(ecs).Muted {
		w := screen.Bounds().Dx()
		text.Draw(screen, "MUTED", face, w-int(cfg.HUD.Margin)-40, y, cfg.HUD.TextColor)
	}
}
