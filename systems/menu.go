package systems

import (
	"github.com/automoto/laser-defender/components"
	cfg "github.com/automoto/laser-defender/config"
	"github.com/automoto/laser-defender/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// SceneChanger allows systems to trigger scene transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

var menuLabels = map[components.MainMenuOption]string{
	components.MainMenuStart: "Start",
	components.MainMenuQuit:  "Quit",
}

// NewUpdateMenu creates an UpdateMenu system that starts the game scene
// built by createGameScene.
func NewUpdateMenu(sceneChanger SceneChanger, createGameScene func() interface{}) ecs.System {
	return func(e *ecs.ECS) {
		menu := GetOrCreateMenu(e)
		input := getOrCreateInput(e)
		menu.Frame++

		numOptions := len(menu.Options)
		if GetAction(input, cfg.ActionMenuUp).JustPressed {
			menu.SelectedIndex = (menu.SelectedIndex - 1 + numOptions) % numOptions
		}
		if GetAction(input, cfg.ActionMenuDown).JustPressed {
			menu.SelectedIndex = (menu.SelectedIndex + 1) % numOptions
		}

		if GetAction(input, cfg.ActionMenuSelect).JustPressed || GetAction(input, cfg.ActionFire).JustPressed {
			PlaySFX(e, components.SoundMenuSelect)
			switch menu.Options[menu.SelectedIndex] {
			case components.MainMenuStart:
				sceneChanger.ChangeScene(createGameScene())
			case components.MainMenuQuit:
				menu.QuitRequested = true
			}
		}
	}
}

// DrawMenu renders the title screen
func DrawMenu(e *ecs.ECS, screen *ebiten.Image) {
	menu := GetOrCreateMenu(e)
	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	vector.FillRect(screen, 0, 0, float32(width), float32(height), cfg.Menu.BackgroundColor, false)

	title := cfg.C.Title
	titleFont := fonts.Title.Get()
	titleWidth := text.BoundString(titleFont, title).Dx()
	text.Draw(screen, title, titleFont, int(width)/2-titleWidth/2, int(cfg.Menu.TitleY), cfg.Menu.TitleColor)

	itemFont := fonts.Bold.Get()
	for i, opt := range menu.Options {
		label := menuLabels[opt]
		c := cfg.Pause.TextColorNormal
		if i == menu.SelectedIndex {
			c = cfg.Pause.TextColorSelected
			// Blink the selected item's marker
			if (menu.Frame/cfg.Menu.BlinkFrames)%2 == 0 {
				label = "> " + label + " <"
			}
		}
		w := text.BoundString(itemFont, label).Dx()
		y := int(cfg.Menu.PromptY + float64(i)*(cfg.Pause.MenuItemHeight+cfg.Pause.MenuItemGap))
		text.Draw(screen, label, itemFont, int(width)/2-w/2, y, c)
	}

	hint := "Arrows/WASD: Move   Space/Ctrl/Z: Fire   Esc: Pause   F3: Debug   M: Mute"
	hintFont := fonts.Small.Get()
	w := text.BoundString(hintFont, hint).Dx()
	text.Draw(screen, hint, hintFont, int(width)/2-w/2, int(height)-12, cfg.Menu.TextColor)
}

// GetOrCreateMenu returns the title screen singleton
func GetOrCreateMenu(e *ecs.ECS) *components.MenuData {
	entry, ok := components.Menu.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Menu))
		components.Menu.SetValue(entry, components.MenuData{
			Options: []components.MainMenuOption{components.MainMenuStart, components.MainMenuQuit},
		})
	}
	return components.Menu.Get(entry)
}
