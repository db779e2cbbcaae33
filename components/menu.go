package components

import "github.com/yohamta/donburi"

// MainMenuOption represents items on the title screen
type MainMenuOption int

const (
	MainMenuStart MainMenuOption = iota
	MainMenuQuit
)

// MenuData stores title screen state
type MenuData struct {
	SelectedIndex int
	Options       []MainMenuOption
	Frame         int
	QuitRequested bool
}

var Menu = donburi.NewComponentType[MenuData]()
