package components

import (
	"github.com/yohamta/donburi"
)

// SettingsData stores the toggles that survive between sessions (singleton)
type SettingsData struct {
	Debug      bool
	Muted      bool
	Fullscreen bool
}

var Settings = donburi.NewComponentType[SettingsData]()
