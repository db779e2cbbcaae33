package components

import "github.com/yohamta/donburi"

// SessionData tracks per-run statistics shown on the HUD (singleton)
type SessionData struct {
	ShotsFired    int
	LasersCleared int
	LifetimeShots int // loaded from the save file, includes this session
}

var Session = donburi.NewComponentType[SessionData]()
