package components

import (
	"github.com/yohamta/donburi"
)

// SoundID identifies a synthesized sound effect
type SoundID int

const (
	SoundLaser SoundID = iota
	SoundMenuSelect
)

// AudioData queues sound effects requested during the frame (singleton)
type AudioData struct {
	PendingSFX []SoundID
}

var Audio = donburi.NewComponentType[AudioData]()
