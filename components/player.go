package components

import (
	"github.com/automoto/laser-defender/shared/gamemath"
	"github.com/yohamta/donburi"
)

type PlayerData struct {
	MovementSpeed float64
	LaserSpeed    float64
	Padding       float64

	// Bounds are computed once from the camera, the first frame both exist.
	Bounds      gamemath.Bounds
	BoundsReady bool

	ShotsFired int
}

var Player = donburi.NewComponentType[PlayerData]()
