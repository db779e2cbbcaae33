package components

import (
	"github.com/automoto/laser-defender/shared/gamemath"
	"github.com/yohamta/donburi"
)

type CameraData struct {
	gamemath.OrthoCamera
}

var Camera = donburi.NewComponentType[CameraData]()
