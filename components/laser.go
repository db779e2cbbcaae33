package components

import (
	"github.com/yohamta/donburi"
)

type LaserData struct {
	Owner *donburi.Entry
	Speed float64
}

var Laser = donburi.NewComponentType[LaserData]()
