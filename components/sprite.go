package components

import (
	"image/color"

	"github.com/yohamta/donburi"
)

// ShapeData describes how a flat-shaded entity is drawn, in world units.
type ShapeData struct {
	Width  float64
	Height float64
	Color  color.RGBA
}

var Shape = donburi.NewComponentType[ShapeData]()
