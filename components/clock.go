package components

import "github.com/yohamta/donburi"

// ClockData holds frame timing (singleton)
type ClockData struct {
	DeltaTime float64 // seconds since the previous update
	Frame     int
}

var Clock = donburi.NewComponentType[ClockData]()
