package tags

import "github.com/yohamta/donburi"

var (
	Player   = donburi.NewTag().SetName("Player")
	Laser    = donburi.NewTag().SetName("Laser")
	Shredder = donburi.NewTag().SetName("Shredder")
)

// Resolv tags for collision checks
const (
	ResolvPlayer   = "player"
	ResolvLaser    = "laser"
	ResolvShredder = "shredder"
)
