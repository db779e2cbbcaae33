package systems

import (
	"github.com/automoto/laser-defender/components"
	"github.com/yohamta/donburi/ecs"
)

// GetOrCreateSession returns the per-run statistics singleton.
func GetOrCreateSession(e *ecs.ECS) *components.SessionData {
	entry, ok := components.Session.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Session))
	}
	return components.Session.Get(entry)
}

// StartSession loads lifetime stats into a fresh session and counts it.
func StartSession(e *ecs.ECS) {
	session := GetOrCreateSession(e)
	stats, err := LoadStats()
	if err != nil {
		persistLog.WithError(err).Warn("could not load stats")
	}
	stats.Sessions++
	session.LifetimeShots = stats.TotalShots
	if err := SaveStats(stats); err != nil {
		persistLog.WithError(err).Warn("could not save stats")
	}
}

// EndSession writes the lifetime shot count back to disk.
func EndSession(e *ecs.ECS) {
	session := GetOrCreateSession(e)
	stats, err := LoadStats()
	if err != nil {
		persistLog.WithError(err).Warn("could not load stats")
		return
	}
	stats.TotalShots = session.LifetimeShots
	if err := SaveStats(stats); err != nil {
		persistLog.WithError(err).Warn("could not save stats")
	}
}

func recordShot(e *ecs.ECS) {
	session := GetOrCreateSession(e)
	session.ShotsFired++
	session.LifetimeShots++
}

func recordLaserCleared(e *ecs.ECS) {
	GetOrCreateSession(e).LasersCleared++
}
