package systems

import (
	"testing"

	"github.com/automoto/laser-defender/components"
	cfg "github.com/automoto/laser-defender/config"
	"github.com/automoto/laser-defender/systems/factory"
	"github.com/automoto/laser-defender/tags"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const testDT = 1.0 / 60

// newTestWorld builds a game world without registering any systems, so
// tests can drive the systems one by one.
func newTestWorld(t *testing.T) (*ecs.ECS, *donburi.Entry) {
	t.Helper()
	e := ecs.NewECS(donburi.NewWorld())
	factory.CreateCamera(e)
	factory.CreateSpace(e)
	factory.CreateShredders(e)
	player := factory.CreatePlayer(e)
	getOrCreateClock(e).DeltaTime = testDT
	return e, player
}

// frame advances the input buffers the way UpdateInput does, with the
// given actions held this frame.
func frame(e *ecs.ECS, held ...cfg.ActionID) *components.InputData {
	input := getOrCreateInput(e)
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}
	for _, id := range held {
		input.Current[id] = true
	}
	return input
}

func countLasers(e *ecs.ECS) int {
	n := 0
	tags.Laser.Each(e.World, func(*donburi.Entry) { n++ })
	return n
}

func firstLaser(t *testing.T, e *ecs.ECS) *donburi.Entry {
	t.Helper()
	entry, ok := tags.Laser.First(e.World)
	require.True(t, ok, "expected a laser")
	return entry
}

func factoryCamera(e *ecs.ECS) (*components.CameraData, bool) {
	return factory.MainCamera(e.World)
}
