package systems

import (
	"testing"

	"github.com/automoto/laser-defender/components"
	cfg "github.com/automoto/laser-defender/config"
	"github.com/automoto/laser-defender/shared/gamemath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi/features/math"
)

func TestFireOncePerPress(t *testing.T) {
	e, player := newTestWorld(t)
	UpdateBoundaries(e)

	steps := []struct {
		name       string
		held       bool
		wantLasers int
	}{
		{"idle", false, 0},
		{"press", true, 1},
		{"hold", true, 1},
		{"still holding", true, 1},
		{"release", false, 1},
		{"press again", true, 2},
		{"release again", false, 2},
	}

	for _, step := range steps {
		if step.held {
			frame(e, cfg.ActionFire)
		} else {
			frame(e)
		}
		UpdatePlayer(e)
		assert.Equal(t, step.wantLasers, countLasers(e), step.name)
	}

	assert.Equal(t, 2, components.Player.Get(player).ShotsFired)
	assert.Equal(t, 2, GetOrCreateSession(e).ShotsFired)
}

func TestFireQueuesEffects(t *testing.T) {
	e, _ := newTestWorld(t)
	frame(e, cfg.ActionFire)
	UpdatePlayer(e)

	assert.Equal(t, []components.SoundID{components.SoundLaser}, getOrCreateAudio(e).PendingSFX)

	flashes := 0
	for range components.MuzzleFlash.Iter(e.World) {
		flashes++
	}
	assert.Equal(t, 1, flashes)
}

func TestLaserSpawnsAtShipWithUpwardVelocity(t *testing.T) {
	e, player := newTestWorld(t)
	UpdateBoundaries(e)

	shipPos := math.Vec2{X: 1.5, Y: -2}
	components.Transform.Get(player).Position = shipPos

	frame(e, cfg.ActionFire)
	UpdatePlayer(e)

	laser := firstLaser(t, e)
	assert.Equal(t, shipPos, components.Transform.Get(laser).Position)
	assert.Equal(t, math.Vec2{X: 0, Y: cfg.Player.LaserSpeed}, components.Velocity.Get(laser).Velocity)
	assert.Equal(t, player, components.Laser.Get(laser).Owner)
}

func TestFireHappensBeforeMove(t *testing.T) {
	e, player := newTestWorld(t)
	UpdateBoundaries(e)
	start := components.Transform.Get(player).Position

	input := frame(e, cfg.ActionFire)
	input.Horizontal = 1
	UpdatePlayer(e)

	laser := firstLaser(t, e)
	assert.Equal(t, start, components.Transform.Get(laser).Position, "laser uses the pre-move position")
	assert.Greater(t, components.Transform.Get(player).Position.X, start.X)
}

func TestMoveStaysInsideBounds(t *testing.T) {
	tests := []struct {
		name string
		h, v float64
		dt   float64
	}{
		{"full right", 1, 0, testDT},
		{"full up-left", -1, 1, testDT},
		{"absurd magnitude", 1e6, -1e6, testDT},
		{"long frame", -1, -1, 10},
		{"negative absurd", -1e9, 1e9, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, player := newTestWorld(t)
			UpdateBoundaries(e)
			getOrCreateClock(e).DeltaTime = tt.dt
			bounds := components.Player.Get(player).Bounds

			for i := 0; i < 600; i++ {
				input := frame(e)
				input.Horizontal, input.Vertical = tt.h, tt.v
				UpdatePlayer(e)

				pos := components.Transform.Get(player).Position
				require.True(t, bounds.Contains(pos), "frame %d: %+v outside %+v", i, pos, bounds)
			}
		})
	}
}

func TestMoveReachesEdges(t *testing.T) {
	e, player := newTestWorld(t)
	UpdateBoundaries(e)
	bounds := components.Player.Get(player).Bounds

	for i := 0; i < 600; i++ {
		input := frame(e)
		input.Horizontal, input.Vertical = 1, 1
		UpdatePlayer(e)
	}
	pos := components.Transform.Get(player).Position
	assert.InDelta(t, bounds.MaxX, pos.X, 1e-9)
	assert.InDelta(t, bounds.MaxY, pos.Y, 1e-9)
}

func TestMoveScalesWithSpeedAndDeltaTime(t *testing.T) {
	e, player := newTestWorld(t)
	UpdateBoundaries(e)
	components.Transform.Get(player).Position = math.Vec2{}

	input := frame(e)
	input.Horizontal = 0.5
	UpdatePlayer(e)

	want := 0.5 * testDT * cfg.Player.MovementSpeed
	assert.InDelta(t, want, components.Transform.Get(player).Position.X, 1e-9)
}

func TestMoveWaitsForBoundaries(t *testing.T) {
	e, player := newTestWorld(t)
	start := components.Transform.Get(player).Position

	input := frame(e)
	input.Horizontal = 1
	UpdatePlayer(e)

	assert.Equal(t, start, components.Transform.Get(player).Position)
}

func TestBoundariesComputedOnce(t *testing.T) {
	e, player := newTestWorld(t)
	UpdateBoundaries(e)

	data := components.Player.Get(player)
	require.True(t, data.BoundsReady)
	first := data.Bounds

	cam, ok := factoryCamera(e)
	require.True(t, ok)
	want := gamemath.BoundariesFor(cam.OrthoCamera, cfg.Player.BoundaryPadding)
	assert.Equal(t, want, first)

	// Moving the camera afterwards does not move the bounds
	cam.Position = math.Vec2{X: 50, Y: 50}
	UpdateBoundaries(e)
	assert.Equal(t, first, components.Player.Get(player).Bounds)
}

func TestBoundariesMatchPaddedView(t *testing.T) {
	e, player := newTestWorld(t)
	UpdateBoundaries(e)

	cam, _ := factoryCamera(e)
	view := cam.View()
	b := components.Player.Get(player).Bounds
	pad := cfg.Player.BoundaryPadding

	assert.InDelta(t, view.MinX+pad, b.MinX, 1e-9)
	assert.InDelta(t, view.MaxX-pad, b.MaxX, 1e-9)
	assert.InDelta(t, view.MinY+pad, b.MinY, 1e-9)
	assert.InDelta(t, view.MaxY-pad, b.MaxY, 1e-9)
}
