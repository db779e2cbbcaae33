package systems

import (
	"testing"

	"github.com/automoto/laser-defender/components"
	cfg "github.com/automoto/laser-defender/config"
	"github.com/stretchr/testify/assert"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func TestGetAction(t *testing.T) {
	tests := []struct {
		name       string
		prev, curr bool
		want       components.ActionState
	}{
		{"idle", false, false, components.ActionState{}},
		{"press edge", false, true, components.ActionState{Pressed: true, JustPressed: true}},
		{"held", true, true, components.ActionState{Pressed: true}},
		{"release edge", true, false, components.ActionState{JustReleased: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := &components.InputData{}
			input.Previous[cfg.ActionFire] = tt.prev
			input.Current[cfg.ActionFire] = tt.curr
			assert.Equal(t, tt.want, GetAction(input, cfg.ActionFire))
		})
	}
}

func TestUpdateAxesRampsAndReturns(t *testing.T) {
	input := &components.InputData{}
	input.Current[cfg.ActionMoveRight] = true

	updateAxes(input, 0, 0, 0.1)
	assert.InDelta(t, cfg.Axis.Sensitivity*0.1, input.Horizontal, 1e-9)

	for i := 0; i < 20; i++ {
		updateAxes(input, 0, 0, 0.1)
	}
	assert.Equal(t, 1.0, input.Horizontal)
	assert.Zero(t, input.Vertical)

	input.Current[cfg.ActionMoveRight] = false
	for i := 0; i < 20; i++ {
		updateAxes(input, 0, 0, 0.1)
	}
	assert.Zero(t, input.Horizontal)
}

func TestUpdateAxesVerticalIsUpPositive(t *testing.T) {
	input := &components.InputData{}
	input.Current[cfg.ActionMoveUp] = true
	updateAxes(input, 0, 0, 1)
	assert.Equal(t, 1.0, input.Vertical)

	input.Current[cfg.ActionMoveUp] = false
	input.Current[cfg.ActionMoveDown] = true
	updateAxes(input, 0, 0, 1)
	assert.Equal(t, -1.0, input.Vertical)
}

func TestUpdateAxesStickWins(t *testing.T) {
	input := &components.InputData{}
	input.Current[cfg.ActionMoveLeft] = true

	updateAxes(input, 0.9, -0.4, 0.05)

	assert.Equal(t, 0.9, input.Horizontal, "stick is deflected further than the keyboard axis")
	assert.Equal(t, -0.4, input.Vertical)
	assert.Less(t, input.KeyHorizontal, 0.0, "keyboard axis keeps ramping underneath")
}

func TestUpdateAxesStaysInRange(t *testing.T) {
	input := &components.InputData{}
	input.Current[cfg.ActionMoveLeft] = true
	input.Current[cfg.ActionMoveUp] = true

	for i := 0; i < 100; i++ {
		updateAxes(input, -3, 7, 0.5)
		assert.GreaterOrEqual(t, input.Horizontal, -1.0)
		assert.LessOrEqual(t, input.Horizontal, 1.0)
		assert.GreaterOrEqual(t, input.Vertical, -1.0)
		assert.LessOrEqual(t, input.Vertical, 1.0)
	}
}

func TestPrimeInputSuppressesHeldButtons(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	PrimeInput(e)

	// Fire is still held on the first frame of the new scene
	input := frame(e, cfg.ActionFire)
	assert.False(t, GetAction(input, cfg.ActionFire).JustPressed)

	frame(e)
	input = frame(e, cfg.ActionFire)
	assert.True(t, GetAction(input, cfg.ActionFire).JustPressed)
}
