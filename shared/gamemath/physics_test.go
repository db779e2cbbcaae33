package gamemath

import (
	stdmath "math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/yohamta/donburi/features/math"
)

func TestClamp(t *testing.T) {
	assert.Equal(t, 1.0, Clamp(1, 0, 2))
	assert.Equal(t, 0.0, Clamp(-5, 0, 2))
	assert.Equal(t, 2.0, Clamp(5, 0, 2))
	assert.Equal(t, 0.0, Clamp(stdmath.NaN(), 0, 2))
}

func TestMoveWithinNonFiniteInput(t *testing.T) {
	bounds := Bounds{MinX: -8, MaxX: 8, MinY: -4.5, MaxY: 4.5}

	// Inf * 0 is NaN before the clamp
	got := MoveWithin(math.Vec2{}, math.Vec2{X: stdmath.Inf(1)}, 0, 10, bounds)
	assert.True(t, bounds.Contains(got))

	got = MoveWithin(math.Vec2{}, math.Vec2{X: stdmath.Inf(-1), Y: stdmath.Inf(1)}, 1, 10, bounds)
	assert.Equal(t, math.Vec2{X: -8, Y: 4.5}, got)
}

func TestMoveWithinStaysInsideBounds(t *testing.T) {
	bounds := Bounds{MinX: -8, MaxX: 8, MinY: -4.5, MaxY: 4.5}

	tests := []struct {
		name  string
		pos   math.Vec2
		axis  math.Vec2
		dt    float64
		speed float64
		want  math.Vec2
	}{
		{"no input", math.Vec2{X: 1, Y: 1}, math.Vec2{}, 1.0 / 60, 10, math.Vec2{X: 1, Y: 1}},
		{"normal step right", math.Vec2{}, math.Vec2{X: 1}, 0.1, 10, math.Vec2{X: 1}},
		{"huge right input", math.Vec2{}, math.Vec2{X: 1000}, 1, 10, math.Vec2{X: 8}},
		{"huge left down input", math.Vec2{}, math.Vec2{X: -1000, Y: -1000}, 1, 10, math.Vec2{X: -8, Y: -4.5}},
		{"long frame", math.Vec2{X: 7, Y: 4}, math.Vec2{X: 1, Y: 1}, 5, 10, math.Vec2{X: 8, Y: 4.5}},
		{"starts outside", math.Vec2{X: 100, Y: -100}, math.Vec2{}, 0, 10, math.Vec2{X: 8, Y: -4.5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MoveWithin(tt.pos, tt.axis, tt.dt, tt.speed, bounds)
			assert.InDelta(t, tt.want.X, got.X, 1e-9)
			assert.InDelta(t, tt.want.Y, got.Y, 1e-9)
			assert.True(t, bounds.Contains(got))
		})
	}
}

func TestMoveWithinSweep(t *testing.T) {
	bounds := Bounds{MinX: -3, MaxX: 3, MinY: -2, MaxY: 2}
	pos := math.Vec2{}
	for i := -50; i <= 50; i++ {
		axis := math.Vec2{X: float64(i) * 0.7, Y: float64(-i) * 1.3}
		pos = MoveWithin(pos, axis, 0.25, 10, bounds)
		if !bounds.Contains(pos) {
			t.Fatalf("step %d left bounds: %+v", i, pos)
		}
	}
}

func TestIntegrate(t *testing.T) {
	got := Integrate(math.Vec2{X: 1, Y: 2}, math.Vec2{X: 0, Y: 20}, 0.5)
	assert.Equal(t, math.Vec2{X: 1, Y: 12}, got)
}
