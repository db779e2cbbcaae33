package gamemath

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/yohamta/donburi/features/math"
)

func TestViewportToWorld(t *testing.T) {
	cam := NewOrthoCamera(math.Vec2{X: 0, Y: 0}, 5, 640, 360)
	halfW := 5 * 640.0 / 360.0

	bl := cam.ViewportToWorld(math.Vec2{X: 0, Y: 0})
	assert.InDelta(t, -halfW, bl.X, 1e-9)
	assert.InDelta(t, -5, bl.Y, 1e-9)

	tr := cam.ViewportToWorld(math.Vec2{X: 1, Y: 1})
	assert.InDelta(t, halfW, tr.X, 1e-9)
	assert.InDelta(t, 5, tr.Y, 1e-9)

	center := cam.ViewportToWorld(math.Vec2{X: 0.5, Y: 0.5})
	assert.InDelta(t, 0, center.X, 1e-9)
	assert.InDelta(t, 0, center.Y, 1e-9)
}

func TestViewportRoundTrip(t *testing.T) {
	cam := NewOrthoCamera(math.Vec2{X: 3, Y: -2}, 4, 800, 600)
	p := math.Vec2{X: 1.25, Y: 0.5}
	back := cam.ViewportToWorld(cam.WorldToViewport(p))
	assert.InDelta(t, p.X, back.X, 1e-9)
	assert.InDelta(t, p.Y, back.Y, 1e-9)
}

func TestWorldToScreen(t *testing.T) {
	cam := NewOrthoCamera(math.Vec2{}, 5, 640, 360)

	x, y := cam.WorldToScreen(math.Vec2{}, 640, 360)
	assert.InDelta(t, 320, x, 1e-9)
	assert.InDelta(t, 180, y, 1e-9)

	// World y-up maps to screen y-down
	_, top := cam.WorldToScreen(math.Vec2{Y: 5}, 640, 360)
	assert.InDelta(t, 0, top, 1e-9)

	assert.InDelta(t, 36, cam.PixelsPerUnit(360), 1e-9)
}

func TestBoundariesFor(t *testing.T) {
	cam := NewOrthoCamera(math.Vec2{}, 5, 640, 360)
	halfW := 5 * 640.0 / 360.0

	b := BoundariesFor(cam, 0.5)
	assert.InDelta(t, -halfW+0.5, b.MinX, 1e-9)
	assert.InDelta(t, halfW-0.5, b.MaxX, 1e-9)
	assert.InDelta(t, -4.5, b.MinY, 1e-9)
	assert.InDelta(t, 4.5, b.MaxY, 1e-9)
}

func TestBoundariesForFollowsCameraPosition(t *testing.T) {
	cam := NewOrthoCamera(math.Vec2{X: 10, Y: 20}, 2, 100, 100)
	b := BoundariesFor(cam, 0)
	assert.Equal(t, Bounds{MinX: 8, MaxX: 12, MinY: 18, MaxY: 22}, b)
}

func TestBoundariesForOversizedPaddingCollapses(t *testing.T) {
	cam := NewOrthoCamera(math.Vec2{X: 1, Y: 1}, 1, 100, 100)
	b := BoundariesFor(cam, 5)
	assert.Equal(t, 1.0, b.MinX)
	assert.Equal(t, 1.0, b.MaxX)
	assert.Equal(t, 1.0, b.MinY)
	assert.Equal(t, 1.0, b.MaxY)
	assert.True(t, b.Contains(math.Vec2{X: 1, Y: 1}))
}
