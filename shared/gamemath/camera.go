package gamemath

import "github.com/yohamta/donburi/features/math"

// OrthoCamera is a 2D orthographic camera. World space is y-up; the
// viewport is normalized with (0,0) at the bottom-left and (1,1) at the
// top-right of the visible area.
type OrthoCamera struct {
	Position math.Vec2 // world point at the center of the view
	Size     float64   // half of the visible height in world units
	Aspect   float64   // width / height
}

// NewOrthoCamera builds a camera for a screen of the given pixel size.
func NewOrthoCamera(position math.Vec2, size float64, screenW, screenH int) OrthoCamera {
	aspect := 1.0
	if screenH > 0 {
		aspect = float64(screenW) / float64(screenH)
	}
	return OrthoCamera{Position: position, Size: size, Aspect: aspect}
}

// HalfExtents returns half the visible width and height in world units.
func (c OrthoCamera) HalfExtents() (halfW, halfH float64) {
	return c.Size * c.Aspect, c.Size
}

// ViewportToWorld converts a normalized viewport point to world space.
func (c OrthoCamera) ViewportToWorld(v math.Vec2) math.Vec2 {
	halfW, halfH := c.HalfExtents()
	return math.Vec2{
		X: c.Position.X + (v.X-0.5)*2*halfW,
		Y: c.Position.Y + (v.Y-0.5)*2*halfH,
	}
}

// WorldToViewport is the inverse of ViewportToWorld.
func (c OrthoCamera) WorldToViewport(p math.Vec2) math.Vec2 {
	halfW, halfH := c.HalfExtents()
	if halfW == 0 || halfH == 0 {
		return math.Vec2{X: 0.5, Y: 0.5}
	}
	return math.Vec2{
		X: (p.X-c.Position.X)/(2*halfW) + 0.5,
		Y: (p.Y-c.Position.Y)/(2*halfH) + 0.5,
	}
}

// WorldToScreen converts a world point to pixel coordinates (y down) on a
// screen of the given size.
func (c OrthoCamera) WorldToScreen(p math.Vec2, screenW, screenH int) (x, y float64) {
	v := c.WorldToViewport(p)
	return v.X * float64(screenW), (1 - v.Y) * float64(screenH)
}

// PixelsPerUnit returns how many screen pixels one world unit covers.
func (c OrthoCamera) PixelsPerUnit(screenH int) float64 {
	if c.Size == 0 {
		return 0
	}
	return float64(screenH) / (2 * c.Size)
}

// View returns the visible world rectangle.
func (c OrthoCamera) View() Bounds {
	bl := c.ViewportToWorld(math.Vec2{X: 0, Y: 0})
	tr := c.ViewportToWorld(math.Vec2{X: 1, Y: 1})
	return Bounds{MinX: bl.X, MaxX: tr.X, MinY: bl.Y, MaxY: tr.Y}
}

// BoundariesFor returns the area a ship may move in: the camera view shrunk
// by padding on every side. When the padding is larger than half the view
// on an axis, that axis collapses to the view center.
func BoundariesFor(c OrthoCamera, padding float64) Bounds {
	b := Bounds{
		MinX: c.ViewportToWorld(math.Vec2{X: 0, Y: 0}).X + padding,
		MaxX: c.ViewportToWorld(math.Vec2{X: 1, Y: 0}).X - padding,
		MinY: c.ViewportToWorld(math.Vec2{X: 0, Y: 0}).Y + padding,
		MaxY: c.ViewportToWorld(math.Vec2{X: 0, Y: 1}).Y - padding,
	}
	if b.MinX > b.MaxX {
		mid := (b.MinX + b.MaxX) / 2
		b.MinX, b.MaxX = mid, mid
	}
	if b.MinY > b.MaxY {
		mid := (b.MinY + b.MaxY) / 2
		b.MinY, b.MaxY = mid, mid
	}
	return b
}
