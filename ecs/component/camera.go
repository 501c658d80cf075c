package component

import "image/color"

// Camera renders the world onto a surface. Scale and the Viewport component
// are derived each frame from PixelZoom when the entity has one.
type Camera struct {
	// Target is the surface entity this camera draws to. Zero means the
	// primary surface.
	Target uint64
	// Scale is the number of physical pixels per world unit.
	Scale float64
	// Order sorts cameras sharing a surface; lower orders draw first.
	Order int
	// ClearColor fills the viewport before drawing when set.
	ClearColor color.Color
}

// UnitsPerPixel returns the world units covered by one physical pixel.
func (c *Camera) UnitsPerPixel() float64 {
	if c == nil || c.Scale <= 0 {
		return 1
	}
	return 1 / c.Scale
}

var CameraComponent = NewComponent[Camera]()

// CameraFollow moves a camera's transform toward a named target.
type CameraFollow struct {
	TargetName string
	// Smoothness in (0,1]; 1 snaps to the target every frame.
	Smoothness float64
	// SnapToPixel rounds the camera position to the physical pixel grid.
	SnapToPixel bool
}

var CameraFollowComponent = NewComponent[CameraFollow]()
