package component

import "github.com/milk9111/pixelcam/zoom"

// Viewport restricts a camera to a sub-rectangle of its surface, in physical
// pixels. A camera without one draws to the full surface.
type Viewport struct {
	Rect zoom.Rect
}

var ViewportComponent = NewComponent[Viewport]()
