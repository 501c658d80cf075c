package component

import "github.com/milk9111/pixelcam/zoom"

// PixelZoom selects how a camera's integer scale is derived from its
// surface size.
type PixelZoom struct {
	Mode zoom.Mode
}

var PixelZoomComponent = NewComponent[PixelZoom]()

// PixelViewport opts a pixel camera in to having its viewport rectangle
// centered and sized to the scaled target. Without it the camera draws to
// the whole surface.
type PixelViewport struct{}

var PixelViewportComponent = NewComponent[PixelViewport]()

// PixelCameraState is the last successful zoom computation for a camera,
// together with the inputs it was computed from. Only the pixel zoom system
// writes it.
type PixelCameraState struct {
	Mode          zoom.Mode
	ViewportOptIn bool
	Surface       zoom.Size
	Scale         int
	Viewport      zoom.Rect
}

var PixelCameraStateComponent = NewComponent[PixelCameraState]()
