package system

import "github.com/milk9111/pixelcam/ecs"

// PixelCameraPlugin registers the pixel camera systems. The surface system
// runs in StagePreUpdate and the zoom system in StagePostUpdate, so game
// systems in StageUpdate may move cameras and change zoom modes in between.
type PixelCameraPlugin struct {
	// WindowSize reports the physical size of the primary surface.
	WindowSize func() (int, int)
	Verbose    bool
}

func (p PixelCameraPlugin) Build(w *ecs.World) *PixelZoomSystem {
	zoomSystem := NewPixelZoomSystem()
	zoomSystem.Verbose = p.Verbose
	w.AddSystemToStage(ecs.StagePreUpdate, NewSurfaceSystem(p.WindowSize))
	w.AddSystemToStage(ecs.StagePostUpdate, zoomSystem)
	return zoomSystem
}
