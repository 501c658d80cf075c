package system

import (
	"fmt"
	"log"

	"github.com/milk9111/pixelcam/ecs"
	"github.com/milk9111/pixelcam/ecs/component"
	"github.com/milk9111/pixelcam/zoom"
)

// PixelZoomSystem keeps every pixel camera's scale and viewport in step with
// its surface. It must run after surfaces are resized and camera transforms
// are moved for the frame, and before anything draws; PixelCameraPlugin
// registers it in StagePostUpdate for that reason.
//
// A camera is only rewritten when its surface size, zoom mode or viewport
// opt-in differ from the inputs of its last computation. Frames where the
// surface or target is empty leave the previous result in place.
type PixelZoomSystem struct {
	Verbose bool
}

func NewPixelZoomSystem() *PixelZoomSystem {
	return &PixelZoomSystem{}
}

func (s *PixelZoomSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	// A camera that lost its PixelZoom goes back to uninitialized, so adding
	// one again always recomputes.
	ecs.ForEach(w, component.PixelCameraStateComponent.Kind(), func(e ecs.Entity, _ *component.PixelCameraState) {
		if !ecs.Has(w, e, component.PixelZoomComponent.Kind()) {
			ecs.Remove(w, e, component.PixelCameraStateComponent.Kind())
		}
	})

	ecs.ForEach2(w, component.PixelZoomComponent.Kind(), component.CameraComponent.Kind(), func(e ecs.Entity, pz *component.PixelZoom, cam *component.Camera) {
		_, surface, ok := ResolveSurface(w, cam)
		if !ok {
			return
		}

		size := zoom.Size{W: surface.Width, H: surface.Height}
		optIn := ecs.Has(w, e, component.PixelViewportComponent.Kind())
		state, initialized := ecs.Get(w, e, component.PixelCameraStateComponent.Kind())
		if initialized && state.Surface == size && state.Mode == pz.Mode && state.ViewportOptIn == optIn {
			return
		}

		computed, ok := zoom.Compute(size, pz.Mode)
		if !ok {
			return
		}

		applied, err := ApplyPixelZoom(w, e, computed, size, optIn)
		if err != nil {
			log.Printf("pixel zoom: %v", err)
			return
		}

		if err := ecs.Add(w, e, component.PixelCameraStateComponent.Kind(), &component.PixelCameraState{
			Mode:          pz.Mode,
			ViewportOptIn: optIn,
			Surface:       size,
			Scale:         computed.Scale,
			Viewport:      computed.Viewport,
		}); err != nil {
			log.Printf("pixel zoom: camera %v: store state: %v", e, err)
			return
		}

		w.Events().Push(ecs.Event{Type: ecs.EventCameraRescaled, Data: ecs.CameraRescaled{
			Camera:   e,
			Mode:     pz.Mode,
			Surface:  size,
			Scale:    computed.Scale,
			Viewport: computed.Viewport,
			Clamped:  applied,
		}})

		if s.Verbose {
			log.Printf("pixel zoom: camera %v %v on %v -> scale %d viewport %v", e, pz.Mode, size, computed.Scale, applied)
		}
	})
}

// SetZoomMode replaces the zoom mode of camera e, adding PixelZoom if the
// camera has none. The zero Mode is rejected.
func SetZoomMode(w *ecs.World, e ecs.Entity, mode zoom.Mode) error {
	if !mode.Valid() {
		return fmt.Errorf("set zoom mode on %v: %w", e, zoom.ErrUnknownMode)
	}
	if pz, ok := ecs.Get(w, e, component.PixelZoomComponent.Kind()); ok {
		pz.Mode = mode
		return nil
	}
	if err := ecs.Add(w, e, component.PixelZoomComponent.Kind(), &component.PixelZoom{Mode: mode}); err != nil {
		return fmt.Errorf("set zoom mode on %v: %w", e, err)
	}
	return nil
}

// SetViewportOptIn adds or removes the PixelViewport marker on camera e.
func SetViewportOptIn(w *ecs.World, e ecs.Entity, on bool) error {
	if !on {
		ecs.Remove(w, e, component.PixelViewportComponent.Kind())
		return nil
	}
	if ecs.Has(w, e, component.PixelViewportComponent.Kind()) {
		return nil
	}
	if err := ecs.Add(w, e, component.PixelViewportComponent.Kind(), &component.PixelViewport{}); err != nil {
		return fmt.Errorf("set viewport opt-in on %v: %w", e, err)
	}
	return nil
}

// ToggleViewport flips the PixelViewport marker on camera e and reports
// whether it is now present.
func ToggleViewport(w *ecs.World, e ecs.Entity) bool {
	on := !ecs.Has(w, e, component.PixelViewportComponent.Kind())
	if err := SetViewportOptIn(w, e, on); err != nil {
		log.Printf("pixel zoom: %v", err)
		return !on
	}
	return on
}
