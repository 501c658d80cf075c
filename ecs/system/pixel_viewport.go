package system

import (
	"errors"
	"fmt"
	"math"

	"github.com/milk9111/pixelcam/ecs"
	"github.com/milk9111/pixelcam/ecs/component"
	"github.com/milk9111/pixelcam/zoom"
)

var ErrNoCamera = errors.New("system: entity has no camera")

// ApplyPixelZoom writes a zoom computation onto a camera entity. The camera's
// projection scale is always set. With optIn the viewport is the computed
// rect clamped to the surface; without it the Viewport component is removed
// so the camera covers the whole surface. It returns the rect the camera
// now draws to.
func ApplyPixelZoom(w *ecs.World, e ecs.Entity, computed zoom.Computed, surface zoom.Size, optIn bool) (zoom.Rect, error) {
	cam, ok := ecs.Get(w, e, component.CameraComponent.Kind())
	if !ok {
		return zoom.Rect{}, fmt.Errorf("apply pixel zoom to %v: %w", e, ErrNoCamera)
	}
	cam.Scale = float64(computed.Scale)

	if !optIn {
		ecs.Remove(w, e, component.ViewportComponent.Kind())
		return zoom.Full(surface), nil
	}

	rect := computed.Viewport.Clamp(surface)
	if err := ecs.Add(w, e, component.ViewportComponent.Kind(), &component.Viewport{Rect: rect}); err != nil {
		return zoom.Rect{}, fmt.Errorf("apply pixel zoom to %v: set viewport: %w", e, err)
	}
	return rect, nil
}

// ResolveSurface returns the surface a camera draws to: its Target when set,
// otherwise the primary surface.
func ResolveSurface(w *ecs.World, cam *component.Camera) (ecs.Entity, *component.Surface, bool) {
	if cam == nil {
		return 0, nil, false
	}
	target := ecs.Entity(cam.Target)
	if !target.Valid() {
		primary, ok := w.First(component.PrimarySurfaceComponent.Kind())
		if !ok {
			return 0, nil, false
		}
		target = primary
	}
	surface, ok := ecs.Get(w, target, component.SurfaceComponent.Kind())
	if !ok {
		return 0, nil, false
	}
	return target, surface, true
}

// View maps between world coordinates and physical surface pixels for one
// camera.
type View struct {
	// X and Y are the world point at the center of the viewport.
	X, Y     float64
	Scale    float64
	Surface  zoom.Size
	Viewport zoom.Rect
}

// CameraView builds the view of camera e for the current frame.
func CameraView(w *ecs.World, e ecs.Entity) (View, bool) {
	cam, ok := ecs.Get(w, e, component.CameraComponent.Kind())
	if !ok {
		return View{}, false
	}
	_, surface, ok := ResolveSurface(w, cam)
	if !ok {
		return View{}, false
	}

	size := zoom.Size{W: surface.Width, H: surface.Height}
	v := View{Scale: cam.Scale, Surface: size, Viewport: zoom.Full(size)}
	if v.Scale <= 0 {
		v.Scale = 1
	}
	if vp, ok := ecs.Get(w, e, component.ViewportComponent.Kind()); ok {
		v.Viewport = vp.Rect
	}
	if t, ok := ecs.Get(w, e, component.TransformComponent.Kind()); ok {
		v.X, v.Y = t.X, t.Y
	}
	return v, true
}

// center is kept on whole pixels so virtual pixels stay on the physical grid
// for odd viewport sizes.
func (v View) center() (float64, float64) {
	return float64(v.Viewport.X + v.Viewport.W/2), float64(v.Viewport.Y + v.Viewport.H/2)
}

func (v View) WorldToScreen(wx, wy float64) (float64, float64) {
	cx, cy := v.center()
	return cx + (wx-v.X)*v.Scale, cy + (wy-v.Y)*v.Scale
}

func (v View) ScreenToWorld(sx, sy float64) (float64, float64) {
	cx, cy := v.center()
	return v.X + (sx-cx)/v.Scale, v.Y + (sy-cy)/v.Scale
}

// HalfExtents returns half the visible area in world units.
func (v View) HalfExtents() (float64, float64) {
	return float64(v.Viewport.W) / (2 * v.Scale), float64(v.Viewport.H) / (2 * v.Scale)
}

// Contains reports whether a physical pixel lies inside the viewport.
func (v View) Contains(sx, sy float64) bool {
	x, y := int(math.Floor(sx)), int(math.Floor(sy))
	r := v.Viewport
	return x >= r.X && y >= r.Y && x < r.X+r.W && y < r.Y+r.H
}
