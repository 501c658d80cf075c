package entity

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/pixelcam/ecs"
	"github.com/milk9111/pixelcam/ecs/component"
)

// NewWindowSurface creates the primary surface. Its size is filled in by the
// surface system from the host window.
func NewWindowSurface(w *ecs.World) (ecs.Entity, error) {
	surface := ecs.CreateEntity(w)
	if err := ecs.Add(w, surface, component.SurfaceComponent.Kind(), &component.Surface{}); err != nil {
		return 0, fmt.Errorf("surface: add surface: %w", err)
	}
	if err := ecs.Add(w, surface, component.PrimarySurfaceComponent.Kind(), &component.PrimarySurface{}); err != nil {
		return 0, fmt.Errorf("surface: add primary tag: %w", err)
	}
	return surface, nil
}

// NewImageSurface creates an offscreen surface backed by img.
func NewImageSurface(w *ecs.World, img *ebiten.Image) (ecs.Entity, error) {
	if img == nil {
		return 0, fmt.Errorf("surface: nil image")
	}
	b := img.Bounds()
	surface := ecs.CreateEntity(w)
	if err := ecs.Add(w, surface, component.SurfaceComponent.Kind(), &component.Surface{
		Width:  b.Dx(),
		Height: b.Dy(),
		Image:  img,
	}); err != nil {
		return 0, fmt.Errorf("surface: add surface: %w", err)
	}
	return surface, nil
}
