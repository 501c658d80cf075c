package entity

import (
	"fmt"

	"github.com/milk9111/pixelcam/ecs"
	"github.com/milk9111/pixelcam/ecs/component"
	"github.com/milk9111/pixelcam/ecs/system"
	"github.com/milk9111/pixelcam/prefabs"
	"github.com/milk9111/pixelcam/zoom"
)

// NewPixelCamera builds a camera from spec that draws to surface (zero for
// the primary surface). On error nothing is left in the world.
func NewPixelCamera(w *ecs.World, spec *prefabs.CameraSpec, surface ecs.Entity) (ecs.Entity, error) {
	if spec == nil {
		return 0, fmt.Errorf("camera: nil spec")
	}

	camera := ecs.CreateEntity(w)
	if err := buildPixelCamera(w, camera, spec, surface); err != nil {
		ecs.DestroyEntity(w, camera)
		return 0, err
	}
	return camera, nil
}

func buildPixelCamera(w *ecs.World, camera ecs.Entity, spec *prefabs.CameraSpec, surface ecs.Entity) error {
	if err := ecs.Add(w, camera, component.CameraTagComponent.Kind(), &component.CameraTag{}); err != nil {
		return fmt.Errorf("camera: add camera tag: %w", err)
	}
	if err := ecs.Add(w, camera, component.NameComponent.Kind(), &component.Name{Value: spec.Name}); err != nil {
		return fmt.Errorf("camera: add name: %w", err)
	}

	if err := ecs.Add(w, camera, component.TransformComponent.Kind(), &component.Transform{
		X:        spec.Transform.X,
		Y:        spec.Transform.Y,
		ScaleX:   1,
		ScaleY:   1,
		Rotation: spec.Transform.Rotation,
	}); err != nil {
		return fmt.Errorf("camera: add transform: %w", err)
	}

	if err := ecs.Add(w, camera, component.CameraComponent.Kind(), &component.Camera{
		Target: uint64(surface),
		Scale:  1,
	}); err != nil {
		return fmt.Errorf("camera: add camera component: %w", err)
	}

	return ApplyCameraSpec(w, camera, spec)
}

// ApplyCameraSpec updates an existing camera from spec: zoom mode, viewport
// opt-in, draw order, clear color and follow target. Position and render
// target are left alone so a reloaded spec does not snap the camera.
func ApplyCameraSpec(w *ecs.World, camera ecs.Entity, spec *prefabs.CameraSpec) error {
	if spec == nil {
		return fmt.Errorf("camera: nil spec")
	}
	mode, err := spec.Zoom.Mode()
	if err != nil {
		return fmt.Errorf("camera %q: %w", spec.Name, err)
	}

	cam, ok := ecs.Get(w, camera, component.CameraComponent.Kind())
	if !ok {
		return fmt.Errorf("camera %q: %w", spec.Name, system.ErrNoCamera)
	}
	cam.Order = spec.Order
	cam.ClearColor = nil
	if spec.Clear != nil {
		cam.ClearColor = spec.Clear.Color
	}

	if err := system.SetZoomMode(w, camera, mode); err != nil {
		return fmt.Errorf("camera %q: %w", spec.Name, err)
	}
	if ctrl, ok := ecs.Get(w, camera, component.ZoomControlComponent.Kind()); ok {
		ctrl.Reset(mode)
	}
	if err := system.SetViewportOptIn(w, camera, spec.Viewport); err != nil {
		return fmt.Errorf("camera %q: %w", spec.Name, err)
	}

	if spec.Target == "" {
		ecs.Remove(w, camera, component.CameraFollowComponent.Kind())
		return nil
	}
	if err := ecs.Add(w, camera, component.CameraFollowComponent.Kind(), &component.CameraFollow{
		TargetName:  spec.Target,
		Smoothness:  spec.Smoothness,
		SnapToPixel: spec.SnapToPixel,
	}); err != nil {
		return fmt.Errorf("camera %q: add follow: %w", spec.Name, err)
	}
	return nil
}

// AddZoomControl lets input cycle camera through its configured mode and
// defaults.
func AddZoomControl(w *ecs.World, camera ecs.Entity, defaults []zoom.Mode) error {
	pz, ok := ecs.Get(w, camera, component.PixelZoomComponent.Kind())
	if !ok {
		return fmt.Errorf("camera %v: add zoom control: no zoom mode", camera)
	}
	ctrl := &component.ZoomControl{Defaults: defaults}
	ctrl.Reset(pz.Mode)
	if err := ecs.Add(w, camera, component.ZoomControlComponent.Kind(), ctrl); err != nil {
		return fmt.Errorf("camera %v: add zoom control: %w", camera, err)
	}
	if ecs.Has(w, camera, component.InputComponent.Kind()) {
		return nil
	}
	if err := ecs.Add(w, camera, component.InputComponent.Kind(), &component.Input{}); err != nil {
		return fmt.Errorf("camera %v: add input: %w", camera, err)
	}
	return nil
}
