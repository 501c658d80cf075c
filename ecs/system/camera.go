package system

import (
	"math"

	"github.com/milk9111/pixelcam/ecs"
	"github.com/milk9111/pixelcam/ecs/component"
)

// CameraSystem moves following cameras toward their target's visual center.
type CameraSystem struct{}

func NewCameraSystem() *CameraSystem {
	return &CameraSystem{}
}

func (cs *CameraSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach2(w, component.CameraFollowComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, follow *component.CameraFollow, camTransform *component.Transform) {
		target := findEntityByNameOrTag(w, follow.TargetName)
		if !target.Valid() || target == e {
			return
		}
		cx, cy, ok := visualCenter(w, target)
		if !ok {
			return
		}

		smooth := follow.Smoothness
		if smooth <= 0 || smooth > 1 {
			smooth = 1
		}
		camTransform.X += (cx - camTransform.X) * smooth
		camTransform.Y += (cy - camTransform.Y) * smooth
		clampToLevelBounds(w, e, camTransform)

		if !follow.SnapToPixel {
			return
		}
		scale := 1.0
		if cam, ok := ecs.Get(w, e, component.CameraComponent.Kind()); ok && cam.Scale > 0 {
			scale = cam.Scale
		}
		camTransform.X = math.Round(camTransform.X*scale) / scale
		camTransform.Y = math.Round(camTransform.Y*scale) / scale
	})
}

// clampToLevelBounds keeps the camera's visible area inside the level. The
// visible area comes from the zoom result of the previous frame.
func clampToLevelBounds(w *ecs.World, e ecs.Entity, t *component.Transform) {
	boundsEntity, ok := w.First(component.LevelBoundsComponent.Kind())
	if !ok {
		return
	}
	bounds, ok := ecs.Get(w, boundsEntity, component.LevelBoundsComponent.Kind())
	if !ok || bounds.Width <= 0 || bounds.Height <= 0 {
		return
	}
	view, ok := CameraView(w, e)
	if !ok {
		return
	}
	hw, hh := view.HalfExtents()
	t.X = clampAxis(t.X, hw, bounds.Width)
	t.Y = clampAxis(t.Y, hh, bounds.Height)
}

func clampAxis(v, half, size float64) float64 {
	if 2*half >= size {
		return size / 2
	}
	return math.Min(math.Max(v, half), size-half)
}

// visualCenter returns the center of an entity's sprite in world units, or
// its position when it has no sprite.
func visualCenter(w *ecs.World, e ecs.Entity) (float64, float64, bool) {
	t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok {
		return 0, 0, false
	}
	sprite, ok := ecs.Get(w, e, component.SpriteComponent.Kind())
	if !ok {
		return t.X, t.Y, true
	}

	imgW, imgH := 0.0, 0.0
	if frame := sprite.Frame(); frame != nil {
		imgW = float64(frame.Bounds().Dx())
		imgH = float64(frame.Bounds().Dy())
	} else if sprite.UseSource {
		imgW = float64(sprite.Source.Dx())
		imgH = float64(sprite.Source.Dy())
	}

	scaleX := t.ScaleX
	if scaleX == 0 {
		scaleX = 1
	}
	scaleY := t.ScaleY
	if scaleY == 0 {
		scaleY = 1
	}
	return t.X - sprite.OriginX*scaleX + (imgW*scaleX)/2, t.Y - sprite.OriginY*scaleY + (imgH*scaleY)/2, true
}

func findEntityByNameOrTag(w *ecs.World, name string) ecs.Entity {
	if name == "" {
		return 0
	}
	if name == "player" {
		if e, ok := w.First(component.PlayerTagComponent.Kind()); ok {
			return e
		}
	}
	var found ecs.Entity
	ecs.ForEach(w, component.NameComponent.Kind(), func(e ecs.Entity, n *component.Name) {
		if !found.Valid() && n.Value == name {
			found = e
		}
	})
	return found
}
