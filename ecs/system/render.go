package system

import (
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/pixelcam/ecs"
	"github.com/milk9111/pixelcam/ecs/component"
)

// RenderSystem draws sprites through every camera into the camera's
// viewport on its surface. The primary surface draws to the screen passed to
// Draw; offscreen surfaces draw to their own image.
type RenderSystem struct{}

func NewRenderSystem() *RenderSystem {
	return &RenderSystem{}
}

func (r *RenderSystem) Update(w *ecs.World) {}

func (r *RenderSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	if r == nil || w == nil {
		return
	}

	cameras := w.Query(component.CameraComponent.Kind())
	sort.SliceStable(cameras, func(i, j int) bool {
		oi, oj := 0, 0
		if c, ok := ecs.Get(w, cameras[i], component.CameraComponent.Kind()); ok {
			oi = c.Order
		}
		if c, ok := ecs.Get(w, cameras[j], component.CameraComponent.Kind()); ok {
			oj = c.Order
		}
		if oi != oj {
			return oi < oj
		}
		return uint64(cameras[i]) < uint64(cameras[j])
	})

	entities := w.Query(component.TransformComponent.Kind(), component.SpriteComponent.Kind())
	sort.SliceStable(entities, func(i, j int) bool {
		li := 0
		if layer, ok := ecs.Get(w, entities[i], component.RenderLayerComponent.Kind()); ok {
			li = layer.Index
		}
		lj := 0
		if layer, ok := ecs.Get(w, entities[j], component.RenderLayerComponent.Kind()); ok {
			lj = layer.Index
		}
		if li != lj {
			return li < lj
		}
		return uint64(entities[i]) < uint64(entities[j])
	})

	// offscreen images are cleared once per frame, before their first camera
	cleared := make(map[ecs.Entity]bool)
	for _, camEntity := range cameras {
		cam, _ := ecs.Get(w, camEntity, component.CameraComponent.Kind())
		surfaceEntity, surface, ok := ResolveSurface(w, cam)
		if !ok {
			continue
		}
		target := surface.Image
		if ecs.Has(w, surfaceEntity, component.PrimarySurfaceComponent.Kind()) {
			target = screen
		} else if target != nil && !cleared[surfaceEntity] {
			target.Clear()
			cleared[surfaceEntity] = true
		}
		if target == nil {
			continue
		}

		view, ok := CameraView(w, camEntity)
		if !ok || view.Viewport.W <= 0 || view.Viewport.H <= 0 {
			continue
		}
		dst, ok := target.SubImage(view.Viewport.Rectangle()).(*ebiten.Image)
		if !ok {
			continue
		}
		if cam.ClearColor != nil {
			dst.Fill(cam.ClearColor)
		}

		for _, e := range entities {
			if ecs.Has(w, e, component.CameraComponent.Kind()) {
				continue
			}
			drawSprite(w, e, view, dst)
		}
	}
}

func drawSprite(w *ecs.World, e ecs.Entity, view View, dst *ebiten.Image) {
	t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok {
		return
	}
	s, ok := ecs.Get(w, e, component.SpriteComponent.Kind())
	if !ok {
		return
	}
	img := s.Frame()
	if img == nil {
		return
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-s.OriginX, -s.OriginY)

	sx := t.ScaleX
	if sx == 0 {
		sx = 1
	}
	if s.FacingLeft {
		sx = -sx
		op.GeoM.Translate(float64(-img.Bounds().Dx()), 0)
	}
	sy := t.ScaleY
	if sy == 0 {
		sy = 1
	}

	op.GeoM.Scale(sx, sy)
	op.GeoM.Rotate(t.Rotation)
	op.GeoM.Scale(view.Scale, view.Scale)
	x, y := view.WorldToScreen(t.X, t.Y)
	op.GeoM.Translate(x, y)
	op.Filter = ebiten.FilterNearest

	dst.DrawImage(img, op)
}
