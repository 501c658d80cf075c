package system

import (
	"github.com/milk9111/pixelcam/ecs"
	"github.com/milk9111/pixelcam/ecs/component"
)

// SurfaceSystem copies the host window size onto the primary surface and
// offscreen image sizes onto their surfaces. Sizes are only written when
// they change.
type SurfaceSystem struct {
	size func() (int, int)
}

// NewSurfaceSystem reads the window size from size each frame. A nil size
// leaves the primary surface untouched.
func NewSurfaceSystem(size func() (int, int)) *SurfaceSystem {
	return &SurfaceSystem{size: size}
}

func (s *SurfaceSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach(w, component.SurfaceComponent.Kind(), func(e ecs.Entity, surface *component.Surface) {
		width, height := surface.Width, surface.Height
		switch {
		case ecs.Has(w, e, component.PrimarySurfaceComponent.Kind()):
			if s.size == nil {
				return
			}
			width, height = s.size()
		case surface.Image != nil:
			b := surface.Image.Bounds()
			width, height = b.Dx(), b.Dy()
		}
		width, height = max(width, 0), max(height, 0)
		if width == surface.Width && height == surface.Height {
			return
		}
		surface.Width = width
		surface.Height = height
	})
}
