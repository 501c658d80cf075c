package system

import (
	"log"

	"github.com/milk9111/pixelcam/ecs"
	"github.com/milk9111/pixelcam/ecs/component"
)

// ZoomControlSystem applies zoom input to cameras: a preset number selects
// that preset (-1 cycles to the next), and the viewport toggle adds or removes
// PixelViewport. The pixel zoom system picks both changes up in the same
// frame.
type ZoomControlSystem struct{}

func NewZoomControlSystem() *ZoomControlSystem {
	return &ZoomControlSystem{}
}

func (z *ZoomControlSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach2(w, component.ZoomControlComponent.Kind(), component.InputComponent.Kind(), func(e ecs.Entity, ctrl *component.ZoomControl, input *component.Input) {
		if input.ToggleViewportPressed {
			ToggleViewport(w, e)
		}

		if input.PresetPressed == 0 || len(ctrl.Presets) == 0 {
			return
		}
		next := input.PresetPressed - 1
		if input.PresetPressed < 0 {
			next = (ctrl.Current + 1) % len(ctrl.Presets)
		}
		if next >= len(ctrl.Presets) {
			return
		}
		ctrl.Current = next
		if err := SetZoomMode(w, e, ctrl.Presets[next]); err != nil {
			log.Printf("zoom control: %v", err)
		}
	})
}
