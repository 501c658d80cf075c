package system

import (
	"math"

	"github.com/milk9111/pixelcam/ecs"
	"github.com/milk9111/pixelcam/ecs/component"
)

// MovementSystem moves entities with a Mover by their input. Positions stay
// on whole virtual pixels so sprites land on the physical pixel grid at
// every integer scale.
type MovementSystem struct{}

func NewMovementSystem() *MovementSystem {
	return &MovementSystem{}
}

func (m *MovementSystem) Update(w *ecs.World) {
	ecs.ForEach3(w, component.MoverComponent.Kind(), component.InputComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, mover *component.Mover, input *component.Input, t *component.Transform) {
		t.X += wholeStep(&mover.RemX, input.MoveX*mover.Speed)
		t.Y += wholeStep(&mover.RemY, input.MoveY*mover.Speed)
		if input.MoveX != 0 {
			if s, ok := ecs.Get(w, e, component.SpriteComponent.Kind()); ok {
				s.FacingLeft = input.MoveX < 0
			}
		}
	})
}

func wholeStep(rem *float64, delta float64) float64 {
	*rem += delta
	step := math.Trunc(*rem)
	*rem -= step
	return step
}
