package system

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/pixelcam/ecs"
	"github.com/milk9111/pixelcam/ecs/component"
)

type AnimationSystem struct{}

func NewAnimationSystem() *AnimationSystem {
	return &AnimationSystem{}
}

func (a *AnimationSystem) Update(w *ecs.World) {
	ecs.ForEach2(w, component.AnimationComponent.Kind(), component.SpriteComponent.Kind(), func(e ecs.Entity, anim *component.Animation, sprite *component.Sprite) {
		if !anim.Playing {
			return
		}

		def, ok := anim.Defs[anim.Current]
		if !ok || def.FrameCount <= 0 {
			return
		}

		ticksPerFrame := 1
		if def.FPS > 0 {
			ticksPerFrame = max(int(float64(ebiten.TPS())/def.FPS), 1)
		}

		anim.FrameTimer++
		if anim.FrameTimer >= ticksPerFrame {
			anim.FrameTimer = 0
			anim.Frame++
			if anim.Frame >= def.FrameCount {
				if def.Loop {
					anim.Frame = 0
				} else {
					anim.Frame = def.FrameCount - 1
					anim.Playing = false
				}
			}
		}

		x := def.ColStart*def.FrameW + anim.Frame*def.FrameW
		y := def.Row * def.FrameH
		if anim.Sheet != nil {
			sprite.Image = anim.Sheet
		}
		sprite.Source = image.Rect(x, y, x+def.FrameW, y+def.FrameH)
		sprite.UseSource = true
	})
}
