package system

import (
	"testing"

	"github.com/milk9111/pixelcam/ecs"
	"github.com/milk9111/pixelcam/ecs/component"
)

func TestMovementSystem(t *testing.T) {
	w := ecs.NewWorld()
	e := ecs.CreateEntity(w)
	tr := &component.Transform{X: 10, Y: 10}
	input := &component.Input{MoveX: -1, MoveY: 0.5}
	sprite := &component.Sprite{}
	if err := ecs.Add(w, e, component.TransformComponent.Kind(), tr); err != nil {
		t.Fatal(err)
	}
	if err := ecs.Add(w, e, component.InputComponent.Kind(), input); err != nil {
		t.Fatal(err)
	}
	if err := ecs.Add(w, e, component.MoverComponent.Kind(), &component.Mover{Speed: 2}); err != nil {
		t.Fatal(err)
	}
	if err := ecs.Add(w, e, component.SpriteComponent.Kind(), sprite); err != nil {
		t.Fatal(err)
	}

	NewMovementSystem().Update(w)
	if tr.X != 8 || tr.Y != 11 {
		t.Fatalf("expected 8,11, got %v,%v", tr.X, tr.Y)
	}
	if !sprite.FacingLeft {
		t.Fatal("expected sprite to face left")
	}

	input.MoveX, input.MoveY = 0, 0
	NewMovementSystem().Update(w)
	if tr.X != 8 || tr.Y != 11 || !sprite.FacingLeft {
		t.Fatalf("expected no change without input, got %v,%v left=%v", tr.X, tr.Y, sprite.FacingLeft)
	}
}

func TestMovementSystemKeepsWholePixels(t *testing.T) {
	cases := []struct {
		name  string
		speed float64
		moveX float64
		want  []float64
	}{
		{"fractional_speed", 1.5, 1, []float64{11, 13, 14, 16}},
		{"fractional_speed_left", 1.5, -1, []float64{9, 7, 6, 4}},
		{"slow_stick", 1, 0.3, []float64{10, 10, 10, 11}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := ecs.NewWorld()
			e := ecs.CreateEntity(w)
			tr := &component.Transform{X: 10, Y: 10}
			if err := ecs.Add(w, e, component.TransformComponent.Kind(), tr); err != nil {
				t.Fatal(err)
			}
			if err := ecs.Add(w, e, component.InputComponent.Kind(), &component.Input{MoveX: c.moveX}); err != nil {
				t.Fatal(err)
			}
			if err := ecs.Add(w, e, component.MoverComponent.Kind(), &component.Mover{Speed: c.speed}); err != nil {
				t.Fatal(err)
			}

			sys := NewMovementSystem()
			for i, want := range c.want {
				sys.Update(w)
				if tr.X != want || tr.Y != 10 {
					t.Fatalf("tick %d: expected %v,10, got %v,%v", i, want, tr.X, tr.Y)
				}
			}
		})
	}
}

func TestAnimationSystemAdvancesFrames(t *testing.T) {
	w := ecs.NewWorld()
	e := ecs.CreateEntity(w)
	anim := &component.Animation{
		Defs: map[string]component.AnimationDef{
			"idle": {Name: "idle", FrameCount: 2, FrameW: 16, FrameH: 16, Loop: true},
		},
		Current: "idle",
		Playing: true,
	}
	sprite := &component.Sprite{}
	if err := ecs.Add(w, e, component.AnimationComponent.Kind(), anim); err != nil {
		t.Fatal(err)
	}
	if err := ecs.Add(w, e, component.SpriteComponent.Kind(), sprite); err != nil {
		t.Fatal(err)
	}

	sys := NewAnimationSystem()
	wantX := []int{16, 0, 16}
	for i, x := range wantX {
		sys.Update(w)
		if !sprite.UseSource || sprite.Source.Min.X != x || sprite.Source.Dx() != 16 {
			t.Fatalf("tick %d: expected frame at x=%d, got %v", i, x, sprite.Source)
		}
	}
}
