package entity

import (
	"fmt"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/pixelcam/ecs"
	"github.com/milk9111/pixelcam/ecs/component"
	"github.com/milk9111/pixelcam/prefabs"
	"golang.org/x/image/colornames"
)

const playerSpeed = 1.5

// NewScene builds the sprites listed in spec. Sprite images are generated:
// a solid block in Color with an Accent band that moves from frame to frame
// for animated sprites.
func NewScene(w *ecs.World, spec *prefabs.SceneSpec) ([]ecs.Entity, error) {
	if spec == nil {
		return nil, fmt.Errorf("scene: nil spec")
	}
	out := make([]ecs.Entity, 0, len(spec.Sprites)+1)
	if spec.Bounds.Width > 0 && spec.Bounds.Height > 0 {
		bounds := ecs.CreateEntity(w)
		if err := ecs.Add(w, bounds, component.LevelBoundsComponent.Kind(), &component.LevelBounds{
			Width:  spec.Bounds.Width,
			Height: spec.Bounds.Height,
		}); err != nil {
			return nil, fmt.Errorf("scene %q: add bounds: %w", spec.Name, err)
		}
		out = append(out, bounds)
	}
	for _, s := range spec.Sprites {
		e, err := newSceneSprite(w, s)
		if err != nil {
			return nil, fmt.Errorf("scene %q: sprite %q: %w", spec.Name, s.Name, err)
		}
		out = append(out, e)
	}
	return out, nil
}

func newSceneSprite(w *ecs.World, s prefabs.SceneSpriteSpec) (ecs.Entity, error) {
	frames := max(s.Frames, 1)
	sheet := generateSheet(s, frames)

	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.NameComponent.Kind(), &component.Name{Value: s.Name}); err != nil {
		return 0, err
	}
	scaleX, scaleY := s.Transform.ScaleX, s.Transform.ScaleY
	if scaleX == 0 {
		scaleX = 1
	}
	if scaleY == 0 {
		scaleY = 1
	}
	if err := ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{
		X:        s.Transform.X,
		Y:        s.Transform.Y,
		ScaleX:   scaleX,
		ScaleY:   scaleY,
		Rotation: s.Transform.Rotation,
	}); err != nil {
		return 0, err
	}
	if err := ecs.Add(w, e, component.SpriteComponent.Kind(), &component.Sprite{
		Image:     sheet,
		Source:    image.Rect(0, 0, s.Width, s.Height),
		UseSource: true,
	}); err != nil {
		return 0, err
	}
	if err := ecs.Add(w, e, component.RenderLayerComponent.Kind(), &component.RenderLayer{Index: s.RenderLayer.Index}); err != nil {
		return 0, err
	}

	if frames > 1 {
		if err := ecs.Add(w, e, component.AnimationComponent.Kind(), &component.Animation{
			Sheet: sheet,
			Defs: map[string]component.AnimationDef{
				"idle": {Name: "idle", FrameCount: frames, FrameW: s.Width, FrameH: s.Height, FPS: s.FPS, Loop: true},
			},
			Current: "idle",
			Playing: true,
		}); err != nil {
			return 0, err
		}
	}

	if s.Player {
		if err := ecs.Add(w, e, component.PlayerTagComponent.Kind(), &component.PlayerTag{}); err != nil {
			return 0, err
		}
		if err := ecs.Add(w, e, component.InputComponent.Kind(), &component.Input{}); err != nil {
			return 0, err
		}
		if err := ecs.Add(w, e, component.MoverComponent.Kind(), &component.Mover{Speed: playerSpeed}); err != nil {
			return 0, err
		}
	}
	return e, nil
}

func generateSheet(s prefabs.SceneSpriteSpec, frames int) *ebiten.Image {
	var fill, accent color.Color = colornames.Lightgray, colornames.Dimgray
	if s.Color != nil {
		fill = s.Color.Color
	}
	if s.Accent != nil {
		accent = s.Accent.Color
	}

	rgba := image.NewRGBA(image.Rect(0, 0, s.Width*frames, s.Height))
	band := max(s.Height/4, 1)
	for f := 0; f < frames; f++ {
		x0 := f * s.Width
		for y := 0; y < s.Height; y++ {
			for x := 0; x < s.Width; x++ {
				rgba.Set(x0+x, y, fill)
			}
		}
		if s.Accent == nil && frames == 1 {
			continue
		}
		// the band sweeps down and back up over the animation
		pos := f
		if half := frames / 2; frames > 1 && f > half {
			pos = frames - f
		}
		y0 := min(pos*band, s.Height-band)
		for y := y0; y < y0+band; y++ {
			for x := 0; x < s.Width; x++ {
				rgba.Set(x0+x, y, accent)
			}
		}
	}
	return ebiten.NewImageFromImage(rgba)
}
