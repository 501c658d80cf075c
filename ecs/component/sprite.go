package component

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

// Sprite draws Image (or its Source region) at the entity's transform.
// Origin is in virtual pixels from the image's top-left corner.
type Sprite struct {
	Image      *ebiten.Image
	Source     image.Rectangle
	UseSource  bool
	OriginX    float64
	OriginY    float64
	FacingLeft bool
}

// Frame returns the image region to draw.
func (s *Sprite) Frame() *ebiten.Image {
	if s == nil || s.Image == nil {
		return nil
	}
	if s.UseSource {
		if sub, ok := s.Image.SubImage(s.Source).(*ebiten.Image); ok {
			return sub
		}
	}
	return s.Image
}

var SpriteComponent = NewComponent[Sprite]()
