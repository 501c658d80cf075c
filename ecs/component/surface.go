package component

import "github.com/hajimehoshi/ebiten/v2"

// Surface is a render target with a physical pixel size. The window surface
// has no Image until draw time; offscreen surfaces own theirs.
type Surface struct {
	Width  int
	Height int
	Image  *ebiten.Image
}

var SurfaceComponent = NewComponent[Surface]()
