package zoom

import (
	"fmt"
	"image"
)

// Size is a width and height in pixels.
type Size struct {
	W, H int
}

func (s Size) Empty() bool {
	return s.W <= 0 || s.H <= 0
}

func (s Size) String() string {
	return fmt.Sprintf("%dx%d", s.W, s.H)
}

// Rect is an origin and size in physical pixels.
type Rect struct {
	X, Y int
	W, H int
}

// Full returns the rect covering the whole surface.
func Full(surface Size) Rect {
	return Rect{W: surface.W, H: surface.H}
}

func (r Rect) Size() Size {
	return Size{W: r.W, H: r.H}
}

// Clamp trims r so it lies within surface. Overflowing edges are cut off and
// the origin never goes below zero; a rect entirely outside the surface
// becomes empty.
func (r Rect) Clamp(surface Size) Rect {
	x0, y0 := max(r.X, 0), max(r.Y, 0)
	x1, y1 := min(r.X+r.W, surface.W), min(r.Y+r.H, surface.H)
	x0, y0 = min(x0, max(surface.W, 0)), min(y0, max(surface.H, 0))
	return Rect{X: x0, Y: y0, W: max(x1-x0, 0), H: max(y1-y0, 0)}
}

// Rectangle converts r for use with image sub-images.
func (r Rect) Rectangle() image.Rectangle {
	return image.Rect(r.X, r.Y, r.X+r.W, r.Y+r.H)
}

func (r Rect) String() string {
	return fmt.Sprintf("{%d,%d %dx%d}", r.X, r.Y, r.W, r.H)
}
