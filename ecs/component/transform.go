package component

// Transform positions an entity in world units. One world unit is one
// virtual pixel. For cameras, X and Y are the world point at the center of
// the view.
type Transform struct {
	X        float64
	Y        float64
	ScaleX   float64
	ScaleY   float64
	Rotation float64
}

var TransformComponent = NewComponent[Transform]()
