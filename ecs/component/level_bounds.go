package component

// LevelBounds is the world area cameras may show, in world units from the
// origin. A following camera is kept inside it on each axis where its view
// is smaller than the bounds and centered on it otherwise.
type LevelBounds struct {
	Width  float64
	Height float64
}

var LevelBoundsComponent = NewComponent[LevelBounds]()
