package component

type PlayerTag struct{}

var PlayerTagComponent = NewComponent[PlayerTag]()

type CameraTag struct{}

var CameraTagComponent = NewComponent[CameraTag]()

// PrimarySurface marks the window surface.
type PrimarySurface struct{}

var PrimarySurfaceComponent = NewComponent[PrimarySurface]()

// Name labels an entity for lookup by prefabs and follow targets.
type Name struct {
	Value string
}

var NameComponent = NewComponent[Name]()
