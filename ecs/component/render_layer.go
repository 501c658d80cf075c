package component

// RenderLayer sorts sprites within a camera; lower indexes draw first.
type RenderLayer struct {
	Index int
}

var RenderLayerComponent = NewComponent[RenderLayer]()
