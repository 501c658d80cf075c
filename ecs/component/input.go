package component

// Input stores per-frame input state for an entity. The *Pressed fields are
// only true on the frame the key went down.
type Input struct {
	MoveX float64
	MoveY float64

	ToggleViewportPressed bool
	// PresetPressed is the 1-based zoom preset picked this frame, or 0.
	PresetPressed int
}

var InputComponent = NewComponent[Input]()

// Mover moves an entity's transform by its input each tick, in world units.
// The transform only ever moves by whole units; the fraction left over is
// carried in RemX and RemY to the next tick.
type Mover struct {
	Speed float64
	RemX  float64
	RemY  float64
}

var MoverComponent = NewComponent[Mover]()
