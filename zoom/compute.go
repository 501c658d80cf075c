package zoom

// Computed is the result of fitting a mode into a surface.
type Computed struct {
	// Scale is the number of physical pixels per virtual pixel. Always >= 1.
	Scale int
	// Viewport is centered on the surface and not clamped to it. When the
	// surface is smaller than the target at scale 1, the origin is negative
	// and the size exceeds the surface.
	Viewport Rect
}

// Compute fits mode into surface. It returns false when the surface or the
// target is empty, in which case the caller keeps its previous result.
func Compute(surface Size, mode Mode) (Computed, bool) {
	if surface.Empty() {
		return Computed{}, false
	}

	var scale int
	size := surface
	switch mode.kind {
	case KindFixed:
		if mode.scale <= 0 {
			return Computed{}, false
		}
		scale = mode.scale
	case KindFitSize:
		if mode.width <= 0 || mode.height <= 0 {
			return Computed{}, false
		}
		scale = max(1, min(surface.W/mode.width, surface.H/mode.height))
		size = Size{W: mode.width * scale, H: mode.height * scale}
	case KindFitWidth:
		if mode.width <= 0 {
			return Computed{}, false
		}
		scale = max(1, surface.W/mode.width)
		size.W = mode.width * scale
	case KindFitHeight:
		if mode.height <= 0 {
			return Computed{}, false
		}
		scale = max(1, surface.H/mode.height)
		size.H = mode.height * scale
	default:
		return Computed{}, false
	}

	return Computed{
		Scale: scale,
		Viewport: Rect{
			X: floorDiv(surface.W-size.W, 2),
			Y: floorDiv(surface.H-size.H, 2),
			W: size.W,
			H: size.H,
		},
	}, true
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
