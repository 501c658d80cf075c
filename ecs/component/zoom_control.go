package component

import "github.com/milk9111/pixelcam/zoom"

// ZoomControl lets input switch a pixel camera between preset modes and
// toggle its viewport opt-in. Presets starts with the camera's configured
// mode followed by Defaults, without duplicates.
type ZoomControl struct {
	Defaults []zoom.Mode
	Presets  []zoom.Mode
	Current  int
}

// Reset rebuilds Presets around initial and selects it.
func (c *ZoomControl) Reset(initial zoom.Mode) {
	presets := []zoom.Mode{initial}
	for _, m := range c.Defaults {
		if m != initial {
			presets = append(presets, m)
		}
	}
	c.Presets = presets
	c.Current = 0
}

var ZoomControlComponent = NewComponent[ZoomControl]()
