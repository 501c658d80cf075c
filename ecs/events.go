package ecs

import "github.com/milk9111/pixelcam/zoom"

// Event is a generic ECS event payload.
type Event struct {
	Type string
	Data any
}

const EventCameraRescaled = "camera_rescaled"

// CameraRescaled is pushed when a pixel camera's scale or viewport is
// recomputed.
type CameraRescaled struct {
	Camera   Entity
	Mode     zoom.Mode
	Surface  zoom.Size
	Scale    int
	Viewport zoom.Rect
	// Clamped is the viewport actually applied, or the full surface when the
	// camera has not opted in to viewport management.
	Clamped zoom.Rect
}

// EventQueue is a simple FIFO queue. Undrained events are dropped at the end
// of each World.Update.
type EventQueue struct {
	items []Event
}

// Push adds an event.
func (q *EventQueue) Push(evt Event) {
	if q == nil {
		return
	}
	q.items = append(q.items, evt)
}

// Drain returns all events and clears the queue.
func (q *EventQueue) Drain() []Event {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}

// Len returns the number of queued events.
func (q *EventQueue) Len() int {
	if q == nil {
		return 0
	}
	return len(q.items)
}

func (q *EventQueue) flush() {
	if q == nil {
		return
	}
	q.items = nil
}
