package ecs

import "github.com/milk9111/pixelcam/ecs/component"

// System updates a world each frame.
type System interface {
	Update(w *World)
}

// Kind is implemented by every component.ComponentKind and lets untyped
// queries accept kinds of different component types.
type Kind interface {
	ID() component.ComponentID
	Valid() bool
}

// World owns entities, components, and system order.
type World struct {
	entities  entityStore
	stores    map[component.ComponentID]*SparseSet
	scheduler Scheduler
	events    EventQueue
}

// NewWorld creates an empty ECS world.
func NewWorld() *World {
	return &World{stores: make(map[component.ComponentID]*SparseSet)}
}

// CreateEntity allocates a new entity.
func (w *World) CreateEntity() Entity {
	return w.entities.create()
}

// DestroyEntity drops an entity and every component attached to it.
func (w *World) DestroyEntity(e Entity) bool {
	if w == nil || !w.entities.isAlive(e) {
		return false
	}
	for _, set := range w.stores {
		set.Remove(e)
	}
	return w.entities.destroy(e)
}

// IsAlive reports whether an entity handle is valid.
func (w *World) IsAlive(e Entity) bool {
	if w == nil {
		return false
	}
	return w.entities.isAlive(e)
}

// AddSystem appends a system to the update stage.
func (w *World) AddSystem(s System) {
	w.AddSystemToStage(StageUpdate, s)
}

// AddSystemToStage appends a system to the given stage.
func (w *World) AddSystemToStage(stage Stage, s System) {
	if w == nil || s == nil {
		return
	}
	w.scheduler.AddToStage(stage, s)
}

// Systems returns every registered system in run order.
func (w *World) Systems() []System {
	if w == nil {
		return nil
	}
	return w.scheduler.Systems()
}

// Update runs all systems once, stage by stage, then drops undrained events.
func (w *World) Update() {
	if w == nil {
		return
	}
	w.scheduler.Update(w)
	w.events.flush()
}

// Events returns the world event queue.
func (w *World) Events() *EventQueue {
	if w == nil {
		return nil
	}
	return &w.events
}

// First returns the first live entity that has kind.
func (w *World) First(kind Kind) (Entity, bool) {
	set := w.store(kind, false)
	for _, e := range set.Entities() {
		if w.entities.isAlive(e) {
			return e, true
		}
	}
	return 0, false
}

// Query returns the live entities that have every kind.
func (w *World) Query(kinds ...Kind) []Entity {
	if w == nil || len(kinds) == 0 {
		return nil
	}
	sets := make([]*SparseSet, 0, len(kinds))
	for _, k := range kinds {
		set := w.store(k, false)
		if set == nil {
			return nil
		}
		sets = append(sets, set)
	}
	return w.intersect(sets...)
}

func (w *World) store(kind Kind, create bool) *SparseSet {
	if w == nil || kind == nil || !kind.Valid() {
		return nil
	}
	set, ok := w.stores[kind.ID()]
	if !ok && create {
		if w.stores == nil {
			w.stores = make(map[component.ComponentID]*SparseSet)
		}
		set = &SparseSet{}
		w.stores[kind.ID()] = set
	}
	return set
}
