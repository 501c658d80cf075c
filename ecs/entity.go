package ecs

import "fmt"

// Entity is a handle to a world slot. The low 32 bits hold the slot id
// (starting at 1) and the high 32 bits the slot's generation, so a handle
// to a destroyed entity never matches the slot's next occupant.
type Entity uint64

type (
	entityID   uint32
	generation uint32
)

const (
	idBits = 32
	idMask = 1<<idBits - 1
)

func makeEntity(id entityID, gen generation) Entity {
	return Entity(uint64(gen)<<idBits | uint64(id))
}

func (e Entity) id() entityID {
	return entityID(uint64(e) & idMask)
}

func (e Entity) generation() generation {
	return generation(uint64(e) >> idBits)
}

// Valid reports whether e could have come from a world. It does not say
// whether the entity is still alive.
func (e Entity) Valid() bool {
	return e.id() != 0
}

// String prints the slot and generation, e.g. "3v1".
func (e Entity) String() string {
	return fmt.Sprintf("%dv%d", e.id(), e.generation())
}
