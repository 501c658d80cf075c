package component

import (
	"errors"
	"fmt"
	"sync/atomic"
)

// Errors returned by the ecs package's Add.
var (
	ErrEntityNotAlive       = errors.New("ecs: entity is not alive")
	ErrNilComponent         = errors.New("ecs: nil component value")
	ErrInvalidComponentKind = errors.New("ecs: zero component kind")
)

// ComponentID keys a component store inside a world. Zero is never issued.
type ComponentID uint32

var lastComponentID atomic.Uint32

// ComponentKind is the typed key for components of type T. Each call to
// NewComponentKind yields a distinct store, even for the same T, so two
// components may share a Go type.
type ComponentKind[T any] struct {
	id ComponentID
}

func NewComponentKind[T any]() ComponentKind[T] {
	return ComponentKind[T]{id: ComponentID(lastComponentID.Add(1))}
}

func (k ComponentKind[T]) ID() ComponentID { return k.id }

func (k ComponentKind[T]) Valid() bool { return k.id != 0 }

func (k ComponentKind[T]) String() string {
	var zero T
	return fmt.Sprintf("%T#%d", zero, k.id)
}

// ComponentHandle is what component files declare at package level:
//
//	var CameraComponent = NewComponent[Camera]()
type ComponentHandle[T any] struct {
	kind ComponentKind[T]
}

func NewComponent[T any]() ComponentHandle[T] {
	return ComponentHandle[T]{kind: NewComponentKind[T]()}
}

func (h ComponentHandle[T]) Kind() ComponentKind[T] { return h.kind }
