package component

import (
	"errors"
	"fmt"
	"strconv"
	"sync"
)

var (
	ErrEntityNotAlive       = errors.New("ecs: entity not alive")
	ErrNilComponent         = errors.New("ecs: component is nil")
	ErrInvalidComponentKind = errors.New("ecs: invalid component kind")
)

// ComponentID identifies one component type inside a world. Zero is never
// handed out.
type ComponentID uint32

var registry struct {
	mu    sync.Mutex
	names []string
}

// String returns the Go type name the id was registered for.
func (id ComponentID) String() string {
	registry.mu.Lock()
	defer registry.mu.Unlock()
	if id == 0 || int(id) > len(registry.names) {
		return "component#" + strconv.FormatUint(uint64(id), 10)
	}
	return registry.names[id-1]
}

func register(name string) ComponentID {
	registry.mu.Lock()
	defer registry.mu.Unlock()
	registry.names = append(registry.names, name)
	return ComponentID(len(registry.names))
}

type ComponentKind[T any] struct {
	id ComponentID
}

func (k ComponentKind[T]) ID() ComponentID {
	return k.id
}

func (k ComponentKind[T]) Valid() bool {
	return k.id != 0
}

// ComponentHandle is the typed key used with ecs.Add, ecs.Get and friends.
// Declare one package-level handle per component type.
type ComponentHandle[T any] struct {
	kind ComponentKind[T]
}

func NewComponent[T any]() ComponentHandle[T] {
	var zero T
	return ComponentHandle[T]{kind: ComponentKind[T]{id: register(fmt.Sprintf("%T", zero))}}
}

func (h ComponentHandle[T]) Kind() ComponentKind[T] {
	return h.kind
}

func (h ComponentHandle[T]) String() string {
	return h.kind.id.String()
}
