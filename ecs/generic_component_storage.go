package ecs

import (
	"iter"
	"reflect"
)

// ComponentRegistry manages component type registration for an ECS instance.
// Each Storage instance has its own ComponentRegistry, allowing multiple
// independent ECS systems to coexist without interference.
type ComponentRegistry struct {
	factories map[reflect.Type]func() iComponentStorage
}

// NewComponentRegistry creates a new component registry.
func NewComponentRegistry() *ComponentRegistry {
	return &ComponentRegistry{
		factories: make(map[reflect.Type]func() iComponentStorage),
	}
}

// RegisterComponent registers a new component type with the given registry.
// This must be called for each component type before it can be used.
// Registering the same type twice is a no-op.
func RegisterComponent[T any](r *ComponentRegistry) {
	t := reflect.TypeFor[T]()
	if _, ok := r.factories[t]; ok {
		return
	}
	r.factories[t] = func() iComponentStorage {
		return &genericComponentStorage[T]{}
	}
}

// IsRegistered reports whether T has been registered.
func IsRegistered[T any](r *ComponentRegistry) bool {
	_, ok := r.factories[reflect.TypeFor[T]()]
	return ok
}

// getFactory returns the factory function for a given component type.
// Returns nil if the type is not registered.
func (r *ComponentRegistry) getFactory(t reflect.Type) func() iComponentStorage {
	return r.factories[t]
}

const (
	genericBlockSize = 64
)

// genericComponentStorage stores components of a specific type `T` in fixed-size blocks
// so that pointers handed out by Get stay valid while the storage grows.
type genericComponentStorage[T any] struct {
	blocks    [][genericBlockSize]T
	filled    [][genericBlockSize]bool
	ticks     [][genericBlockSize]uint64
	freeSlots []int
	nextIndex int
}

func splitIndex(index int) (int, int) {
	return index / genericBlockSize, index % genericBlockSize
}

// Append adds a component to storage and returns its index, or -1 if item is not a T or *T.
func (cs *genericComponentStorage[T]) Append(item any, tick uint64) int {
	var concreteItem T
	if ptr, ok := item.(*T); ok {
		concreteItem = *ptr
	} else if val, ok := item.(T); ok {
		concreteItem = val
	} else {
		return -1
	}

	var index int
	if n := len(cs.freeSlots); n > 0 {
		index = cs.freeSlots[n-1]
		cs.freeSlots = cs.freeSlots[:n-1]
	} else {
		index = cs.nextIndex
		cs.nextIndex++
	}

	blockIdx, slotIdx := splitIndex(index)
	if blockIdx >= len(cs.blocks) {
		cs.blocks = append(cs.blocks, [genericBlockSize]T{})
		cs.filled = append(cs.filled, [genericBlockSize]bool{})
		cs.ticks = append(cs.ticks, [genericBlockSize]uint64{})
	}

	cs.blocks[blockIdx][slotIdx] = concreteItem
	cs.filled[blockIdx][slotIdx] = true
	cs.ticks[blockIdx][slotIdx] = tick
	return index
}

// Get returns a pointer to the component at the given index.
func (cs *genericComponentStorage[T]) Get(index int) any {
	if !cs.Has(index) {
		return nil
	}
	blockIdx, slotIdx := splitIndex(index)
	return &cs.blocks[blockIdx][slotIdx]
}

// Delete marks a component slot as empty.
func (cs *genericComponentStorage[T]) Delete(index int) {
	if !cs.Has(index) {
		return
	}

	blockIdx, slotIdx := splitIndex(index)
	var zero T
	cs.filled[blockIdx][slotIdx] = false
	cs.blocks[blockIdx][slotIdx] = zero
	cs.ticks[blockIdx][slotIdx] = 0
	cs.freeSlots = append(cs.freeSlots, index)
}

// Has checks if a component exists at the given index.
func (cs *genericComponentStorage[T]) Has(index int) bool {
	if index < 0 {
		return false
	}

	blockIdx, slotIdx := splitIndex(index)
	if blockIdx >= len(cs.blocks) {
		return false
	}

	return cs.filled[blockIdx][slotIdx]
}

// Tick returns the change tick of the slot, or 0 if the slot is empty.
func (cs *genericComponentStorage[T]) Tick(index int) uint64 {
	if !cs.Has(index) {
		return 0
	}
	blockIdx, slotIdx := splitIndex(index)
	return cs.ticks[blockIdx][slotIdx]
}

// Touch records a write to the slot at the given tick.
func (cs *genericComponentStorage[T]) Touch(index int, tick uint64) {
	if !cs.Has(index) {
		return
	}
	blockIdx, slotIdx := splitIndex(index)
	cs.ticks[blockIdx][slotIdx] = tick
}

func (cs *genericComponentStorage[T]) Iter() iter.Seq[int] {
	return func(yield func(int) bool) {
		for i := 0; i < cs.nextIndex; i++ {
			if !cs.Has(i) {
				continue
			}
			if !yield(i) {
				return
			}
		}
	}
}
