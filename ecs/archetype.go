package ecs

import (
	"reflect"
	"slices"
	"weak"

	"github.com/kamstrup/intmap"
)

type byTypeName []reflect.Type

func (a byTypeName) Len() int           { return len(a) }
func (a byTypeName) Swap(i, j int)      { a[i], a[j] = a[j], a[i] }
func (a byTypeName) Less(i, j int) bool { return a[i].String() < a[j].String() }

// Archetype represents a unique combination of component types
type Archetype struct {
	id       uint32
	types    []reflect.Type
	storages []iComponentStorage
	refs     *intmap.Map[EntityId, weak.Pointer[EntityRef]]
}

// NewArchetype creates a new archetype with the given ID and sorted component types
func NewArchetype(id uint32, types []reflect.Type, registry *ComponentRegistry) *Archetype {
	a := &Archetype{
		id:       id,
		types:    types,
		storages: make([]iComponentStorage, len(types)),
		refs:     intmap.New[EntityId, weak.Pointer[EntityRef]](16),
	}

	for idx, typ := range types {
		factory := registry.getFactory(typ)
		if factory == nil {
			panic("component type " + typ.String() + " not registered")
		}
		a.storages[idx] = factory()
	}

	return a
}

// Spawn creates a new entity in this archetype with the given components, stamping
// every component with tick. Returns the storage position as the entity index.
func (a *Archetype) Spawn(components []any, tick uint64) uint32 {
	var storagePos int
	for _, comp := range components {
		idx := a.typeIndex(componentType(comp))
		if idx >= 0 {
			storagePos = a.storages[idx].Append(comp, tick)
		}
	}

	return uint32(storagePos)
}

func (a *Archetype) typeIndex(compType reflect.Type) int {
	for i, typ := range a.types {
		if typ == compType {
			return i
		}
	}
	return -1
}

// GetComponent returns the component of the given type for the entity at entityIndex
func (a *Archetype) GetComponent(entityIndex uint32, compType reflect.Type) any {
	idx := a.typeIndex(compType)
	if idx == -1 {
		return nil
	}
	return a.storages[idx].Get(int(entityIndex))
}

// componentTick returns the last change tick of a component, and false when the
// archetype has no such component or the slot is empty.
func (a *Archetype) componentTick(entityIndex uint32, compType reflect.Type) (uint64, bool) {
	idx := a.typeIndex(compType)
	if idx == -1 || !a.storages[idx].Has(int(entityIndex)) {
		return 0, false
	}
	return a.storages[idx].Tick(int(entityIndex)), true
}

func (a *Archetype) touch(entityIndex uint32, compType reflect.Type, tick uint64) bool {
	idx := a.typeIndex(compType)
	if idx == -1 || !a.storages[idx].Has(int(entityIndex)) {
		return false
	}
	a.storages[idx].Touch(int(entityIndex), tick)
	return true
}

// Delete marks an entity's components as deleted
// Indices remain stable - the slot is simply marked as empty
func (a *Archetype) Delete(entityIndex uint32) {
	entityId := NewEntityId(a.id, entityIndex)

	if weakPtr, ok := a.refs.Get(entityId); ok {
		if ref := weakPtr.Value(); ref != nil {
			ref.Id = 0
			ref.Archetype = nil
		}
		a.refs.Del(entityId)
	}

	for _, storage := range a.storages {
		storage.Delete(int(entityIndex))
	}
}

// HasComponent checks if this archetype has the given component type
func (a *Archetype) HasComponent(compType reflect.Type) bool {
	return slices.Contains(a.types, compType)
}

// ID returns the archetype's unique identifier
func (a *Archetype) ID() uint32 {
	return a.id
}

// Types returns the sorted component types for this archetype
func (a *Archetype) Types() []reflect.Type {
	return a.types
}

// Len returns the number of live entities in this archetype.
func (a *Archetype) Len() int {
	n := 0
	for range a.Iter() {
		n++
	}
	return n
}

// Iter returns an iterator over all valid EntityIds in this archetype
func (a *Archetype) Iter() func(yield func(EntityId) bool) {
	return func(yield func(EntityId) bool) {
		if len(a.storages) == 0 {
			return
		}

		for index := range a.storages[0].Iter() {
			if !yield(NewEntityId(a.id, uint32(index))) {
				return
			}
		}
	}
}
