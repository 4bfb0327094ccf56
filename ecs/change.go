package ecs

import "reflect"

// Changed reports whether the entity's T component was added or written since the
// running system last executed.
func Changed[T any](frame *UpdateFrame, id EntityId) bool {
	tick, ok := frame.Storage.ComponentTick(id, reflect.TypeFor[T]())
	return ok && tick > frame.LastRun
}

// MarkChanged records a write to the entity's T component.
func MarkChanged[T any](frame *UpdateFrame, id EntityId) {
	frame.Storage.MarkChanged(id, reflect.TypeFor[T]())
}

// SetIfNeq assigns value to *dst and marks the component changed, but only when the
// value differs. Returns whether a write happened.
func SetIfNeq[T comparable](frame *UpdateFrame, id EntityId, dst *T, value T) bool {
	if *dst == value {
		return false
	}
	*dst = value
	MarkChanged[T](frame, id)
	return true
}
