package ecs

import "iter"

// iComponentStorage is an interface for a type-erased component storage.
// Every filled slot carries the change tick of its last recorded write.
type iComponentStorage interface {
	Append(item any, tick uint64) int
	Delete(index int)
	Get(index int) any
	Has(index int) bool
	Iter() iter.Seq[int]
	Tick(index int) uint64
	Touch(index int, tick uint64)
}
