package ecs_test

import "github.com/plus3/linkwalk/ecs"

// Common test component types
type Position struct {
	X, Y float32
}

type Velocity struct {
	DX, DY float32
}

type Facing int

type Frame struct {
	Index int
}

type Marker struct{}

type Label string

type Counter struct {
	Value int
}

func newTestRegistry() *ecs.ComponentRegistry {
	registry := ecs.NewComponentRegistry()
	ecs.RegisterComponent[Position](registry)
	ecs.RegisterComponent[Velocity](registry)
	ecs.RegisterComponent[Facing](registry)
	ecs.RegisterComponent[Frame](registry)
	ecs.RegisterComponent[Marker](registry)
	ecs.RegisterComponent[Label](registry)
	return registry
}
