package ecs_test

import (
	"reflect"
	"testing"

	"github.com/plus3/linkwalk/ecs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommandsAreDeferred(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())
	scheduler := ecs.NewScheduler(storage)

	var duringFrame int
	scheduler.Register(ecs.SystemFunc(func(frame *ecs.UpdateFrame) {
		frame.Commands.Spawn(Position{X: 1}, Velocity{DX: 1})
		frame.Commands.Spawn(Position{X: 2})
		duringFrame = frame.Storage.CollectStats().TotalEntityCount
	}))

	scheduler.Once(0)

	assert.Equal(t, 0, duringFrame)
	assert.Equal(t, 2, storage.CollectStats().TotalEntityCount)
}

func TestCommandsFlushOrder(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())

	doomed := storage.Spawn(Position{X: 1}, Label("old"))
	grower := storage.Spawn(Position{X: 2}, Velocity{})

	commands := ecs.NewScheduler(storage)
	var spawned ecs.EntityId
	var deferredSaw bool

	commands.Register(ecs.SystemFunc(func(frame *ecs.UpdateFrame) {
		frame.Commands.Defer(func() {
			deferredSaw = storage.Alive(spawned)
		})
		frame.Commands.SpawnThen(func(id ecs.EntityId) { spawned = id }, Label("new"))
		frame.Commands.AddComponent(doomed, Velocity{})
		frame.Commands.Delete(doomed)
		frame.Commands.RemoveComponent(grower, reflect.TypeFor[Velocity]())
	}))
	commands.Once(0)

	assert.False(t, storage.Alive(doomed))
	assert.True(t, deferredSaw)
	require.NotEqual(t, ecs.EntityId(0), spawned)
	assert.Equal(t, Label("new"), *ecs.ReadComponent[Label](storage, spawned))

	view := ecs.NewView[struct{ *Velocity }](storage)
	for range view.Values() {
		t.Error("expected no entity with Velocity after flush")
	}
}
