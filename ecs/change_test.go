package ecs_test

import (
	"testing"

	"github.com/plus3/linkwalk/ecs"
	"github.com/stretchr/testify/assert"
)

// facingWriter sets every Facing to Next using SetIfNeq.
type facingWriter struct {
	Entities ecs.Query[struct {
		ecs.EntityId
		*Facing
	}]
	Next Facing
}

func (s *facingWriter) Execute(frame *ecs.UpdateFrame) {
	for item := range s.Entities.Values() {
		ecs.SetIfNeq(frame, item.EntityId, item.Facing, s.Next)
	}
}

// facingWatcher records whether Facing changed since its previous run.
type facingWatcher struct {
	Entities ecs.Query[struct {
		ecs.EntityId
		*Facing
	}]
	Seen []bool
}

func (s *facingWatcher) Execute(frame *ecs.UpdateFrame) {
	changed := false
	for item := range s.Entities.Values() {
		changed = changed || ecs.Changed[Facing](frame, item.EntityId)
	}
	s.Seen = append(s.Seen, changed)
}

func TestChangeDetection(t *testing.T) {
	t.Run("writer before watcher", func(t *testing.T) {
		storage := ecs.NewStorage(newTestRegistry())
		scheduler := ecs.NewScheduler(storage)

		writer := &facingWriter{Next: 0}
		watcher := &facingWatcher{}
		scheduler.Register(writer)
		scheduler.Register(watcher)

		storage.Spawn(Facing(0))

		scheduler.Once(0) // spawn counts as a change
		scheduler.Once(0) // nothing written
		writer.Next = 2
		scheduler.Once(0) // written this frame
		scheduler.Once(0) // same value, SetIfNeq skips

		assert.Equal(t, []bool{true, false, true, false}, watcher.Seen)
	})

	t.Run("writer after watcher is seen next frame", func(t *testing.T) {
		storage := ecs.NewStorage(newTestRegistry())
		scheduler := ecs.NewScheduler(storage)

		watcher := &facingWatcher{}
		writer := &facingWriter{Next: 0}
		scheduler.Register(watcher)
		scheduler.Register(writer)

		storage.Spawn(Facing(0))

		scheduler.Once(0)
		writer.Next = 1
		scheduler.Once(0)
		scheduler.Once(0)
		scheduler.Once(0)

		assert.Equal(t, []bool{true, false, true, false}, watcher.Seen)
	})

	t.Run("commands spawned entities are seen as changed", func(t *testing.T) {
		storage := ecs.NewStorage(newTestRegistry())
		scheduler := ecs.NewScheduler(storage)

		watcher := &facingWatcher{}
		scheduler.Register(watcher)
		scheduler.Register(ecs.SystemFunc(func(frame *ecs.UpdateFrame) {
			if len(watcher.Seen) == 1 {
				frame.Commands.Spawn(Facing(3))
			}
		}))

		scheduler.Once(0)
		scheduler.Once(0)
		scheduler.Once(0)

		assert.Equal(t, []bool{false, true, false}, watcher.Seen)
	})

	t.Run("last system sees commands from earlier systems", func(t *testing.T) {
		storage := ecs.NewStorage(newTestRegistry())
		scheduler := ecs.NewScheduler(storage)

		spawned := false
		scheduler.Register(ecs.SystemFunc(func(frame *ecs.UpdateFrame) {
			if !spawned {
				spawned = true
				frame.Commands.Spawn(Facing(1))
			}
		}))
		middle := &facingWatcher{}
		last := &facingWatcher{}
		scheduler.Register(middle)
		scheduler.Register(last)

		scheduler.Once(0)
		scheduler.Once(0)
		scheduler.Once(0)

		assert.Equal(t, []bool{false, true, false}, middle.Seen)
		assert.Equal(t, []bool{false, true, false}, last.Seen)
	})

	t.Run("components added by commands are seen by the last system", func(t *testing.T) {
		storage := ecs.NewStorage(newTestRegistry())
		scheduler := ecs.NewScheduler(storage)

		id := storage.Spawn(Frame{})
		watcher := &facingWatcher{}
		scheduler.Register(ecs.SystemFunc(func(frame *ecs.UpdateFrame) {
			if len(watcher.Seen) == 1 {
				frame.Commands.AddComponent(id, Facing(2))
			}
		}))
		scheduler.Register(watcher)

		scheduler.Once(0)
		scheduler.Once(0)
		scheduler.Once(0)

		assert.Equal(t, []bool{false, false, true}, watcher.Seen)
	})
}

func TestMarkChanged(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())
	scheduler := ecs.NewScheduler(storage)

	id := storage.Spawn(Frame{})
	var observed []bool
	touch := false

	scheduler.Register(ecs.SystemFunc(func(frame *ecs.UpdateFrame) {
		if touch {
			f := ecs.ReadComponent[Frame](frame.Storage, id)
			f.Index++
		}
	}))
	scheduler.Register(ecs.SystemFunc(func(frame *ecs.UpdateFrame) {
		if touch {
			ecs.MarkChanged[Frame](frame, id)
		}
	}))
	scheduler.Register(ecs.SystemFunc(func(frame *ecs.UpdateFrame) {
		observed = append(observed, ecs.Changed[Frame](frame, id))
	}))

	scheduler.Once(0)
	scheduler.Once(0)
	touch = true
	scheduler.Once(0)

	assert.Equal(t, []bool{true, false, true}, observed)
}
