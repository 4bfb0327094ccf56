package ecs_test

import (
	"testing"

	"github.com/plus3/linkwalk/ecs"
)

func TestQuery(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())

	storage.Spawn(Position{X: 1, Y: 2}, Velocity{DX: 0.5, DY: 0.5})
	storage.Spawn(Position{X: 3, Y: 4}, Velocity{DX: 1.0, DY: 1.0})
	storage.Spawn(Position{X: 5, Y: 6}, Velocity{DX: 1.5, DY: 1.5}, Label("fast"))
	storage.Spawn(Position{X: 7, Y: 8})

	query := ecs.NewQuery[struct {
		*Position
		*Velocity
	}](storage)

	t.Run("execute builds cache", func(t *testing.T) {
		query.Execute()

		if query.Len() != 3 {
			t.Errorf("expected 3 entities, got %d", query.Len())
		}
	})

	t.Run("panics without execute", func(t *testing.T) {
		freshQuery := ecs.NewQuery[struct{ *Position }](storage)

		defer func() {
			if r := recover(); r == nil {
				t.Error("expected panic when calling Iter() before Execute()")
			}
		}()

		for range freshQuery.Iter() {
		}
	})

	t.Run("cache reflects new archetypes after re-execute", func(t *testing.T) {
		query.Execute()
		initial := query.Len()

		storage.Spawn(Position{X: 10}, Velocity{DX: 2.0}, Facing(1))
		query.Execute()

		if query.Len() != initial+1 {
			t.Errorf("expected %d entities after spawn, got %d", initial+1, query.Len())
		}
	})

	t.Run("values", func(t *testing.T) {
		query.Execute()

		for item := range query.Values() {
			if item.Position == nil || item.Velocity == nil {
				t.Error("expected non-nil components")
			}
		}
	})
}

func TestQuerySingle(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())
	query := ecs.NewQuery[struct {
		ecs.EntityId
		*Marker
	}](storage)

	query.Execute()
	if _, ok := query.Single(); ok {
		t.Error("expected no single match on empty storage")
	}

	id := storage.Spawn(Marker{}, Position{})
	query.Execute()
	item, ok := query.Single()
	if !ok || item.EntityId != id {
		t.Errorf("expected single match %v, got %v (ok=%v)", id, item.EntityId, ok)
	}

	storage.Spawn(Marker{})
	query.Execute()
	if _, ok := query.Single(); ok {
		t.Error("expected Single to fail with two matches")
	}
}
