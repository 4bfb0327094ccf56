package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/linkwalk/ecs"
)

// Source reports the physical state of a key.
type Source interface {
	IsKeyPressed(key ebiten.Key) bool
}

// EbitenSource reads keys from the running ebiten game.
type EbitenSource struct{}

func (EbitenSource) IsKeyPressed(key ebiten.Key) bool {
	return ebiten.IsKeyPressed(key)
}

// PollSystem copies the state of the watched keys from Source into the Keyboard singleton.
type PollSystem struct {
	Source   Source
	Watch    []ebiten.Key
	Keyboard ecs.Singleton[Keyboard]
}

func (s *PollSystem) Execute(frame *ecs.UpdateFrame) {
	kb := s.Keyboard.Get()
	if kb == nil {
		s.Keyboard.Set(NewKeyboard())
		kb = s.Keyboard.Get()
	}

	kb.ClearJustPressed()
	for _, key := range s.Watch {
		if s.Source.IsKeyPressed(key) {
			kb.Press(key)
		} else {
			kb.Release(key)
		}
	}
}
