package input

import "github.com/hajimehoshi/ebiten/v2"

// Script is a Source that replays a fixed sequence of key sets, one per Advance.
// The last step repeats once the script runs out. Used for headless runs and tests.
type Script struct {
	Steps [][]ebiten.Key
	step  int
}

func (s *Script) IsKeyPressed(key ebiten.Key) bool {
	if len(s.Steps) == 0 {
		return false
	}
	for _, k := range s.Steps[min(s.step, len(s.Steps)-1)] {
		if k == key {
			return true
		}
	}
	return false
}

// Advance moves to the next step.
func (s *Script) Advance() {
	s.step++
}
