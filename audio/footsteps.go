package audio

import (
	"slices"

	"github.com/plus3/linkwalk/ecs"
	"github.com/plus3/linkwalk/player"
	"github.com/plus3/linkwalk/sprite"
)

// Stepper plays a footstep.
type Stepper interface {
	PlayStep()
}

// DefaultStepFrames are the walk frames where a foot touches the ground.
var DefaultStepFrames = []int{2, 7}

// FootstepSystem plays a step each time a walking player reaches a contact frame.
type FootstepSystem struct {
	Steps  Stepper
	Frames []int

	Players ecs.Query[struct {
		ecs.EntityId
		*player.Player
		*player.AnimationState
		*sprite.TextureAtlas
	}]

	lastIndex map[ecs.EntityId]int
}

func (s *FootstepSystem) Execute(frame *ecs.UpdateFrame) {
	if s.lastIndex == nil {
		s.lastIndex = make(map[ecs.EntityId]int)
	}

	for p := range s.Players.Values() {
		if !ecs.Changed[sprite.TextureAtlas](frame, p.EntityId) {
			continue
		}

		index := p.TextureAtlas.Index
		last, seen := s.lastIndex[p.EntityId]
		s.lastIndex[p.EntityId] = index

		if *p.AnimationState != player.Active || (seen && last == index) {
			continue
		}
		if slices.Contains(s.Frames, index) {
			s.Steps.PlayStep()
		}
	}
}

// Plugin adds footsteps after the player systems. A nil Steps disables it.
type Plugin struct {
	Steps  Stepper
	Frames []int
}

func (p Plugin) Build(app *ecs.App) error {
	if p.Steps == nil {
		app.Logger.Warn("footsteps disabled")
		return nil
	}

	frames := p.Frames
	if len(frames) == 0 {
		frames = DefaultStepFrames
	}
	app.AddSystems(&FootstepSystem{Steps: p.Steps, Frames: frames})
	return nil
}
