package player

import (
	"time"

	"github.com/plus3/linkwalk/ecs"
	"github.com/plus3/linkwalk/sprite"
)

// AnimationIndices bounds the frame index of the current animation cycle, inclusive.
type AnimationIndices struct {
	First int
	Last  int
}

// DefaultAnimationIndices is the short idle cycle the player starts on.
func DefaultAnimationIndices() AnimationIndices {
	return AnimationIndices{First: 0, Last: 2}
}

// IndicesFor returns the frame bounds of the cycle for heading and state.
func IndicesFor(heading Heading, state AnimationState) AnimationIndices {
	switch {
	case heading == North && state == Idle:
		return AnimationIndices{First: 0, Last: 0}
	case state == Idle:
		return AnimationIndices{First: 0, Last: 2}
	default:
		return AnimationIndices{First: 0, Last: 9}
	}
}

const (
	blinkFrameDuration = 80 * time.Millisecond
	walkFrameDuration  = 30 * time.Millisecond
	idleFrameDuration  = time.Second
)

// TimerDurationFor returns the frame period for the animation. jitter in [0, 1)
// stretches the idle pause by up to 1/255 of a second.
func TimerDurationFor(blinking Blinking, state AnimationState, jitter float64) time.Duration {
	switch {
	case bool(blinking):
		return blinkFrameDuration
	case state == Active:
		return walkFrameDuration
	default:
		return idleFrameDuration + time.Duration(jitter/255*float64(time.Second))
	}
}

// SpriteLayouts holds the atlas handle of every (heading, state) cycle.
type SpriteLayouts struct {
	handles [len(Headings)][2]sprite.Handle
}

// NewSpriteLayouts adds the eight cycle layouts of sheet to atlases.
func NewSpriteLayouts(atlases *sprite.Atlases, sheet Sheet) SpriteLayouts {
	var layouts SpriteLayouts
	for _, heading := range Headings {
		for _, state := range []AnimationState{Idle, Active} {
			layouts.handles[heading][state] = atlases.Add(sheet.Layout(heading, state))
		}
	}
	return layouts
}

// Resolve returns the layout handle for heading and state.
func (l *SpriteLayouts) Resolve(heading Heading, state AnimationState) sprite.Handle {
	return l.handles[heading][state]
}

// Ref points at the spawned player entity.
type Ref struct {
	Entity *ecs.EntityRef
}
