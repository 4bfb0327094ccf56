// Package player spawns the walking character and drives its animation.
//
// The update systems run chained in this order every tick:
//
//	InputSystem -> BlinkSystem -> TimerSystem -> IndicesSystem -> LayoutSystem -> AnimateSystem
//
// Each downstream system only reacts to the components the previous ones changed.
package player

import (
	"fmt"

	"github.com/plus3/linkwalk/ecs"
	"github.com/plus3/linkwalk/sprite"
	"github.com/plus3/linkwalk/timer"
)

// Player marks the controllable character.
type Player struct{}

// AnimationState is Active while a movement key is held and Idle otherwise.
type AnimationState uint8

const (
	Idle AnimationState = iota
	Active
)

func (s AnimationState) String() string {
	switch s {
	case Idle:
		return "Idle"
	case Active:
		return "Active"
	default:
		return fmt.Sprintf("AnimationState(%d)", uint8(s))
	}
}

// Blinking is set while the idle character plays its blink frames.
type Blinking bool

// AnimationTimer paces frame advances.
type AnimationTimer struct {
	timer.Timer
}

// Position is a printable snapshot of where an entity stands.
type Position struct {
	X, Y float64
}

// PositionOf reads the position out of a transform.
func PositionOf(t *sprite.Transform) Position {
	return Position{X: t.Translation.X, Y: t.Translation.Y}
}

func (p Position) String() string {
	return fmt.Sprintf("x: %g, y: %g", p.X, p.Y)
}

// RegisterComponents registers every player component with registry.
func RegisterComponents(registry *ecs.ComponentRegistry) {
	ecs.RegisterComponent[Player](registry)
	ecs.RegisterComponent[Heading](registry)
	ecs.RegisterComponent[AnimationState](registry)
	ecs.RegisterComponent[Blinking](registry)
	ecs.RegisterComponent[AnimationTimer](registry)
}
