package player

import (
	"math/rand/v2"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/linkwalk/ecs"
	"github.com/plus3/linkwalk/input"
	"github.com/plus3/linkwalk/sprite"
	"github.com/plus3/linkwalk/timer"
	"github.com/plus3/linkwalk/vmath"
)

// InputKeys are the keys that move the character.
var InputKeys = []ebiten.Key{
	ebiten.KeyArrowUp,
	ebiten.KeyArrowRight,
	ebiten.KeyArrowDown,
	ebiten.KeyArrowLeft,
}

// SpawnSystem creates the camera and the player, and resets AnimationIndices.
type SpawnSystem struct {
	Config Config
	Sheet  *ebiten.Image
	Logger *log.Logger

	Atlases ecs.Singleton[sprite.Atlases]
	Indices ecs.Singleton[AnimationIndices]
	Ref     ecs.Singleton[Ref]
}

func (s *SpawnSystem) Execute(frame *ecs.UpdateFrame) {
	s.Logger.Info("spawning player", "scale", s.Config.Scale, "period", s.Config.SpawnPeriod)

	layout := s.Atlases.Get().Add(s.Config.Sheet.Grid())
	indices := DefaultAnimationIndices()
	s.Indices.Set(indices)

	frame.Commands.Spawn(sprite.Camera{}, sprite.NewTransform(0, 0))
	frame.Commands.SpawnThen(func(id ecs.EntityId) {
		s.Ref.Set(Ref{Entity: frame.Storage.CreateEntityRef(id)})
		s.Logger.Debug("player spawned", "entity", id)
	}, Bundle(s.Config, s.Sheet, layout, indices)...)
}

// Bundle is the component set of a freshly spawned player.
func Bundle(cfg Config, sheet *ebiten.Image, layout sprite.Handle, indices AnimationIndices) []any {
	return []any{
		Player{},
		Idle,
		Blinking(false),
		South,
		sprite.Transform{Scale: cfg.Scale},
		sprite.Sprite{Image: sheet},
		sprite.TextureAtlas{Layout: layout, Index: indices.First},
		AnimationTimer{Timer: timer.New(cfg.SpawnPeriod, timer.Repeating)},
	}
}

// InputSystem moves the player while arrow keys are held and derives its heading
// and animation state from them. Up wins over down and left over right.
type InputSystem struct {
	Speed float64

	Keyboard ecs.Singleton[input.Keyboard]
	Players  ecs.Query[struct {
		ecs.EntityId
		*Player
		*Heading
		*AnimationState
		*sprite.Transform
	}]
}

func (s *InputSystem) Execute(frame *ecs.UpdateFrame) {
	kb := s.Keyboard.Get()
	if kb == nil {
		return
	}

	if !kb.AnyPressed(InputKeys...) {
		for p := range s.Players.Values() {
			ecs.SetIfNeq(frame, p.EntityId, p.AnimationState, Idle)
		}
		return
	}

	var v vmath.Vec2
	if kb.Pressed(ebiten.KeyArrowUp) {
		v.Y++
	} else if kb.Pressed(ebiten.KeyArrowDown) {
		v.Y--
	}
	if kb.Pressed(ebiten.KeyArrowLeft) {
		v.X--
	} else if kb.Pressed(ebiten.KeyArrowRight) {
		v.X++
	}
	step := v.Normalize().Scale(s.Speed * frame.DeltaTime)
	heading := HeadingFromVector(v)

	for p := range s.Players.Values() {
		ecs.SetIfNeq(frame, p.EntityId, p.AnimationState, Active)
		p.Transform.Translation = p.Transform.Translation.Add(step)
		ecs.MarkChanged[sprite.Transform](frame, p.EntityId)
		ecs.SetIfNeq(frame, p.EntityId, p.Heading, heading)
	}
}

// BlinkSystem recomputes Blinking whenever the atlas changed. Idle characters not
// facing North blink on every frame but the first; otherwise any idle character
// counts as blinking.
type BlinkSystem struct {
	Players ecs.Query[struct {
		ecs.EntityId
		*Player
		*Blinking
		*sprite.TextureAtlas
		*AnimationState
		*Heading
	}]
}

func (s *BlinkSystem) Execute(frame *ecs.UpdateFrame) {
	for p := range s.Players.Values() {
		if !ecs.Changed[sprite.TextureAtlas](frame, p.EntityId) {
			continue
		}

		var blinking Blinking
		if *p.Heading != North && *p.AnimationState == Idle {
			blinking = p.TextureAtlas.Index != 0
		} else {
			blinking = *p.AnimationState != Active
		}
		ecs.SetIfNeq(frame, p.EntityId, p.Blinking, blinking)
	}
}

// TimerSystem rescales the animation timer when Blinking or AnimationState changed.
type TimerSystem struct {
	// Jitter returns a value in [0, 1). Defaults to rand.Float64.
	Jitter func() float64

	Players ecs.Query[struct {
		ecs.EntityId
		*Player
		*AnimationTimer
		*AnimationState
		*Blinking
	}]
}

func (s *TimerSystem) Execute(frame *ecs.UpdateFrame) {
	jitter := s.Jitter
	if jitter == nil {
		jitter = rand.Float64
	}

	for p := range s.Players.Values() {
		if !ecs.Changed[Blinking](frame, p.EntityId) && !ecs.Changed[AnimationState](frame, p.EntityId) {
			continue
		}

		p.AnimationTimer.SetDuration(TimerDurationFor(*p.Blinking, *p.AnimationState, jitter()))
		ecs.MarkChanged[AnimationTimer](frame, p.EntityId)
	}
}

// IndicesSystem recomputes AnimationIndices when Heading or AnimationState changed.
type IndicesSystem struct {
	Indices ecs.Singleton[AnimationIndices]
	Players ecs.Query[struct {
		ecs.EntityId
		*Player
		*Heading
		*AnimationState
	}]
}

func (s *IndicesSystem) Execute(frame *ecs.UpdateFrame) {
	indices := s.Indices.Get()
	if indices == nil {
		return
	}

	for p := range s.Players.Values() {
		if ecs.Changed[Heading](frame, p.EntityId) || ecs.Changed[AnimationState](frame, p.EntityId) {
			*indices = IndicesFor(*p.Heading, *p.AnimationState)
		}
	}
}

// LayoutSystem swaps the atlas layout when Heading or AnimationState changed.
type LayoutSystem struct {
	Layouts ecs.Singleton[SpriteLayouts]
	Players ecs.Query[struct {
		ecs.EntityId
		*Player
		*sprite.TextureAtlas
		*Heading
		*AnimationState
	}]
}

func (s *LayoutSystem) Execute(frame *ecs.UpdateFrame) {
	layouts := s.Layouts.Get()
	if layouts == nil {
		return
	}

	for p := range s.Players.Values() {
		if !ecs.Changed[Heading](frame, p.EntityId) && !ecs.Changed[AnimationState](frame, p.EntityId) {
			continue
		}

		p.TextureAtlas.Layout = layouts.Resolve(*p.Heading, *p.AnimationState)
		ecs.MarkChanged[sprite.TextureAtlas](frame, p.EntityId)
	}
}

// AnimateSystem ticks the animation timer and steps the atlas index through
// AnimationIndices, wrapping back to First after Last.
type AnimateSystem struct {
	Indices ecs.Singleton[AnimationIndices]
	Players ecs.Query[struct {
		ecs.EntityId
		*Player
		*AnimationTimer
		*sprite.TextureAtlas
	}]
}

func (s *AnimateSystem) Execute(frame *ecs.UpdateFrame) {
	indices := s.Indices.Get()
	if indices == nil {
		return
	}
	delta := time.Duration(frame.DeltaTime * float64(time.Second))

	for p := range s.Players.Values() {
		atlas := p.TextureAtlas
		if atlas.Index >= indices.Last {
			atlas.Index = indices.First
			ecs.MarkChanged[sprite.TextureAtlas](frame, p.EntityId)
		}

		p.AnimationTimer.Tick(delta)
		if !p.AnimationTimer.JustFinished() {
			continue
		}

		if atlas.Index >= indices.Last {
			atlas.Index = indices.First
		} else {
			atlas.Index++
		}
		ecs.MarkChanged[sprite.TextureAtlas](frame, p.EntityId)
	}
}
