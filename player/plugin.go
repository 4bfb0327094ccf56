package player

import (
	"errors"
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/linkwalk/ecs"
	"github.com/plus3/linkwalk/sprite"
)

var ErrInvalidConfig = errors.New("invalid player config")

// Config tunes the spawned character.
type Config struct {
	// Speed is the walking speed in world units per second.
	Speed float64
	// Scale is the sprite scale.
	Scale float64
	// SpawnPeriod is the frame period used until the first state change rescales it.
	SpawnPeriod time.Duration
	Sheet       Sheet
}

func DefaultConfig() Config {
	return Config{
		Speed:       450,
		Scale:       0.5,
		SpawnPeriod: 50 * time.Millisecond,
		Sheet:       DefaultSheet(),
	}
}

func (c Config) Validate() error {
	switch {
	case c.Speed <= 0:
		return fmt.Errorf("%w: speed must be positive, got %g", ErrInvalidConfig, c.Speed)
	case c.Scale <= 0:
		return fmt.Errorf("%w: scale must be positive, got %g", ErrInvalidConfig, c.Scale)
	case c.SpawnPeriod <= 0:
		return fmt.Errorf("%w: spawn period must be positive, got %s", ErrInvalidConfig, c.SpawnPeriod)
	case c.Sheet.Columns <= 0 || c.Sheet.Rows <= 0:
		return fmt.Errorf("%w: sheet grid must be positive, got %dx%d", ErrInvalidConfig, c.Sheet.Columns, c.Sheet.Rows)
	case c.Sheet.Rows < 8:
		return fmt.Errorf("%w: sheet needs 8 rows, got %d", ErrInvalidConfig, c.Sheet.Rows)
	case c.Sheet.Columns < 10:
		return fmt.Errorf("%w: sheet needs 10 columns, got %d", ErrInvalidConfig, c.Sheet.Columns)
	case c.Sheet.Width%c.Sheet.Columns != 0 || c.Sheet.Height%c.Sheet.Rows != 0:
		return fmt.Errorf("%w: %dx%d sheet does not divide into %dx%d tiles",
			ErrInvalidConfig, c.Sheet.Width, c.Sheet.Height, c.Sheet.Columns, c.Sheet.Rows)
	}
	return nil
}

// Plugin spawns the player at startup and adds its update systems. It expects
// the input and sprite plugins to be added first.
type Plugin struct {
	Config Config
	Sheet  *ebiten.Image
	// Jitter feeds the idle timer. Nil uses math/rand.
	Jitter func() float64
}

func (p Plugin) Build(app *ecs.App) error {
	if err := p.Config.Validate(); err != nil {
		return err
	}

	RegisterComponents(app.Registry)

	atlases := ecs.NewSingleton[sprite.Atlases](app.Storage)
	app.Storage.AddSingleton(NewSpriteLayouts(atlases.Get(), p.Config.Sheet))
	ecs.NewSingleton[Ref](app.Storage)

	app.AddStartupSystems(&SpawnSystem{
		Config: p.Config,
		Sheet:  p.Sheet,
		Logger: app.Logger.WithPrefix("player"),
	})
	app.AddSystems(
		&InputSystem{Speed: p.Config.Speed},
		&BlinkSystem{},
		&TimerSystem{Jitter: p.Jitter},
		&IndicesSystem{},
		&LayoutSystem{},
		&AnimateSystem{},
	)
	return nil
}
