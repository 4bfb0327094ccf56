package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/linkwalk/ecs"
)

// Plugin adds the Keyboard singleton and polls Watch from Source at the start of
// every update. A nil Source reads from ebiten.
type Plugin struct {
	Source Source
	Watch  []ebiten.Key
}

func (p Plugin) Build(app *ecs.App) error {
	source := p.Source
	if source == nil {
		source = EbitenSource{}
	}

	ecs.NewSingleton(app.Storage, NewKeyboard())
	app.AddSystems(&PollSystem{Source: source, Watch: p.Watch})
	return nil
}
