package sprite

import "github.com/plus3/linkwalk/ecs"

// Plugin registers the sprite components, the Atlases store and the render system.
type Plugin struct{}

func (Plugin) Build(app *ecs.App) error {
	RegisterComponents(app.Registry)
	ecs.NewSingleton[Atlases](app.Storage)
	ecs.NewSingleton[Screen](app.Storage)
	app.AddRenderSystems(&RenderSystem{})
	return nil
}
