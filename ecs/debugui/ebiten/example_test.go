package ebiten_test

import (
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/linkwalk/ecs"
	"github.com/plus3/linkwalk/ecs/debugui"
	debugui_ebiten "github.com/plus3/linkwalk/ecs/debugui/ebiten"
)

// Game implements ebiten.Game and integrates an ecs.App with ImGui rendering.
type Game struct {
	app     *ecs.App
	backend debugui_ebiten.ImguiBackend
}

func (g *Game) Update() error {
	// Begin ImGui frame before executing systems
	g.backend.BeginFrame()

	// Execute the update phase (including ImguiSystem)
	g.app.Update(1.0 / 60.0)

	// End ImGui frame after deferred render functions ran
	g.backend.EndFrame()

	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	// Draw game content to screen
	g.app.Draw()

	// Draw ImGui overlay on top
	g.backend.Draw(screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.backend.Layout(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

type hello struct{}

func (hello) Render() {
	imgui.Begin("Debug Window")
	imgui.Text("Hello from ECS!")
	imgui.End()
}

func Example() {
	backend := debugui_ebiten.NewImguiBackend("ECS ImGui Example", 1280, 720)

	app := ecs.NewApp(nil)
	err := app.AddPlugins(debugui.Plugin{Panels: []debugui.Panel{
		hello{},
		debugui.NewStatsPanel(app.Storage, 120, debugui.Phase{Name: "Update", Stats: app.UpdateStats}),
		&debugui.EntitiesPanel{Storage: app.Storage},
	}})
	if err != nil {
		panic(err)
	}

	if err := ebiten.RunGame(&Game{app: app, backend: backend}); err != nil {
		panic(err)
	}
}
