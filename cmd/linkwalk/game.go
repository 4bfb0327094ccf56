package main

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/plus3/linkwalk/ecs"
	"github.com/plus3/linkwalk/ecs/debugui"
	debugui_ebiten "github.com/plus3/linkwalk/ecs/debugui/ebiten"
	"github.com/plus3/linkwalk/input"
	"github.com/plus3/linkwalk/sprite"
)

// Game drives an ecs.App from ebiten's loop.
type Game struct {
	app   *ecs.App
	dt    float64
	imgui *debugui_ebiten.ImguiBackend

	keyboard   *ecs.Singleton[input.Keyboard]
	screen     *ecs.Singleton[sprite.Screen]
	imguiInput *ecs.Singleton[debugui.ImguiInputState]
}

// bind caches the singletons the loop touches. Call after all plugins are added.
func (g *Game) bind() {
	g.keyboard = ecs.NewSingleton[input.Keyboard](g.app.Storage)
	g.screen = ecs.NewSingleton[sprite.Screen](g.app.Storage)
	g.imguiInput = ecs.NewSingleton[debugui.ImguiInputState](g.app.Storage)
}

func (g *Game) Update() error {
	if g.imgui != nil {
		g.imgui.BeginFrame()
	}

	g.app.Update(g.dt)

	if g.imgui != nil {
		g.imgui.EndFrame()
	}

	if g.imguiInput.Get().WantCaptureKeyboard {
		return nil
	}
	kb := g.keyboard.Get()
	for _, key := range quitKeys {
		if kb.JustPressed(key) {
			return ebiten.Termination
		}
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.screen.Get().Image = screen
	g.app.Draw()

	if g.imgui != nil {
		g.imgui.Draw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.imgui != nil {
		g.imgui.Layout(outsideWidth, outsideHeight)
	}
	return outsideWidth, outsideHeight
}
