package main

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/plus3/linkwalk/ecs"
	"github.com/plus3/linkwalk/player"
	"github.com/plus3/linkwalk/sprite"
)

// PlayerPanel shows the animation state of the player.
type PlayerPanel struct {
	Storage *ecs.Storage
}

func (pp *PlayerPanel) Render() {
	if !imgui.BeginV("Player", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}
	defer imgui.End()

	var ref *player.Ref
	if !pp.Storage.ReadSingleton(&ref) || ref.Entity == nil {
		imgui.Text("Not spawned")
		return
	}
	id, ok := pp.Storage.ResolveEntityRef(ref.Entity)
	if !ok {
		imgui.Text("Player is gone")
		return
	}

	heading := ecs.ReadComponent[player.Heading](pp.Storage, id)
	state := ecs.ReadComponent[player.AnimationState](pp.Storage, id)
	blinking := ecs.ReadComponent[player.Blinking](pp.Storage, id)
	atlas := ecs.ReadComponent[sprite.TextureAtlas](pp.Storage, id)
	timer := ecs.ReadComponent[player.AnimationTimer](pp.Storage, id)
	transform := ecs.ReadComponent[sprite.Transform](pp.Storage, id)
	if heading == nil || state == nil || blinking == nil || atlas == nil || timer == nil || transform == nil {
		imgui.Text("Player is missing components")
		return
	}

	imgui.Text(fmt.Sprintf("Entity: %s", id))
	imgui.Text(fmt.Sprintf("Position: %s", player.PositionOf(transform)))
	imgui.Text(fmt.Sprintf("Heading: %s", heading))
	imgui.Text(fmt.Sprintf("State: %s", state))
	imgui.Text(fmt.Sprintf("Blinking: %t", bool(*blinking)))
	imgui.Separator()

	var indices *player.AnimationIndices
	if pp.Storage.ReadSingleton(&indices) {
		imgui.Text(fmt.Sprintf("Frame: %d in [%d, %d]", atlas.Index, indices.First, indices.Last))
	}
	imgui.Text(fmt.Sprintf("Layout: %d", atlas.Layout))
	imgui.Text(fmt.Sprintf("Timer: %s / %s", timer.Elapsed(), timer.Duration()))
	imgui.ProgressBar(float32(timer.Elapsed().Seconds() / max(timer.Duration().Seconds(), 1e-9)))
}
