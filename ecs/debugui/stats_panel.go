package debugui

import (
	"fmt"
	"time"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/linkwalk/ecs"
)

// Phase names a scheduler whose timings are shown in the stats panel.
type Phase struct {
	Name  string
	Stats func() *ecs.SchedulerStats
}

// StatsPanel shows frame times, storage counts and per-system timings.
type StatsPanel struct {
	Storage *ecs.Storage
	Phases  []Phase

	frames *FrameHistory
	timer  *FrameTimer
}

func NewStatsPanel(storage *ecs.Storage, historyFrames int, phases ...Phase) *StatsPanel {
	return &StatsPanel{
		Storage: storage,
		Phases:  phases,
		frames:  NewFrameHistory(historyFrames),
		timer:   NewFrameTimer(),
	}
}

func (ps *StatsPanel) Render() {
	ps.frames.Push(ps.timer.GetDeltaTime() * 1000.0)

	if !imgui.BeginV("Performance Stats", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	stats := ps.Storage.CollectStats()

	imgui.Text(fmt.Sprintf("Total Entities: %d", stats.TotalEntityCount))
	imgui.Text(fmt.Sprintf("Archetypes: %d", stats.ArchetypeCount))
	imgui.Text(fmt.Sprintf("Singletons: %d", stats.SingletonCount))
	imgui.Text(fmt.Sprintf("Change Tick: %d", ps.Storage.ChangeTick()))

	avg := ps.frames.Average()
	if avg > 0 {
		imgui.Text(fmt.Sprintf("Avg Frame Time: %.2f ms (%.0f FPS)", avg, 1000.0/avg))
	}

	imgui.Separator()
	imgui.Text("Frame Time Graph (ms)")
	samples := ps.frames.Samples()
	imgui.PlotLinesFloatPtr("##frametime", &samples[0], int32(len(samples)))

	for _, phase := range ps.Phases {
		if imgui.TreeNodeStr(phase.Name + " Systems") {
			renderSystemTable(phase.Name, phase.Stats())
			imgui.TreePop()
		}
	}

	if imgui.TreeNodeStr("Archetype Details") {
		const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
		if imgui.BeginTableV("ArchStatsTable", 3, tableFlags, imgui.NewVec2(0, 0), 0) {
			imgui.TableSetupColumn("Archetype ID")
			imgui.TableSetupColumn("Components")
			imgui.TableSetupColumn("Entity Count")
			imgui.TableHeadersRow()

			for _, arch := range stats.ArchetypeBreakdown {
				imgui.TableNextRow()
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("0x%X", arch.ID))
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("%d", len(arch.ComponentTypes)))
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("%d", arch.EntityCount))
			}

			imgui.EndTable()
		}
		imgui.TreePop()
	}

	if imgui.TreeNodeStr("Singleton Details") {
		for _, singletonType := range stats.SingletonTypes {
			imgui.BulletText(singletonType)
		}
		imgui.TreePop()
	}

	imgui.End()
}

func renderSystemTable(id string, stats *ecs.SchedulerStats) {
	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
	if !imgui.BeginTableV(id+"SystemTable", 4, tableFlags, imgui.NewVec2(0, 0), 0) {
		return
	}
	imgui.TableSetupColumn("System")
	imgui.TableSetupColumn("Runs")
	imgui.TableSetupColumn("Last")
	imgui.TableSetupColumn("Avg")
	imgui.TableHeadersRow()

	for _, system := range stats.Systems {
		imgui.TableNextRow()
		imgui.TableNextColumn()
		imgui.Text(system.Name)
		imgui.TableNextColumn()
		imgui.Text(fmt.Sprintf("%d", system.ExecutionCount))
		imgui.TableNextColumn()
		imgui.Text(system.LastDuration.String())
		imgui.TableNextColumn()
		imgui.Text(system.AvgDuration.String())
	}

	imgui.EndTable()
}

// FrameHistory is a fixed-size ring of frame times.
type FrameHistory struct {
	samples []float32
	next    int
	filled  int
}

func NewFrameHistory(size int) *FrameHistory {
	return &FrameHistory{samples: make([]float32, max(size, 1))}
}

func (h *FrameHistory) Push(ms float32) {
	h.samples[h.next] = ms
	h.next = (h.next + 1) % len(h.samples)
	h.filled = min(h.filled+1, len(h.samples))
}

// Average is the mean of the recorded samples, 0 when empty.
func (h *FrameHistory) Average() float32 {
	if h.filled == 0 {
		return 0
	}
	var sum float32
	for _, s := range h.samples {
		sum += s
	}
	return sum / float32(h.filled)
}

// Samples returns the ring buffer in storage order.
func (h *FrameHistory) Samples() []float32 {
	return h.samples
}

type FrameTimer struct {
	lastFrameTime time.Time
}

func NewFrameTimer() *FrameTimer {
	return &FrameTimer{
		lastFrameTime: time.Now(),
	}
}

func (ft *FrameTimer) GetDeltaTime() float32 {
	now := time.Now()
	delta := float32(now.Sub(ft.lastFrameTime).Seconds())
	ft.lastFrameTime = now
	return delta
}
