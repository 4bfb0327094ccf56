package ecs

import (
	"errors"
	"fmt"
	"io"
	"reflect"

	"github.com/charmbracelet/log"
)

// ErrDuplicatePlugin is returned when the same plugin type is added twice.
var ErrDuplicatePlugin = errors.New("plugin already added")

// Plugin bundles component registration, resources and systems.
type Plugin interface {
	Build(app *App) error
}

// PluginFunc adapts a function to the Plugin interface.
type PluginFunc func(app *App) error

func (f PluginFunc) Build(app *App) error {
	return f(app)
}

// App owns a Storage and three schedulers: Startup runs once before the first
// update, Update runs once per tick, Render runs once per drawn frame.
type App struct {
	Registry *ComponentRegistry
	Storage  *Storage
	Logger   *log.Logger

	startup *Scheduler
	update  *Scheduler
	render  *Scheduler

	plugins map[reflect.Type]struct{}
	started bool
}

// NewApp creates an empty App. A nil logger discards output.
func NewApp(logger *log.Logger) *App {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	registry := NewComponentRegistry()
	storage := NewStorage(registry)

	return &App{
		Registry: registry,
		Storage:  storage,
		Logger:   logger,
		startup:  NewScheduler(storage),
		update:   NewScheduler(storage),
		render:   NewScheduler(storage),
		plugins:  make(map[reflect.Type]struct{}),
	}
}

// AddPlugins builds each plugin in order. Function plugins are never considered duplicates.
func (a *App) AddPlugins(plugins ...Plugin) error {
	for _, plugin := range plugins {
		t := reflect.TypeOf(plugin)
		if t.Kind() != reflect.Func {
			if _, ok := a.plugins[t]; ok {
				return fmt.Errorf("%w: %s", ErrDuplicatePlugin, t)
			}
			a.plugins[t] = struct{}{}
		}

		if err := plugin.Build(a); err != nil {
			return fmt.Errorf("build plugin %s: %w", t, err)
		}
		a.Logger.Debug("plugin added", "plugin", t.String())
	}
	return nil
}

// AddStartupSystems appends systems to the Startup phase.
func (a *App) AddStartupSystems(systems ...System) *App {
	for _, system := range systems {
		a.startup.Register(system)
	}
	return a
}

// AddSystems appends systems to the Update phase. They run chained, in the given order.
func (a *App) AddSystems(systems ...System) *App {
	for _, system := range systems {
		a.update.Register(system)
	}
	return a
}

// AddRenderSystems appends systems to the Render phase.
func (a *App) AddRenderSystems(systems ...System) *App {
	for _, system := range systems {
		a.render.Register(system)
	}
	return a
}

// Startup runs the Startup phase. Later calls do nothing.
func (a *App) Startup() {
	if a.started {
		return
	}
	a.started = true
	a.startup.Once(0)
}

// Update advances the simulation by dt seconds, running Startup first if needed.
func (a *App) Update(dt float64) {
	a.Startup()
	a.update.Once(dt)
}

// Draw runs the Render phase.
func (a *App) Draw() {
	a.render.Once(0)
}

// UpdateStats returns timings for the Update phase.
func (a *App) UpdateStats() *SchedulerStats {
	return a.update.GetStats()
}

// RenderStats returns timings for the Render phase.
func (a *App) RenderStats() *SchedulerStats {
	return a.render.GetStats()
}
