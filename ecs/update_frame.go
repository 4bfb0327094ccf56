package ecs

// UpdateFrame is handed to every system execution.
type UpdateFrame struct {
	DeltaTime float64
	Commands  *Commands
	Storage   *Storage

	// Tick is the change tick of the running system; LastRun is the tick of
	// its previous execution (0 before the first).
	Tick    uint64
	LastRun uint64
}

func newUpdateFrame(dt float64, storage *Storage) *UpdateFrame {
	return &UpdateFrame{
		DeltaTime: dt,
		Commands:  newCommands(),
		Storage:   storage,
		Tick:      storage.changeTick,
	}
}
