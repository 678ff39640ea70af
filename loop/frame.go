package loop

// Frame is handed to every system during a tick.
type Frame struct {
	// Tick counts ticks since the scheduler was created, starting at 1.
	Tick      uint64
	DeltaTime float64
	Commands  *Commands
}

func newFrame(tick uint64, dt float64) *Frame {
	return &Frame{
		Tick:      tick,
		DeltaTime: dt,
		Commands:  newCommands(),
	}
}
