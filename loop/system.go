package loop

// System is one step of a tick. Systems run in registration order and may keep their own
// state between ticks.
type System interface {
	Execute(frame *Frame)
}

// SystemFunc adapts a plain function to a System.
type SystemFunc func(frame *Frame)

func (f SystemFunc) Execute(frame *Frame) {
	f(frame)
}
