package loop

import "github.com/plus3/tetrita/tetris"

// Controller receives the button events collected during a tick. *tetris.Game satisfies it.
type Controller interface {
	Press(b tetris.Button)
	Release(b tetris.Button)
}

// Commands buffers button events and deferred calls so that systems never mutate the game
// while other systems of the same tick are still reading it.
type Commands struct {
	events []event
	defers []func()
}

type event struct {
	button  tetris.Button
	pressed bool
}

func newCommands() *Commands {
	return &Commands{}
}

// Press queues a button press.
func (c *Commands) Press(b tetris.Button) {
	c.events = append(c.events, event{button: b, pressed: true})
}

// Release queues a button release.
func (c *Commands) Release(b tetris.Button) {
	c.events = append(c.events, event{button: b})
}

// Defer queues fn to run after all button events have been delivered.
func (c *Commands) Defer(fn func()) {
	c.defers = append(c.defers, fn)
}

// Len returns the number of queued operations.
func (c *Commands) Len() int {
	return len(c.events) + len(c.defers)
}

// Flush delivers the events to target in the order they were queued, then runs the deferred
// calls, and resets the buffer.
func (c *Commands) Flush(target Controller) {
	for _, e := range c.events {
		if e.pressed {
			target.Press(e.button)
		} else {
			target.Release(e.button)
		}
	}
	for _, fn := range c.defers {
		fn()
	}

	c.events = c.events[:0]
	c.defers = c.defers[:0]
}
