package loop_test

import (
	"fmt"

	"github.com/plus3/tetrita/loop"
	"github.com/plus3/tetrita/tetris"
)

// ExampleScheduler wires a game to a scheduler. Input systems queue button events on the
// frame; they reach the game once every system of the tick has run.
func ExampleScheduler() {
	g := tetris.New(tetris.WithSeed(7), tetris.WithStartState(tetris.StartQuery))

	s := loop.NewScheduler(g)
	s.Register(&loop.TickSystem{Game: g})
	s.Register(loop.SystemFunc(func(frame *loop.Frame) {
		if frame.Tick == 1 {
			frame.Commands.Release(tetris.ButtonAny)
		}
	}))

	s.Once(1.0 / 60)
	fmt.Println(g.State())

	stats := s.Stats()
	fmt.Println(stats.Ticks, stats.SystemCount)

	// Output:
	// Play
	// 1 2
}
