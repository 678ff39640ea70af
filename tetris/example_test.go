package tetris_test

import (
	"fmt"

	"github.com/plus3/tetrita/tetris"
)

// Example drives a game through one slammed piece and quits.
func Example() {
	g := tetris.New(tetris.WithSeed(1), tetris.WithStartState(tetris.StartQuery))

	g.Release(tetris.ButtonAny)
	fmt.Println(g.State())

	g.Press(tetris.ButtonSlam)
	for g.State() == tetris.Slamming {
		g.Update()
	}
	fmt.Println(g.State())

	s := g.Snapshot()
	fmt.Println("score:", s.Score, "locked:", s.Locked)

	g.Press(tetris.ButtonQuit)
	fmt.Println(g.State())

	// Output:
	// Play
	// Locking
	// score: 2 locked: 1
	// Done
}
