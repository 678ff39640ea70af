package loop

import "github.com/plus3/tetrita/tetris"

// TickSystem advances the game by one tick.
type TickSystem struct {
	Game *tetris.Game
}

func (s *TickSystem) Execute(frame *Frame) {
	s.Game.Update()
}
