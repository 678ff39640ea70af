package inspect

import (
	"sync/atomic"

	"github.com/plus3/tetrita/loop"
	"github.com/plus3/tetrita/tetris"
)

// Publisher copies the game state at the end of every tick so that readers on other
// goroutines never touch the game itself.
type Publisher struct {
	game   *tetris.Game
	latest atomic.Pointer[tetris.Snapshot]
}

func NewPublisher(g *tetris.Game) *Publisher {
	return &Publisher{game: g}
}

// Execute queues the copy behind the tick's button events.
func (p *Publisher) Execute(frame *loop.Frame) {
	frame.Commands.Defer(p.Publish)
}

// Publish takes a snapshot now.
func (p *Publisher) Publish() {
	s := p.game.Snapshot()
	p.latest.Store(&s)
}

// Latest returns the most recent snapshot, or nil before the first one.
func (p *Publisher) Latest() *tetris.Snapshot {
	return p.latest.Load()
}
