package tetris

import (
	"log/slog"
	"math/rand/v2"
)

// Option configures a Game at construction.
type Option func(*Game)

// WithRand sets the source used to pick new pieces.
func WithRand(r *rand.Rand) Option {
	return func(g *Game) {
		g.rng = r
	}
}

// WithSeed seeds a PCG source for piece selection, making games repeatable.
func WithSeed(seed uint64) Option {
	return WithRand(rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)))
}

// WithLogger sets the logger that receives state transitions.
func WithLogger(l *slog.Logger) Option {
	return func(g *Game) {
		if l != nil {
			g.log = l
		}
	}
}

// WithStartState sets the state entered on creation. The default is Intro.
func WithStartState(s State) Option {
	return func(g *Game) {
		g.state = s
		g.saved = s
	}
}
