package main

import (
	"fmt"
	"math/rand/v2"

	"github.com/plus3/tetrita/loop"
	"github.com/plus3/tetrita/tetris"
)

// maxActions bounds the taps spent steering one piece before it is slammed where it is.
const maxActions = 16

// tap presses and releases b within one tick.
func tap(c *loop.Commands, b tetris.Button) {
	c.Press(b)
	c.Release(b)
}

// dialogs answers the start and end screens the same way for every bot. It reports whether
// the tick was spent on a dialog.
func dialogs(c *loop.Commands, state tetris.State) bool {
	switch state {
	case tetris.StartQuery:
		c.Release(tetris.ButtonAny)
		return true
	case tetris.EndQuery:
		c.Press(tetris.ButtonNo)
		return true
	}
	return false
}

var botKinds = []string{"greedy", "random"}

func newBot(kind string, g *tetris.Game, seed uint64) (loop.System, error) {
	switch kind {
	case "greedy":
		return &GreedyBot{Game: g}, nil
	case "random":
		return &RandomBot{Game: g, rng: rand.New(rand.NewPCG(seed, seed+1))}, nil
	}
	return nil, fmt.Errorf("unknown bot %q", kind)
}

// GreedyBot drops every piece where it scores best by a fixed board heuristic.
type GreedyBot struct {
	Game *tetris.Game

	target  tetris.Piece
	planned int
	actions int
}

func (b *GreedyBot) Execute(frame *loop.Frame) {
	s := b.Game.Snapshot()
	if dialogs(frame.Commands, s.State) || s.State != tetris.Play {
		return
	}

	// Locked counts the pieces already down, so it identifies the live piece.
	if b.planned != s.Locked+1 {
		b.target = bestPlacement(&s.Board, s.Current)
		b.planned = s.Locked + 1
		b.actions = 0
	}

	cur := s.Current
	b.actions++
	switch {
	case b.actions > maxActions:
		frame.Commands.Press(tetris.ButtonSlam)
	case cur.Rotation != b.target.Rotation:
		tap(frame.Commands, tetris.ButtonRotate)
	case cur.Col < b.target.Col:
		tap(frame.Commands, tetris.ButtonRight)
	case cur.Col > b.target.Col:
		tap(frame.Commands, tetris.ButtonLeft)
	default:
		frame.Commands.Press(tetris.ButtonSlam)
	}
}

// RandomBot mashes buttons.
type RandomBot struct {
	Game *tetris.Game
	rng  *rand.Rand
}

var randomActions = []tetris.Button{
	tetris.ButtonLeft,
	tetris.ButtonRight,
	tetris.ButtonRotate,
	tetris.ButtonAccelerate,
	tetris.ButtonSlam,
}

func (b *RandomBot) Execute(frame *loop.Frame) {
	state := b.Game.State()
	if dialogs(frame.Commands, state) || !state.In(tetris.Steerable) {
		return
	}
	if b.rng.IntN(4) != 0 {
		return
	}
	button := randomActions[b.rng.IntN(len(randomActions))]
	if button == tetris.ButtonSlam && b.rng.IntN(4) != 0 {
		return
	}
	tap(frame.Commands, button)
}

// bestPlacement tries every rotation and column for p and returns the resting position
// with the best evaluation. If nothing fits, p is returned unchanged.
func bestPlacement(board *tetris.Board, p tetris.Piece) tetris.Piece {
	best, bestScore := p, 0.0
	found := false
	for rot := range 4 {
		for col := -3; col < tetris.ColCount; col++ {
			q := tetris.Piece{Index: p.Index, Rotation: rot, Col: col, Row: float32(p.BaseRow())}
			if board.Collides(q) {
				continue
			}
			for !board.Collides(q) {
				q.Row++
			}
			q.Row--

			score := evaluate(board, q)
			if !found || score > bestScore {
				best, bestScore, found = q, score, true
			}
		}
	}
	return best
}

// evaluate locks q on a copy of board and rates the result.
func evaluate(board *tetris.Board, q tetris.Piece) float64 {
	after := *board
	for t := range q.Shape().Tiles() {
		if q.BaseRow()+t.Y < 0 {
			return -1e9
		}
	}
	after.Lock(q)
	c := after.Completions()
	after.RemoveRows(c)

	heights := columnHeights(&after)
	var aggregate, bumpiness int
	for col, h := range heights {
		aggregate += h
		if col > 0 {
			bumpiness += abs(h - heights[col-1])
		}
	}
	return -0.51*float64(aggregate) +
		0.76*float64(c.Count()) -
		0.36*float64(holes(&after, heights)) -
		0.18*float64(bumpiness)
}

func columnHeights(b *tetris.Board) [tetris.ColCount]int {
	var h [tetris.ColCount]int
	for col := range tetris.ColCount {
		for row := range tetris.RowCount {
			if !b[row][col].Empty() {
				h[col] = tetris.RowCount - row
				break
			}
		}
	}
	return h
}

// holes counts empty cells covered by a filled cell in the same column.
func holes(b *tetris.Board, heights [tetris.ColCount]int) int {
	n := 0
	for col, h := range heights {
		for row := tetris.RowCount - h; row < tetris.RowCount; row++ {
			if b[row][col].Empty() {
				n++
			}
		}
	}
	return n
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
