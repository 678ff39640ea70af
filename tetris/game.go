package tetris

import (
	"log/slog"
	"math"
	"math/rand/v2"
)

// Game is one running game: the board, the falling piece, the two queued pieces, the score
// and the lifecycle state. A Game is not safe for concurrent use.
type Game struct {
	current     Piece
	next        [2]Piece
	frame       int
	speed       float32
	state       State
	saved       State
	board       Board
	completions Completions

	holdthru     bool
	moving       bool
	accelerating bool

	score  int
	points int
	level  int
	lines  int
	locked int

	rng *rand.Rand
	log *slog.Logger
}

// New creates a game in the Intro state with a fresh board.
func New(opts ...Option) *Game {
	g := &Game{
		state:       Intro,
		saved:       Intro,
		completions: NoCompletions,
		log:         slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.rng == nil {
		g.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	g.Reset()
	return g
}

// Close ends the game. Further updates do nothing.
func (g *Game) Close() {
	g.log.Info("game closed", "score", g.score, "level", g.level, "lines", g.lines)
	g.enter(Done, 0)
}

// Reset starts a new game on an empty board. The lifecycle state is left unchanged.
func (g *Game) Reset() {
	g.current = RandomPiece(g.rng)
	g.next[0] = RandomPiece(g.rng)
	g.next[1] = RandomPiece(g.rng)
	g.frame = 0
	g.speed = InitSpeed
	g.holdthru = false
	g.score = 0
	g.points = 0
	g.level = 0
	g.lines = 0
	g.locked = 0
	g.completions = NoCompletions
	g.board.Clear()
}

// State returns the current lifecycle state.
func (g *Game) State() State {
	return g.state
}

func (g *Game) enter(s State, frame int) {
	if s != g.state {
		g.log.Debug("state changed", "from", g.state, "to", s, "frame", g.frame)
	}
	g.state = s
	g.frame = frame
}

// Update advances the game by one tick.
func (g *Game) Update() {
	for g.step() {
	}
}

// step runs a single tick and reports whether the same Update call owes another one.
func (g *Game) step() bool {
	if g.state.In(Paused | Done) {
		return false
	}
	g.frame++

	switch g.state {
	case Intro:
		if g.frame > IntroFrames {
			g.enter(StartQuery, 0)
		}

	case Play:
		speed := g.speed
		if g.accelerating {
			speed = AccelSpeed
		}
		g.current.Row += speed
		if g.board.Collides(g.current) {
			g.settle(false)
		}

	case Slamming:
		for range SlamSpeed {
			g.current.Row++
			if g.board.Collides(g.current) {
				g.settle(true)
				return true
			}
		}

	case Settle:
		// A piece slid off a ledge keeps falling.
		prev := g.current.Row
		g.current.Row += g.speed
		if !g.board.Collides(g.current) {
			g.enter(Play, recoverFrame)
			return false
		}
		g.current.Row = prev

		if float64(g.frame) > lockDelay(g.speed) || g.accelerating {
			g.lock()
		}

	case Completing:
		if g.frame > Duration {
			g.board.RemoveRows(g.completions)
			g.lines += g.completions.Count()
			g.pop()
		}

	case Locking:
		if g.frame > Duration {
			g.pop()
		}
	}
	return false
}

// lockDelay is the number of Settle ticks granted before a resting piece locks.
func lockDelay(speed float32) float64 {
	return math.Ceil(float64(float32(1 / float64(speed))))
}

// settle lifts the piece to the lowest whole row where it fits and starts the lock delay.
func (g *Game) settle(slam bool) {
	p := &g.current
	p.Row = float32(math.Floor(float64(p.Row)))
	for g.board.Collides(*p) && p.Row > -RowCount {
		p.Row--
	}

	g.points = lockPoints(g.frame, slam)
	frame := 0
	if slam {
		frame = slamSettleFrame
	}
	g.enter(Settle, frame)
}

func (g *Game) lock() {
	g.board.Lock(g.current)
	g.locked++

	g.completions = g.board.Completions()
	n := g.completions.Count()
	g.points += LineBonus(n)

	g.score += g.points
	g.level = LevelFor(g.score)
	g.speed = SpeedFor(g.level)

	if n > 0 {
		g.enter(Completing, 0)
		return
	}
	g.enter(Locking, 0)
}

// pop promotes the queued pieces. A piece that cannot enter the board ends the game.
func (g *Game) pop() {
	g.current = g.next[0]
	g.next[0] = g.next[1]
	if g.board.Collides(g.current) {
		g.log.Info("game over", "score", g.score, "level", g.level, "lines", g.lines)
		g.enter(EndQuery, 0)
		return
	}
	g.next[1] = RandomPiece(g.rng)
	g.enter(Play, 0)
	if g.moving || g.accelerating {
		g.accelerating = false
		g.holdthru = true
	}
}

// move shifts and rotates the piece together, undoing both if the result collides.
func (g *Game) move(dc, dr int) {
	if !g.state.In(Steerable) {
		return
	}
	prevCol, prevRot := g.current.Col, g.current.Rotation
	g.current.Col += dc
	g.current.Rotation = (g.current.Rotation + dr) % 4
	if g.board.Collides(g.current) {
		g.current.Col = prevCol
		g.current.Rotation = prevRot
	}
}

// Press handles a button going down.
func (g *Game) Press(b Button) {
	switch b {
	case ButtonSlam:
		if g.state == Play {
			g.enter(Slamming, 0)
		}
	case ButtonLeft:
		g.moving = true
		if !g.holdthru {
			g.move(-1, 0)
		}
	case ButtonRight:
		g.moving = true
		if !g.holdthru {
			g.move(1, 0)
		}
	case ButtonRotate:
		g.moving = true
		if !g.holdthru {
			g.move(0, 3)
		}
	case ButtonAccelerate:
		if !g.holdthru {
			g.accelerating = true
		}
	case ButtonYes, ButtonNo, ButtonQuit:
		g.enter(Done, 0)
	case ButtonPause:
		if !g.state.In(Paused | Done) {
			g.log.Debug("paused", "state", g.state)
			g.saved = g.state
			g.state = Paused
		}
	}
}

// Release handles a button coming up.
func (g *Game) Release(b Button) {
	switch b {
	case ButtonAny:
		if g.state == StartQuery {
			g.enter(Play, 0)
		}
	case ButtonLeft, ButtonRight, ButtonRotate:
		g.holdthru = false
		g.moving = false
	case ButtonAccelerate:
		g.holdthru = false
		g.accelerating = false
	case ButtonYes:
		if g.state == EndQuery {
			g.Reset()
			g.enter(StartQuery, 0)
		}
	case ButtonPause:
		if g.state == Paused {
			g.log.Debug("resumed", "state", g.saved)
			g.state = g.saved
		}
	}
}
