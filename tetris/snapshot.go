package tetris

// Snapshot is a copy of everything a renderer needs. It shares no memory with the Game.
type Snapshot struct {
	State        State       `json:"state"`
	Frame        int         `json:"frame"`
	Board        Board       `json:"board"`
	Current      Piece       `json:"current"`
	Next         [2]Piece    `json:"next"`
	Completions  Completions `json:"completions"`
	Score        int         `json:"score"`
	Level        int         `json:"level"`
	Points       int         `json:"points"`
	Speed        float32     `json:"speed"`
	Lines        int         `json:"lines"`
	Locked       int         `json:"locked"`
	Accelerating bool        `json:"accelerating"`
}

// Snapshot copies the drawable state of the game.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		State:        g.state,
		Frame:        g.frame,
		Board:        g.board,
		Current:      g.current,
		Next:         g.next,
		Completions:  g.completions,
		Score:        g.score,
		Level:        g.level,
		Points:       g.points,
		Speed:        g.speed,
		Lines:        g.lines,
		Locked:       g.locked,
		Accelerating: g.accelerating,
	}
}

// IntroFade runs from 0 to 1 across the intro and stays at 1 afterwards.
func (s *Snapshot) IntroFade() float32 {
	if s.State != Intro {
		return 1
	}
	return min(float32(s.Frame)/IntroFrames, 1)
}

// Progress is how far the lock or completion flash has run, 0 outside those states.
func (s *Snapshot) Progress() float32 {
	if !s.State.In(Animating) {
		return 0
	}
	return min(float32(s.Frame)/Duration, 1)
}

// Landing returns the current piece dropped straight down to where it would rest.
func (s *Snapshot) Landing() Piece {
	p := s.Current
	p.Row = float32(p.BaseRow())
	for !s.Board.Collides(p) {
		p.Row++
	}
	p.Row--
	return p
}
