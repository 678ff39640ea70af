package tetris

import (
	"math"
	"math/rand/v2"
)

// Piece is a tetromino on the board. Row is fractional so the piece can descend smoothly;
// Col is always whole.
type Piece struct {
	Index    int     `json:"index"`
	Rotation int     `json:"rotation"`
	Col      int     `json:"col"`
	Row      float32 `json:"row"`
}

const spawnCol = 3

// Spawn returns piece index in its spawn position. The flat bar starts two rows lower than
// the others because its tiles sit on the second pattern row.
func Spawn(index int) Piece {
	row := float32(-3)
	if index == 2 {
		row = -1
	}
	return Piece{Index: index, Col: spawnCol, Row: row}
}

// RandomPiece spawns a uniformly chosen shape.
func RandomPiece(r *rand.Rand) Piece {
	return Spawn(r.IntN(PieceCount))
}

// Shape returns the piece's tiles for its current rotation.
func (p Piece) Shape() Shape {
	return ShapeOf(p.Index, p.Rotation)
}

// BaseRow is the board row of the shape's top pattern row.
func (p Piece) BaseRow() int {
	return int(math.Floor(float64(p.Row)))
}

// Straddling reports whether the piece sits between two board rows.
func (p Piece) Straddling() bool {
	return float32(math.Floor(float64(p.Row))) != p.Row
}
