package tetris

import "iter"

// patterns holds every shape in every rotation as four rows of four nibbles. Nibbles are
// read from the high end, so the top nibble of a row is column 0. A non-zero nibble is the
// edge of the occupied tile.
var patterns = [PieceCount * 4][4]uint16{
	{0x0000, 0x0000, 0xb9c0, 0x0e00}, {0x0000, 0x0d00, 0xb800, 0x0e00}, {0x0000, 0x0000, 0x0d00, 0xbac0}, {0x0000, 0x0d00, 0x07c0, 0x0e00},
	{0x0000, 0x03c0, 0x0200, 0x0e00}, {0x0000, 0x0000, 0xb140, 0x00e0}, {0x0000, 0x0d00, 0x0200, 0xb600}, {0x0000, 0x0000, 0xd000, 0x51c0},
	{0x0000, 0xb11c, 0x0000, 0x0000}, {0x00d0, 0x0020, 0x0020, 0x00e0}, {0x0000, 0xb11c, 0x0000, 0x0000}, {0x00d0, 0x0020, 0x0020, 0x00e0},
	{0x0000, 0x0000, 0x0340, 0x0560}, {0x0000, 0x0000, 0x0340, 0x0560}, {0x0000, 0x0000, 0x0340, 0x0560}, {0x0000, 0x0000, 0x0340, 0x0560},
	{0x0000, 0x0000, 0x31c0, 0xe000}, {0x0000, 0xb400, 0x0200, 0x0e00}, {0x0000, 0x0000, 0x00d0, 0xb160}, {0x0000, 0x0d00, 0x0200, 0x05c0},
	{0x0000, 0x0000, 0x03c0, 0xb600}, {0x0000, 0x0d00, 0x0540, 0x00e0}, {0x0000, 0x0000, 0x03c0, 0xb600}, {0x0000, 0x0d00, 0x0540, 0x00e0},
	{0x0000, 0x0000, 0xb400, 0x05c0}, {0x0000, 0x00d0, 0x0360, 0x0e00}, {0x0000, 0x0000, 0xb400, 0x05c0}, {0x0000, 0x00d0, 0x0360, 0x0e00},
}

// Shape is a 4×4 tile grid indexed [y][x]. Empty squares hold a zero edge.
type Shape [4][4]Edge

// Tile is an occupied square of a shape, relative to the shape's top-left corner.
type Tile struct {
	X, Y int
	Edge Edge
}

var shapes = decodePatterns()

func decodePatterns() (out [PieceCount][4]Shape) {
	for i, rows := range patterns {
		s := &out[i/4][i%4]
		for y, row := range rows {
			for x := 0; x < 4; x++ {
				s[y][x] = Edge(row >> 12 & 0xf)
				row <<= 4
			}
		}
	}
	return out
}

// ShapeOf returns the shape of piece index in the given rotation.
func ShapeOf(index, rotation int) Shape {
	return shapes[index][rotation&3]
}

// Tiles yields the occupied squares row by row.
func (s Shape) Tiles() iter.Seq[Tile] {
	return func(yield func(Tile) bool) {
		for y := range s {
			for x, e := range s[y] {
				if e == 0 {
					continue
				}
				if !yield(Tile{X: x, Y: y, Edge: e}) {
					return
				}
			}
		}
	}
}

// Columns reports which of the four columns hold at least one tile.
func (s Shape) Columns() [4]bool {
	var cols [4]bool
	for t := range s.Tiles() {
		cols[t.X] = true
	}
	return cols
}
