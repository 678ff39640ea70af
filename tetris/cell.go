package tetris

// Cell is one square of the board. The zero Cell is empty.
type Cell struct {
	Color uint8 `json:"color"` // piece index that produced the tile
	Edge  Edge  `json:"edge"`
}

// Empty reports whether no tile occupies the cell.
func (c Cell) Empty() bool {
	return c.Edge == 0
}

// Byte packs the cell as color<<4 | edge, the layout tile atlases are indexed by.
func (c Cell) Byte() byte {
	return c.Color<<4 | byte(c.Edge&0xf)
}

// CellFromByte unpacks a value produced by Cell.Byte.
func CellFromByte(b byte) Cell {
	return Cell{Color: b >> 4, Edge: Edge(b & 0xf)}
}
