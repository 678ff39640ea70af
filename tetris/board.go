package tetris

// Board is the grid of locked tiles, indexed [row][col] with row 0 at the top.
type Board [RowCount][ColCount]Cell

// Completions lists the rows found full by the last completion pass in ascending order.
// Unused slots hold -1.
type Completions [4]int

// NoCompletions is a completion list with every slot unused.
var NoCompletions = Completions{-1, -1, -1, -1}

// Count returns the number of used slots.
func (c Completions) Count() int {
	n := 0
	for _, row := range c {
		if row != -1 {
			n++
		}
	}
	return n
}

// Rows returns the used slots.
func (c Completions) Rows() []int {
	rows := make([]int, 0, len(c))
	for _, row := range c {
		if row != -1 {
			rows = append(rows, row)
		}
	}
	return rows
}

// Contains reports whether row is listed.
func (c Completions) Contains(row int) bool {
	for _, r := range c {
		if r != -1 && r == row {
			return true
		}
	}
	return false
}

func (b *Board) occupied(row, col int) bool {
	return row >= 0 && row < RowCount && !b[row][col].Empty()
}

// Collides reports whether p leaves the board sideways or through the floor, or overlaps a
// locked tile. A piece between two rows is tested against both.
func (b *Board) Collides(p Piece) bool {
	base := p.BaseRow()
	straddling := p.Straddling()
	for t := range p.Shape().Tiles() {
		col := p.Col + t.X
		if col < 0 || col > ColCount-1 {
			return true
		}
		if p.Row+float32(t.Y) > RowCount-1 {
			return true
		}
		row := base + t.Y
		if b.occupied(row, col) {
			return true
		}
		if straddling && b.occupied(row+1, col) {
			return true
		}
	}
	return false
}

// Lock writes p's tiles into the board. Tiles outside the grid are dropped. Lock does not
// test for collision.
func (b *Board) Lock(p Piece) {
	base := p.BaseRow()
	for t := range p.Shape().Tiles() {
		row, col := base+t.Y, p.Col+t.X
		if row < 0 || row >= RowCount || col < 0 || col >= ColCount {
			continue
		}
		b[row][col] = Cell{Color: uint8(p.Index), Edge: t.Edge}
	}
}

// RowFull reports whether every column of row holds a tile.
func (b *Board) RowFull(row int) bool {
	for _, c := range b[row] {
		if c.Empty() {
			return false
		}
	}
	return true
}

// Completions finds the full rows, top to bottom.
func (b *Board) Completions() Completions {
	out := NoCompletions
	n := 0
	for row := 0; row < RowCount && n < len(out); row++ {
		if b.RowFull(row) {
			out[n] = row
			n++
		}
	}
	return out
}

// RemoveRows deletes each listed row in order. Rows above a removed row move down by one and
// row 0 is cleared. The tiles that closed over the gap have their edges rewritten so
// outlines stay closed.
func (b *Board) RemoveRows(c Completions) {
	for _, row := range c {
		if row < 0 || row >= RowCount {
			continue
		}
		copy(b[1:row+1], b[0:row])
		b[0] = [ColCount]Cell{}
		b.sever(row, Edge.severBelow)
		if row+1 < RowCount {
			b.sever(row+1, Edge.severAbove)
		}
	}
}

func (b *Board) sever(row int, remap func(Edge) Edge) {
	for col := range b[row] {
		b[row][col].Edge = remap(b[row][col].Edge)
	}
}

// Clear empties every cell.
func (b *Board) Clear() {
	*b = Board{}
}

// Height returns the number of rows from the highest tile to the floor.
func (b *Board) Height() int {
	for row := 0; row < RowCount; row++ {
		for _, c := range b[row] {
			if !c.Empty() {
				return RowCount - row
			}
		}
	}
	return 0
}
