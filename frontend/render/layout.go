package render

import (
	"image"

	"github.com/plus3/tetrita/tetris"
)

// The view is drawn at a fixed logical size and scaled to the window.
const (
	ViewWidth  = 480
	ViewHeight = 320

	tileSize   = 15
	boardLeft  = 300
	boardTop   = 10
	boardW     = tileSize * tetris.ColCount
	boardH     = tileSize * tetris.RowCount
	guideWidth = 5
)

// rect is a rectangle in view coordinates, y growing downwards.
type rect struct {
	X, Y, W, H float32
}

// tileRect places a tile at a possibly fractional board position.
func tileRect(col, row float32) rect {
	return rect{
		X: boardLeft + tileSize*col,
		Y: boardTop + tileSize*row,
		W: tileSize,
		H: tileSize,
	}
}

func boardRect() image.Rectangle {
	return image.Rect(boardLeft, boardTop, boardLeft+boardW, boardTop+boardH)
}

// scaleAbout shrinks or grows r towards the point (ax, ay).
func (r rect) scaleAbout(ax, ay, s float32) rect {
	return rect{
		X: ax + (r.X-ax)*s,
		Y: ay + (r.Y-ay)*s,
		W: r.W * s,
		H: r.H * s,
	}
}

// guideRects are the marks under the board below every column the piece covers.
func guideRects(p tetris.Piece) []rect {
	var out []rect
	for x, covered := range p.Shape().Columns() {
		if covered {
			out = append(out, rect{
				X: boardLeft + tileSize*float32(p.Col+x),
				Y: boardTop + boardH + 0.75,
				W: tileSize,
				H: guideWidth - 0.75,
			})
		}
	}
	return out
}

// blurColumns returns, for each pattern column the piece covers, the board row of the
// middle of its topmost tile.
func blurColumns(p tetris.Piece) map[int]float32 {
	tops := make(map[int]float32, 4)
	for t := range p.Shape().Tiles() {
		top, ok := tops[t.X]
		y := p.Row + float32(t.Y) + 0.5
		if !ok || y < top {
			tops[t.X] = y
		}
	}
	return tops
}

// queueSlot positions a queued piece beside the board.
type queueSlot struct {
	rotation int
	row      float32
	col      int
	ox       int
	oy       float32
}

var queueSlots = [tetris.PieceCount]queueSlot{
	{0, 15, -15, 1, 1},
	{0, 12, -18, 1, 1.5},
	{0, 11, -16, 2, 2.5},
	{0, 12, -16, 2, 1},
	{1, 12, -15, 1, 1.5},
	{1, 15, -17, 2, 1.5},
	{1, 16, -15, 2, 1.5},
}

type placedTile struct {
	rect rect
	edge tetris.Edge
}

// queueTiles lays out a queued piece scaled by s about its slot anchor.
func queueTiles(index int, s float32) []placedTile {
	slot := queueSlots[index]
	ax := float32(boardLeft + slot.col*tileSize)
	ay := boardTop + tileSize*(slot.row+1)

	shape := tetris.ShapeOf(index, slot.rotation)
	var out []placedTile
	for t := range shape.Tiles() {
		r := tileRect(float32(slot.col-slot.ox+t.X), slot.row+slot.oy-3+float32(t.Y))
		out = append(out, placedTile{rect: r.scaleAbout(ax, ay, s), edge: t.Edge})
	}
	return out
}

// queueScales are the sizes of the two queued pieces while the queue advances.
func queueScales(s *tetris.Snapshot) [2]float32 {
	mu := s.Progress()
	return [2]float32{1 - mu, mu}
}

// completionVisible blinks the cleared rows every four frames.
func completionVisible(frame int) bool {
	return (frame>>2)%2 == 0
}
