package tetris_test

import (
	"fmt"
	"testing"

	"github.com/plus3/tetrita/tetris"
	"github.com/stretchr/testify/assert"
)

func TestShapesHaveFourTiles(t *testing.T) {
	for index := range tetris.PieceCount {
		for rotation := range 4 {
			n := 0
			for range tetris.ShapeOf(index, rotation).Tiles() {
				n++
			}
			assert.Equal(t, 4, n, "piece %d rotation %d", index, rotation)
		}
	}
}

// Every link a tile advertises must point at a tile of the same shape linking back, and
// unlinked sides must face empty squares.
func TestShapeEdgesAgreeWithNeighbours(t *testing.T) {
	sides := []struct {
		link, back tetris.Link
		dx, dy     int
	}{
		{tetris.LinkUp, tetris.LinkDown, 0, -1},
		{tetris.LinkDown, tetris.LinkUp, 0, 1},
		{tetris.LinkLeft, tetris.LinkRight, -1, 0},
		{tetris.LinkRight, tetris.LinkLeft, 1, 0},
	}

	for index := range tetris.PieceCount {
		for rotation := range 4 {
			s := tetris.ShapeOf(index, rotation)
			at := func(x, y int) tetris.Edge {
				if x < 0 || x > 3 || y < 0 || y > 3 {
					return 0
				}
				return s[y][x]
			}
			t.Run(fmt.Sprintf("piece=%d,rotation=%d", index, rotation), func(t *testing.T) {
				for tile := range s.Tiles() {
					for _, side := range sides {
						neighbour := at(tile.X+side.dx, tile.Y+side.dy)
						if tile.Edge.Links().Has(side.link) {
							assert.NotZero(t, neighbour, "tile %+v", tile)
							assert.True(t, neighbour.Links().Has(side.back), "tile %+v", tile)
						} else {
							assert.Zero(t, neighbour, "tile %+v", tile)
						}
					}
				}
			})
		}
	}
}

func TestShapeRotationWraps(t *testing.T) {
	assert.Equal(t, tetris.ShapeOf(5, 1), tetris.ShapeOf(5, 5))
}

func TestShapeColumns(t *testing.T) {
	assert.Equal(t, [4]bool{true, true, true, true}, tetris.ShapeOf(2, 0).Columns())
	assert.Equal(t, [4]bool{false, false, true, false}, tetris.ShapeOf(2, 1).Columns())
	assert.Equal(t, [4]bool{false, true, true, false}, tetris.ShapeOf(3, 0).Columns())
}

func TestSpawn(t *testing.T) {
	for index := range tetris.PieceCount {
		p := tetris.Spawn(index)
		assert.Equal(t, 3, p.Col)
		assert.Equal(t, 0, p.Rotation)
		if index == 2 {
			assert.Equal(t, float32(-1), p.Row)
		} else {
			assert.Equal(t, float32(-3), p.Row)
		}
	}
}
