package tetris

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSeverTablesDropOneLink(t *testing.T) {
	for e := Edge(1); e < 16; e++ {
		below := e.severBelow()
		assert.NotZero(t, below)
		assert.Equal(t, e.Links()&^LinkDown, below.Links(), "severBelow(%#x)", uint8(e))

		above := e.severAbove()
		assert.NotZero(t, above)
		assert.Equal(t, e.Links()&^LinkUp, above.Links(), "severAbove(%#x)", uint8(e))
	}
	assert.Zero(t, Edge(0).severBelow())
	assert.Zero(t, Edge(0).severAbove())
}
