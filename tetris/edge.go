package tetris

// Edge selects one of the sixteen tile visuals. A non-zero edge records which neighbouring
// cells belong to the same piece, so adjacent tiles draw as one outline. Zero means empty.
type Edge uint8

// Link is a set of directions in which a tile joins its neighbours.
type Link uint8

const (
	LinkUp Link = 1 << iota
	LinkDown
	LinkLeft
	LinkRight
)

var edgeLinks = [16]Link{
	0x0: 0,
	0x1: LinkLeft | LinkRight,
	0x2: LinkUp | LinkDown,
	0x3: LinkRight | LinkDown,
	0x4: LinkLeft | LinkDown,
	0x5: LinkUp | LinkRight,
	0x6: LinkUp | LinkLeft,
	0x7: LinkUp | LinkDown | LinkRight,
	0x8: LinkUp | LinkDown | LinkLeft,
	0x9: LinkLeft | LinkRight | LinkDown,
	0xa: LinkLeft | LinkRight | LinkUp,
	0xb: LinkRight,
	0xc: LinkLeft,
	0xd: LinkDown,
	0xe: LinkUp,
	0xf: 0,
}

// severBelow rewrites tiles whose lower neighbour was removed.
var severBelow = [16]Edge{
	0x0, 0x1, 0xe, 0xb, 0xc, 0x5, 0x6, 0x5,
	0x6, 0x1, 0xa, 0xb, 0xc, 0xf, 0xe, 0xf,
}

// severAbove rewrites tiles whose upper neighbour was removed.
var severAbove = [16]Edge{
	0x0, 0x1, 0xd, 0x3, 0x4, 0xb, 0xc, 0x3,
	0x4, 0x9, 0x1, 0xb, 0xc, 0xd, 0xf, 0xf,
}

// Links reports the directions in which the tile joins its neighbours.
func (e Edge) Links() Link {
	return edgeLinks[e&0xf]
}

// Has reports whether every direction in o is set.
func (l Link) Has(o Link) bool {
	return l&o == o
}

func (e Edge) severBelow() Edge { return severBelow[e&0xf] }
func (e Edge) severAbove() Edge { return severAbove[e&0xf] }
