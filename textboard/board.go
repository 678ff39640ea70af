// Package textboard renders game snapshots and result tables as plain text.
package textboard

import (
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/plus3/tetrita/tetris"
)

// Style picks the glyphs of a rendering. Every cell is two glyphs wide: the first fills the
// tile and the second fills the gap to its right neighbour.
type Style struct {
	Empty   [2]string
	Locked  string
	Piece   string
	Cleared string
	Gap     string
	Side    string
	Bottom  string
	Corner  string
}

var (
	// Unicode draws with block and box characters.
	Unicode = Style{
		Empty:   [2]string{"·", " "},
		Locked:  "█",
		Piece:   "▓",
		Cleared: "═",
		Gap:     " ",
		Side:    "│",
		Bottom:  "─",
		Corner:  "└┘",
	}
	// ASCII sticks to 7-bit characters, for fonts without box glyphs.
	ASCII = Style{
		Empty:   [2]string{".", " "},
		Locked:  "#",
		Piece:   "@",
		Cleared: "=",
		Gap:     " ",
		Side:    "|",
		Bottom:  "-",
		Corner:  "++",
	}
)

type mark uint8

const (
	markEmpty mark = iota
	markLocked
	markPiece
	markCleared
)

type cell struct {
	mark mark
	edge tetris.Edge
}

// grid overlays the live piece and the cleared rows on the board.
func grid(s *tetris.Snapshot) [tetris.RowCount][tetris.ColCount]cell {
	var g [tetris.RowCount][tetris.ColCount]cell
	for row := range tetris.RowCount {
		for col := range tetris.ColCount {
			c := s.Board[row][col]
			if c.Empty() {
				continue
			}
			m := markLocked
			if s.State == tetris.Completing && s.Completions.Contains(row) {
				m = markCleared
			}
			g[row][col] = cell{mark: m, edge: c.Edge}
		}
	}

	if s.State.In(tetris.Falling) {
		base := s.Current.BaseRow()
		for t := range s.Current.Shape().Tiles() {
			row, col := base+t.Y, s.Current.Col+t.X
			if row < 0 || row >= tetris.RowCount || col < 0 || col >= tetris.ColCount {
				continue
			}
			g[row][col] = cell{mark: markPiece, edge: t.Edge}
		}
	}
	return g
}

func (st Style) glyph(c cell) (fill, gap string) {
	switch c.mark {
	case markEmpty:
		return st.Empty[0], st.Empty[1]
	case markLocked:
		fill = st.Locked
	case markPiece:
		fill = st.Piece
	case markCleared:
		fill = st.Cleared
	}
	gap = st.Gap
	if c.edge.Links().Has(tetris.LinkRight) {
		gap = fill
	}
	return fill, gap
}

// Lines renders the board framed on three sides, one string per board row plus the
// bottom frame.
func (st Style) Lines(s *tetris.Snapshot) []string {
	g := grid(s)
	lines := make([]string, 0, tetris.RowCount+1)

	var sb strings.Builder
	for row := range tetris.RowCount {
		sb.Reset()
		sb.WriteString(st.Side)
		for col := range tetris.ColCount {
			fill, gap := st.glyph(g[row][col])
			sb.WriteString(fill)
			sb.WriteString(gap)
		}
		sb.WriteString(st.Side)
		lines = append(lines, sb.String())
	}

	inner := runewidth.StringWidth(lines[0]) - 2*runewidth.StringWidth(st.Side)
	corner := []rune(st.Corner)
	rule := strings.Repeat(st.Bottom, inner/max(runewidth.StringWidth(st.Bottom), 1))
	lines = append(lines, string(corner[0])+rule+string(corner[1]))
	return lines
}

// String renders the board as a single newline-terminated block.
func (st Style) String(s *tetris.Snapshot) string {
	return strings.Join(st.Lines(s), "\n") + "\n"
}

// Write renders the board to w.
func (st Style) Write(w io.Writer, s *tetris.Snapshot) error {
	_, err := io.WriteString(w, st.String(s))
	return err
}
