package textboard

import (
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/plus3/tetrita/tetris"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var printer = message.NewPrinter(language.English)

// Number formats n with thousands separators.
func Number[T ~int | ~int64 | ~uint64](n T) string {
	return printer.Sprintf("%d", n)
}

// Decimal formats f with thousands separators and the given number of decimals.
func Decimal(f float64, places int) string {
	return printer.Sprint(number.Decimal(f, number.Scale(places)))
}

// Table is a list of rows under a header, aligned by display width.
type Table struct {
	Header []string
	Rows   [][]string
	// RightAlign marks columns whose cells are padded on the left.
	RightAlign []bool
}

func (t *Table) widths() []int {
	w := make([]int, len(t.Header))
	for i, h := range t.Header {
		w[i] = runewidth.StringWidth(h)
	}
	for _, row := range t.Rows {
		for i, c := range row {
			if i >= len(w) {
				w = append(w, 0)
			}
			w[i] = max(w[i], runewidth.StringWidth(c))
		}
	}
	return w
}

func (t *Table) right(i int) bool {
	return i < len(t.RightAlign) && t.RightAlign[i]
}

func (t *Table) line(sb *strings.Builder, cells []string, widths []int) {
	for i, width := range widths {
		var c string
		if i < len(cells) {
			c = cells[i]
		}
		if i > 0 {
			sb.WriteString("  ")
		}
		if t.right(i) {
			sb.WriteString(runewidth.FillLeft(c, width))
		} else if i == len(widths)-1 {
			sb.WriteString(c)
		} else {
			sb.WriteString(runewidth.FillRight(c, width))
		}
	}
	sb.WriteByte('\n')
}

// String renders the header, a rule and the rows.
func (t *Table) String() string {
	widths := t.widths()
	var sb strings.Builder
	t.line(&sb, t.Header, widths)

	total := 0
	for _, w := range widths {
		total += w
	}
	if len(widths) > 1 {
		total += 2 * (len(widths) - 1)
	}
	sb.WriteString(strings.Repeat("-", total))
	sb.WriteByte('\n')

	for _, row := range t.Rows {
		t.line(&sb, row, widths)
	}
	return sb.String()
}

// WriteTo writes the rendered table to w.
func (t *Table) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, t.String())
	return int64(n), err
}

// Summary lists the figures of a snapshot as label/value rows.
func Summary(s *tetris.Snapshot) *Table {
	return &Table{
		Header:     []string{"field", "value"},
		RightAlign: []bool{false, true},
		Rows: [][]string{
			{"state", s.State.String()},
			{"score", Number(s.Score)},
			{"level", Number(s.Level)},
			{"lines", Number(s.Lines)},
			{"pieces", Number(s.Locked)},
			{"speed", Decimal(float64(s.Speed), 2)},
		},
	}
}
