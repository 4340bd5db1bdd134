package mdtable

import (
	"bytes"
	"fmt"
	"io"
	"slices"
	"strings"
	"unicode/utf8"
)

// Table holds an optional header row and an ordered sequence of data rows,
// all with the same cell count. Construct one with [New], [FromSeq], or
// [FromChan]; grow it with [Table.AddRow].
type Table struct {
	header []string
	rows   [][]string
}

// New builds a table from an optional header and initial rows. An empty
// header means the table renders without header and separator lines, and
// the first row establishes the column count instead. Rows are validated
// in order; the first cell-count mismatch aborts construction with a
// [RowLengthError]. With neither a header nor rows the width would be
// undefined, so New returns [ErrNoRows].
func New[T Rower](header []string, rows ...T) (*Table, error) {
	if len(header) == 0 && len(rows) == 0 {
		return nil, ErrNoRows
	}
	t := &Table{header: slices.Clone(header)}
	for _, row := range rows {
		if err := t.AddRow(row); err != nil {
			return nil, err
		}
	}
	return t, nil
}

// AddRow validates row against the table's established width and appends
// it. On mismatch the table is left unchanged and the returned error
// unwraps to [ErrInvalidRowLength].
func (t *Table) AddRow(row Rower) error {
	cells := slices.Clone(row.Row())
	if w := t.Width(); w > 0 && len(cells) != w {
		return &RowLengthError{Expected: w, Actual: len(cells)}
	}
	t.rows = append(t.rows, cells)
	return nil
}

// Width returns the established cell count: the header's if present,
// otherwise the first data row's.
func (t *Table) Width() int {
	if len(t.header) > 0 {
		return len(t.header)
	}
	if len(t.rows) > 0 {
		return len(t.rows[0])
	}
	return 0
}

// Len returns the number of data rows. The header is not counted.
func (t *Table) Len() int { return len(t.rows) }

// widths returns the display width of every column: the longest data cell
// in the column, widened to the header cell when the header is longer.
// Every stored row has exactly Width cells, so no bounds checks here.
func (t *Table) widths() []int {
	widths := make([]int, t.Width())
	for i, h := range t.header {
		widths[i] = utf8.RuneCountInString(h)
	}
	for _, row := range t.rows {
		for i, cell := range row {
			if n := utf8.RuneCountInString(cell); n > widths[i] {
				widths[i] = n
			}
		}
	}
	return widths
}

// Write renders the table to w: a header line and dash separator when a
// header is present, then one line per data row in insertion order. Cells
// are left-aligned and padded with spaces to the column width.
func (t *Table) Write(w io.Writer) error {
	widths := t.widths()
	if len(t.header) > 0 {
		if err := writeLine(w, t.header, widths); err != nil {
			return err
		}
		sep := make([]string, len(widths))
		for i, width := range widths {
			sep[i] = strings.Repeat("-", width)
		}
		if _, err := fmt.Fprintf(w, "| %s |\n", strings.Join(sep, " | ")); err != nil {
			return err
		}
	}
	for _, row := range t.rows {
		if err := writeLine(w, row, widths); err != nil {
			return err
		}
	}
	return nil
}

// String renders the table; it implements [fmt.Stringer].
func (t *Table) String() string {
	var buf bytes.Buffer
	_ = t.Write(&buf) // a bytes.Buffer write cannot fail
	return buf.String()
}

func writeLine(w io.Writer, cells []string, widths []int) error {
	padded := make([]string, len(widths))
	for i, width := range widths {
		padded[i] = pad(cells[i], width)
	}
	_, err := fmt.Fprintf(w, "| %s |\n", strings.Join(padded, " | "))
	return err
}

func pad(s string, width int) string {
	n := width - utf8.RuneCountInString(s)
	if n <= 0 {
		return s
	}
	return s + strings.Repeat(" ", n)
}
