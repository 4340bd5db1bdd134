package mdtable

import "fmt"

// Rower provides row data. Any type that maps itself to an ordered
// sequence of cells can be placed in a table.
type Rower interface {
	Row() []string
}

// Row is an ordered sequence of string cells. Build one with [NewRow] or
// [Cells]; the zero value is an empty row.
type Row struct {
	cells []string
}

// NewRow builds a Row from values. Each value is rendered with its default
// textual representation; conversion never fails.
func NewRow(vals ...any) Row {
	return Cells(vals)
}

// Cells builds a Row from a slice of values, preserving order.
func Cells[S ~[]E, E any](vals S) Row {
	cells := make([]string, len(vals))
	for i, v := range vals {
		cells[i] = cellString(v)
	}
	return Row{cells: cells}
}

// Row returns the row's cells.
func (r Row) Row() []string { return r.cells }

// Len returns the number of cells.
func (r Row) Len() int { return len(r.cells) }

func cellString(v any) string {
	if s, ok := v.(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprintf("%v", v)
}
