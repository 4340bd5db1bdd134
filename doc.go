// Package mdtable builds pipe-delimited plain-text tables (the common
// "markdown table" layout) with column widths sized to content.
//
// A [Table] holds an optional header row and an ordered sequence of data
// rows. Every row must have the same number of cells: the header (or, with
// no header, the first row) fixes that width, and every later row is
// validated against it.
//
// # Rows
//
// Anything implementing [Rower] can become a row. [Row] is the ready-made
// implementation; build one from loose values with [NewRow] or from a
// slice with [Cells]. Caller types map themselves:
//
//	type User struct {
//		Name string
//		Age  int
//	}
//
//	func (u User) Row() []string {
//		return []string{u.Name, strconv.Itoa(u.Age)}
//	}
//
//	users := []User{{Name: "Jessica", Age: 28}, {Name: "Dennis", Age: 22}}
//	t, err := mdtable.New([]string{"Name", "Age"}, users...)
//	if err != nil {
//		return err
//	}
//	fmt.Print(t)
//
// renders:
//
//	| Name    | Age |
//	| ------- | --- |
//	| Jessica | 28  |
//	| Dennis  | 22  |
//
// A nil header is allowed: the table then renders data lines only, with no
// header or separator line.
//
// # Widths
//
// Each column is padded to its longest data cell, widened to the header
// cell when the header is longer. Width is measured in codepoints, not
// rendered terminal width.
//
// # Streaming
//
// [FromSeq] and [FromChan] build a table from an iterator or channel of
// rows, for callers that produce rows incrementally.
//
// # Errors
//
//   - [ErrInvalidRowLength] — a row's cell count does not match the
//     table's established width. The error is a [RowLengthError] carrying
//     the expected and actual counts.
//   - [ErrNoRows] — construction with neither a header nor any rows;
//     such a table has no width to validate against.
package mdtable
