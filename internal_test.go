package mdtable

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPad(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "ab   ", pad("ab", 5))
	assert.Equal(t, "ab", pad("ab", 2))
	assert.Equal(t, "ab", pad("ab", 1))
	// Padding counts codepoints, not bytes.
	assert.Equal(t, "héllo ", pad("héllo", 6))
}

func TestCellString(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "7", cellString(7))
	assert.Equal(t, "x", cellString("x"))
	assert.Equal(t, "<nil>", cellString(nil))
	assert.Equal(t, "[1 2]", cellString([]int{1, 2}))
}

func TestWidths(t *testing.T) {
	t.Parallel()
	tbl := &Table{
		header: []string{"Name", "Age"},
		rows:   [][]string{{"Jessica", "28"}, {"Dennis", "22"}},
	}
	assert.Equal(t, []int{7, 3}, tbl.widths())
}

func TestWidthsNoRows(t *testing.T) {
	t.Parallel()
	tbl := &Table{header: []string{"Name", "Age"}}
	assert.Equal(t, []int{4, 3}, tbl.widths())
}

func TestWidthsNoHeader(t *testing.T) {
	t.Parallel()
	tbl := &Table{rows: [][]string{{"e", "fg"}}}
	assert.Equal(t, []int{1, 2}, tbl.widths())
}
