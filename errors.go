package mdtable

import (
	"errors"
	"fmt"
)

// Sentinel errors for programmatic error handling.
var (
	ErrInvalidRowLength = errors.New("invalid row length")
	ErrNoRows           = errors.New("no rows specified")
)

// RowLengthError reports a row whose cell count does not match the table's
// established width. It unwraps to [ErrInvalidRowLength].
type RowLengthError struct {
	Expected int
	Actual   int
}

func (e *RowLengthError) Error() string {
	return fmt.Sprintf("%s: expected %d, got %d", ErrInvalidRowLength, e.Expected, e.Actual)
}

func (e *RowLengthError) Unwrap() error { return ErrInvalidRowLength }
