package mdtable

import (
	"iter"
	"slices"
)

// FromSeq builds a table from an iterator of rows. It is equivalent to
// [New] with the iterated rows in order, including the validation rules.
func FromSeq[T Rower](header []string, seq iter.Seq[T]) (*Table, error) {
	t := &Table{header: slices.Clone(header)}
	for row := range seq {
		if err := t.AddRow(row); err != nil {
			return nil, err
		}
	}
	if len(t.header) == 0 && len(t.rows) == 0 {
		return nil, ErrNoRows
	}
	return t, nil
}

// FromChan builds a table from a channel of rows. It is a thin wrapper
// around [FromSeq] and returns once the channel is closed.
func FromChan[T Rower](header []string, ch <-chan T) (*Table, error) {
	return FromSeq(header, chanToSeq(ch))
}

func chanToSeq[T any](ch <-chan T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for row := range ch {
			if !yield(row) {
				return
			}
		}
	}
}
