package model

import (
	"fmt"
	"sort"
)

// TempoTable is the immutable, strictly increasing list of tempo values a
// mechanical Maelzel metronome offers. The Maelzel-mode slider selects by
// index into this table.
type TempoTable struct {
	values []int
}

// NewStandardTempoTable builds the traditional Maelzel scale: the step
// between neighboring tempi widens as the tempo grows.
func NewStandardTempoTable() *TempoTable {
	segments := []struct {
		from, to, step int
	}{
		{40, 60, 2},
		{63, 72, 3},
		{76, 120, 4},
		{126, 144, 6},
		{152, 208, 8},
	}

	var values []int
	for _, seg := range segments {
		for v := seg.from; v <= seg.to; v += seg.step {
			values = append(values, v)
		}
	}

	return &TempoTable{values: values}
}

// Size returns the number of tempo entries
func (t *TempoTable) Size() int {
	return len(t.values)
}

// ValueAt returns the tempo at the given slider index
func (t *TempoTable) ValueAt(index int) (int, error) {
	if index < 0 || index >= len(t.values) {
		return 0, fmt.Errorf("tempo index out of range: %d (table size %d)", index, len(t.values))
	}
	return t.values[index], nil
}

// First returns the lowest tempo in the table
func (t *TempoTable) First() int {
	return t.values[0]
}

// Last returns the highest tempo in the table
func (t *TempoTable) Last() int {
	return t.values[len(t.values)-1]
}

// IndexOfNearestAtOrAbove returns the smallest index whose value is >= tempo.
// If tempo exceeds the last entry, the last index is returned, so the result
// is always a valid slider position.
func (t *TempoTable) IndexOfNearestAtOrAbove(tempo int) int {
	i := sort.SearchInts(t.values, tempo)
	if i >= len(t.values) {
		return len(t.values) - 1
	}
	return i
}
