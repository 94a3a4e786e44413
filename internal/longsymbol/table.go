package longsymbol

import (
	"fmt"
	"maps"
	"slices"
)

// LongSymbols maps a logical symbol id to the ordered cell ids it is drawn with.
type LongSymbols map[int64][]int64

// Table is an indexed, validated LongSymbols snapshot.
type Table struct {
	symbols LongSymbols
	owner   map[int64]int64 // cell -> logical
	ordinal map[int64]int   // cell -> index in its sequence
}

// NewTable validates long symbols and builds the reverse index.
func NewTable(longSymbols LongSymbols) (*Table, error) {
	t := &Table{
		symbols: make(LongSymbols, len(longSymbols)),
		owner:   make(map[int64]int64),
		ordinal: make(map[int64]int),
	}
	for _, id := range t.sortedIDs(longSymbols) {
		cells := longSymbols[id]
		if len(cells) == 0 {
			return nil, fmt.Errorf("%w: symbol %d has no cells", ErrInvalidTable, id)
		}
		for i, cell := range cells {
			if prev, ok := t.owner[cell]; ok {
				return nil, fmt.Errorf("%w: cell %d used by symbols %d and %d", ErrInvalidTable, cell, prev, id)
			}
			if _, ok := longSymbols[cell]; ok {
				return nil, fmt.Errorf("%w: cell %d of symbol %d is also a logical id", ErrInvalidTable, cell, id)
			}
			t.owner[cell] = id
			t.ordinal[cell] = i
		}
		t.symbols[id] = slices.Clone(cells)
	}
	return t, nil
}

func (t *Table) sortedIDs(longSymbols LongSymbols) []int64 {
	return slices.Sorted(maps.Keys(longSymbols))
}

// IDs returns the logical ids in ascending order.
func (t *Table) IDs() []int64 {
	return t.sortedIDs(t.symbols)
}

// Len returns the number of long symbols.
func (t *Table) Len() int { return len(t.symbols) }

// IsLogical reports whether id is a long symbol key.
func (t *Table) IsLogical(id int64) bool {
	_, ok := t.symbols[id]
	return ok
}

// IsCell reports whether id is one of the cells of some long symbol.
func (t *Table) IsCell(id int64) bool {
	_, ok := t.owner[id]
	return ok
}

// IsMember reports whether id is a long symbol key or one of its cells.
func (t *Table) IsMember(id int64) bool {
	return t.IsLogical(id) || t.IsCell(id)
}

// Owner returns the logical id that cell belongs to.
func (t *Table) Owner(cell int64) (int64, bool) {
	id, ok := t.owner[cell]
	return id, ok
}

// Ordinal returns the position of cell inside its owner's sequence.
func (t *Table) Ordinal(cell int64) (int, bool) {
	i, ok := t.ordinal[cell]
	return i, ok
}

// Cells returns the cell sequence of id, or of id's owner when id is a cell.
// The returned slice is shared and must not be modified.
func (t *Table) Cells(id int64) []int64 {
	if cells, ok := t.symbols[id]; ok {
		return cells
	}
	if owner, ok := t.owner[id]; ok {
		return t.symbols[owner]
	}
	return nil
}

// Logical maps a cell to its owner and returns any other id unchanged.
func (t *Table) Logical(id int64) int64 {
	if owner, ok := t.owner[id]; ok {
		return owner
	}
	return id
}

// Snapshot returns a deep copy of the underlying long symbols.
func (t *Table) Snapshot() LongSymbols {
	out := make(LongSymbols, len(t.symbols))
	for id, cells := range t.symbols {
		out[id] = slices.Clone(cells)
	}
	return out
}

// HasMember reports whether any id of reel is a long symbol key or cell.
func (t *Table) HasMember(reel Reel) bool {
	return slices.ContainsFunc(reel, t.IsMember)
}
