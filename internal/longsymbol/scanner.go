package longsymbol

// Direction is a scan direction along a reel.
type Direction int8

const (
	Left  Direction = -1
	Right Direction = 1
)

func (d Direction) String() string {
	switch d {
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}

// step returns the neighbour index of pos in direction d, or -1 when it falls off the reel.
func (d Direction) step(reel Reel, pos int) int {
	next := pos + int(d)
	if next < 0 || next >= len(reel) {
		return -1
	}
	return next
}

// isAdjacentCell reports whether the neighbour of pos in direction d is the next cell
// of the same long symbol, in that direction.
func (t *Table) isAdjacentCell(reel Reel, pos int, d Direction) bool {
	adj := d.step(reel, pos)
	if adj < 0 {
		return false
	}
	cur, ok := t.owner[reel[pos]]
	if !ok {
		return false
	}
	next, ok := t.owner[reel[adj]]
	if !ok || next != cur {
		return false
	}
	return t.ordinal[reel[adj]]-t.ordinal[reel[pos]] == int(d)
}

// runLength counts the contiguous run starting at start in direction d. A step continues the
// run when the raw id repeats or when it moves to the ordinally adjacent cell of the same symbol.
func (t *Table) runLength(reel Reel, start int, d Direction) int {
	length := 1
	for pos := start; ; pos += int(d) {
		adj := d.step(reel, pos)
		if adj < 0 {
			return length
		}
		if reel[adj] != reel[pos] && !t.isAdjacentCell(reel, pos, d) {
			return length
		}
		length++
	}
}
