package longsymbol

import "slices"

// ExpandReels expands the stop and rolling matrices independently.
func (n *Normalizer) ExpandReels(reels Reels) Reels {
	return Reels{
		Matrix:  n.ExpandMatrix(reels.Matrix),
		Rolling: n.ExpandMatrix(reels.Rolling),
	}
}

// ExpandMatrix expands every reel of m.
func (n *Normalizer) ExpandMatrix(m Matrix) Matrix {
	if m == nil {
		return nil
	}
	out := make(Matrix, len(m))
	for i, reel := range m {
		out[i] = n.Expand(reel)
	}
	return out
}

// Expand replaces logical long symbols on reel with their cell ids.
//
// A reel made of a single long symbol is tiled with its cells. Otherwise runs are filled
// from the reel start when the last symbol is a long symbol, so a run touching the start
// shows the tail of its symbol, and from the reel end otherwise, ending every run on the tail.
func (n *Normalizer) Expand(reel Reel) Reel {
	if len(reel) == 0 || !n.table.HasMember(reel) {
		return slices.Clone(reel)
	}
	if id, ok := n.singleLogical(reel); ok {
		return n.tile(id, len(reel))
	}

	out := slices.Clone(reel)
	if n.table.IsMember(out[len(out)-1]) {
		n.fillFromStart(out)
	} else {
		n.fillFromEnd(out)
	}
	return out
}

func (n *Normalizer) fillFromStart(reel Reel) {
	for pos := 0; pos < len(reel); {
		id := reel[pos]
		if !n.table.IsLogical(id) {
			pos++
			continue
		}
		cells := n.table.Cells(id)
		length := n.table.runLength(reel, pos, Right)
		start := 0
		if pos == 0 {
			// the head lies before the reel
			start = max(0, len(cells)-length)
		}
		for count := 0; count < length && pos < len(reel) && start < len(cells); count++ {
			reel[pos] = cells[start]
			pos++
			start++
		}
	}
}

func (n *Normalizer) fillFromEnd(reel Reel) {
	for pos := len(reel) - 1; pos >= 0; {
		id := reel[pos]
		if !n.table.IsLogical(id) {
			pos--
			continue
		}
		cells := n.table.Cells(id)
		length := n.table.runLength(reel, pos, Left)
		idx := len(cells) - 1
		for count := 0; count < length && idx >= 0; count++ {
			reel[pos] = cells[idx]
			idx--
			pos--
		}
	}
}
