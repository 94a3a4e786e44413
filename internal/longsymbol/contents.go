package longsymbol

import "slices"

// UpdateContents repairs the two edge cells of a visible window so long symbols cut by the
// window boundary continue correctly into the hidden neighbours. Interior cells are never
// touched. A window made of a single long symbol is re-tiled.
func (n *Normalizer) UpdateContents(contents Reel) Reel {
	if len(contents) == 0 {
		return slices.Clone(contents)
	}
	if id, ok := n.singleLogical(contents); ok {
		return n.tile(id, len(contents))
	}

	out := slices.Clone(contents)
	if len(out) > 1 {
		n.stitchEdge(out, 0, Right)
	}
	if len(out) > 2 {
		n.stitchEdge(out, len(out)-1, Left)
	}
	return out
}

// stitchEdge rewrites the edge cell at pos from the run of its neighbour in direction toward.
func (n *Normalizer) stitchEdge(reel Reel, pos int, toward Direction) {
	own := n.table.Cells(reel[pos])
	adj := pos + int(toward)
	neighbour := n.table.Cells(reel[adj])
	if own == nil && neighbour == nil {
		return
	}

	if neighbour == nil || n.table.runLength(reel, adj, toward) == len(neighbour) {
		if own != nil {
			reel[pos] = edgeCell(own, toward)
		}
		return
	}

	last := len(neighbour) - 1
	idx, ok := n.table.Ordinal(reel[adj])
	switch toward {
	case Right:
		// top edge shows the cell preceding the neighbour
		if !ok || idx == 0 {
			reel[pos] = neighbour[last]
		} else {
			reel[pos] = neighbour[idx-1]
		}
	case Left:
		if !ok || idx == last {
			reel[pos] = neighbour[0]
		} else {
			reel[pos] = neighbour[idx+1]
		}
	}
}

// edgeCell is the cell an edge shows of its own symbol: the tail at the top edge, the head at
// the bottom edge.
func edgeCell(cells []int64, toward Direction) int64 {
	if toward == Right {
		return cells[len(cells)-1]
	}
	return cells[0]
}
