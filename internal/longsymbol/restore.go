package longsymbol

import "slices"

// RestoreReels restores the stop and rolling matrices independently.
func (n *Normalizer) RestoreReels(reels Reels) Reels {
	return Reels{
		Matrix:  n.RestoreMatrix(reels.Matrix),
		Rolling: n.RestoreMatrix(reels.Rolling),
	}
}

// RestoreMatrix restores every reel of m.
func (n *Normalizer) RestoreMatrix(m Matrix) Matrix {
	if m == nil {
		return nil
	}
	out := make(Matrix, len(m))
	for i, reel := range m {
		out[i] = n.Restore(reel)
	}
	return out
}

// Restore maps every long symbol cell on reel back to its logical id.
func (n *Normalizer) Restore(reel Reel) Reel {
	out := slices.Clone(reel)
	for i, id := range out {
		out[i] = n.table.Logical(id)
	}
	return out
}
