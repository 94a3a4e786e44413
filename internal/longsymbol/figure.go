package longsymbol

import (
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Figure is a paytable entry of the game's symbol catalog.
type Figure struct {
	ID       int64             `json:"id"`
	Paytable []decimal.Decimal `json:"paytable"`
	Mask     int               `json:"mask"`
}

// Payment returns the payout for count symbols, zero when the paytable has no such entry.
func (f Figure) Payment(count int) decimal.Decimal {
	if count < 0 || count >= len(f.Paytable) {
		return decimal.Zero
	}
	return f.Paytable[count]
}

// AdditionalFigures builds catalog entries for every long symbol cell id, cloned from the figure
// of the owning logical symbol with one extra trailing paytable slot. Symbols missing from
// current are skipped.
func (n *Normalizer) AdditionalFigures(current []Figure) []Figure {
	byID := make(map[int64]Figure, len(current))
	for _, f := range current {
		if _, ok := byID[f.ID]; !ok {
			byID[f.ID] = f
		}
	}

	var out []Figure
	for _, id := range n.table.IDs() {
		src, ok := byID[id]
		if !ok {
			n.logger.Warn("AdditionalFigures: figure not found", zap.Int64("symbol", id))
			continue
		}
		for _, cell := range n.table.Cells(id) {
			paytable := make([]decimal.Decimal, len(src.Paytable)+1)
			for i := range paytable {
				paytable[i] = src.Payment(i)
			}
			out = append(out, Figure{ID: cell, Paytable: paytable, Mask: src.Mask})
		}
	}
	return out
}
