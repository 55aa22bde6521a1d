// Package pricing holds the pure calculation core: slab resolution and the
// cost formula. Everything here is deterministic and free of I/O; functions
// never return errors, degenerate inputs degrade to a zero contribution.
package pricing

import "joalheria_xpto/internal/domain/entities"

// ResolveSlab finds the price tier covering one stone entry.
//
// The per-piece weight is totalWeight divided by the quantity (non-positive
// quantities count as 1, so we never divide by zero). Slabs are scanned in
// list order and the first tier with fromWeight <= perPiece < toWeight wins;
// the lower bound is inclusive, the upper exclusive, so a weight sitting
// exactly on a boundary belongs to the next tier. A weight falling in a gap
// or past the last tier resolves to nil.
func ResolveSlab(slabs []entities.StoneSlab, totalWeight float64, quantity int) *entities.StoneSlab {
	if totalWeight <= 0 || len(slabs) == 0 {
		return nil
	}
	if quantity < 1 {
		quantity = 1
	}
	perPiece := totalWeight / float64(quantity)
	for i := range slabs {
		if slabs[i].FromWeight <= perPiece && perPiece < slabs[i].ToWeight {
			return &slabs[i]
		}
	}
	return nil
}
