package solver

import "svw.info/sudograph/internal/domain"

// RecomputeCandidates rebuilds every cell's candidate set from scratch:
// {1..N} minus filled peer values minus the cell's learned exclusions.
// Filled cells get the empty set. There is no caching or dirty-tracking;
// callers must invoke this after any mutation to values or exclusions
// before reading candidates.
func (b *Board) RecomputeCandidates() {
	for i := range b.cells {
		cell := &b.cells[i]
		if cell.Value != 0 {
			cell.Candidates = domain.NewValueSet(b.size)
			continue
		}
		cand := domain.FullValueSet(b.size)
		for _, p := range b.peers[i] {
			if v := b.cells[p].Value; v != 0 {
				cand.Remove(v)
			}
		}
		cand.Subtract(cell.Excluded)
		cell.Candidates = cand
	}
}
