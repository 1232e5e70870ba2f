package solver

// IsLegal reports whether the board is in a legal state: no unfilled cell
// is out of candidates, and no filled cell shares its value with a filled
// peer. Callers must recompute candidates first.
func (b *Board) IsLegal() bool {
	for i := range b.cells {
		cell := &b.cells[i]
		if cell.Value == 0 {
			if cell.Candidates.Len() == 0 {
				return false
			}
			continue
		}
		for _, p := range b.peers[i] {
			if b.cells[p].Value == cell.Value {
				return false
			}
		}
	}
	return true
}
