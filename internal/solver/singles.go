package solver

// FillSoleCandidates assigns every cell that has exactly one candidate
// (a naked single). Cells are visited in row-major order; candidates are
// not refreshed mid-pass, so each assignment is justified by the state the
// pass started from. Reports whether any assignment was made.
func (b *Board) FillSoleCandidates() bool {
	changed := false
	for i := range b.cells {
		cell := &b.cells[i]
		if cell.Value == 0 && cell.Candidates.Len() == 1 {
			cell.Value = cell.Candidates.Min()
			changed = true
		}
	}
	return changed
}

// FillUniqueCandidates assigns hidden singles: for each unfilled cell and
// each of its candidates (ascending), the value is placed if no other cell
// in the same row, column, or box can hold it. Row is checked first, then
// column, then box; the first confirming group assigns the cell and its
// remaining candidates are skipped. Reports whether any assignment was made.
func (b *Board) FillUniqueCandidates() bool {
	changed := false
	n := b.size
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			cell := &b.cells[r*n+c]
			if cell.Value != 0 {
				continue
			}
			for _, v := range cell.Candidates.Values() {
				if b.uniqueInRow(r, c, v) || b.uniqueInCol(r, c, v) || b.uniqueInBox(r, c, v) {
					cell.Value = v
					changed = true
					break
				}
			}
		}
	}
	return changed
}

func (b *Board) uniqueInRow(r, c, v int) bool {
	for x := 0; x < b.size; x++ {
		if x != c && b.cells[r*b.size+x].Candidates.Has(v) {
			return false
		}
	}
	return true
}

func (b *Board) uniqueInCol(r, c, v int) bool {
	for y := 0; y < b.size; y++ {
		if y != r && b.cells[y*b.size+c].Candidates.Has(v) {
			return false
		}
	}
	return true
}

func (b *Board) uniqueInBox(r, c, v int) bool {
	br, bc := b.dim*(r/b.dim), b.dim*(c/b.dim)
	for y := br; y < br+b.dim; y++ {
		for x := bc; x < bc+b.dim; x++ {
			if (y != r || x != c) && b.cells[y*b.size+x].Candidates.Has(v) {
				return false
			}
		}
	}
	return true
}

// propagate saturates the deduction rules: naked singles, recompute,
// hidden singles, recompute, until a full pass changes nothing. Each
// iteration either assigns a cell or exits, so the loop terminates.
func (b *Board) propagate() {
	b.RecomputeCandidates()
	for {
		sole := b.FillSoleCandidates()
		b.RecomputeCandidates()
		unique := b.FillUniqueCandidates()
		b.RecomputeCandidates()
		if !sole && !unique {
			return
		}
	}
}
