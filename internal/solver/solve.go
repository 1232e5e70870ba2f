package solver

// Solve fills the board by alternating rounds of deduction and speculative
// guessing:
//
//  1. Saturate naked and hidden singles.
//  2. While the board is illegal, pop the last snapshot, restore it, and
//     mark the undone guess as excluded at its cell so it is never retried.
//     An empty stack here means no solution is reachable.
//  3. If still incomplete, snapshot the board and guess: pick the unfilled
//     cell with the most candidates (first in row-major order on ties) and
//     assign its smallest candidate.
//
// Reports whether a fully filled, legal board was reached. Runs to
// completion with no suspension points; each deduction pass either assigns
// a cell or stops, so the loop terminates.
func (b *Board) Solve() bool {
	b.guesses, b.backtracks = 0, 0
	var stack stateStack

	for !b.IsFilled() {
		b.propagate()

		for !b.IsLegal() {
			if stack.empty() {
				return false
			}
			s := stack.pop()
			b.restore(s)
			b.cells[s.cell].Excluded.Add(s.value)
			b.backtracks++
			b.RecomputeCandidates()
		}

		if b.IsFilled() {
			break
		}
		b.branch(&stack)
	}
	return b.IsLegal()
}

// branch places the next guess and records the snapshot that undoes it.
func (b *Board) branch(stack *stateStack) {
	idx := -1
	most := -1
	for i := range b.cells {
		if b.cells[i].Value != 0 {
			continue
		}
		if l := b.cells[i].Candidates.Len(); l > most {
			idx, most = i, l
		}
	}
	if idx < 0 || most == 0 {
		// A legal, incomplete board always has a candidate somewhere; the
		// legality check runs before every branch.
		panic("solver: branch cell has no candidates")
	}
	v := b.cells[idx].Candidates.Min()
	stack.push(b.capture(idx, v))
	b.cells[idx].Value = v
	b.guesses++
}
