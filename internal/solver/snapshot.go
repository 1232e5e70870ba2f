package solver

import "svw.info/sudograph/internal/domain"

// snapshot is a value-type capture of every cell's value and exclusion set,
// paired with the guess that was placed right after it was taken. Restoring
// it undoes that guess and everything derived from it.
type snapshot struct {
	values   []int
	excluded []domain.ValueSet
	cell     int // index of the guessed cell
	value    int // the guessed value
}

// capture records the pre-guess board state.
func (b *Board) capture(cell, value int) snapshot {
	s := snapshot{
		values:   make([]int, len(b.cells)),
		excluded: make([]domain.ValueSet, len(b.cells)),
		cell:     cell,
		value:    value,
	}
	for i := range b.cells {
		s.values[i] = b.cells[i].Value
		s.excluded[i] = b.cells[i].Excluded.Clone()
	}
	return s
}

// restore rewinds every cell's value and excluded set to the snapshot.
func (b *Board) restore(s snapshot) {
	for i := range b.cells {
		b.cells[i].Value = s.values[i]
		b.cells[i].Excluded = s.excluded[i]
	}
}

// stateStack is the LIFO of snapshots owned by one solve run.
type stateStack []snapshot

func (st *stateStack) push(s snapshot) { *st = append(*st, s) }

func (st *stateStack) empty() bool { return len(*st) == 0 }

// pop outside a checked backtrack is a broken invariant, not bad input.
func (st *stateStack) pop() snapshot {
	if st.empty() {
		panic("solver: pop on empty state stack")
	}
	s := (*st)[len(*st)-1]
	*st = (*st)[:len(*st)-1]
	return s
}
