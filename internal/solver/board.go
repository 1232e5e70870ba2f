package solver

import (
	"fmt"

	"svw.info/sudograph/internal/domain"
)

// Cell is one board position. Candidates is only meaningful while Value is
// zero; Excluded accumulates values that failed guesses have ruled out here.
type Cell struct {
	Row, Col   int
	Value      int
	Candidates domain.ValueSet
	Excluded   domain.ValueSet
}

// Board is the cell matrix plus the precomputed peer table. Peers of a cell
// are every other cell in its row, column, or box, stored as row-major
// indices into the cell slice.
type Board struct {
	dim   int
	size  int // side length, dim*dim
	cells []Cell
	peers [][]int

	guesses    int
	backtracks int
}

// NewBoard builds a board from the grid, rejecting malformed input before
// any solving begins.
func NewBoard(g domain.Grid) (*Board, error) {
	if err := g.Check(); err != nil {
		return nil, err
	}
	n := g.Size()
	b := &Board{
		dim:   g.Dim,
		size:  n,
		cells: make([]Cell, n*n),
		peers: buildPeers(g.Dim),
	}
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			cell := &b.cells[r*n+c]
			cell.Row, cell.Col = r, c
			cell.Value = g.Cells[r][c]
			cell.Candidates = domain.NewValueSet(n)
			cell.Excluded = domain.NewValueSet(n)
		}
	}
	return b, nil
}

// buildPeers computes the adjacency table for box size dim. Each list is
// built one-directionally (row, then column, then box, deduplicated);
// symmetry of the resulting relation is asserted before it is used.
func buildPeers(dim int) [][]int {
	n := dim * dim
	peers := make([][]int, n*n)
	seen := make([]bool, n*n)
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			idx := r*n + c
			list := make([]int, 0, 3*n-2*dim-1)
			add := func(p int) {
				if p != idx && !seen[p] {
					seen[p] = true
					list = append(list, p)
				}
			}
			for x := 0; x < n; x++ {
				add(r*n + x)
			}
			for y := 0; y < n; y++ {
				add(y*n + c)
			}
			br, bc := dim*(r/dim), dim*(c/dim)
			for y := 0; y < dim; y++ {
				for x := 0; x < dim; x++ {
					add((br+y)*n + (bc + x))
				}
			}
			for _, p := range list {
				seen[p] = false
			}
			peers[idx] = list
		}
	}
	assertSymmetric(peers)
	return peers
}

func assertSymmetric(peers [][]int) {
	for i, ps := range peers {
		for _, p := range ps {
			if !contains(peers[p], i) {
				panic(fmt.Sprintf("solver: peer relation not symmetric: %d -> %d", i, p))
			}
		}
	}
}

func contains(list []int, v int) bool {
	for _, x := range list {
		if x == v {
			return true
		}
	}
	return false
}

// Dim returns the box size.
func (b *Board) Dim() int { return b.dim }

// Size returns the side length.
func (b *Board) Size() int { return b.size }

// Value returns the value at (r,c), 0 if empty.
func (b *Board) Value(r, c int) int { return b.cells[r*b.size+c].Value }

// Candidates returns a copy of the candidate set at (r,c).
func (b *Board) Candidates(r, c int) domain.ValueSet {
	return b.cells[r*b.size+c].Candidates.Clone()
}

// IsFilled reports whether every cell has a nonzero value.
func (b *Board) IsFilled() bool {
	for i := range b.cells {
		if b.cells[i].Value == 0 {
			return false
		}
	}
	return true
}

// Grid copies the current values out as a plain grid.
func (b *Board) Grid() domain.Grid {
	g := domain.NewGrid(b.dim)
	for i := range b.cells {
		g.Cells[b.cells[i].Row][b.cells[i].Col] = b.cells[i].Value
	}
	return g
}

// Guesses returns how many speculative placements the last Solve made.
func (b *Board) Guesses() int { return b.guesses }

// Backtracks returns how many guesses the last Solve had to undo.
func (b *Board) Backtracks() int { return b.backtracks }
