package solver

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/sudograph/internal/domain"
	"svw.info/sudograph/internal/validator"
)

// A classic, solvable Sudoku (0 = empty).
func classic9x9() domain.Grid {
	return domain.Grid{Dim: 3, Cells: [][]int{
		{5, 3, 0, 0, 7, 0, 0, 0, 0},
		{6, 0, 0, 1, 9, 5, 0, 0, 0},
		{0, 9, 8, 0, 0, 0, 0, 6, 0},
		{8, 0, 0, 0, 6, 0, 0, 0, 3},
		{4, 0, 0, 8, 0, 3, 0, 0, 1},
		{7, 0, 0, 0, 2, 0, 0, 0, 6},
		{0, 6, 0, 0, 0, 0, 2, 8, 0},
		{0, 0, 0, 4, 1, 9, 0, 0, 5},
		{0, 0, 0, 0, 8, 0, 0, 7, 9},
	}}
}

func requireSolvedAndValid(t *testing.T, b *Board) {
	t.Helper()
	require.True(t, b.IsFilled(), "unsolved cells remain")
	ok, conf, err := validator.New().Validate(context.Background(), ptr(b.Grid()))
	require.NoError(t, err)
	require.True(t, ok, "invalid solution: conflicts=%v", conf)
}

func ptr(g domain.Grid) *domain.Grid { return &g }

func TestSolveClassic9x9(t *testing.T) {
	b, err := NewBoard(classic9x9())
	require.NoError(t, err)
	require.True(t, b.Solve())
	requireSolvedAndValid(t, b)
	// givens are untouched
	assert.Equal(t, 5, b.Value(0, 0))
	assert.Equal(t, 9, b.Value(8, 8))
}

func TestSolve4x4(t *testing.T) {
	g := domain.Grid{Dim: 2, Cells: [][]int{
		{0, 0, 0, 0},
		{0, 3, 0, 0},
		{1, 0, 2, 0},
		{0, 0, 0, 4},
	}}
	b, err := NewBoard(g)
	require.NoError(t, err)
	require.True(t, b.Solve())
	requireSolvedAndValid(t, b)
	assert.Equal(t, []int{1, 4, 2, 3}, b.Grid().Cells[2])
}

func TestSolveAlreadyComplete(t *testing.T) {
	b, err := NewBoard(solved4x4())
	require.NoError(t, err)
	require.True(t, b.Solve())
	assert.Equal(t, solved4x4(), b.Grid())
	assert.Zero(t, b.Guesses(), "a complete board needs no guessing")
	assert.Zero(t, b.Backtracks())
}

func TestSolveAlreadyComplete9x9(t *testing.T) {
	g := domain.Grid{Dim: 3, Cells: [][]int{
		{5, 3, 4, 6, 7, 8, 9, 1, 2},
		{6, 7, 2, 1, 9, 5, 3, 4, 8},
		{1, 9, 8, 3, 4, 2, 5, 6, 7},
		{8, 5, 9, 7, 6, 1, 4, 2, 3},
		{4, 2, 6, 8, 5, 3, 7, 9, 1},
		{7, 1, 3, 9, 2, 4, 8, 5, 6},
		{9, 6, 1, 5, 3, 7, 2, 8, 4},
		{2, 8, 7, 4, 1, 9, 6, 3, 5},
		{3, 4, 5, 2, 8, 6, 1, 7, 9},
	}}
	b, err := NewBoard(g)
	require.NoError(t, err)
	b.RecomputeCandidates()
	require.True(t, b.IsLegal())
	require.True(t, b.Solve())
	assert.Zero(t, b.Guesses())
	assert.Zero(t, b.Backtracks())
	assert.Equal(t, g, b.Grid())
}

func TestSolveContradictionReturnsFalse(t *testing.T) {
	g := domain.NewGrid(3)
	g.Cells[0][0], g.Cells[0][5] = 5, 5 // same row, same value
	b, err := NewBoard(g)
	require.NoError(t, err)
	assert.False(t, b.Solve())
}

func TestSolveEmptyBoardMustGuess(t *testing.T) {
	// No deduction applies to an empty board, so the first move is a guess.
	b, err := NewBoard(domain.NewGrid(2))
	require.NoError(t, err)
	require.True(t, b.Solve())
	requireSolvedAndValid(t, b)
	assert.Greater(t, b.Guesses(), 0)
}

func TestExclusionsBlockSolution(t *testing.T) {
	// The 4x4 scenario completes uniquely with a 4 at (2,1); forbidding it
	// there leaves no reachable solution, which is a plain false, not a fault.
	g := domain.Grid{Dim: 2, Cells: [][]int{
		{0, 0, 0, 0},
		{0, 3, 0, 0},
		{1, 0, 2, 0},
		{0, 0, 0, 4},
	}}
	b, err := NewBoard(g)
	require.NoError(t, err)
	b.cells[2*4+1].Excluded.Add(4)
	assert.False(t, b.Solve())
}

func TestBacktrackSemantics(t *testing.T) {
	b, err := NewBoard(classic9x9())
	require.NoError(t, err)
	b.RecomputeCandidates()
	before := b.Grid()

	idx := 2 // (0,2) is empty
	guess := b.cells[idx].Candidates.Min()
	var stack stateStack
	stack.push(b.capture(idx, guess))

	// mutate well past the snapshot
	b.cells[idx].Value = guess
	b.cells[10].Value = 7
	b.cells[20].Excluded.Add(3)

	s := stack.pop()
	b.restore(s)
	b.cells[s.cell].Excluded.Add(s.value)
	b.RecomputeCandidates()

	assert.Equal(t, before, b.Grid(), "values rewound to the snapshot")
	assert.Equal(t, 0, b.cells[20].Excluded.Len(), "exclusions rewound to the snapshot")
	assert.True(t, b.cells[idx].Excluded.Has(guess), "the undone guess is never retried")
	assert.False(t, b.Candidates(0, 2).Has(guess))
	assert.True(t, stack.empty())
}

func TestPopEmptyStackPanics(t *testing.T) {
	var stack stateStack
	assert.Panics(t, func() { stack.pop() })
}

func TestGraphSolverPort(t *testing.T) {
	s := NewGraphSolver()
	g := classic9x9()
	out, st, err := s.Solve(context.Background(), &g)
	require.NoError(t, err)
	require.NotNil(t, out)
	ok, _, err := validator.New().Validate(context.Background(), out)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Greater(t, st.Duration, time.Duration(0))

	// input grid is left alone
	assert.Equal(t, 0, g.Cells[0][2])
}

func TestGraphSolverUnsolvable(t *testing.T) {
	g := domain.NewGrid(2)
	g.Cells[0][0], g.Cells[0][1] = 1, 1
	_, _, err := NewGraphSolver().Solve(context.Background(), &g)
	require.ErrorIs(t, err, ErrUnsolvable)
}

func TestGraphSolverRejectsMalformed(t *testing.T) {
	g := domain.Grid{Dim: 0}
	_, _, err := NewGraphSolver().Solve(context.Background(), &g)
	require.ErrorIs(t, err, domain.ErrBadDimension)
}
