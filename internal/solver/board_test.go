package solver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/sudograph/internal/domain"
)

func TestNewBoardRejectsBadDimension(t *testing.T) {
	_, err := NewBoard(domain.Grid{Dim: 0})
	require.ErrorIs(t, err, domain.ErrBadDimension)
}

func TestNewBoardRejectsNonSquare(t *testing.T) {
	g := domain.NewGrid(2)
	g.Cells = g.Cells[:3] // drop a row
	_, err := NewBoard(g)
	require.ErrorIs(t, err, domain.ErrNotSquare)

	g = domain.NewGrid(2)
	g.Cells[1] = g.Cells[1][:2] // short row
	_, err = NewBoard(g)
	require.ErrorIs(t, err, domain.ErrNotSquare)
}

func TestNewBoardRejectsValueOutOfRange(t *testing.T) {
	g := domain.NewGrid(2)
	g.Cells[0][0] = 5 // max for 4x4 is 4
	_, err := NewBoard(g)
	require.ErrorIs(t, err, domain.ErrValueRange)

	g = domain.NewGrid(2)
	g.Cells[3][3] = -1
	_, err = NewBoard(g)
	require.ErrorIs(t, err, domain.ErrValueRange)
}

// Every cell sees 3N - 2*dim - 1 peers: the row, the column, and the part
// of the box outside both.
func TestPeerCounts(t *testing.T) {
	for _, dim := range []int{2, 3, 4} {
		b, err := NewBoard(domain.NewGrid(dim))
		require.NoError(t, err)
		n := dim * dim
		want := 3*n - 2*dim - 1
		for i, ps := range b.peers {
			assert.Len(t, ps, want, "dim=%d cell=%d", dim, i)
		}
	}
}

func TestPeersOfCorner(t *testing.T) {
	b, err := NewBoard(domain.NewGrid(3))
	require.NoError(t, err)
	ps := b.peers[0]                 // (0,0)
	assert.Contains(t, ps, 8)        // (0,8) same row
	assert.Contains(t, ps, 8*9)      // (8,0) same column
	assert.Contains(t, ps, 2*9+2)    // (2,2) same box
	assert.NotContains(t, ps, 0)     // never itself
	assert.NotContains(t, ps, 3*9+3) // (3,3) shares nothing with (0,0)
}

func TestIsFilled(t *testing.T) {
	g := domain.NewGrid(2)
	b, err := NewBoard(g)
	require.NoError(t, err)
	assert.False(t, b.IsFilled())

	b, err = NewBoard(solved4x4())
	require.NoError(t, err)
	assert.True(t, b.IsFilled())
}

func TestGridRoundTrip(t *testing.T) {
	in := solved4x4()
	b, err := NewBoard(in)
	require.NoError(t, err)
	assert.Equal(t, in, b.Grid())
}

func solved4x4() domain.Grid {
	return domain.Grid{Dim: 2, Cells: [][]int{
		{4, 1, 3, 2},
		{2, 3, 4, 1},
		{1, 4, 2, 3},
		{3, 2, 1, 4},
	}}
}
