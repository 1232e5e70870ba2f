package solver

import (
	"context"
	"errors"
	"time"

	"svw.info/sudograph/internal/domain"
	"svw.info/sudograph/internal/ports"
)

// ErrUnsolvable is returned when every recorded guess has been exhausted
// without reaching a legal, fully filled board.
var ErrUnsolvable = errors.New("unsolvable")

// GraphSolver solves by candidate propagation over the peer graph with
// guess-and-undo search.
type GraphSolver struct{}

func NewGraphSolver() *GraphSolver { return &GraphSolver{} }

func (s *GraphSolver) Solve(ctx context.Context, g *domain.Grid) (*domain.Grid, ports.Stats, error) {
	start := time.Now()
	// The core runs to completion once started; honor an already-dead
	// context but take no cancellation points inside the solve.
	if err := ctx.Err(); err != nil {
		return nil, ports.Stats{}, err
	}
	b, err := NewBoard(*g)
	if err != nil {
		return nil, ports.Stats{}, err
	}
	ok := b.Solve()
	st := ports.Stats{Guesses: b.Guesses(), Backtracks: b.Backtracks(), Duration: time.Since(start)}
	if !ok {
		return nil, st, ErrUnsolvable
	}
	out := b.Grid()
	return &out, st, nil
}
