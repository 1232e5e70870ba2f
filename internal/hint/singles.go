package hint

import (
	"context"
	"fmt"

	"svw.info/sudograph/internal/domain"
	"svw.info/sudograph/internal/solver"
)

// Singles implements a Hinter that suggests naked singles, and hidden
// singles when the tier allows. It reads the solve engine's candidate sets
// rather than recomputing allowed values on its own.
type Singles struct{}

func NewSingles() *Singles { return &Singles{} }

// Hint returns the first found single, naked before hidden.
func (h *Singles) Hint(ctx context.Context, g *domain.Grid, max domain.StrategyTier) (domain.Hint, bool, error) {
	b, err := solver.NewBoard(*g)
	if err != nil {
		return domain.Hint{}, false, err
	}
	b.RecomputeCandidates()
	n := b.Size()

	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			if b.Value(r, c) != 0 {
				continue
			}
			if cand := b.Candidates(r, c); cand.Len() == 1 {
				return domain.Hint{
					Message:  fmt.Sprintf("Single: only %d fits here", cand.Min()),
					Cells:    []domain.CellCoord{{Row: r, Col: c}},
					Strategy: domain.StrategySingles,
				}, true, nil
			}
		}
	}
	if max < domain.StrategyHiddenSingles {
		return domain.Hint{}, false, nil
	}
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			if b.Value(r, c) != 0 {
				continue
			}
			for _, v := range b.Candidates(r, c).Values() {
				if group, ok := hiddenIn(b, r, c, v); ok {
					return domain.Hint{
						Message:  fmt.Sprintf("Hidden single: %d can only go here in its %s", v, group),
						Cells:    []domain.CellCoord{{Row: r, Col: c}},
						Strategy: domain.StrategyHiddenSingles,
					}, true, nil
				}
			}
		}
	}
	return domain.Hint{}, false, nil
}

func hiddenIn(b *solver.Board, r, c, v int) (string, bool) {
	n := b.Size()
	unique := true
	for x := 0; x < n; x++ {
		if x != c && b.Value(r, x) == 0 && b.Candidates(r, x).Has(v) {
			unique = false
			break
		}
	}
	if unique {
		return "row", true
	}
	unique = true
	for y := 0; y < n; y++ {
		if y != r && b.Value(y, c) == 0 && b.Candidates(y, c).Has(v) {
			unique = false
			break
		}
	}
	if unique {
		return "column", true
	}
	dim := b.Dim()
	br, bc := dim*(r/dim), dim*(c/dim)
	for y := br; y < br+dim; y++ {
		for x := bc; x < bc+dim; x++ {
			if (y != r || x != c) && b.Value(y, x) == 0 && b.Candidates(y, x).Has(v) {
				return "", false
			}
		}
	}
	return "box", true
}
