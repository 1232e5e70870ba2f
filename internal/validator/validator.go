package validator

import (
	"context"

	"svw.info/sudograph/internal/domain"
)

type FastValidator struct{}

func New() *FastValidator { return &FastValidator{} }

// Validate scans rows, columns, and boxes for duplicate filled values and
// reports the coordinates of every repeat it meets.
func (v *FastValidator) Validate(ctx context.Context, g *domain.Grid) (bool, []domain.CellCoord, error) {
	if err := g.Check(); err != nil {
		return false, nil, err
	}
	n := g.Size()
	conf := make([]domain.CellCoord, 0, 8)
	// rows
	for r := 0; r < n; r++ {
		m := domain.NewValueSet(n)
		for c := 0; c < n; c++ {
			val := g.Cells[r][c]
			if val == 0 {
				continue
			}
			if m.Has(val) {
				conf = append(conf, domain.CellCoord{Row: r, Col: c})
			}
			m.Add(val)
		}
	}
	// cols
	for c := 0; c < n; c++ {
		m := domain.NewValueSet(n)
		for r := 0; r < n; r++ {
			val := g.Cells[r][c]
			if val == 0 {
				continue
			}
			if m.Has(val) {
				conf = append(conf, domain.CellCoord{Row: r, Col: c})
			}
			m.Add(val)
		}
	}
	// boxes
	dim := g.Dim
	for br := 0; br < dim; br++ {
		for bc := 0; bc < dim; bc++ {
			m := domain.NewValueSet(n)
			for dr := 0; dr < dim; dr++ {
				for dc := 0; dc < dim; dc++ {
					r := br*dim + dr
					c := bc*dim + dc
					val := g.Cells[r][c]
					if val == 0 {
						continue
					}
					if m.Has(val) {
						conf = append(conf, domain.CellCoord{Row: r, Col: c})
					}
					m.Add(val)
				}
			}
		}
	}
	return len(conf) == 0, conf, nil
}
