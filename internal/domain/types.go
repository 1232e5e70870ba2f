package domain

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Grid holds a square board of values, 0 meaning empty. Dim is the box
// size, so the side length is Dim*Dim (3 for a classic 9x9).
type Grid struct {
	Dim   int     `json:"dim"`
	Cells [][]int `json:"cells"`
}

// CellCoord identifies a cell on the board.
type CellCoord struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Hint describes a strategy suggestion for the UI.
type Hint struct {
	Message  string       `json:"message,omitempty"`
	Cells    []CellCoord  `json:"cells,omitempty"`
	Strategy StrategyTier `json:"strategy,omitempty"`
}

// Puzzle is a persisted board with metadata.
type Puzzle struct {
	ID        string `json:"id,omitempty"`
	Grid      Grid   `json:"grid"`
	CreatedAt int64  `json:"createdAt,omitempty"`
	// Optional user metadata
	Name  string `json:"name,omitempty"`
	Notes string `json:"notes,omitempty"`
}

// PuzzleMeta is a lightweight listing entry.
type PuzzleMeta struct {
	ID        string `json:"id"`
	Name      string `json:"name,omitempty"`
	Size      int    `json:"size"`
	CreatedAt int64  `json:"createdAt"`
}

// NewGrid returns an all-empty grid for the given box size.
func NewGrid(dim int) Grid {
	n := dim * dim
	cells := make([][]int, n)
	for i := range cells {
		cells[i] = make([]int, n)
	}
	return Grid{Dim: dim, Cells: cells}
}

// Size returns the side length Dim*Dim.
func (g Grid) Size() int { return g.Dim * g.Dim }

// Clone deep-copies the grid.
func (g Grid) Clone() Grid {
	out := Grid{Dim: g.Dim, Cells: make([][]int, len(g.Cells))}
	for i, row := range g.Cells {
		out.Cells[i] = append([]int(nil), row...)
	}
	return out
}

var (
	ErrBadDimension = errors.New("box dimension must be at least 1")
	ErrNotSquare    = errors.New("grid is not square")
	ErrValueRange   = errors.New("cell value out of range")
)

// Check rejects malformed grids: dim < 1, a cell matrix that is not
// Dim²×Dim², or values outside 0..Dim².
func (g Grid) Check() error {
	if g.Dim < 1 {
		return fmt.Errorf("%w: dim=%d", ErrBadDimension, g.Dim)
	}
	n := g.Size()
	if len(g.Cells) != n {
		return fmt.Errorf("%w: %d rows, want %d", ErrNotSquare, len(g.Cells), n)
	}
	for r, row := range g.Cells {
		if len(row) != n {
			return fmt.Errorf("%w: row %d has %d cells, want %d", ErrNotSquare, r, len(row), n)
		}
		for c, v := range row {
			if v < 0 || v > n {
				return fmt.Errorf("%w: %d at (%d,%d)", ErrValueRange, v, r, c)
			}
		}
	}
	return nil
}

// String renders the grid one row per line, values space-separated and
// right-aligned, empty cells as dots.
func (g Grid) String() string {
	width := len(strconv.Itoa(g.Size()))
	var sb strings.Builder
	for _, row := range g.Cells {
		for c, v := range row {
			if c > 0 {
				sb.WriteByte(' ')
			}
			if v == 0 {
				sb.WriteString(strings.Repeat(" ", width-1) + ".")
			} else {
				fmt.Fprintf(&sb, "%*d", width, v)
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
