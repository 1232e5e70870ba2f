package main

import (
	"context"
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"svw.info/sudograph/internal/infrastructure/boardfile"
	"svw.info/sudograph/internal/solver"
	"svw.info/sudograph/internal/validator"
)

var (
	solveFile  string
	solveBoard string
)

var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Solve a named board from a JSON or YAML board file",
	RunE:  runSolve,
}

func init() {
	solveCmd.Flags().StringVar(&solveFile, "file", "sudoku_boards.json", "board file (.json, .yaml)")
	solveCmd.Flags().StringVar(&solveBoard, "board", "", "board name within the file")
}

func runSolve(cmd *cobra.Command, args []string) error {
	logger := newLogger()
	boards, err := boardfile.Load(solveFile)
	if err != nil {
		return err
	}
	name := solveBoard
	if name == "" {
		if len(boards) != 1 {
			names := make([]string, 0, len(boards))
			for n := range boards {
				names = append(names, n)
			}
			sort.Strings(names)
			return fmt.Errorf("--board required, file contains %v", names)
		}
		for n := range boards {
			name = n
		}
	}
	g, ok := boards[name]
	if !ok {
		return fmt.Errorf("no board named %q in %s", name, solveFile)
	}

	out, st, err := solver.NewGraphSolver().Solve(context.Background(), &g)
	if err != nil {
		logger.Error("solve failed", "board", name, "err", err,
			"guesses", st.Guesses, "backtracks", st.Backtracks, "dur", st.Duration)
		return err
	}
	if ok, conflicts, _ := validator.New().Validate(context.Background(), out); !ok {
		return fmt.Errorf("solver produced conflicting board: %v", conflicts)
	}
	fmt.Print(out.String())
	logger.Info("solved", "board", name,
		"guesses", st.Guesses, "backtracks", st.Backtracks, "dur", st.Duration)
	return nil
}
