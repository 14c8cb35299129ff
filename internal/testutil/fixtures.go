package testutil

import (
	"time"

	"github.com/google/uuid"

	"github.com/gridtrace/gridtrace/internal/domain"
	"github.com/gridtrace/gridtrace/internal/sudoku"
)

// ExampleCells returns the classic example board with 30 clues.
func ExampleCells() domain.Cells {
	return domain.Cells{
		{5, 3, 0, 0, 7, 0, 0, 0, 0},
		{6, 0, 0, 1, 9, 5, 0, 0, 0},
		{0, 9, 8, 0, 0, 0, 0, 6, 0},
		{8, 0, 0, 0, 6, 0, 0, 0, 3},
		{4, 0, 0, 8, 0, 3, 0, 0, 1},
		{7, 0, 0, 0, 2, 0, 0, 0, 6},
		{0, 6, 0, 0, 0, 0, 2, 8, 0},
		{0, 0, 0, 4, 1, 9, 0, 0, 5},
		{0, 0, 0, 0, 8, 0, 0, 7, 9},
	}
}

// SolvedCells returns the unique solution of ExampleCells.
func SolvedCells() domain.Cells {
	return domain.Cells{
		{5, 3, 4, 6, 7, 8, 9, 1, 2},
		{6, 7, 2, 1, 9, 5, 3, 4, 8},
		{1, 9, 8, 3, 4, 2, 5, 6, 7},
		{8, 5, 9, 7, 6, 1, 4, 2, 3},
		{4, 2, 6, 8, 5, 3, 7, 9, 1},
		{7, 1, 3, 9, 2, 4, 8, 5, 6},
		{9, 6, 1, 5, 3, 7, 2, 8, 4},
		{2, 8, 7, 4, 1, 9, 6, 3, 5},
		{3, 4, 5, 2, 6, 8, 1, 7, 9},
	}
}

// UnsatCells returns a dense board that admits no solution. It is the
// solved example grid with one cell emptied and a neighbouring cell
// rewritten so no digit fits the hole.
func UnsatCells() domain.Cells {
	cells := SolvedCells()
	cells[8][8] = 0
	cells[7][8] = 9
	return cells
}

// NewPuzzle builds a stored puzzle from a board, fixing every non-zero
// cell as a clue.
func NewPuzzle(cells domain.Cells) *domain.Puzzle {
	now := time.Now()
	p := &domain.Puzzle{
		ID:        uuid.New(),
		Name:      "test-puzzle",
		Cells:     cells,
		CreatedAt: now,
		UpdatedAt: now,
	}
	for r := 0; r < sudoku.Size; r++ {
		for c := 0; c < sudoku.Size; c++ {
			p.Fixed[r][c] = cells[r][c] != 0
		}
	}
	return p
}

// NewCompletedRun builds a completed solve run by actually running the
// solver over the given board.
func NewCompletedRun(puzzleID uuid.UUID, cells domain.Cells) *domain.SolveRun {
	grid, err := sudoku.FromCells(cells)
	if err != nil {
		panic(err)
	}
	solver := sudoku.NewSolver()
	solved := solver.Solve(grid)

	now := time.Now()
	return &domain.SolveRun{
		ID:          uuid.New(),
		PuzzleID:    puzzleID,
		Status:      domain.SolveStatusCompleted,
		Solved:      solved,
		StartCells:  cells,
		FinalCells:  grid.Cells(),
		Trace:       solver.Trace(),
		Steps:       len(solver.Trace()),
		DurationMs:  1.5,
		CreatedAt:   now.Add(-time.Second),
		CompletedAt: &now,
	}
}
