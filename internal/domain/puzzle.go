package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/gridtrace/gridtrace/internal/sudoku"
)

// Cells is a 9x9 array of digits, 0 meaning empty.
type Cells = [sudoku.Size][sudoku.Size]uint8

// Puzzle represents a stored Sudoku board.
//
// Fixed marks the cells that were clues when the puzzle was created.
// The solver core never sees this distinction; which cells count as
// "original" is tracked here, and pre-solve edits to fixed cells are
// rejected at the service layer.
type Puzzle struct {
	ID    uuid.UUID                      `json:"id"`
	Name  string                         `json:"name,omitempty"`
	Cells Cells                          `json:"cells"`
	Fixed [sudoku.Size][sudoku.Size]bool `json:"fixed"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// EmptyCount returns the number of empty cells.
func (p *Puzzle) EmptyCount() int {
	n := 0
	for r := 0; r < sudoku.Size; r++ {
		for c := 0; c < sudoku.Size; c++ {
			if p.Cells[r][c] == 0 {
				n++
			}
		}
	}
	return n
}

// PuzzleList represents a paginated list of puzzles.
type PuzzleList struct {
	Puzzles    []Puzzle `json:"puzzles"`
	TotalCount int64    `json:"totalCount"`
	HasMore    bool     `json:"hasMore"`
}

// CellConflict identifies a cell whose clue digit collides with another
// clue in the same row, column, or box.
type CellConflict struct {
	Row int `json:"row"`
	Col int `json:"col"`
}
