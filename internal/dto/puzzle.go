package dto

import (
	"fmt"
	"time"

	"github.com/gridtrace/gridtrace/internal/domain"
	"github.com/gridtrace/gridtrace/internal/sudoku"
)

// CreatePuzzleRequest represents the request to create a puzzle.
// Cells is a 9x9 board in row-major order; 0 marks an empty cell.
type CreatePuzzleRequest struct {
	Name  string  `json:"name,omitempty" validate:"max=128"`
	Cells [][]int `json:"cells" validate:"required,len=9,dive,len=9,dive,gte=0,lte=9"`
}

// UpdateCellRequest represents the request to edit a single cell before
// solving. Digit 0 clears the cell. Pointers distinguish an absent field
// from a legitimate zero.
type UpdateCellRequest struct {
	Row   *int `json:"row" validate:"required,gte=0,lte=8"`
	Col   *int `json:"col" validate:"required,gte=0,lte=8"`
	Digit *int `json:"digit" validate:"required,gte=0,lte=9"`
}

// PuzzleResponse represents a puzzle in API responses
type PuzzleResponse struct {
	ID         string    `json:"id"`
	Name       string    `json:"name,omitempty"`
	Cells      [][]int   `json:"cells"`
	Fixed      [][]bool  `json:"fixed"`
	EmptyCells int       `json:"emptyCells"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// PuzzleListResponse represents a paginated list of puzzles
type PuzzleListResponse struct {
	Puzzles    []PuzzleResponse `json:"puzzles"`
	TotalCount int64            `json:"totalCount"`
	HasMore    bool             `json:"hasMore"`
}

// CellConflictResponse reports clue cells that collide with each other
type CellConflictResponse struct {
	Conflicts []domain.CellConflict `json:"conflicts"`
}

// ToDomainCells converts the request board into the fixed-size domain
// representation. Lengths are checked by validation before this runs.
func (r *CreatePuzzleRequest) ToDomainCells() (domain.Cells, error) {
	var cells domain.Cells
	if len(r.Cells) != sudoku.Size {
		return cells, fmt.Errorf("expected %d rows, got %d", sudoku.Size, len(r.Cells))
	}
	for i, row := range r.Cells {
		if len(row) != sudoku.Size {
			return cells, fmt.Errorf("row %d: expected %d cells, got %d", i, sudoku.Size, len(row))
		}
		for j, v := range row {
			cells[i][j] = uint8(v)
		}
	}
	return cells, nil
}

// FromPuzzle converts a domain puzzle to a response
func FromPuzzle(p *domain.Puzzle) PuzzleResponse {
	resp := PuzzleResponse{
		ID:         p.ID.String(),
		Name:       p.Name,
		Cells:      cellsToRows(p.Cells),
		Fixed:      make([][]bool, sudoku.Size),
		EmptyCells: p.EmptyCount(),
		CreatedAt:  p.CreatedAt,
		UpdatedAt:  p.UpdatedAt,
	}
	for i := range p.Fixed {
		resp.Fixed[i] = append([]bool(nil), p.Fixed[i][:]...)
	}
	return resp
}

// FromPuzzleList converts a domain puzzle list to a response
func FromPuzzleList(list *domain.PuzzleList) PuzzleListResponse {
	resp := PuzzleListResponse{
		Puzzles:    make([]PuzzleResponse, 0, len(list.Puzzles)),
		TotalCount: list.TotalCount,
		HasMore:    list.HasMore,
	}
	for i := range list.Puzzles {
		resp.Puzzles = append(resp.Puzzles, FromPuzzle(&list.Puzzles[i]))
	}
	return resp
}

// cellsToRows converts the fixed-size board into plain int rows so the
// JSON encoder emits numeric arrays rather than base64 byte strings.
func cellsToRows(cells domain.Cells) [][]int {
	rows := make([][]int, sudoku.Size)
	for i := range cells {
		rows[i] = make([]int, sudoku.Size)
		for j, v := range cells[i] {
			rows[i][j] = int(v)
		}
	}
	return rows
}
