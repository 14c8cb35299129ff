package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/gridtrace/gridtrace/internal/domain"
	apperrors "github.com/gridtrace/gridtrace/internal/pkg/errors"
	"github.com/gridtrace/gridtrace/internal/pkg/metrics"
	"github.com/gridtrace/gridtrace/internal/sudoku"
)

// PuzzleRepository defines puzzle repository operations
type PuzzleRepository interface {
	Create(ctx context.Context, puzzle *domain.Puzzle) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Puzzle, error)
	Update(ctx context.Context, puzzle *domain.Puzzle) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, limit, offset int) (*domain.PuzzleList, error)
}

// PuzzleService handles puzzle operations
type PuzzleService struct {
	puzzleRepo PuzzleRepository
	logger     *zap.Logger
}

// NewPuzzleService creates a new puzzle service
func NewPuzzleService(puzzleRepo PuzzleRepository, logger *zap.Logger) *PuzzleService {
	return &PuzzleService{
		puzzleRepo: puzzleRepo,
		logger:     logger,
	}
}

// Create creates a new puzzle from a 9x9 board. Non-zero cells become
// fixed clues. Boards whose clues collide are rejected; the returned
// conflicts identify the offending cells.
func (s *PuzzleService) Create(ctx context.Context, name string, cells domain.Cells) (*domain.Puzzle, []domain.CellConflict, error) {
	if conflicts := FindConflicts(cells); len(conflicts) > 0 {
		return nil, conflicts, apperrors.Unprocessable("puzzle clues conflict")
	}

	// A digit outside 1..9 cannot come through the DTO, but guard anyway.
	if _, err := sudoku.FromCells(cells); err != nil {
		return nil, nil, apperrors.Validation(err.Error())
	}

	now := time.Now()
	puzzle := &domain.Puzzle{
		ID:        uuid.New(),
		Name:      name,
		Cells:     cells,
		CreatedAt: now,
		UpdatedAt: now,
	}
	for r := 0; r < sudoku.Size; r++ {
		for c := 0; c < sudoku.Size; c++ {
			puzzle.Fixed[r][c] = cells[r][c] != 0
		}
	}

	if err := s.puzzleRepo.Create(ctx, puzzle); err != nil {
		return nil, nil, fmt.Errorf("failed to create puzzle: %w", err)
	}

	metrics.RecordPuzzleCreated()

	s.logger.Info("puzzle created",
		zap.String("puzzle_id", puzzle.ID.String()),
		zap.Int("empty_cells", puzzle.EmptyCount()),
	)

	return puzzle, nil, nil
}

// CreateExample creates a puzzle from the bundled example board
func (s *PuzzleService) CreateExample(ctx context.Context) (*domain.Puzzle, error) {
	puzzle, _, err := s.Create(ctx, "example", ExampleCells())
	return puzzle, err
}

// Get retrieves a puzzle by ID
func (s *PuzzleService) Get(ctx context.Context, id uuid.UUID) (*domain.Puzzle, error) {
	return s.puzzleRepo.GetByID(ctx, id)
}

// List returns puzzles ordered by creation time
func (s *PuzzleService) List(ctx context.Context, limit, offset int) (*domain.PuzzleList, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return s.puzzleRepo.List(ctx, limit, offset)
}

// Delete removes a puzzle
func (s *PuzzleService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.puzzleRepo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.puzzleRepo.Delete(ctx, id)
}

// SetCell sets or clears one cell before solving. Digit 0 clears. Fixed
// clue cells cannot be edited. The edit may leave the board unsolvable;
// that is a legitimate state and surfaces as solved=false on the next run.
func (s *PuzzleService) SetCell(ctx context.Context, id uuid.UUID, row, col int, digit uint8) (*domain.Puzzle, error) {
	puzzle, err := s.puzzleRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if row < 0 || row >= sudoku.Size || col < 0 || col >= sudoku.Size {
		return nil, apperrors.Validation("cell coordinates out of range")
	}
	if digit > 9 {
		return nil, apperrors.Validation("digit must be 0..9")
	}
	if puzzle.Fixed[row][col] {
		return nil, apperrors.Conflict("cannot edit a fixed clue cell")
	}

	puzzle.Cells[row][col] = digit
	puzzle.UpdatedAt = time.Now()

	if err := s.puzzleRepo.Update(ctx, puzzle); err != nil {
		return nil, fmt.Errorf("failed to update puzzle: %w", err)
	}

	return puzzle, nil
}

// FindConflicts scans a board for clue digits that repeat within a row,
// column, or box. It reports every cell involved in a collision.
func FindConflicts(cells domain.Cells) []domain.CellConflict {
	var rows, cols, boxes [sudoku.Size][10]int
	for r := 0; r < sudoku.Size; r++ {
		for c := 0; c < sudoku.Size; c++ {
			d := cells[r][c]
			if d == 0 || d > 9 {
				continue
			}
			rows[r][d]++
			cols[c][d]++
			boxes[boxOf(r, c)][d]++
		}
	}

	var conflicts []domain.CellConflict
	for r := 0; r < sudoku.Size; r++ {
		for c := 0; c < sudoku.Size; c++ {
			d := cells[r][c]
			if d == 0 || d > 9 {
				continue
			}
			if rows[r][d] > 1 || cols[c][d] > 1 || boxes[boxOf(r, c)][d] > 1 {
				conflicts = append(conflicts, domain.CellConflict{Row: r, Col: c})
			}
		}
	}
	return conflicts
}

// ExampleCells returns the bundled example board
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

func boxOf(row, col int) int {
	return (row/sudoku.BoxSize)*sudoku.BoxSize + col/sudoku.BoxSize
}
