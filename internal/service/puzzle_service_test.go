package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/gridtrace/gridtrace/internal/domain"
	apperrors "github.com/gridtrace/gridtrace/internal/pkg/errors"
	"github.com/gridtrace/gridtrace/internal/testutil"
)

// MockPuzzleRepository is a mock implementation of PuzzleRepository
type MockPuzzleRepository struct {
	mock.Mock
}

func (m *MockPuzzleRepository) Create(ctx context.Context, puzzle *domain.Puzzle) error {
	args := m.Called(ctx, puzzle)
	return args.Error(0)
}

func (m *MockPuzzleRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Puzzle, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Puzzle), args.Error(1)
}

func (m *MockPuzzleRepository) Update(ctx context.Context, puzzle *domain.Puzzle) error {
	args := m.Called(ctx, puzzle)
	return args.Error(0)
}

func (m *MockPuzzleRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockPuzzleRepository) List(ctx context.Context, limit, offset int) (*domain.PuzzleList, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PuzzleList), args.Error(1)
}

func TestPuzzleService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("creates puzzle and fixes clue cells", func(t *testing.T) {
		repo := new(MockPuzzleRepository)
		svc := NewPuzzleService(repo, zap.NewNop())

		repo.On("Create", ctx, mock.AnythingOfType("*domain.Puzzle")).Return(nil)

		puzzle, conflicts, err := svc.Create(ctx, "classic", testutil.ExampleCells())

		require.NoError(t, err)
		require.NotNil(t, puzzle)
		assert.Empty(t, conflicts)
		assert.Equal(t, "classic", puzzle.Name)
		assert.True(t, puzzle.Fixed[0][0])
		assert.False(t, puzzle.Fixed[0][2])
		assert.Equal(t, 51, puzzle.EmptyCount())
		repo.AssertExpectations(t)
	})

	t.Run("rejects conflicting clues without storing", func(t *testing.T) {
		repo := new(MockPuzzleRepository)
		svc := NewPuzzleService(repo, zap.NewNop())

		cells := testutil.ExampleCells()
		cells[0][8] = 5 // duplicates the 5 at (0,0)

		puzzle, conflicts, err := svc.Create(ctx, "", cells)

		require.Error(t, err)
		assert.Nil(t, puzzle)
		assert.True(t, apperrors.IsUnprocessable(err))
		assert.Contains(t, conflicts, domain.CellConflict{Row: 0, Col: 0})
		assert.Contains(t, conflicts, domain.CellConflict{Row: 0, Col: 8})
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("accepts the all-empty board", func(t *testing.T) {
		repo := new(MockPuzzleRepository)
		svc := NewPuzzleService(repo, zap.NewNop())

		repo.On("Create", ctx, mock.AnythingOfType("*domain.Puzzle")).Return(nil)

		puzzle, conflicts, err := svc.Create(ctx, "", domain.Cells{})

		require.NoError(t, err)
		assert.Empty(t, conflicts)
		assert.Equal(t, 81, puzzle.EmptyCount())
	})

	t.Run("returns error when repository fails", func(t *testing.T) {
		repo := new(MockPuzzleRepository)
		svc := NewPuzzleService(repo, zap.NewNop())

		repo.On("Create", ctx, mock.AnythingOfType("*domain.Puzzle")).Return(errors.New("redis down"))

		puzzle, _, err := svc.Create(ctx, "", testutil.ExampleCells())

		require.Error(t, err)
		assert.Nil(t, puzzle)
		assert.Contains(t, err.Error(), "failed to create puzzle")
	})
}

func TestPuzzleService_SetCell(t *testing.T) {
	ctx := context.Background()

	t.Run("sets an empty cell", func(t *testing.T) {
		repo := new(MockPuzzleRepository)
		svc := NewPuzzleService(repo, zap.NewNop())

		puzzle := testutil.NewPuzzle(testutil.ExampleCells())
		repo.On("GetByID", ctx, puzzle.ID).Return(puzzle, nil)
		repo.On("Update", ctx, puzzle).Return(nil)

		updated, err := svc.SetCell(ctx, puzzle.ID, 0, 2, 4)

		require.NoError(t, err)
		assert.Equal(t, uint8(4), updated.Cells[0][2])
		repo.AssertExpectations(t)
	})

	t.Run("clears a cell with digit zero", func(t *testing.T) {
		repo := new(MockPuzzleRepository)
		svc := NewPuzzleService(repo, zap.NewNop())

		puzzle := testutil.NewPuzzle(testutil.ExampleCells())
		puzzle.Cells[0][2] = 4
		puzzle.Fixed[0][2] = false
		repo.On("GetByID", ctx, puzzle.ID).Return(puzzle, nil)
		repo.On("Update", ctx, puzzle).Return(nil)

		updated, err := svc.SetCell(ctx, puzzle.ID, 0, 2, 0)

		require.NoError(t, err)
		assert.Equal(t, uint8(0), updated.Cells[0][2])
	})

	t.Run("rejects edits to fixed clue cells", func(t *testing.T) {
		repo := new(MockPuzzleRepository)
		svc := NewPuzzleService(repo, zap.NewNop())

		puzzle := testutil.NewPuzzle(testutil.ExampleCells())
		repo.On("GetByID", ctx, puzzle.ID).Return(puzzle, nil)

		updated, err := svc.SetCell(ctx, puzzle.ID, 0, 0, 1)

		require.Error(t, err)
		assert.Nil(t, updated)
		assert.True(t, apperrors.IsConflict(err))
		repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("rejects out-of-range digit", func(t *testing.T) {
		repo := new(MockPuzzleRepository)
		svc := NewPuzzleService(repo, zap.NewNop())

		puzzle := testutil.NewPuzzle(testutil.ExampleCells())
		repo.On("GetByID", ctx, puzzle.ID).Return(puzzle, nil)

		_, err := svc.SetCell(ctx, puzzle.ID, 0, 2, 10)

		require.Error(t, err)
		assert.True(t, apperrors.IsValidation(err))
	})

	t.Run("propagates not found", func(t *testing.T) {
		repo := new(MockPuzzleRepository)
		svc := NewPuzzleService(repo, zap.NewNop())

		id := uuid.New()
		repo.On("GetByID", ctx, id).Return(nil, apperrors.NotFound("puzzle"))

		_, err := svc.SetCell(ctx, id, 0, 2, 4)

		require.Error(t, err)
		assert.True(t, apperrors.IsNotFound(err))
	})
}

func TestPuzzleService_List(t *testing.T) {
	ctx := context.Background()

	t.Run("clamps limit and offset", func(t *testing.T) {
		repo := new(MockPuzzleRepository)
		svc := NewPuzzleService(repo, zap.NewNop())

		repo.On("List", ctx, 20, 0).Return(&domain.PuzzleList{}, nil)

		_, err := svc.List(ctx, -5, -1)

		require.NoError(t, err)
		repo.AssertExpectations(t)
	})
}

func TestFindConflicts(t *testing.T) {
	t.Run("clean board has none", func(t *testing.T) {
		assert.Empty(t, FindConflicts(testutil.ExampleCells()))
		assert.Empty(t, FindConflicts(domain.Cells{}))
	})

	t.Run("detects column conflicts", func(t *testing.T) {
		cells := domain.Cells{}
		cells[0][4] = 7
		cells[8][4] = 7

		conflicts := FindConflicts(cells)

		assert.Contains(t, conflicts, domain.CellConflict{Row: 0, Col: 4})
		assert.Contains(t, conflicts, domain.CellConflict{Row: 8, Col: 4})
		assert.Len(t, conflicts, 2)
	})

	t.Run("detects box conflicts across rows and columns", func(t *testing.T) {
		cells := domain.Cells{}
		cells[3][3] = 2
		cells[5][5] = 2

		conflicts := FindConflicts(cells)

		assert.Len(t, conflicts, 2)
	})
}
