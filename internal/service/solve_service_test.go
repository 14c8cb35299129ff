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

// MockSolveRunRepository is a mock implementation of SolveRunRepository
type MockSolveRunRepository struct {
	mock.Mock
}

func (m *MockSolveRunRepository) Create(ctx context.Context, run *domain.SolveRun) error {
	args := m.Called(ctx, run)
	return args.Error(0)
}

func (m *MockSolveRunRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.SolveRun, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SolveRun), args.Error(1)
}

func (m *MockSolveRunRepository) Update(ctx context.Context, run *domain.SolveRun) error {
	args := m.Called(ctx, run)
	return args.Error(0)
}

func (m *MockSolveRunRepository) List(ctx context.Context, limit, offset int) (*domain.SolveRunList, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SolveRunList), args.Error(1)
}

func (m *MockSolveRunRepository) ListByPuzzle(ctx context.Context, puzzleID uuid.UUID, limit, offset int) (*domain.SolveRunList, error) {
	args := m.Called(ctx, puzzleID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SolveRunList), args.Error(1)
}

// MockTaskEnqueuer is a mock implementation of TaskEnqueuer
type MockTaskEnqueuer struct {
	mock.Mock
}

func (m *MockTaskEnqueuer) EnqueueSolveRun(ctx context.Context, runID uuid.UUID) error {
	args := m.Called(ctx, runID)
	return args.Error(0)
}

func TestSolveService_Solve(t *testing.T) {
	ctx := context.Background()

	t.Run("solves synchronously and stores the completed run", func(t *testing.T) {
		puzzleRepo := new(MockPuzzleRepository)
		runRepo := new(MockSolveRunRepository)
		svc := NewSolveService(puzzleRepo, runRepo, nil, zap.NewNop())

		puzzle := testutil.NewPuzzle(testutil.ExampleCells())
		puzzleRepo.On("GetByID", ctx, puzzle.ID).Return(puzzle, nil)
		runRepo.On("Create", ctx, mock.AnythingOfType("*domain.SolveRun")).Return(nil)
		runRepo.On("Update", ctx, mock.AnythingOfType("*domain.SolveRun")).Return(nil)

		run, err := svc.Solve(ctx, puzzle.ID, false)

		require.NoError(t, err)
		require.NotNil(t, run)
		assert.Equal(t, domain.SolveStatusCompleted, run.Status)
		assert.True(t, run.Solved)
		assert.Equal(t, testutil.ExampleCells(), run.StartCells)
		assert.Equal(t, testutil.SolvedCells(), run.FinalCells)
		assert.Equal(t, len(run.Trace), run.Steps)
		assert.GreaterOrEqual(t, run.Steps, 51)
		require.NotNil(t, run.CompletedAt)
		runRepo.AssertExpectations(t)
	})

	t.Run("unsolvable board completes with solved=false", func(t *testing.T) {
		puzzleRepo := new(MockPuzzleRepository)
		runRepo := new(MockSolveRunRepository)
		svc := NewSolveService(puzzleRepo, runRepo, nil, zap.NewNop())

		puzzle := testutil.NewPuzzle(testutil.UnsatCells())
		puzzleRepo.On("GetByID", ctx, puzzle.ID).Return(puzzle, nil)
		runRepo.On("Create", ctx, mock.AnythingOfType("*domain.SolveRun")).Return(nil)
		runRepo.On("Update", ctx, mock.AnythingOfType("*domain.SolveRun")).Return(nil)

		run, err := svc.Solve(ctx, puzzle.ID, false)

		require.NoError(t, err)
		assert.Equal(t, domain.SolveStatusCompleted, run.Status)
		assert.False(t, run.Solved)
		assert.Empty(t, run.Error)
		// The solver unwinds fully, so the final grid is the starting grid.
		assert.Equal(t, run.StartCells, run.FinalCells)
	})

	t.Run("async run is enqueued pending", func(t *testing.T) {
		puzzleRepo := new(MockPuzzleRepository)
		runRepo := new(MockSolveRunRepository)
		enqueuer := new(MockTaskEnqueuer)
		svc := NewSolveService(puzzleRepo, runRepo, enqueuer, zap.NewNop())

		puzzle := testutil.NewPuzzle(testutil.ExampleCells())
		puzzleRepo.On("GetByID", ctx, puzzle.ID).Return(puzzle, nil)
		runRepo.On("Create", ctx, mock.AnythingOfType("*domain.SolveRun")).Return(nil)
		enqueuer.On("EnqueueSolveRun", ctx, mock.AnythingOfType("uuid.UUID")).Return(nil)

		run, err := svc.Solve(ctx, puzzle.ID, true)

		require.NoError(t, err)
		assert.Equal(t, domain.SolveStatusPending, run.Status)
		assert.False(t, run.Solved)
		assert.Nil(t, run.CompletedAt)
		enqueuer.AssertExpectations(t)
		runRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("async without enqueuer fails", func(t *testing.T) {
		puzzleRepo := new(MockPuzzleRepository)
		runRepo := new(MockSolveRunRepository)
		svc := NewSolveService(puzzleRepo, runRepo, nil, zap.NewNop())

		puzzle := testutil.NewPuzzle(testutil.ExampleCells())
		puzzleRepo.On("GetByID", ctx, puzzle.ID).Return(puzzle, nil)
		runRepo.On("Create", ctx, mock.AnythingOfType("*domain.SolveRun")).Return(nil)

		_, err := svc.Solve(ctx, puzzle.ID, true)

		require.Error(t, err)
	})

	t.Run("unknown puzzle propagates not found", func(t *testing.T) {
		puzzleRepo := new(MockPuzzleRepository)
		runRepo := new(MockSolveRunRepository)
		svc := NewSolveService(puzzleRepo, runRepo, nil, zap.NewNop())

		id := uuid.New()
		puzzleRepo.On("GetByID", ctx, id).Return(nil, apperrors.NotFound("puzzle"))

		_, err := svc.Solve(ctx, id, false)

		require.Error(t, err)
		assert.True(t, apperrors.IsNotFound(err))
		runRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestSolveService_ExecuteRun(t *testing.T) {
	ctx := context.Background()

	t.Run("executes a pending run", func(t *testing.T) {
		puzzleRepo := new(MockPuzzleRepository)
		runRepo := new(MockSolveRunRepository)
		svc := NewSolveService(puzzleRepo, runRepo, nil, zap.NewNop())

		run := &domain.SolveRun{
			ID:         uuid.New(),
			PuzzleID:   uuid.New(),
			Status:     domain.SolveStatusPending,
			StartCells: testutil.ExampleCells(),
		}
		runRepo.On("GetByID", ctx, run.ID).Return(run, nil)
		runRepo.On("Update", ctx, run).Return(nil)

		err := svc.ExecuteRun(ctx, run.ID)

		require.NoError(t, err)
		assert.Equal(t, domain.SolveStatusCompleted, run.Status)
		assert.True(t, run.Solved)
		assert.Equal(t, testutil.SolvedCells(), run.FinalCells)
		runRepo.AssertNumberOfCalls(t, "Update", 2)
	})

	t.Run("completed run is not re-executed", func(t *testing.T) {
		puzzleRepo := new(MockPuzzleRepository)
		runRepo := new(MockSolveRunRepository)
		svc := NewSolveService(puzzleRepo, runRepo, nil, zap.NewNop())

		run := testutil.NewCompletedRun(uuid.New(), testutil.ExampleCells())
		runRepo.On("GetByID", ctx, run.ID).Return(run, nil)

		err := svc.ExecuteRun(ctx, run.ID)

		require.NoError(t, err)
		runRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("propagates update failure", func(t *testing.T) {
		puzzleRepo := new(MockPuzzleRepository)
		runRepo := new(MockSolveRunRepository)
		svc := NewSolveService(puzzleRepo, runRepo, nil, zap.NewNop())

		run := &domain.SolveRun{
			ID:         uuid.New(),
			Status:     domain.SolveStatusPending,
			StartCells: testutil.ExampleCells(),
		}
		runRepo.On("GetByID", ctx, run.ID).Return(run, nil)
		runRepo.On("Update", ctx, run).Return(errors.New("redis down"))

		err := svc.ExecuteRun(ctx, run.ID)

		require.Error(t, err)
	})
}
