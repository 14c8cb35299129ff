package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gridtrace/gridtrace/internal/domain"
	apperrors "github.com/gridtrace/gridtrace/internal/pkg/errors"
	"github.com/gridtrace/gridtrace/internal/sudoku"
	"github.com/gridtrace/gridtrace/internal/testutil"
)

func TestReplayService_Step(t *testing.T) {
	ctx := context.Background()
	run := testutil.NewCompletedRun(uuid.New(), testutil.ExampleCells())

	newSvc := func() *ReplayService {
		runRepo := new(MockSolveRunRepository)
		runRepo.On("GetByID", ctx, run.ID).Return(run, nil)
		return NewReplayService(runRepo)
	}

	t.Run("step zero is the starting grid", func(t *testing.T) {
		step, err := newSvc().Step(ctx, run.ID, 0)

		require.NoError(t, err)
		assert.Nil(t, step.Event)
		assert.Equal(t, testutil.ExampleCells(), step.Cells)
		assert.Equal(t, len(run.Trace), step.Total)
	})

	t.Run("final step is the solved grid", func(t *testing.T) {
		step, err := newSvc().Step(ctx, run.ID, len(run.Trace))

		require.NoError(t, err)
		require.NotNil(t, step.Event)
		assert.Equal(t, sudoku.EventPlace, step.Event.Kind)
		assert.Equal(t, testutil.SolvedCells(), step.Cells)
	})

	t.Run("intermediate step reflects its event", func(t *testing.T) {
		step, err := newSvc().Step(ctx, run.ID, 1)

		require.NoError(t, err)
		require.NotNil(t, step.Event)
		assert.Equal(t, run.Trace[0], *step.Event)
		assert.Equal(t, step.Event.Digit, step.Cells[step.Event.Row][step.Event.Col])
	})

	t.Run("rejects out-of-range index", func(t *testing.T) {
		_, err := newSvc().Step(ctx, run.ID, len(run.Trace)+1)
		require.Error(t, err)
		assert.True(t, apperrors.IsValidation(err))

		_, err = newSvc().Step(ctx, run.ID, -1)
		require.Error(t, err)
	})

	t.Run("rejects incomplete runs", func(t *testing.T) {
		pending := &domain.SolveRun{
			ID:         uuid.New(),
			Status:     domain.SolveStatusPending,
			StartCells: testutil.ExampleCells(),
		}
		runRepo := new(MockSolveRunRepository)
		runRepo.On("GetByID", ctx, pending.ID).Return(pending, nil)
		svc := NewReplayService(runRepo)

		_, err := svc.Step(ctx, pending.ID, 0)

		require.Error(t, err)
		assert.True(t, apperrors.IsConflict(err))
	})
}

func TestReplayService_Window(t *testing.T) {
	ctx := context.Background()
	run := testutil.NewCompletedRun(uuid.New(), testutil.ExampleCells())
	runRepo := new(MockSolveRunRepository)
	runRepo.On("GetByID", ctx, run.ID).Return(run, nil)
	svc := NewReplayService(runRepo)

	t.Run("returns the requested slice", func(t *testing.T) {
		window, err := svc.Window(ctx, run.ID, 5, 10)

		require.NoError(t, err)
		assert.Equal(t, 5, window.Offset)
		assert.Equal(t, len(run.Trace), window.Total)
		assert.Equal(t, []sudoku.Event(run.Trace[5:15]), window.Events)
	})

	t.Run("clamps past the end", func(t *testing.T) {
		window, err := svc.Window(ctx, run.ID, len(run.Trace)+100, 10)

		require.NoError(t, err)
		assert.Empty(t, window.Events)
	})
}

func TestReplayService_Summary(t *testing.T) {
	ctx := context.Background()

	t.Run("counts placements and backtracks", func(t *testing.T) {
		run := testutil.NewCompletedRun(uuid.New(), testutil.ExampleCells())
		runRepo := new(MockSolveRunRepository)
		runRepo.On("GetByID", ctx, run.ID).Return(run, nil)
		svc := NewReplayService(runRepo)

		summary, err := svc.Summary(ctx, run.ID)

		require.NoError(t, err)
		assert.True(t, summary.Solved)
		assert.Equal(t, len(run.Trace), summary.TotalEvents)
		assert.Equal(t, summary.TotalEvents, summary.Placements+summary.Backtracks)
		// Every solved cell was placed exactly once more than it was retracted.
		assert.Equal(t, 51, summary.Placements-summary.Backtracks)
		assert.Equal(t, 51, summary.EmptyCells)
	})

	t.Run("unsolved run summarizes with zero net placements", func(t *testing.T) {
		run := testutil.NewCompletedRun(uuid.New(), testutil.UnsatCells())
		runRepo := new(MockSolveRunRepository)
		runRepo.On("GetByID", ctx, run.ID).Return(run, nil)
		svc := NewReplayService(runRepo)

		summary, err := svc.Summary(ctx, run.ID)

		require.NoError(t, err)
		assert.False(t, summary.Solved)
		assert.Equal(t, summary.Placements, summary.Backtracks)
	})
}
