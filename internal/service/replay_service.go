package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/gridtrace/gridtrace/internal/domain"
	apperrors "github.com/gridtrace/gridtrace/internal/pkg/errors"
	"github.com/gridtrace/gridtrace/internal/sudoku"
)

// ReplayService materializes grid states from recorded solve traces
type ReplayService struct {
	runRepo SolveRunRepository
}

// NewReplayService creates a new replay service
func NewReplayService(runRepo SolveRunRepository) *ReplayService {
	return &ReplayService{runRepo: runRepo}
}

// Step returns the grid state after applying the first index events of a
// run's trace. Index 0 is the starting grid; index len(trace) is the final
// state. The event at a step is the one whose application produced it.
func (s *ReplayService) Step(ctx context.Context, runID uuid.UUID, index int) (*domain.ReplayStep, error) {
	run, err := s.completedRun(ctx, runID)
	if err != nil {
		return nil, err
	}

	total := len(run.Trace)
	if index < 0 || index > total {
		return nil, apperrors.Validation("replay step out of range")
	}

	start, err := sudoku.FromCells(run.StartCells)
	if err != nil {
		return nil, apperrors.Internal("stored run has invalid starting grid")
	}
	grid, err := run.Trace.GridAt(start, index)
	if err != nil {
		return nil, apperrors.Internal("stored trace does not replay: " + err.Error())
	}

	step := &domain.ReplayStep{
		RunID: run.ID,
		Index: index,
		Total: total,
		Cells: grid.Cells(),
	}
	if index > 0 {
		ev := run.Trace[index-1]
		step.Event = &ev
	}
	return step, nil
}

// Window returns a contiguous slice of a run's trace events
func (s *ReplayService) Window(ctx context.Context, runID uuid.UUID, offset, limit int) (*domain.ReplayWindow, error) {
	run, err := s.completedRun(ctx, runID)
	if err != nil {
		return nil, err
	}

	total := len(run.Trace)
	if offset < 0 {
		offset = 0
	}
	if limit <= 0 || limit > 1000 {
		limit = 200
	}
	if offset > total {
		offset = total
	}
	end := offset + limit
	if end > total {
		end = total
	}

	return &domain.ReplayWindow{
		RunID:  run.ID,
		Offset: offset,
		Total:  total,
		Events: append([]sudoku.Event(nil), run.Trace[offset:end]...),
	}, nil
}

// Summary aggregates a run's trace for display
func (s *ReplayService) Summary(ctx context.Context, runID uuid.UUID) (*domain.ReplaySummary, error) {
	run, err := s.completedRun(ctx, runID)
	if err != nil {
		return nil, err
	}

	summary := &domain.ReplaySummary{
		RunID:       run.ID,
		PuzzleID:    run.PuzzleID,
		Solved:      run.Solved,
		TotalEvents: len(run.Trace),
		DurationMs:  run.DurationMs,
	}
	for _, ev := range run.Trace {
		switch ev.Kind {
		case sudoku.EventPlace:
			summary.Placements++
		case sudoku.EventBacktrack:
			summary.Backtracks++
		}
	}
	for r := 0; r < sudoku.Size; r++ {
		for c := 0; c < sudoku.Size; c++ {
			if run.StartCells[r][c] == 0 {
				summary.EmptyCells++
			}
		}
	}
	return summary, nil
}

func (s *ReplayService) completedRun(ctx context.Context, runID uuid.UUID) (*domain.SolveRun, error) {
	run, err := s.runRepo.GetByID(ctx, runID)
	if err != nil {
		return nil, err
	}
	if run.Status != domain.SolveStatusCompleted {
		return nil, apperrors.Conflict("solve run is not completed")
	}
	return run, nil
}
