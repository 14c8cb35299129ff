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

// SolveRunRepository defines solve run repository operations
type SolveRunRepository interface {
	Create(ctx context.Context, run *domain.SolveRun) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.SolveRun, error)
	Update(ctx context.Context, run *domain.SolveRun) error
	List(ctx context.Context, limit, offset int) (*domain.SolveRunList, error)
	ListByPuzzle(ctx context.Context, puzzleID uuid.UUID, limit, offset int) (*domain.SolveRunList, error)
}

// TaskEnqueuer enqueues background solve tasks
type TaskEnqueuer interface {
	EnqueueSolveRun(ctx context.Context, runID uuid.UUID) error
}

// SolveService runs the solver over stored puzzles and records the runs
type SolveService struct {
	puzzleRepo PuzzleRepository
	runRepo    SolveRunRepository
	enqueuer   TaskEnqueuer
	logger     *zap.Logger
}

// NewSolveService creates a new solve service
func NewSolveService(puzzleRepo PuzzleRepository, runRepo SolveRunRepository, enqueuer TaskEnqueuer, logger *zap.Logger) *SolveService {
	return &SolveService{
		puzzleRepo: puzzleRepo,
		runRepo:    runRepo,
		enqueuer:   enqueuer,
		logger:     logger,
	}
}

// Solve creates a solve run for a puzzle. Synchronous runs execute inline
// and come back completed; asynchronous runs are enqueued and come back
// pending with an ID to poll.
func (s *SolveService) Solve(ctx context.Context, puzzleID uuid.UUID, async bool) (*domain.SolveRun, error) {
	puzzle, err := s.puzzleRepo.GetByID(ctx, puzzleID)
	if err != nil {
		return nil, err
	}

	run := &domain.SolveRun{
		ID:         uuid.New(),
		PuzzleID:   puzzle.ID,
		Status:     domain.SolveStatusPending,
		StartCells: puzzle.Cells,
		CreatedAt:  time.Now(),
	}

	if err := s.runRepo.Create(ctx, run); err != nil {
		return nil, fmt.Errorf("failed to create solve run: %w", err)
	}

	if async {
		if s.enqueuer == nil {
			return nil, apperrors.Internal("async solving is not configured")
		}
		if err := s.enqueuer.EnqueueSolveRun(ctx, run.ID); err != nil {
			return nil, fmt.Errorf("failed to enqueue solve run: %w", err)
		}
		s.logger.Info("solve run enqueued",
			zap.String("run_id", run.ID.String()),
			zap.String("puzzle_id", puzzle.ID.String()),
		)
		return run, nil
	}

	s.execute(run)

	if err := s.runRepo.Update(ctx, run); err != nil {
		return nil, fmt.Errorf("failed to store solve run: %w", err)
	}

	return run, nil
}

// ExecuteRun runs the solver for a previously created run. Used by the
// background worker for asynchronous runs.
func (s *SolveService) ExecuteRun(ctx context.Context, runID uuid.UUID) error {
	run, err := s.runRepo.GetByID(ctx, runID)
	if err != nil {
		return err
	}
	if run.Status == domain.SolveStatusCompleted || run.Status == domain.SolveStatusFailed {
		return nil
	}

	run.Status = domain.SolveStatusRunning
	if err := s.runRepo.Update(ctx, run); err != nil {
		return fmt.Errorf("failed to mark solve run running: %w", err)
	}

	s.execute(run)

	if err := s.runRepo.Update(ctx, run); err != nil {
		return fmt.Errorf("failed to store solve run: %w", err)
	}
	return nil
}

// GetRun retrieves a solve run by ID
func (s *SolveService) GetRun(ctx context.Context, id uuid.UUID) (*domain.SolveRun, error) {
	return s.runRepo.GetByID(ctx, id)
}

// ListRuns returns solve runs ordered by creation time
func (s *SolveService) ListRuns(ctx context.Context, limit, offset int) (*domain.SolveRunList, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return s.runRepo.List(ctx, limit, offset)
}

// ListRunsByPuzzle returns solve runs for one puzzle
func (s *SolveService) ListRunsByPuzzle(ctx context.Context, puzzleID uuid.UUID, limit, offset int) (*domain.SolveRunList, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return s.runRepo.ListByPuzzle(ctx, puzzleID, limit, offset)
}

// execute runs the solver and fills in the run's outcome. An unsolvable
// board completes with solved=false; only malformed input fails the run.
func (s *SolveService) execute(run *domain.SolveRun) {
	started := time.Now()

	grid, err := sudoku.FromCells(run.StartCells)
	if err != nil {
		now := time.Now()
		run.Status = domain.SolveStatusFailed
		run.Error = err.Error()
		run.CompletedAt = &now
		return
	}

	solver := sudoku.NewSolver()
	solved := solver.Solve(grid)

	now := time.Now()
	run.Status = domain.SolveStatusCompleted
	run.Solved = solved
	run.FinalCells = grid.Cells()
	run.Trace = solver.Trace()
	run.Steps = len(run.Trace)
	run.DurationMs = float64(now.Sub(started).Microseconds()) / 1000.0
	run.CompletedAt = &now

	metrics.RecordSolveRun(solved, run.Steps, now.Sub(started))

	s.logger.Info("solve run completed",
		zap.String("run_id", run.ID.String()),
		zap.Bool("solved", solved),
		zap.Int("steps", run.Steps),
		zap.Float64("duration_ms", run.DurationMs),
	)
}
