package worker

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// SolveRunExecutor executes a previously created solve run
type SolveRunExecutor interface {
	ExecuteRun(ctx context.Context, runID uuid.UUID) error
}

// SolveWorker handles asynchronous solve run tasks
type SolveWorker struct {
	logger   *zap.Logger
	executor SolveRunExecutor
}

// NewSolveWorker creates a new solve worker
func NewSolveWorker(logger *zap.Logger, executor SolveRunExecutor) *SolveWorker {
	return &SolveWorker{
		logger:   logger,
		executor: executor,
	}
}

// ProcessTask processes a solve run task
func (w *SolveWorker) ProcessTask(ctx context.Context, task *asynq.Task) error {
	var payload SolveRunPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		return fmt.Errorf("failed to unmarshal solve run payload: %w", err)
	}

	w.logger.Info("processing solve run",
		zap.String("run_id", payload.RunID.String()),
	)

	if err := w.executor.ExecuteRun(ctx, payload.RunID); err != nil {
		return fmt.Errorf("failed to execute solve run %s: %w", payload.RunID, err)
	}

	return nil
}
