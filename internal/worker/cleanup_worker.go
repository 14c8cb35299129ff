package worker

import (
	"context"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// IndexPruner removes index entries pointing at expired solve runs
type IndexPruner interface {
	PruneExpired(ctx context.Context) (int, error)
}

// CleanupWorker handles index maintenance tasks
type CleanupWorker struct {
	logger *zap.Logger
	pruner IndexPruner
}

// NewCleanupWorker creates a new cleanup worker
func NewCleanupWorker(logger *zap.Logger, pruner IndexPruner) *CleanupWorker {
	return &CleanupWorker{
		logger: logger,
		pruner: pruner,
	}
}

// ProcessTask prunes index entries left behind by run TTL expiry
func (w *CleanupWorker) ProcessTask(ctx context.Context, _ *asynq.Task) error {
	pruned, err := w.pruner.PruneExpired(ctx)
	if err != nil {
		return err
	}

	w.logger.Info("pruned expired solve run index entries",
		zap.Int("pruned", pruned),
	)

	return nil
}
