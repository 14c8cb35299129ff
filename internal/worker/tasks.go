package worker

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"

	"github.com/gridtrace/gridtrace/internal/config"
)

const (
	// TypeSolveRun is the task type for asynchronous solve runs
	TypeSolveRun = "solve:run"
	// TypeIndexCleanup is the task type for pruning expired run index entries
	TypeIndexCleanup = "cleanup:indexes"
)

// SolveRunPayload is the payload for solve run tasks
type SolveRunPayload struct {
	RunID uuid.UUID `json:"run_id"`
}

// NewSolveRunTask creates a solve run task
func NewSolveRunTask(payload *SolveRunPayload) (*asynq.Task, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal solve run payload: %w", err)
	}
	return asynq.NewTask(TypeSolveRun, data, asynq.MaxRetry(3), asynq.Timeout(10*time.Minute)), nil
}

// NewIndexCleanupTask creates an index cleanup task
func NewIndexCleanupTask() *asynq.Task {
	return asynq.NewTask(TypeIndexCleanup, nil, asynq.MaxRetry(1), asynq.Timeout(10*time.Minute))
}

// Client enqueues background tasks. It implements the service layer's
// TaskEnqueuer interface.
type Client struct {
	client *asynq.Client
}

// NewClient creates a new task client
func NewClient(cfg config.RedisConfig) *Client {
	return &Client{
		client: asynq.NewClient(asynq.RedisClientOpt{
			Addr:     cfg.Addr(),
			Password: cfg.Password,
			DB:       cfg.DB,
		}),
	}
}

// EnqueueSolveRun enqueues an asynchronous solve run
func (c *Client) EnqueueSolveRun(ctx context.Context, runID uuid.UUID) error {
	task, err := NewSolveRunTask(&SolveRunPayload{RunID: runID})
	if err != nil {
		return err
	}
	if _, err := c.client.EnqueueContext(ctx, task, asynq.Queue("default")); err != nil {
		return fmt.Errorf("failed to enqueue solve run task: %w", err)
	}
	return nil
}

// Close closes the underlying client
func (c *Client) Close() error {
	return c.client.Close()
}
