package redisrepo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/gridtrace/gridtrace/internal/domain"
	"github.com/gridtrace/gridtrace/internal/pkg/database"
	apperrors "github.com/gridtrace/gridtrace/internal/pkg/errors"
)

const (
	runKeyPrefix     = "solverun:"
	runIndexKey      = "solveruns:index"
	puzzleRunsPrefix = "puzzle:runs:"
)

// SolveRunRepository handles solve run data operations in Redis
type SolveRunRepository struct {
	db  *database.RedisDB
	ttl time.Duration
}

// NewSolveRunRepository creates a new solve run repository. ttl bounds how
// long run records and their traces are retained; zero means keep forever.
func NewSolveRunRepository(db *database.RedisDB, ttl time.Duration) *SolveRunRepository {
	return &SolveRunRepository{db: db, ttl: ttl}
}

// Create stores a new solve run and indexes it globally and per puzzle
func (r *SolveRunRepository) Create(ctx context.Context, run *domain.SolveRun) error {
	data, err := json.Marshal(run)
	if err != nil {
		return fmt.Errorf("failed to marshal solve run: %w", err)
	}

	if err := r.db.Set(ctx, runKey(run.ID), data, r.ttl); err != nil {
		return fmt.Errorf("failed to store solve run: %w", err)
	}

	entry := redis.Z{
		Score:  float64(run.CreatedAt.UnixMilli()),
		Member: run.ID.String(),
	}
	if err := r.db.ZAdd(ctx, runIndexKey, entry); err != nil {
		return fmt.Errorf("failed to index solve run: %w", err)
	}
	if err := r.db.ZAdd(ctx, puzzleRunsKey(run.PuzzleID), entry); err != nil {
		return fmt.Errorf("failed to index solve run by puzzle: %w", err)
	}

	return nil
}

// GetByID retrieves a solve run by ID
func (r *SolveRunRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.SolveRun, error) {
	data, err := r.db.Get(ctx, runKey(id))
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, apperrors.NotFound("solve run")
		}
		return nil, fmt.Errorf("failed to get solve run: %w", err)
	}

	var run domain.SolveRun
	if err := json.Unmarshal([]byte(data), &run); err != nil {
		return nil, fmt.Errorf("failed to unmarshal solve run: %w", err)
	}

	return &run, nil
}

// Update overwrites an existing solve run
func (r *SolveRunRepository) Update(ctx context.Context, run *domain.SolveRun) error {
	exists, err := r.db.Exists(ctx, runKey(run.ID))
	if err != nil {
		return fmt.Errorf("failed to check solve run: %w", err)
	}
	if exists == 0 {
		return apperrors.NotFound("solve run")
	}

	data, err := json.Marshal(run)
	if err != nil {
		return fmt.Errorf("failed to marshal solve run: %w", err)
	}

	if err := r.db.Set(ctx, runKey(run.ID), data, r.ttl); err != nil {
		return fmt.Errorf("failed to store solve run: %w", err)
	}

	return nil
}

// List returns solve runs ordered by creation time, newest first
func (r *SolveRunRepository) List(ctx context.Context, limit, offset int) (*domain.SolveRunList, error) {
	return r.listFrom(ctx, runIndexKey, limit, offset)
}

// ListByPuzzle returns solve runs for one puzzle, newest first
func (r *SolveRunRepository) ListByPuzzle(ctx context.Context, puzzleID uuid.UUID, limit, offset int) (*domain.SolveRunList, error) {
	return r.listFrom(ctx, puzzleRunsKey(puzzleID), limit, offset)
}

func (r *SolveRunRepository) listFrom(ctx context.Context, indexKey string, limit, offset int) (*domain.SolveRunList, error) {
	total, err := r.db.ZCard(ctx, indexKey)
	if err != nil {
		return nil, fmt.Errorf("failed to count solve runs: %w", err)
	}

	ids, err := r.db.ZRevRange(ctx, indexKey, int64(offset), int64(offset+limit-1))
	if err != nil {
		return nil, fmt.Errorf("failed to list solve runs: %w", err)
	}

	list := &domain.SolveRunList{
		Runs:       make([]domain.SolveRun, 0, len(ids)),
		TotalCount: total,
		HasMore:    int64(offset+len(ids)) < total,
	}

	for _, raw := range ids {
		id, err := uuid.Parse(raw)
		if err != nil {
			continue
		}
		run, err := r.GetByID(ctx, id)
		if err != nil {
			// Runs expire by TTL while index entries linger; skip those.
			if apperrors.IsNotFound(err) {
				continue
			}
			return nil, err
		}
		list.Runs = append(list.Runs, *run)
	}

	return list, nil
}

// PruneExpired removes global index entries whose run records have already
// expired. Per-puzzle indexes are left alone; listFrom tolerates holes.
func (r *SolveRunRepository) PruneExpired(ctx context.Context) (int, error) {
	ids, err := r.db.ZRevRange(ctx, runIndexKey, 0, -1)
	if err != nil {
		return 0, fmt.Errorf("failed to scan solve run index: %w", err)
	}

	pruned := 0
	for _, raw := range ids {
		id, err := uuid.Parse(raw)
		if err != nil {
			continue
		}
		exists, err := r.db.Exists(ctx, runKey(id))
		if err != nil {
			return pruned, fmt.Errorf("failed to check solve run: %w", err)
		}
		if exists == 0 {
			if err := r.db.ZRem(ctx, runIndexKey, raw); err != nil {
				return pruned, fmt.Errorf("failed to prune solve run index: %w", err)
			}
			pruned++
		}
	}

	return pruned, nil
}

func runKey(id uuid.UUID) string {
	return runKeyPrefix + id.String()
}

func puzzleRunsKey(puzzleID uuid.UUID) string {
	return puzzleRunsPrefix + puzzleID.String()
}
