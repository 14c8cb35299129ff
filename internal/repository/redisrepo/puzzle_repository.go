package redisrepo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/gridtrace/gridtrace/internal/domain"
	"github.com/gridtrace/gridtrace/internal/pkg/database"
	apperrors "github.com/gridtrace/gridtrace/internal/pkg/errors"
)

const (
	puzzleKeyPrefix = "puzzle:"
	puzzleIndexKey  = "puzzles:index"
)

// PuzzleRepository handles puzzle data operations in Redis
type PuzzleRepository struct {
	db *database.RedisDB
}

// NewPuzzleRepository creates a new puzzle repository
func NewPuzzleRepository(db *database.RedisDB) *PuzzleRepository {
	return &PuzzleRepository{db: db}
}

// Create stores a new puzzle and adds it to the listing index
func (r *PuzzleRepository) Create(ctx context.Context, puzzle *domain.Puzzle) error {
	data, err := json.Marshal(puzzle)
	if err != nil {
		return fmt.Errorf("failed to marshal puzzle: %w", err)
	}

	if err := r.db.Set(ctx, puzzleKey(puzzle.ID), data, 0); err != nil {
		return fmt.Errorf("failed to store puzzle: %w", err)
	}

	err = r.db.ZAdd(ctx, puzzleIndexKey, redis.Z{
		Score:  float64(puzzle.CreatedAt.UnixMilli()),
		Member: puzzle.ID.String(),
	})
	if err != nil {
		return fmt.Errorf("failed to index puzzle: %w", err)
	}

	return nil
}

// GetByID retrieves a puzzle by ID
func (r *PuzzleRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Puzzle, error) {
	data, err := r.db.Get(ctx, puzzleKey(id))
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, apperrors.NotFound("puzzle")
		}
		return nil, fmt.Errorf("failed to get puzzle: %w", err)
	}

	var puzzle domain.Puzzle
	if err := json.Unmarshal([]byte(data), &puzzle); err != nil {
		return nil, fmt.Errorf("failed to unmarshal puzzle: %w", err)
	}

	return &puzzle, nil
}

// Update overwrites an existing puzzle
func (r *PuzzleRepository) Update(ctx context.Context, puzzle *domain.Puzzle) error {
	exists, err := r.db.Exists(ctx, puzzleKey(puzzle.ID))
	if err != nil {
		return fmt.Errorf("failed to check puzzle: %w", err)
	}
	if exists == 0 {
		return apperrors.NotFound("puzzle")
	}

	data, err := json.Marshal(puzzle)
	if err != nil {
		return fmt.Errorf("failed to marshal puzzle: %w", err)
	}

	if err := r.db.Set(ctx, puzzleKey(puzzle.ID), data, 0); err != nil {
		return fmt.Errorf("failed to store puzzle: %w", err)
	}

	return nil
}

// Delete removes a puzzle and its index entry
func (r *PuzzleRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := r.db.Del(ctx, puzzleKey(id)); err != nil {
		return fmt.Errorf("failed to delete puzzle: %w", err)
	}
	if err := r.db.ZRem(ctx, puzzleIndexKey, id.String()); err != nil {
		return fmt.Errorf("failed to unindex puzzle: %w", err)
	}
	return nil
}

// List returns puzzles ordered by creation time, newest first
func (r *PuzzleRepository) List(ctx context.Context, limit, offset int) (*domain.PuzzleList, error) {
	total, err := r.db.ZCard(ctx, puzzleIndexKey)
	if err != nil {
		return nil, fmt.Errorf("failed to count puzzles: %w", err)
	}

	ids, err := r.db.ZRevRange(ctx, puzzleIndexKey, int64(offset), int64(offset+limit-1))
	if err != nil {
		return nil, fmt.Errorf("failed to list puzzles: %w", err)
	}

	list := &domain.PuzzleList{
		Puzzles:    make([]domain.Puzzle, 0, len(ids)),
		TotalCount: total,
		HasMore:    int64(offset+len(ids)) < total,
	}

	for _, raw := range ids {
		id, err := uuid.Parse(raw)
		if err != nil {
			continue
		}
		puzzle, err := r.GetByID(ctx, id)
		if err != nil {
			// Index entries can outlive their values; skip the hole.
			if apperrors.IsNotFound(err) {
				continue
			}
			return nil, err
		}
		list.Puzzles = append(list.Puzzles, *puzzle)
	}

	return list, nil
}

func puzzleKey(id uuid.UUID) string {
	return puzzleKeyPrefix + id.String()
}
