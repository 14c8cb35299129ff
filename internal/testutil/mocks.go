// Package testutil provides shared test utilities for the GridTrace API.
package testutil

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/gridtrace/gridtrace/internal/domain"
)

// MockPuzzleRepository is a testify mock of the puzzle repository
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

// MockSolveRunRepository is a testify mock of the solve run repository
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

// MockTaskEnqueuer is a testify mock of the background task enqueuer
type MockTaskEnqueuer struct {
	mock.Mock
}

func (m *MockTaskEnqueuer) EnqueueSolveRun(ctx context.Context, runID uuid.UUID) error {
	args := m.Called(ctx, runID)
	return args.Error(0)
}
