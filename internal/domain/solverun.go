package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/gridtrace/gridtrace/internal/sudoku"
)

// SolveStatus tracks a solve run through its lifecycle. Synchronous runs
// jump straight to completed; asynchronous runs pass through pending and
// running on the worker.
type SolveStatus string

const (
	SolveStatusPending   SolveStatus = "pending"
	SolveStatusRunning   SolveStatus = "running"
	SolveStatusCompleted SolveStatus = "completed"
	SolveStatusFailed    SolveStatus = "failed"
)

// SolveRun records one execution of the solver over a puzzle: the grid it
// started from, where it ended up, whether a solution was found, and the
// complete ordered trace of placements and backtracks.
//
// Solved=false with status completed is a legitimate outcome: the puzzle
// admits no solution. Status failed is reserved for execution faults
// (puzzle missing, invalid input).
type SolveRun struct {
	ID       uuid.UUID   `json:"id"`
	PuzzleID uuid.UUID   `json:"puzzleId"`
	Status   SolveStatus `json:"status"`
	Solved   bool        `json:"solved"`

	StartCells Cells        `json:"startCells"`
	FinalCells Cells        `json:"finalCells"`
	Trace      sudoku.Trace `json:"trace,omitempty"`

	Steps      int     `json:"steps"`
	DurationMs float64 `json:"durationMs"`

	Error string `json:"error,omitempty"`

	CreatedAt   time.Time  `json:"createdAt"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
}

// SolveRunList represents a paginated list of solve runs.
type SolveRunList struct {
	Runs       []SolveRun `json:"runs"`
	TotalCount int64      `json:"totalCount"`
	HasMore    bool       `json:"hasMore"`
}
