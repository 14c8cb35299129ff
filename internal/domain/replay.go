package domain

import (
	"github.com/google/uuid"

	"github.com/gridtrace/gridtrace/internal/sudoku"
)

// ReplayStep is one frame of a step-through replay: the event at Index
// and the full grid state immediately after applying it. Index 0 is the
// starting grid with no events applied.
type ReplayStep struct {
	RunID uuid.UUID     `json:"runId"`
	Index int           `json:"index"`
	Total int           `json:"total"`
	Event *sudoku.Event `json:"event,omitempty"`
	Cells Cells         `json:"cells"`
}

// ReplaySummary aggregates a recorded solve for display.
type ReplaySummary struct {
	RunID       uuid.UUID `json:"runId"`
	PuzzleID    uuid.UUID `json:"puzzleId"`
	Solved      bool      `json:"solved"`
	TotalEvents int       `json:"totalEvents"`
	Placements  int       `json:"placements"`
	Backtracks  int       `json:"backtracks"`
	EmptyCells  int       `json:"emptyCells"`
	DurationMs  float64   `json:"durationMs"`
}

// ReplayWindow is a contiguous slice of a run's trace.
type ReplayWindow struct {
	RunID  uuid.UUID      `json:"runId"`
	Offset int            `json:"offset"`
	Total  int            `json:"total"`
	Events []sudoku.Event `json:"events"`
}
