package dto

import (
	"time"

	"github.com/gridtrace/gridtrace/internal/domain"
	"github.com/gridtrace/gridtrace/internal/sudoku"
)

// SolveRunResponse represents a solve run in API responses. The trace is
// returned separately from GET /solves/:id/trace to keep run listings
// small.
type SolveRunResponse struct {
	ID          string     `json:"id"`
	PuzzleID    string     `json:"puzzleId"`
	Status      string     `json:"status"`
	Solved      bool       `json:"solved"`
	StartCells  [][]int    `json:"startCells"`
	FinalCells  [][]int    `json:"finalCells,omitempty"`
	Steps       int        `json:"steps"`
	DurationMs  float64    `json:"durationMs"`
	Error       string     `json:"error,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
}

// SolveRunListResponse represents a paginated list of solve runs
type SolveRunListResponse struct {
	Runs       []SolveRunResponse `json:"runs"`
	TotalCount int64              `json:"totalCount"`
	HasMore    bool               `json:"hasMore"`
}

// TraceResponse carries the complete ordered event log of a run
type TraceResponse struct {
	RunID  string         `json:"runId"`
	Solved bool           `json:"solved"`
	Total  int            `json:"total"`
	Events []sudoku.Event `json:"events"`
}

// FromSolveRun converts a domain solve run to a response
func FromSolveRun(run *domain.SolveRun) SolveRunResponse {
	resp := SolveRunResponse{
		ID:         run.ID.String(),
		PuzzleID:   run.PuzzleID.String(),
		Status:     string(run.Status),
		Solved:     run.Solved,
		StartCells: cellsToRows(run.StartCells),
		Steps:      run.Steps,
		DurationMs: run.DurationMs,
		Error:      run.Error,
		CreatedAt:  run.CreatedAt,
	}
	if run.Status == domain.SolveStatusCompleted {
		resp.FinalCells = cellsToRows(run.FinalCells)
	}
	resp.CompletedAt = run.CompletedAt
	return resp
}

// FromSolveRunList converts a domain solve run list to a response
func FromSolveRunList(list *domain.SolveRunList) SolveRunListResponse {
	resp := SolveRunListResponse{
		Runs:       make([]SolveRunResponse, 0, len(list.Runs)),
		TotalCount: list.TotalCount,
		HasMore:    list.HasMore,
	}
	for i := range list.Runs {
		resp.Runs = append(resp.Runs, FromSolveRun(&list.Runs[i]))
	}
	return resp
}

// FromTrace builds a trace response for a completed run
func FromTrace(run *domain.SolveRun) TraceResponse {
	events := run.Trace
	if events == nil {
		events = sudoku.Trace{}
	}
	return TraceResponse{
		RunID:  run.ID.String(),
		Solved: run.Solved,
		Total:  len(events),
		Events: events,
	}
}
